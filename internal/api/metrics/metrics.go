// Package metrics defines and registers all custom Prometheus metrics for the
// AeroPark parking API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register themselves with the default Prometheus registry at import
// time via promauto; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/aeropark/parking-system/internal/core/domain"
)

const namespace = "aeropark"

// ReservationsTotal counts reservation attempts.
// Label:
//   - result: "accepted" or "rejected" (spot missing or not available)
var ReservationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reservations_total",
		Help:      "Total number of reservation attempts, by result.",
	},
	[]string{"result"},
)

// CancellationsTotal counts reservation cancellations.
// Labels:
//   - source: "user" (owner cancelling their own spot) or "admin" (override by log id)
//   - result: "done" or "rejected"
var CancellationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cancellations_total",
		Help:      "Total number of reservation cancellations, by source and result.",
	},
	[]string{"source", "result"},
)

// ReservationsExpiredTotal counts reservations completed by the expiry sweep.
var ReservationsExpiredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reservations_expired_total",
		Help:      "Total number of overdue reservations completed by the sweep.",
	},
)

// DriftTransitionsTotal counts simulated occupancy transitions.
// Label:
//   - direction: "occupy" or "free"
var DriftTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "drift_transitions_total",
		Help:      "Total number of simulated spot status transitions, by direction.",
	},
	[]string{"direction"},
)

// AdminLoginsTotal counts admin login attempts.
// Label:
//   - result: "success" or "failure"
var AdminLoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "admin_logins_total",
		Help:      "Total number of admin login attempts, by result.",
	},
	[]string{"result"},
)

// SpotsByStatus tracks the current number of spots in each status. Refreshed
// whenever the registry stats are computed.
// Label:
//   - status: "available", "occupied" or "reserved"
var SpotsByStatus = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "spots",
		Help:      "Current number of parking spots in each status.",
	},
	[]string{"status"},
)

// ObserveSpotStats pushes a fresh registry snapshot into SpotsByStatus.
func ObserveSpotStats(stats domain.SpotStats) {
	SpotsByStatus.WithLabelValues(string(domain.SpotAvailable)).Set(float64(stats.Available))
	SpotsByStatus.WithLabelValues(string(domain.SpotOccupied)).Set(float64(stats.Occupied))
	SpotsByStatus.WithLabelValues(string(domain.SpotReserved)).Set(float64(stats.Reserved))
}
