// Package simulator drives the background behaviour the original system ran
// on browser timers: random occupancy drift standing in for real sensors, and
// a periodic sweep that completes overdue reservations.
package simulator

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/aeropark/parking-system/internal/api/metrics"
	"github.com/aeropark/parking-system/internal/core/ports"
)

// Simulator ticks the drift simulation and the expiry sweep on independent
// intervals. A non-positive interval disables the corresponding loop.
type Simulator struct {
	parking      ports.ParkingService
	reservations ports.ReservationService
	settings     ports.SettingsService
	driftEvery   time.Duration
	sweepEvery   time.Duration
	log          zerolog.Logger
}

func New(
	parking ports.ParkingService,
	reservations ports.ReservationService,
	settings ports.SettingsService,
	driftEvery, sweepEvery time.Duration,
	log zerolog.Logger,
) *Simulator {
	return &Simulator{
		parking:      parking,
		reservations: reservations,
		settings:     settings,
		driftEvery:   driftEvery,
		sweepEvery:   sweepEvery,
		log:          log,
	}
}

// Start launches the loops. They stop when ctx is cancelled.
func (s *Simulator) Start(ctx context.Context) {
	if s.driftEvery > 0 {
		go s.runDrift(ctx)
	}
	if s.sweepEvery > 0 {
		go s.runExpirySweep(ctx)
	}
}

func (s *Simulator) runDrift(ctx context.Context) {
	ticker := time.NewTicker(s.driftEvery)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			report, err := s.parking.SimulateDrift(ctx)
			if err != nil {
				s.log.Error().Err(err).Msg("drift pass failed")
				continue
			}
			if report.OccupiedSpotID != "" {
				metrics.DriftTransitionsTotal.WithLabelValues("occupy").Inc()
			}
			if report.FreedSpotID != "" {
				metrics.DriftTransitionsTotal.WithLabelValues("free").Inc()
			}
		}
	}
}

func (s *Simulator) runExpirySweep(ctx context.Context) {
	ticker := time.NewTicker(s.sweepEvery)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			settings, err := s.settings.Get(ctx)
			if err != nil {
				s.log.Error().Err(err).Msg("expiry sweep: load settings failed")
				continue
			}
			maxDuration := time.Duration(settings.MaxDuration) * time.Hour
			expired, err := s.reservations.ExpireOverdue(ctx, maxDuration)
			if err != nil {
				s.log.Error().Err(err).Msg("expiry sweep failed")
				continue
			}
			if expired > 0 {
				metrics.ReservationsExpiredTotal.Add(float64(expired))
				s.log.Info().Int("expired", expired).Msg("expiry sweep completed reservations")
			}
		}
	}
}
