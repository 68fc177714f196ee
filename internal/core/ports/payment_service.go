package ports

import (
	"context"
	"time"

	"github.com/aeropark/parking-system/internal/core/domain"
)

// PaymentService is a read/aggregate-only view over recorded payments.
// Payments are written by the external checkout collaborator.
type PaymentService interface {
	List(ctx context.Context) ([]domain.Payment, error)
	// FilterByDateRange returns payments with paidAt in [start, end].
	FilterByDateRange(ctx context.Context, start, end time.Time) ([]domain.Payment, error)
	FilterByMethod(ctx context.Context, method string) ([]domain.Payment, error)
	TotalRevenue(ctx context.Context) (float64, error)
	RevenueByMethod(ctx context.Context) (map[string]float64, error)
	Stats(ctx context.Context) (domain.PaymentStats, error)
}
