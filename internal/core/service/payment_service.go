package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/aeropark/parking-system/internal/core/domain"
	"github.com/aeropark/parking-system/internal/core/ports"
)

// PaymentService aggregates payments recorded by the external checkout
// collaborator. It never creates or mutates entries.
type PaymentService struct {
	store  ports.KeyValueStore
	logger zerolog.Logger
}

func NewPaymentService(store ports.KeyValueStore, logger zerolog.Logger) *PaymentService {
	return &PaymentService{store: store, logger: logger}
}

func (s *PaymentService) List(ctx context.Context) ([]domain.Payment, error) {
	return loadCollection[domain.Payment](ctx, s.store, keyPayments)
}

// FilterByDateRange returns payments with paidAt in [start, end], bounds
// inclusive.
func (s *PaymentService) FilterByDateRange(ctx context.Context, start, end time.Time) ([]domain.Payment, error) {
	payments, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []domain.Payment
	for _, p := range payments {
		if !p.PaidAt.Before(start) && !p.PaidAt.After(end) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *PaymentService) FilterByMethod(ctx context.Context, method string) ([]domain.Payment, error) {
	payments, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []domain.Payment
	for _, p := range payments {
		if p.PaymentMethod == method {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *PaymentService) TotalRevenue(ctx context.Context) (float64, error) {
	payments, err := s.List(ctx)
	if err != nil {
		return 0, err
	}
	var sum float64
	for _, p := range payments {
		sum += p.Amount
	}
	return sum, nil
}

func (s *PaymentService) RevenueByMethod(ctx context.Context) (map[string]float64, error) {
	payments, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	byMethod := make(map[string]float64)
	for _, p := range payments {
		byMethod[p.PaymentMethod] += p.Amount
	}
	return byMethod, nil
}

func (s *PaymentService) Stats(ctx context.Context) (domain.PaymentStats, error) {
	payments, err := s.List(ctx)
	if err != nil {
		return domain.PaymentStats{}, err
	}
	stats := domain.PaymentStats{Total: len(payments)}
	for _, p := range payments {
		switch p.Status {
		case domain.PaymentCompleted:
			stats.Completed++
		case domain.PaymentFailed:
			stats.Failed++
		}
		stats.Revenue += p.Amount
	}
	return stats, nil
}
