package ports

import (
	"context"
	"time"

	"github.com/aeropark/parking-system/internal/core/domain"
)

// ReservationService maintains the append-only reservation history.
type ReservationService interface {
	// Append assigns a unique id to the entry and persists it.
	Append(ctx context.Context, entry domain.Reservation) (domain.Reservation, error)
	ListAll(ctx context.Context) ([]domain.Reservation, error)
	ListActive(ctx context.Context) ([]domain.Reservation, error)
	ListActiveForUser(ctx context.Context, userID string) ([]domain.Reservation, error)
	// SetStatus updates the single active entry matching (spotID, userID).
	// found is false when no such entry exists; that is not an error.
	SetStatus(ctx context.Context, spotID, userID string, status domain.ReservationStatus) (found bool, err error)
	// Cancel is the administrative override: it looks the entry up by log id,
	// marks it cancelled and frees the corresponding spot. Both collections
	// are rewritten as two sequential store writes.
	Cancel(ctx context.Context, id string) (bool, error)
	// ExpireOverdue completes active reservations older than maxDuration and
	// frees their spots. Returns the number of reservations expired.
	ExpireOverdue(ctx context.Context, maxDuration time.Duration) (int, error)
	Stats(ctx context.Context) (domain.ReservationStats, error)
}
