package ports

import (
	"context"

	"github.com/aeropark/parking-system/internal/core/domain"
)

// DriftReport describes what a single drift pass changed. Empty IDs mean the
// corresponding transition did not fire this pass.
type DriftReport struct {
	OccupiedSpotID string
	FreedSpotID    string
}

// ParkingService owns the spot collection and its status transitions.
//
// Boolean results carry the domain outcome (not found, invalid transition);
// the error return is reserved for storage failures.
type ParkingService interface {
	// Initialize generates the fixed spot grid on first use. Idempotent.
	Initialize(ctx context.Context) error
	List(ctx context.Context) ([]domain.Spot, error)
	Find(ctx context.Context, id string) (domain.Spot, bool, error)
	// Update merges patch into the matching spot and persists the collection.
	// It does not enforce the reservation invariant: callers must supply
	// consistent field sets.
	Update(ctx context.Context, id string, patch domain.SpotPatch) (domain.Spot, bool, error)
	Stats(ctx context.Context) (domain.SpotStats, error)
	// SimulateDrift performs at most one occupy and one free transition,
	// each with its own independent probability.
	SimulateDrift(ctx context.Context) (DriftReport, error)
	// Reserve succeeds only when the spot is currently available. It writes
	// the spot collection and appends an active reservation entry as two
	// sequential store writes.
	Reserve(ctx context.Context, spotID, userID string) (bool, error)
	// CancelReservation succeeds only when the spot is reserved by userID.
	CancelReservation(ctx context.Context, spotID, userID string) (bool, error)
	// Reset drops the spot and reservation collections and re-initializes.
	Reset(ctx context.Context) error
}
