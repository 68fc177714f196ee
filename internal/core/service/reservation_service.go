package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/guregu/null.v4"

	"github.com/aeropark/parking-system/internal/core/domain"
	"github.com/aeropark/parking-system/internal/core/ports"
)

// ReservationService maintains the append-only reservation history. It shares
// the spot collection key with ParkingService: the administrative cancel and
// the expiry sweep free spots directly, mirroring the combined operation the
// admin console performs.
type ReservationService struct {
	store  ports.KeyValueStore
	logger zerolog.Logger
}

func NewReservationService(store ports.KeyValueStore, logger zerolog.Logger) *ReservationService {
	return &ReservationService{store: store, logger: logger}
}

// Append assigns a unique id and persists the entry. A zero CreatedAt is
// filled with the current time; an empty status defaults to active.
func (s *ReservationService) Append(ctx context.Context, entry domain.Reservation) (domain.Reservation, error) {
	entries, err := loadCollection[domain.Reservation](ctx, s.store, keyReservations)
	if err != nil {
		return domain.Reservation{}, err
	}
	entry.ID = newEntryID()
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	if entry.Status == "" {
		entry.Status = domain.ReservationActive
	}
	entries = append(entries, entry)
	if err := saveCollection(ctx, s.store, keyReservations, entries); err != nil {
		return domain.Reservation{}, err
	}
	return entry, nil
}

func (s *ReservationService) ListAll(ctx context.Context) ([]domain.Reservation, error) {
	return loadCollection[domain.Reservation](ctx, s.store, keyReservations)
}

func (s *ReservationService) ListActive(ctx context.Context) ([]domain.Reservation, error) {
	return s.filter(ctx, func(r domain.Reservation) bool {
		return r.Status == domain.ReservationActive
	})
}

func (s *ReservationService) ListActiveForUser(ctx context.Context, userID string) ([]domain.Reservation, error) {
	return s.filter(ctx, func(r domain.Reservation) bool {
		return r.UserID == userID && r.Status == domain.ReservationActive
	})
}

func (s *ReservationService) filter(ctx context.Context, keep func(domain.Reservation) bool) ([]domain.Reservation, error) {
	entries, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	var out []domain.Reservation
	for _, r := range entries {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out, nil
}

// SetStatus updates the single entry matching (spotID, userID) that is still
// active. A missing match is reported through found, never as an error.
func (s *ReservationService) SetStatus(ctx context.Context, spotID, userID string, status domain.ReservationStatus) (bool, error) {
	entries, err := s.ListAll(ctx)
	if err != nil {
		return false, err
	}
	for i := range entries {
		if entries[i].SpotID == spotID && entries[i].UserID == userID && entries[i].Status == domain.ReservationActive {
			entries[i].Status = status
			if err := saveCollection(ctx, s.store, keyReservations, entries); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// Cancel is the administrative override. It finds the entry by log id, marks
// it cancelled and frees the corresponding spot. Cancellation is only valid
// through this combined operation: the log write and the spot write belong
// together, even though they are two separate store writes.
func (s *ReservationService) Cancel(ctx context.Context, id string) (bool, error) {
	entries, err := s.ListAll(ctx)
	if err != nil {
		return false, err
	}
	idx := -1
	for i := range entries {
		if entries[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, nil
	}

	entries[idx].Status = domain.ReservationCancelled
	if err := saveCollection(ctx, s.store, keyReservations, entries); err != nil {
		return false, err
	}

	if err := s.freeSpot(ctx, entries[idx].SpotID); err != nil {
		return false, err
	}
	s.logger.Info().Str("reservation", id).Str("spot", entries[idx].SpotID).Msg("reservation cancelled by admin")
	return true, nil
}

// ExpireOverdue completes active reservations older than maxDuration and
// frees their spots. Spots are only freed when still held by the same user,
// so a spot the drift simulation has since occupied is left alone.
func (s *ReservationService) ExpireOverdue(ctx context.Context, maxDuration time.Duration) (int, error) {
	if maxDuration <= 0 {
		return 0, nil
	}
	entries, err := s.ListAll(ctx)
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	expired := 0
	for i := range entries {
		if entries[i].Status != domain.ReservationActive || now.Sub(entries[i].CreatedAt) < maxDuration {
			continue
		}
		entries[i].Status = domain.ReservationCompleted
		expired++
		if err := s.freeSpotHeldBy(ctx, entries[i].SpotID, entries[i].UserID); err != nil {
			return expired, err
		}
		s.logger.Info().
			Str("reservation", entries[i].ID).
			Str("spot", entries[i].SpotID).
			Msg("reservation expired")
	}
	if expired == 0 {
		return 0, nil
	}
	if err := saveCollection(ctx, s.store, keyReservations, entries); err != nil {
		return expired, err
	}
	return expired, nil
}

func (s *ReservationService) Stats(ctx context.Context) (domain.ReservationStats, error) {
	entries, err := s.ListAll(ctx)
	if err != nil {
		return domain.ReservationStats{}, err
	}
	stats := domain.ReservationStats{Total: len(entries)}
	for _, r := range entries {
		switch r.Status {
		case domain.ReservationActive:
			stats.Active++
		case domain.ReservationCancelled:
			stats.Cancelled++
		case domain.ReservationCompleted:
			stats.Completed++
		}
	}
	return stats, nil
}

// freeSpot resets a spot to available regardless of who holds it.
func (s *ReservationService) freeSpot(ctx context.Context, spotID string) error {
	return s.releaseSpot(ctx, spotID, "")
}

// freeSpotHeldBy resets a spot only when it is still reserved by userID.
func (s *ReservationService) freeSpotHeldBy(ctx context.Context, spotID, userID string) error {
	return s.releaseSpot(ctx, spotID, userID)
}

func (s *ReservationService) releaseSpot(ctx context.Context, spotID, requiredHolder string) error {
	spots, err := loadCollection[domain.Spot](ctx, s.store, keySpots)
	if err != nil {
		return err
	}
	for i := range spots {
		if spots[i].ID != spotID {
			continue
		}
		if requiredHolder != "" {
			if spots[i].Status != domain.SpotReserved || spots[i].ReservedBy.ValueOrZero() != requiredHolder {
				return nil
			}
		}
		spots[i].Status = domain.SpotAvailable
		spots[i].ReservedBy = null.String{}
		spots[i].ReservedAt = null.Time{}
		return saveCollection(ctx, s.store, keySpots, spots)
	}
	s.logger.Warn().Str("spot", spotID).Msg("spot referenced by reservation no longer exists")
	return nil
}
