package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/guregu/null.v4"

	"github.com/aeropark/parking-system/internal/core/domain"
	"github.com/aeropark/parking-system/internal/core/ports"
)

const (
	gridRows    = 5
	spotsPerRow = 10

	// Drift probabilities, per pass.
	probOccupy = 0.10
	probFree   = 0.08
)

var rowLetters = [gridRows]string{"A", "B", "C", "D", "E"}

// ParkingService owns the spot collection. It reads the full collection from
// the store, mutates in memory and writes it back wholesale.
type ParkingService struct {
	store  ports.KeyValueStore
	rng    ports.Rand
	logger zerolog.Logger
}

func NewParkingService(store ports.KeyValueStore, rng ports.Rand, logger zerolog.Logger) *ParkingService {
	return &ParkingService{store: store, rng: rng, logger: logger}
}

// Initialize generates the fixed grid on first use: rows A..E with ten spots
// each, seeded 60% available / 30% occupied / 10% reserved. Subsequent calls
// are no-ops.
func (s *ParkingService) Initialize(ctx context.Context) error {
	_, ok, err := s.store.Get(ctx, keySpots)
	if err != nil {
		return fmt.Errorf("load %s: %w", keySpots, err)
	}
	if ok {
		return nil
	}

	now := time.Now().UTC()
	spots := make([]domain.Spot, 0, gridRows*spotsPerRow)
	for row := 0; row < gridRows; row++ {
		for n := 1; n <= spotsPerRow; n++ {
			spot := domain.Spot{
				ID:     fmt.Sprintf("%s%d", rowLetters[row], n),
				Row:    rowLetters[row],
				Number: n,
				Status: domain.SpotAvailable,
			}
			r := s.rng.Float64()
			switch {
			case r > 0.9:
				// Seeded reservations get a synthetic holder so the
				// reserved-implies-holder invariant holds from the start.
				spot.Status = domain.SpotReserved
				spot.ReservedBy = null.StringFrom("sim-" + spot.ID)
				spot.ReservedAt = null.TimeFrom(now)
			case r > 0.6:
				spot.Status = domain.SpotOccupied
			}
			spots = append(spots, spot)
		}
	}

	if err := saveCollection(ctx, s.store, keySpots, spots); err != nil {
		return err
	}
	s.logger.Info().Int("spots", len(spots)).Msg("parking grid initialized")
	return nil
}

func (s *ParkingService) List(ctx context.Context) ([]domain.Spot, error) {
	return loadCollection[domain.Spot](ctx, s.store, keySpots)
}

func (s *ParkingService) Find(ctx context.Context, id string) (domain.Spot, bool, error) {
	spots, err := s.List(ctx)
	if err != nil {
		return domain.Spot{}, false, err
	}
	for _, spot := range spots {
		if spot.ID == id {
			return spot, true, nil
		}
	}
	return domain.Spot{}, false, nil
}

// Update merges patch into the matching spot and persists the collection.
// The reservation invariant is the caller's responsibility here.
func (s *ParkingService) Update(ctx context.Context, id string, patch domain.SpotPatch) (domain.Spot, bool, error) {
	spots, err := s.List(ctx)
	if err != nil {
		return domain.Spot{}, false, err
	}
	for i := range spots {
		if spots[i].ID != id {
			continue
		}
		patch.Apply(&spots[i])
		if err := saveCollection(ctx, s.store, keySpots, spots); err != nil {
			return domain.Spot{}, false, err
		}
		return spots[i], true, nil
	}
	return domain.Spot{}, false, nil
}

func (s *ParkingService) Stats(ctx context.Context) (domain.SpotStats, error) {
	spots, err := s.List(ctx)
	if err != nil {
		return domain.SpotStats{}, err
	}
	stats := domain.SpotStats{Total: len(spots)}
	for _, spot := range spots {
		switch spot.Status {
		case domain.SpotAvailable:
			stats.Available++
		case domain.SpotOccupied:
			stats.Occupied++
		case domain.SpotReserved:
			stats.Reserved++
		}
	}
	if stats.Total > 0 {
		stats.OccupationRatePct = int(math.Round(100 * float64(stats.Occupied+stats.Reserved) / float64(stats.Total)))
	}
	return stats, nil
}

// SimulateDrift stands in for real sensors: with independent probabilities it
// occupies one random available spot and frees one random occupied spot, at
// most one transition of each kind per pass.
func (s *ParkingService) SimulateDrift(ctx context.Context) (ports.DriftReport, error) {
	spots, err := s.List(ctx)
	if err != nil {
		return ports.DriftReport{}, err
	}

	var available, occupied []int
	for i, spot := range spots {
		switch spot.Status {
		case domain.SpotAvailable:
			available = append(available, i)
		case domain.SpotOccupied:
			occupied = append(occupied, i)
		}
	}

	var report ports.DriftReport
	if s.rng.Float64() < probOccupy && len(available) > 0 {
		i := available[s.rng.Intn(len(available))]
		spots[i].Status = domain.SpotOccupied
		report.OccupiedSpotID = spots[i].ID
	}
	if s.rng.Float64() < probFree && len(occupied) > 0 {
		i := occupied[s.rng.Intn(len(occupied))]
		spots[i].Status = domain.SpotAvailable
		report.FreedSpotID = spots[i].ID
	}

	if report.OccupiedSpotID == "" && report.FreedSpotID == "" {
		return report, nil
	}
	if err := saveCollection(ctx, s.store, keySpots, spots); err != nil {
		return ports.DriftReport{}, err
	}
	s.logger.Debug().
		Str("occupied", report.OccupiedSpotID).
		Str("freed", report.FreedSpotID).
		Msg("drift pass applied")
	return report, nil
}

// Reserve transitions an available spot to reserved and appends an active
// entry to the reservation log. The two collections are persisted as two
// sequential writes; a crash in between leaves them inconsistent, which is a
// documented gap of this design.
func (s *ParkingService) Reserve(ctx context.Context, spotID, userID string) (bool, error) {
	spots, err := s.List(ctx)
	if err != nil {
		return false, err
	}
	idx := -1
	for i := range spots {
		if spots[i].ID == spotID {
			idx = i
			break
		}
	}
	if idx < 0 || spots[idx].Status != domain.SpotAvailable {
		return false, nil
	}

	now := time.Now().UTC()
	spots[idx].Status = domain.SpotReserved
	spots[idx].ReservedBy = null.StringFrom(userID)
	spots[idx].ReservedAt = null.TimeFrom(now)
	if err := saveCollection(ctx, s.store, keySpots, spots); err != nil {
		return false, err
	}

	entries, err := loadCollection[domain.Reservation](ctx, s.store, keyReservations)
	if err != nil {
		return false, err
	}
	entries = append(entries, domain.Reservation{
		ID:        newEntryID(),
		SpotID:    spotID,
		UserID:    userID,
		CreatedAt: now,
		Status:    domain.ReservationActive,
	})
	if err := saveCollection(ctx, s.store, keyReservations, entries); err != nil {
		return false, err
	}

	s.logger.Info().Str("spot", spotID).Str("user", userID).Msg("spot reserved")
	return true, nil
}

// CancelReservation frees a spot reserved by userID and marks the matching
// active log entry cancelled.
func (s *ParkingService) CancelReservation(ctx context.Context, spotID, userID string) (bool, error) {
	spots, err := s.List(ctx)
	if err != nil {
		return false, err
	}
	idx := -1
	for i := range spots {
		if spots[i].ID == spotID {
			idx = i
			break
		}
	}
	if idx < 0 || spots[idx].Status != domain.SpotReserved || spots[idx].ReservedBy.ValueOrZero() != userID {
		return false, nil
	}

	spots[idx].Status = domain.SpotAvailable
	spots[idx].ReservedBy = null.String{}
	spots[idx].ReservedAt = null.Time{}
	if err := saveCollection(ctx, s.store, keySpots, spots); err != nil {
		return false, err
	}

	entries, err := loadCollection[domain.Reservation](ctx, s.store, keyReservations)
	if err != nil {
		return false, err
	}
	for i := range entries {
		if entries[i].SpotID == spotID && entries[i].UserID == userID && entries[i].Status == domain.ReservationActive {
			entries[i].Status = domain.ReservationCancelled
			if err := saveCollection(ctx, s.store, keyReservations, entries); err != nil {
				return false, err
			}
			break
		}
	}

	s.logger.Info().Str("spot", spotID).Str("user", userID).Msg("reservation cancelled")
	return true, nil
}

// Reset drops the spot and reservation collections and regenerates the grid.
func (s *ParkingService) Reset(ctx context.Context) error {
	if err := s.store.Remove(ctx, keySpots); err != nil {
		return fmt.Errorf("remove %s: %w", keySpots, err)
	}
	if err := s.store.Remove(ctx, keyReservations); err != nil {
		return fmt.Errorf("remove %s: %w", keyReservations, err)
	}
	return s.Initialize(ctx)
}
