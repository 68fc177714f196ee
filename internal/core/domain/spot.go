package domain

import (
	"errors"

	"gopkg.in/guregu/null.v4"
)

// SpotStatus represents the occupancy state of a parking spot.
type SpotStatus string

const (
	SpotAvailable SpotStatus = "available"
	SpotOccupied  SpotStatus = "occupied"
	SpotReserved  SpotStatus = "reserved"
)

var ErrSpotNotFound = errors.New("spot not found")
var ErrReservationNotFound = errors.New("reservation not found")
var ErrUserNotFound = errors.New("user not found")
var ErrNotLoggedIn = errors.New("not logged in")
var ErrInvalidCredentials = errors.New("invalid credentials")

// Spot is one parking space. Invariant: Status == SpotReserved exactly when
// ReservedBy is non-null; available and occupied spots carry no reservation.
type Spot struct {
	ID         string      `json:"id"`
	Row        string      `json:"row"`
	Number     int         `json:"number"`
	Status     SpotStatus  `json:"status"`
	ReservedBy null.String `json:"reservedBy"`
	ReservedAt null.Time   `json:"reservedAt"`
}

// Consistent reports whether the spot honours the reservation invariant.
func (s Spot) Consistent() bool {
	if s.Status == SpotReserved {
		return s.ReservedBy.Valid
	}
	return !s.ReservedBy.Valid
}

// SpotPatch carries a partial update for a spot. Nil fields are left
// untouched; a present null.String/null.Time may itself be null to clear
// the stored value.
type SpotPatch struct {
	Status     *SpotStatus
	ReservedBy *null.String
	ReservedAt *null.Time
}

// Apply merges the patch into the spot.
func (p SpotPatch) Apply(s *Spot) {
	if p.Status != nil {
		s.Status = *p.Status
	}
	if p.ReservedBy != nil {
		s.ReservedBy = *p.ReservedBy
	}
	if p.ReservedAt != nil {
		s.ReservedAt = *p.ReservedAt
	}
}

// SpotStats summarises the registry for dashboards.
type SpotStats struct {
	Total             int `json:"total"`
	Available         int `json:"available"`
	Occupied          int `json:"occupied"`
	Reserved          int `json:"reserved"`
	OccupationRatePct int `json:"occupation_rate_pct"`
}
