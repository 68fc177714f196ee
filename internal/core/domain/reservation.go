package domain

import "time"

// ReservationStatus represents the lifecycle state of a reservation log entry.
type ReservationStatus string

const (
	ReservationActive    ReservationStatus = "active"
	ReservationCancelled ReservationStatus = "cancelled"
	ReservationCompleted ReservationStatus = "completed"
)

// Reservation is one entry in the append-only reservation history. Entries
// are never deleted; cancel/complete flips the status of the matching
// active entry.
type Reservation struct {
	ID        string            `json:"id"`
	SpotID    string            `json:"spotId"`
	UserID    string            `json:"userId"`
	CreatedAt time.Time         `json:"createdAt"`
	Status    ReservationStatus `json:"status"`
}

// ReservationStats summarises the log by status.
type ReservationStats struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Cancelled int `json:"cancelled"`
	Completed int `json:"completed"`
}
