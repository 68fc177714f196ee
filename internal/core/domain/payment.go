package domain

import "time"

// PaymentStatus represents the outcome of a recorded payment.
type PaymentStatus string

const (
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

// Payment is a record written by the external checkout collaborator. This
// layer only reads and aggregates payments, it never creates or mutates them.
type Payment struct {
	ID            string        `json:"id"`
	UserID        string        `json:"userId,omitempty"`
	ReservationID string        `json:"reservationId,omitempty"`
	Amount        float64       `json:"amount"`
	PaymentMethod string        `json:"paymentMethod"`
	Status        PaymentStatus `json:"status"`
	PaidAt        time.Time     `json:"paidAt"`
}

// PaymentStats summarises the ledger.
type PaymentStats struct {
	Total     int     `json:"total"`
	Completed int     `json:"completed"`
	Failed    int     `json:"failed"`
	Revenue   float64 `json:"revenue"`
}
