package domain

import "time"

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "Pending"
	ReservationConfirmed ReservationStatus = "Confirmed"
	ReservationCancelled ReservationStatus = "Cancelled"
)

// CanTransition allows Pending->Confirmed and Pending/Confirmed->Cancelled.
// Cancelled is terminal.
func (s ReservationStatus) CanTransition(to ReservationStatus) bool {
	switch {
	case s == ReservationPending && to == ReservationConfirmed:
		return true
	case (s == ReservationPending || s == ReservationConfirmed) && to == ReservationCancelled:
		return true
	}
	return false
}

// Table is a bookable table with a fixed capacity.
type Table struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	Zone     string `json:"zone,omitempty"`
}

// Reservation books one table for an exact instant. The booking UI offers
// discrete slots, so conflicts are detected on the full (table, datetime)
// pair, not on overlapping ranges.
type Reservation struct {
	ID        string            `json:"id"`
	UserID    string            `json:"userId,omitempty"`
	Name      string            `json:"name"`
	Phone     string            `json:"phone"`
	Email     string            `json:"email,omitempty"`
	Note      string            `json:"note,omitempty"`
	PartySize int               `json:"partySize"`
	TableID   string            `json:"tableId"`
	Datetime  time.Time         `json:"datetime"`
	Status    ReservationStatus `json:"status"`
	CreatedAt time.Time         `json:"createdAt"`
}
