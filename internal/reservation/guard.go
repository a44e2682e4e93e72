package reservation

import (
	"time"

	"gerry-coffee/internal/domain"
)

// Reason distinguishes which booking rule failed so the caller can
// point the user at the right field.
type Reason string

const (
	ReasonTableUnavailable Reason = "table_unavailable"
	ReasonPartyTooLarge    Reason = "party_too_large"
)

// Decision is the outcome of a booking check.
type Decision struct {
	OK     bool
	Reason Reason
}

// Guard checks booking requests against the table plan.
type Guard struct {
	tables map[string]domain.Table
}

func NewGuard(tables []domain.Table) Guard {
	byID := make(map[string]domain.Table, len(tables))
	for _, t := range tables {
		byID[t.ID] = t
	}
	return Guard{tables: byID}
}

// DefaultTables is the house table plan.
func DefaultTables() []domain.Table {
	return []domain.Table{
		{ID: "T1", Name: "T1", Capacity: 2, Zone: "Indoor"},
		{ID: "T2", Name: "T2", Capacity: 2, Zone: "Indoor"},
		{ID: "T3", Name: "T3", Capacity: 2, Zone: "Window"},
		{ID: "T4", Name: "T4", Capacity: 4, Zone: "Indoor"},
		{ID: "T5", Name: "T5", Capacity: 4, Zone: "Indoor"},
		{ID: "T6", Name: "T6", Capacity: 2, Zone: "Indoor"},
		{ID: "T7", Name: "T7", Capacity: 2, Zone: "Indoor"},
		{ID: "T8", Name: "T8", Capacity: 6, Zone: "Group"},
	}
}

// Tables returns the table plan in id order of the default layout.
func (g Guard) Tables() []domain.Table {
	out := make([]domain.Table, 0, len(g.tables))
	for _, t := range DefaultTables() {
		if got, ok := g.tables[t.ID]; ok {
			out = append(out, got)
		}
	}
	if len(out) == len(g.tables) {
		return out
	}
	// custom plan not covered by the default layout
	out = out[:0]
	for _, t := range g.tables {
		out = append(out, t)
	}
	return out
}

// CanBook accepts a request only when the table exists, no live
// reservation holds the identical (table, instant) slot, and the party
// fits the table. Cancelled reservations free their slot. Slots are
// discrete: two bookings a minute apart never conflict.
func (g Guard) CanBook(existing []domain.Reservation, tableID string, at time.Time, partySize int) Decision {
	table, ok := g.tables[tableID]
	if !ok {
		return Decision{Reason: ReasonTableUnavailable}
	}
	for _, r := range existing {
		if r.Status != domain.ReservationCancelled && r.TableID == tableID && r.Datetime.Equal(at) {
			return Decision{Reason: ReasonTableUnavailable}
		}
	}
	if partySize > table.Capacity {
		return Decision{Reason: ReasonPartyTooLarge}
	}
	return Decision{OK: true}
}

// ReservedAt lists table ids already taken at the given instant,
// which the availability endpoint surfaces to the slot picker.
func ReservedAt(existing []domain.Reservation, at time.Time) []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, r := range existing {
		if r.Status != domain.ReservationCancelled && r.Datetime.Equal(at) && !seen[r.TableID] {
			seen[r.TableID] = true
			out = append(out, r.TableID)
		}
	}
	return out
}
