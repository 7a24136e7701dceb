package domain

import "time"

// Table represents a restaurant table. Immutable reference data, created and
// removed by restaurant administration outside of this service.
type Table struct {
	ID       int64
	Number   int // Номер стола в зале
	Capacity int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Fits returns true if a party of the given size can be seated at the table.
func (t *Table) Fits(partySize int) bool {
	return partySize >= MinPartySize && partySize <= t.Capacity
}
