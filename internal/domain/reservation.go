package domain

import (
	"time"

	"github.com/m04kA/RST-BookingService/pkg/types"
)

// Reservation represents a table reservation in the system.
// Created only through the admission flow; the (TableID, Slot) pair is unique
// among stored reservations.
type Reservation struct {
	ID         int64
	CustomerID int64
	TableID    int64
	Slot       types.SlotTime
	PartySize  int
	Notes      *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ConflictsWith returns true if the other reservation occupies the same
// table at the exact same slot. Conflict detection is exact-timestamp
// equality, not interval overlap.
func (r *Reservation) ConflictsWith(other *Reservation) bool {
	return r.TableID == other.TableID && r.Slot.Equal(other.Slot)
}

// TableReservationsFilter фильтр для получения бронирований стола
type TableReservationsFilter struct {
	TableID  int64           // Обязательный параметр
	FromSlot *types.SlotTime // Начало периода (опционально)
	ToSlot   *types.SlotTime // Конец периода (опционально)
}
