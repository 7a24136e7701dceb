package domain

import (
	"fmt"

	"github.com/m04kA/RST-BookingService/pkg/types"
)

// AvailabilityStatus is the two-valued result of an availability check.
type AvailabilityStatus string

const (
	StatusAvailable AvailabilityStatus = "available"
	StatusOccupied  AvailabilityStatus = "occupied"
)

// Availability is the outcome of checking a single (table, slot) pair.
type Availability struct {
	TableID int64
	Slot    types.SlotTime
	Status  AvailabilityStatus
}

// IsAvailable returns true if the slot is free for booking.
func (a *Availability) IsAvailable() bool {
	return a.Status == StatusAvailable
}

// Message возвращает человекочитаемое описание результата проверки
func (a *Availability) Message() string {
	if a.IsAvailable() {
		return fmt.Sprintf("table %d is available at %s", a.TableID, a.Slot)
	}
	return fmt.Sprintf("table %d is already booked at %s", a.TableID, a.Slot)
}
