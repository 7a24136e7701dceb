package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RST-BookingService/pkg/types"
)

func mustSlot(t *testing.T, s string) types.SlotTime {
	t.Helper()
	slot, err := types.NewSlotTimeFromString(s)
	require.NoError(t, err)
	return slot
}

func TestReservation_ConflictsWith(t *testing.T) {
	base := &Reservation{TableID: 3, Slot: mustSlot(t, "2022-11-12T19:00"), PartySize: 2}

	sameTableSameSlot := &Reservation{TableID: 3, Slot: mustSlot(t, "2022-11-12T19:00"), PartySize: 4}
	sameTableOtherSlot := &Reservation{TableID: 3, Slot: mustSlot(t, "2022-11-12T19:30"), PartySize: 2}
	otherTableSameSlot := &Reservation{TableID: 4, Slot: mustSlot(t, "2022-11-12T19:00"), PartySize: 2}

	assert.True(t, base.ConflictsWith(sameTableSameSlot))
	// Точное совпадение времени, а не пересечение интервалов
	assert.False(t, base.ConflictsWith(sameTableOtherSlot))
	assert.False(t, base.ConflictsWith(otherTableSameSlot))
}

func TestTable_Fits(t *testing.T) {
	table := &Table{ID: 3, Number: 3, Capacity: 4}

	assert.True(t, table.Fits(1))
	assert.True(t, table.Fits(4))
	assert.False(t, table.Fits(5))
}

func TestAvailability_Message(t *testing.T) {
	slot := mustSlot(t, "2022-11-12T19:00")

	free := &Availability{TableID: 3, Slot: slot, Status: StatusAvailable}
	assert.True(t, free.IsAvailable())
	assert.Equal(t, "table 3 is available at 2022-11-12T19:00", free.Message())

	taken := &Availability{TableID: 3, Slot: slot, Status: StatusOccupied}
	assert.False(t, taken.IsAvailable())
	assert.Equal(t, "table 3 is already booked at 2022-11-12T19:00", taken.Message())
}
