package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSlotTimeFromString(t *testing.T) {
	slot, err := NewSlotTimeFromString("2022-11-12T19:00")
	require.NoError(t, err)
	assert.Equal(t, "2022-11-12T19:00", slot.String())
	assert.False(t, slot.IsZero())

	_, err = NewSlotTimeFromString("2022-11-12 19:00")
	require.ErrorIs(t, err, ErrInvalidSlotFormat)

	_, err = NewSlotTimeFromString("not-a-slot")
	require.ErrorIs(t, err, ErrInvalidSlotFormat)
}

func TestNewSlotTime_TruncatesToMinute(t *testing.T) {
	raw := time.Date(2022, 11, 12, 19, 0, 37, 123456789, time.UTC)
	slot := NewSlotTime(raw)

	fromString, err := NewSlotTimeFromString("2022-11-12T19:00")
	require.NoError(t, err)

	// Слоты из разных источников на одну минуту должны совпадать
	assert.True(t, slot.Equal(fromString))
}

func TestSlotTime_Ordering(t *testing.T) {
	earlier, err := NewSlotTimeFromString("2022-11-12T19:00")
	require.NoError(t, err)
	later := earlier.AddMinutes(90)

	assert.True(t, earlier.IsBefore(later))
	assert.True(t, later.IsAfter(earlier))
	assert.False(t, earlier.Equal(later))
	assert.Equal(t, "2022-11-12T20:30", later.String())
}

func TestSlotTime_Scan(t *testing.T) {
	var slot SlotTime

	err := slot.Scan(time.Date(2022, 11, 12, 19, 0, 15, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "2022-11-12T19:00", slot.String())

	err = slot.Scan(nil)
	require.NoError(t, err)
	assert.True(t, slot.IsZero())

	err = slot.Scan("2022-11-12T19:00")
	require.ErrorIs(t, err, ErrInvalidSlotValue)
}

func TestSlotTime_JSON(t *testing.T) {
	slot, err := NewSlotTimeFromString("2022-11-12T19:00")
	require.NoError(t, err)

	data, err := json.Marshal(slot)
	require.NoError(t, err)
	assert.Equal(t, `"2022-11-12T19:00"`, string(data))

	var decoded SlotTime
	require.NoError(t, json.Unmarshal([]byte(`"2022-11-12T19:00"`), &decoded))
	assert.True(t, decoded.Equal(slot))

	err = json.Unmarshal([]byte(`"12.11.2022"`), &decoded)
	require.ErrorIs(t, err, ErrInvalidSlotFormat)
}
