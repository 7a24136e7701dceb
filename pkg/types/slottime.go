package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// SlotFormat формат слота бронирования: дата и время с точностью до минуты
const SlotFormat = "2006-01-02T15:04"

var (
	// ErrInvalidSlotFormat возвращается при некорректном формате строки слота
	ErrInvalidSlotFormat = errors.New("types: invalid slot format, expected YYYY-MM-DDTHH:MM")

	// ErrInvalidSlotValue возвращается при невозможности сконвертировать значение БД в слот
	ErrInvalidSlotValue = errors.New("types: cannot convert value to slot time")
)

// SlotTime represents the date-time value identifying when a table is reserved.
// Precision is one minute; seconds and finer are truncated on construction so
// that two slots built from different sources compare equal.
type SlotTime struct {
	t time.Time
}

// NewSlotTime создает слот из time.Time, обрезая до минуты (UTC)
func NewSlotTime(t time.Time) SlotTime {
	return SlotTime{t: t.UTC().Truncate(time.Minute)}
}

// NewSlotTimeFromString парсит слот из строки формата "2006-01-02T15:04"
func NewSlotTimeFromString(s string) (SlotTime, error) {
	t, err := time.Parse(SlotFormat, s)
	if err != nil {
		return SlotTime{}, fmt.Errorf("%w: %q", ErrInvalidSlotFormat, s)
	}
	return SlotTime{t: t.UTC()}, nil
}

// Time возвращает слот как time.Time (UTC, точность до минуты)
func (s SlotTime) Time() time.Time {
	return s.t
}

// String возвращает слот в формате "2006-01-02T15:04"
func (s SlotTime) String() string {
	return s.t.Format(SlotFormat)
}

// IsZero возвращает true, если слот не задан
func (s SlotTime) IsZero() bool {
	return s.t.IsZero()
}

// Equal проверяет точное совпадение слотов
func (s SlotTime) Equal(other SlotTime) bool {
	return s.t.Equal(other.t)
}

// IsBefore проверяет, что слот раньше другого
func (s SlotTime) IsBefore(other SlotTime) bool {
	return s.t.Before(other.t)
}

// IsAfter проверяет, что слот позже другого
func (s SlotTime) IsAfter(other SlotTime) bool {
	return s.t.After(other.t)
}

// AddMinutes возвращает слот, сдвинутый на указанное количество минут
func (s SlotTime) AddMinutes(minutes int) SlotTime {
	return SlotTime{t: s.t.Add(time.Duration(minutes) * time.Minute)}
}

// Value реализует driver.Valuer для записи в БД (колонка TIMESTAMPTZ)
func (s SlotTime) Value() (driver.Value, error) {
	return s.t, nil
}

// Scan реализует sql.Scanner для чтения из БД
func (s *SlotTime) Scan(value interface{}) error {
	switch v := value.(type) {
	case time.Time:
		s.t = v.UTC().Truncate(time.Minute)
		return nil
	case nil:
		s.t = time.Time{}
		return nil
	default:
		return fmt.Errorf("%w: %T", ErrInvalidSlotValue, value)
	}
}

// MarshalJSON сериализует слот в JSON строку "2006-01-02T15:04"
func (s SlotTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalJSON парсит слот из JSON строки
func (s *SlotTime) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return ErrInvalidSlotFormat
	}
	parsed, err := NewSlotTimeFromString(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
