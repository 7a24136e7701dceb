package reschedule_booking

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reschedule_booking: reservation not found")

	// ErrSlotTaken возвращается, когда новый слот занят
	// Исходный слот бронирования при этом не изменяется
	ErrSlotTaken = errors.New("reschedule_booking: table already booked at new slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reschedule_booking: invalid input data")

	// ErrStorageUnavailable возвращается при недоступности хранилища
	ErrStorageUnavailable = errors.New("reschedule_booking: storage unavailable")
)
