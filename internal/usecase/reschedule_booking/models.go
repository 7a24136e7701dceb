package reschedule_booking

import (
	"time"

	"github.com/m04kA/RST-BookingService/pkg/types"
)

// Request модель запроса на перенос бронирования
type Request struct {
	ReservationID int64          // ID переносимого бронирования
	NewSlot       types.SlotTime // Новый слот
}

// Response модель ответа с перенесенным бронированием
type Response struct {
	ID         int64          // ID бронирования
	TableID    int64          // ID стола
	CustomerID int64          // ID клиента
	Slot       types.SlotTime // Новый слот
	PartySize  int            // Количество гостей
	Notes      *string        // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
