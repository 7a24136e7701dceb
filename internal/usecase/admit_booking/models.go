package admit_booking

import (
	"time"

	"github.com/m04kA/RST-BookingService/pkg/types"
)

// Request модель запроса на допуск бронирования
type Request struct {
	TableID    int64          // ID стола
	CustomerID int64          // ID клиента
	Slot       types.SlotTime // Слот бронирования (например, "2022-11-12T19:00")
	PartySize  int            // Количество гостей
	Notes      *string        // Дополнительные заметки (опционально)
}

// Response модель ответа с допущенным бронированием
type Response struct {
	ID         int64          // ID созданного бронирования
	TableID    int64          // ID стола
	CustomerID int64          // ID клиента
	Slot       types.SlotTime // Слот бронирования
	PartySize  int            // Количество гостей
	Notes      *string        // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
