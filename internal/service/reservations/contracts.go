package reservations

import (
	"context"

	"github.com/m04kA/RST-BookingService/internal/domain"
	"github.com/m04kA/RST-BookingService/pkg/types"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	GetAtSlot(ctx context.Context, tableID int64, slot types.SlotTime) ([]*domain.Reservation, error)
	GetByCustomerID(ctx context.Context, customerID int64) ([]*domain.Reservation, error)
	GetByTableWithFilter(ctx context.Context, filter domain.TableReservationsFilter) ([]*domain.Reservation, error)
	Delete(ctx context.Context, id int64) error
}

// TableRepository интерфейс репозитория справочных данных о столах
type TableRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Table, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
