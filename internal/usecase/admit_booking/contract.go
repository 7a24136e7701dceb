package admit_booking

import (
	"context"

	"github.com/m04kA/RST-BookingService/internal/domain"
	"github.com/m04kA/RST-BookingService/internal/integrations/customerservice"
	"github.com/m04kA/RST-BookingService/pkg/types"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
	GetAtSlot(ctx context.Context, tableID int64, slot types.SlotTime) ([]*domain.Reservation, error)
}

// TableRepository интерфейс репозитория справочных данных о столах
type TableRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Table, error)
}

// CustomerServiceClient интерфейс клиента для CustomerService
type CustomerServiceClient interface {
	GetCustomer(ctx context.Context, customerID int64) (*customerservice.Customer, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
