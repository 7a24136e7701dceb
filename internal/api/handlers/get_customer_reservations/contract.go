package get_customer_reservations

import (
	"context"

	"github.com/m04kA/RST-BookingService/internal/service/reservations/models"
)

type ReservationService interface {
	GetByCustomer(ctx context.Context, customerID int64) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
