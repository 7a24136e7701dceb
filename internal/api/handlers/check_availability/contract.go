package check_availability

import (
	"context"

	"github.com/m04kA/RST-BookingService/internal/service/reservations/models"
	"github.com/m04kA/RST-BookingService/pkg/types"
)

type ReservationService interface {
	CheckAvailability(ctx context.Context, tableID int64, slot types.SlotTime) (*models.AvailabilityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
