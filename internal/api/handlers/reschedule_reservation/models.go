package reschedule_reservation

import (
	"time"

	rescheduleBooking "github.com/m04kA/RST-BookingService/internal/usecase/reschedule_booking"
	"github.com/m04kA/RST-BookingService/pkg/types"
)

// RescheduleReservationRequest HTTP request model
type RescheduleReservationRequest struct {
	NewSlot string `json:"newSlot"` // "2022-11-12T19:00"
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID         int64   `json:"id"`
	TableID    int64   `json:"tableId"`
	CustomerID int64   `json:"customerId"`
	Slot       string  `json:"slot"`
	PartySize  int     `json:"partySize"`
	Notes      *string `json:"notes,omitempty"`
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RescheduleReservationRequest) ToUseCaseRequest(reservationID int64) (*rescheduleBooking.Request, error) {
	newSlot, err := types.NewSlotTimeFromString(r.NewSlot)
	if err != nil {
		return nil, err
	}

	return &rescheduleBooking.Request{
		ReservationID: reservationID,
		NewSlot:       newSlot,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *rescheduleBooking.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:         resp.ID,
		TableID:    resp.TableID,
		CustomerID: resp.CustomerID,
		Slot:       resp.Slot.String(),
		PartySize:  resp.PartySize,
		Notes:      resp.Notes,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  resp.UpdatedAt.Format(time.RFC3339),
	}
}
