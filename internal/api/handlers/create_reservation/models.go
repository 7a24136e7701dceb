package create_reservation

import (
	"time"

	admitBooking "github.com/m04kA/RST-BookingService/internal/usecase/admit_booking"
	"github.com/m04kA/RST-BookingService/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	TableID    int64   `json:"tableId"`
	CustomerID int64   `json:"customerId"`
	Slot       string  `json:"slot"` // "2022-11-12T19:00"
	PartySize  int     `json:"partySize"`
	Notes      *string `json:"notes,omitempty"`
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
func (r *CreateReservationRequest) ToUseCaseRequest() (*admitBooking.Request, error) {
	// Парсим слот
	slot, err := types.NewSlotTimeFromString(r.Slot)
	if err != nil {
		return nil, err
	}

	return &admitBooking.Request{
		TableID:    r.TableID,
		CustomerID: r.CustomerID,
		Slot:       slot,
		PartySize:  r.PartySize,
		Notes:      r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *admitBooking.Response) *ReservationResponse {
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
