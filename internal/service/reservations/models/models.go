package models

import (
	"time"

	"github.com/m04kA/RST-BookingService/internal/domain"
	"github.com/m04kA/RST-BookingService/pkg/types"
)

// Request модели

// GetTableReservationsRequest запрос на получение бронирований стола
type GetTableReservationsRequest struct {
	TableID  int64           `json:"tableId"`
	FromSlot *types.SlotTime `json:"fromSlot,omitempty"` // Начало периода (опционально)
	ToSlot   *types.SlotTime `json:"toSlot,omitempty"`   // Конец периода (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetTableReservationsRequest) ToDomainFilter() domain.TableReservationsFilter {
	return domain.TableReservationsFilter{
		TableID:  r.TableID,
		FromSlot: r.FromSlot,
		ToSlot:   r.ToSlot,
	}
}

// Response модели

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID         int64   `json:"id"`
	CustomerID int64   `json:"customerId"`
	TableID    int64   `json:"tableId"`
	Slot       string  `json:"slot"` // "2022-11-12T19:00"
	PartySize  int     `json:"partySize"`
	Notes      *string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// AvailabilityResponse ответ на проверку доступности слота
type AvailabilityResponse struct {
	TableID int64  `json:"tableId"`
	Slot    string `json:"slot"`
	Status  string `json:"status"` // "available" | "occupied"
	Message string `json:"message"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	return &ReservationResponse{
		ID:         r.ID,
		CustomerID: r.CustomerID,
		TableID:    r.TableID,
		Slot:       r.Slot.String(),
		PartySize:  r.PartySize,
		Notes:      r.Notes,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	if reservations == nil {
		return &ReservationListResponse{
			Reservations: []ReservationResponse{},
		}
	}

	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, len(reservations)),
	}

	for i, reservation := range reservations {
		if r := FromDomainReservation(reservation); r != nil {
			resp.Reservations[i] = *r
		}
	}

	return resp
}

// FromDomainAvailability конвертирует результат проверки доступности в DTO
func FromDomainAvailability(a *domain.Availability) *AvailabilityResponse {
	return &AvailabilityResponse{
		TableID: a.TableID,
		Slot:    a.Slot.String(),
		Status:  string(a.Status),
		Message: a.Message(),
	}
}
