package check_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/RST-BookingService/internal/api/handlers"
	"github.com/m04kA/RST-BookingService/internal/service/reservations"
	"github.com/m04kA/RST-BookingService/pkg/types"
)

const (
	msgInvalidTableID = "некорректный ID стола"
	msgMissingSlot    = "отсутствует параметр slot"
	msgInvalidSlot    = "некорректный формат слота, ожидается YYYY-MM-DDTHH:MM"
	msgTableNotFound  = "стол не найден"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/tables/{tableId}/availability?slot=2022-10-11T20:00
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем tableId из URL
	vars := mux.Vars(r)
	tableIDStr := vars["tableId"]

	tableID, err := strconv.ParseInt(tableIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /tables/{id}/availability - Invalid table ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTableID)
		return
	}

	// Парсим слот из query параметра
	slotStr := r.URL.Query().Get("slot")
	if slotStr == "" {
		h.logger.Warn("GET /tables/{id}/availability - Missing slot parameter")
		handlers.RespondBadRequest(w, msgMissingSlot)
		return
	}

	slot, err := types.NewSlotTimeFromString(slotStr)
	if err != nil {
		h.logger.Warn("GET /tables/{id}/availability - Invalid slot: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlot)
		return
	}

	availability, err := h.service.CheckAvailability(r.Context(), tableID, slot)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrTableNotFound):
			h.logger.Warn("GET /tables/{id}/availability - Table not found: table_id=%d", tableID)
			handlers.RespondNotFound(w, msgTableNotFound)

		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /tables/{id}/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, reservations.ErrStorageUnavailable):
			h.logger.Error("GET /tables/{id}/availability - Storage unavailable: table_id=%d, error=%v",
				tableID, err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("GET /tables/{id}/availability - Failed: table_id=%d, error=%v", tableID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /tables/{id}/availability - Checked: table_id=%d, slot=%s, status=%s",
		tableID, slot, availability.Status)
	handlers.RespondJSON(w, http.StatusOK, availability)
}
