package get_table_reservations

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/RST-BookingService/internal/api/handlers"
	"github.com/m04kA/RST-BookingService/internal/service/reservations"
)

const (
	msgInvalidTableID = "некорректный ID стола"
	msgInvalidPeriod  = "некорректный период, ожидается YYYY-MM-DDTHH:MM"
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

// Handle GET /api/v1/tables/{tableId}/reservations?from=...&to=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем tableId из URL
	vars := mux.Vars(r)
	tableIDStr := vars["tableId"]

	tableID, err := strconv.ParseInt(tableIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /tables/{id}/reservations - Invalid table ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTableID)
		return
	}

	req, err := parseRequest(tableID, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /tables/{id}/reservations - Invalid period: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	result, err := h.service.GetByTable(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrTableNotFound):
			h.logger.Warn("GET /tables/{id}/reservations - Table not found: table_id=%d", tableID)
			handlers.RespondNotFound(w, msgTableNotFound)

		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /tables/{id}/reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		case errors.Is(err, reservations.ErrStorageUnavailable):
			h.logger.Error("GET /tables/{id}/reservations - Storage unavailable: table_id=%d, error=%v",
				tableID, err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("GET /tables/{id}/reservations - Failed: table_id=%d, error=%v", tableID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /tables/{id}/reservations - Retrieved %d reservations: table_id=%d",
		len(result.Reservations), tableID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
