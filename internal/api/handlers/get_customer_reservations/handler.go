package get_customer_reservations

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/RST-BookingService/internal/api/handlers"
	"github.com/m04kA/RST-BookingService/internal/api/middleware"
	"github.com/m04kA/RST-BookingService/internal/service/reservations"
)

const (
	msgInvalidCustomerID = "некорректный ID клиента"
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

// Handle GET /api/v1/customers/{customerId}/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем customerId из URL
	vars := mux.Vars(r)
	customerIDStr := vars["customerId"]

	customerID, err := strconv.ParseInt(customerIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /customers/{id}/reservations - Invalid customer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCustomerID)
		return
	}

	if userID, ok := middleware.GetUserID(r.Context()); ok {
		h.logger.Info("GET /customers/{id}/reservations - Requested by user_id=%d for customer_id=%d",
			userID, customerID)
	}

	result, err := h.service.GetByCustomer(r.Context(), customerID)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /customers/{id}/reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCustomerID)

		case errors.Is(err, reservations.ErrStorageUnavailable):
			h.logger.Error("GET /customers/{id}/reservations - Storage unavailable: customer_id=%d, error=%v",
				customerID, err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("GET /customers/{id}/reservations - Failed: customer_id=%d, error=%v",
				customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /customers/{id}/reservations - Retrieved %d reservations: customer_id=%d",
		len(result.Reservations), customerID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
