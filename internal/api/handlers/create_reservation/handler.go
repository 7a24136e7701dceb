package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/RST-BookingService/internal/api/handlers"
	admitBooking "github.com/m04kA/RST-BookingService/internal/usecase/admit_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSlot        = "некорректный формат слота, ожидается YYYY-MM-DDTHH:MM"
	msgSlotTaken          = "стол уже забронирован на выбранное время"
	msgTableNotFound      = "стол не найден"
	msgCustomerNotFound   = "клиент не найден"
	msgPartyTooLarge      = "количество гостей превышает вместимость стола"
	msgInvalidInput       = "некорректные данные бронирования"
)

type Handler struct {
	useCase AdmitBookingUseCase
	logger  Logger
}

func NewHandler(useCase AdmitBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом слота)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse slot: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlot)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, admitBooking.ErrSlotTaken):
			h.logger.Warn("POST /reservations - Slot taken: table_id=%d, slot=%s", req.TableID, req.Slot)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, admitBooking.ErrTableNotFound):
			h.logger.Warn("POST /reservations - Table not found: table_id=%d", req.TableID)
			handlers.RespondNotFound(w, msgTableNotFound)

		case errors.Is(err, admitBooking.ErrCustomerNotFound):
			h.logger.Warn("POST /reservations - Customer not found: customer_id=%d", req.CustomerID)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		case errors.Is(err, admitBooking.ErrPartySizeExceedsCapacity):
			h.logger.Warn("POST /reservations - Party too large: table_id=%d, party_size=%d",
				req.TableID, req.PartySize)
			handlers.RespondBadRequest(w, msgPartyTooLarge)

		case errors.Is(err, admitBooking.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, admitBooking.ErrStorageUnavailable):
			h.logger.Error("POST /reservations - Storage unavailable: table_id=%d, error=%v", req.TableID, err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("POST /reservations - Failed to admit booking: table_id=%d, customer_id=%d, error=%v",
				req.TableID, req.CustomerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /reservations - Reservation admitted: reservation_id=%d, table_id=%d, customer_id=%d",
		result.ID, req.TableID, req.CustomerID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
