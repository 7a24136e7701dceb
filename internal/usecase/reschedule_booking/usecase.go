package reschedule_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/RST-BookingService/internal/domain"
	reservationRepo "github.com/m04kA/RST-BookingService/internal/infra/storage/reservation"
	tableRepo "github.com/m04kA/RST-BookingService/internal/infra/storage/table"
)

// UseCase use case переноса бронирования: тот же атомарный check-then-write,
// что и при допуске, но с UPDATE существующей строки вместо INSERT
// Собственная строка бронирования исключается из подсчета конфликтов,
// поэтому перенос на тот же слот проходит без ошибки
type UseCase struct {
	reservationRepo ReservationRepository
	tableRepo       TableRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	tableRepo TableRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		tableRepo:       tableRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case переноса бронирования
// При отказе на любом шаге транзакция откатывается и исходный слот
// бронирования остаётся без изменений
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleBooking: reservation=%d, new_slot=%s", req.ReservationID, req.NewSlot)

	// 1. Валидация входных данных — до открытия транзакции
	if req.ReservationID <= 0 {
		uc.logger.Warn("RescheduleBooking: invalid reservation id=%d", req.ReservationID)
		return nil, fmt.Errorf("%w: reservationID must be positive", ErrInvalidInput)
	}
	if req.NewSlot.IsZero() {
		uc.logger.Warn("RescheduleBooking: new slot is required")
		return nil, fmt.Errorf("%w: newSlot is required", ErrInvalidInput)
	}

	// 2. Находим бронирование вне транзакции, чтобы узнать его стол:
	// стол бронирования неизменяем, перенос меняет только слот
	peeked, err := uc.reservationRepo.GetByID(ctx, req.ReservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			uc.logger.Warn("RescheduleBooking: reservation id=%d not found", req.ReservationID)
			return nil, ErrReservationNotFound
		}
		uc.logger.Error("RescheduleBooking: failed to get reservation id=%d: %v", req.ReservationID, err)
		return nil, fmt.Errorf("%w: failed to get reservation: %v", ErrStorageUnavailable, err)
	}

	var result *domain.Reservation

	// 3. Выполняем check-then-update в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Блокируем строку стола ДО строк бронирований — тот же
		// порядок блокировок, что и при допуске, иначе конкурентные
		// допуск и перенос по одному столу могут взаимно заблокироваться
		if _, err := uc.tableRepo.GetByID(txCtx, peeked.TableID); err != nil {
			if errors.Is(err, tableRepo.ErrTableNotFound) {
				uc.logger.Warn("RescheduleBooking: table id=%d not found", peeked.TableID)
				return ErrReservationNotFound
			}
			uc.logger.Error("RescheduleBooking: failed to get table id=%d: %v", peeked.TableID, err)
			return fmt.Errorf("%w: failed to get table: %v", ErrStorageUnavailable, err)
		}

		// 3.2. Перечитываем бронирование уже с блокировкой строки:
		// между шагом 2 и транзакцией его могли отменить
		reservation, err := uc.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Warn("RescheduleBooking: reservation id=%d not found", req.ReservationID)
				return ErrReservationNotFound
			}
			uc.logger.Error("RescheduleBooking: failed to get reservation id=%d: %v", req.ReservationID, err)
			return fmt.Errorf("%w: failed to get reservation: %v", ErrStorageUnavailable, err)
		}

		// 3.3. Считаем бронирования на новый слот, исключая переносимое
		existing, err := uc.reservationRepo.GetAtSlot(txCtx, reservation.TableID, req.NewSlot)
		if err != nil {
			uc.logger.Error("RescheduleBooking: failed to get reservations at new slot: %v", err)
			return fmt.Errorf("%w: failed to check new slot: %v", ErrStorageUnavailable, err)
		}

		for _, other := range existing {
			if other.ID != reservation.ID {
				uc.logger.Warn("RescheduleBooking: new slot taken, table=%d, slot=%s",
					reservation.TableID, req.NewSlot)
				return ErrSlotTaken
			}
		}

		// 3.4. Обновляем слот существующей строки
		if err := uc.reservationRepo.UpdateSlot(txCtx, reservation.ID, req.NewSlot); err != nil {
			if errors.Is(err, reservationRepo.ErrSlotTaken) {
				uc.logger.Warn("RescheduleBooking: lost update race, table=%d, slot=%s",
					reservation.TableID, req.NewSlot)
				return ErrSlotTaken
			}
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			uc.logger.Error("RescheduleBooking: failed to update slot: %v", err)
			return fmt.Errorf("%w: failed to update slot: %v", ErrStorageUnavailable, err)
		}

		reservation.Slot = req.NewSlot
		result = reservation
		return nil
	})

	if err != nil {
		if errors.Is(err, reservationRepo.ErrSerializationFailure) {
			uc.logger.Warn("RescheduleBooking: serialization failure, reservation=%d", req.ReservationID)
			return nil, ErrSlotTaken
		}
		return nil, err
	}

	uc.logger.Info("RescheduleBooking: successfully rescheduled reservation id=%d to %s",
		result.ID, req.NewSlot)

	return &Response{
		ID:         result.ID,
		TableID:    result.TableID,
		CustomerID: result.CustomerID,
		Slot:       result.Slot,
		PartySize:  result.PartySize,
		Notes:      result.Notes,
		CreatedAt:  result.CreatedAt,
		UpdatedAt:  result.UpdatedAt,
	}, nil
}
