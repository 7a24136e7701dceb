package admit_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/RST-BookingService/internal/domain"
	reservationRepo "github.com/m04kA/RST-BookingService/internal/infra/storage/reservation"
	tableRepo "github.com/m04kA/RST-BookingService/internal/infra/storage/table"
	customerClient "github.com/m04kA/RST-BookingService/internal/integrations/customerservice"
)

// UseCase use case допуска бронирования: атомарный check-then-insert
//
// Гонку двух конкурентных запросов на один (стол, слот) закрывают три механизма:
//  1. SERIALIZABLE транзакция вокруг проверки и вставки
//  2. FOR UPDATE блокировка строки стола и конфликтующих бронирований
//  3. UNIQUE (table_id, slot) в схеме — проигранная гонка всплывает как
//     нарушение констрейнта и транслируется в ErrSlotTaken
type UseCase struct {
	reservationRepo ReservationRepository
	tableRepo       TableRepository
	customerClient  CustomerServiceClient
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	tableRepo TableRepository,
	customerClient CustomerServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		tableRepo:       tableRepo,
		customerClient:  customerClient,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case допуска бронирования
// Транзакция гарантированно завершается commit или rollback на каждом пути
// выхода, включая отмену контекста; частичная вставка не наблюдаема
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AdmitBooking: table=%d, customer=%d, slot=%s, party_size=%d",
		req.TableID, req.CustomerID, req.Slot, req.PartySize)

	// 1. Валидация входных данных — до открытия транзакции
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AdmitBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование клиента во внешнем CustomerService
	// Вне транзакции: внешний HTTP вызов не должен держать блокировки БД
	if _, err := uc.customerClient.GetCustomer(ctx, req.CustomerID); err != nil {
		if errors.Is(err, customerClient.ErrCustomerNotFound) {
			uc.logger.Warn("AdmitBooking: customer id=%d not found", req.CustomerID)
			return nil, ErrCustomerNotFound
		}
		uc.logger.Error("AdmitBooking: failed to get customer id=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: failed to get customer: %v", ErrStorageUnavailable, err)
	}

	// Переменная для хранения результата
	var result *domain.Reservation

	// 3. Выполняем check-then-insert в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем стол с блокировкой строки (FOR UPDATE)
		// Блокировка сериализует конкурентные допуски по этому столу
		table, err := uc.tableRepo.GetByID(txCtx, req.TableID)
		if err != nil {
			if errors.Is(err, tableRepo.ErrTableNotFound) {
				uc.logger.Warn("AdmitBooking: table id=%d not found", req.TableID)
				return ErrTableNotFound
			}
			uc.logger.Error("AdmitBooking: failed to get table id=%d: %v", req.TableID, err)
			return fmt.Errorf("%w: failed to get table: %v", ErrStorageUnavailable, err)
		}

		// 3.2. Проверяем вместимость стола
		if !table.Fits(req.PartySize) {
			uc.logger.Warn("AdmitBooking: party size %d exceeds capacity %d of table id=%d",
				req.PartySize, table.Capacity, req.TableID)
			return fmt.Errorf("%w: party of %d, capacity %d", ErrPartySizeExceedsCapacity, req.PartySize, table.Capacity)
		}

		// 3.3. Считаем существующие бронирования на точный слот (FOR UPDATE)
		existing, err := uc.reservationRepo.GetAtSlot(txCtx, req.TableID, req.Slot)
		if err != nil {
			uc.logger.Error("AdmitBooking: failed to get reservations at slot: %v", err)
			return fmt.Errorf("%w: failed to check slot: %v", ErrStorageUnavailable, err)
		}

		// 3.4. Конфликт: слот занят — откат без изменения состояния
		if len(existing) > 0 {
			uc.logger.Warn("AdmitBooking: slot taken, table=%d, slot=%s", req.TableID, req.Slot)
			return ErrSlotTaken
		}

		// 3.5. Вставляем бронирование и фиксируем транзакцию
		created, err := uc.reservationRepo.Create(txCtx, &domain.Reservation{
			CustomerID: req.CustomerID,
			TableID:    req.TableID,
			Slot:       req.Slot,
			PartySize:  req.PartySize,
			Notes:      req.Notes,
		})
		if err != nil {
			// Проигранная гонка: UNIQUE (table_id, slot) сработал на commit-пути
			if errors.Is(err, reservationRepo.ErrSlotTaken) {
				uc.logger.Warn("AdmitBooking: lost insert race, table=%d, slot=%s", req.TableID, req.Slot)
				return ErrSlotTaken
			}
			if errors.Is(err, reservationRepo.ErrReferencedRowMissing) {
				uc.logger.Warn("AdmitBooking: referenced row missing, table=%d, customer=%d", req.TableID, req.CustomerID)
				return ErrTableNotFound
			}
			uc.logger.Error("AdmitBooking: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrStorageUnavailable, err)
		}

		result = created
		return nil
	})

	if err != nil {
		// Конкурирующая SERIALIZABLE транзакция победила — для вызывающего это
		// тот же исход, что и проигранная вставка: слот занят
		if errors.Is(err, reservationRepo.ErrSerializationFailure) {
			uc.logger.Warn("AdmitBooking: serialization failure, table=%d, slot=%s", req.TableID, req.Slot)
			return nil, ErrSlotTaken
		}
		return nil, err
	}

	uc.logger.Info("AdmitBooking: successfully admitted reservation id=%d", result.ID)

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
