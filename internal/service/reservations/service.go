package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/RST-BookingService/internal/domain"
	reservationRepo "github.com/m04kA/RST-BookingService/internal/infra/storage/reservation"
	tableRepo "github.com/m04kA/RST-BookingService/internal/infra/storage/table"
	"github.com/m04kA/RST-BookingService/internal/service/reservations/models"
	"github.com/m04kA/RST-BookingService/pkg/types"
)

// Service сервис для чтения и отмены бронирований
// Допуск и перенос бронирований живут в отдельных usecase с транзакциями
type Service struct {
	reservationRepo ReservationRepository
	tableRepo       TableRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	tableRepo TableRepository,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		tableRepo:       tableRepo,
		logger:          logger,
	}
}

// CheckAvailability проверяет, свободен ли стол на точное время слота
// Запрос только на чтение, без побочных эффектов; результат может устареть
// к моменту допуска — инвариант защищает транзакция допуска, а не эта проверка
func (s *Service) CheckAvailability(ctx context.Context, tableID int64, slot types.SlotTime) (*models.AvailabilityResponse, error) {
	s.logger.Info("CheckAvailability: table=%d, slot=%s", tableID, slot)

	if tableID <= 0 {
		return nil, fmt.Errorf("%w: tableID must be positive", ErrInvalidInput)
	}
	if slot.IsZero() {
		return nil, fmt.Errorf("%w: slot is required", ErrInvalidInput)
	}

	// Проверяем существование стола
	if _, err := s.tableRepo.GetByID(ctx, tableID); err != nil {
		if errors.Is(err, tableRepo.ErrTableNotFound) {
			s.logger.Warn("CheckAvailability: table id=%d not found", tableID)
			return nil, ErrTableNotFound
		}
		s.logger.Error("CheckAvailability: repository error for table id=%d: %v", tableID, err)
		return nil, fmt.Errorf("%w: CheckAvailability - repository error: %v", ErrStorageUnavailable, err)
	}

	existing, err := s.reservationRepo.GetAtSlot(ctx, tableID, slot)
	if err != nil {
		s.logger.Error("CheckAvailability: repository error for table id=%d: %v", tableID, err)
		return nil, fmt.Errorf("%w: CheckAvailability - repository error: %v", ErrStorageUnavailable, err)
	}

	availability := &domain.Availability{
		TableID: tableID,
		Slot:    slot,
		Status:  domain.StatusAvailable,
	}
	if len(existing) > 0 {
		availability.Status = domain.StatusOccupied
	}

	s.logger.Info("CheckAvailability: table=%d, slot=%s, status=%s", tableID, slot, availability.Status)
	return models.FromDomainAvailability(availability), nil
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d", id)

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrStorageUnavailable, err)
	}

	return models.FromDomainReservation(reservation), nil
}

// GetByCustomer получает историю бронирований клиента, новые первыми
func (s *Service) GetByCustomer(ctx context.Context, customerID int64) (*models.ReservationListResponse, error) {
	s.logger.Info("GetByCustomer: fetching reservations for customer=%d", customerID)

	if customerID <= 0 {
		return nil, fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	reservations, err := s.reservationRepo.GetByCustomerID(ctx, customerID)
	if err != nil {
		s.logger.Error("GetByCustomer: repository error for customer=%d: %v", customerID, err)
		return nil, fmt.Errorf("%w: GetByCustomer - repository error: %v", ErrStorageUnavailable, err)
	}

	s.logger.Info("GetByCustomer: fetched %d reservations for customer=%d", len(reservations), customerID)
	return models.FromDomainReservationList(reservations), nil
}

// GetByTable получает бронирования стола с фильтрацией по периоду
func (s *Service) GetByTable(ctx context.Context, req *models.GetTableReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("GetByTable: fetching reservations for table=%d", req.TableID)

	if req.TableID <= 0 {
		return nil, fmt.Errorf("%w: tableID must be positive", ErrInvalidInput)
	}
	if req.FromSlot != nil && req.ToSlot != nil && req.ToSlot.IsBefore(*req.FromSlot) {
		return nil, fmt.Errorf("%w: toSlot is before fromSlot", ErrInvalidInput)
	}

	// Проверяем существование стола
	if _, err := s.tableRepo.GetByID(ctx, req.TableID); err != nil {
		if errors.Is(err, tableRepo.ErrTableNotFound) {
			s.logger.Warn("GetByTable: table id=%d not found", req.TableID)
			return nil, ErrTableNotFound
		}
		s.logger.Error("GetByTable: repository error for table id=%d: %v", req.TableID, err)
		return nil, fmt.Errorf("%w: GetByTable - repository error: %v", ErrStorageUnavailable, err)
	}

	reservations, err := s.reservationRepo.GetByTableWithFilter(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("GetByTable: repository error for table=%d: %v", req.TableID, err)
		return nil, fmt.Errorf("%w: GetByTable - repository error: %v", ErrStorageUnavailable, err)
	}

	s.logger.Info("GetByTable: fetched %d reservations for table=%d", len(reservations), req.TableID)
	return models.FromDomainReservationList(reservations), nil
}

// Cancel отменяет бронирование безусловным удалением
// Проверка конфликтов не нужна: снятие брони не может нарушить инвариант
// уникальности слота. Повторная отмена возвращает ErrReservationNotFound
func (s *Service) Cancel(ctx context.Context, id int64) error {
	s.logger.Info("Cancel: cancelling reservation id=%d", id)

	if err := s.reservationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Cancel: reservation id=%d not found", id)
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrStorageUnavailable, err)
	}

	s.logger.Info("Cancel: successfully cancelled reservation id=%d", id)
	return nil
}
