package tables

import (
	"context"
	"fmt"

	"github.com/m04kA/RST-BookingService/internal/service/tables/models"
)

// Service сервис справочных данных о столах ресторана
type Service struct {
	tableRepo TableRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса столов
func NewService(tableRepo TableRepository, logger Logger) *Service {
	return &Service{
		tableRepo: tableRepo,
		logger:    logger,
	}
}

// List возвращает все столы, упорядоченные по номеру
func (s *Service) List(ctx context.Context) (*models.TableListResponse, error) {
	s.logger.Info("List: fetching tables")

	tables, err := s.tableRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrStorageUnavailable, err)
	}

	s.logger.Info("List: fetched %d tables", len(tables))
	return models.FromDomainTableList(tables), nil
}
