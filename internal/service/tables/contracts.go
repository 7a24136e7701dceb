package tables

import (
	"context"

	"github.com/m04kA/RST-BookingService/internal/domain"
)

// TableRepository интерфейс репозитория справочных данных о столах
type TableRepository interface {
	List(ctx context.Context) ([]*domain.Table, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
