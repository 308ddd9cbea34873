package blockeddates

import (
	"context"
	"time"

	"github.com/m04kA/BRB-BookingService/internal/domain"
)

// BlockedDateRepository интерфейс репозитория заблокированных дат
type BlockedDateRepository interface {
	Create(ctx context.Context, bd *domain.BlockedDate) (*domain.BlockedDate, error)
	GetByDate(ctx context.Context, date time.Time) (*domain.BlockedDate, error)
	List(ctx context.Context) ([]*domain.BlockedDate, error)
	Delete(ctx context.Context, id int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
