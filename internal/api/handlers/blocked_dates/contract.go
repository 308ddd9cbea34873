package blocked_dates

import (
	"context"

	"github.com/m04kA/BRB-BookingService/internal/service/blockeddates/models"
)

type BlockedDatesService interface {
	CreateRange(ctx context.Context, req *models.BlockRangeRequest) (int, error)
	List(ctx context.Context) ([]*models.BlockedDateResponse, error)
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
