package admin_appointments

import (
	"context"

	"github.com/m04kA/BRB-BookingService/internal/service/appointments/models"
)

type AppointmentsService interface {
	ListAdmin(ctx context.Context, req *models.AdminListRequest) (*models.AdminListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
