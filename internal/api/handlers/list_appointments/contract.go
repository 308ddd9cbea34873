package list_appointments

import (
	"context"

	"github.com/m04kA/BRB-BookingService/internal/service/appointments/models"
)

type AppointmentsService interface {
	ListUpcoming(ctx context.Context) ([]*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
