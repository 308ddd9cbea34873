package list_appointments

import (
	"github.com/m04kA/BRB-BookingService/internal/domain"
	"github.com/m04kA/BRB-BookingService/internal/service/appointments/models"
)

// AppointmentResponse HTTP модель записи для публичного списка
// Телефон наружу не отдаем
type AppointmentResponse struct {
	ID           int64  `json:"id"`
	ClientName   string `json:"clientName"`
	ServiceLabel string `json:"serviceLabel"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
}

// ListResponse тело ответа GET /
type ListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(appts []*models.AppointmentResponse) *ListResponse {
	result := make([]AppointmentResponse, len(appts))
	for i, appt := range appts {
		result[i] = AppointmentResponse{
			ID:           appt.ID,
			ClientName:   appt.ClientName,
			ServiceLabel: appt.ServiceLabel,
			Date:         appt.StartAt.Format(domain.DateFormat),
			StartTime:    appt.StartAt.Format(domain.TimeFormat),
			EndTime:      appt.EndAt.Format(domain.TimeFormat),
		}
	}
	return &ListResponse{Appointments: result}
}
