package admin_appointments

import (
	"time"

	"github.com/m04kA/BRB-BookingService/internal/domain"
	"github.com/m04kA/BRB-BookingService/internal/service/appointments/models"
)

// AppointmentResponse HTTP модель записи для админского списка
// Админ видит все поля, включая телефон
type AppointmentResponse struct {
	ID           int64  `json:"id"`
	ClientName   string `json:"clientName"`
	Phone        string `json:"phone"`
	Service      string `json:"service"`
	ServiceLabel string `json:"serviceLabel"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	CreatedAt    string `json:"createdAt"`
}

// AdminListResponse тело ответа GET /admin
// NextOrder подсказывает фронту порядок для следующего клика по колонке
type AdminListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	SortBy       string                `json:"sortBy"`
	Order        string                `json:"order"`
	NextOrder    map[string]string     `json:"nextOrder"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.AdminListResponse) *AdminListResponse {
	appts := make([]AppointmentResponse, len(resp.Appointments))
	for i, appt := range resp.Appointments {
		appts[i] = AppointmentResponse{
			ID:           appt.ID,
			ClientName:   appt.ClientName,
			Phone:        appt.Phone,
			Service:      appt.Service,
			ServiceLabel: appt.ServiceLabel,
			Date:         appt.StartAt.Format(domain.DateFormat),
			StartTime:    appt.StartAt.Format(domain.TimeFormat),
			EndTime:      appt.EndAt.Format(domain.TimeFormat),
			CreatedAt:    appt.CreatedAt.Format(time.RFC3339),
		}
	}

	return &AdminListResponse{
		Appointments: appts,
		SortBy:       resp.SortBy,
		Order:        resp.Order,
		NextOrder:    resp.NextOrder,
	}
}
