package models

import (
	"time"

	"github.com/m04kA/BRB-BookingService/internal/domain"
)

// AppointmentResponse модель записи для выдачи наружу
type AppointmentResponse struct {
	ID           int64
	ClientName   string
	Phone        string
	Service      string
	ServiceLabel string
	StartAt      time.Time
	EndAt        time.Time
	CreatedAt    time.Time
}

// AdminListRequest параметры админского списка
type AdminListRequest struct {
	SortBy string // поле сортировки (whitelist в репозитории)
	Order  string // "asc" | "desc"
}

// AdminListResponse админский список с состоянием сортировки
type AdminListResponse struct {
	Appointments []*AppointmentResponse
	SortBy       string            // фактически примененное поле
	Order        string            // фактически примененный порядок
	NextOrder    map[string]string // колонка -> порядок при следующем клике
}

// FromDomainAppointment конвертирует доменную запись в response
func FromDomainAppointment(appt *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:           appt.ID,
		ClientName:   appt.ClientName,
		Phone:        appt.Phone,
		Service:      appt.Service,
		ServiceLabel: domain.ServiceLabel(appt.Service),
		StartAt:      appt.StartAt,
		EndAt:        appt.EndAt,
		CreatedAt:    appt.CreatedAt,
	}
}

// FromDomainAppointmentList конвертирует список доменных записей
func FromDomainAppointmentList(appts []*domain.Appointment) []*AppointmentResponse {
	result := make([]*AppointmentResponse, len(appts))
	for i, appt := range appts {
		result[i] = FromDomainAppointment(appt)
	}
	return result
}
