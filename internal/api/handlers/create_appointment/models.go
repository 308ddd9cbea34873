package create_appointment

import (
	"time"

	"github.com/m04kA/BRB-BookingService/internal/domain"
	createAppointment "github.com/m04kA/BRB-BookingService/internal/usecase/create_appointment"
	"github.com/m04kA/BRB-BookingService/pkg/types"
)

// ServiceOption позиция каталога услуг для формы записи
type ServiceOption struct {
	Tag             string `json:"tag"`
	Label           string `json:"label"`
	DurationMinutes int    `json:"durationMinutes"`
}

// BookingFormResponse ответ GET /book: каталог услуг для выбора
type BookingFormResponse struct {
	Services []ServiceOption `json:"services"`
}

// AppointmentResponse HTTP модель созданной записи
type AppointmentResponse struct {
	ID              int64  `json:"id"`
	ClientName      string `json:"clientName"`
	Phone           string `json:"phone"`
	Service         string `json:"service"`
	ServiceLabel    string `json:"serviceLabel"`
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	DurationMinutes int    `json:"durationMinutes"`
	SMSSent         bool   `json:"smsSent"`
}

// CreatedResponse тело ответа POST /book при успехе
type CreatedResponse struct {
	Message     string               `json:"message"`
	Appointment *AppointmentResponse `json:"appointment"`
}

// NewBookingFormResponse собирает каталог услуг
func NewBookingFormResponse() *BookingFormResponse {
	catalog := domain.ServiceCatalog()
	services := make([]ServiceOption, len(catalog))
	for i, svc := range catalog {
		services[i] = ServiceOption{
			Tag:             svc.Tag,
			Label:           svc.Label,
			DurationMinutes: svc.DurationMinutes,
		}
	}
	return &BookingFormResponse{Services: services}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(message string, resp *createAppointment.Response) *CreatedResponse {
	return &CreatedResponse{
		Message: message,
		Appointment: &AppointmentResponse{
			ID:              resp.ID,
			ClientName:      resp.ClientName,
			Phone:           resp.Phone,
			Service:         resp.Service,
			ServiceLabel:    resp.ServiceLabel,
			Date:            resp.StartAt.Format(domain.DateFormat),
			StartTime:       resp.StartAt.Format(domain.TimeFormat),
			EndTime:         resp.EndAt.Format(domain.TimeFormat),
			DurationMinutes: resp.DurationMinutes,
			SMSSent:         resp.SMSSent,
		},
	}
}

// ToUseCaseRequest создает запрос use case из полей формы
// Пустые date/time пропускаем дальше нулевыми - use case вернет ErrMissingField
func ToUseCaseRequest(clientName, phone, dateStr, timeStr, service string) (*createAppointment.Request, error) {
	var date time.Time
	if dateStr != "" {
		parsed, err := time.ParseInLocation(domain.DateFormat, dateStr, time.Local)
		if err != nil {
			return nil, err
		}
		date = parsed
	}

	var startTime types.TimeString
	if timeStr != "" {
		parsed, err := types.NewTimeStringFromString(timeStr)
		if err != nil {
			return nil, err
		}
		startTime = parsed
	}

	return &createAppointment.Request{
		ClientName: clientName,
		Phone:      phone,
		Date:       date,
		StartTime:  startTime,
		Service:    service,
	}, nil
}
