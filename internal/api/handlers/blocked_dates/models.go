package blocked_dates

import (
	"time"

	"github.com/m04kA/BRB-BookingService/internal/domain"
	"github.com/m04kA/BRB-BookingService/internal/service/blockeddates/models"
)

// BlockedDateResponse HTTP модель блокировки
type BlockedDateResponse struct {
	ID     int64   `json:"id"`
	Date   string  `json:"date"`
	Reason *string `json:"reason,omitempty"`
}

// ListResponse тело ответа GET /admin/blocked_dates
type ListResponse struct {
	BlockedDates []BlockedDateResponse `json:"blockedDates"`
}

// CreatedResponse тело ответа POST /admin/blocked_dates
type CreatedResponse struct {
	Message string `json:"message"`
	Added   int    `json:"added"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(blocked []*models.BlockedDateResponse) *ListResponse {
	result := make([]BlockedDateResponse, len(blocked))
	for i, bd := range blocked {
		result[i] = BlockedDateResponse{
			ID:     bd.ID,
			Date:   bd.Date.Format(domain.DateFormat),
			Reason: bd.Reason,
		}
	}
	return &ListResponse{BlockedDates: result}
}

// ToServiceRequest создает запрос сервиса из полей формы
// Пустые даты пропускаем нулевыми - сервис вернет ErrMissingRange
func ToServiceRequest(dateFromStr, dateToStr, reason string) (*models.BlockRangeRequest, error) {
	var dateFrom, dateTo time.Time

	if dateFromStr != "" {
		parsed, err := time.ParseInLocation(domain.DateFormat, dateFromStr, time.Local)
		if err != nil {
			return nil, err
		}
		dateFrom = parsed
	}

	if dateToStr != "" {
		parsed, err := time.ParseInLocation(domain.DateFormat, dateToStr, time.Local)
		if err != nil {
			return nil, err
		}
		dateTo = parsed
	}

	return &models.BlockRangeRequest{
		DateFrom: dateFrom,
		DateTo:   dateTo,
		Reason:   reason,
	}, nil
}
