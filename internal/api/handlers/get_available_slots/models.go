package get_available_slots

import (
	"time"

	"github.com/m04kA/BRB-BookingService/internal/domain"
	getAvailableSlots "github.com/m04kA/BRB-BookingService/internal/usecase/get_available_slots"
)

// FromUseCaseResponse конвертирует ответ use case в плоский список "HH:MM"
// Виджет выбора времени ждет именно голый массив строк
func FromUseCaseResponse(resp *getAvailableSlots.Response) []string {
	slots := make([]string, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = slot.String()
	}
	return slots
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(service, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.ParseInLocation(domain.DateFormat, dateStr, time.Local)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		Service: service,
		Date:    date,
	}, nil
}
