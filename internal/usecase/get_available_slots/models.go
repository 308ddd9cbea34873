package get_available_slots

import (
	"time"

	"github.com/m04kA/BRB-BookingService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	Service string    // Тег услуги из каталога
	Date    time.Time // Дата, на которую запрашиваются слоты (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date            time.Time          // Дата, на которую запрашивались слоты
	Service         string             // Тег услуги
	DurationMinutes int                // Длительность услуги
	Slots           []types.TimeString // Свободные слоты по возрастанию времени
}
