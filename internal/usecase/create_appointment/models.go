package create_appointment

import (
	"time"

	"github.com/m04kA/BRB-BookingService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	ClientName string           // Имя клиента
	Phone      string           // Телефон, только цифры
	Date       time.Time        // Дата записи (без времени)
	StartTime  types.TimeString // Время начала ("10:00")
	Service    string           // Тег услуги из каталога
}

// Response модель ответа с созданной записью
type Response struct {
	ID              int64     // ID созданной записи
	ClientName      string    // Имя клиента
	Phone           string    // Телефон
	Service         string    // Тег услуги
	ServiceLabel    string    // Отображаемое название услуги
	StartAt         time.Time // Начало записи
	EndAt           time.Time // Конец записи
	DurationMinutes int       // Длительность в минутах
	SMSSent         bool      // Удалось ли отправить SMS подтверждение
	CreatedAt       time.Time // Время создания
}
