package domain

import "time"

// Appointment запись клиента в салоне
// Создается при успешном бронировании, удаляется админом, иначе не меняется
type Appointment struct {
	ID         int64
	ClientName string
	Phone      string // только цифры, длина 10, 12 или 13
	Service    string // тег услуги из каталога
	StartAt    time.Time
	EndAt      time.Time // StartAt + длительность услуги
	CreatedAt  time.Time
}

// Overlaps проверяет пересечение записи с интервалом [start, end)
// Полуоткрытые интервалы: запись, заканчивающаяся ровно в start,
// пересечением не считается
func (a *Appointment) Overlaps(start, end time.Time) bool {
	return a.StartAt.Before(end) && a.EndAt.After(start)
}

// IsUpcoming возвращает true, если запись еще не началась
func (a *Appointment) IsUpcoming(now time.Time) bool {
	return !a.StartAt.Before(now)
}
