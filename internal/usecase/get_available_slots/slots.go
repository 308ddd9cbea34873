package get_available_slots

import (
	"time"

	"github.com/m04kA/BRB-BookingService/internal/domain"
	"github.com/m04kA/BRB-BookingService/pkg/types"
)

// generateTimeSlots генерирует кандидатов на слоты в рабочем окне дня
// Кандидаты идут от открытия с фиксированным шагом schedule.SlotStepMinutes;
// кандидат допустим, пока слот целиком помещается до закрытия
// (start + duration <= close). Для сегодняшней даты дополнительно
// отбрасываются слоты, начинающиеся раньше текущего момента
func generateTimeSlots(
	schedule domain.Schedule,
	durationMinutes int,
	requestDate time.Time,
	now time.Time,
) ([]types.TimeString, error) {
	// Дата в прошлом - слотов нет
	if isDateInPast(requestDate, now) {
		return []types.TimeString{}, nil
	}

	// Шаг 1: генерируем все кандидаты от открытия до закрытия
	allSlots := make([]types.TimeString, 0)
	currentSlot := schedule.OpenTime

	for currentSlot.IsBefore(schedule.CloseTime) {
		slotEnd, err := currentSlot.AddMinutes(durationMinutes)
		if err != nil {
			// Переполнение суток - дальше слотов быть не может
			break
		}
		// Слот должен целиком помещаться в рабочее окно,
		// конец ровно в закрытие допустим
		if slotEnd.IsAfter(schedule.CloseTime) {
			break
		}

		allSlots = append(allSlots, currentSlot)
		currentSlot, err = currentSlot.AddMinutes(schedule.SlotStepMinutes)
		if err != nil {
			break
		}
	}

	// Шаг 2: если дата не сегодня - все кандидаты годятся
	if !isSameDay(requestDate, now) {
		return allSlots, nil
	}

	// Шаг 3: для сегодняшней даты убираем уже прошедшие слоты
	// Сравниваем полные метки времени, чтобы слот 10:00 при now=10:00:30
	// уже не предлагался
	availableSlots := make([]types.TimeString, 0, len(allSlots))
	for _, slot := range allSlots {
		startAt, err := slot.On(requestDate)
		if err != nil {
			continue
		}
		if !startAt.Before(now) {
			availableSlots = append(availableSlots, slot)
		}
	}

	return availableSlots, nil
}

// filterFreeSlots убирает кандидатов, пересекающихся с существующими записями
// Пересечение полуоткрытых интервалов: запись, заканчивающаяся ровно
// в начале слота, пересечением не считается
func filterFreeSlots(
	slots []types.TimeString,
	durationMinutes int,
	requestDate time.Time,
	appointments []*domain.Appointment,
) []types.TimeString {
	free := make([]types.TimeString, 0, len(slots))

	for _, slot := range slots {
		startAt, err := slot.On(requestDate)
		if err != nil {
			continue
		}
		endAt := startAt.Add(time.Duration(durationMinutes) * time.Minute)

		overlaps := false
		for _, appt := range appointments {
			if appt.Overlaps(startAt, endAt) {
				overlaps = true
				break
			}
		}

		if !overlaps {
			free = append(free, slot)
		}
	}

	return free
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
