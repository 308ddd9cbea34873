package domain

import "github.com/m04kA/BRB-BookingService/pkg/types"

// Schedule рабочее окно салона и шаг сетки слотов
// Окно полуоткрытое: [OpenTime, CloseTime)
type Schedule struct {
	OpenTime        types.TimeString
	CloseTime       types.TimeString
	SlotStepMinutes int
}

// NewSchedule собирает расписание из строковых значений конфигурации
func NewSchedule(openTime, closeTime string, slotStepMinutes int) (Schedule, error) {
	open, err := types.NewTimeStringFromString(openTime)
	if err != nil {
		return Schedule{}, err
	}

	closeAt, err := types.NewTimeStringFromString(closeTime)
	if err != nil {
		return Schedule{}, err
	}

	return Schedule{
		OpenTime:        open,
		CloseTime:       closeAt,
		SlotStepMinutes: slotStepMinutes,
	}, nil
}
