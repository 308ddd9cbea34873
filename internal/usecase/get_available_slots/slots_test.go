package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BRB-BookingService/internal/domain"
	"github.com/m04kA/BRB-BookingService/pkg/types"
)

func mustSchedule(t *testing.T) domain.Schedule {
	t.Helper()
	schedule, err := domain.NewSchedule("10:00", "18:00", 30)
	require.NoError(t, err)
	return schedule
}

func TestGenerateTimeSlots_FullGrid(t *testing.T) {
	schedule := mustSchedule(t)
	requestDate := time.Date(2026, 9, 15, 0, 0, 0, 0, time.Local)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.Local)

	// Услуга 30 минут: слоты каждые 30 минут от 10:00 до 17:30 включительно
	slots, err := generateTimeSlots(schedule, 30, requestDate, now)
	require.NoError(t, err)

	assert.Len(t, slots, 16)
	assert.Equal(t, types.TimeString("10:00"), slots[0])
	assert.Equal(t, types.TimeString("17:30"), slots[len(slots)-1])
}

func TestGenerateTimeSlots_LongServiceFitsUntilClose(t *testing.T) {
	schedule := mustSchedule(t)
	requestDate := time.Date(2026, 9, 15, 0, 0, 0, 0, time.Local)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.Local)

	// Услуга 60 минут: последний допустимый старт 17:00 (конец ровно в закрытие)
	slots, err := generateTimeSlots(schedule, 60, requestDate, now)
	require.NoError(t, err)

	assert.Len(t, slots, 15)
	assert.Equal(t, types.TimeString("17:00"), slots[len(slots)-1])
	assert.NotContains(t, slots, types.TimeString("17:30"))
}

func TestGenerateTimeSlots_PastDateIsEmpty(t *testing.T) {
	schedule := mustSchedule(t)
	requestDate := time.Date(2026, 8, 31, 0, 0, 0, 0, time.Local)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.Local)

	slots, err := generateTimeSlots(schedule, 30, requestDate, now)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateTimeSlots_TodayDropsPastSlots(t *testing.T) {
	schedule := mustSchedule(t)
	requestDate := time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local)
	now := time.Date(2026, 9, 1, 12, 15, 0, 0, time.Local)

	slots, err := generateTimeSlots(schedule, 30, requestDate, now)
	require.NoError(t, err)

	require.NotEmpty(t, slots)
	assert.Equal(t, types.TimeString("12:30"), slots[0])
	assert.NotContains(t, slots, types.TimeString("12:00"))
}

func TestGenerateTimeSlots_TodaySecondsMatter(t *testing.T) {
	schedule := mustSchedule(t)
	requestDate := time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local)
	// 10:00:30 - слот 10:00 уже начался и не предлагается
	now := time.Date(2026, 9, 1, 10, 0, 30, 0, time.Local)

	slots, err := generateTimeSlots(schedule, 30, requestDate, now)
	require.NoError(t, err)

	require.NotEmpty(t, slots)
	assert.Equal(t, types.TimeString("10:30"), slots[0])
}

func TestGenerateTimeSlots_SlotStartingNowIsKept(t *testing.T) {
	schedule := mustSchedule(t)
	requestDate := time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local)
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.Local)

	slots, err := generateTimeSlots(schedule, 30, requestDate, now)
	require.NoError(t, err)

	require.NotEmpty(t, slots)
	assert.Equal(t, types.TimeString("10:00"), slots[0])
}

func TestFilterFreeSlots(t *testing.T) {
	requestDate := time.Date(2026, 9, 15, 0, 0, 0, 0, time.Local)

	appt := &domain.Appointment{
		StartAt: time.Date(2026, 9, 15, 10, 0, 0, 0, time.Local),
		EndAt:   time.Date(2026, 9, 15, 11, 0, 0, 0, time.Local),
	}

	candidates := []types.TimeString{"10:00", "10:30", "11:00", "11:30"}

	// Услуга 60 минут против записи 10:00-11:00:
	// 10:00 и 10:30 пересекаются, 11:00 начинается ровно в конец записи - свободен
	free := filterFreeSlots(candidates, 60, requestDate, []*domain.Appointment{appt})

	assert.Equal(t, []types.TimeString{"11:00", "11:30"}, free)
}

func TestFilterFreeSlots_SlotEndingAtAppointmentStartIsFree(t *testing.T) {
	requestDate := time.Date(2026, 9, 15, 0, 0, 0, 0, time.Local)

	appt := &domain.Appointment{
		StartAt: time.Date(2026, 9, 15, 12, 0, 0, 0, time.Local),
		EndAt:   time.Date(2026, 9, 15, 13, 0, 0, 0, time.Local),
	}

	// Слот 11:30+30 заканчивается ровно в 12:00 - пересечения нет
	free := filterFreeSlots([]types.TimeString{"11:30"}, 30, requestDate, []*domain.Appointment{appt})

	assert.Equal(t, []types.TimeString{"11:30"}, free)
}
