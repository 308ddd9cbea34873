package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/BRB-BookingService/internal/domain"
	blockedRepo "github.com/m04kA/BRB-BookingService/internal/infra/storage/blockeddate"
	"github.com/m04kA/BRB-BookingService/pkg/types"
)

// UseCase use case для получения доступных слотов для записи
// Список всегда пересчитывается заново по текущим данным -
// никакого кешируемого состояния
type UseCase struct {
	appointmentRepo AppointmentRepository
	blockedRepo     BlockedDateRepository
	schedule        domain.Schedule
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	blockedRepo BlockedDateRepository,
	schedule domain.Schedule,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		blockedRepo:     blockedRepo,
		schedule:        schedule,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: service=%s, date=%s",
		req.Service, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Длительность услуги (неизвестный тег - длительность по умолчанию)
	duration := domain.ServiceDuration(req.Service)

	// 4. Заблокированный день - пустой список сразу,
	// существующие записи не учитываются
	_, err := uc.blockedRepo.GetByDate(ctx, req.Date)
	if err == nil {
		uc.logger.Info("GetAvailableSlots: date %s is blocked", req.Date.Format(domain.DateFormat))
		return uc.emptyResponse(req, duration), nil
	}
	if !errors.Is(err, blockedRepo.ErrBlockedDateNotFound) {
		uc.logger.Error("GetAvailableSlots: failed to check blocked date: %v", err)
		return nil, fmt.Errorf("%w: failed to check blocked date: %v", ErrInternal, err)
	}

	// 5. Генерируем кандидатов в рабочем окне
	timeSlots, err := generateTimeSlots(uc.schedule, duration, req.Date, now)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate time slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate time slots: %v", ErrInternal, err)
	}

	// 6. Получаем записи на этот день
	appointments, err := uc.appointmentRepo.GetByDay(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 7. Убираем занятые слоты
	slots := filterFreeSlots(timeSlots, duration, req.Date, appointments)

	uc.logger.Info("GetAvailableSlots: %d free slots for service=%s, date=%s",
		len(slots), req.Service, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:            req.Date,
		Service:         req.Service,
		DurationMinutes: duration,
		Slots:           slots,
	}, nil
}

func (uc *UseCase) emptyResponse(req *Request, duration int) *Response {
	return &Response{
		Date:            req.Date,
		Service:         req.Service,
		DurationMinutes: duration,
		Slots:           []types.TimeString{},
	}
}
