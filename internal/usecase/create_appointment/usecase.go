package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/BRB-BookingService/internal/domain"
	blockedRepo "github.com/m04kA/BRB-BookingService/internal/infra/storage/blockeddate"
)

// SMSMetrics интерфейс метрик отправки SMS
// Может быть nil, если метрики выключены
type SMSMetrics interface {
	ObserveSMS(status string)
}

// UseCase use case создания записи
// Проверка пересечений и вставка выполняются в одной сериализуемой
// транзакции: двойное бронирование при конкурентных запросах
// блокируется на уровне БД, а не отдельной проверкой до записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	blockedRepo     BlockedDateRepository
	smsSender       SMSSender
	txManager       TransactionManager
	smsMetrics      SMSMetrics
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	blockedRepo BlockedDateRepository,
	smsSender SMSSender,
	txManager TransactionManager,
	smsMetrics SMSMetrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		blockedRepo:     blockedRepo,
		smsSender:       smsSender,
		txManager:       txManager,
		smsMetrics:      smsMetrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: client=%s, service=%s, date=%s, time=%s",
		req.ClientName, req.Service, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных (обязательные поля + телефон)
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Собираем интервал записи
	startAt, err := req.StartTime.On(req.Date)
	if err != nil {
		uc.logger.Warn("CreateAppointment: failed to combine date and time: %v", err)
		return nil, fmt.Errorf("%w: failed to combine date and time: %v", ErrInternal, err)
	}

	duration := domain.ServiceDuration(req.Service)
	endAt := startAt.Add(time.Duration(duration) * time.Minute)

	// 4. Прошедшее время - отказ (start == now допустим)
	if startAt.Before(now) {
		uc.logger.Warn("CreateAppointment: start time %s is in the past", startAt.Format(time.RFC3339))
		return nil, ErrPastTime
	}

	var result *domain.Appointment

	// 5. Проверка доступности и вставка в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Заблокированный день не бронируется
		_, err := uc.blockedRepo.GetByDate(txCtx, req.Date)
		if err == nil {
			uc.logger.Warn("CreateAppointment: date %s is blocked", req.Date.Format(domain.DateFormat))
			return ErrDateBlocked
		}
		if !errors.Is(err, blockedRepo.ErrBlockedDateNotFound) {
			uc.logger.Error("CreateAppointment: failed to check blocked date: %v", err)
			return fmt.Errorf("%w: failed to check blocked date: %v", ErrInternal, err)
		}

		// 5.2. Проверяем пересечения с существующими записями
		overlapping, err := uc.appointmentRepo.CountOverlapping(txCtx, startAt, endAt)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to count overlapping appointments: %v", err)
			return fmt.Errorf("%w: failed to count overlapping appointments: %v", ErrInternal, err)
		}

		if overlapping > 0 {
			uc.logger.Warn("CreateAppointment: slot %s is taken (%d overlapping)",
				req.StartTime, overlapping)
			return ErrSlotTaken
		}

		// 5.3. Создаем запись
		appt := &domain.Appointment{
			ClientName: req.ClientName,
			Phone:      req.Phone,
			Service:    req.Service,
			StartAt:    startAt,
			EndAt:      endAt,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	// 6. SMS подтверждение после коммита
	// Ошибка отправки не откатывает бронирование - только логируется
	smsSent := uc.sendConfirmation(ctx, result)

	return &Response{
		ID:              result.ID,
		ClientName:      result.ClientName,
		Phone:           result.Phone,
		Service:         result.Service,
		ServiceLabel:    domain.ServiceLabel(result.Service),
		StartAt:         result.StartAt,
		EndAt:           result.EndAt,
		DurationMinutes: duration,
		SMSSent:         smsSent,
		CreatedAt:       result.CreatedAt,
	}, nil
}

// sendConfirmation отправляет SMS подтверждение записи
// Возвращает true при успешной отправке
func (uc *UseCase) sendConfirmation(ctx context.Context, appt *domain.Appointment) bool {
	text := fmt.Sprintf("Дякуємо, %s! Ваш запис на %s підтверджено.",
		appt.ClientName, appt.StartAt.Format(domain.SMSFormat))

	if err := uc.smsSender.Send(ctx, appt.Phone, text); err != nil {
		uc.logger.Error("CreateAppointment: failed to send SMS for appointment id=%d: %v", appt.ID, err)
		uc.observeSMS("failed")
		return false
	}

	uc.observeSMS("sent")
	return true
}

func (uc *UseCase) observeSMS(status string) {
	if uc.smsMetrics != nil {
		uc.smsMetrics.ObserveSMS(status)
	}
}
