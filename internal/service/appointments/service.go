package appointments

import (
	"context"
	"errors"
	"fmt"

	apptRepo "github.com/m04kA/BRB-BookingService/internal/infra/storage/appointment"
	"github.com/m04kA/BRB-BookingService/internal/service/appointments/models"
)

// Service сервис для работы со списками записей (витрина + админка)
type Service struct {
	appointmentRepo AppointmentRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// ListUpcoming возвращает будущие записи по возрастанию времени начала
// Используется публичной главной страницей
func (s *Service) ListUpcoming(ctx context.Context) ([]*models.AppointmentResponse, error) {
	now := s.timeProvider.Now()

	appts, err := s.appointmentRepo.GetUpcoming(ctx, now)
	if err != nil {
		s.logger.Error("ListUpcoming: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListUpcoming - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListUpcoming: fetched %d upcoming appointments", len(appts))
	return models.FromDomainAppointmentList(appts), nil
}

// ListAdmin возвращает все записи с сортировкой для админки
// Неизвестное поле сортировки откатывается к start_at ASC;
// в ответе - карта порядков для переключения сортировки по клику:
// клик по текущей колонке меняет направление, по любой другой - ASC
func (s *Service) ListAdmin(ctx context.Context, req *models.AdminListRequest) (*models.AdminListResponse, error) {
	sortBy, order := normalizeSort(req.SortBy, req.Order)

	appts, err := s.appointmentRepo.List(ctx, sortBy, order)
	if err != nil {
		s.logger.Error("ListAdmin: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAdmin - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListAdmin: fetched %d appointments, sort_by=%s, order=%s", len(appts), sortBy, order)

	return &models.AdminListResponse{
		Appointments: models.FromDomainAppointmentList(appts),
		SortBy:       sortBy,
		Order:        order,
		NextOrder:    nextOrderMap(sortBy, order),
	}, nil
}

// Delete удаляет запись по ID
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting appointment id=%d", id)

	if err := s.appointmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Delete: appointment id=%d not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Delete: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted appointment id=%d", id)
	return nil
}

// normalizeSort приводит параметры сортировки к допустимым значениям
func normalizeSort(sortBy, order string) (string, string) {
	if !apptRepo.IsSortField(sortBy) {
		return "start_at", apptRepo.OrderAsc
	}
	if order != apptRepo.OrderAsc && order != apptRepo.OrderDesc {
		order = apptRepo.OrderAsc
	}
	return sortBy, order
}

// nextOrderMap строит карту "колонка -> порядок при следующем клике"
func nextOrderMap(sortBy, order string) map[string]string {
	next := make(map[string]string, len(apptRepo.SortFields()))
	for _, field := range apptRepo.SortFields() {
		if field == sortBy && order == apptRepo.OrderAsc {
			next[field] = apptRepo.OrderDesc
		} else {
			next[field] = apptRepo.OrderAsc
		}
	}
	return next
}
