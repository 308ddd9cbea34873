package blockeddates

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/BRB-BookingService/internal/domain"
	blockedRepo "github.com/m04kA/BRB-BookingService/internal/infra/storage/blockeddate"
	"github.com/m04kA/BRB-BookingService/internal/service/blockeddates/models"
	"github.com/m04kA/BRB-BookingService/pkg/ptr"
)

// Service сервис для работы с заблокированными датами
type Service struct {
	blockedRepo BlockedDateRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса заблокированных дат
func NewService(blockedRepo BlockedDateRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		blockedRepo: blockedRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// CreateRange блокирует каждый день диапазона [DateFrom, DateTo] включительно
// Уже заблокированные дни пропускаются; возвращается число созданных блокировок
// Весь диапазон пишется в одной транзакции: неудачный коммит не может
// выдать частичный результат за успех
func (s *Service) CreateRange(ctx context.Context, req *models.BlockRangeRequest) (int, error) {
	if req.DateFrom.IsZero() || req.DateTo.IsZero() {
		s.logger.Warn("CreateRange: missing range bounds")
		return 0, ErrMissingRange
	}

	from := truncateToDay(req.DateFrom)
	to := truncateToDay(req.DateTo)

	if from.After(to) {
		s.logger.Warn("CreateRange: invalid range %s..%s",
			from.Format(domain.DateFormat), to.Format(domain.DateFormat))
		return 0, ErrInvalidRange
	}

	var reason *string
	if req.Reason != "" {
		reason = ptr.Ptr(req.Reason)
	}

	added := 0

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		for current := from; !current.After(to); current = current.AddDate(0, 0, 1) {
			// Уже заблокированный день пропускаем
			_, err := s.blockedRepo.GetByDate(txCtx, current)
			if err == nil {
				continue
			}
			if !errors.Is(err, blockedRepo.ErrBlockedDateNotFound) {
				return fmt.Errorf("%w: CreateRange - check date %s: %v",
					ErrInternal, current.Format(domain.DateFormat), err)
			}

			bd := &domain.BlockedDate{Date: current, Reason: reason}
			if _, err := s.blockedRepo.Create(txCtx, bd); err != nil {
				return fmt.Errorf("%w: CreateRange - create date %s: %v",
					ErrInternal, current.Format(domain.DateFormat), err)
			}
			added++
		}
		return nil
	})

	if err != nil {
		added = 0
		s.logger.Error("CreateRange: failed to block range %s..%s: %v",
			from.Format(domain.DateFormat), to.Format(domain.DateFormat), err)
		return 0, err
	}

	s.logger.Info("CreateRange: blocked %d days in range %s..%s",
		added, from.Format(domain.DateFormat), to.Format(domain.DateFormat))
	return added, nil
}

// List возвращает все блокировки, отсортированные по дате
func (s *Service) List(ctx context.Context) ([]*models.BlockedDateResponse, error) {
	blocked, err := s.blockedRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d blocked dates", len(blocked))
	return models.FromDomainBlockedDateList(blocked), nil
}

// Delete снимает блокировку дня по ID
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting blocked date id=%d", id)

	if err := s.blockedRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, blockedRepo.ErrBlockedDateNotFound) {
			s.logger.Warn("Delete: blocked date id=%d not found", id)
			return ErrBlockedDateNotFound
		}
		s.logger.Error("Delete: repository error for blocked date id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted blocked date id=%d", id)
	return nil
}

// truncateToDay обнуляет время, оставляя только дату
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
