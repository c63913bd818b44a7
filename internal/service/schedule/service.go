package schedule

import (
	"context"
	"errors"
	"fmt"

	scheduleRepo "github.com/eggdevsol-del/manusversionartistbookingapp-sub000/internal/infra/storage/schedule"
	"github.com/eggdevsol-del/manusversionartistbookingapp-sub000/internal/service/schedule/models"
)

// Service сервис для работы с недельным расписанием провайдера
type Service struct {
	scheduleRepo ScheduleRepository
	cache        CacheInvalidator
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписаний.
// cache может быть nil, когда кеширование выключено.
func NewService(
	scheduleRepo ScheduleRepository,
	cache CacheInvalidator,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		cache:        cache,
		txManager:    txManager,
		logger:       logger,
	}
}

// GetWeekly получает недельное расписание провайдера
func (s *Service) GetWeekly(ctx context.Context, providerID int64) (*models.ScheduleResponse, error) {
	s.logger.Info("GetWeekly: fetching schedule for provider=%d", providerID)

	sched, err := s.scheduleRepo.GetByProvider(ctx, providerID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Warn("GetWeekly: schedule for provider=%d not found", providerID)
			return nil, ErrScheduleNotFound
		}
		s.logger.Error("GetWeekly: repository error for provider=%d: %v", providerID, err)
		return nil, fmt.Errorf("%w: GetWeekly - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetWeekly: successfully fetched schedule for provider=%d", providerID)
	return models.FromDomainSchedule(sched), nil
}

// UpdateWeekly заменяет недельное расписание провайдера целиком.
// Доступно только самому провайдеру. Уже зафиксированные встречи
// не пересматриваются: новое расписание влияет только на будущие подборы.
func (s *Service) UpdateWeekly(ctx context.Context, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("UpdateWeekly: updating schedule for provider=%d by user=%d, tz=%s",
		req.ProviderID, req.UserID, req.Timezone)

	if req.UserID != req.ProviderID {
		s.logger.Warn("UpdateWeekly: access denied for user=%d to provider=%d schedule", req.UserID, req.ProviderID)
		return nil, ErrAccessDenied
	}

	sched := req.ToDomainSchedule()
	if err := sched.Validate(); err != nil {
		s.logger.Warn("UpdateWeekly: validation failed for provider=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if !sched.HasAnyOpenDay() {
		s.logger.Warn("UpdateWeekly: provider=%d schedule has no open days", req.ProviderID)
		return nil, fmt.Errorf("%w: at least one day must be open", ErrInvalidInput)
	}

	// Шапка и строки дней пишутся атомарно
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		return s.scheduleRepo.Upsert(txCtx, sched)
	})
	if err != nil {
		s.logger.Error("UpdateWeekly: failed to upsert schedule for provider=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: UpdateWeekly - repository error: %v", ErrInternal, err)
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, req.ProviderID)
	}

	updated, err := s.scheduleRepo.GetByProvider(ctx, req.ProviderID)
	if err != nil {
		s.logger.Error("UpdateWeekly: failed to re-read schedule for provider=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: UpdateWeekly - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateWeekly: successfully updated schedule for provider=%d", req.ProviderID)
	return models.FromDomainSchedule(updated), nil
}
