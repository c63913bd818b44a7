package get_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/eggdevsol-del/manusversionartistbookingapp-sub000/internal/domain"
	"github.com/eggdevsol-del/manusversionartistbookingapp-sub000/internal/scheduling/cadence"
	"github.com/eggdevsol-del/manusversionartistbookingapp-sub000/internal/scheduling/conflict"
	"github.com/eggdevsol-del/manusversionartistbookingapp-sub000/internal/scheduling/workwindow"
	directoryClient "github.com/eggdevsol-del/manusversionartistbookingapp-sub000/internal/integrations/directory"
	scheduleRepo "github.com/eggdevsol-del/manusversionartistbookingapp-sub000/internal/infra/storage/schedule"
)

// Исходы вычисления для метрик
const (
	outcomeResolved     = "resolved"
	outcomeInsufficient = "insufficient"
	outcomeInvalid      = "invalid"
	outcomeError        = "error"
)

// UseCase подбор доступных слотов: чистое вычисление без записи.
// Работает на снапшоте расписания и занятых интервалов, прочитанном один
// раз в начале; безопасен для параллельного выполнения разных запросов.
type UseCase struct {
	scheduleRepo    ScheduleRepository
	appointmentRepo AppointmentRepository
	directory       DirectoryClient
	timeProvider    TimeProvider
	metrics         MetricsRecorder
	config          Config
	logger          Logger
}

// NewUseCase создает новый экземпляр use case.
// metrics может быть nil - тогда учет результатов отключен.
func NewUseCase(
	scheduleRepo ScheduleRepository,
	appointmentRepo AppointmentRepository,
	directory DirectoryClient,
	metrics MetricsRecorder,
	config Config,
	logger Logger,
) *UseCase {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	if config.HorizonDays <= 0 {
		config.HorizonDays = domain.DefaultHorizonDays
	}
	if config.MaxSkippedCycles <= 0 {
		config.MaxSkippedCycles = domain.DefaultMaxSkippedCycles
	}
	return &UseCase{
		scheduleRepo:    scheduleRepo,
		appointmentRepo: appointmentRepo,
		directory:       directory,
		timeProvider:    &RealTimeProvider{},
		metrics:         metrics,
		config:          config,
		logger:          logger,
	}
}

// Execute выполняет подбор слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: provider=%d, freq=%s, sittings=%d, duration=%d, anchor=%s, tz=%s",
		req.ProviderID, req.Frequency, req.Sittings, req.DurationMinutes,
		req.StartAnchor.Format(domain.DateFormat), req.TimeZone)

	// 1. Валидация входных данных
	loc, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		uc.metrics.ObserveResolution(req.Frequency.String(), outcomeInvalid)
		return nil, err
	}

	// 2. Якорь не в прошлом ("сейчас" - нижняя граница якоря)
	now := uc.timeProvider.Now()
	if err := validateAnchorNotInPast(req.StartAnchor, now, loc); err != nil {
		uc.logger.Warn("GetAvailability: anchor validation failed: %v", err)
		uc.metrics.ObserveResolution(req.Frequency.String(), outcomeInvalid)
		return nil, err
	}

	// 3. Single всегда означает ровно одну сессию, что бы ни прислал клиент
	sittings := req.Sittings
	if req.Frequency == domain.FrequencySingle {
		sittings = 1
	}

	// 4. Провайдер должен существовать
	if _, err := uc.directory.GetProvider(ctx, req.ProviderID); err != nil {
		if errors.Is(err, directoryClient.ErrProviderNotFound) {
			uc.logger.Warn("GetAvailability: provider id=%d not found", req.ProviderID)
			uc.metrics.ObserveResolution(req.Frequency.String(), outcomeInvalid)
			return nil, ErrProviderNotFound
		}
		uc.logger.Error("GetAvailability: failed to get provider id=%d: %v", req.ProviderID, err)
		uc.metrics.ObserveResolution(req.Frequency.String(), outcomeError)
		return nil, fmt.Errorf("%w: failed to get provider: %v", ErrInternal, err)
	}

	// 5. Недельное расписание провайдера
	schedule, err := uc.scheduleRepo.GetByProvider(ctx, req.ProviderID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			uc.logger.Warn("GetAvailability: provider id=%d has no schedule", req.ProviderID)
			uc.metrics.ObserveResolution(req.Frequency.String(), outcomeInvalid)
			return nil, ErrScheduleNotConfigured
		}
		uc.logger.Error("GetAvailability: failed to get schedule for provider id=%d: %v", req.ProviderID, err)
		uc.metrics.ObserveResolution(req.Frequency.String(), outcomeError)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	// 6. Индекс рабочих окон. Нарушенные инварианты расписания - дефект
	// конфигурации, не "нет слотов"
	windows, err := workwindow.New(schedule)
	if err != nil {
		if errors.Is(err, domain.ErrScheduleMisconfigured) {
			uc.logger.Error("GetAvailability: schedule misconfigured for provider id=%d: %v", req.ProviderID, err)
			uc.metrics.ObserveResolution(req.Frequency.String(), outcomeInvalid)
			return nil, fmt.Errorf("%w: %v", ErrScheduleMisconfigured, err)
		}
		uc.metrics.ObserveResolution(req.Frequency.String(), outcomeError)
		return nil, fmt.Errorf("%w: failed to build work window index: %v", ErrInternal, err)
	}

	anchor := cadence.Normalize(req.StartAnchor)
	horizonEnd := anchor.AddDate(0, 0, uc.config.HorizonDays)

	// 7. Снапшот занятых интервалов на весь горизонт поиска.
	// Границы расширены на сутки в обе стороны: рабочее окно календарной
	// даты в зоне провайдера может начинаться в предыдущих UTC-сутках.
	snapshotFrom := anchor.AddDate(0, 0, -1)
	snapshotTo := horizonEnd.AddDate(0, 0, 2)

	intervals, err := uc.appointmentRepo.GetIntervals(ctx, req.ProviderID, snapshotFrom, snapshotTo)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get booked intervals for provider id=%d: %v", req.ProviderID, err)
		uc.metrics.ObserveResolution(req.Frequency.String(), outcomeError)
		return nil, fmt.Errorf("%w: failed to get booked intervals: %v", ErrInternal, err)
	}

	// 8. Подбор слотов на рабочей копии снапшота
	res := &resolver{
		windows:          windows,
		conflicts:        conflict.New(intervals),
		duration:         time.Duration(req.DurationMinutes) * time.Minute,
		anchor:           anchor,
		horizonEnd:       horizonEnd,
		maxSkippedCycles: uc.config.MaxSkippedCycles,
	}

	dates, err := res.resolve(req.Frequency, sittings)
	if err != nil {
		if errors.Is(err, ErrInsufficientAvailability) {
			uc.logger.Info("GetAvailability: insufficient availability for provider=%d, freq=%s, sittings=%d",
				req.ProviderID, req.Frequency, sittings)
			uc.metrics.ObserveResolution(req.Frequency.String(), outcomeInsufficient)
			return nil, err
		}
		uc.metrics.ObserveResolution(req.Frequency.String(), outcomeError)
		return nil, err
	}

	uc.logger.Info("GetAvailability: resolved %d dates for provider=%d, first=%s",
		len(dates), req.ProviderID, dates[0].Format(time.RFC3339))
	uc.metrics.ObserveResolution(req.Frequency.String(), outcomeResolved)

	return &Response{
		ProviderID: req.ProviderID,
		Frequency:  req.Frequency,
		Sittings:   sittings,
		Dates:      dates,
		TotalCost:  req.Price * int64(sittings),
	}, nil
}
