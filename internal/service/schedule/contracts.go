package schedule

import (
	"context"

	"github.com/eggdevsol-del/manusversionartistbookingapp-sub000/internal/domain"
)

// ScheduleRepository интерфейс репозитория недельных расписаний
type ScheduleRepository interface {
	GetByProvider(ctx context.Context, providerID int64) (*domain.WorkSchedule, error)
	Upsert(ctx context.Context, sched *domain.WorkSchedule) error
}

// CacheInvalidator сбрасывает кешированную копию расписания после записи.
// Может быть nil, когда кеширование выключено.
type CacheInvalidator interface {
	Invalidate(ctx context.Context, providerID int64)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
