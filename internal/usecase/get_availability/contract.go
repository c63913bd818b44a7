package get_availability

import (
	"context"
	"time"

	"github.com/eggdevsol-del/manusversionartistbookingapp-sub000/internal/domain"
	"github.com/eggdevsol-del/manusversionartistbookingapp-sub000/internal/integrations/directory"
)

// ScheduleRepository источник недельного расписания провайдера
// (репозиторий напрямую или через кеш)
type ScheduleRepository interface {
	GetByProvider(ctx context.Context, providerID int64) (*domain.WorkSchedule, error)
}

// AppointmentRepository источник снапшота занятых интервалов
type AppointmentRepository interface {
	GetIntervals(ctx context.Context, providerID int64, from, to time.Time) ([]domain.BookedInterval, error)
}

// DirectoryClient интерфейс клиента справочника основного приложения
type DirectoryClient interface {
	GetProvider(ctx context.Context, providerID int64) (*directory.Provider, error)
}

// MetricsRecorder учет результатов вычислений доступности
type MetricsRecorder interface {
	ObserveResolution(frequency, outcome string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// noopMetrics заглушка, когда метрики выключены
type noopMetrics struct{}

func (noopMetrics) ObserveResolution(frequency, outcome string) {}
