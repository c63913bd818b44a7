package commit_booking

import (
	"context"
	"time"

	"github.com/eggdevsol-del/manusversionartistbookingapp-sub000/internal/domain"
	"github.com/eggdevsol-del/manusversionartistbookingapp-sub000/internal/integrations/directory"
)

// AppointmentRepository интерфейс репозитория встреч
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	GetIntervals(ctx context.Context, providerID int64, from, to time.Time) ([]domain.BookedInterval, error)
}

// DirectoryClient интерфейс клиента справочника основного приложения
type DirectoryClient interface {
	GetProvider(ctx context.Context, providerID int64) (*directory.Provider, error)
	GetClient(ctx context.Context, clientID int64) (*directory.ClientProfile, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsRecorder учет конфликтов при фиксации слота
type MetricsRecorder interface {
	ObserveCommitConflict()
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

func (noopMetrics) ObserveCommitConflict() {}
