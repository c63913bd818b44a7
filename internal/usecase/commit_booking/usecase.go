package commit_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/eggdevsol-del/manusversionartistbookingapp-sub000/internal/domain"
	appointmentRepo "github.com/eggdevsol-del/manusversionartistbookingapp-sub000/internal/infra/storage/appointment"
	directoryClient "github.com/eggdevsol-del/manusversionartistbookingapp-sub000/internal/integrations/directory"
)

// UseCase use case фиксации подобранного слота.
// Подбор доступности ничего не резервирует, поэтому единственная
// гарантия отсутствия пересечений дается здесь: сериализуемая транзакция,
// перечитывание занятых интервалов с блокировкой и constraint в БД
// как последний рубеж.
type UseCase struct {
	appointmentRepo AppointmentRepository
	directory       DirectoryClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	metrics         MetricsRecorder
	logger          Logger
}

// NewUseCase создает новый экземпляр use case.
// metrics может быть nil - тогда учет конфликтов отключен.
func NewUseCase(
	appointmentRepo AppointmentRepository,
	directory DirectoryClient,
	txManager TransactionManager,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &UseCase{
		appointmentRepo: appointmentRepo,
		directory:       directory,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute выполняет фиксацию слота
// Использует сериализуемую транзакцию для предотвращения гонки данных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CommitBooking: provider=%d, client=%d, start=%s, end=%s",
		req.ProviderID, req.ClientID,
		req.StartUTC.Format(time.RFC3339), req.EndUTC.Format(time.RFC3339))

	// 1. Валидация входных данных
	now := uc.timeProvider.Now()
	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("CommitBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Провайдер должен существовать
	if _, err := uc.directory.GetProvider(ctx, req.ProviderID); err != nil {
		if errors.Is(err, directoryClient.ErrProviderNotFound) {
			uc.logger.Warn("CommitBooking: provider id=%d not found", req.ProviderID)
			return nil, ErrProviderNotFound
		}
		uc.logger.Error("CommitBooking: failed to get provider id=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: failed to get provider: %v", ErrInternal, err)
	}

	// 3. Клиент должен существовать
	if _, err := uc.directory.GetClient(ctx, req.ClientID); err != nil {
		if errors.Is(err, directoryClient.ErrClientNotFound) {
			uc.logger.Warn("CommitBooking: client id=%d not found", req.ClientID)
			return nil, ErrClientNotFound
		}
		uc.logger.Error("CommitBooking: failed to get client id=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
	}

	var result *domain.Appointment

	// 4. Проверка пересечений и вставка в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Перечитываем занятые интервалы провайдера вокруг слота
		// с блокировкой (FOR UPDATE)
		intervals, err := uc.appointmentRepo.GetIntervals(txCtx, req.ProviderID, req.StartUTC, req.EndUTC)
		if err != nil {
			uc.logger.Error("CommitBooking: failed to get intervals: %v", err)
			return fmt.Errorf("%w: failed to get intervals: %v", ErrInternal, err)
		}

		// 4.2. Полуоткрытые интервалы: совпадение конца с началом не конфликт
		for _, interval := range intervals {
			if interval.Overlaps(req.StartUTC, req.EndUTC) {
				uc.logger.Warn("CommitBooking: slot [%s, %s) already taken for provider=%d",
					req.StartUTC.Format(time.RFC3339), req.EndUTC.Format(time.RFC3339), req.ProviderID)
				return ErrSlotNoLongerAvailable
			}
		}

		// 4.3. Создаем встречу
		appt := &domain.Appointment{
			Reference:   uuid.New(),
			ProviderID:  req.ProviderID,
			ClientID:    req.ClientID,
			Title:       req.Title,
			Description: req.Description,
			StartUTC:    req.StartUTC,
			EndUTC:      req.EndUTC,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			// Exclusion constraint или срыв сериализации: слот увели
			// параллельной транзакцией
			if errors.Is(err, appointmentRepo.ErrSlotTaken) {
				uc.logger.Warn("CommitBooking: concurrent commit took the slot for provider=%d", req.ProviderID)
				return ErrSlotNoLongerAvailable
			}
			uc.logger.Error("CommitBooking: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrSlotNoLongerAvailable) {
			uc.metrics.ObserveCommitConflict()
			return nil, ErrSlotNoLongerAvailable
		}
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		uc.logger.Error("CommitBooking: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	uc.logger.Info("CommitBooking: created appointment id=%d, reference=%s", result.ID, result.Reference)

	return &Response{
		ID:        result.ID,
		Reference: result.Reference,
		StartUTC:  result.StartUTC,
		EndUTC:    result.EndUTC,
		CreatedAt: result.CreatedAt,
	}, nil
}
