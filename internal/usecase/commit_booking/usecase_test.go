package commit_booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eggdevsol-del/manusversionartistbookingapp-sub000/internal/domain"
	"github.com/eggdevsol-del/manusversionartistbookingapp-sub000/internal/integrations/directory"
)

// fakeStore хранилище в памяти. Методы не берут мьютекс сами:
// сериализацию обеспечивает fakeTxManager, как это делает БД
// в сериализуемой транзакции.
type fakeStore struct {
	mu     sync.Mutex
	nextID int64
	appts  []*domain.Appointment
}

func (s *fakeStore) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	s.nextID++
	created := *appt
	created.ID = s.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	s.appts = append(s.appts, &created)
	return &created, nil
}

func (s *fakeStore) GetIntervals(_ context.Context, providerID int64, from, to time.Time) ([]domain.BookedInterval, error) {
	var out []domain.BookedInterval
	for _, a := range s.appts {
		if a.ProviderID == providerID && a.StartUTC.Before(to) && from.Before(a.EndUTC) {
			out = append(out, domain.BookedInterval{Start: a.StartUTC, End: a.EndUTC})
		}
	}
	return out, nil
}

// fakeTxManager держит мьютекс хранилища на время всей транзакции
type fakeTxManager struct {
	store *fakeStore
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	return fn(ctx)
}

type fakeDirectory struct {
	providerErr error
	clientErr   error
}

func (f *fakeDirectory) GetProvider(_ context.Context, providerID int64) (*directory.Provider, error) {
	if f.providerErr != nil {
		return nil, f.providerErr
	}
	return &directory.Provider{ID: providerID, DisplayName: "Ink Studio", Active: true}, nil
}

func (f *fakeDirectory) GetClient(_ context.Context, clientID int64) (*directory.ClientProfile, error) {
	if f.clientErr != nil {
		return nil, f.clientErr
	}
	return &directory.ClientProfile{ID: clientID, DisplayName: "Alex"}, nil
}

type countingMetrics struct {
	mu        sync.Mutex
	conflicts int
}

func (m *countingMetrics) ObserveCommitConflict() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.conflicts++
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixedTimeProvider struct {
	now time.Time
}

func (f *fixedTimeProvider) Now() time.Time { return f.now }

func newTestUseCase(store *fakeStore, metrics MetricsRecorder) *UseCase {
	uc := NewUseCase(store, &fakeDirectory{}, &fakeTxManager{store: store}, metrics, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)}
	return uc
}

func baseRequest() *Request {
	return &Request{
		ProviderID: 1,
		ClientID:   42,
		StartUTC:   time.Date(2025, time.June, 13, 9, 0, 0, 0, time.UTC),
		EndUTC:     time.Date(2025, time.June, 13, 11, 0, 0, 0, time.UTC),
		Title:      "Sleeve session 1",
	}
}

func TestExecute_Success(t *testing.T) {
	store := &fakeStore{}
	uc := newTestUseCase(store, nil)

	resp, err := uc.Execute(context.Background(), baseRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.NotEqual(t, uuid.Nil, resp.Reference)
	assert.Equal(t, baseRequest().StartUTC, resp.StartUTC)
	assert.Equal(t, baseRequest().EndUTC, resp.EndUTC)
	require.Len(t, store.appts, 1)
}

func TestExecute_SlotAlreadyTaken(t *testing.T) {
	store := &fakeStore{}
	metrics := &countingMetrics{}
	uc := newTestUseCase(store, metrics)

	_, err := uc.Execute(context.Background(), baseRequest())
	require.NoError(t, err)

	// Пересечение частичное: 10:00-12:00 против занятых 09:00-11:00
	req := baseRequest()
	req.StartUTC = time.Date(2025, time.June, 13, 10, 0, 0, 0, time.UTC)
	req.EndUTC = time.Date(2025, time.June, 13, 12, 0, 0, 0, time.UTC)

	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNoLongerAvailable)
	assert.Equal(t, 1, metrics.conflicts)
	assert.Len(t, store.appts, 1)
}

func TestExecute_TouchingSlotsDoNotConflict(t *testing.T) {
	store := &fakeStore{}
	uc := newTestUseCase(store, nil)

	_, err := uc.Execute(context.Background(), baseRequest())
	require.NoError(t, err)

	// Начало нового ровно в конце занятого: полуоткрытые интервалы
	req := baseRequest()
	req.StartUTC = time.Date(2025, time.June, 13, 11, 0, 0, 0, time.UTC)
	req.EndUTC = time.Date(2025, time.June, 13, 13, 0, 0, 0, time.UTC)

	_, err = uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, store.appts, 2)
}

func TestExecute_ConcurrentCommitsExactlyOneWins(t *testing.T) {
	store := &fakeStore{}
	metrics := &countingMetrics{}
	uc := newTestUseCase(store, metrics)

	var wg sync.WaitGroup
	errs := make([]error, 2)

	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := baseRequest()
			req.ClientID = int64(42 + i)
			_, errs[i] = uc.Execute(context.Background(), req)
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
		} else {
			assert.ErrorIs(t, err, ErrSlotNoLongerAvailable)
		}
	}
	assert.Equal(t, 1, winners)
	assert.Len(t, store.appts, 1)
	assert.Equal(t, 1, metrics.conflicts)
}

func TestExecute_ValidationFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{"zero provider", func(r *Request) { r.ProviderID = 0 }},
		{"zero client", func(r *Request) { r.ClientID = 0 }},
		{"end before start", func(r *Request) { r.StartUTC, r.EndUTC = r.EndUTC, r.StartUTC }},
		{"too short", func(r *Request) { r.EndUTC = r.StartUTC.Add(2 * time.Minute) }},
		{"too long", func(r *Request) { r.EndUTC = r.StartUTC.Add(9 * time.Hour) }},
		{"start in past", func(r *Request) {
			r.StartUTC = time.Date(2025, time.May, 1, 9, 0, 0, 0, time.UTC)
			r.EndUTC = time.Date(2025, time.May, 1, 11, 0, 0, 0, time.UTC)
		}},
		{"empty title", func(r *Request) { r.Title = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(&fakeStore{}, nil)
			req := baseRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_ProviderNotFound(t *testing.T) {
	store := &fakeStore{}
	uc := newTestUseCase(store, nil)
	uc.directory = &fakeDirectory{providerErr: directory.ErrProviderNotFound}

	_, err := uc.Execute(context.Background(), baseRequest())
	assert.ErrorIs(t, err, ErrProviderNotFound)
}

func TestExecute_ClientNotFound(t *testing.T) {
	store := &fakeStore{}
	uc := newTestUseCase(store, nil)
	uc.directory = &fakeDirectory{clientErr: directory.ErrClientNotFound}

	_, err := uc.Execute(context.Background(), baseRequest())
	assert.ErrorIs(t, err, ErrClientNotFound)
}
