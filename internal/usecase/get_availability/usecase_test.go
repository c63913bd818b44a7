package get_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eggdevsol-del/manusversionartistbookingapp-sub000/internal/domain"
	"github.com/eggdevsol-del/manusversionartistbookingapp-sub000/internal/infra/storage/schedule"
	"github.com/eggdevsol-del/manusversionartistbookingapp-sub000/internal/integrations/directory"
)

type fakeScheduleRepo struct {
	schedule *domain.WorkSchedule
	err      error
}

func (f *fakeScheduleRepo) GetByProvider(_ context.Context, _ int64) (*domain.WorkSchedule, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.schedule, nil
}

type fakeAppointmentRepo struct {
	intervals []domain.BookedInterval
	calls     int
}

func (f *fakeAppointmentRepo) GetIntervals(_ context.Context, _ int64, _, _ time.Time) ([]domain.BookedInterval, error) {
	f.calls++
	out := make([]domain.BookedInterval, len(f.intervals))
	copy(out, f.intervals)
	return out, nil
}

type fakeDirectory struct {
	err error
}

func (f *fakeDirectory) GetProvider(_ context.Context, providerID int64) (*directory.Provider, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &directory.Provider{ID: providerID, DisplayName: "Ink Studio", Active: true}, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (f *fixedTimeProvider) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func weekdaySchedule() *domain.WorkSchedule {
	open := domain.DayHours{Enabled: true, Start: "09:00", End: "17:00"}
	return &domain.WorkSchedule{
		ProviderID: 1,
		Timezone:   "Australia/Sydney",
		Hours: domain.WeeklyHours{
			Monday:    open,
			Tuesday:   open,
			Wednesday: open,
			Thursday:  open,
			Friday:    open,
		},
	}
}

func newTestUseCase(sched *domain.WorkSchedule, intervals []domain.BookedInterval) *UseCase {
	uc := NewUseCase(
		&fakeScheduleRepo{schedule: sched},
		&fakeAppointmentRepo{intervals: intervals},
		&fakeDirectory{},
		nil,
		DefaultConfig(),
		nopLogger{},
	)
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)}
	return uc
}

func anchorDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Сидней в июне живет по AEST (UTC+10): 09:00 локально = 23:00 UTC накануне
func sydneyWinter(year int, month time.Month, day, hour, min int) time.Time {
	loc, _ := time.LoadLocation("Australia/Sydney")
	return time.Date(year, month, day, hour, min, 0, 0, loc).UTC()
}

func baseRequest() *Request {
	return &Request{
		ProviderID:      1,
		DurationMinutes: 120,
		Sittings:        3,
		Price:           15000,
		Frequency:       domain.FrequencyConsecutive,
		StartAnchor:     anchorDate(2025, time.June, 13),
		TimeZone:        "Australia/Sydney",
	}
}

func TestExecute_ConsecutiveSkipsClosedWeekend(t *testing.T) {
	uc := newTestUseCase(weekdaySchedule(), nil)

	// 2025-06-13 - пятница; суббота и воскресенье закрыты
	resp, err := uc.Execute(context.Background(), baseRequest())
	require.NoError(t, err)

	require.Len(t, resp.Dates, 3)
	assert.Equal(t, sydneyWinter(2025, time.June, 13, 9, 0), resp.Dates[0])
	assert.Equal(t, sydneyWinter(2025, time.June, 16, 9, 0), resp.Dates[1])
	assert.Equal(t, sydneyWinter(2025, time.June, 17, 9, 0), resp.Dates[2])
	assert.Equal(t, int64(45000), resp.TotalCost)
}

func TestExecute_WeeklyConflictShiftsWithinDay(t *testing.T) {
	// Понедельник 23 июня занят с 09:00 до 10:00 по Сиднею
	booked := []domain.BookedInterval{
		{Start: sydneyWinter(2025, time.June, 23, 9, 0), End: sydneyWinter(2025, time.June, 23, 10, 0)},
	}
	uc := newTestUseCase(weekdaySchedule(), booked)

	req := baseRequest()
	req.Frequency = domain.FrequencyWeekly
	req.StartAnchor = anchorDate(2025, time.June, 16) // понедельник

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, resp.Dates, 3)
	assert.Equal(t, sydneyWinter(2025, time.June, 16, 9, 0), resp.Dates[0])
	// Дата каденции сохраняется, начало сдвигается внутри окна дня
	assert.Equal(t, sydneyWinter(2025, time.June, 23, 10, 0), resp.Dates[1])
	assert.Equal(t, sydneyWinter(2025, time.June, 30, 9, 0), resp.Dates[2])
}

func TestExecute_WeeklyFullDaySkipsWholeCycle(t *testing.T) {
	// Все окно понедельника 23 июня занято
	booked := []domain.BookedInterval{
		{Start: sydneyWinter(2025, time.June, 23, 9, 0), End: sydneyWinter(2025, time.June, 23, 17, 0)},
	}
	uc := newTestUseCase(weekdaySchedule(), booked)

	req := baseRequest()
	req.Frequency = domain.FrequencyWeekly
	req.StartAnchor = anchorDate(2025, time.June, 16)

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// Занятый цикл пропущен целиком, соседние дни не пробуются
	require.Len(t, resp.Dates, 3)
	assert.Equal(t, sydneyWinter(2025, time.June, 16, 9, 0), resp.Dates[0])
	assert.Equal(t, sydneyWinter(2025, time.June, 30, 9, 0), resp.Dates[1])
	assert.Equal(t, sydneyWinter(2025, time.July, 7, 9, 0), resp.Dates[2])
}

func TestExecute_WeeklyThreeSkippedCyclesFails(t *testing.T) {
	fullDay := func(month time.Month, day int) domain.BookedInterval {
		return domain.BookedInterval{
			Start: sydneyWinter(2025, month, day, 9, 0),
			End:   sydneyWinter(2025, month, day, 17, 0),
		}
	}
	booked := []domain.BookedInterval{
		fullDay(time.June, 23),
		fullDay(time.June, 30),
		fullDay(time.July, 7),
	}
	uc := newTestUseCase(weekdaySchedule(), booked)

	req := baseRequest()
	req.Frequency = domain.FrequencyWeekly
	req.Sittings = 2
	req.StartAnchor = anchorDate(2025, time.June, 16)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInsufficientAvailability)
}

func TestExecute_MonthlyClampsToEndOfMonth(t *testing.T) {
	uc := newTestUseCase(weekdaySchedule(), nil)
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2025, time.January, 10, 12, 0, 0, 0, time.UTC)}

	req := baseRequest()
	req.Frequency = domain.FrequencyMonthly
	req.StartAnchor = anchorDate(2025, time.January, 31) // пятница

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, resp.Dates, 3)
	// Январь/февраль - летнее время в Сиднее (UTC+11), конец марта - зимнее
	loc, _ := time.LoadLocation("Australia/Sydney")
	assert.Equal(t, time.Date(2025, time.January, 31, 9, 0, 0, 0, loc).UTC(), resp.Dates[0])
	assert.Equal(t, time.Date(2025, time.February, 28, 9, 0, 0, 0, loc).UTC(), resp.Dates[1])
	assert.Equal(t, time.Date(2025, time.March, 31, 9, 0, 0, 0, loc).UTC(), resp.Dates[2])
}

func TestExecute_SingleForcesOneSitting(t *testing.T) {
	uc := newTestUseCase(weekdaySchedule(), nil)

	req := baseRequest()
	req.Frequency = domain.FrequencySingle
	req.Sittings = 5

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Sittings)
	require.Len(t, resp.Dates, 1)
	assert.Equal(t, int64(15000), resp.TotalCost)
}

func TestExecute_DatesNeverOverlap(t *testing.T) {
	uc := newTestUseCase(weekdaySchedule(), nil)

	req := baseRequest()
	req.DurationMinutes = 480 // сессия на все окно
	req.Frequency = domain.FrequencyConsecutive
	req.Sittings = 5

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, resp.Dates, 5)

	dur := time.Duration(req.DurationMinutes) * time.Minute
	for i := 0; i < len(resp.Dates); i++ {
		for j := i + 1; j < len(resp.Dates); j++ {
			a, b := resp.Dates[i], resp.Dates[j]
			overlaps := a.Before(b.Add(dur)) && b.Before(a.Add(dur))
			assert.False(t, overlaps, "dates %d and %d overlap", i, j)
		}
	}
}

func TestExecute_Deterministic(t *testing.T) {
	booked := []domain.BookedInterval{
		{Start: sydneyWinter(2025, time.June, 13, 9, 0), End: sydneyWinter(2025, time.June, 13, 11, 0)},
	}
	uc := newTestUseCase(weekdaySchedule(), booked)

	first, err := uc.Execute(context.Background(), baseRequest())
	require.NoError(t, err)

	second, err := uc.Execute(context.Background(), baseRequest())
	require.NoError(t, err)

	assert.Equal(t, first.Dates, second.Dates)
	assert.Equal(t, first.TotalCost, second.TotalCost)
}

func TestExecute_InsufficientWithinHorizon(t *testing.T) {
	// Открыт только понедельник: 52 еженедельные сессии не помещаются
	// в горизонт 180 дней
	sched := &domain.WorkSchedule{
		ProviderID: 1,
		Timezone:   "Australia/Sydney",
		Hours: domain.WeeklyHours{
			Monday: domain.DayHours{Enabled: true, Start: "09:00", End: "17:00"},
		},
	}
	uc := newTestUseCase(sched, nil)

	req := baseRequest()
	req.Frequency = domain.FrequencyWeekly
	req.Sittings = 52
	req.StartAnchor = anchorDate(2025, time.June, 16)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInsufficientAvailability)
}

func TestExecute_AnchorInPast(t *testing.T) {
	uc := newTestUseCase(weekdaySchedule(), nil)

	req := baseRequest()
	req.StartAnchor = anchorDate(2025, time.May, 20)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_UnknownTimeZone(t *testing.T) {
	uc := newTestUseCase(weekdaySchedule(), nil)

	req := baseRequest()
	req.TimeZone = "Mars/Olympus_Mons"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_ProviderNotFound(t *testing.T) {
	uc := newTestUseCase(weekdaySchedule(), nil)
	uc.directory = &fakeDirectory{err: directory.ErrProviderNotFound}

	_, err := uc.Execute(context.Background(), baseRequest())
	assert.ErrorIs(t, err, ErrProviderNotFound)
}

func TestExecute_ScheduleNotConfigured(t *testing.T) {
	uc := newTestUseCase(weekdaySchedule(), nil)
	uc.scheduleRepo = &fakeScheduleRepo{err: schedule.ErrScheduleNotFound}

	_, err := uc.Execute(context.Background(), baseRequest())
	assert.ErrorIs(t, err, ErrScheduleNotConfigured)
}

func TestExecute_ScheduleMisconfigured(t *testing.T) {
	sched := weekdaySchedule()
	sched.Hours.Monday = domain.DayHours{Enabled: true, Start: "17:00", End: "09:00"}
	uc := newTestUseCase(sched, nil)

	_, err := uc.Execute(context.Background(), baseRequest())
	assert.ErrorIs(t, err, ErrScheduleMisconfigured)
}

func TestExecute_SessionMustEndBeforeClose(t *testing.T) {
	// Пятница 13 июня занята с 10:00; двухчасовая сессия до закрытия
	// уже не помещается после блока, остается только хвост 16:00-17:00
	booked := []domain.BookedInterval{
		{Start: sydneyWinter(2025, time.June, 13, 10, 0), End: sydneyWinter(2025, time.June, 13, 16, 0)},
	}
	uc := newTestUseCase(weekdaySchedule(), booked)

	req := baseRequest()
	req.Sittings = 1
	req.StartAnchor = anchorDate(2025, time.June, 13)

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// 09:00-11:00 пересекается с блоком, после блока помещается только час,
	// поэтому единственная посадка - в начале окна быть не может: ранний
	// старт 09:00 конфликтует. Следующий свободный день - понедельник.
	require.Len(t, resp.Dates, 1)
	assert.Equal(t, sydneyWinter(2025, time.June, 16, 9, 0), resp.Dates[0])
}
