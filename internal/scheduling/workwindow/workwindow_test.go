package workwindow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eggdevsol-del/manusversionartistbookingapp-sub000/internal/domain"
)

func sydneySchedule() *domain.WorkSchedule {
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
			// Saturday, Sunday закрыты
		},
	}
}

func utcDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestOpenWindow_DisabledDay(t *testing.T) {
	ix, err := New(sydneySchedule())
	require.NoError(t, err)

	// 2025-03-15 - суббота
	_, ok := ix.OpenWindow(utcDate(2025, time.March, 15))
	assert.False(t, ok)
}

func TestOpenWindow_SydneySummerTime(t *testing.T) {
	ix, err := New(sydneySchedule())
	require.NoError(t, err)

	// Январь в Сиднее - летнее время, UTC+11: 09:00 локально = 22:00 UTC накануне
	win, ok := ix.OpenWindow(utcDate(2025, time.January, 17)) // пятница
	require.True(t, ok)

	assert.Equal(t, time.Date(2025, time.January, 16, 22, 0, 0, 0, time.UTC), win.Start)
	assert.Equal(t, time.Date(2025, time.January, 17, 6, 0, 0, 0, time.UTC), win.End)
}

func TestOpenWindow_SydneyStandardTime(t *testing.T) {
	ix, err := New(sydneySchedule())
	require.NoError(t, err)

	// Июнь в Сиднее - зимнее время, UTC+10
	win, ok := ix.OpenWindow(utcDate(2025, time.June, 16)) // понедельник
	require.True(t, ok)

	assert.Equal(t, time.Date(2025, time.June, 15, 23, 0, 0, 0, time.UTC), win.Start)
	assert.Equal(t, time.Date(2025, time.June, 16, 7, 0, 0, 0, time.UTC), win.End)
}

func TestOpenWindow_DSTTransitionDayKeepsLocalWallClock(t *testing.T) {
	ix, err := New(sydneySchedule())
	require.NoError(t, err)

	// 2025-04-06, воскресенье - конец летнего времени в Сиднее; расписание
	// закрыто по воскресеньям, берем пятницу до и понедельник после перехода
	before, ok := ix.OpenWindow(utcDate(2025, time.April, 4))
	require.True(t, ok)
	after, ok := ix.OpenWindow(utcDate(2025, time.April, 7))
	require.True(t, ok)

	// До перехода UTC+11, после UTC+10: стена часов 09:00 сохраняется,
	// а UTC-инстанты сдвигаются на час
	assert.Equal(t, 22, before.Start.Hour())
	assert.Equal(t, 23, after.Start.Hour())

	// Длина окна в обоих случаях ровно 8 часов
	assert.Equal(t, 8*time.Hour, before.End.Sub(before.Start))
	assert.Equal(t, 8*time.Hour, after.End.Sub(after.Start))
}

func TestNew_RejectsMisconfiguredSchedule(t *testing.T) {
	sched := sydneySchedule()
	sched.Hours.Wednesday = domain.DayHours{Enabled: true, Start: "17:00", End: "09:00"}

	_, err := New(sched)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrScheduleMisconfigured)
}

func TestNew_RejectsUnknownTimezone(t *testing.T) {
	sched := sydneySchedule()
	sched.Timezone = "Mars/Olympus_Mons"

	_, err := New(sched)
	assert.ErrorIs(t, err, domain.ErrScheduleMisconfigured)
}

func TestOpenWindow_HalfOpenBounds(t *testing.T) {
	ix, err := New(sydneySchedule())
	require.NoError(t, err)

	win, ok := ix.OpenWindow(utcDate(2025, time.June, 16))
	require.True(t, ok)
	assert.True(t, win.Start.Before(win.End))
}
