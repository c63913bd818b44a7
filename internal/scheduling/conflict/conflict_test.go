package conflict

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eggdevsol-del/manusversionartistbookingapp-sub000/internal/domain"
)

func at(hour, min int) time.Time {
	return time.Date(2025, time.March, 10, hour, min, 0, 0, time.UTC)
}

func interval(startH, startM, endH, endM int) domain.BookedInterval {
	return domain.BookedInterval{Start: at(startH, startM), End: at(endH, endM)}
}

func TestOverlaps(t *testing.T) {
	ix := New([]domain.BookedInterval{
		interval(10, 0, 11, 0),
		interval(14, 0, 15, 30),
	})

	tests := []struct {
		name       string
		start, end time.Time
		want       bool
	}{
		{"inside booked", at(10, 15), at(10, 45), true},
		{"spanning booked", at(9, 30), at(11, 30), true},
		{"partial head", at(10, 30), at(11, 30), true},
		{"free gap", at(11, 0), at(14, 0), false},
		{"touching end does not conflict", at(11, 0), at(12, 0), false},
		{"touching start does not conflict", at(9, 0), at(10, 0), false},
		{"before everything", at(8, 0), at(9, 0), false},
		{"after everything", at(16, 0), at(17, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ix.Overlaps(tt.start, tt.end))
		})
	}
}

func TestAdd_KeepsIndexQueryable(t *testing.T) {
	ix := New(nil)
	assert.False(t, ix.Overlaps(at(9, 0), at(10, 0)))

	ix.Add(at(9, 0), at(10, 0))
	assert.True(t, ix.Overlaps(at(9, 30), at(10, 30)))
	assert.False(t, ix.Overlaps(at(10, 0), at(11, 0)))

	// Добавление раньше существующих не ломает сортировку
	ix.Add(at(7, 0), at(8, 0))
	assert.True(t, ix.Overlaps(at(7, 30), at(7, 45)))
	assert.True(t, ix.Overlaps(at(9, 30), at(10, 30)))
	assert.Equal(t, 2, ix.Len())
}

func TestEarliestFit_EmptyWindow(t *testing.T) {
	ix := New(nil)

	start, ok := ix.EarliestFit(at(9, 0), at(17, 0), time.Hour)
	require.True(t, ok)
	assert.Equal(t, at(9, 0), start)
}

func TestEarliestFit_ShiftsPastBlockingInterval(t *testing.T) {
	// Окно 09:00-17:00, занято 09:00-10:00: часовая сессия встает в 10:00
	ix := New([]domain.BookedInterval{interval(9, 0, 10, 0)})

	start, ok := ix.EarliestFit(at(9, 0), at(17, 0), time.Hour)
	require.True(t, ok)
	assert.Equal(t, at(10, 0), start)
}

func TestEarliestFit_ChainedBlocks(t *testing.T) {
	ix := New([]domain.BookedInterval{
		interval(9, 0, 10, 0),
		interval(10, 0, 11, 30),
		interval(12, 0, 13, 0),
	})

	// Часовая сессия: 11:30-12:30 пересекается со следующей бронью,
	// поэтому первый подходящий старт - 13:00
	start, ok := ix.EarliestFit(at(9, 0), at(17, 0), time.Hour)
	require.True(t, ok)
	assert.Equal(t, at(13, 0), start)
}

func TestEarliestFit_GapExactlyFits(t *testing.T) {
	ix := New([]domain.BookedInterval{
		interval(9, 0, 10, 0),
		interval(11, 0, 12, 0),
	})

	start, ok := ix.EarliestFit(at(9, 0), at(17, 0), time.Hour)
	require.True(t, ok)
	assert.Equal(t, at(10, 0), start, "gap between bookings fits exactly")
}

func TestEarliestFit_MustEndByWindowClose(t *testing.T) {
	// Окно 09:00-10:30, занято 09:00-10:00: оставшиеся 30 минут не вмещают час
	ix := New([]domain.BookedInterval{interval(9, 0, 10, 0)})

	_, ok := ix.EarliestFit(at(9, 0), at(10, 30), time.Hour)
	assert.False(t, ok)
}

func TestEarliestFit_SessionLongerThanWindow(t *testing.T) {
	ix := New(nil)

	_, ok := ix.EarliestFit(at(9, 0), at(9, 30), time.Hour)
	assert.False(t, ok)
}

func TestNew_DoesNotAliasInput(t *testing.T) {
	src := []domain.BookedInterval{interval(9, 0, 10, 0)}
	ix := New(src)

	src[0] = interval(15, 0, 16, 0)
	assert.True(t, ix.Overlaps(at(9, 30), at(9, 45)), "index must copy the snapshot")
}
