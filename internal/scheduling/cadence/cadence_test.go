package cadence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eggdevsol-del/manusversionartistbookingapp-sub000/internal/domain"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func take(t *testing.T, seq *Sequence, n int) []time.Time {
	t.Helper()
	out := make([]time.Time, 0, n)
	for i := 0; i < n; i++ {
		d, ok := seq.Next()
		require.True(t, ok, "sequence ended early at element %d", i)
		out = append(out, d)
	}
	return out
}

func TestSequence_Single(t *testing.T) {
	seq := NewSequence(day(2025, time.March, 10), domain.FrequencySingle)

	first, ok := seq.Next()
	require.True(t, ok)
	assert.Equal(t, day(2025, time.March, 10), first)

	_, ok = seq.Next()
	assert.False(t, ok, "single cadence must yield exactly one date")
}

func TestSequence_Consecutive(t *testing.T) {
	seq := NewSequence(day(2025, time.March, 10), domain.FrequencyConsecutive)
	dates := take(t, seq, 4)

	assert.Equal(t, []time.Time{
		day(2025, time.March, 10),
		day(2025, time.March, 11),
		day(2025, time.March, 12),
		day(2025, time.March, 13),
	}, dates)
}

func TestSequence_Weekly(t *testing.T) {
	seq := NewSequence(day(2025, time.March, 10), domain.FrequencyWeekly)
	dates := take(t, seq, 3)

	assert.Equal(t, []time.Time{
		day(2025, time.March, 10),
		day(2025, time.March, 17),
		day(2025, time.March, 24),
	}, dates)
}

func TestSequence_Biweekly(t *testing.T) {
	seq := NewSequence(day(2025, time.March, 10), domain.FrequencyBiweekly)
	dates := take(t, seq, 3)

	assert.Equal(t, []time.Time{
		day(2025, time.March, 10),
		day(2025, time.March, 24),
		day(2025, time.April, 7),
	}, dates)
}

func TestSequence_MonthlyClampsToEndOfMonth(t *testing.T) {
	seq := NewSequence(day(2025, time.January, 31), domain.FrequencyMonthly)
	dates := take(t, seq, 4)

	assert.Equal(t, []time.Time{
		day(2025, time.January, 31),
		day(2025, time.February, 28), // 2025 is not a leap year
		day(2025, time.March, 31),    // back to the anchor's day-of-month
		day(2025, time.April, 30),
	}, dates)
}

func TestSequence_MonthlyLeapYear(t *testing.T) {
	seq := NewSequence(day(2024, time.January, 31), domain.FrequencyMonthly)
	dates := take(t, seq, 2)

	assert.Equal(t, day(2024, time.February, 29), dates[1])
}

func TestSequence_MonthlyMidMonthNoClamp(t *testing.T) {
	seq := NewSequence(day(2025, time.January, 15), domain.FrequencyMonthly)
	dates := take(t, seq, 3)

	assert.Equal(t, []time.Time{
		day(2025, time.January, 15),
		day(2025, time.February, 15),
		day(2025, time.March, 15),
	}, dates)
}

func TestSequence_IndependentCursors(t *testing.T) {
	anchor := day(2025, time.June, 2)

	a := NewSequence(anchor, domain.FrequencyWeekly)
	take(t, a, 5)

	// Новый курсор начинает с якоря, а не с позиции предыдущего
	b := NewSequence(anchor, domain.FrequencyWeekly)
	first, ok := b.Next()
	require.True(t, ok)
	assert.Equal(t, anchor, first)
}

func TestSequence_NormalizesAnchor(t *testing.T) {
	// Якорь с временем и зоной должен превратиться в чистую календарную дату
	anchor := time.Date(2025, time.March, 10, 17, 45, 12, 0, time.FixedZone("X", 3600))
	seq := NewSequence(anchor, domain.FrequencyWeekly)

	first, ok := seq.Next()
	require.True(t, ok)
	assert.Equal(t, day(2025, time.March, 10), first)
}

func TestAddMonthsClamped(t *testing.T) {
	tests := []struct {
		name   string
		anchor time.Time
		months int
		want   time.Time
	}{
		{"jan31 plus one", day(2025, time.January, 31), 1, day(2025, time.February, 28)},
		{"jan31 plus two", day(2025, time.January, 31), 2, day(2025, time.March, 31)},
		{"oct31 across year", day(2025, time.October, 31), 4, day(2026, time.February, 28)},
		{"day30 into feb", day(2025, time.March, 30), 11, day(2026, time.February, 28)},
		{"zero months", day(2025, time.May, 7), 0, day(2025, time.May, 7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AddMonthsClamped(tt.anchor, tt.months))
		})
	}
}
