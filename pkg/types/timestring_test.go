package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"09:00", false},
		{"00:00", false},
		{"23:59", false},
		{"24:00", true},
		{"9:00", true},
		{"09:60", true},
		{"morning", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, ts.String())
		})
	}
}

func TestValidate_RequiresCanonicalForm(t *testing.T) {
	require.NoError(t, TimeString("09:00").Validate())

	// Без ведущего нуля строковое сравнение ломается: "9:00" > "17:00"
	assert.ErrorIs(t, TimeString("9:00").Validate(), ErrInvalidTimeString)
	assert.ErrorIs(t, TimeString("09:00:00").Validate(), ErrInvalidTimeString)
}

func TestMinutesFromMidnight(t *testing.T) {
	mins, err := TimeString("09:30").MinutesFromMidnight()
	require.NoError(t, err)
	assert.Equal(t, 570, mins)

	mins, err = TimeString("00:00").MinutesFromMidnight()
	require.NoError(t, err)
	assert.Equal(t, 0, mins)
}

func TestAddMinutes(t *testing.T) {
	ts, err := TimeString("09:00").AddMinutes(120)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:00"), ts)

	// Переход через полночь - ошибка, включая ровно 24:00
	_, err = TimeString("23:00").AddMinutes(120)
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = TimeString("23:00").AddMinutes(60)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestIsBefore(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("17:00"))
	assert.False(t, TimeString("17:00").IsBefore("09:00"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))
}

func TestOnDate_DSTTransition(t *testing.T) {
	loc, err := time.LoadLocation("Australia/Sydney")
	require.NoError(t, err)

	// Лето в Сиднее: UTC+11
	summer, err := TimeString("09:00").OnDate(2025, time.January, 17, loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.January, 16, 22, 0, 0, 0, time.UTC), summer.UTC())

	// Зима: UTC+10
	winter, err := TimeString("09:00").OnDate(2025, time.June, 16, loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.June, 15, 23, 0, 0, 0, time.UTC), winter.UTC())
}

func TestScan_TruncatesSeconds(t *testing.T) {
	var ts TimeString
	require.NoError(t, ts.Scan("09:00:00"))
	assert.Equal(t, TimeString("09:00"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())
}
