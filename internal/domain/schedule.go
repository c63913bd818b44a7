package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/eggdevsol-del/manusversionartistbookingapp-sub000/pkg/types"
)

var (
	// ErrScheduleMisconfigured возвращается, когда недельное расписание
	// нарушает инварианты (start >= end, неизвестная IANA-зона).
	// Это дефект конфигурации провайдера, а не "нет свободных слотов".
	ErrScheduleMisconfigured = errors.New("domain: work schedule misconfigured")
)

// DayHours describes a provider's working hours on one weekday.
// Start and End are local wall-clock times in the schedule's timezone.
type DayHours struct {
	Enabled bool
	Start   types.TimeString
	End     types.TimeString
}

// WeeklyHours holds working hours for every weekday.
type WeeklyHours struct {
	Monday    DayHours
	Tuesday   DayHours
	Wednesday DayHours
	Thursday  DayHours
	Friday    DayHours
	Saturday  DayHours
	Sunday    DayHours
}

// ForWeekday returns the hours entry for the given weekday.
func (w WeeklyHours) ForWeekday(day time.Weekday) DayHours {
	switch day {
	case time.Monday:
		return w.Monday
	case time.Tuesday:
		return w.Tuesday
	case time.Wednesday:
		return w.Wednesday
	case time.Thursday:
		return w.Thursday
	case time.Friday:
		return w.Friday
	case time.Saturday:
		return w.Saturday
	case time.Sunday:
		return w.Sunday
	default:
		return DayHours{Enabled: false}
	}
}

// WorkSchedule is a provider's declared weekly availability.
// Owned by provider settings; the scheduling engine only reads it.
type WorkSchedule struct {
	ProviderID int64
	Timezone   string // IANA identifier, e.g. "Australia/Sydney"
	Hours      WeeklyHours
	UpdatedAt  time.Time
}

// Validate checks the schedule invariants: the timezone must be a known
// IANA zone and every enabled day must have Start < End.
func (s *WorkSchedule) Validate() error {
	if _, err := time.LoadLocation(s.Timezone); err != nil {
		return fmt.Errorf("%w: unknown timezone %q", ErrScheduleMisconfigured, s.Timezone)
	}

	days := map[string]DayHours{
		"monday":    s.Hours.Monday,
		"tuesday":   s.Hours.Tuesday,
		"wednesday": s.Hours.Wednesday,
		"thursday":  s.Hours.Thursday,
		"friday":    s.Hours.Friday,
		"saturday":  s.Hours.Saturday,
		"sunday":    s.Hours.Sunday,
	}

	for name, day := range days {
		if !day.Enabled {
			continue
		}
		if err := day.Start.Validate(); err != nil {
			return fmt.Errorf("%w: %s start: %v", ErrScheduleMisconfigured, name, err)
		}
		if err := day.End.Validate(); err != nil {
			return fmt.Errorf("%w: %s end: %v", ErrScheduleMisconfigured, name, err)
		}
		if !day.Start.IsBefore(day.End) {
			return fmt.Errorf("%w: %s has start %s >= end %s", ErrScheduleMisconfigured, name, day.Start, day.End)
		}
	}

	return nil
}

// HasAnyOpenDay returns true if at least one weekday is enabled.
func (s *WorkSchedule) HasAnyOpenDay() bool {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if s.Hours.ForWeekday(d).Enabled {
			return true
		}
	}
	return false
}
