package get_availability

import (
	"fmt"
	"time"

	"github.com/eggdevsol-del/manusversionartistbookingapp-sub000/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Все отказы здесь - до какого-либо поиска.
func validateRequest(req *Request) (*time.Location, error) {
	if req.ProviderID <= 0 {
		return nil, fmt.Errorf("%w: providerID must be positive", ErrInvalidInput)
	}

	if req.DurationMinutes < domain.MinDurationMinutes || req.DurationMinutes > domain.MaxDurationMinutes {
		return nil, fmt.Errorf("%w: durationMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinDurationMinutes, domain.MaxDurationMinutes)
	}

	if req.Sittings < domain.MinSittings || req.Sittings > domain.MaxSittings {
		return nil, fmt.Errorf("%w: sittings must be between %d and %d",
			ErrInvalidInput, domain.MinSittings, domain.MaxSittings)
	}

	if req.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	if !req.Frequency.Valid() {
		return nil, fmt.Errorf("%w: unknown frequency %q", ErrInvalidInput, string(req.Frequency))
	}

	if req.StartAnchor.IsZero() {
		return nil, fmt.Errorf("%w: startAnchor is required", ErrInvalidInput)
	}

	loc, err := time.LoadLocation(req.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown timeZone %q", ErrInvalidInput, req.TimeZone)
	}

	return loc, nil
}

// validateAnchorNotInPast проверяет, что якорная дата не в прошлом.
// "Сегодня" определяется в зоне клиента: якорь сравнивается с текущей
// календарной датой в этой зоне.
func validateAnchorNotInPast(anchor time.Time, now time.Time, loc *time.Location) error {
	nowLocal := now.In(loc)
	today := time.Date(nowLocal.Year(), nowLocal.Month(), nowLocal.Day(), 0, 0, 0, 0, time.UTC)

	year, month, day := anchor.Date()
	anchorDate := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)

	if anchorDate.Before(today) {
		return fmt.Errorf("%w: startAnchor is in the past", ErrInvalidInput)
	}
	return nil
}
