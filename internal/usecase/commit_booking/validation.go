package commit_booking

import (
	"fmt"
	"time"

	"github.com/eggdevsol-del/manusversionartistbookingapp-sub000/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, now time.Time) error {
	if req.ProviderID <= 0 {
		return fmt.Errorf("%w: providerID must be positive", ErrInvalidInput)
	}

	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	if req.StartUTC.IsZero() || req.EndUTC.IsZero() {
		return fmt.Errorf("%w: startUtc and endUtc are required", ErrInvalidInput)
	}

	if !req.StartUTC.Before(req.EndUTC) {
		return fmt.Errorf("%w: startUtc must be before endUtc", ErrInvalidInput)
	}

	duration := req.EndUTC.Sub(req.StartUTC)
	if duration < time.Duration(domain.MinDurationMinutes)*time.Minute ||
		duration > time.Duration(domain.MaxDurationMinutes)*time.Minute {
		return fmt.Errorf("%w: session duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinDurationMinutes, domain.MaxDurationMinutes)
	}

	if req.StartUTC.Before(now) {
		return fmt.Errorf("%w: startUtc is in the past", ErrInvalidInput)
	}

	if req.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}

	if len(req.Title) > domain.MaxTitleLength {
		return fmt.Errorf("%w: title exceeds %d characters", ErrInvalidInput, domain.MaxTitleLength)
	}

	if req.Description != nil && len(*req.Description) > domain.MaxDescriptionLength {
		return fmt.Errorf("%w: description exceeds %d characters", ErrInvalidInput, domain.MaxDescriptionLength)
	}

	return nil
}
