package create_appointment

import (
	"fmt"
	"time"

	commitBooking "github.com/eggdevsol-del/manusversionartistbookingapp-sub000/internal/usecase/commit_booking"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ProviderID  int64   `json:"providerId"`
	ClientID    int64   `json:"clientId"`
	StartUTC    string  `json:"startUtc"` // RFC3339
	EndUTC      string  `json:"endUtc"`   // RFC3339
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
}

// AppointmentCreatedResponse HTTP response model
type AppointmentCreatedResponse struct {
	ID        int64  `json:"id"`
	Reference string `json:"reference"`
	StartUTC  string `json:"startUtc"`
	EndUTC    string `json:"endUtc"`
	CreatedAt string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*commitBooking.Request, error) {
	start, err := time.Parse(time.RFC3339, r.StartUTC)
	if err != nil {
		return nil, fmt.Errorf("invalid startUtc: %v", err)
	}

	end, err := time.Parse(time.RFC3339, r.EndUTC)
	if err != nil {
		return nil, fmt.Errorf("invalid endUtc: %v", err)
	}

	return &commitBooking.Request{
		ProviderID:  r.ProviderID,
		ClientID:    r.ClientID,
		StartUTC:    start.UTC(),
		EndUTC:      end.UTC(),
		Title:       r.Title,
		Description: r.Description,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *commitBooking.Response) *AppointmentCreatedResponse {
	return &AppointmentCreatedResponse{
		ID:        resp.ID,
		Reference: resp.Reference.String(),
		StartUTC:  resp.StartUTC.UTC().Format(time.RFC3339),
		EndUTC:    resp.EndUTC.UTC().Format(time.RFC3339),
		CreatedAt: resp.CreatedAt.UTC().Format(time.RFC3339),
	}
}
