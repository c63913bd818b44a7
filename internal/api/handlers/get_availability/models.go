package get_availability

import (
	"fmt"
	"strconv"
	"time"

	"github.com/eggdevsol-del/manusversionartistbookingapp-sub000/internal/domain"
	getAvailability "github.com/eggdevsol-del/manusversionartistbookingapp-sub000/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	ProviderID int64    `json:"providerId"`
	Frequency  string   `json:"frequency"`
	Sittings   int      `json:"sittings"`
	Dates      []string `json:"dates"` // RFC3339, UTC
	TotalCost  int64    `json:"totalCost"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	dates := make([]string, len(resp.Dates))
	for i, d := range resp.Dates {
		dates[i] = d.UTC().Format(time.RFC3339)
	}

	return &AvailabilityResponse{
		ProviderID: resp.ProviderID,
		Frequency:  resp.Frequency.String(),
		Sittings:   resp.Sittings,
		Dates:      dates,
		TotalCost:  resp.TotalCost,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(providerID int64, query map[string]string) (*getAvailability.Request, error) {
	duration, err := strconv.Atoi(query["durationMinutes"])
	if err != nil {
		return nil, fmt.Errorf("invalid durationMinutes: %v", err)
	}

	sittings, err := strconv.Atoi(query["sittings"])
	if err != nil {
		return nil, fmt.Errorf("invalid sittings: %v", err)
	}

	price, err := strconv.ParseInt(query["price"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid price: %v", err)
	}

	frequency, err := domain.ParseFrequency(query["frequency"])
	if err != nil {
		return nil, fmt.Errorf("invalid frequency: %v", err)
	}

	anchor, err := time.Parse(domain.DateFormat, query["startAnchor"])
	if err != nil {
		return nil, fmt.Errorf("invalid startAnchor: %v", err)
	}

	return &getAvailability.Request{
		ProviderID:      providerID,
		DurationMinutes: duration,
		Sittings:        sittings,
		Price:           price,
		Frequency:       frequency,
		StartAnchor:     anchor,
		TimeZone:        query["timeZone"],
	}, nil
}
