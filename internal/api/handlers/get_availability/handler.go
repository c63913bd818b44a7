package get_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/eggdevsol-del/manusversionartistbookingapp-sub000/internal/api/handlers"
	getAvailability "github.com/eggdevsol-del/manusversionartistbookingapp-sub000/internal/usecase/get_availability"
)

const (
	msgInvalidProviderID        = "некорректный ID провайдера"
	msgInvalidQuery             = "некорректные параметры запроса"
	msgProviderNotFound         = "провайдер не найден"
	msgScheduleNotConfigured    = "у провайдера не настроено рабочее расписание"
	msgScheduleMisconfigured    = "рабочее расписание провайдера задано некорректно"
	msgInsufficientAvailability = "недостаточно свободных слотов в пределах горизонта поиска"
)

var queryParams = []string{"durationMinutes", "sittings", "price", "frequency", "startAnchor", "timeZone"}

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/providers/{providerId}/availability
// Query params: durationMinutes, sittings, price, frequency,
// startAnchor (YYYY-MM-DD), timeZone (IANA)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	providerIDStr := vars["providerId"]

	providerID, err := strconv.ParseInt(providerIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /providers/{id}/availability - Invalid provider ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	query := make(map[string]string, len(queryParams))
	for _, name := range queryParams {
		value := r.URL.Query().Get(name)
		if value == "" {
			h.logger.Warn("GET /providers/{id}/availability - Missing query param %q", name)
			handlers.RespondBadRequest(w, msgInvalidQuery)
			return
		}
		query[name] = value
	}

	useCaseReq, err := ToUseCaseRequest(providerID, query)
	if err != nil {
		h.logger.Warn("GET /providers/{id}/availability - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /providers/{id}/availability - Invalid input: provider_id=%d, error=%v", providerID, err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		case errors.Is(err, getAvailability.ErrProviderNotFound):
			h.logger.Warn("GET /providers/{id}/availability - Provider not found: provider_id=%d", providerID)
			handlers.RespondNotFound(w, msgProviderNotFound)

		case errors.Is(err, getAvailability.ErrScheduleNotConfigured):
			h.logger.Warn("GET /providers/{id}/availability - Schedule not configured: provider_id=%d", providerID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgScheduleNotConfigured)

		case errors.Is(err, getAvailability.ErrScheduleMisconfigured):
			h.logger.Warn("GET /providers/{id}/availability - Schedule misconfigured: provider_id=%d", providerID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgScheduleMisconfigured)

		case errors.Is(err, getAvailability.ErrInsufficientAvailability):
			h.logger.Info("GET /providers/{id}/availability - Insufficient availability: provider_id=%d", providerID)
			handlers.RespondError(w, http.StatusConflict, msgInsufficientAvailability)

		default:
			h.logger.Error("GET /providers/{id}/availability - Failed to resolve availability: provider_id=%d, error=%v",
				providerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /providers/{id}/availability - Availability resolved: provider_id=%d, dates_count=%d",
		providerID, len(result.Dates))
	handlers.RespondJSON(w, http.StatusOK, response)
}
