package get_provider_appointments

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/eggdevsol-del/manusversionartistbookingapp-sub000/internal/api/handlers"
	"github.com/eggdevsol-del/manusversionartistbookingapp-sub000/internal/api/middleware"
	"github.com/eggdevsol-del/manusversionartistbookingapp-sub000/internal/service/appointments"
	"github.com/eggdevsol-del/manusversionartistbookingapp-sub000/internal/service/appointments/models"
	"github.com/eggdevsol-del/manusversionartistbookingapp-sub000/pkg/ptr"
)

const (
	msgInvalidProviderID = "некорректный ID провайдера"
	msgInvalidPeriod     = "некорректный период, ожидается RFC3339"
	msgMissingUserID     = "отсутствует ID пользователя"
	msgForbidden         = "доступ запрещен"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/providers/{providerId}/appointments
// Query params: from, to (опционально, RFC3339)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	providerIDStr := vars["providerId"]

	providerID, err := strconv.ParseInt(providerIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /providers/{id}/appointments - Invalid provider ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /providers/{id}/appointments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	req := &models.GetProviderAppointmentsRequest{
		UserID:     userID,
		ProviderID: providerID,
	}

	for name, dst := range map[string]**time.Time{"from": &req.From, "to": &req.To} {
		if value := r.URL.Query().Get(name); value != "" {
			parsed, err := time.Parse(time.RFC3339, value)
			if err != nil {
				h.logger.Warn("GET /providers/{id}/appointments - Invalid %s: %v", name, err)
				handlers.RespondBadRequest(w, msgInvalidPeriod)
				return
			}
			*dst = ptr.Ptr(parsed)
		}
	}

	result, err := h.service.GetProviderAppointments(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("GET /providers/{id}/appointments - Access denied: provider_id=%d, user_id=%d",
				providerID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /providers/{id}/appointments - Invalid period: provider_id=%d", providerID)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /providers/{id}/appointments - Failed to get appointments: provider_id=%d, error=%v",
				providerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /providers/{id}/appointments - Appointments retrieved successfully: provider_id=%d, count=%d",
		providerID, len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
