package create_appointment

import (
	"errors"
	"net/http"

	"github.com/eggdevsol-del/manusversionartistbookingapp-sub000/internal/api/handlers"
	"github.com/eggdevsol-del/manusversionartistbookingapp-sub000/internal/api/middleware"
	commitBooking "github.com/eggdevsol-del/manusversionartistbookingapp-sub000/internal/usecase/commit_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "доступ запрещен"
	msgSlotTaken          = "выбранный слот уже занят"
	msgProviderNotFound   = "провайдер не найден"
	msgClientNotFound     = "клиент не найден"
)

type Handler struct {
	useCase CommitBookingUseCase
	logger  Logger
}

func NewHandler(useCase CommitBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Бронирует сам клиент
	if req.ClientID != userID {
		h.logger.Warn("POST /appointments - Access denied: user_id=%d, client_id=%d", userID, req.ClientID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, commitBooking.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, commitBooking.ErrProviderNotFound):
			h.logger.Warn("POST /appointments - Provider not found: provider_id=%d", req.ProviderID)
			handlers.RespondNotFound(w, msgProviderNotFound)

		case errors.Is(err, commitBooking.ErrClientNotFound):
			h.logger.Warn("POST /appointments - Client not found: client_id=%d", req.ClientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, commitBooking.ErrSlotNoLongerAvailable):
			h.logger.Warn("POST /appointments - Slot no longer available: provider_id=%d, start=%s",
				req.ProviderID, req.StartUTC)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		default:
			requestID, _ := middleware.GetRequestID(r.Context())
			h.logger.Error("POST /appointments - Failed to create appointment: request_id=%s, provider_id=%d, client_id=%d, error=%v",
				requestID, req.ProviderID, req.ClientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: id=%d, provider_id=%d, client_id=%d",
		result.ID, req.ProviderID, req.ClientID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
