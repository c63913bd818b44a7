package models

import (
	"time"

	"github.com/eggdevsol-del/manusversionartistbookingapp-sub000/internal/domain"
)

// Request модели

// GetProviderAppointmentsRequest запрос на список встреч провайдера
type GetProviderAppointmentsRequest struct {
	UserID     int64      `json:"userId"`
	ProviderID int64      `json:"providerId"`
	From       *time.Time `json:"from,omitempty"` // Начало периода (опционально)
	To         *time.Time `json:"to,omitempty"`   // Конец периода (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetProviderAppointmentsRequest) ToDomainFilter() domain.AppointmentFilter {
	return domain.AppointmentFilter{
		ProviderID: r.ProviderID,
		From:       r.From,
		To:         r.To,
	}
}

// Response модели

// AppointmentResponse ответ с данными встречи
type AppointmentResponse struct {
	ID          int64     `json:"id"`
	Reference   string    `json:"reference"`
	ProviderID  int64     `json:"providerId"`
	ClientID    int64     `json:"clientId"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	StartUTC    time.Time `json:"startUtc"`
	EndUTC      time.Time `json:"endUtc"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком встреч
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:          a.ID,
		Reference:   a.Reference.String(),
		ProviderID:  a.ProviderID,
		ClientID:    a.ClientID,
		Title:       a.Title,
		Description: a.Description,
		StartUTC:    a.StartUTC,
		EndUTC:      a.EndUTC,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appts []*domain.Appointment) *AppointmentListResponse {
	out := make([]AppointmentResponse, 0, len(appts))
	for _, a := range appts {
		out = append(out, *FromDomainAppointment(a))
	}
	return &AppointmentListResponse{Appointments: out}
}
