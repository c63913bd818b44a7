package appointments

import (
	"context"
	"errors"
	"fmt"

	appointmentRepo "github.com/eggdevsol-del/manusversionartistbookingapp-sub000/internal/infra/storage/appointment"
	"github.com/eggdevsol-del/manusversionartistbookingapp-sub000/internal/service/appointments/models"
)

// Service сервис для работы со встречами
type Service struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса встреч
func NewService(appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// GetByID получает встречу по ID
// Проверяет права доступа - встречу видят только ее стороны
// (провайдер или клиент)
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d for user=%d", id, userID)

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !appt.InvolvesUser(userID) {
		s.logger.Warn("GetByID: access denied for user=%d to appointment id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched appointment id=%d", id)
	return models.FromDomainAppointment(appt), nil
}

// GetProviderAppointments получает встречи провайдера за период
// Доступно только самому провайдеру
func (s *Service) GetProviderAppointments(ctx context.Context, req *models.GetProviderAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetProviderAppointments: fetching appointments for provider=%d, user=%d", req.ProviderID, req.UserID)

	if req.UserID != req.ProviderID {
		s.logger.Warn("GetProviderAppointments: access denied for user=%d to provider=%d calendar", req.UserID, req.ProviderID)
		return nil, ErrAccessDenied
	}

	if req.From != nil && req.To != nil && !req.From.Before(*req.To) {
		s.logger.Warn("GetProviderAppointments: invalid period for provider=%d", req.ProviderID)
		return nil, fmt.Errorf("%w: from must be before to", ErrInvalidInput)
	}

	appts, err := s.appointmentRepo.ListWithFilter(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("GetProviderAppointments: repository error for provider=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: GetProviderAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetProviderAppointments: successfully fetched %d appointments for provider=%d", len(appts), req.ProviderID)
	return models.FromDomainAppointmentList(appts), nil
}

// GetClientAppointments получает историю встреч клиента
// Доступно только самому клиенту
func (s *Service) GetClientAppointments(ctx context.Context, clientID int64, userID int64) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetClientAppointments: fetching appointments for client=%d, user=%d", clientID, userID)

	if userID != clientID {
		s.logger.Warn("GetClientAppointments: access denied for user=%d to client=%d history", userID, clientID)
		return nil, ErrAccessDenied
	}

	appts, err := s.appointmentRepo.ListByClient(ctx, clientID)
	if err != nil {
		s.logger.Error("GetClientAppointments: repository error for client=%d: %v", clientID, err)
		return nil, fmt.Errorf("%w: GetClientAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetClientAppointments: successfully fetched %d appointments for client=%d", len(appts), clientID)
	return models.FromDomainAppointmentList(appts), nil
}

// Cancel отменяет встречу. Отмена - это удаление записи: освобожденный
// интервал сразу доступен для новых подборов.
// Доступно только провайдеру встречи.
func (s *Service) Cancel(ctx context.Context, appointmentID int64, userID int64) error {
	s.logger.Info("Cancel: cancelling appointment id=%d by user=%d", appointmentID, userID)

	appt, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if appt.ProviderID != userID {
		s.logger.Warn("Cancel: access denied for user=%d to cancel appointment id=%d", userID, appointmentID)
		return ErrAccessDenied
	}

	if err := s.appointmentRepo.Delete(ctx, appointmentID); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found during cancellation", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%d", appointmentID)
	return nil
}
