package get_client_appointments

import (
	"context"

	"github.com/eggdevsol-del/manusversionartistbookingapp-sub000/internal/service/appointments/models"
)

type AppointmentService interface {
	GetClientAppointments(ctx context.Context, clientID int64, userID int64) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
