package update_work_schedule

import (
	"context"

	"github.com/eggdevsol-del/manusversionartistbookingapp-sub000/internal/service/schedule/models"
)

type ScheduleService interface {
	UpdateWeekly(ctx context.Context, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
