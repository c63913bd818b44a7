package get_work_schedule

import (
	"context"

	"github.com/eggdevsol-del/manusversionartistbookingapp-sub000/internal/service/schedule/models"
)

type ScheduleService interface {
	GetWeekly(ctx context.Context, providerID int64) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
