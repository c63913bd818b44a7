package update_work_schedule

import (
	"github.com/eggdevsol-del/manusversionartistbookingapp-sub000/internal/service/schedule/models"
)

// UpdateScheduleRequest HTTP request model
type UpdateScheduleRequest struct {
	Timezone  string                 `json:"timezone"`
	Monday    models.DayHoursPayload `json:"monday"`
	Tuesday   models.DayHoursPayload `json:"tuesday"`
	Wednesday models.DayHoursPayload `json:"wednesday"`
	Thursday  models.DayHoursPayload `json:"thursday"`
	Friday    models.DayHoursPayload `json:"friday"`
	Saturday  models.DayHoursPayload `json:"saturday"`
	Sunday    models.DayHoursPayload `json:"sunday"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateScheduleRequest) ToServiceRequest(providerID, userID int64) *models.UpdateScheduleRequest {
	return &models.UpdateScheduleRequest{
		UserID:     userID,
		ProviderID: providerID,
		Timezone:   r.Timezone,
		Monday:     r.Monday,
		Tuesday:    r.Tuesday,
		Wednesday:  r.Wednesday,
		Thursday:   r.Thursday,
		Friday:     r.Friday,
		Saturday:   r.Saturday,
		Sunday:     r.Sunday,
	}
}
