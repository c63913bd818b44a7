package models

import (
	"time"

	"github.com/eggdevsol-del/manusversionartistbookingapp-sub000/internal/domain"
	"github.com/eggdevsol-del/manusversionartistbookingapp-sub000/pkg/types"
)

// Request модели

// DayHoursPayload рабочие часы одного дня недели
type DayHoursPayload struct {
	Enabled bool   `json:"enabled"`
	Start   string `json:"start,omitempty"` // "09:00", только для открытых дней
	End     string `json:"end,omitempty"`   // "17:00"
}

// UpdateScheduleRequest запрос на замену недельного расписания провайдера
type UpdateScheduleRequest struct {
	UserID     int64           `json:"userId"`
	ProviderID int64           `json:"providerId"`
	Timezone   string          `json:"timezone"` // IANA-зона, например "Australia/Sydney"
	Monday     DayHoursPayload `json:"monday"`
	Tuesday    DayHoursPayload `json:"tuesday"`
	Wednesday  DayHoursPayload `json:"wednesday"`
	Thursday   DayHoursPayload `json:"thursday"`
	Friday     DayHoursPayload `json:"friday"`
	Saturday   DayHoursPayload `json:"saturday"`
	Sunday     DayHoursPayload `json:"sunday"`
}

// ToDomainSchedule конвертирует request в domain модель
func (r *UpdateScheduleRequest) ToDomainSchedule() *domain.WorkSchedule {
	return &domain.WorkSchedule{
		ProviderID: r.ProviderID,
		Timezone:   r.Timezone,
		Hours: domain.WeeklyHours{
			Monday:    r.Monday.toDomain(),
			Tuesday:   r.Tuesday.toDomain(),
			Wednesday: r.Wednesday.toDomain(),
			Thursday:  r.Thursday.toDomain(),
			Friday:    r.Friday.toDomain(),
			Saturday:  r.Saturday.toDomain(),
			Sunday:    r.Sunday.toDomain(),
		},
	}
}

func (p DayHoursPayload) toDomain() domain.DayHours {
	return domain.DayHours{
		Enabled: p.Enabled,
		Start:   types.TimeString(p.Start),
		End:     types.TimeString(p.End),
	}
}

// Response модели

// ScheduleResponse ответ с недельным расписанием провайдера
type ScheduleResponse struct {
	ProviderID int64           `json:"providerId"`
	Timezone   string          `json:"timezone"`
	Monday     DayHoursPayload `json:"monday"`
	Tuesday    DayHoursPayload `json:"tuesday"`
	Wednesday  DayHoursPayload `json:"wednesday"`
	Thursday   DayHoursPayload `json:"thursday"`
	Friday     DayHoursPayload `json:"friday"`
	Saturday   DayHoursPayload `json:"saturday"`
	Sunday     DayHoursPayload `json:"sunday"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// FromDomainSchedule конвертирует domain модель в DTO
func FromDomainSchedule(s *domain.WorkSchedule) *ScheduleResponse {
	if s == nil {
		return nil
	}

	return &ScheduleResponse{
		ProviderID: s.ProviderID,
		Timezone:   s.Timezone,
		Monday:     fromDomain(s.Hours.Monday),
		Tuesday:    fromDomain(s.Hours.Tuesday),
		Wednesday:  fromDomain(s.Hours.Wednesday),
		Thursday:   fromDomain(s.Hours.Thursday),
		Friday:     fromDomain(s.Hours.Friday),
		Saturday:   fromDomain(s.Hours.Saturday),
		Sunday:     fromDomain(s.Hours.Sunday),
		UpdatedAt:  s.UpdatedAt,
	}
}

func fromDomain(d domain.DayHours) DayHoursPayload {
	p := DayHoursPayload{Enabled: d.Enabled}
	if d.Enabled {
		p.Start = d.Start.String()
		p.End = d.End.String()
	}
	return p
}
