package domain

import (
	"time"

	"github.com/google/uuid"
)

// Appointment represents a committed booking in the system.
// Its time fields are never mutated after creation: a reschedule is a
// delete followed by a new commit, so conflict reasoning only ever deals
// with immutable intervals.
type Appointment struct {
	ID          int64
	Reference   uuid.UUID // public identifier exposed to clients
	ProviderID  int64
	ClientID    int64
	Title       string
	Description *string
	StartUTC    time.Time
	EndUTC      time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Interval returns the appointment's booked interval.
func (a *Appointment) Interval() BookedInterval {
	return BookedInterval{Start: a.StartUTC, End: a.EndUTC}
}

// InvolvesUser returns true if the user is a party to the appointment.
func (a *Appointment) InvolvesUser(userID int64) bool {
	return a.ProviderID == userID || a.ClientID == userID
}

// BookedInterval is a half-open [Start, End) interval in UTC.
type BookedInterval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether two half-open intervals truly intersect.
// Touching endpoints do not overlap: a session ending at 14:00 does not
// conflict with one starting at 14:00.
func (i BookedInterval) Overlaps(start, end time.Time) bool {
	return i.Start.Before(end) && start.Before(i.End)
}

// Duration returns the interval length.
func (i BookedInterval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// AppointmentFilter фильтр для выборки встреч провайдера
type AppointmentFilter struct {
	ProviderID int64      // Обязательный параметр
	From       *time.Time // Начало периода (опционально)
	To         *time.Time // Конец периода (опционально)
}
