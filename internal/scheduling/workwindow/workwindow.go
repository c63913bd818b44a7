// Package workwindow превращает недельное расписание провайдера в открытые
// рабочие интервалы для конкретных календарных дат.
package workwindow

import (
	"fmt"
	"time"

	"github.com/eggdevsol-del/manusversionartistbookingapp-sub000/internal/domain"
)

// Window открытый рабочий интервал в UTC, полуинтервал [Start, End)
type Window struct {
	Start time.Time
	End   time.Time
}

// Index отвечает на вопрос "какое рабочее окно у провайдера в эту дату".
// Чистая структура без побочных эффектов: построена один раз из расписания,
// дальше только читается.
type Index struct {
	hours domain.WeeklyHours
	loc   *time.Location
}

// New строит индекс по расписанию. Расписание валидируется: нарушение
// инвариантов (start >= end, неизвестная зона) - это дефект конфигурации,
// он возвращается как domain.ErrScheduleMisconfigured, а не маскируется
// под отсутствие свободных слотов.
func New(schedule *domain.WorkSchedule) (*Index, error) {
	if err := schedule.Validate(); err != nil {
		return nil, err
	}

	loc, err := time.LoadLocation(schedule.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: load timezone %q: %v", domain.ErrScheduleMisconfigured, schedule.Timezone, err)
	}

	return &Index{hours: schedule.Hours, loc: loc}, nil
}

// Location возвращает IANA-зону расписания
func (ix *Index) Location() *time.Location {
	return ix.loc
}

// OpenWindow возвращает рабочее окно на календарную дату date (UTC-полночь)
// в UTC-инстантах. Локальное время открытия/закрытия конвертируется по полным
// правилам IANA, включая переходы DST: один и тот же "09:00" в Сиднее дает
// разные UTC-смещения летом и зимой.
//
// Возвращает ok=false, если день в расписании выключен.
func (ix *Index) OpenWindow(date time.Time) (Window, bool) {
	year, month, day := date.Date()
	weekday := date.Weekday()

	hours := ix.hours.ForWeekday(weekday)
	if !hours.Enabled {
		return Window{}, false
	}

	// Индекс строится только из валидированного расписания, поэтому
	// ошибок парсинга времени здесь быть не может
	start, err := hours.Start.OnDate(year, month, day, ix.loc)
	if err != nil {
		return Window{}, false
	}
	end, err := hours.End.OnDate(year, month, day, ix.loc)
	if err != nil {
		return Window{}, false
	}

	// На дне перехода DST локальный интервал может схлопнуться
	if !start.Before(end) {
		return Window{}, false
	}

	return Window{Start: start.UTC(), End: end.UTC()}, true
}
