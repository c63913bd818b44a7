package get_availability

import (
	"time"

	"github.com/eggdevsol-del/manusversionartistbookingapp-sub000/internal/domain"
	"github.com/eggdevsol-del/manusversionartistbookingapp-sub000/internal/scheduling/cadence"
	"github.com/eggdevsol-del/manusversionartistbookingapp-sub000/internal/scheduling/conflict"
	"github.com/eggdevsol-del/manusversionartistbookingapp-sub000/internal/scheduling/workwindow"
)

// resolver подбирает N непересекающихся начал сессий, каждая из которых
// целиком помещается в открытое рабочее окно. Детерминирован на своем
// снапшоте: повторный вызов с теми же входами дает тот же результат.
type resolver struct {
	windows   *workwindow.Index
	conflicts *conflict.Index
	duration  time.Duration

	anchor     time.Time // календарная дата, полночь UTC
	horizonEnd time.Time // последняя дата в пределах горизонта поиска

	maxSkippedCycles int
}

// placeOnDate пытается разместить сессию в рабочем окне даты.
// Правило размещения - самое раннее свободное начало в окне; сессия
// не должна выходить за закрытие. Принятый слот сразу попадает в рабочую
// копию индекса конфликтов, чтобы последующие сессии этого же вычисления
// не пересеклись с ним.
func (r *resolver) placeOnDate(date time.Time) (time.Time, bool) {
	window, open := r.windows.OpenWindow(date)
	if !open {
		return time.Time{}, false
	}

	start, ok := r.conflicts.EarliestFit(window.Start, window.End, r.duration)
	if !ok {
		return time.Time{}, false
	}

	r.conflicts.Add(start, start.Add(r.duration))
	return start, true
}

// resolve возвращает sittings начал сессий в UTC по политике каденции
func (r *resolver) resolve(freq domain.Frequency, sittings int) ([]time.Time, error) {
	if freq.IsCyclic() {
		return r.resolveCyclic(freq, sittings)
	}
	return r.resolveDayScan(sittings)
}

// resolveDayScan политика для single и consecutive: дата двигается вперед
// по одному календарному дню. После размещения сессии k кандидат для
// сессии k+1 - следующий календарный день; закрытые и занятые дни
// просто перешагиваются. "Подряд" означает "ближайшие доступные дни".
func (r *resolver) resolveDayScan(sittings int) ([]time.Time, error) {
	dates := make([]time.Time, 0, sittings)
	day := r.anchor

	for len(dates) < sittings {
		if day.After(r.horizonEnd) {
			return nil, ErrInsufficientAvailability
		}

		if start, ok := r.placeOnDate(day); ok {
			dates = append(dates, start)
		}
		day = day.AddDate(0, 0, 1)
	}

	return dates, nil
}

// resolveCyclic политика для weekly/biweekly/monthly: каждая дата каденции
// пробуется как есть (размещение может сдвинуться позже внутри окна этой
// даты). Недоступная дата не заменяется соседним днем - пропускается целый
// цикл, чтобы сохранить семантику "тот же день недели / то же число месяца".
// Три подряд пропущенных цикла - отказ: иначе движок молча выдал бы
// расписание, произвольно уехавшее от запрошенной каденции.
func (r *resolver) resolveCyclic(freq domain.Frequency, sittings int) ([]time.Time, error) {
	dates := make([]time.Time, 0, sittings)
	seq := cadence.NewSequence(r.anchor, freq)
	skipped := 0

	for len(dates) < sittings {
		date, ok := seq.Next()
		if !ok || date.After(r.horizonEnd) {
			return nil, ErrInsufficientAvailability
		}

		if start, placed := r.placeOnDate(date); placed {
			dates = append(dates, start)
			skipped = 0
			continue
		}

		skipped++
		if skipped >= r.maxSkippedCycles {
			return nil, ErrInsufficientAvailability
		}
	}

	return dates, nil
}
