// Package conflict индекс занятых интервалов провайдера.
// Строится один раз на снапшоте существующих броней и отвечает на запросы
// пересечения в каноническом (UTC) времени. В пределах одного вычисления
// доступности индекс не перечитывает хранилище.
package conflict

import (
	"sort"
	"time"

	"github.com/eggdevsol-del/manusversionartistbookingapp-sub000/internal/domain"
)

// Index индекс занятых интервалов, отсортированных по началу
type Index struct {
	intervals []domain.BookedInterval
}

// New строит индекс из снапшота занятых интервалов
func New(intervals []domain.BookedInterval) *Index {
	ix := &Index{intervals: make([]domain.BookedInterval, len(intervals))}
	copy(ix.intervals, intervals)
	sort.Slice(ix.intervals, func(i, j int) bool {
		return ix.intervals[i].Start.Before(ix.intervals[j].Start)
	})
	return ix
}

// Len возвращает число интервалов в индексе
func (ix *Index) Len() int {
	return len(ix.intervals)
}

// Overlaps возвращает true, если [start, end) пересекается хотя бы с одним
// занятым интервалом. Интервалы полуоткрытые: сессия, заканчивающаяся в 14:00,
// не конфликтует с сессией, начинающейся в 14:00.
func (ix *Index) Overlaps(start, end time.Time) bool {
	for _, iv := range ix.intervals {
		if !iv.Start.Before(end) {
			// Интервалы отсортированы, дальше пересечений не будет
			break
		}
		if iv.Overlaps(start, end) {
			return true
		}
	}
	return false
}

// Add добавляет интервал в индекс, сохраняя сортировку.
// Используется для рабочей копии: слоты, принятые в текущем вычислении,
// не должны пересекаться со следующими его же слотами.
func (ix *Index) Add(start, end time.Time) {
	iv := domain.BookedInterval{Start: start, End: end}
	pos := sort.Search(len(ix.intervals), func(i int) bool {
		return ix.intervals[i].Start.After(start)
	})
	ix.intervals = append(ix.intervals, domain.BookedInterval{})
	copy(ix.intervals[pos+1:], ix.intervals[pos:])
	ix.intervals[pos] = iv
}

// EarliestFit находит самое раннее начало сессии длительности dur внутри
// рабочего окна [winStart, winEnd), не пересекающееся с занятыми интервалами.
// Кандидат сдвигается вперед за конец каждого мешающего интервала.
// Если сессия не успевает закончиться до закрытия окна, возвращается ok=false.
func (ix *Index) EarliestFit(winStart, winEnd time.Time, dur time.Duration) (time.Time, bool) {
	start := winStart

	for {
		end := start.Add(dur)
		if end.After(winEnd) {
			return time.Time{}, false
		}

		blocked := false
		for _, iv := range ix.intervals {
			if !iv.Start.Before(end) {
				break
			}
			if iv.Overlaps(start, end) {
				// Сдвигаемся за конец мешающего интервала
				if iv.End.After(start) {
					start = iv.End
				}
				blocked = true
			}
		}

		if !blocked {
			return start, true
		}
	}
}
