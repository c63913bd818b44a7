// Package cadence порождает последовательности календарных дат-кандидатов
// по заданной каденции. Пакет никогда сам не пропускает даты из-за занятости
// или выходных - эта политика живет уровнем выше, в подборе слотов.
package cadence

import (
	"time"

	"github.com/eggdevsol-del/manusversionartistbookingapp-sub000/internal/domain"
)

// Sequence ленивая последовательность дат-кандидатов от якорной даты.
// Каждый вызов NewSequence создает независимый курсор: общих изменяемых
// курсоров между вычислениями нет.
type Sequence struct {
	anchor time.Time
	freq   domain.Frequency
	n      int
}

// NewSequence создает последовательность дат от anchor по каденции freq.
// Дата нормализуется до полуночи UTC: последовательность оперирует
// календарными датами, а не моментами времени.
func NewSequence(anchor time.Time, freq domain.Frequency) *Sequence {
	return &Sequence{anchor: Normalize(anchor), freq: freq}
}

// Next возвращает следующую дату последовательности.
// Для single последовательность состоит из единственного элемента - якоря;
// второй вызов вернет ok=false. Остальные каденции бесконечны.
func (s *Sequence) Next() (time.Time, bool) {
	n := s.n
	s.n++

	switch s.freq {
	case domain.FrequencySingle:
		if n > 0 {
			return time.Time{}, false
		}
		return s.anchor, true
	case domain.FrequencyConsecutive:
		return s.anchor.AddDate(0, 0, n), true
	case domain.FrequencyWeekly:
		return s.anchor.AddDate(0, 0, 7*n), true
	case domain.FrequencyBiweekly:
		return s.anchor.AddDate(0, 0, 14*n), true
	case domain.FrequencyMonthly:
		return AddMonthsClamped(s.anchor, n), true
	default:
		return time.Time{}, false
	}
}

// AddMonthsClamped возвращает дату через months месяцев от anchor,
// сохраняя день месяца якоря. Если в целевом месяце меньше дней,
// дата прижимается к последнему дню месяца: 31 января + 1 месяц дает
// 28 (или 29) февраля, а не 3 марта, как при наивной арифметике дат.
func AddMonthsClamped(anchor time.Time, months int) time.Time {
	anchor = Normalize(anchor)
	year, month, day := anchor.Date()

	// Первое число целевого месяца: нормализация AddDate здесь безопасна
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, months, 0)

	targetDay := day
	if last := daysInMonth(first.Year(), first.Month()); targetDay > last {
		targetDay = last
	}

	return time.Date(first.Year(), first.Month(), targetDay, 0, 0, 0, 0, time.UTC)
}

// Normalize обрезает момент времени до календарной даты (полночь UTC)
func Normalize(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func daysInMonth(year int, month time.Month) int {
	// День 0 следующего месяца - последний день текущего
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
