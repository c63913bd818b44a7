package domain

// Default scheduling parameters
const (
	// DefaultHorizonDays ограничивает поиск слотов от якорной даты.
	// За пределами горизонта поиск завершается ошибкой, а не продолжается бесконечно.
	DefaultHorizonDays = 180

	// DefaultMaxSkippedCycles число подряд недоступных циклов каденции
	// (weekly/biweekly/monthly), после которого подбор считается неудавшимся.
	// Защищает от расписаний, незаметно уехавших далеко от запрошенной каденции.
	DefaultMaxSkippedCycles = 3
)

// Business validation constants
const (
	MinDurationMinutes = 5
	MaxDurationMinutes = 480 // 8 hours
	MinSittings        = 1
	MaxSittings        = 52
	MaxTitleLength     = 200
	MaxDescriptionLength = 1000
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
