package get_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	// (неизвестная каденция, неположительные длительность/число сессий,
	// неизвестная таймзона, якорь в прошлом)
	ErrInvalidInput = errors.New("get_availability: invalid input data")

	// ErrProviderNotFound возвращается, когда провайдер не найден
	ErrProviderNotFound = errors.New("get_availability: provider not found")

	// ErrScheduleNotConfigured возвращается, когда у провайдера нет расписания
	ErrScheduleNotConfigured = errors.New("get_availability: provider has no work schedule")

	// ErrScheduleMisconfigured возвращается при нарушенных инвариантах
	// расписания. Это дефект конфигурации, отличаемый от "нет свободных слотов".
	ErrScheduleMisconfigured = errors.New("get_availability: work schedule misconfigured")

	// ErrInsufficientAvailability возвращается, когда в пределах горизонта
	// поиска не нашлось нужного числа слотов. Ожидаемый исход, не сбой:
	// вызывающий может изменить каденцию или горизонт.
	ErrInsufficientAvailability = errors.New("get_availability: insufficient availability within search horizon")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_availability: internal error")
)
