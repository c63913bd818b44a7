package commit_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("commit_booking: invalid input data")

	// ErrProviderNotFound возвращается, когда провайдер не найден
	ErrProviderNotFound = errors.New("commit_booking: provider not found")

	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = errors.New("commit_booking: client not found")

	// ErrSlotNoLongerAvailable возвращается, когда интервал занят между
	// подбором и фиксацией. Вычисление доступности ничего не резервирует,
	// поэтому такой исход штатный: клиент повторяет подбор.
	ErrSlotNoLongerAvailable = errors.New("commit_booking: slot no longer available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("commit_booking: internal error")
)
