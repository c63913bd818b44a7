package get_availability

import (
	"time"

	"github.com/eggdevsol-del/manusversionartistbookingapp-sub000/internal/domain"
)

// Request модель запроса на подбор слотов
type Request struct {
	ProviderID      int64            // ID провайдера
	DurationMinutes int              // Длительность одной сессии в минутах
	Sittings        int              // Число сессий проекта (>= 1)
	Price           int64            // Цена одной сессии в минорных единицах валюты
	Frequency       domain.Frequency // Каденция повторения
	StartAnchor     time.Time        // Якорная календарная дата (без времени)
	TimeZone        string           // IANA-зона клиента, интерпретирует якорь
}

// Response модель ответа с подобранными слотами
type Response struct {
	ProviderID int64            // ID провайдера
	Frequency  domain.Frequency // Каденция запроса
	Sittings   int              // Эффективное число сессий (single всегда 1)
	Dates      []time.Time      // Начала сессий, UTC-инстанты, длина == Sittings
	TotalCost  int64            // Price * Sittings
}

// Config параметры поиска
type Config struct {
	HorizonDays      int // Граница поиска от якоря в днях
	MaxSkippedCycles int // Допустимое число подряд пропущенных циклов каденции
}

// DefaultConfig возвращает параметры поиска по умолчанию
func DefaultConfig() Config {
	return Config{
		HorizonDays:      domain.DefaultHorizonDays,
		MaxSkippedCycles: domain.DefaultMaxSkippedCycles,
	}
}
