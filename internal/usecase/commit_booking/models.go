package commit_booking

import (
	"time"

	"github.com/google/uuid"
)

// Request модель запроса на фиксацию слота
type Request struct {
	ProviderID  int64     // ID провайдера
	ClientID    int64     // ID клиента
	StartUTC    time.Time // Начало сессии, UTC-инстант из ответа подбора
	EndUTC      time.Time // Конец сессии, UTC-инстант
	Title       string    // Название проекта
	Description *string   // Описание проекта (опционально)
}

// Response модель ответа с созданной встречей
type Response struct {
	ID        int64     // ID встречи
	Reference uuid.UUID // Внешний идентификатор встречи
	StartUTC  time.Time // Начало сессии
	EndUTC    time.Time // Конец сессии
	CreatedAt time.Time // Время создания
}
