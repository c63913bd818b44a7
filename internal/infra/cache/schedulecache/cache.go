// Package schedulecache read-through кеш недельных расписаний поверх Redis.
// Расписание меняется только через настройки провайдера и читается при каждом
// вычислении доступности, поэтому кешировать его безопасно и выгодно.
//
// Кеш деградирует мягко: при недоступности Redis чтение уходит напрямую
// в хранилище, ошибка лишь логируется.
package schedulecache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/eggdevsol-del/manusversionartistbookingapp-sub000/internal/domain"
)

// ScheduleSource источник расписаний (обычно репозиторий)
type ScheduleSource interface {
	GetByProvider(ctx context.Context, providerID int64) (*domain.WorkSchedule, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Cache read-through кеш расписаний
type Cache struct {
	source ScheduleSource
	client *redis.Client
	ttl    time.Duration
	logger Logger
}

// New создает кеш поверх источника расписаний
func New(source ScheduleSource, client *redis.Client, ttl time.Duration, logger Logger) *Cache {
	return &Cache{
		source: source,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func cacheKey(providerID int64) string {
	return fmt.Sprintf("work_schedule:%d", providerID)
}

// GetByProvider возвращает расписание из кеша или из источника.
// Ошибки источника (включая ErrScheduleNotFound) пробрасываются как есть
// и не кешируются.
func (c *Cache) GetByProvider(ctx context.Context, providerID int64) (*domain.WorkSchedule, error) {
	key := cacheKey(providerID)

	payload, err := c.client.Get(ctx, key).Result()
	switch {
	case err == nil:
		var sched domain.WorkSchedule
		if jsonErr := json.Unmarshal([]byte(payload), &sched); jsonErr == nil {
			return &sched, nil
		}
		// Битая запись: удаляем и идем в источник
		c.logger.Warn("schedulecache: corrupted entry for provider=%d, evicting", providerID)
		c.client.Del(ctx, key)
	case errors.Is(err, redis.Nil):
		// Промах кеша
	default:
		c.logger.Warn("schedulecache: redis unavailable, falling back to storage: %v", err)
	}

	sched, err := c.source.GetByProvider(ctx, providerID)
	if err != nil {
		return nil, err
	}

	if payload, jsonErr := json.Marshal(sched); jsonErr == nil {
		if setErr := c.client.Set(ctx, key, payload, c.ttl).Err(); setErr != nil {
			c.logger.Warn("schedulecache: failed to store provider=%d: %v", providerID, setErr)
		}
	}

	return sched, nil
}

// Invalidate удаляет расписание провайдера из кеша.
// Вызывается после обновления расписания через настройки.
func (c *Cache) Invalidate(ctx context.Context, providerID int64) {
	if err := c.client.Del(ctx, cacheKey(providerID)).Err(); err != nil {
		c.logger.Warn("schedulecache: failed to invalidate provider=%d: %v", providerID, err)
	}
}
