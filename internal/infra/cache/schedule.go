// Package cache кэш разрешенных слотов поверх Redis
// Разрешение расписания чистое и пересчитывается на каждый запрос;
// кэш по дням снимает повторные вычисления календарных видов.
// Все мутации инвалидируют затронутые ключи
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-CourtScheduleService/internal/domain"
	"github.com/m04kA/SMC-CourtScheduleService/pkg/metrics"
	"github.com/m04kA/SMC-CourtScheduleService/pkg/types"
)

const keyPrefix = "schedule"

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// ScheduleCache кэш разрешенных слотов по (корт, дата)
type ScheduleCache struct {
	client  *redis.Client
	ttl     time.Duration
	metrics *metrics.Metrics // nil, если метрики выключены
	log     Logger
}

// New создает новый экземпляр кэша расписания
func New(client *redis.Client, ttl time.Duration, m *metrics.Metrics, log Logger) *ScheduleCache {
	return &ScheduleCache{
		client:  client,
		ttl:     ttl,
		metrics: m,
		log:     log,
	}
}

func dayKey(courtID int64, date types.DateString) string {
	return fmt.Sprintf("%s:%d:%s", keyPrefix, courtID, date)
}

// GetDay возвращает закэшированные слоты корта на дату
func (c *ScheduleCache) GetDay(ctx context.Context, courtID int64, date types.DateString) ([]domain.ResolvedSlot, error) {
	raw, err := c.client.Get(ctx, dayKey(courtID, date)).Bytes()
	if err != nil {
		if err == redis.Nil {
			c.observeMiss()
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("%w: get: %v", ErrInternal, err)
	}

	var slots []domain.ResolvedSlot
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, fmt.Errorf("%w: unmarshal: %v", ErrInternal, err)
	}

	c.observeHit()
	return slots, nil
}

// SetDay кладет слоты корта на дату в кэш
func (c *ScheduleCache) SetDay(ctx context.Context, courtID int64, date types.DateString, slots []domain.ResolvedSlot) error {
	payload, err := json.Marshal(slots)
	if err != nil {
		return fmt.Errorf("%w: marshal: %v", ErrInternal, err)
	}

	if err := c.client.Set(ctx, dayKey(courtID, date), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: set: %v", ErrInternal, err)
	}

	return nil
}

// DeleteDay инвалидирует кэш корта на одну дату
// Ошибки инвалидации не фатальны: TTL доест устаревшее значение
func (c *ScheduleCache) DeleteDay(ctx context.Context, courtID int64, date types.DateString) {
	if err := c.client.Del(ctx, dayKey(courtID, date)).Err(); err != nil {
		c.log.Warn("cache: failed to invalidate court=%d date=%s: %v", courtID, date, err)
	}
}

// DeleteCourt инвалидирует кэш корта на все даты
// Используется после изменения recurring правил (затрагивают каждую неделю)
func (c *ScheduleCache) DeleteCourt(ctx context.Context, courtID int64) {
	c.deleteByPattern(ctx, fmt.Sprintf("%s:%d:*", keyPrefix, courtID))
}

// Flush инвалидирует весь кэш расписания
// Используется после изменения глобальных условий
func (c *ScheduleCache) Flush(ctx context.Context) {
	c.deleteByPattern(ctx, keyPrefix+":*")
}

func (c *ScheduleCache) deleteByPattern(ctx context.Context, pattern string) {
	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			c.log.Warn("cache: failed to delete key %s: %v", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		c.log.Warn("cache: scan failed for pattern %s: %v", pattern, err)
	}
}

func (c *ScheduleCache) observeHit() {
	if c.metrics != nil {
		c.metrics.CacheHitsTotal.WithLabelValues(keyPrefix).Inc()
	}
}

func (c *ScheduleCache) observeMiss() {
	if c.metrics != nil {
		c.metrics.CacheMissesTotal.WithLabelValues(keyPrefix).Inc()
	}
}
