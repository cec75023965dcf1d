package restrictioncache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/m04kA/SMC-StayService/internal/domain"
)

const (
	defaultKey = "stay:restrictions:v1"
	defaultTTL = 5 * time.Minute
)

// cachedRestriction форма правила в кэше
type cachedRestriction struct {
	ID         int64                   `json:"id"`
	Type       domain.RestrictionType  `json:"type"`
	RoomTypeID *int64                  `json:"roomTypeId,omitempty"`
	StartDate  *time.Time              `json:"startDate,omitempty"`
	EndDate    *time.Time              `json:"endDate,omitempty"`
	Value      domain.RestrictionValue `json:"value"`
	CreatedAt  time.Time               `json:"createdAt"`
}

// Cache read-through кэш списка правил бронирования в Redis.
// Redis не является источником истины: при любой ошибке Redis правила читаются из источника
type Cache struct {
	client *redis.Client
	source Source
	key    string
	ttl    time.Duration
	logger Logger
}

// New создает кэш поверх source. ttl <= 0 - значение по умолчанию
func New(client *redis.Client, source Source, ttl time.Duration, logger Logger) *Cache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Cache{
		client: client,
		source: source,
		key:    defaultKey,
		ttl:    ttl,
		logger: logger,
	}
}

// GetAll возвращает правила из кэша, при промахе - из источника с последующей записью в кэш.
// Порядок правил сохраняется
func (c *Cache) GetAll(ctx context.Context) ([]*domain.Restriction, error) {
	cached, err := c.get(ctx)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, ErrCacheMiss) {
		c.logger.Warn("GetAll: restrictions cache unavailable, reading source: %v", err)
	}

	restrictions, err := c.source.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if err := c.set(ctx, restrictions); err != nil {
		c.logger.Warn("GetAll: failed to populate restrictions cache: %v", err)
	}

	return restrictions, nil
}

// Invalidate удаляет список правил из кэша
func (c *Cache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, c.key).Err(); err != nil {
		return fmt.Errorf("restrictioncache: invalidate: %w", err)
	}
	return nil
}

func (c *Cache) get(ctx context.Context) ([]*domain.Restriction, error) {
	raw, err := c.client.Get(ctx, c.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}

	var items []cachedRestriction
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	result := make([]*domain.Restriction, 0, len(items))
	for _, item := range items {
		result = append(result, &domain.Restriction{
			ID:         item.ID,
			Type:       item.Type,
			RoomTypeID: item.RoomTypeID,
			StartDate:  item.StartDate,
			EndDate:    item.EndDate,
			Value:      item.Value,
			CreatedAt:  item.CreatedAt,
		})
	}

	return result, nil
}

func (c *Cache) set(ctx context.Context, restrictions []*domain.Restriction) error {
	items := make([]cachedRestriction, 0, len(restrictions))
	for _, r := range restrictions {
		items = append(items, cachedRestriction{
			ID:         r.ID,
			Type:       r.Type,
			RoomTypeID: r.RoomTypeID,
			StartDate:  r.StartDate,
			EndDate:    r.EndDate,
			Value:      r.Value,
			CreatedAt:  r.CreatedAt,
		})
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, c.key, raw, c.ttl).Err()
}
