package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker"
	"github.com/xela07ax/mrfashion-backend/internal/domain"
	"github.com/xela07ax/mrfashion-backend/internal/infra"
	"go.uber.org/zap"
)

// FacetCache держит distinct-множества brand/category в Redis.
// Агрегация по всей коллекции выполняется на каждый листинг каталога,
// кэш снимает её с горячего пути. Redis обёрнут в circuit breaker:
// при недоступности кэша листинг деградирует до прямой агрегации в БД,
// но никогда не падает из-за кэша.
type FacetCache struct {
	rdb     *redis.Client
	cb      *gobreaker.CircuitBreaker
	ttl     time.Duration
	logger  *zap.Logger
	metrics *infra.Metrics
}

func NewFacetCache(rdb *redis.Client, ttl time.Duration, logger *zap.Logger, metrics *infra.Metrics) *FacetCache {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "facet-cache",
		MaxRequests: 3,
		Interval:    5 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 5
		},
	})

	if metrics == nil {
		metrics = infra.NewMetrics(nil)
	}

	return &FacetCache{
		rdb:     rdb,
		cb:      cb,
		ttl:     ttl,
		logger:  logger.Named("facet-cache"),
		metrics: metrics,
	}
}

// Get возвращает nil на промахе, ошибке или открытом предохранителе.
func (c *FacetCache) Get(ctx context.Context) *domain.Facets {
	if c.rdb == nil {
		return nil
	}

	res, err := c.cb.Execute(func() (interface{}, error) {
		data, err := c.rdb.Get(ctx, infra.RedisKeyCatalogFacets).Bytes()
		if errors.Is(err, redis.Nil) {
			// Промах — не ошибка, предохранитель не трогаем
			return []byte(nil), nil
		}
		return data, err
	})
	if err != nil {
		c.logger.Warn("facet cache unavailable", zap.Error(err))
		c.metrics.FacetCacheMisses.Inc()
		return nil
	}

	data, _ := res.([]byte)
	if len(data) == 0 {
		c.metrics.FacetCacheMisses.Inc()
		return nil
	}

	var facets domain.Facets
	if err := json.Unmarshal(data, &facets); err != nil {
		c.logger.Warn("facet cache corrupted, dropping", zap.Error(err))
		c.Invalidate(ctx)
		c.metrics.FacetCacheMisses.Inc()
		return nil
	}

	c.metrics.FacetCacheHits.Inc()
	return &facets
}

func (c *FacetCache) Set(ctx context.Context, facets *domain.Facets) {
	if c.rdb == nil {
		return
	}

	payload, err := json.Marshal(facets)
	if err != nil {
		return
	}
	_, err = c.cb.Execute(func() (interface{}, error) {
		return nil, c.rdb.Set(ctx, infra.RedisKeyCatalogFacets, payload, c.ttl).Err()
	})
	if err != nil {
		c.logger.Warn("failed to store facets", zap.Error(err))
	}
}

// Invalidate сбрасывает кэш. Вызывается на каждой мутации товаров.
func (c *FacetCache) Invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	_, err := c.cb.Execute(func() (interface{}, error) {
		return nil, c.rdb.Del(ctx, infra.RedisKeyCatalogFacets).Err()
	})
	if err != nil {
		c.logger.Warn("failed to invalidate facets", zap.Error(err))
	}
}
