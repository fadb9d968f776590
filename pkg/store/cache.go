package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/soyroberto/roblox/pkg/catalog"
)

const (
	componentsKey = "roblox:components"
	stepsKey      = "roblox:steps"
)

// CachedLoader is a cache-aside layer over a Loader. On a miss it reads the
// underlying store and fills the cache with a TTL; stale entries age out on
// their own, so a failed invalidation is not fatal.
type CachedLoader struct {
	source Loader
	client *redis.Client
	ttl    time.Duration
	log    *slog.Logger
}

// NewCachedLoader wraps source with a redis cache.
func NewCachedLoader(source Loader, client *redis.Client, ttl time.Duration, log *slog.Logger) *CachedLoader {
	return &CachedLoader{source: source, client: client, ttl: ttl, log: log}
}

// LoadComponents reads the component collection through the cache.
func (c *CachedLoader) LoadComponents(ctx context.Context) ([]catalog.ArchitectureComponent, error) {
	var components []catalog.ArchitectureComponent
	hit, err := c.lookup(ctx, componentsKey, &components)
	if err != nil {
		return nil, err
	}
	if hit {
		return components, nil
	}

	components, err = c.source.LoadComponents(ctx)
	if err != nil {
		return nil, err
	}
	c.fill(ctx, componentsKey, components)
	return components, nil
}

// LoadSteps reads the step collection through the cache.
func (c *CachedLoader) LoadSteps(ctx context.Context) ([]catalog.JourneyStep, error) {
	var steps []catalog.JourneyStep
	hit, err := c.lookup(ctx, stepsKey, &steps)
	if err != nil {
		return nil, err
	}
	if hit {
		return steps, nil
	}

	steps, err = c.source.LoadSteps(ctx)
	if err != nil {
		return nil, err
	}
	c.fill(ctx, stepsKey, steps)
	return steps, nil
}

// Invalidate deletes both collection keys. Called after reseeding.
func (c *CachedLoader) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, componentsKey, stepsKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate cache: %w", err)
	}
	return nil
}

func (c *CachedLoader) lookup(ctx context.Context, key string, out interface{}) (bool, error) {
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read cache key '%s': %w", key, err)
	}
	if err := json.Unmarshal([]byte(val), out); err != nil {
		// A corrupt entry behaves like a miss; the fill below overwrites it.
		c.log.Warn("corrupt cache entry, treating as miss", "key", key, "error", err)
		return false, nil
	}
	return true, nil
}

func (c *CachedLoader) fill(ctx context.Context, key string, value interface{}) {
	payload, err := json.Marshal(value)
	if err != nil {
		c.log.Warn("failed to marshal cache entry", "key", key, "error", err)
		return
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		// Cache writes are best-effort; the source of truth already answered.
		c.log.Warn("failed to fill cache", "key", key, "error", err)
	}
}
