// Package cache provides a redis cache-aside layer for read-heavy
// reporting queries. A nil *Cache is valid and disables caching, so
// callers never branch on configuration.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"golang.org/x/sync/singleflight"

	"github.com/shoestackclub/shoestack/internal/logging"
)

type Cache struct {
	client *redis.Client
	ttl    time.Duration
	logger logging.Logger
	group  singleflight.Group
}

// New connects to redis at the given URL. An empty URL returns a nil
// Cache, which every method treats as a pass-through.
func New(url string, ttl time.Duration, logger logging.Logger) (*Cache, error) {
	if url == "" {
		return nil, nil
	}
	if logger == nil {
		logger = logging.NewNoopLogger()
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	return &Cache{client: redis.NewClient(opts), ttl: ttl, logger: logger}, nil
}

// GetJSON loads key into out. The second return is false on miss or when
// caching is disabled; redis errors degrade to a miss.
func (c *Cache) GetJSON(ctx context.Context, key string, out any) bool {
	if c == nil {
		return false
	}
	value, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		c.logger.Debug("cache read failed", "key", key, "error", err)
		return false
	}
	if err := json.Unmarshal([]byte(value), out); err != nil {
		c.logger.Debug("cache entry corrupt", "key", key, "error", err)
		return false
	}
	return true
}

// SetJSON stores v under key with the configured TTL, best effort.
func (c *Cache) SetJSON(ctx context.Context, key string, v any) {
	if c == nil {
		return
	}
	payload, err := json.Marshal(v)
	if err != nil {
		c.logger.Debug("cannot marshal cache entry", "key", key, "error", err)
		return
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.logger.Debug("cache write failed", "key", key, "error", err)
	}
}

// Delete drops the given keys, best effort.
func (c *Cache) Delete(ctx context.Context, keys ...string) {
	if c == nil || len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.logger.Debug("cache delete failed", "keys", len(keys), "error", err)
	}
}

// Do collapses concurrent computations of the same key into one call.
// With caching disabled the compute function runs directly.
func (c *Cache) Do(key string, compute func() (any, error)) (any, error) {
	if c == nil {
		return compute()
	}
	v, err, _ := c.group.Do(key, compute)
	return v, err
}

// Close releases the redis connection.
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
