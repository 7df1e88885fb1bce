package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"devconnector/internal/middleware"

	"github.com/redis/go-redis/v9"
)

// ErrMiss is returned by the getters when the key is absent or the cache is disabled.
var ErrMiss = errors.New("cache: miss")

// GetBytes returns the raw value stored at key.
func (c *Cache) GetBytes(ctx context.Context, key string) ([]byte, error) {
	if !c.Enabled() {
		return nil, ErrMiss
	}
	val, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	return val, err
}

// SetBytes stores val at key for ttl. Failures are logged and dropped.
func (c *Cache) SetBytes(ctx context.Context, key string, val []byte, ttl time.Duration) {
	if !c.Enabled() {
		return
	}
	if err := c.client.Set(ctx, key, val, ttl).Err(); err != nil {
		middleware.Logger.WarnContext(ctx, "cache write failed",
			slog.String("key", key), slog.String("error", err.Error()))
	}
}

// GetJSON decodes the value at key into dest.
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) error {
	val, err := c.GetBytes(ctx, key)
	if err != nil {
		return err
	}
	return json.Unmarshal(val, dest)
}

// SetJSON encodes val and stores it at key for ttl.
func (c *Cache) SetJSON(ctx context.Context, key string, val any, ttl time.Duration) {
	if !c.Enabled() {
		return
	}
	data, err := json.Marshal(val)
	if err != nil {
		middleware.Logger.WarnContext(ctx, "cache encode failed",
			slog.String("key", key), slog.String("error", err.Error()))
		return
	}
	c.SetBytes(ctx, key, data, ttl)
}

// Aside fills dest from key, or runs fetch and caches dest on a miss.
// Cache errors fall through to fetch; fetch errors are returned untouched.
func (c *Cache) Aside(ctx context.Context, key string, dest any, ttl time.Duration, fetch func() error) error {
	if err := c.GetJSON(ctx, key, dest); err == nil {
		return nil
	} else if !errors.Is(err, ErrMiss) {
		middleware.Logger.WarnContext(ctx, "cache read failed",
			slog.String("key", key), slog.String("error", err.Error()))
	}

	if err := fetch(); err != nil {
		return err
	}
	c.SetJSON(ctx, key, dest, ttl)
	return nil
}

// Invalidate deletes keys. Failures are logged and dropped.
func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if !c.Enabled() || len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		middleware.Logger.WarnContext(ctx, "cache invalidation failed",
			slog.Any("keys", keys), slog.String("error", err.Error()))
	}
}
