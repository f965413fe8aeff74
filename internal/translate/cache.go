package translate

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache stores remote translation results so repeated requests for the same
// (disease, language) pair skip the model call. Failures are silent; a cache
// is an optimisation, never a correctness dependency.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string)
}

// RedisCache is a Cache backed by Redis with a fixed TTL.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context, key string) (string, bool) {
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (c *RedisCache) Set(ctx context.Context, key, value string) {
	c.client.Set(ctx, key, value, c.ttl)
}

func cacheKey(label, lang string) string {
	return fmt.Sprintf("translation:%s:%s", label, lang)
}
