package cache

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const docPrefix = "doc:"

// Cache stores raw upstream documents in redis for a short TTL so repeated
// requests for the same date don't hammer the portal. The whole layer is
// optional: a nil *Cache is a valid no-op receiver and the pipeline then
// fetches directly.
type Cache struct {
	Client *redis.Client
	TTL    time.Duration
}

func New(redisURL string, ttl time.Duration) (*Cache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &Cache{Client: client, TTL: ttl}, nil
}

func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.Client.Close()
}

// GetDoc returns a cached raw document, or nil on miss or any redis error.
func (c *Cache) GetDoc(ctx context.Context, key string) []byte {
	if c == nil {
		return nil
	}
	val, err := c.Client.Get(ctx, docPrefix+key).Bytes()
	if err != nil {
		return nil
	}
	return val
}

// SetDoc stores a raw document under the cache TTL. Failures are logged and
// swallowed; caching is best-effort.
func (c *Cache) SetDoc(ctx context.Context, key string, body []byte) {
	if c == nil {
		return
	}
	if err := c.Client.Set(ctx, docPrefix+key, body, c.TTL).Err(); err != nil {
		log.Printf("[cache] set %s: %v", key, err)
	}
}
