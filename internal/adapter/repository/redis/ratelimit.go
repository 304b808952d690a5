package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimitStore implements usecase.RateLimitStore with a fixed-window
// counter in Redis, shared across server instances.
type RateLimitStore struct {
	client *redis.Client
	prefix string
}

// NewRateLimitStore creates a new RateLimitStore.
func NewRateLimitStore(client *redis.Client) *RateLimitStore {
	return &RateLimitStore{
		client: client,
		prefix: "ratelimit:",
	}
}

// Allow increments the counter for key within the current window and
// reports whether the request is under limit. The window TTL is set on
// first increment so the counter expires with the window.
func (s *RateLimitStore) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	fullKey := s.prefix + key

	pipe := s.client.TxPipeline()
	incr := pipe.Incr(ctx, fullKey)
	pipe.ExpireNX(ctx, fullKey, window)

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return false, err
	}

	return incr.Val() <= int64(limit), nil
}
