package repositories

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimitRepository counts requests per key in Redis using a fixed window.
type RateLimitRepository struct {
	client *redis.Client
}

// NewRateLimitRepository creates a new repository instance.
func NewRateLimitRepository(client *redis.Client) *RateLimitRepository {
	return &RateLimitRepository{client: client}
}

// Incr increments the counter for the key and returns the new count.
// The key expires after the window, measured from the first increment.
func (r *RateLimitRepository) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}

	if count == 1 {
		if err := r.client.Expire(ctx, key, window).Err(); err != nil {
			return count, err
		}
	}

	return count, nil
}
