// Package redis holds the sliding-window rate limiter backing the form
// submission throttle.
package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/aaravmahajanofficial/catalog-manager/internal/config"
	"github.com/redis/go-redis/v9"
)

type RateLimiter struct {
	client redis.Cmdable
	config *config.Config
	clock  func() time.Time
}

func NewRateLimiter(cfg *config.Config) (*RateLimiter, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisConnect.GetAddr(),
		Username: cfg.RedisConnect.Username,
		Password: cfg.RedisConnect.Password,
		DB:       cfg.RedisConnect.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Test the connection to make sure Redis is reachable
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RateLimiter{client: client, config: cfg, clock: time.Now}, nil
}

// NewRateLimiterWithClient wires an existing client; tests inject a mock here.
func NewRateLimiterWithClient(client redis.Cmdable, cfg *config.Config) *RateLimiter {
	return &RateLimiter{client: client, config: cfg, clock: time.Now}
}

// CheckSubmissionRateLimit returns isAllowed, attempts left and seconds to
// wait. Each client key holds a sorted set of submission timestamps; entries
// older than the window are dropped before counting.
func (r *RateLimiter) CheckSubmissionRateLimit(ctx context.Context, clientKey string) (bool, int, int, error) {
	key := fmt.Sprintf("form_submissions:%s", clientKey)

	now := r.clock().Unix()

	// Only submissions after 'this time' are counted.
	windowStart := now - int64(r.config.RateConfig.WindowSize.Seconds())

	pipe := r.client.Pipeline()

	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", windowStart))
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now), Member: now})
	count := pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, r.config.RateConfig.WindowSize)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, 0, err
	}

	attempts := count.Val()
	remaining := r.config.RateConfig.MaxAttempts - attempts

	if attempts >= r.config.RateConfig.MaxAttempts {
		oldest, err := r.client.ZRange(ctx, key, 0, 0).Result()
		if err != nil || len(oldest) == 0 {
			return false, 0, 0, err
		}

		oldestTime, err := strconv.ParseInt(oldest[0], 10, 64)
		if err != nil {
			return false, 0, 0, err
		}

		retryAfter := int64(r.config.RateConfig.WindowSize.Seconds()) - (now - oldestTime)

		return false, 0, int(retryAfter), nil
	}

	return true, int(remaining), 0, nil
}
