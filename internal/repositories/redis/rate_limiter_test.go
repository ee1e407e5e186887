package redis

import (
	"fmt"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/catalog-manager/internal/config"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T, maxAttempts int64, window time.Duration, now time.Time) (*RateLimiter, redismock.ClientMock) {
	t.Helper()

	client, mock := redismock.NewClientMock()
	cfg := &config.Config{
		RateConfig: config.RateConfig{
			Enabled:     true,
			MaxAttempts: maxAttempts,
			WindowSize:  window,
		},
	}

	limiter := NewRateLimiterWithClient(client, cfg)
	limiter.clock = func() time.Time { return now }

	return limiter, mock
}

func TestCheckSubmissionRateLimit(t *testing.T) {
	ctx := t.Context()
	now := time.Unix(1700000100, 0)
	window := 60 * time.Second
	key := "form_submissions:10.0.0.1"

	t.Run("Success - Under The Limit", func(t *testing.T) {
		// Arrange
		limiter, mock := setup(t, 5, window, now)

		windowStart := now.Unix() - 60
		mock.ExpectZRemRangeByScore(key, "0", fmt.Sprintf("%d", windowStart)).SetVal(0)
		mock.ExpectZAdd(key, redis.Z{Score: float64(now.Unix()), Member: now.Unix()}).SetVal(1)
		mock.ExpectZCard(key).SetVal(2)
		mock.ExpectExpire(key, window).SetVal(true)

		// Act
		allowed, remaining, retryAfter, err := limiter.CheckSubmissionRateLimit(ctx, "10.0.0.1")

		// Assert
		require.NoError(t, err)
		assert.True(t, allowed)
		assert.Equal(t, 3, remaining)
		assert.Equal(t, 0, retryAfter)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Denied - Limit Reached", func(t *testing.T) {
		// Arrange
		limiter, mock := setup(t, 5, window, now)

		oldest := now.Unix() - 30

		windowStart := now.Unix() - 60
		mock.ExpectZRemRangeByScore(key, "0", fmt.Sprintf("%d", windowStart)).SetVal(1)
		mock.ExpectZAdd(key, redis.Z{Score: float64(now.Unix()), Member: now.Unix()}).SetVal(1)
		mock.ExpectZCard(key).SetVal(5)
		mock.ExpectExpire(key, window).SetVal(true)
		mock.ExpectZRange(key, 0, 0).SetVal([]string{fmt.Sprintf("%d", oldest)})

		// Act
		allowed, remaining, retryAfter, err := limiter.CheckSubmissionRateLimit(ctx, "10.0.0.1")

		// Assert
		require.NoError(t, err)
		assert.False(t, allowed)
		assert.Equal(t, 0, remaining)
		assert.Equal(t, 30, retryAfter)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Redis Unreachable", func(t *testing.T) {
		// Arrange
		limiter, mock := setup(t, 5, window, now)

		windowStart := now.Unix() - 60
		mock.ExpectZRemRangeByScore(key, "0", fmt.Sprintf("%d", windowStart)).SetErr(fmt.Errorf("connection refused"))

		// Act
		allowed, _, _, err := limiter.CheckSubmissionRateLimit(ctx, "10.0.0.1")

		// Assert
		assert.Error(t, err)
		assert.False(t, allowed)
	})
}
