package ratelimit

//go:generate mockgen -source=limiter.go -destination=../mocks/ratelimit_limiter.go -package=mocks -mock_names=Limiter=MockLimiter

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/steel-suvidha/marketplace-api/internal/adapter"
	"github.com/steel-suvidha/marketplace-api/internal/config"
	"github.com/steel-suvidha/marketplace-api/internal/logger"
)

const healthCheckInterval = 10 * time.Second

// Limiter throttles attempts per key, e.g. login attempts per client
type Limiter interface {
	// Allow consumes one attempt for key. When denied it returns the time to wait.
	Allow(ctx context.Context, key string) (bool, time.Duration)

	// Close stops the health check and releases the Redis connection
	Close() error
}

// limiter uses a shared Redis budget and falls back to per-process limiters
// while Redis is unreachable
type limiter struct {
	config         config.RateLimitConfig
	redis          adapter.RedisClient
	distributed    adapter.RedisRateLimiter
	redisAvailable atomic.Bool

	mu    sync.Mutex
	local map[string]*rate.Limiter

	done      chan struct{}
	closeOnce sync.Once
}

// NewLimiter creates a login limiter. A nil Redis client keeps limiting local.
func NewLimiter(cfg config.RateLimitConfig, rc adapter.RedisClient) Limiter {
	if cfg.LoginPerMinute <= 0 {
		cfg.LoginPerMinute = 10
	}
	if cfg.LoginBurst <= 0 {
		cfg.LoginBurst = cfg.LoginPerMinute
	}

	l := &limiter{
		config: cfg,
		redis:  rc,
		local:  make(map[string]*rate.Limiter),
		done:   make(chan struct{}),
	}

	if rc == nil {
		logger.Info("Login rate limiter using local limits only",
			zap.Int("per_minute", cfg.LoginPerMinute),
			zap.Int("burst", cfg.LoginBurst),
		)
		return l
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	redisAvailable := true
	if err := rc.Ping(ctx).Err(); err != nil {
		redisAvailable = false
		logger.Warn("Redis unavailable, will use local fallback", zap.Error(err))
	}
	l.distributed = rc.NewRateLimiter()
	l.redisAvailable.Store(redisAvailable)

	go l.monitorRedisHealth()

	logger.Info("Login rate limiter initialized",
		zap.Int("per_minute", cfg.LoginPerMinute),
		zap.Int("burst", cfg.LoginBurst),
		zap.Bool("redis_available", redisAvailable),
	)

	return l
}

// Allow consumes one attempt for key
func (l *limiter) Allow(ctx context.Context, key string) (bool, time.Duration) {
	if l.distributed != nil && l.redisAvailable.Load() {
		limit := redis_rate.Limit{
			Rate:   l.config.LoginPerMinute,
			Burst:  l.config.LoginBurst,
			Period: time.Minute,
		}
		res, err := l.distributed.Allow(ctx, l.config.KeyPrefix+key, limit)
		if err == nil {
			if res.Allowed == 0 {
				logger.DebugCtx(ctx, "Login attempt throttled",
					zap.String("key", key),
					zap.Duration("retry_after", res.RetryAfter),
				)
				return false, res.RetryAfter
			}
			return true, 0
		}

		// Redis error - mark as unavailable and fall back to local
		l.redisAvailable.Store(false)
		logger.WarnCtx(ctx, "Redis rate limiter error, falling back to local", zap.Error(err))
	}

	return l.allowLocal(key)
}

// allowLocal consumes a token from the key's in-process limiter
func (l *limiter) allowLocal(key string) (bool, time.Duration) {
	l.mu.Lock()
	lim, ok := l.local[key]
	if !ok {
		lim = rate.NewLimiter(rate.Every(time.Minute/time.Duration(l.config.LoginPerMinute)), l.config.LoginBurst)
		l.local[key] = lim
	}
	l.mu.Unlock()

	r := lim.Reserve()
	if delay := r.Delay(); delay > 0 {
		r.Cancel()
		return false, delay
	}
	return true, 0
}

// monitorRedisHealth periodically checks Redis health and updates availability status
func (l *limiter) monitorRedisHealth() {
	ticker := time.NewTicker(healthCheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-l.done:
			return
		case <-ticker.C:
		}

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		err := l.redis.Ping(ctx).Err()
		cancel()

		redisAvailable := err == nil
		wasAvailable := l.redisAvailable.Load()
		l.redisAvailable.Store(redisAvailable)

		if !wasAvailable && redisAvailable {
			logger.Info("Redis connection restored")
		}
	}
}

// Close stops the health check and closes Redis
func (l *limiter) Close() error {
	var err error
	l.closeOnce.Do(func() {
		close(l.done)
		if l.redis != nil {
			if closeErr := l.redis.Close(); closeErr != nil {
				logger.Warn("Error closing Redis connection", zap.Error(closeErr))
				err = closeErr
			}
		}
	})
	return err
}
