package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"jobboard-backend/internal/delivery/http/response"
	"jobboard-backend/pkg/apperror"
	"jobboard-backend/pkg/logger"
	"jobboard-backend/pkg/redis"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

// RateLimitConfig controls a sliding-window counter keyed by client IP.
type RateLimitConfig struct {
	Limit     int
	Window    time.Duration
	KeyPrefix string
	// FailClosed rejects requests when Redis errors out. Leave false for
	// general traffic, set true on credential endpoints.
	FailClosed bool
}

// DefaultRateLimitConfig applies to all routes.
func DefaultRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{
		Limit:     limit,
		Window:    window,
		KeyPrefix: "rl:ip:",
	}
}

// AuthRateLimitConfig is the strict variant for login and register.
func AuthRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		Limit:      10,
		Window:     time.Minute,
		KeyPrefix:  "rl:auth:",
		FailClosed: true,
	}
}

// Atomic increment with TTL set on first hit. Returns [count, ttl].
const rateLimitLuaScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('TTL', KEYS[1])
return {count, ttl}
`

// In-memory fallback when Redis is not configured. One limiter per key,
// swept periodically so idle clients do not accumulate.
type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

var (
	fallbackLimiters = make(map[string]*limiterEntry)
	fallbackMu       sync.Mutex
	cleanupOnce      sync.Once
)

func startFallbackCleanup() {
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		for range ticker.C {
			cutoff := time.Now().Add(-10 * time.Minute)
			fallbackMu.Lock()
			for key, entry := range fallbackLimiters {
				if entry.lastSeen.Before(cutoff) {
					delete(fallbackLimiters, key)
				}
			}
			fallbackMu.Unlock()
		}
	}()
}

// RateLimitMiddleware enforces the given config, preferring Redis so the
// limit holds across replicas.
func RateLimitMiddleware(config RateLimitConfig) gin.HandlerFunc {
	cleanupOnce.Do(startFallbackCleanup)

	return func(c *gin.Context) {
		key := config.KeyPrefix + c.ClientIP()

		if client := redis.Client(); client != nil {
			count, resetAt, err := checkRedis(c.Request.Context(), client, key, config)
			if err == nil {
				applyLimit(c, config, count, resetAt)
				return
			}
			logger.Log.Warn("rate limit redis check failed", "error", err)
			if config.FailClosed {
				response.Error(c, http.StatusServiceUnavailable, apperror.KindInternal,
					"Service temporarily unavailable. Please try again.", nil)
				c.Abort()
				return
			}
		}

		if !allowInMemory(key, config) {
			rejectRateLimited(c, config, time.Now().Add(config.Window))
			return
		}
		c.Next()
	}
}

func applyLimit(c *gin.Context, config RateLimitConfig, count int, resetAt time.Time) {
	if count > config.Limit {
		rejectRateLimited(c, config, resetAt)
		return
	}
	remaining := config.Limit - count
	if remaining < 0 {
		remaining = 0
	}
	c.Header("X-RateLimit-Limit", strconv.Itoa(config.Limit))
	c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
	c.Header("X-RateLimit-Reset", resetAt.Format(time.RFC3339))
	c.Next()
}

func rejectRateLimited(c *gin.Context, config RateLimitConfig, resetAt time.Time) {
	retryAfter := int(time.Until(resetAt).Seconds())
	if retryAfter < 1 {
		retryAfter = 1
	}
	c.Header("X-RateLimit-Limit", strconv.Itoa(config.Limit))
	c.Header("X-RateLimit-Remaining", "0")
	c.Header("X-RateLimit-Reset", resetAt.Format(time.RFC3339))
	c.Header("Retry-After", strconv.Itoa(retryAfter))

	response.Error(c, http.StatusTooManyRequests, apperror.KindRateLimited,
		"Rate limit exceeded. Please try again later.", nil)
	c.Abort()
}

func checkRedis(ctx context.Context, client *goredis.Client, key string, config RateLimitConfig) (int, time.Time, error) {
	ttlSeconds := int(config.Window.Seconds())

	result, err := client.Eval(ctx, rateLimitLuaScript, []string{key}, ttlSeconds).Result()
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("rate limit eval: %w", err)
	}

	arr, ok := result.([]interface{})
	if !ok || len(arr) < 2 {
		return 0, time.Time{}, fmt.Errorf("unexpected rate limit eval result %T", result)
	}
	count, _ := arr[0].(int64)
	ttl, _ := arr[1].(int64)

	return int(count), time.Now().Add(time.Duration(ttl) * time.Second), nil
}

func allowInMemory(key string, config RateLimitConfig) bool {
	fallbackMu.Lock()
	entry, ok := fallbackLimiters[key]
	if !ok {
		limit := rate.Every(config.Window / time.Duration(config.Limit))
		entry = &limiterEntry{limiter: rate.NewLimiter(limit, config.Limit)}
		fallbackLimiters[key] = entry
	}
	entry.lastSeen = time.Now()
	fallbackMu.Unlock()

	return entry.limiter.Allow()
}
