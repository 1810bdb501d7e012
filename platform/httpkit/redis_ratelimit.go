package httpkit

import (
	"context"
	"fmt"
	"time"

	"inquiry_portal_backend/platform/logger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RedisRateLimiter is a fixed-window limiter shared across API replicas.
// When Redis is unreachable requests are allowed through.
type RedisRateLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
	prefix string
	log    *logger.Logger
	now    func() time.Time
}

// NewRedisRateLimiter allows limit requests per IP in each window.
func NewRedisRateLimiter(client *redis.Client, limit int, window time.Duration, log *logger.Logger) *RedisRateLimiter {
	return &RedisRateLimiter{
		client: client,
		limit:  int64(limit),
		window: window,
		prefix: "ratelimit",
		log:    log,
		now:    time.Now,
	}
}

// Allow records a hit for key and reports whether it is within the limit.
func (r *RedisRateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	bucket := r.now().UnixNano() / int64(r.window)
	redisKey := fmt.Sprintf("%s:%s:%d", r.prefix, key, bucket)

	pipe := r.client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.Expire(ctx, redisKey, r.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return true, err
	}

	return incr.Val() <= r.limit, nil
}

// RateLimit returns a middleware that rate limits by IP.
func (r *RedisRateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		allowed, err := r.Allow(c.Request.Context(), ip)
		if err != nil && r.log != nil {
			r.log.WithContext(c.Request.Context()).Warn("rate limiter unavailable", "error", err)
		}
		if !allowed {
			abortRateLimited(c, r.log, ip)
			return
		}
		c.Next()
	}
}
