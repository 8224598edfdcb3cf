package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/piresc/cabbooking/internal/pkg/constants"
	"github.com/piresc/cabbooking/internal/pkg/logger"
	"github.com/piresc/cabbooking/internal/utils"
)

// RateLimiterConfig contains configuration for the rate limiter
type RateLimiterConfig struct {
	RedisClient *redis.Client
	Key         string        // Key prefix for Redis
	Limit       int           // Maximum number of requests
	Period      time.Duration // Time period for the limit
}

// RateLimiterMiddleware creates a fixed-window rate limiter backed by Redis.
// Redis errors let the request through.
func RateLimiterMiddleware(config RateLimiterConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if config.RedisClient == nil || config.Limit <= 0 {
			return next
		}
		return func(c echo.Context) error {
			identifier := c.RealIP()
			if userID := c.Get(ContextKeyUserID); userID != nil {
				identifier = fmt.Sprintf("%v", userID)
			}

			key := fmt.Sprintf("%s:%s:%s", config.Key, c.Path(), identifier)
			ctx := c.Request().Context()

			n, err := config.RedisClient.Incr(ctx, key).Result()
			if err != nil {
				logger.WarnCtx(ctx, "Rate limiter unavailable", logger.String("key", key), logger.Err(err))
				return next(c)
			}
			if n == 1 {
				config.RedisClient.Expire(ctx, key, config.Period)
			}

			count := int(n)
			c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(config.Limit))

			if count > config.Limit {
				ttl := config.RedisClient.TTL(ctx, key).Val()
				if ttl < 0 {
					ttl = config.Period
				}
				c.Response().Header().Set("X-RateLimit-Remaining", "0")
				c.Response().Header().Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(ttl).Unix(), 10))
				c.Response().Header().Set("Retry-After", strconv.FormatInt(int64(ttl.Seconds()), 10))
				return utils.ErrorResponseHandler(c, http.StatusTooManyRequests, "Rate limit exceeded")
			}

			c.Response().Header().Set("X-RateLimit-Remaining", strconv.Itoa(config.Limit-count))
			return next(c)
		}
	}
}

// LoginRateLimiter limits login attempts per client IP
func LoginRateLimiter(limit int, period time.Duration, redisClient *redis.Client) echo.MiddlewareFunc {
	return RateLimiterMiddleware(RateLimiterConfig{
		RedisClient: redisClient,
		Key:         constants.KeyRateLimitLogin,
		Limit:       limit,
		Period:      period,
	})
}

// BookingRateLimiter limits bookings per authenticated user
func BookingRateLimiter(limit int, period time.Duration, redisClient *redis.Client) echo.MiddlewareFunc {
	return RateLimiterMiddleware(RateLimiterConfig{
		RedisClient: redisClient,
		Key:         constants.KeyRateLimitBooking,
		Limit:       limit,
		Period:      period,
	})
}
