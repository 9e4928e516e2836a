package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/piresc/fairpay/internal/pkg/constants"
	"github.com/piresc/fairpay/internal/pkg/logger"
	"github.com/piresc/fairpay/internal/utils"
)

// RateLimiterConfig contains configuration for the rate limiter
type RateLimiterConfig struct {
	RedisClient *redis.Client
	Key         string        // Resource prefix, combined with the route path
	Limit       int           // Maximum number of requests
	Period      time.Duration // Time period for the limit
}

// RateLimiterMiddleware counts requests per route and client in fixed Redis windows
func RateLimiterMiddleware(config RateLimiterConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := fmt.Sprintf(constants.KeyRateLimit, config.Key+c.Path(), c.RealIP())
			ctx := c.Request().Context()

			count64, err := config.RedisClient.Incr(ctx, key).Result()
			if err != nil {
				// fail open: the limiter must not take the wallet down with Redis
				logger.Warn("Rate limiter unavailable", logger.String("key", key), logger.Err(err))
				return next(c)
			}
			if count64 == 1 {
				if err := config.RedisClient.Expire(ctx, key, config.Period).Err(); err != nil {
					logger.Warn("Failed to set rate limit window", logger.String("key", key), logger.Err(err))
				}
			}

			count := int(count64)
			c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(config.Limit))

			if count > config.Limit {
				wait, err := config.RedisClient.TTL(ctx, key).Result()
				if err != nil || wait < 0 {
					wait = config.Period
				}
				c.Response().Header().Set("X-RateLimit-Remaining", "0")
				c.Response().Header().Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(wait).Unix(), 10))
				c.Response().Header().Set("Retry-After", strconv.FormatInt(int64(wait.Seconds()), 10))
				return utils.ErrorResponseHandler(c, http.StatusTooManyRequests, "Rate limit exceeded")
			}

			c.Response().Header().Set("X-RateLimit-Remaining", strconv.Itoa(config.Limit-count))
			return next(c)
		}
	}
}

// GateRateLimiter limits FairCode-gated actions per client
func GateRateLimiter(limit int, period time.Duration, redisClient *redis.Client) echo.MiddlewareFunc {
	return RateLimiterMiddleware(RateLimiterConfig{
		RedisClient: redisClient,
		Key:         "gate",
		Limit:       limit,
		Period:      period,
	})
}
