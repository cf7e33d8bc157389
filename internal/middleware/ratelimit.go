// Package middleware provides HTTP middleware for GeoGuide.
// ratelimit.go implements a per-IP fixed-window rate limiter backed by
// Redis, for the credential endpoints (login, signup). Keeping the counters
// in Redis means limits survive restarts and hold across replicas.
package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// RateLimit returns middleware that limits requests per IP to maxRequests
// within the given window. Returns 429 when exceeded.
//
// The counter is INCRed per request; the first hit in a window sets the TTL.
// If Redis is unreachable the request is allowed through -- locking every
// user out of login because a cache is down is the worse failure mode.
func RateLimit(rdb *redis.Client, maxRequests int, window time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			key := fmt.Sprintf("ratelimit:%s:%s", c.Path(), c.RealIP())

			n, err := rdb.Incr(ctx, key).Result()
			if err != nil {
				slog.Warn("rate limiter unavailable, allowing request",
					slog.String("key", key),
					slog.Any("error", err),
				)
				return next(c)
			}

			if n == 1 {
				if err := rdb.Expire(ctx, key, window).Err(); err != nil {
					slog.Warn("failed to set rate limit window",
						slog.String("key", key),
						slog.Any("error", err),
					)
				}
			}

			if n > int64(maxRequests) {
				return c.JSON(http.StatusTooManyRequests, map[string]string{
					"error":   "Too Many Requests",
					"message": "Rate limit exceeded. Please try again later.",
				})
			}

			return next(c)
		}
	}
}
