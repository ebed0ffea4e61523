package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"velodata/internal/infrastructure/ratelimit"
	"velodata/pkg/logger"
)

type RateLimitMiddleware struct {
	limiter *ratelimit.RateLimiter
}

func NewRateLimitMiddleware(limiter *ratelimit.RateLimiter) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
	}
}

// Limit throttles the given action per authenticated user, falling back to
// the client IP when the route is unauthenticated.
func (m *RateLimitMiddleware) Limit(action string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			caller := c.RealIP()
			if uid, ok := c.Get("uid").(string); ok && uid != "" {
				caller = uid
			}

			allowed, wait := m.limiter.Allow(caller, action)
			if !allowed {
				logger.Warn("Rate limit: %s blocked for %s (retry in %v)", action, caller, wait)
				return c.JSON(http.StatusTooManyRequests, map[string]interface{}{
					"error":       "Rate limit exceeded",
					"retry_after": int(wait / time.Second),
				})
			}

			return next(c)
		}
	}
}
