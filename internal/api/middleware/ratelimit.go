package middleware

import (
	"context"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/99minutos/todo-service/internal/api/httperr"
	"github.com/99minutos/todo-service/internal/api/metrics"
	redisdb "github.com/99minutos/todo-service/internal/infrastructure/db/redis"
)

// Limiter decides whether another hit from subject is allowed in scope.
type Limiter interface {
	Allow(ctx context.Context, scope, subject string) (redisdb.Decision, error)
	Limit() int
}

// RateLimit rejects requests from a client IP beyond the limiter's budget
// with 429. Limiter failures are logged and the request is let through.
func RateLimit(limiter Limiter, scope string, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			d, err := limiter.Allow(c.Request().Context(), scope, c.RealIP())
			if err != nil {
				log.Warn().Err(err).Str("scope", scope).Msg("rate limiter unavailable, allowing request")
				return next(c)
			}

			h := c.Response().Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(limiter.Limit()))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))

			if !d.Allowed {
				secs := int(d.RetryAfter.Seconds())
				if secs < 1 {
					secs = 1
				}
				h.Set("Retry-After", strconv.Itoa(secs))
				metrics.RateLimitedTotal.WithLabelValues(scope).Inc()
				return httperr.TooManyRequests()
			}
			return next(c)
		}
	}
}
