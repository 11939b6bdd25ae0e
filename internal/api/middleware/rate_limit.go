package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/househunt/marketplace-api/internal/core/ports"
)

// Limiter is the slice of the Redis rate limiter the middleware needs.
type Limiter interface {
	Allow(ctx context.Context, scope, caller string) (bool, error)
}

// RateLimit throttles requests per caller within the named scope.
// Authenticated callers are keyed by user id, anonymous ones by client IP.
// Redis being down degrades to allowing the request; the API must not go
// dark because the limiter did.
func RateLimit(limiter Limiter, scope string, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			caller := c.RealIP()
			if identity, ok := c.Get("identity").(*ports.Identity); ok && identity != nil {
				caller = "u" + strconv.FormatInt(identity.UserID, 10)
			}

			allowed, err := limiter.Allow(c.Request().Context(), scope, caller)
			if err != nil {
				log.Warn().Err(err).Str("scope", scope).Msg("rate limiter unavailable")
				return next(c)
			}
			if !allowed {
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}
			return next(c)
		}
	}
}
