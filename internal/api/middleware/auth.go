package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/househunt/marketplace-api/internal/core/ports"
)

// Auth validates the bearer JWT and injects the caller's identity into the
// request context. Capability flags are re-read from storage on every
// request, so a role change or account deletion takes effect on the caller's
// next call, not at token expiry.
func Auth(jwtSecret string, resolver ports.IdentityResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			sub, ok := claims["sub"].(float64)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "token missing subject")
			}

			user, err := resolver.Resolve(c.Request().Context(), int64(sub))
			if err != nil {
				// A valid token for a deleted account is still unauthorized.
				return echo.NewHTTPError(http.StatusUnauthorized, "account no longer exists")
			}

			c.Set("identity", &ports.Identity{
				UserID:     user.ID,
				Email:      user.Email,
				IsTenant:   user.IsTenant,
				IsAgent:    user.IsAgent,
				IsLandlord: user.IsLandlord,
			})

			return next(c)
		}
	}
}
