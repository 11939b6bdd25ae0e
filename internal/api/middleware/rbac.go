package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/househunt/marketplace-api/internal/core/ports"
)

// Capability names a flag on the caller's identity. Capabilities are
// additive: every account is a tenant, agent and landlord are opt-in.
type Capability string

const (
	CapTenant   Capability = "tenant"
	CapAgent    Capability = "agent"
	CapLandlord Capability = "landlord"
)

// Require enforces that the caller holds at least one of the given
// capabilities. It must run after Auth.
func Require(capabilities ...Capability) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, _ := c.Get("identity").(*ports.Identity)
			if identity == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}

			for _, cap := range capabilities {
				if holds(identity, cap) {
					return next(c)
				}
			}
			return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
		}
	}
}

func holds(identity *ports.Identity, cap Capability) bool {
	switch cap {
	case CapTenant:
		return identity.IsTenant
	case CapAgent:
		return identity.IsAgent
	case CapLandlord:
		return identity.IsLandlord
	default:
		return false
	}
}
