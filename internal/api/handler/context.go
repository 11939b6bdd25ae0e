package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/househunt/marketplace-api/internal/core/ports"
)

// identityKey is where the Auth middleware stores the resolved identity.
const identityKey = "identity"

// ctxIdentity extracts the identity injected by the Auth middleware. Its
// presence proves the middleware ran and the account still exists; handlers
// on authenticated routes fail with 401 rather than panic if wiring is wrong.
func ctxIdentity(c echo.Context) (*ports.Identity, error) {
	identity, _ := c.Get(identityKey).(*ports.Identity)
	if identity == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return identity, nil
}
