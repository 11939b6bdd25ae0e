package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/househunt/marketplace-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors. EndsAt is
// only populated for suspension rejections so clients can show when the
// account unlocks.
type errorResponse struct {
	Error  string `json:"error"`
	EndsAt string `json:"ends_at,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var suspended *domain.AgentSuspendedError
		if errors.As(err, &suspended) {
			_ = c.JSON(http.StatusForbidden, errorResponse{
				Error:  "account suspended",
				EndsAt: suspended.EndsAt.UTC().Format(time.RFC3339),
			})
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "access forbidden"
	case errors.Is(err, domain.ErrAgentBanned):
		return http.StatusForbidden, "account banned"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, domain.ErrPropertyNotFound):
		return http.StatusNotFound, "property not found"
	case errors.Is(err, domain.ErrListingNotFound):
		return http.StatusNotFound, "listing not found"
	case errors.Is(err, domain.ErrDisputeNotFound):
		return http.StatusNotFound, "dispute not found"
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, "user already exists"
	case errors.Is(err, domain.ErrReviewExists):
		return http.StatusConflict, "listing already reviewed by this tenant"
	case errors.Is(err, domain.ErrDisputeClosed):
		return http.StatusConflict, "dispute already closed"
	case errors.Is(err, domain.ErrInvalidResolution):
		return http.StatusBadRequest, "resolution status must be resolved or dismissed"
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, domain.ErrNoFields):
		return http.StatusBadRequest, "no fields to update"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
