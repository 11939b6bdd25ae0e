package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/househunt/marketplace-api/internal/core/domain"
	"github.com/househunt/marketplace-api/internal/core/ports"
)

// UserProfileHandler serves the combined account + tenant profile view.
type UserProfileHandler struct {
	authService      ports.AuthService
	lifecycleService ports.LifecycleService
}

func NewUserProfileHandler(authService ports.AuthService, lifecycleService ports.LifecycleService) *UserProfileHandler {
	return &UserProfileHandler{authService: authService, lifecycleService: lifecycleService}
}

type userProfileResponse struct {
	User          *domain.User          `json:"user"`
	TenantProfile *domain.TenantProfile `json:"tenant_profile,omitempty"`
}

// Get returns the account with its tenant profile embedded when one exists.
// Unlike the lifecycle profile endpoint this never creates a profile.
//
// @Summary      Get account with tenant profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userProfileResponse
// @Failure      401  {object}  errorResponse
// @Router       /users/profile [get]
func (h *UserProfileHandler) Get(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	user, err := h.authService.Me(c.Request().Context(), identity.UserID)
	if err != nil {
		return err
	}
	profile, err := h.lifecycleService.FindProfile(c.Request().Context(), identity.UserID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userProfileResponse{User: user, TenantProfile: profile})
}
