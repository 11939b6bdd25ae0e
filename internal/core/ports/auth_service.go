package ports

import (
	"context"

	"github.com/househunt/marketplace-api/internal/core/domain"
)

// RegisterInput carries the data needed to create an account. Every account
// holds the tenant capability; agent and landlord are opt-in.
type RegisterInput struct {
	Email      string
	Password   string
	FullName   string
	Phone      string
	IsAgent    bool
	IsLandlord bool
}

// UserPatch is a partial update of an account's display fields.
type UserPatch struct {
	FullName *string
	Phone    *string
}

// RolePatch is a partial update of the opt-in capability flags. The tenant
// flag is not patchable; it is always true.
type RolePatch struct {
	IsAgent    *bool
	IsLandlord *bool
}

// AuthService implements registration, login, and account self-management.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Me(ctx context.Context, userID int64) (*domain.User, error)
	UpdateMe(ctx context.Context, userID int64, patch UserPatch) (*domain.User, error)
	UpdateRoles(ctx context.Context, userID int64, patch RolePatch) (*domain.User, error)
}
