package ports

import (
	"context"

	"github.com/househunt/marketplace-api/internal/core/domain"
)

// Identity is the per-request authorization context. It is rebuilt from
// storage on every request so capability changes take effect immediately;
// never cache it across requests.
type Identity struct {
	UserID     int64
	Email      string
	IsTenant   bool
	IsAgent    bool
	IsLandlord bool
}

// IdentityResolver loads the current capability flags for an authenticated
// user id.
type IdentityResolver interface {
	Resolve(ctx context.Context, userID int64) (*domain.User, error)
}
