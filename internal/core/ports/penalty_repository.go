package ports

import (
	"context"
	"time"

	"github.com/househunt/marketplace-api/internal/core/domain"
)

// PenaltyRepository defines persistence operations for sanctions. The active
// checks are existence queries scoped to a single user; they never enumerate
// penalty history.
type PenaltyRepository interface {
	Create(ctx context.Context, p *domain.Penalty) error
	// HasActiveBan reports whether the user has a ban whose ends_at is null
	// or after now.
	HasActiveBan(ctx context.Context, userID int64, now time.Time) (bool, error)
	// FindActiveSuspension returns a suspension whose ends_at is strictly
	// after now, or nil when none exists.
	FindActiveSuspension(ctx context.Context, userID int64, now time.Time) (*domain.Penalty, error)
}
