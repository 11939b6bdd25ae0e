package ports

import (
	"context"

	"github.com/househunt/marketplace-api/internal/core/domain"
)

// LifecycleRepository defines persistence operations for tenant lifecycle
// records: the profile plus the append-and-list collections.
type LifecycleRepository interface {
	// GetProfile returns the tenant's profile, or nil when none exists yet.
	GetProfile(ctx context.Context, userID int64) (*domain.TenantProfile, error)
	CreateProfile(ctx context.Context, p *domain.TenantProfile) error
	SaveProfile(ctx context.Context, p *domain.TenantProfile) error

	CreateSavedSearch(ctx context.Context, s *domain.SavedSearch) error
	ListSavedSearches(ctx context.Context, userID int64) ([]*domain.SavedSearch, error)

	CreateRentEntry(ctx context.Context, e *domain.RentEntry) error
	ListRentEntries(ctx context.Context, userID int64) ([]*domain.RentEntry, error)

	CreateChecklist(ctx context.Context, c *domain.MoveChecklist) error
	ListChecklists(ctx context.Context, userID int64) ([]*domain.MoveChecklist, error)
}
