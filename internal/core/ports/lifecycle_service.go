package ports

import (
	"context"
	"time"

	"github.com/househunt/marketplace-api/internal/core/domain"
)

// ProfilePatch is a partial update of a tenant profile. Only non-nil fields
// are applied.
type ProfilePatch struct {
	IsSearching      *bool
	SecuredListingID *int64
	LeaseEndDate     *time.Time
	PreferredAreas   *string
	MinBudget        *float64
	MaxBudget        *float64
	BedroomsWanted   *int
}

// IsEmpty reports whether the patch changes nothing.
func (p ProfilePatch) IsEmpty() bool {
	return p.IsSearching == nil && p.SecuredListingID == nil && p.LeaseEndDate == nil &&
		p.PreferredAreas == nil && p.MinBudget == nil && p.MaxBudget == nil &&
		p.BedroomsWanted == nil
}

// CreateSavedSearchInput stores a reusable listing search.
type CreateSavedSearchInput struct {
	UserID  int64
	Name    string
	Filters map[string]any
}

// CreateRentEntryInput appends one rent payment record.
type CreateRentEntryInput struct {
	UserID      int64
	ListingID   *int64
	Amount      float64
	PeriodStart *time.Time
	PeriodEnd   *time.Time
	Note        *string
}

// CreateChecklistInput appends one move checklist.
type CreateChecklistInput struct {
	UserID    int64
	ListingID *int64
	Type      domain.ChecklistType
	Items     []any
}

// LifecycleService defines use-case operations for tenant lifecycle tracking.
type LifecycleService interface {
	// GetProfile lazily creates the profile on first access, with
	// is_searching defaulting to true.
	GetProfile(ctx context.Context, userID int64) (*domain.TenantProfile, error)
	// FindProfile returns nil without side effects when the user has no
	// profile yet.
	FindProfile(ctx context.Context, userID int64) (*domain.TenantProfile, error)
	UpdateProfile(ctx context.Context, userID int64, patch ProfilePatch) (*domain.TenantProfile, error)
	// LeaseReminder recomputes the reminder on every call; nothing is
	// persisted.
	LeaseReminder(ctx context.Context, userID int64) (*domain.LeaseReminder, error)

	CreateSavedSearch(ctx context.Context, input CreateSavedSearchInput) (*domain.SavedSearch, error)
	ListSavedSearches(ctx context.Context, userID int64) ([]*domain.SavedSearch, error)

	CreateRentEntry(ctx context.Context, input CreateRentEntryInput) (*domain.RentEntry, error)
	ListRentEntries(ctx context.Context, userID int64) ([]*domain.RentEntry, error)

	CreateChecklist(ctx context.Context, input CreateChecklistInput) (*domain.MoveChecklist, error)
	ListChecklists(ctx context.Context, userID int64) ([]*domain.MoveChecklist, error)
}
