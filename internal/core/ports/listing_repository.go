package ports

import (
	"context"

	"github.com/househunt/marketplace-api/internal/core/domain"
)

// ListingFilter carries the query parameters for listing search. The geo
// fields are not part of the primary query; the service applies them as a
// post-filter pass over the returned rows.
type ListingFilter struct {
	Status           domain.ListingStatus    // defaults to active when empty
	VerificationTier domain.VerificationTier // optional
	MinRent          *float64                // optional, inclusive
	MaxRent          *float64                // optional, inclusive
	MinBedrooms      *int                    // optional
}

// ListingRepository defines persistence operations for listings.
type ListingRepository interface {
	Create(ctx context.Context, l *domain.Listing) error
	// FindByID returns the listing with its property, owning agent, and
	// co-agents loaded.
	FindByID(ctx context.Context, id int64) (*domain.Listing, error)
	// List returns listings matching filter with property and agent loaded,
	// newest update first.
	List(ctx context.Context, filter ListingFilter) ([]*domain.Listing, error)
	Save(ctx context.Context, l *domain.Listing) error
	// AttachCoAgents associates agents with a listing under the co_agent
	// role. Already-attached agents are silently skipped.
	AttachCoAgents(ctx context.Context, listingID int64, agentIDs []int64) error
}
