package ports

import (
	"context"

	"github.com/househunt/marketplace-api/internal/core/domain"
)

// ReviewRepository defines persistence operations for reviews.
type ReviewRepository interface {
	// Create inserts the review. It returns domain.ErrReviewExists when the
	// (listing, tenant) pair already has one.
	Create(ctx context.Context, r *domain.Review) error
	ExistsForTenant(ctx context.Context, listingID, tenantID int64) (bool, error)
	// ListByListing returns the listing's reviews with the tenant loaded,
	// newest first.
	ListByListing(ctx context.Context, listingID int64) ([]*domain.Review, error)
}
