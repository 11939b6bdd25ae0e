package ports

import (
	"context"

	"github.com/househunt/marketplace-api/internal/core/domain"
)

// CreateReviewInput carries one tenant's rating of one listing.
type CreateReviewInput struct {
	TenantID             int64
	ListingID            int64
	LocationAccurate     *int
	AmenitiesAsDescribed *int
	NoHiddenFees         *int
	OverallRating        int
	Comment              *string
}

// ReviewSummary is the aggregation computed over a listing's reviews at read
// time. Averages are nil when no review scored that dimension.
type ReviewSummary struct {
	Count                   int
	AvgOverall              *float64
	AvgLocationAccurate     *float64
	AvgAmenitiesAsDescribed *float64
	AvgNoHiddenFees         *float64
}

// ReviewService defines use-case operations for reviews.
type ReviewService interface {
	Create(ctx context.Context, input CreateReviewInput) (*domain.Review, error)
	ListByListing(ctx context.Context, listingID int64) ([]*domain.Review, *ReviewSummary, error)
}
