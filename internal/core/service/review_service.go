package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/househunt/marketplace-api/internal/api/metrics"
	"github.com/househunt/marketplace-api/internal/core/domain"
	"github.com/househunt/marketplace-api/internal/core/ports"
)

// ReviewService implements review creation and read-time aggregation.
type ReviewService struct {
	reviews  ports.ReviewRepository
	listings ports.ListingRepository
	logger   zerolog.Logger
}

func NewReviewService(reviews ports.ReviewRepository, listings ports.ListingRepository, logger zerolog.Logger) *ReviewService {
	return &ReviewService{reviews: reviews, listings: listings, logger: logger}
}

// Create records one tenant's review of one listing. A second review of the
// same listing by the same tenant fails with ErrReviewExists; the first
// review is unaffected.
func (s *ReviewService) Create(ctx context.Context, input ports.CreateReviewInput) (*domain.Review, error) {
	if _, err := s.listings.FindByID(ctx, input.ListingID); err != nil {
		return nil, err
	}

	exists, err := s.reviews.ExistsForTenant(ctx, input.ListingID, input.TenantID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrReviewExists
	}

	review := &domain.Review{
		ListingID:            input.ListingID,
		TenantID:             input.TenantID,
		LocationAccurate:     input.LocationAccurate,
		AmenitiesAsDescribed: input.AmenitiesAsDescribed,
		NoHiddenFees:         input.NoHiddenFees,
		OverallRating:        input.OverallRating,
		Comment:              input.Comment,
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}

	metrics.ReviewsCreatedTotal.Inc()
	s.logger.Info().
		Int64("review_id", review.ID).
		Int64("listing_id", input.ListingID).
		Int64("tenant_id", input.TenantID).
		Msg("review created")

	return review, nil
}

// ListByListing returns a listing's reviews plus the aggregation computed
// over them. The summary is derived at read time, never persisted.
func (s *ReviewService) ListByListing(ctx context.Context, listingID int64) ([]*domain.Review, *ports.ReviewSummary, error) {
	reviews, err := s.reviews.ListByListing(ctx, listingID)
	if err != nil {
		return nil, nil, err
	}
	return reviews, summarize(reviews), nil
}

func summarize(reviews []*domain.Review) *ports.ReviewSummary {
	summary := &ports.ReviewSummary{Count: len(reviews)}
	if len(reviews) == 0 {
		return summary
	}

	var overallSum int
	for _, r := range reviews {
		overallSum += r.OverallRating
	}
	avg := float64(overallSum) / float64(len(reviews))
	summary.AvgOverall = &avg

	summary.AvgLocationAccurate = averageOf(reviews, func(r *domain.Review) *int { return r.LocationAccurate })
	summary.AvgAmenitiesAsDescribed = averageOf(reviews, func(r *domain.Review) *int { return r.AmenitiesAsDescribed })
	summary.AvgNoHiddenFees = averageOf(reviews, func(r *domain.Review) *int { return r.NoHiddenFees })
	return summary
}

// averageOf averages an optional dimension over the reviews that scored it.
func averageOf(reviews []*domain.Review, dim func(*domain.Review) *int) *float64 {
	var sum, n int
	for _, r := range reviews {
		if v := dim(r); v != nil {
			sum += *v
			n++
		}
	}
	if n == 0 {
		return nil
	}
	avg := float64(sum) / float64(n)
	return &avg
}
