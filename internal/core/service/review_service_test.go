package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/rs/zerolog"

	"github.com/househunt/marketplace-api/internal/core/domain"
	"github.com/househunt/marketplace-api/internal/core/ports"
)

type stubReviewRepo struct {
	byID   map[int64]*domain.Review
	nextID int64
}

func newStubReviewRepo() *stubReviewRepo {
	return &stubReviewRepo{byID: make(map[int64]*domain.Review)}
}

func (r *stubReviewRepo) Create(_ context.Context, review *domain.Review) error {
	for _, existing := range r.byID {
		if existing.ListingID == review.ListingID && existing.TenantID == review.TenantID {
			return domain.ErrReviewExists
		}
	}
	r.nextID++
	review.ID = r.nextID
	clone := *review
	r.byID[review.ID] = &clone
	return nil
}

func (r *stubReviewRepo) ExistsForTenant(_ context.Context, listingID, tenantID int64) (bool, error) {
	for _, existing := range r.byID {
		if existing.ListingID == listingID && existing.TenantID == tenantID {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubReviewRepo) ListByListing(_ context.Context, listingID int64) ([]*domain.Review, error) {
	var matched []*domain.Review
	for _, existing := range r.byID {
		if existing.ListingID == listingID {
			clone := *existing
			matched = append(matched, &clone)
		}
	}
	return matched, nil
}

func newReviewFixture(t *testing.T) (*ReviewService, *stubReviewRepo, int64) {
	t.Helper()
	listings := newStubListingRepo()
	listing := &domain.Listing{AgentID: 3, PropertyID: 1, Title: "reviewed flat", MonthlyRent: 1000, Status: domain.ListingActive}
	if err := listings.Create(context.Background(), listing); err != nil {
		t.Fatalf("seed listing: %v", err)
	}
	repo := newStubReviewRepo()
	return NewReviewService(repo, listings, zerolog.Nop()), repo, listing.ID
}

func floatEq(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestReviewService_Create(t *testing.T) {
	svc, _, listingID := newReviewFixture(t)

	comment := "as advertised"
	review, err := svc.Create(context.Background(), ports.CreateReviewInput{
		TenantID: 5, ListingID: listingID,
		LocationAccurate: intPtr(5), OverallRating: 4, Comment: &comment,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if review.ID == 0 || review.OverallRating != 4 {
		t.Fatalf("review not persisted: %+v", review)
	}
}

func TestReviewService_Create_UnknownListing(t *testing.T) {
	svc, _, _ := newReviewFixture(t)

	_, err := svc.Create(context.Background(), ports.CreateReviewInput{
		TenantID: 5, ListingID: 404, OverallRating: 4,
	})
	if !errors.Is(err, domain.ErrListingNotFound) {
		t.Fatalf("expected ErrListingNotFound, got %v", err)
	}
}

func TestReviewService_Create_DuplicateTenantRejected(t *testing.T) {
	svc, repo, listingID := newReviewFixture(t)

	first, err := svc.Create(context.Background(), ports.CreateReviewInput{
		TenantID: 5, ListingID: listingID, OverallRating: 5,
	})
	if err != nil {
		t.Fatalf("first review: %v", err)
	}

	_, err = svc.Create(context.Background(), ports.CreateReviewInput{
		TenantID: 5, ListingID: listingID, OverallRating: 1,
	})
	if !errors.Is(err, domain.ErrReviewExists) {
		t.Fatalf("expected ErrReviewExists, got %v", err)
	}
	if repo.byID[first.ID].OverallRating != 5 {
		t.Fatalf("first review must be unaffected by the rejected duplicate")
	}

	// A different tenant may still review the same listing.
	if _, err := svc.Create(context.Background(), ports.CreateReviewInput{
		TenantID: 6, ListingID: listingID, OverallRating: 3,
	}); err != nil {
		t.Fatalf("second tenant: %v", err)
	}
}

func TestReviewService_Summary_Averages(t *testing.T) {
	svc, _, listingID := newReviewFixture(t)

	// Two reviews score location, only one scores hidden fees, none score
	// amenities.
	inputs := []ports.CreateReviewInput{
		{TenantID: 5, ListingID: listingID, OverallRating: 5, LocationAccurate: intPtr(4), NoHiddenFees: intPtr(2)},
		{TenantID: 6, ListingID: listingID, OverallRating: 2, LocationAccurate: intPtr(3)},
	}
	for _, in := range inputs {
		if _, err := svc.Create(context.Background(), in); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	reviews, summary, err := svc.ListByListing(context.Background(), listingID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(reviews) != 2 || summary.Count != 2 {
		t.Fatalf("expected 2 reviews, got %d (count %d)", len(reviews), summary.Count)
	}
	if summary.AvgOverall == nil || !floatEq(*summary.AvgOverall, 3.5) {
		t.Fatalf("avg overall: %v", summary.AvgOverall)
	}
	if summary.AvgLocationAccurate == nil || !floatEq(*summary.AvgLocationAccurate, 3.5) {
		t.Fatalf("avg location: %v", summary.AvgLocationAccurate)
	}
	// Optional dimensions average only over the reviews that scored them.
	if summary.AvgNoHiddenFees == nil || !floatEq(*summary.AvgNoHiddenFees, 2) {
		t.Fatalf("avg hidden fees: %v", summary.AvgNoHiddenFees)
	}
	if summary.AvgAmenitiesAsDescribed != nil {
		t.Fatalf("unscored dimension must average to nil, got %v", *summary.AvgAmenitiesAsDescribed)
	}
}

func TestReviewService_Summary_EmptyListing(t *testing.T) {
	svc, _, listingID := newReviewFixture(t)

	reviews, summary, err := svc.ListByListing(context.Background(), listingID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(reviews) != 0 {
		t.Fatalf("expected no reviews, got %d", len(reviews))
	}
	if summary.Count != 0 || summary.AvgOverall != nil {
		t.Fatalf("empty summary must carry zero count and nil averages: %+v", summary)
	}
}
