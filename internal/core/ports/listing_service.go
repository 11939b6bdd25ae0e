package ports

import (
	"context"

	"github.com/househunt/marketplace-api/internal/core/domain"
)

// CreateListingInput carries all data needed to publish a listing. AgentID is
// the authenticated owner, never taken from the request body.
type CreateListingInput struct {
	AgentID                     int64
	PropertyID                  int64
	Title                       string
	Description                 *string
	VerificationTier            domain.VerificationTier
	InspectionFeeAmount         *float64
	InspectionFeeNegotiable     bool
	LandlordWaivesInspectionFee bool
	AgencyFee                   *float64
	LegalFee                    *float64
	CautionDeposit              *float64
	ServiceCharge               *float64
	MonthlyRent                 float64
	RentHistoryNotes            *string
	BedroomsCount               *int
	BedroomsSizeSqm             *float64
	ToiletsCount                *int
	ToiletsSizeSqm              *float64
	KitchenSizeSqm              *float64
	PrepaidMeter                *bool
	BandOfLight                 *string
	BoreholeOrWell              *bool
	NeighborsCount              *int
	LandlordLivesInHouse        *bool
	MediaURLs                   []string
	CoAgentIDs                  []int64
}

// ListingPatch is a typed partial update. Only non-nil fields are applied;
// the merge itself is a pure function independent of the storage layer.
type ListingPatch struct {
	PropertyID                  *int64
	Title                       *string
	Description                 *string
	VerificationTier            *domain.VerificationTier
	InspectionFeeAmount         *float64
	InspectionFeeNegotiable     *bool
	LandlordWaivesInspectionFee *bool
	AgencyFee                   *float64
	LegalFee                    *float64
	CautionDeposit              *float64
	ServiceCharge               *float64
	MonthlyRent                 *float64
	RentHistoryNotes            *string
	BedroomsCount               *int
	BedroomsSizeSqm             *float64
	ToiletsCount                *int
	ToiletsSizeSqm              *float64
	KitchenSizeSqm              *float64
	PrepaidMeter                *bool
	BandOfLight                 *string
	BoreholeOrWell              *bool
	NeighborsCount              *int
	LandlordLivesInHouse        *bool
	MediaURLs                   []string
}

// IsEmpty reports whether the patch changes nothing.
func (p ListingPatch) IsEmpty() bool {
	return p.PropertyID == nil && p.Title == nil && p.Description == nil &&
		p.VerificationTier == nil && p.InspectionFeeAmount == nil &&
		p.InspectionFeeNegotiable == nil && p.LandlordWaivesInspectionFee == nil &&
		p.AgencyFee == nil && p.LegalFee == nil && p.CautionDeposit == nil &&
		p.ServiceCharge == nil && p.MonthlyRent == nil && p.RentHistoryNotes == nil &&
		p.BedroomsCount == nil && p.BedroomsSizeSqm == nil && p.ToiletsCount == nil &&
		p.ToiletsSizeSqm == nil && p.KitchenSizeSqm == nil && p.PrepaidMeter == nil &&
		p.BandOfLight == nil && p.BoreholeOrWell == nil && p.NeighborsCount == nil &&
		p.LandlordLivesInHouse == nil && p.MediaURLs == nil
}

// GeoFilter restricts search results to a radius around a center point.
type GeoFilter struct {
	Lat      float64
	Lng      float64
	RadiusKm float64
}

// SearchListingsInput carries all parameters for the listing search endpoint.
type SearchListingsInput struct {
	Filter ListingFilter
	Geo    *GeoFilter
}

// ListingService defines use-case operations for listings.
type ListingService interface {
	Create(ctx context.Context, input CreateListingInput) (*domain.Listing, error)
	Get(ctx context.Context, id int64) (*domain.Listing, error)
	Search(ctx context.Context, input SearchListingsInput) ([]*domain.Listing, error)
	Update(ctx context.Context, id, agentID int64, patch ListingPatch) (*domain.Listing, error)
	// AttachMedia appends uploaded media reference URLs to the listing's
	// ordered media list; it never replaces existing entries.
	AttachMedia(ctx context.Context, id, agentID int64, urls []string) ([]string, error)
}
