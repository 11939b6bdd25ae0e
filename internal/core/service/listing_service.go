package service

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"
	"gorm.io/datatypes"

	"github.com/househunt/marketplace-api/internal/api/metrics"
	"github.com/househunt/marketplace-api/internal/core/domain"
	"github.com/househunt/marketplace-api/internal/core/ports"
)

// ListingService implements the listing lifecycle: create, update, search,
// detail, and media attachment. Every mutation is gated on the caller's
// penalty state through the trust service.
type ListingService struct {
	listings   ports.ListingRepository
	properties ports.PropertyRepository
	trust      ports.TrustService
	logger     zerolog.Logger
}

func NewListingService(
	listings ports.ListingRepository,
	properties ports.PropertyRepository,
	trust ports.TrustService,
	logger zerolog.Logger,
) *ListingService {
	return &ListingService{listings: listings, properties: properties, trust: trust, logger: logger}
}

// Create publishes a new listing for the authenticated agent. The property
// reference must exist, and the agent must pass the trust check.
func (s *ListingService) Create(ctx context.Context, input ports.CreateListingInput) (*domain.Listing, error) {
	if err := s.trust.Authorize(ctx, input.AgentID); err != nil {
		return nil, err
	}
	if _, err := s.properties.FindByID(ctx, input.PropertyID); err != nil {
		return nil, err
	}

	tier := input.VerificationTier
	if tier == "" {
		tier = domain.TierUnverified
	}

	listing := &domain.Listing{
		PropertyID:                  input.PropertyID,
		AgentID:                     input.AgentID,
		Title:                       input.Title,
		Description:                 input.Description,
		VerificationTier:            tier,
		Status:                      domain.ListingActive,
		InspectionFeeAmount:         input.InspectionFeeAmount,
		InspectionFeeNegotiable:     input.InspectionFeeNegotiable,
		LandlordWaivesInspectionFee: input.LandlordWaivesInspectionFee,
		AgencyFee:                   input.AgencyFee,
		LegalFee:                    input.LegalFee,
		CautionDeposit:              input.CautionDeposit,
		ServiceCharge:               input.ServiceCharge,
		MonthlyRent:                 input.MonthlyRent,
		RentHistoryNotes:            input.RentHistoryNotes,
		BedroomsCount:               input.BedroomsCount,
		BedroomsSizeSqm:             input.BedroomsSizeSqm,
		ToiletsCount:                input.ToiletsCount,
		ToiletsSizeSqm:              input.ToiletsSizeSqm,
		KitchenSizeSqm:              input.KitchenSizeSqm,
		PrepaidMeter:                input.PrepaidMeter,
		BandOfLight:                 input.BandOfLight,
		BoreholeOrWell:              input.BoreholeOrWell,
		NeighborsCount:              input.NeighborsCount,
		LandlordLivesInHouse:        input.LandlordLivesInHouse,
		MediaURLs:                   encodeMediaURLs(input.MediaURLs),
	}

	if err := s.listings.Create(ctx, listing); err != nil {
		s.logger.Error().Err(err).Int64("agent_id", input.AgentID).Msg("failed to create listing")
		return nil, err
	}

	if len(input.CoAgentIDs) > 0 {
		if err := s.listings.AttachCoAgents(ctx, listing.ID, input.CoAgentIDs); err != nil {
			return nil, err
		}
	}

	metrics.ListingsCreatedTotal.WithLabelValues(string(tier)).Inc()
	s.logger.Info().
		Int64("listing_id", listing.ID).
		Int64("agent_id", input.AgentID).
		Int64("property_id", input.PropertyID).
		Msg("listing created")

	return s.listings.FindByID(ctx, listing.ID)
}

func (s *ListingService) Get(ctx context.Context, id int64) (*domain.Listing, error) {
	return s.listings.FindByID(ctx, id)
}

// Search runs the primary filtered query, then applies the geo radius as a
// post-filter pass. Listings without coordinates never pass a geo filter.
func (s *ListingService) Search(ctx context.Context, input ports.SearchListingsInput) ([]*domain.Listing, error) {
	filter := input.Filter
	if filter.Status == "" {
		filter.Status = domain.ListingActive
	}

	results, err := s.listings.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	if input.Geo == nil {
		return results, nil
	}

	geo := input.Geo
	matched := results[:0]
	for _, l := range results {
		p := l.Property
		if p == nil || !p.HasCoordinates() {
			continue
		}
		if domain.WithinRadiusKm(*p.Latitude, *p.Longitude, geo.Lat, geo.Lng, geo.RadiusKm) {
			matched = append(matched, l)
		}
	}
	return matched, nil
}

// Update applies a typed patch to a listing. Only the owning agent may
// update; co-agents cannot. The merge itself is a pure function; the
// repository persists the merged entity and refreshes updated_at.
func (s *ListingService) Update(ctx context.Context, id, agentID int64, patch ports.ListingPatch) (*domain.Listing, error) {
	listing, err := s.listings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if listing.AgentID != agentID {
		return nil, domain.ErrForbidden
	}
	if err := s.trust.Authorize(ctx, agentID); err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return nil, domain.ErrNoFields
	}
	if patch.PropertyID != nil {
		if _, err := s.properties.FindByID(ctx, *patch.PropertyID); err != nil {
			return nil, err
		}
	}

	applyListingPatch(listing, patch)

	if err := s.listings.Save(ctx, listing); err != nil {
		return nil, err
	}
	return s.listings.FindByID(ctx, id)
}

// AttachMedia appends uploaded media reference URLs to the listing's ordered
// media list. Existing entries are never replaced or reordered.
func (s *ListingService) AttachMedia(ctx context.Context, id, agentID int64, urls []string) ([]string, error) {
	listing, err := s.listings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if listing.AgentID != agentID {
		return nil, domain.ErrForbidden
	}

	merged := append(decodeMediaURLs(listing.MediaURLs), urls...)
	listing.MediaURLs = encodeMediaURLs(merged)

	if err := s.listings.Save(ctx, listing); err != nil {
		return nil, err
	}
	return merged, nil
}

// applyListingPatch merges non-nil patch fields into the listing. Pure:
// storage-independent, no clock, no I/O.
func applyListingPatch(l *domain.Listing, p ports.ListingPatch) {
	if p.PropertyID != nil {
		l.PropertyID = *p.PropertyID
	}
	if p.Title != nil {
		l.Title = *p.Title
	}
	if p.Description != nil {
		l.Description = p.Description
	}
	if p.VerificationTier != nil {
		l.VerificationTier = *p.VerificationTier
	}
	if p.InspectionFeeAmount != nil {
		l.InspectionFeeAmount = p.InspectionFeeAmount
	}
	if p.InspectionFeeNegotiable != nil {
		l.InspectionFeeNegotiable = *p.InspectionFeeNegotiable
	}
	if p.LandlordWaivesInspectionFee != nil {
		l.LandlordWaivesInspectionFee = *p.LandlordWaivesInspectionFee
	}
	if p.AgencyFee != nil {
		l.AgencyFee = p.AgencyFee
	}
	if p.LegalFee != nil {
		l.LegalFee = p.LegalFee
	}
	if p.CautionDeposit != nil {
		l.CautionDeposit = p.CautionDeposit
	}
	if p.ServiceCharge != nil {
		l.ServiceCharge = p.ServiceCharge
	}
	if p.MonthlyRent != nil {
		l.MonthlyRent = *p.MonthlyRent
	}
	if p.RentHistoryNotes != nil {
		l.RentHistoryNotes = p.RentHistoryNotes
	}
	if p.BedroomsCount != nil {
		l.BedroomsCount = p.BedroomsCount
	}
	if p.BedroomsSizeSqm != nil {
		l.BedroomsSizeSqm = p.BedroomsSizeSqm
	}
	if p.ToiletsCount != nil {
		l.ToiletsCount = p.ToiletsCount
	}
	if p.ToiletsSizeSqm != nil {
		l.ToiletsSizeSqm = p.ToiletsSizeSqm
	}
	if p.KitchenSizeSqm != nil {
		l.KitchenSizeSqm = p.KitchenSizeSqm
	}
	if p.PrepaidMeter != nil {
		l.PrepaidMeter = p.PrepaidMeter
	}
	if p.BandOfLight != nil {
		l.BandOfLight = p.BandOfLight
	}
	if p.BoreholeOrWell != nil {
		l.BoreholeOrWell = p.BoreholeOrWell
	}
	if p.NeighborsCount != nil {
		l.NeighborsCount = p.NeighborsCount
	}
	if p.LandlordLivesInHouse != nil {
		l.LandlordLivesInHouse = p.LandlordLivesInHouse
	}
	if p.MediaURLs != nil {
		l.MediaURLs = encodeMediaURLs(p.MediaURLs)
	}
}

func encodeMediaURLs(urls []string) datatypes.JSON {
	if urls == nil {
		return nil
	}
	raw, err := json.Marshal(urls)
	if err != nil {
		return nil
	}
	return raw
}

func decodeMediaURLs(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return nil
	}
	var urls []string
	if err := json.Unmarshal(raw, &urls); err != nil {
		return nil
	}
	return urls
}
