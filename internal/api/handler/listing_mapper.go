package handler

import (
	"github.com/househunt/marketplace-api/internal/core/domain"
	"github.com/househunt/marketplace-api/internal/core/ports"
)

// toCreateListingInput maps the HTTP request to the service DTO. The owning
// agent comes from the authenticated identity, never from the body.
func toCreateListingInput(req createListingRequest, agentID int64) ports.CreateListingInput {
	return ports.CreateListingInput{
		AgentID:                     agentID,
		PropertyID:                  req.PropertyID,
		Title:                       req.Title,
		Description:                 req.Description,
		VerificationTier:            domain.VerificationTier(req.VerificationTier),
		InspectionFeeAmount:         req.InspectionFeeAmount,
		InspectionFeeNegotiable:     req.InspectionFeeNegotiable,
		LandlordWaivesInspectionFee: req.LandlordWaivesInspectionFee,
		AgencyFee:                   req.AgencyFee,
		LegalFee:                    req.LegalFee,
		CautionDeposit:              req.CautionDeposit,
		ServiceCharge:               req.ServiceCharge,
		MonthlyRent:                 req.MonthlyRent,
		RentHistoryNotes:            req.RentHistoryNotes,
		BedroomsCount:               req.BedroomsCount,
		BedroomsSizeSqm:             req.BedroomsSizeSqm,
		ToiletsCount:                req.ToiletsCount,
		ToiletsSizeSqm:              req.ToiletsSizeSqm,
		KitchenSizeSqm:              req.KitchenSizeSqm,
		PrepaidMeter:                req.PrepaidMeter,
		BandOfLight:                 req.BandOfLight,
		BoreholeOrWell:              req.BoreholeOrWell,
		NeighborsCount:              req.NeighborsCount,
		LandlordLivesInHouse:        req.LandlordLivesInHouse,
		MediaURLs:                   req.MediaURLs,
		CoAgentIDs:                  req.CoAgentIDs,
	}
}

func toListingPatch(req updateListingRequest) ports.ListingPatch {
	patch := ports.ListingPatch{
		PropertyID:                  req.PropertyID,
		Title:                       req.Title,
		Description:                 req.Description,
		InspectionFeeAmount:         req.InspectionFeeAmount,
		InspectionFeeNegotiable:     req.InspectionFeeNegotiable,
		LandlordWaivesInspectionFee: req.LandlordWaivesInspectionFee,
		AgencyFee:                   req.AgencyFee,
		LegalFee:                    req.LegalFee,
		CautionDeposit:              req.CautionDeposit,
		ServiceCharge:               req.ServiceCharge,
		MonthlyRent:                 req.MonthlyRent,
		RentHistoryNotes:            req.RentHistoryNotes,
		BedroomsCount:               req.BedroomsCount,
		BedroomsSizeSqm:             req.BedroomsSizeSqm,
		ToiletsCount:                req.ToiletsCount,
		ToiletsSizeSqm:              req.ToiletsSizeSqm,
		KitchenSizeSqm:              req.KitchenSizeSqm,
		PrepaidMeter:                req.PrepaidMeter,
		BandOfLight:                 req.BandOfLight,
		BoreholeOrWell:              req.BoreholeOrWell,
		NeighborsCount:              req.NeighborsCount,
		LandlordLivesInHouse:        req.LandlordLivesInHouse,
		MediaURLs:                   req.MediaURLs,
	}
	if req.VerificationTier != nil {
		tier := domain.VerificationTier(*req.VerificationTier)
		patch.VerificationTier = &tier
	}
	return patch
}

func toListingResponse(l *domain.Listing) listingResponse {
	return listingResponse{Listing: l, TotalPackage: l.TotalPackage()}
}

func toListingResponses(listings []*domain.Listing) []listingResponse {
	out := make([]listingResponse, 0, len(listings))
	for _, l := range listings {
		out = append(out, toListingResponse(l))
	}
	return out
}
