package handler

import "github.com/househunt/marketplace-api/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type createListingRequest struct {
	PropertyID                  int64    `json:"property_id"                    validate:"required,gt=0"`
	Title                       string   `json:"title"                          validate:"required"`
	Description                 *string  `json:"description"`
	VerificationTier            string   `json:"verification_tier"              validate:"omitempty,oneof=unverified verified premium_verified"`
	InspectionFeeAmount         *float64 `json:"inspection_fee_amount"          validate:"omitempty,gte=0"`
	InspectionFeeNegotiable     bool     `json:"inspection_fee_negotiable"`
	LandlordWaivesInspectionFee bool     `json:"landlord_waives_inspection_fee"`
	AgencyFee                   *float64 `json:"agency_fee"                     validate:"omitempty,gte=0"`
	LegalFee                    *float64 `json:"legal_fee"                      validate:"omitempty,gte=0"`
	CautionDeposit              *float64 `json:"caution_deposit"                validate:"omitempty,gte=0"`
	ServiceCharge               *float64 `json:"service_charge"                 validate:"omitempty,gte=0"`
	MonthlyRent                 float64  `json:"monthly_rent"                   validate:"required,gt=0"`
	RentHistoryNotes            *string  `json:"rent_history_notes"`
	BedroomsCount               *int     `json:"bedrooms_count"                 validate:"omitempty,gte=0"`
	BedroomsSizeSqm             *float64 `json:"bedrooms_size_sqm"              validate:"omitempty,gt=0"`
	ToiletsCount                *int     `json:"toilets_count"                  validate:"omitempty,gte=0"`
	ToiletsSizeSqm              *float64 `json:"toilets_size_sqm"               validate:"omitempty,gt=0"`
	KitchenSizeSqm              *float64 `json:"kitchen_size_sqm"               validate:"omitempty,gt=0"`
	PrepaidMeter                *bool    `json:"prepaid_meter"`
	BandOfLight                 *string  `json:"band_of_light"`
	BoreholeOrWell              *bool    `json:"borehole_or_well"`
	NeighborsCount              *int     `json:"neighbors_count"                validate:"omitempty,gte=0"`
	LandlordLivesInHouse        *bool    `json:"landlord_lives_in_house"`
	MediaURLs                   []string `json:"media_urls"                     validate:"omitempty,dive,url"`
	CoAgentIDs                  []int64  `json:"co_agent_ids"                   validate:"omitempty,dive,gt=0"`
}

type updateListingRequest struct {
	PropertyID                  *int64   `json:"property_id"                    validate:"omitempty,gt=0"`
	Title                       *string  `json:"title"`
	Description                 *string  `json:"description"`
	VerificationTier            *string  `json:"verification_tier"              validate:"omitempty,oneof=unverified verified premium_verified"`
	InspectionFeeAmount         *float64 `json:"inspection_fee_amount"          validate:"omitempty,gte=0"`
	InspectionFeeNegotiable     *bool    `json:"inspection_fee_negotiable"`
	LandlordWaivesInspectionFee *bool    `json:"landlord_waives_inspection_fee"`
	AgencyFee                   *float64 `json:"agency_fee"                     validate:"omitempty,gte=0"`
	LegalFee                    *float64 `json:"legal_fee"                      validate:"omitempty,gte=0"`
	CautionDeposit              *float64 `json:"caution_deposit"                validate:"omitempty,gte=0"`
	ServiceCharge               *float64 `json:"service_charge"                 validate:"omitempty,gte=0"`
	MonthlyRent                 *float64 `json:"monthly_rent"                   validate:"omitempty,gt=0"`
	RentHistoryNotes            *string  `json:"rent_history_notes"`
	BedroomsCount               *int     `json:"bedrooms_count"                 validate:"omitempty,gte=0"`
	BedroomsSizeSqm             *float64 `json:"bedrooms_size_sqm"              validate:"omitempty,gt=0"`
	ToiletsCount                *int     `json:"toilets_count"                  validate:"omitempty,gte=0"`
	ToiletsSizeSqm              *float64 `json:"toilets_size_sqm"               validate:"omitempty,gt=0"`
	KitchenSizeSqm              *float64 `json:"kitchen_size_sqm"               validate:"omitempty,gt=0"`
	PrepaidMeter                *bool    `json:"prepaid_meter"`
	BandOfLight                 *string  `json:"band_of_light"`
	BoreholeOrWell              *bool    `json:"borehole_or_well"`
	NeighborsCount              *int     `json:"neighbors_count"                validate:"omitempty,gte=0"`
	LandlordLivesInHouse        *bool    `json:"landlord_lives_in_house"`
	MediaURLs                   []string `json:"media_urls"                     validate:"omitempty,dive,url"`
}

type attachMediaRequest struct {
	URLs []string `json:"urls" validate:"required,min=1,dive,url"`
}

// --- Response types ---

// listingResponse adds the derived move-in cost to the persisted listing
// fields. The embedded listing keeps the JSON contract in one place.
type listingResponse struct {
	*domain.Listing
	TotalPackage float64 `json:"total_package"`
}

type mediaResponse struct {
	MediaURLs []string `json:"media_urls"`
}
