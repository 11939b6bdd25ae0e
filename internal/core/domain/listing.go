package domain

import (
	"time"

	"gorm.io/datatypes"
)

// ListingStatus represents the publication state of a listing.
type ListingStatus string

const (
	ListingActive    ListingStatus = "active"
	ListingSuspended ListingStatus = "suspended"
	ListingRemoved   ListingStatus = "removed"
)

// VerificationTier is an ordered trust label on a listing.
type VerificationTier string

const (
	TierUnverified      VerificationTier = "unverified"
	TierVerified        VerificationTier = "verified"
	TierPremiumVerified VerificationTier = "premium_verified"
)

// CoAgentRole tags a secondary agent on a listing.
const CoAgentRole = "co_agent"

// Listing is an agent's offer of a property for rent, with a full cost
// breakdown and physical attributes. Exactly one owning agent; co-agents are
// attached through ListingAgent.
type Listing struct {
	ID                          int64            `json:"id" gorm:"primaryKey"`
	PropertyID                  int64            `json:"property_id" gorm:"not null;index"`
	AgentID                     int64            `json:"agent_id" gorm:"not null;index"`
	Title                       string           `json:"title" gorm:"not null"`
	Description                 *string          `json:"description,omitempty"`
	VerificationTier            VerificationTier `json:"verification_tier" gorm:"default:unverified"`
	Status                      ListingStatus    `json:"status" gorm:"default:active;index"`
	InspectionFeeAmount         *float64         `json:"inspection_fee_amount,omitempty"`
	InspectionFeeNegotiable     bool             `json:"inspection_fee_negotiable"`
	LandlordWaivesInspectionFee bool             `json:"landlord_waives_inspection_fee"`
	AgencyFee                   *float64         `json:"agency_fee,omitempty"`
	LegalFee                    *float64         `json:"legal_fee,omitempty"`
	CautionDeposit              *float64         `json:"caution_deposit,omitempty"`
	ServiceCharge               *float64         `json:"service_charge,omitempty"`
	MonthlyRent                 float64          `json:"monthly_rent" gorm:"not null"`
	RentHistoryNotes            *string          `json:"rent_history_notes,omitempty"`
	BedroomsCount               *int             `json:"bedrooms_count,omitempty"`
	BedroomsSizeSqm             *float64         `json:"bedrooms_size_sqm,omitempty"`
	ToiletsCount                *int             `json:"toilets_count,omitempty"`
	ToiletsSizeSqm              *float64         `json:"toilets_size_sqm,omitempty"`
	KitchenSizeSqm              *float64         `json:"kitchen_size_sqm,omitempty"`
	PrepaidMeter                *bool            `json:"prepaid_meter,omitempty"`
	BandOfLight                 *string          `json:"band_of_light,omitempty"`
	BoreholeOrWell              *bool            `json:"borehole_or_well,omitempty"`
	NeighborsCount              *int             `json:"neighbors_count,omitempty"`
	LandlordLivesInHouse        *bool            `json:"landlord_lives_in_house,omitempty"`
	MediaURLs                   datatypes.JSON   `json:"media_urls,omitempty" gorm:"type:jsonb"`
	CreatedAt                   time.Time        `json:"created_at"`
	UpdatedAt                   time.Time        `json:"updated_at"`

	Property *Property      `json:"property,omitempty" gorm:"foreignKey:PropertyID"`
	Agent    *User          `json:"agent,omitempty" gorm:"foreignKey:AgentID"`
	CoAgents []ListingAgent `json:"co_agents,omitempty" gorm:"foreignKey:ListingID"`
}

// ListingAgent associates a secondary agent with a listing. The unique index
// makes duplicate attachment a no-op at the storage layer.
type ListingAgent struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	ListingID int64     `json:"listing_id" gorm:"not null;uniqueIndex:idx_listing_agent"`
	AgentID   int64     `json:"agent_id" gorm:"not null;uniqueIndex:idx_listing_agent"`
	Role      string    `json:"role" gorm:"default:co_agent"`
	CreatedAt time.Time `json:"created_at"`

	Agent *User `json:"agent,omitempty" gorm:"foreignKey:AgentID"`
}

// TotalPackage is the derived move-in cost: rent plus every optional fee that
// is present. Never persisted; always recomputed from the stored fee values.
func (l *Listing) TotalPackage() float64 {
	total := l.MonthlyRent
	for _, fee := range []*float64{l.AgencyFee, l.LegalFee, l.CautionDeposit, l.ServiceCharge} {
		if fee != nil {
			total += *fee
		}
	}
	return total
}
