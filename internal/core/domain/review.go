package domain

import "time"

// Review is one tenant's rating of one listing on a 1-5 scale across up to
// four dimensions. At most one review per (tenant, listing) pair, enforced by
// a unique index and checked again at write time.
type Review struct {
	ID                   int64     `json:"id" gorm:"primaryKey"`
	ListingID            int64     `json:"listing_id" gorm:"not null;uniqueIndex:idx_review_tenant"`
	TenantID             int64     `json:"tenant_id" gorm:"not null;uniqueIndex:idx_review_tenant"`
	LocationAccurate     *int      `json:"location_accurate,omitempty"`
	AmenitiesAsDescribed *int      `json:"amenities_as_described,omitempty"`
	NoHiddenFees         *int      `json:"no_hidden_fees,omitempty"`
	OverallRating        int       `json:"overall_rating" gorm:"not null"`
	Comment              *string   `json:"comment,omitempty"`
	CreatedAt            time.Time `json:"created_at"`

	Tenant *User `json:"tenant,omitempty" gorm:"foreignKey:TenantID"`
}
