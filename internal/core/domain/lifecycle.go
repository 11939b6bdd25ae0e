package domain

import (
	"time"

	"gorm.io/datatypes"
)

// TenantProfile tracks one tenant's rental situation: whether they are
// actively searching, the listing they secured, their lease end date, and
// search preferences. One-to-one with a tenant user; lazily created on first
// access with is_searching defaulting to true.
type TenantProfile struct {
	ID               int64      `json:"id" gorm:"primaryKey"`
	UserID           int64      `json:"user_id" gorm:"uniqueIndex;not null"`
	IsSearching      bool       `json:"is_searching" gorm:"default:true"`
	SecuredListingID *int64     `json:"secured_listing_id,omitempty"`
	LeaseEndDate     *time.Time `json:"lease_end_date,omitempty"`
	PreferredAreas   *string    `json:"preferred_areas,omitempty"`
	MinBudget        *float64   `json:"min_budget,omitempty"`
	MaxBudget        *float64   `json:"max_budget,omitempty"`
	BedroomsWanted   *int       `json:"bedrooms_wanted,omitempty"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// leaseReminderWindowMonths is how far ahead of a lease end the reminder fires.
const leaseReminderWindowMonths = 3

// LeaseReminder nudges a settled tenant whose lease is about to end.
type LeaseReminder struct {
	Message      string    `json:"message"`
	LeaseEndDate time.Time `json:"lease_end_date"`
}

// LeaseReminderFor computes the reminder for a profile at the given instant.
// It returns nil unless the tenant is settled (not searching), has a lease
// end date, and that date falls at or before now plus three months. Pure and
// stateless; nothing is persisted.
func LeaseReminderFor(p *TenantProfile, now time.Time) *LeaseReminder {
	if p == nil || p.IsSearching || p.LeaseEndDate == nil {
		return nil
	}
	cutoff := now.AddDate(0, leaseReminderWindowMonths, 0)
	if p.LeaseEndDate.After(cutoff) {
		return nil
	}
	return &LeaseReminder{
		Message:      "Your lease is probably ending soon. Start looking?",
		LeaseEndDate: *p.LeaseEndDate,
	}
}

// SavedSearch stores a named, opaque filter payload for re-running a listing
// search later.
type SavedSearch struct {
	ID        int64          `json:"id" gorm:"primaryKey"`
	UserID    int64          `json:"user_id" gorm:"not null;index"`
	Name      string         `json:"name"`
	Filters   datatypes.JSON `json:"filters,omitempty" gorm:"type:jsonb"`
	CreatedAt time.Time      `json:"created_at"`
}

// RentEntry is one record in a tenant's rent payment history.
type RentEntry struct {
	ID          int64      `json:"id" gorm:"primaryKey"`
	UserID      int64      `json:"user_id" gorm:"not null;index"`
	ListingID   *int64     `json:"listing_id,omitempty"`
	Amount      float64    `json:"amount" gorm:"not null"`
	PeriodStart *time.Time `json:"period_start,omitempty"`
	PeriodEnd   *time.Time `json:"period_end,omitempty"`
	Note        *string    `json:"note,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (RentEntry) TableName() string { return "rent_history" }

// ChecklistType distinguishes move-in from move-out checklists.
type ChecklistType string

const (
	ChecklistMoveIn  ChecklistType = "move_in"
	ChecklistMoveOut ChecklistType = "move_out"
)

// MoveChecklist holds a tenant's move-in or move-out items as an opaque
// structured payload.
type MoveChecklist struct {
	ID        int64          `json:"id" gorm:"primaryKey"`
	UserID    int64          `json:"user_id" gorm:"not null;index"`
	ListingID *int64         `json:"listing_id,omitempty"`
	Type      ChecklistType  `json:"type" gorm:"not null"`
	Items     datatypes.JSON `json:"items,omitempty" gorm:"type:jsonb"`
	CreatedAt time.Time      `json:"created_at"`
}
