package domain

import "time"

// PenaltyType classifies a sanction on a user.
//
//	warning    = advisory only, never blocks anything
//	suspension = time-bounded, blocks listing mutation while ends_at is in the future
//	ban        = blocks listing mutation indefinitely unless ends_at is set and has passed
type PenaltyType string

const (
	PenaltyWarning    PenaltyType = "warning"
	PenaltySuspension PenaltyType = "suspension"
	PenaltyBan        PenaltyType = "ban"
)

// Penalty is a sanction record against a user, optionally tied to the listing
// that triggered it.
type Penalty struct {
	ID        int64       `json:"id" gorm:"primaryKey"`
	UserID    int64       `json:"user_id" gorm:"not null;index"`
	Type      PenaltyType `json:"type" gorm:"not null"`
	ListingID *int64      `json:"listing_id,omitempty"`
	Reason    *string     `json:"reason,omitempty"`
	StartsAt  *time.Time  `json:"starts_at,omitempty"`
	EndsAt    *time.Time  `json:"ends_at,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}
