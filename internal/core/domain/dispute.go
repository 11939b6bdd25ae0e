package domain

import "time"

// DisputeStatus represents the lifecycle state of a dispute.
type DisputeStatus string

const (
	DisputeOpen          DisputeStatus = "open"
	DisputeInvestigating DisputeStatus = "investigating"
	DisputeResolved      DisputeStatus = "resolved"
	DisputeDismissed     DisputeStatus = "dismissed"
)

// validDisputeTransitions defines the allowed state machine transitions.
// resolved and dismissed are terminal.
var validDisputeTransitions = map[DisputeStatus][]DisputeStatus{
	DisputeOpen:          {DisputeInvestigating, DisputeResolved, DisputeDismissed},
	DisputeInvestigating: {DisputeResolved, DisputeDismissed},
}

// CanTransitionTo reports whether a transition from the current status to
// next is valid.
func (s DisputeStatus) CanTransitionTo(next DisputeStatus) bool {
	for _, allowed := range validDisputeTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status admits no further transitions.
func (s DisputeStatus) IsTerminal() bool {
	return s == DisputeResolved || s == DisputeDismissed
}

// IsResolution reports whether the status is a valid resolution target.
func (s DisputeStatus) IsResolution() bool {
	return s == DisputeResolved || s == DisputeDismissed
}

// DisputeWarningReason is the fixed reason attached to the warning penalty
// issued against a listing's agent when a dispute is resolved against them.
const DisputeWarningReason = "Resolved dispute - misleading listing"

// Dispute is a report filed against a listing.
type Dispute struct {
	ID               int64         `json:"id" gorm:"primaryKey"`
	ListingID        int64         `json:"listing_id" gorm:"not null;index"`
	ReportedByUserID int64         `json:"reported_by_user_id" gorm:"not null;index"`
	Reason           string        `json:"reason"`
	Status           DisputeStatus `json:"status" gorm:"default:open"`
	ResolvedAt       *time.Time    `json:"resolved_at,omitempty"`
	ResolutionNotes  *string       `json:"resolution_notes,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`

	Listing    *Listing `json:"listing,omitempty" gorm:"foreignKey:ListingID"`
	ReportedBy *User    `json:"reported_by,omitempty" gorm:"foreignKey:ReportedByUserID"`
}
