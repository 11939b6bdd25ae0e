package ports

import (
	"context"
	"time"

	"github.com/househunt/marketplace-api/internal/core/domain"
)

// DisputeResolutionUpdate is the complete state change applied when a dispute
// reaches a terminal status. When SuspendListing is set, the referenced
// listing's status is forced to suspended and one warning penalty is inserted
// for PenaltyUserID; the whole update runs in a single transaction.
type DisputeResolutionUpdate struct {
	DisputeID       int64
	Status          domain.DisputeStatus
	ResolvedAt      time.Time
	ResolutionNotes *string
	SuspendListing  bool
	ListingID       int64
	PenaltyUserID   int64
	PenaltyReason   string
}

// DisputeRepository defines persistence operations for disputes.
type DisputeRepository interface {
	Create(ctx context.Context, d *domain.Dispute) error
	FindByID(ctx context.Context, id int64) (*domain.Dispute, error)
	// ListForUser returns disputes where the user is the reporter or the
	// owning agent of the disputed listing, newest first.
	ListForUser(ctx context.Context, userID int64) ([]*domain.Dispute, error)
	// UpdateStatus moves the dispute from one non-terminal status to another.
	// It returns domain.ErrDisputeClosed when the dispute is no longer in the
	// expected status.
	UpdateStatus(ctx context.Context, id int64, from, to domain.DisputeStatus) error
	// ApplyResolution atomically closes the dispute and applies its side
	// effects. The dispute row is only updated while still open or
	// investigating; domain.ErrDisputeClosed is returned otherwise and no
	// side effect is applied.
	ApplyResolution(ctx context.Context, update DisputeResolutionUpdate) (*domain.Dispute, error)
}
