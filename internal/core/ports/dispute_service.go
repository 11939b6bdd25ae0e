package ports

import (
	"context"

	"github.com/househunt/marketplace-api/internal/core/domain"
)

// CreateDisputeInput carries a report filed against a listing.
type CreateDisputeInput struct {
	ListingID        int64
	ReportedByUserID int64
	Reason           string
}

// ResolveDisputeInput carries a terminal transition request. Status must be
// resolved or dismissed.
type ResolveDisputeInput struct {
	DisputeID       int64
	Status          domain.DisputeStatus
	ResolutionNotes *string
}

// DisputeService defines use-case operations for disputes.
type DisputeService interface {
	Create(ctx context.Context, input CreateDisputeInput) (*domain.Dispute, error)
	// ListForUser applies OR-visibility: the caller sees disputes they
	// reported and disputes against their own listings.
	ListForUser(ctx context.Context, userID int64) ([]*domain.Dispute, error)
	// StartInvestigation moves an open dispute to investigating.
	StartInvestigation(ctx context.Context, disputeID int64) (*domain.Dispute, error)
	// Resolve closes the dispute. On resolved, the disputed listing is
	// suspended and a warning penalty is recorded against its owning agent;
	// on dismissed there are no side effects. Resolving an already-terminal
	// dispute fails with domain.ErrDisputeClosed.
	Resolve(ctx context.Context, input ResolveDisputeInput) (*domain.Dispute, error)
}
