package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/househunt/marketplace-api/internal/api/metrics"
	"github.com/househunt/marketplace-api/internal/core/domain"
	"github.com/househunt/marketplace-api/internal/core/ports"
)

// DisputeService implements the dispute lifecycle. Resolution is a guarded
// state transition: only open or investigating disputes can be closed, and
// closing with "resolved" suspends the disputed listing and records a warning
// penalty against its owning agent in the same transaction.
type DisputeService struct {
	disputes ports.DisputeRepository
	listings ports.ListingRepository
	logger   zerolog.Logger
	now      func() time.Time
}

func NewDisputeService(disputes ports.DisputeRepository, listings ports.ListingRepository, logger zerolog.Logger) *DisputeService {
	return &DisputeService{disputes: disputes, listings: listings, logger: logger, now: time.Now}
}

// Create files a dispute against a listing. The listing must exist; the
// dispute always enters open.
func (s *DisputeService) Create(ctx context.Context, input ports.CreateDisputeInput) (*domain.Dispute, error) {
	if _, err := s.listings.FindByID(ctx, input.ListingID); err != nil {
		return nil, err
	}

	dispute := &domain.Dispute{
		ListingID:        input.ListingID,
		ReportedByUserID: input.ReportedByUserID,
		Reason:           input.Reason,
		Status:           domain.DisputeOpen,
	}
	if err := s.disputes.Create(ctx, dispute); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("dispute_id", dispute.ID).
		Int64("listing_id", input.ListingID).
		Int64("reporter_id", input.ReportedByUserID).
		Msg("dispute opened")

	return dispute, nil
}

func (s *DisputeService) ListForUser(ctx context.Context, userID int64) ([]*domain.Dispute, error) {
	return s.disputes.ListForUser(ctx, userID)
}

// StartInvestigation moves an open dispute to investigating.
func (s *DisputeService) StartInvestigation(ctx context.Context, disputeID int64) (*domain.Dispute, error) {
	dispute, err := s.disputes.FindByID(ctx, disputeID)
	if err != nil {
		return nil, err
	}
	if dispute.Status.IsTerminal() {
		return nil, domain.ErrDisputeClosed
	}
	if !dispute.Status.CanTransitionTo(domain.DisputeInvestigating) {
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, dispute.Status, domain.DisputeInvestigating)
	}

	if err := s.disputes.UpdateStatus(ctx, disputeID, dispute.Status, domain.DisputeInvestigating); err != nil {
		return nil, err
	}
	return s.disputes.FindByID(ctx, disputeID)
}

// Resolve closes a dispute with a terminal status.
//
//  1. Validate the target: only resolved or dismissed are resolutions.
//  2. Load the dispute; a terminal dispute fails with ErrDisputeClosed.
//  3. Apply the resolution atomically. The repository guards the update on
//     the dispute still being open or investigating, so a concurrent resolver
//     loses cleanly without re-applying side effects.
//
// On resolved, the disputed listing's status is forced to suspended and one
// warning penalty is inserted for its current owning agent. On dismissed,
// only the timestamp and notes are recorded.
func (s *DisputeService) Resolve(ctx context.Context, input ports.ResolveDisputeInput) (*domain.Dispute, error) {
	if !input.Status.IsResolution() {
		return nil, domain.ErrInvalidResolution
	}

	dispute, err := s.disputes.FindByID(ctx, input.DisputeID)
	if err != nil {
		return nil, err
	}
	if dispute.Status.IsTerminal() {
		return nil, domain.ErrDisputeClosed
	}

	update := ports.DisputeResolutionUpdate{
		DisputeID:       input.DisputeID,
		Status:          input.Status,
		ResolvedAt:      s.now().UTC(),
		ResolutionNotes: input.ResolutionNotes,
	}

	if input.Status == domain.DisputeResolved {
		listing, err := s.listings.FindByID(ctx, dispute.ListingID)
		if err != nil {
			return nil, err
		}
		update.SuspendListing = true
		update.ListingID = listing.ID
		update.PenaltyUserID = listing.AgentID
		update.PenaltyReason = domain.DisputeWarningReason
	}

	resolved, err := s.disputes.ApplyResolution(ctx, update)
	if err != nil {
		return nil, err
	}

	metrics.DisputesResolvedTotal.WithLabelValues(string(input.Status)).Inc()
	if update.SuspendListing {
		metrics.PenaltiesIssuedTotal.WithLabelValues(string(domain.PenaltyWarning)).Inc()
	}

	s.logger.Info().
		Int64("dispute_id", input.DisputeID).
		Str("status", string(input.Status)).
		Bool("listing_suspended", update.SuspendListing).
		Msg("dispute closed")

	return resolved, nil
}
