package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/househunt/marketplace-api/internal/api/metrics"
	"github.com/househunt/marketplace-api/internal/core/domain"
	"github.com/househunt/marketplace-api/internal/core/ports"
)

// TrustService gates listing mutations on the agent's penalty state.
type TrustService struct {
	penalties ports.PenaltyRepository
	logger    zerolog.Logger
	now       func() time.Time
}

func NewTrustService(penalties ports.PenaltyRepository, logger zerolog.Logger) *TrustService {
	return &TrustService{penalties: penalties, logger: logger, now: time.Now}
}

// Authorize checks the agent's standing. Bans are checked first: an active
// ban (no end date, or end date in the future) blocks outright. Then an
// active suspension (end date strictly in the future) blocks until it
// expires. Warnings never block.
func (s *TrustService) Authorize(ctx context.Context, userID int64) error {
	now := s.now().UTC()

	banned, err := s.penalties.HasActiveBan(ctx, userID, now)
	if err != nil {
		return err
	}
	if banned {
		metrics.TrustChecksTotal.WithLabelValues("banned").Inc()
		s.logger.Warn().Int64("user_id", userID).Msg("blocked banned agent")
		return domain.ErrAgentBanned
	}

	suspension, err := s.penalties.FindActiveSuspension(ctx, userID, now)
	if err != nil {
		return err
	}
	if suspension != nil && suspension.EndsAt != nil {
		metrics.TrustChecksTotal.WithLabelValues("suspended").Inc()
		s.logger.Warn().
			Int64("user_id", userID).
			Time("ends_at", *suspension.EndsAt).
			Msg("blocked suspended agent")
		return &domain.AgentSuspendedError{EndsAt: *suspension.EndsAt}
	}

	metrics.TrustChecksTotal.WithLabelValues("allowed").Inc()
	return nil
}
