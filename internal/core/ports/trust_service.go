package ports

import "context"

// TrustService decides whether a user may mutate listings. Authorize returns
// nil when allowed, domain.ErrAgentBanned for an active ban, or a
// *domain.AgentSuspendedError carrying the suspension end time. The check has
// no side effects and is idempotent for unchanged penalty state.
type TrustService interface {
	Authorize(ctx context.Context, userID int64) error
}
