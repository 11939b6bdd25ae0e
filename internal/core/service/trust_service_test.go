package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/househunt/marketplace-api/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub penalty repository
// ---------------------------------------------------------------------------

type stubPenaltyRepo struct {
	penalties []*domain.Penalty
	findErr   error
}

func (r *stubPenaltyRepo) Create(_ context.Context, p *domain.Penalty) error {
	clone := *p
	clone.ID = int64(len(r.penalties) + 1)
	r.penalties = append(r.penalties, &clone)
	return nil
}

func (r *stubPenaltyRepo) HasActiveBan(_ context.Context, userID int64, now time.Time) (bool, error) {
	if r.findErr != nil {
		return false, r.findErr
	}
	for _, p := range r.penalties {
		if p.UserID != userID || p.Type != domain.PenaltyBan {
			continue
		}
		if p.EndsAt == nil || p.EndsAt.After(now) {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubPenaltyRepo) FindActiveSuspension(_ context.Context, userID int64, now time.Time) (*domain.Penalty, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, p := range r.penalties {
		if p.UserID != userID || p.Type != domain.PenaltySuspension {
			continue
		}
		if p.EndsAt != nil && p.EndsAt.After(now) {
			clone := *p
			return &clone, nil
		}
	}
	return nil, nil
}

func timePtr(t time.Time) *time.Time { return &t }

func TestTrustService_ActiveBanBlocks(t *testing.T) {
	repo := &stubPenaltyRepo{penalties: []*domain.Penalty{
		{UserID: 7, Type: domain.PenaltyBan},
	}}
	svc := NewTrustService(repo, zerolog.Nop())

	err := svc.Authorize(context.Background(), 7)
	if !errors.Is(err, domain.ErrAgentBanned) {
		t.Fatalf("expected ErrAgentBanned, got %v", err)
	}
}

func TestTrustService_ExpiredBanAllows(t *testing.T) {
	repo := &stubPenaltyRepo{penalties: []*domain.Penalty{
		{UserID: 7, Type: domain.PenaltyBan, EndsAt: timePtr(time.Now().Add(-time.Hour))},
	}}
	svc := NewTrustService(repo, zerolog.Nop())

	if err := svc.Authorize(context.Background(), 7); err != nil {
		t.Fatalf("expected allow, got %v", err)
	}
}

func TestTrustService_ActiveSuspensionCarriesEnd(t *testing.T) {
	ends := time.Now().Add(48 * time.Hour).UTC()
	repo := &stubPenaltyRepo{penalties: []*domain.Penalty{
		{UserID: 7, Type: domain.PenaltySuspension, EndsAt: &ends},
	}}
	svc := NewTrustService(repo, zerolog.Nop())

	err := svc.Authorize(context.Background(), 7)
	var suspended *domain.AgentSuspendedError
	if !errors.As(err, &suspended) {
		t.Fatalf("expected AgentSuspendedError, got %v", err)
	}
	if !suspended.EndsAt.Equal(ends) {
		t.Fatalf("expected ends_at %v, got %v", ends, suspended.EndsAt)
	}
}

func TestTrustService_ExpiredSuspensionAllows(t *testing.T) {
	repo := &stubPenaltyRepo{penalties: []*domain.Penalty{
		{UserID: 7, Type: domain.PenaltySuspension, EndsAt: timePtr(time.Now().Add(-time.Minute))},
	}}
	svc := NewTrustService(repo, zerolog.Nop())

	if err := svc.Authorize(context.Background(), 7); err != nil {
		t.Fatalf("expected allow after suspension expiry, got %v", err)
	}
}

func TestTrustService_BanCheckedBeforeSuspension(t *testing.T) {
	ends := time.Now().Add(time.Hour)
	repo := &stubPenaltyRepo{penalties: []*domain.Penalty{
		{UserID: 7, Type: domain.PenaltySuspension, EndsAt: &ends},
		{UserID: 7, Type: domain.PenaltyBan},
	}}
	svc := NewTrustService(repo, zerolog.Nop())

	if err := svc.Authorize(context.Background(), 7); !errors.Is(err, domain.ErrAgentBanned) {
		t.Fatalf("ban should win over suspension, got %v", err)
	}
}

func TestTrustService_WarningsNeverBlock(t *testing.T) {
	repo := &stubPenaltyRepo{penalties: []*domain.Penalty{
		{UserID: 7, Type: domain.PenaltyWarning},
		{UserID: 7, Type: domain.PenaltyWarning},
	}}
	svc := NewTrustService(repo, zerolog.Nop())

	if err := svc.Authorize(context.Background(), 7); err != nil {
		t.Fatalf("warnings must not block, got %v", err)
	}
}

func TestTrustService_Idempotent(t *testing.T) {
	repo := &stubPenaltyRepo{penalties: []*domain.Penalty{
		{UserID: 7, Type: domain.PenaltyBan},
	}}
	svc := NewTrustService(repo, zerolog.Nop())

	for i := 0; i < 3; i++ {
		if err := svc.Authorize(context.Background(), 7); !errors.Is(err, domain.ErrAgentBanned) {
			t.Fatalf("call %d: expected ErrAgentBanned, got %v", i, err)
		}
	}
}
