package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/househunt/marketplace-api/internal/core/domain"
)

// PenaltyRepository persists sanctions in Postgres. The active checks are
// narrow existence queries, not history scans.
type PenaltyRepository struct {
	db *gorm.DB
}

func NewPenaltyRepository(db *gorm.DB) *PenaltyRepository {
	return &PenaltyRepository{db: db}
}

func (r *PenaltyRepository) Create(ctx context.Context, p *domain.Penalty) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("create penalty: %w", err)
	}
	return nil
}

// HasActiveBan reports whether the user holds a ban that is indefinite
// (ends_at null) or not yet expired.
func (r *PenaltyRepository) HasActiveBan(ctx context.Context, userID int64, now time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Penalty{}).
		Where("user_id = ? AND type = ?", userID, domain.PenaltyBan).
		Where("ends_at IS NULL OR ends_at > ?", now).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check active ban: %w", err)
	}
	return count > 0, nil
}

// FindActiveSuspension returns the suspension ending furthest in the future,
// or nil when none is active. Unlike bans, a suspension without an end date
// never blocks.
func (r *PenaltyRepository) FindActiveSuspension(ctx context.Context, userID int64, now time.Time) (*domain.Penalty, error) {
	var penalty domain.Penalty
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND type = ?", userID, domain.PenaltySuspension).
		Where("ends_at IS NOT NULL AND ends_at > ?", now).
		Order("ends_at DESC").
		First(&penalty).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find active suspension: %w", err)
	}
	return &penalty, nil
}
