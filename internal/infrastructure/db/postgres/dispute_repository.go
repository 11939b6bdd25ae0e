package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/househunt/marketplace-api/internal/core/domain"
	"github.com/househunt/marketplace-api/internal/core/ports"
)

// DisputeRepository persists disputes in Postgres. Terminal transitions are
// guarded by conditional updates so concurrent resolvers cannot both win.
type DisputeRepository struct {
	db *gorm.DB
}

func NewDisputeRepository(db *gorm.DB) *DisputeRepository {
	return &DisputeRepository{db: db}
}

func (r *DisputeRepository) Create(ctx context.Context, d *domain.Dispute) error {
	if err := r.db.WithContext(ctx).Create(d).Error; err != nil {
		return fmt.Errorf("create dispute: %w", err)
	}
	return nil
}

func (r *DisputeRepository) FindByID(ctx context.Context, id int64) (*domain.Dispute, error) {
	var dispute domain.Dispute
	if err := r.db.WithContext(ctx).First(&dispute, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDisputeNotFound
		}
		return nil, fmt.Errorf("find dispute: %w", err)
	}
	return &dispute, nil
}

// ListForUser applies OR-visibility: disputes the user reported, plus
// disputes filed against listings the user owns.
func (r *DisputeRepository) ListForUser(ctx context.Context, userID int64) ([]*domain.Dispute, error) {
	var disputes []*domain.Dispute
	err := r.db.WithContext(ctx).
		Joins("JOIN listings ON listings.id = disputes.listing_id").
		Where("disputes.reported_by_user_id = ? OR listings.agent_id = ?", userID, userID).
		Order("disputes.created_at DESC").
		Find(&disputes).Error
	if err != nil {
		return nil, fmt.Errorf("list disputes: %w", err)
	}
	return disputes, nil
}

// UpdateStatus moves the dispute between non-terminal statuses. The WHERE
// clause pins the expected current status; zero rows means someone else got
// there first.
func (r *DisputeRepository) UpdateStatus(ctx context.Context, id int64, from, to domain.DisputeStatus) error {
	res := r.db.WithContext(ctx).
		Model(&domain.Dispute{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return fmt.Errorf("update dispute status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrDisputeClosed
	}
	return nil
}

// ApplyResolution closes the dispute and applies its side effects in one
// transaction. The dispute update is conditional on the row still being open
// or investigating; when that guard fails nothing else runs.
func (r *DisputeRepository) ApplyResolution(ctx context.Context, update ports.DisputeResolutionUpdate) (*domain.Dispute, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.Dispute{}).
			Where("id = ? AND status IN ?", update.DisputeID,
				[]domain.DisputeStatus{domain.DisputeOpen, domain.DisputeInvestigating}).
			Updates(map[string]any{
				"status":           update.Status,
				"resolved_at":      update.ResolvedAt,
				"resolution_notes": update.ResolutionNotes,
			})
		if res.Error != nil {
			return fmt.Errorf("close dispute: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrDisputeClosed
		}

		if !update.SuspendListing {
			return nil
		}

		err := tx.Model(&domain.Listing{}).
			Where("id = ?", update.ListingID).
			Update("status", domain.ListingSuspended).Error
		if err != nil {
			return fmt.Errorf("suspend listing: %w", err)
		}

		reason := update.PenaltyReason
		penalty := domain.Penalty{
			UserID:    update.PenaltyUserID,
			Type:      domain.PenaltyWarning,
			ListingID: &update.ListingID,
			Reason:    &reason,
			StartsAt:  &update.ResolvedAt,
		}
		if err := tx.Create(&penalty).Error; err != nil {
			return fmt.Errorf("record penalty: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.FindByID(ctx, update.DisputeID)
}
