package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/househunt/marketplace-api/internal/core/domain"
)

// ReviewRepository persists listing reviews in Postgres. The unique
// (listing, tenant) index is the authority on one-review-per-tenant; the
// service's existence check is only a fast path.
type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrReviewExists
		}
		return fmt.Errorf("create review: %w", err)
	}
	return nil
}

func (r *ReviewRepository) ExistsForTenant(ctx context.Context, listingID, tenantID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Review{}).
		Where("listing_id = ? AND tenant_id = ?", listingID, tenantID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check review exists: %w", err)
	}
	return count > 0, nil
}

func (r *ReviewRepository) ListByListing(ctx context.Context, listingID int64) ([]*domain.Review, error) {
	var reviews []*domain.Review
	err := r.db.WithContext(ctx).
		Preload("Tenant").
		Where("listing_id = ?", listingID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}
