package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/househunt/marketplace-api/internal/core/domain"
)

// LifecycleRepository persists tenant lifecycle records in Postgres: the
// one-to-one profile plus the append-and-list collections.
type LifecycleRepository struct {
	db *gorm.DB
}

func NewLifecycleRepository(db *gorm.DB) *LifecycleRepository {
	return &LifecycleRepository{db: db}
}

func (r *LifecycleRepository) GetProfile(ctx context.Context, userID int64) (*domain.TenantProfile, error) {
	var profile domain.TenantProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tenant profile: %w", err)
	}
	return &profile, nil
}

func (r *LifecycleRepository) CreateProfile(ctx context.Context, p *domain.TenantProfile) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("create tenant profile: %w", err)
	}
	return nil
}

func (r *LifecycleRepository) SaveProfile(ctx context.Context, p *domain.TenantProfile) error {
	if err := r.db.WithContext(ctx).Save(p).Error; err != nil {
		return fmt.Errorf("save tenant profile: %w", err)
	}
	return nil
}

func (r *LifecycleRepository) CreateSavedSearch(ctx context.Context, s *domain.SavedSearch) error {
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		return fmt.Errorf("create saved search: %w", err)
	}
	return nil
}

func (r *LifecycleRepository) ListSavedSearches(ctx context.Context, userID int64) ([]*domain.SavedSearch, error) {
	var searches []*domain.SavedSearch
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&searches).Error
	if err != nil {
		return nil, fmt.Errorf("list saved searches: %w", err)
	}
	return searches, nil
}

func (r *LifecycleRepository) CreateRentEntry(ctx context.Context, e *domain.RentEntry) error {
	if err := r.db.WithContext(ctx).Create(e).Error; err != nil {
		return fmt.Errorf("create rent entry: %w", err)
	}
	return nil
}

func (r *LifecycleRepository) ListRentEntries(ctx context.Context, userID int64) ([]*domain.RentEntry, error) {
	var entries []*domain.RentEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("list rent entries: %w", err)
	}
	return entries, nil
}

func (r *LifecycleRepository) CreateChecklist(ctx context.Context, c *domain.MoveChecklist) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return fmt.Errorf("create checklist: %w", err)
	}
	return nil
}

func (r *LifecycleRepository) ListChecklists(ctx context.Context, userID int64) ([]*domain.MoveChecklist, error) {
	var checklists []*domain.MoveChecklist
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&checklists).Error
	if err != nil {
		return nil, fmt.Errorf("list checklists: %w", err)
	}
	return checklists, nil
}
