package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/househunt/marketplace-api/internal/core/domain"
	"github.com/househunt/marketplace-api/internal/core/ports"
)

// ListingRepository persists listings and their co-agent associations in
// Postgres.
type ListingRepository struct {
	db *gorm.DB
}

func NewListingRepository(db *gorm.DB) *ListingRepository {
	return &ListingRepository{db: db}
}

func (r *ListingRepository) Create(ctx context.Context, l *domain.Listing) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(l).Error; err != nil {
		return fmt.Errorf("create listing: %w", err)
	}
	return nil
}

func (r *ListingRepository) FindByID(ctx context.Context, id int64) (*domain.Listing, error) {
	var listing domain.Listing
	err := r.db.WithContext(ctx).
		Preload("Property").
		Preload("Agent").
		Preload("CoAgents.Agent").
		First(&listing, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrListingNotFound
		}
		return nil, fmt.Errorf("find listing: %w", err)
	}
	return &listing, nil
}

func (r *ListingRepository) List(ctx context.Context, filter ports.ListingFilter) ([]*domain.Listing, error) {
	q := r.db.WithContext(ctx).
		Preload("Property").
		Preload("Agent").
		Order("updated_at DESC")

	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.VerificationTier != "" {
		q = q.Where("verification_tier = ?", filter.VerificationTier)
	}
	if filter.MinRent != nil {
		q = q.Where("monthly_rent >= ?", *filter.MinRent)
	}
	if filter.MaxRent != nil {
		q = q.Where("monthly_rent <= ?", *filter.MaxRent)
	}
	if filter.MinBedrooms != nil {
		q = q.Where("bedrooms_count >= ?", *filter.MinBedrooms)
	}

	var listings []*domain.Listing
	if err := q.Find(&listings).Error; err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}
	return listings, nil
}

func (r *ListingRepository) Save(ctx context.Context, l *domain.Listing) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(l).Error; err != nil {
		return fmt.Errorf("save listing: %w", err)
	}
	return nil
}

// AttachCoAgents inserts co-agent rows; the unique (listing, agent) index
// turns re-attachment into a no-op via ON CONFLICT DO NOTHING.
func (r *ListingRepository) AttachCoAgents(ctx context.Context, listingID int64, agentIDs []int64) error {
	if len(agentIDs) == 0 {
		return nil
	}

	rows := make([]domain.ListingAgent, 0, len(agentIDs))
	for _, agentID := range agentIDs {
		rows = append(rows, domain.ListingAgent{
			ListingID: listingID,
			AgentID:   agentID,
			Role:      domain.CoAgentRole,
		})
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error
	if err != nil {
		return fmt.Errorf("attach co-agents: %w", err)
	}
	return nil
}
