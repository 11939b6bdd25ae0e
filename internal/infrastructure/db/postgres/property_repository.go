package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/househunt/marketplace-api/internal/core/domain"
)

// PropertyRepository persists physical locations in Postgres.
type PropertyRepository struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

func (r *PropertyRepository) Create(ctx context.Context, p *domain.Property) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("create property: %w", err)
	}
	return nil
}

func (r *PropertyRepository) FindByID(ctx context.Context, id int64) (*domain.Property, error) {
	var property domain.Property
	if err := r.db.WithContext(ctx).First(&property, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("find property: %w", err)
	}
	return &property, nil
}

func (r *PropertyRepository) List(ctx context.Context) ([]*domain.Property, error) {
	var properties []*domain.Property
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&properties).Error; err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	return properties, nil
}

func (r *PropertyRepository) Save(ctx context.Context, p *domain.Property) error {
	if err := r.db.WithContext(ctx).Save(p).Error; err != nil {
		return fmt.Errorf("save property: %w", err)
	}
	return nil
}
