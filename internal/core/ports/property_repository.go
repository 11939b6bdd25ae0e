package ports

import (
	"context"

	"github.com/househunt/marketplace-api/internal/core/domain"
)

// PropertyRepository defines persistence operations for physical properties.
type PropertyRepository interface {
	Create(ctx context.Context, p *domain.Property) error
	FindByID(ctx context.Context, id int64) (*domain.Property, error)
	List(ctx context.Context) ([]*domain.Property, error)
	Save(ctx context.Context, p *domain.Property) error
}
