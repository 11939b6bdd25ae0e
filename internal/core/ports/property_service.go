package ports

import (
	"context"

	"github.com/househunt/marketplace-api/internal/core/domain"
)

// CreatePropertyInput carries the data for registering a physical location.
type CreatePropertyInput struct {
	Address                string
	Latitude               *float64
	Longitude              *float64
	LandmarkName           *string
	DirectionsFromLandmark *string
	CreatedByUserID        int64
}

// PropertyPatch is a partial update of a property's descriptive fields. The
// identity (id, creator) is immutable.
type PropertyPatch struct {
	Address                *string
	Latitude               *float64
	Longitude              *float64
	LandmarkName           *string
	DirectionsFromLandmark *string
}

// IsEmpty reports whether the patch changes nothing.
func (p PropertyPatch) IsEmpty() bool {
	return p.Address == nil && p.Latitude == nil && p.Longitude == nil &&
		p.LandmarkName == nil && p.DirectionsFromLandmark == nil
}

// PropertyService defines use-case operations for properties.
type PropertyService interface {
	Create(ctx context.Context, input CreatePropertyInput) (*domain.Property, error)
	Get(ctx context.Context, id int64) (*domain.Property, error)
	List(ctx context.Context) ([]*domain.Property, error)
	Update(ctx context.Context, id int64, patch PropertyPatch) (*domain.Property, error)
}
