package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/househunt/marketplace-api/internal/core/domain"
	"github.com/househunt/marketplace-api/internal/core/ports"
)

// PropertyService implements CRUD for physical properties.
type PropertyService struct {
	properties ports.PropertyRepository
	logger     zerolog.Logger
}

func NewPropertyService(properties ports.PropertyRepository, logger zerolog.Logger) *PropertyService {
	return &PropertyService{properties: properties, logger: logger}
}

func (s *PropertyService) Create(ctx context.Context, input ports.CreatePropertyInput) (*domain.Property, error) {
	property := &domain.Property{
		Address:                input.Address,
		Latitude:               input.Latitude,
		Longitude:              input.Longitude,
		LandmarkName:           input.LandmarkName,
		DirectionsFromLandmark: input.DirectionsFromLandmark,
		CreatedByUserID:        input.CreatedByUserID,
	}
	if err := s.properties.Create(ctx, property); err != nil {
		s.logger.Error().Err(err).Int64("user_id", input.CreatedByUserID).Msg("failed to create property")
		return nil, err
	}
	s.logger.Info().Int64("property_id", property.ID).Msg("property created")
	return property, nil
}

func (s *PropertyService) Get(ctx context.Context, id int64) (*domain.Property, error) {
	return s.properties.FindByID(ctx, id)
}

func (s *PropertyService) List(ctx context.Context) ([]*domain.Property, error) {
	return s.properties.List(ctx)
}

// Update applies a typed patch to the property's descriptive fields.
func (s *PropertyService) Update(ctx context.Context, id int64, patch ports.PropertyPatch) (*domain.Property, error) {
	if patch.IsEmpty() {
		return nil, domain.ErrNoFields
	}
	property, err := s.properties.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Address != nil {
		property.Address = *patch.Address
	}
	if patch.Latitude != nil {
		property.Latitude = patch.Latitude
	}
	if patch.Longitude != nil {
		property.Longitude = patch.Longitude
	}
	if patch.LandmarkName != nil {
		property.LandmarkName = patch.LandmarkName
	}
	if patch.DirectionsFromLandmark != nil {
		property.DirectionsFromLandmark = patch.DirectionsFromLandmark
	}

	if err := s.properties.Save(ctx, property); err != nil {
		return nil, err
	}
	return property, nil
}
