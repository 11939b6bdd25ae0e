package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/datatypes"

	"github.com/househunt/marketplace-api/internal/core/domain"
	"github.com/househunt/marketplace-api/internal/core/ports"
)

// LifecycleService implements tenant lifecycle tracking: the profile, the
// lease reminder, and the append-and-list collections.
type LifecycleService struct {
	repo   ports.LifecycleRepository
	logger zerolog.Logger
	now    func() time.Time
}

func NewLifecycleService(repo ports.LifecycleRepository, logger zerolog.Logger) *LifecycleService {
	return &LifecycleService{repo: repo, logger: logger, now: time.Now}
}

// GetProfile returns the tenant's profile, creating it on first access with
// is_searching defaulting to true.
func (s *LifecycleService) GetProfile(ctx context.Context, userID int64) (*domain.TenantProfile, error) {
	profile, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile != nil {
		return profile, nil
	}

	profile = &domain.TenantProfile{UserID: userID, IsSearching: true}
	if err := s.repo.CreateProfile(ctx, profile); err != nil {
		return nil, err
	}
	s.logger.Info().Int64("user_id", userID).Msg("tenant profile created")
	return profile, nil
}

// FindProfile is the read-only companion to GetProfile: it returns nil when
// the user has never touched their profile instead of creating one.
func (s *LifecycleService) FindProfile(ctx context.Context, userID int64) (*domain.TenantProfile, error) {
	return s.repo.GetProfile(ctx, userID)
}

// UpdateProfile applies a typed patch, creating the profile first when the
// tenant has none yet.
func (s *LifecycleService) UpdateProfile(ctx context.Context, userID int64, patch ports.ProfilePatch) (*domain.TenantProfile, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return profile, nil
	}

	if patch.IsSearching != nil {
		profile.IsSearching = *patch.IsSearching
	}
	if patch.SecuredListingID != nil {
		profile.SecuredListingID = patch.SecuredListingID
	}
	if patch.LeaseEndDate != nil {
		profile.LeaseEndDate = patch.LeaseEndDate
	}
	if patch.PreferredAreas != nil {
		profile.PreferredAreas = patch.PreferredAreas
	}
	if patch.MinBudget != nil {
		profile.MinBudget = patch.MinBudget
	}
	if patch.MaxBudget != nil {
		profile.MaxBudget = patch.MaxBudget
	}
	if patch.BedroomsWanted != nil {
		profile.BedroomsWanted = patch.BedroomsWanted
	}

	if err := s.repo.SaveProfile(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// LeaseReminder recomputes the reminder for the tenant. It is non-nil only
// when a profile exists, the tenant is settled, and the lease ends within
// three months. No reminder state is persisted.
func (s *LifecycleService) LeaseReminder(ctx context.Context, userID int64) (*domain.LeaseReminder, error) {
	profile, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	return domain.LeaseReminderFor(profile, s.now().UTC()), nil
}

func (s *LifecycleService) CreateSavedSearch(ctx context.Context, input ports.CreateSavedSearchInput) (*domain.SavedSearch, error) {
	name := input.Name
	if name == "" {
		name = "Saved search"
	}
	search := &domain.SavedSearch{
		UserID:  input.UserID,
		Name:    name,
		Filters: encodePayload(input.Filters),
	}
	if err := s.repo.CreateSavedSearch(ctx, search); err != nil {
		return nil, err
	}
	return search, nil
}

func (s *LifecycleService) ListSavedSearches(ctx context.Context, userID int64) ([]*domain.SavedSearch, error) {
	return s.repo.ListSavedSearches(ctx, userID)
}

func (s *LifecycleService) CreateRentEntry(ctx context.Context, input ports.CreateRentEntryInput) (*domain.RentEntry, error) {
	entry := &domain.RentEntry{
		UserID:      input.UserID,
		ListingID:   input.ListingID,
		Amount:      input.Amount,
		PeriodStart: input.PeriodStart,
		PeriodEnd:   input.PeriodEnd,
		Note:        input.Note,
	}
	if err := s.repo.CreateRentEntry(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *LifecycleService) ListRentEntries(ctx context.Context, userID int64) ([]*domain.RentEntry, error) {
	return s.repo.ListRentEntries(ctx, userID)
}

func (s *LifecycleService) CreateChecklist(ctx context.Context, input ports.CreateChecklistInput) (*domain.MoveChecklist, error) {
	items := input.Items
	if items == nil {
		items = []any{}
	}
	checklist := &domain.MoveChecklist{
		UserID:    input.UserID,
		ListingID: input.ListingID,
		Type:      input.Type,
		Items:     encodePayload(items),
	}
	if err := s.repo.CreateChecklist(ctx, checklist); err != nil {
		return nil, err
	}
	return checklist, nil
}

func (s *LifecycleService) ListChecklists(ctx context.Context, userID int64) ([]*domain.MoveChecklist, error) {
	return s.repo.ListChecklists(ctx, userID)
}

// encodePayload serializes an opaque structured payload. The payloads are
// not validated beyond being well-formed.
func encodePayload(v any) datatypes.JSON {
	if v == nil {
		return nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return raw
}
