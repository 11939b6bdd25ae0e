package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/househunt/marketplace-api/internal/core/domain"
	"github.com/househunt/marketplace-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stubs
// ---------------------------------------------------------------------------

type stubListingRepo struct {
	byID     map[int64]*domain.Listing
	coAgents map[int64][]int64
	nextID   int64
}

func newStubListingRepo() *stubListingRepo {
	return &stubListingRepo{
		byID:     make(map[int64]*domain.Listing),
		coAgents: make(map[int64][]int64),
	}
}

func (r *stubListingRepo) Create(_ context.Context, l *domain.Listing) error {
	r.nextID++
	l.ID = r.nextID
	clone := *l
	r.byID[l.ID] = &clone
	return nil
}

func (r *stubListingRepo) FindByID(_ context.Context, id int64) (*domain.Listing, error) {
	l, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrListingNotFound
	}
	clone := *l
	return &clone, nil
}

func (r *stubListingRepo) List(_ context.Context, f ports.ListingFilter) ([]*domain.Listing, error) {
	var matched []*domain.Listing
	for _, l := range r.byID {
		if f.Status != "" && l.Status != f.Status {
			continue
		}
		if f.VerificationTier != "" && l.VerificationTier != f.VerificationTier {
			continue
		}
		if f.MinRent != nil && l.MonthlyRent < *f.MinRent {
			continue
		}
		if f.MaxRent != nil && l.MonthlyRent > *f.MaxRent {
			continue
		}
		if f.MinBedrooms != nil && (l.BedroomsCount == nil || *l.BedroomsCount < *f.MinBedrooms) {
			continue
		}
		clone := *l
		matched = append(matched, &clone)
	}
	return matched, nil
}

func (r *stubListingRepo) Save(_ context.Context, l *domain.Listing) error {
	if _, ok := r.byID[l.ID]; !ok {
		return domain.ErrListingNotFound
	}
	clone := *l
	r.byID[l.ID] = &clone
	return nil
}

func (r *stubListingRepo) AttachCoAgents(_ context.Context, listingID int64, agentIDs []int64) error {
	for _, id := range agentIDs {
		dup := false
		for _, existing := range r.coAgents[listingID] {
			if existing == id {
				dup = true
				break
			}
		}
		if !dup {
			r.coAgents[listingID] = append(r.coAgents[listingID], id)
		}
	}
	return nil
}

type stubPropertyRepo struct {
	byID   map[int64]*domain.Property
	nextID int64
}

func newStubPropertyRepo() *stubPropertyRepo {
	return &stubPropertyRepo{byID: make(map[int64]*domain.Property)}
}

func (r *stubPropertyRepo) Create(_ context.Context, p *domain.Property) error {
	r.nextID++
	p.ID = r.nextID
	clone := *p
	r.byID[p.ID] = &clone
	return nil
}

func (r *stubPropertyRepo) FindByID(_ context.Context, id int64) (*domain.Property, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrPropertyNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubPropertyRepo) List(_ context.Context) ([]*domain.Property, error) {
	var all []*domain.Property
	for _, p := range r.byID {
		clone := *p
		all = append(all, &clone)
	}
	return all, nil
}

func (r *stubPropertyRepo) Save(_ context.Context, p *domain.Property) error {
	clone := *p
	r.byID[p.ID] = &clone
	return nil
}

// stubTrust lets tests force a trust decision.
type stubTrust struct {
	err error
}

func (s stubTrust) Authorize(_ context.Context, _ int64) error { return s.err }

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

func newListingFixture(t *testing.T) (*ListingService, *stubListingRepo, *stubPropertyRepo) {
	t.Helper()
	listings := newStubListingRepo()
	properties := newStubPropertyRepo()
	svc := NewListingService(listings, properties, stubTrust{}, zerolog.Nop())
	return svc, listings, properties
}

func seedProperty(t *testing.T, repo *stubPropertyRepo, lat, lng *float64) int64 {
	t.Helper()
	p := &domain.Property{Address: "12 Arcadia Grove", Latitude: lat, Longitude: lng, CreatedByUserID: 1}
	if err := repo.Create(context.Background(), p); err != nil {
		t.Fatalf("seed property: %v", err)
	}
	return p.ID
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func TestListingService_Create_TotalPackage(t *testing.T) {
	svc, _, properties := newListingFixture(t)
	propertyID := seedProperty(t, properties, nil, nil)

	listing, err := svc.Create(context.Background(), ports.CreateListingInput{
		AgentID:        3,
		PropertyID:     propertyID,
		Title:          "2-bed flat",
		MonthlyRent:    100000,
		AgencyFee:      floatPtr(20000),
		LegalFee:       floatPtr(10000),
		CautionDeposit: floatPtr(50000),
		ServiceCharge:  floatPtr(5000),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if got := listing.TotalPackage(); got != 185000 {
		t.Fatalf("expected total package 185000, got %v", got)
	}
}

func TestListingService_Create_TotalPackageRentOnly(t *testing.T) {
	svc, _, properties := newListingFixture(t)
	propertyID := seedProperty(t, properties, nil, nil)

	listing, err := svc.Create(context.Background(), ports.CreateListingInput{
		AgentID:     3,
		PropertyID:  propertyID,
		Title:       "Studio",
		MonthlyRent: 75000,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if got := listing.TotalPackage(); got != 75000 {
		t.Fatalf("expected total package 75000 (rent only), got %v", got)
	}
}

func TestListingService_Create_UnknownPropertyFails(t *testing.T) {
	svc, _, _ := newListingFixture(t)

	_, err := svc.Create(context.Background(), ports.CreateListingInput{
		AgentID:     3,
		PropertyID:  404,
		Title:       "Ghost house",
		MonthlyRent: 1,
	})
	if !errors.Is(err, domain.ErrPropertyNotFound) {
		t.Fatalf("expected ErrPropertyNotFound, got %v", err)
	}
}

func TestListingService_Create_BlockedByTrust(t *testing.T) {
	listings := newStubListingRepo()
	properties := newStubPropertyRepo()
	svc := NewListingService(listings, properties, stubTrust{err: domain.ErrAgentBanned}, zerolog.Nop())
	propertyID := seedProperty(t, properties, nil, nil)

	_, err := svc.Create(context.Background(), ports.CreateListingInput{
		AgentID:     3,
		PropertyID:  propertyID,
		Title:       "Blocked",
		MonthlyRent: 1,
	})
	if !errors.Is(err, domain.ErrAgentBanned) {
		t.Fatalf("expected ErrAgentBanned, got %v", err)
	}
	if len(listings.byID) != 0 {
		t.Fatalf("no listing should be created when trust check fails")
	}
}

func TestListingService_Create_DuplicateCoAgentsIgnored(t *testing.T) {
	svc, listings, properties := newListingFixture(t)
	propertyID := seedProperty(t, properties, nil, nil)

	listing, err := svc.Create(context.Background(), ports.CreateListingInput{
		AgentID:     3,
		PropertyID:  propertyID,
		Title:       "Shared mandate",
		MonthlyRent: 50000,
		CoAgentIDs:  []int64{8, 8, 9},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if got := listings.coAgents[listing.ID]; len(got) != 2 {
		t.Fatalf("expected 2 distinct co-agents, got %v", got)
	}
}

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func TestListingService_Update_NotOwnerForbidden(t *testing.T) {
	svc, _, properties := newListingFixture(t)
	propertyID := seedProperty(t, properties, nil, nil)

	listing, err := svc.Create(context.Background(), ports.CreateListingInput{
		AgentID: 3, PropertyID: propertyID, Title: "Mine", MonthlyRent: 1000,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	title := "Hijacked"
	_, err = svc.Update(context.Background(), listing.ID, 99, ports.ListingPatch{Title: &title})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-owner, got %v", err)
	}
}

func TestListingService_Update_PartialMerge(t *testing.T) {
	svc, _, properties := newListingFixture(t)
	propertyID := seedProperty(t, properties, nil, nil)

	listing, err := svc.Create(context.Background(), ports.CreateListingInput{
		AgentID:       3,
		PropertyID:    propertyID,
		Title:         "Before",
		MonthlyRent:   1000,
		BedroomsCount: intPtr(2),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	rent := 2000.0
	updated, err := svc.Update(context.Background(), listing.ID, 3, ports.ListingPatch{MonthlyRent: &rent})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.MonthlyRent != 2000 {
		t.Fatalf("rent not updated: %v", updated.MonthlyRent)
	}
	if updated.Title != "Before" || updated.BedroomsCount == nil || *updated.BedroomsCount != 2 {
		t.Fatalf("untouched fields must survive a partial update: %+v", updated)
	}
}

func TestListingService_Update_EmptyPatchRejected(t *testing.T) {
	svc, _, properties := newListingFixture(t)
	propertyID := seedProperty(t, properties, nil, nil)

	listing, _ := svc.Create(context.Background(), ports.CreateListingInput{
		AgentID: 3, PropertyID: propertyID, Title: "x", MonthlyRent: 1,
	})

	_, err := svc.Update(context.Background(), listing.ID, 3, ports.ListingPatch{})
	if !errors.Is(err, domain.ErrNoFields) {
		t.Fatalf("expected ErrNoFields, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Search
// ---------------------------------------------------------------------------

func TestListingService_Search_DefaultsToActive(t *testing.T) {
	svc, listings, properties := newListingFixture(t)
	propertyID := seedProperty(t, properties, nil, nil)

	active, _ := svc.Create(context.Background(), ports.CreateListingInput{
		AgentID: 3, PropertyID: propertyID, Title: "active", MonthlyRent: 1,
	})
	suspended, _ := svc.Create(context.Background(), ports.CreateListingInput{
		AgentID: 3, PropertyID: propertyID, Title: "suspended", MonthlyRent: 1,
	})
	stored := listings.byID[suspended.ID]
	stored.Status = domain.ListingSuspended

	results, err := svc.Search(context.Background(), ports.SearchListingsInput{})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 1 || results[0].ID != active.ID {
		t.Fatalf("default search must return only active listings, got %d", len(results))
	}

	// Explicit status overrides the default.
	results, err = svc.Search(context.Background(), ports.SearchListingsInput{
		Filter: ports.ListingFilter{Status: domain.ListingSuspended},
	})
	if err != nil {
		t.Fatalf("search suspended: %v", err)
	}
	if len(results) != 1 || results[0].ID != suspended.ID {
		t.Fatalf("explicit status filter must override the default")
	}
}

func TestListingService_Search_GeoRadius(t *testing.T) {
	svc, listings, properties := newListingFixture(t)

	nearID := seedProperty(t, properties, floatPtr(6.5244), floatPtr(3.3792))
	// ~0.46 degrees of longitude ≈ 51 km with the planar approximation.
	farID := seedProperty(t, properties, floatPtr(6.5244), floatPtr(3.8400))
	noCoordsID := seedProperty(t, properties, nil, nil)

	for _, propertyID := range []int64{nearID, farID, noCoordsID} {
		l, err := svc.Create(context.Background(), ports.CreateListingInput{
			AgentID: 3, PropertyID: propertyID, Title: "geo", MonthlyRent: 1,
		})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		property, _ := properties.FindByID(context.Background(), propertyID)
		listings.byID[l.ID].Property = property
	}

	results, err := svc.Search(context.Background(), ports.SearchListingsInput{
		Geo: &ports.GeoFilter{Lat: 6.5244, Lng: 3.3792, RadiusKm: 1},
	})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 1 || results[0].Property.ID != nearID {
		t.Fatalf("expected only the co-located listing within 1km, got %d results", len(results))
	}

	results, err = svc.Search(context.Background(), ports.SearchListingsInput{
		Geo: &ports.GeoFilter{Lat: 6.5244, Lng: 3.3792, RadiusKm: 10},
	})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	for _, l := range results {
		if l.Property.ID == farID {
			t.Fatalf("listing ~50km away must be excluded at radius 10km")
		}
		if l.Property.ID == noCoordsID {
			t.Fatalf("listing without coordinates must never pass a geo filter")
		}
	}
}

// ---------------------------------------------------------------------------
// Media
// ---------------------------------------------------------------------------

func TestListingService_AttachMedia_Appends(t *testing.T) {
	svc, _, properties := newListingFixture(t)
	propertyID := seedProperty(t, properties, nil, nil)

	listing, _ := svc.Create(context.Background(), ports.CreateListingInput{
		AgentID: 3, PropertyID: propertyID, Title: "x", MonthlyRent: 1,
		MediaURLs: []string{"https://cdn.example.com/a.jpg"},
	})

	urls, err := svc.AttachMedia(context.Background(), listing.ID, 3, []string{"https://cdn.example.com/b.jpg"})
	if err != nil {
		t.Fatalf("attach: %v", err)
	}
	if len(urls) != 2 || urls[0] != "https://cdn.example.com/a.jpg" || urls[1] != "https://cdn.example.com/b.jpg" {
		t.Fatalf("media must append in order, got %v", urls)
	}

	if _, err := svc.AttachMedia(context.Background(), listing.ID, 99, []string{"https://cdn.example.com/c.jpg"}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-owner, got %v", err)
	}
}
