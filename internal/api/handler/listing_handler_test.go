package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/househunt/marketplace-api/internal/core/domain"
	"github.com/househunt/marketplace-api/internal/core/ports"
)

type stubListingService struct {
	createFn func(ctx context.Context, input ports.CreateListingInput) (*domain.Listing, error)
	getFn    func(ctx context.Context, id int64) (*domain.Listing, error)
	searchFn func(ctx context.Context, input ports.SearchListingsInput) ([]*domain.Listing, error)
	updateFn func(ctx context.Context, id, agentID int64, patch ports.ListingPatch) (*domain.Listing, error)
	mediaFn  func(ctx context.Context, id, agentID int64, urls []string) ([]string, error)
}

func (s *stubListingService) Create(ctx context.Context, input ports.CreateListingInput) (*domain.Listing, error) {
	return s.createFn(ctx, input)
}

func (s *stubListingService) Get(ctx context.Context, id int64) (*domain.Listing, error) {
	return s.getFn(ctx, id)
}

func (s *stubListingService) Search(ctx context.Context, input ports.SearchListingsInput) ([]*domain.Listing, error) {
	return s.searchFn(ctx, input)
}

func (s *stubListingService) Update(ctx context.Context, id, agentID int64, patch ports.ListingPatch) (*domain.Listing, error) {
	return s.updateFn(ctx, id, agentID, patch)
}

func (s *stubListingService) AttachMedia(ctx context.Context, id, agentID int64, urls []string) ([]string, error) {
	return s.mediaFn(ctx, id, agentID, urls)
}

func feePtr(v float64) *float64 { return &v }

func TestListingHandler_Create_ReturnsDerivedTotal(t *testing.T) {
	e := newEcho()
	stub := &stubListingService{
		createFn: func(_ context.Context, input ports.CreateListingInput) (*domain.Listing, error) {
			if input.AgentID != 3 {
				t.Fatalf("agent id must come from identity, got %d", input.AgentID)
			}
			return &domain.Listing{
				ID: 1, AgentID: 3, PropertyID: input.PropertyID, Title: input.Title,
				MonthlyRent: 100000, AgencyFee: feePtr(20000), LegalFee: feePtr(10000),
				CautionDeposit: feePtr(50000), ServiceCharge: feePtr(5000),
				Status: domain.ListingActive,
			}, nil
		},
	}
	h := NewListingHandler(stub)

	body := strings.NewReader(`{"property_id":9,"title":"2 bed flat","monthly_rent":100000}`)
	req := httptest.NewRequest(http.MethodPost, "/listings", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(identityKey, &ports.Identity{UserID: 3, IsTenant: true, IsAgent: true})

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["total_package"] != float64(185000) {
		t.Fatalf("expected total_package 185000, got %v", resp["total_package"])
	}
}

func TestListingHandler_Create_RejectsInvalidBody(t *testing.T) {
	e := newEcho()
	h := NewListingHandler(&stubListingService{
		createFn: func(context.Context, ports.CreateListingInput) (*domain.Listing, error) {
			t.Fatalf("service must not be called on invalid input")
			return nil, nil
		},
	})

	// Missing rent and title.
	body := strings.NewReader(`{"property_id":9}`)
	req := httptest.NewRequest(http.MethodPost, "/listings", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(identityKey, &ports.Identity{UserID: 3, IsAgent: true})

	err := h.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func searchContext(e *echo.Echo, query url.Values) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/listings?"+query.Encode(), nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestListingHandler_Search_ForwardsFilters(t *testing.T) {
	e := newEcho()
	stub := &stubListingService{
		searchFn: func(_ context.Context, input ports.SearchListingsInput) ([]*domain.Listing, error) {
			if input.Filter.MinRent == nil || *input.Filter.MinRent != 50000 {
				t.Fatalf("minRent not forwarded: %+v", input.Filter)
			}
			if input.Filter.MinBedrooms == nil || *input.Filter.MinBedrooms != 2 {
				t.Fatalf("minBedrooms not forwarded: %+v", input.Filter)
			}
			if input.Geo == nil || input.Geo.RadiusKm != 5 {
				t.Fatalf("geo filter not forwarded: %+v", input.Geo)
			}
			return []*domain.Listing{}, nil
		},
	}
	h := NewListingHandler(stub)

	q := url.Values{}
	q.Set("minRent", "50000")
	q.Set("minBedrooms", "2")
	q.Set("lat", "6.5244")
	q.Set("lng", "3.3792")
	q.Set("radiusKm", "5")
	c, rec := searchContext(e, q)

	if err := h.Search(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestListingHandler_Search_GeoParamsAllOrNothing(t *testing.T) {
	e := newEcho()
	h := NewListingHandler(&stubListingService{
		searchFn: func(context.Context, ports.SearchListingsInput) ([]*domain.Listing, error) {
			t.Fatalf("service must not be called on invalid input")
			return nil, nil
		},
	})

	q := url.Values{}
	q.Set("lat", "6.5244") // lng and radiusKm missing
	c, _ := searchContext(e, q)

	err := h.Search(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestListingHandler_Update_PropagatesOwnership(t *testing.T) {
	e := newEcho()
	h := NewListingHandler(&stubListingService{
		updateFn: func(_ context.Context, id, agentID int64, patch ports.ListingPatch) (*domain.Listing, error) {
			if id != 42 || agentID != 3 {
				t.Fatalf("wrong ids: listing=%d agent=%d", id, agentID)
			}
			if patch.MonthlyRent == nil || *patch.MonthlyRent != 120000 {
				t.Fatalf("patch not mapped: %+v", patch)
			}
			return nil, domain.ErrForbidden
		},
	})

	body := strings.NewReader(`{"monthly_rent":120000}`)
	req := httptest.NewRequest(http.MethodPatch, "/listings/42", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("42")
	c.Set(identityKey, &ports.Identity{UserID: 3, IsAgent: true})

	if err := h.Update(c); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden passthrough, got %v", err)
	}
}

func TestListingHandler_AttachMedia(t *testing.T) {
	e := newEcho()
	h := NewListingHandler(&stubListingService{
		mediaFn: func(_ context.Context, id, agentID int64, urls []string) ([]string, error) {
			if id != 42 || agentID != 3 || len(urls) != 1 {
				t.Fatalf("wrong args: %d %d %v", id, agentID, urls)
			}
			return []string{"https://cdn.example.com/a.jpg", urls[0]}, nil
		},
	})

	body := strings.NewReader(`{"urls":["https://cdn.example.com/b.jpg"]}`)
	req := httptest.NewRequest(http.MethodPost, "/listings/42/media", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("42")
	c.Set(identityKey, &ports.Identity{UserID: 3, IsAgent: true})

	if err := h.AttachMedia(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp mediaResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.MediaURLs) != 2 || resp.MediaURLs[1] != "https://cdn.example.com/b.jpg" {
		t.Fatalf("unexpected media payload: %v", resp.MediaURLs)
	}
}
