package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/househunt/marketplace-api/internal/core/domain"
	"github.com/househunt/marketplace-api/internal/core/ports"
)

type stubAuthService struct {
	registerFn    func(ctx context.Context, input ports.RegisterInput) (string, *domain.User, error)
	loginFn       func(ctx context.Context, email, password string) (string, *domain.User, error)
	meFn          func(ctx context.Context, userID int64) (*domain.User, error)
	updateMeFn    func(ctx context.Context, userID int64, patch ports.UserPatch) (*domain.User, error)
	updateRolesFn func(ctx context.Context, userID int64, patch ports.RolePatch) (*domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, input ports.RegisterInput) (string, *domain.User, error) {
	return s.registerFn(ctx, input)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Me(ctx context.Context, userID int64) (*domain.User, error) {
	return s.meFn(ctx, userID)
}

func (s *stubAuthService) UpdateMe(ctx context.Context, userID int64, patch ports.UserPatch) (*domain.User, error) {
	return s.updateMeFn(ctx, userID, patch)
}

func (s *stubAuthService) UpdateRoles(ctx context.Context, userID int64, patch ports.RolePatch) (*domain.User, error) {
	return s.updateRolesFn(ctx, userID, patch)
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		registerFn: func(_ context.Context, input ports.RegisterInput) (string, *domain.User, error) {
			if input.Email != "alice@example.com" || !input.IsAgent {
				t.Fatalf("unexpected input: %+v", input)
			}
			return "tok", &domain.User{ID: 1, Email: input.Email, FullName: input.FullName, IsTenant: true, IsAgent: true}, nil
		},
	}
	h := NewAuthHandler(stub)

	body := strings.NewReader(`{"email":"alice@example.com","password":"sup3rsecret","full_name":"Alice","is_agent":true}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/register", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "tok" {
		t.Fatalf("expected token in response")
	}
	user, ok := resp["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user in response")
	}
	if user["email"] != "alice@example.com" || user["is_agent"] != true {
		t.Fatalf("unexpected user payload: %+v", user)
	}
	if _, leaked := user["password_hash"]; leaked {
		t.Fatalf("password hash must never be serialized")
	}
}

func TestAuthHandler_Register_ValidationFails(t *testing.T) {
	e := newEcho()
	h := NewAuthHandler(&stubAuthService{
		registerFn: func(context.Context, ports.RegisterInput) (string, *domain.User, error) {
			t.Fatalf("service must not be called on invalid input")
			return "", nil, nil
		},
	})

	// Password below the minimum length.
	body := strings.NewReader(`{"email":"alice@example.com","password":"short","full_name":"Alice"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/register", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Register(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Login_PropagatesDomainError(t *testing.T) {
	e := newEcho()
	h := NewAuthHandler(&stubAuthService{
		loginFn: func(context.Context, string, string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	})

	body := strings.NewReader(`{"email":"alice@example.com","password":"wrongpass"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Domain errors pass through untouched; the central error handler owns
	// the status mapping.
	if err := h.Login(c); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Me_RequiresIdentity(t *testing.T) {
	e := newEcho()
	h := NewAuthHandler(&stubAuthService{
		meFn: func(context.Context, int64) (*domain.User, error) {
			t.Fatalf("service must not be called without identity")
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Me(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuthHandler_UpdateRoles(t *testing.T) {
	e := newEcho()
	h := NewAuthHandler(&stubAuthService{
		updateRolesFn: func(_ context.Context, userID int64, patch ports.RolePatch) (*domain.User, error) {
			if userID != 7 {
				t.Fatalf("expected identity user id, got %d", userID)
			}
			if patch.IsAgent == nil || !*patch.IsAgent || patch.IsLandlord != nil {
				t.Fatalf("unexpected patch: %+v", patch)
			}
			return &domain.User{ID: 7, IsTenant: true, IsAgent: true}, nil
		},
	})

	body := strings.NewReader(`{"is_agent":true}`)
	req := httptest.NewRequest(http.MethodPatch, "/auth/me/roles", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(identityKey, &ports.Identity{UserID: 7, IsTenant: true})

	if err := h.UpdateRoles(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
