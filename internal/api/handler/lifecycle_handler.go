package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/househunt/marketplace-api/internal/core/domain"
	"github.com/househunt/marketplace-api/internal/core/ports"
)

// LifecycleHandler handles HTTP requests for tenant lifecycle tracking.
type LifecycleHandler struct {
	service ports.LifecycleService
}

func NewLifecycleHandler(service ports.LifecycleService) *LifecycleHandler {
	return &LifecycleHandler{service: service}
}

type updateProfileRequest struct {
	IsSearching      *bool      `json:"is_searching"`
	SecuredListingID *int64     `json:"secured_listing_id" validate:"omitempty,gt=0"`
	LeaseEndDate     *time.Time `json:"lease_end_date"`
	PreferredAreas   *string    `json:"preferred_areas"`
	MinBudget        *float64   `json:"min_budget"         validate:"omitempty,gte=0"`
	MaxBudget        *float64   `json:"max_budget"         validate:"omitempty,gte=0"`
	BedroomsWanted   *int       `json:"bedrooms_wanted"    validate:"omitempty,gte=0"`
}

type createSavedSearchRequest struct {
	Name    string         `json:"name"`
	Filters map[string]any `json:"filters"`
}

type createRentEntryRequest struct {
	ListingID   *int64     `json:"listing_id"   validate:"omitempty,gt=0"`
	Amount      float64    `json:"amount"       validate:"required,gt=0"`
	PeriodStart *time.Time `json:"period_start"`
	PeriodEnd   *time.Time `json:"period_end"`
	Note        *string    `json:"note"`
}

type createChecklistRequest struct {
	ListingID *int64 `json:"listing_id" validate:"omitempty,gt=0"`
	Type      string `json:"type"       validate:"required,oneof=move_in move_out"`
	Items     []any  `json:"items"`
}

type leaseReminderResponse struct {
	Reminder *domain.LeaseReminder `json:"reminder"`
}

// GetProfile returns the caller's tenant profile, creating it on first
// access.
//
// @Summary      Get tenant profile
// @Tags         lifecycle
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.TenantProfile
// @Router       /lifecycle/profile [get]
func (h *LifecycleHandler) GetProfile(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	profile, err := h.service.GetProfile(c.Request().Context(), identity.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// UpdateProfile partially updates the caller's tenant profile.
//
// @Summary      Update tenant profile
// @Tags         lifecycle
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Fields to update"
// @Success      200   {object}  domain.TenantProfile
// @Failure      400   {object}  errorResponse
// @Router       /lifecycle/profile [put]
func (h *LifecycleHandler) UpdateProfile(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profile, err := h.service.UpdateProfile(c.Request().Context(), identity.UserID, ports.ProfilePatch{
		IsSearching:      req.IsSearching,
		SecuredListingID: req.SecuredListingID,
		LeaseEndDate:     req.LeaseEndDate,
		PreferredAreas:   req.PreferredAreas,
		MinBudget:        req.MinBudget,
		MaxBudget:        req.MaxBudget,
		BedroomsWanted:   req.BedroomsWanted,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// LeaseReminder recomputes the caller's lease reminder. The reminder field
// is null unless the lease ends within the reminder window.
//
// @Summary      Get lease reminder
// @Tags         lifecycle
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  leaseReminderResponse
// @Router       /lifecycle/lease-reminders [get]
func (h *LifecycleHandler) LeaseReminder(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	reminder, err := h.service.LeaseReminder(c.Request().Context(), identity.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, leaseReminderResponse{Reminder: reminder})
}

// CreateSavedSearch stores a reusable search for the caller.
//
// @Summary      Save a listing search
// @Tags         lifecycle
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createSavedSearchRequest  true  "Search name and filters"
// @Success      201   {object}  domain.SavedSearch
// @Failure      400   {object}  errorResponse
// @Router       /lifecycle/saved-searches [post]
func (h *LifecycleHandler) CreateSavedSearch(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createSavedSearchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	search, err := h.service.CreateSavedSearch(c.Request().Context(), ports.CreateSavedSearchInput{
		UserID:  identity.UserID,
		Name:    req.Name,
		Filters: req.Filters,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, search)
}

// ListSavedSearches returns the caller's saved searches.
//
// @Summary      List saved searches
// @Tags         lifecycle
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.SavedSearch
// @Router       /lifecycle/saved-searches [get]
func (h *LifecycleHandler) ListSavedSearches(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	searches, err := h.service.ListSavedSearches(c.Request().Context(), identity.UserID)
	if err != nil {
		return err
	}
	if searches == nil {
		searches = []*domain.SavedSearch{}
	}
	return c.JSON(http.StatusOK, searches)
}

// CreateRentEntry appends one record to the caller's rent history.
//
// @Summary      Record a rent payment
// @Tags         lifecycle
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createRentEntryRequest  true  "Rent payment details"
// @Success      201   {object}  domain.RentEntry
// @Failure      400   {object}  errorResponse
// @Router       /lifecycle/rent-history [post]
func (h *LifecycleHandler) CreateRentEntry(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createRentEntryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	entry, err := h.service.CreateRentEntry(c.Request().Context(), ports.CreateRentEntryInput{
		UserID:      identity.UserID,
		ListingID:   req.ListingID,
		Amount:      req.Amount,
		PeriodStart: req.PeriodStart,
		PeriodEnd:   req.PeriodEnd,
		Note:        req.Note,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, entry)
}

// ListRentEntries returns the caller's rent history.
//
// @Summary      List rent history
// @Tags         lifecycle
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.RentEntry
// @Router       /lifecycle/rent-history [get]
func (h *LifecycleHandler) ListRentEntries(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	entries, err := h.service.ListRentEntries(c.Request().Context(), identity.UserID)
	if err != nil {
		return err
	}
	if entries == nil {
		entries = []*domain.RentEntry{}
	}
	return c.JSON(http.StatusOK, entries)
}

// CreateChecklist appends a move-in or move-out checklist for the caller.
//
// @Summary      Create a move checklist
// @Tags         lifecycle
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createChecklistRequest  true  "Checklist type and items"
// @Success      201   {object}  domain.MoveChecklist
// @Failure      400   {object}  errorResponse
// @Router       /lifecycle/checklists [post]
func (h *LifecycleHandler) CreateChecklist(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createChecklistRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	checklist, err := h.service.CreateChecklist(c.Request().Context(), ports.CreateChecklistInput{
		UserID:    identity.UserID,
		ListingID: req.ListingID,
		Type:      domain.ChecklistType(req.Type),
		Items:     req.Items,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, checklist)
}

// ListChecklists returns the caller's move checklists.
//
// @Summary      List move checklists
// @Tags         lifecycle
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.MoveChecklist
// @Router       /lifecycle/checklists [get]
func (h *LifecycleHandler) ListChecklists(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	checklists, err := h.service.ListChecklists(c.Request().Context(), identity.UserID)
	if err != nil {
		return err
	}
	if checklists == nil {
		checklists = []*domain.MoveChecklist{}
	}
	return c.JSON(http.StatusOK, checklists)
}
