package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/househunt/marketplace-api/internal/core/domain"
	"github.com/househunt/marketplace-api/internal/core/ports"
)

// DisputeHandler handles HTTP requests for the dispute workflow.
type DisputeHandler struct {
	service ports.DisputeService
}

func NewDisputeHandler(service ports.DisputeService) *DisputeHandler {
	return &DisputeHandler{service: service}
}

type createDisputeRequest struct {
	ListingID int64  `json:"listing_id" validate:"required,gt=0"`
	Reason    string `json:"reason"     validate:"required"`
}

type resolveDisputeRequest struct {
	Status          string  `json:"status"           validate:"required,oneof=resolved dismissed"`
	ResolutionNotes *string `json:"resolution_notes"`
}

// Create files a dispute against a listing on behalf of the caller.
//
// @Summary      File a dispute
// @Tags         disputes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createDisputeRequest  true  "Dispute details"
// @Success      201   {object}  domain.Dispute
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /disputes [post]
func (h *DisputeHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createDisputeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	dispute, err := h.service.Create(c.Request().Context(), ports.CreateDisputeInput{
		ListingID:        req.ListingID,
		ReportedByUserID: identity.UserID,
		Reason:           req.Reason,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dispute)
}

// List returns disputes visible to the caller: ones they reported plus ones
// filed against their own listings.
//
// @Summary      List own disputes
// @Tags         disputes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Dispute
// @Router       /disputes [get]
func (h *DisputeHandler) List(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	disputes, err := h.service.ListForUser(c.Request().Context(), identity.UserID)
	if err != nil {
		return err
	}
	if disputes == nil {
		disputes = []*domain.Dispute{}
	}
	return c.JSON(http.StatusOK, disputes)
}

// StartInvestigation moves an open dispute to investigating.
//
// @Summary      Start investigating a dispute
// @Tags         disputes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Dispute id"
// @Success      200  {object}  domain.Dispute
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /disputes/{id} [patch]
func (h *DisputeHandler) StartInvestigation(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	dispute, err := h.service.StartInvestigation(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dispute)
}

// Resolve closes a dispute with resolved or dismissed. Resolving suspends
// the disputed listing and records a warning penalty against its agent.
//
// @Summary      Resolve or dismiss a dispute
// @Tags         disputes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                    true  "Dispute id"
// @Param        body  body      resolveDisputeRequest  true  "Resolution"
// @Success      200   {object}  domain.Dispute
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /disputes/{id}/resolve [patch]
func (h *DisputeHandler) Resolve(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req resolveDisputeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	dispute, err := h.service.Resolve(c.Request().Context(), ports.ResolveDisputeInput{
		DisputeID:       id,
		Status:          domain.DisputeStatus(req.Status),
		ResolutionNotes: req.ResolutionNotes,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dispute)
}
