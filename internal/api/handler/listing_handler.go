package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/househunt/marketplace-api/internal/core/domain"
	"github.com/househunt/marketplace-api/internal/core/ports"
)

// ListingHandler handles HTTP requests for listing operations.
type ListingHandler struct {
	service ports.ListingService
}

func NewListingHandler(service ports.ListingService) *ListingHandler {
	return &ListingHandler{service: service}
}

// Create publishes a listing owned by the authenticated agent.
//
// @Summary      Create a listing
// @Tags         listings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createListingRequest  true  "Listing details"
// @Success      201   {object}  listingResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /listings [post]
func (h *ListingHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createListingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	listing, err := h.service.Create(c.Request().Context(), toCreateListingInput(req, identity.UserID))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toListingResponse(listing))
}

// Get returns one listing with its property, agents, and derived total.
//
// @Summary      Get a listing
// @Tags         listings
// @Produce      json
// @Param        id   path      int  true  "Listing id"
// @Success      200  {object}  listingResponse
// @Failure      404  {object}  errorResponse
// @Router       /listings/{id} [get]
func (h *ListingHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	listing, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListingResponse(listing))
}

// Search returns listings matching the query filters. Without an explicit
// status, only active listings are returned. lat, lng, and radiusKm together
// enable the geo radius filter.
//
// @Summary      Search listings
// @Tags         listings
// @Produce      json
// @Param        status             query  string   false  "Listing status (default active)"
// @Param        verificationTier   query  string   false  "Verification tier"
// @Param        minRent            query  number   false  "Minimum monthly rent"
// @Param        maxRent            query  number   false  "Maximum monthly rent"
// @Param        minBedrooms        query  int      false  "Minimum bedroom count"
// @Param        lat                query  number   false  "Geo center latitude"
// @Param        lng                query  number   false  "Geo center longitude"
// @Param        radiusKm           query  number   false  "Geo radius in kilometres"
// @Success      200  {array}   listingResponse
// @Failure      400  {object}  errorResponse
// @Router       /listings [get]
func (h *ListingHandler) Search(c echo.Context) error {
	input, err := parseSearchInput(c)
	if err != nil {
		return err
	}

	listings, err := h.service.Search(c.Request().Context(), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListingResponses(listings))
}

// Update partially updates a listing owned by the authenticated agent.
//
// @Summary      Update a listing
// @Tags         listings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                   true  "Listing id"
// @Param        body  body      updateListingRequest  true  "Fields to update"
// @Success      200   {object}  listingResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /listings/{id} [patch]
func (h *ListingHandler) Update(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateListingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	listing, err := h.service.Update(c.Request().Context(), id, identity.UserID, toListingPatch(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListingResponse(listing))
}

// AttachMedia appends media reference URLs to a listing's ordered media list.
//
// @Summary      Attach media to a listing
// @Tags         listings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                 true  "Listing id"
// @Param        body  body      attachMediaRequest  true  "Media URLs to append"
// @Success      200   {object}  mediaResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /listings/{id}/media [post]
func (h *ListingHandler) AttachMedia(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req attachMediaRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	urls, err := h.service.AttachMedia(c.Request().Context(), id, identity.UserID, req.URLs)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mediaResponse{MediaURLs: urls})
}

// parseSearchInput reads the search query parameters. The three geo
// parameters are all-or-nothing.
func parseSearchInput(c echo.Context) (ports.SearchListingsInput, error) {
	var input ports.SearchListingsInput

	input.Filter.Status = domain.ListingStatus(c.QueryParam("status"))
	input.Filter.VerificationTier = domain.VerificationTier(c.QueryParam("verificationTier"))

	if v := c.QueryParam("minRent"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return input, echo.NewHTTPError(http.StatusBadRequest, "invalid minRent")
		}
		input.Filter.MinRent = &f
	}
	if v := c.QueryParam("maxRent"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return input, echo.NewHTTPError(http.StatusBadRequest, "invalid maxRent")
		}
		input.Filter.MaxRent = &f
	}
	if v := c.QueryParam("minBedrooms"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return input, echo.NewHTTPError(http.StatusBadRequest, "invalid minBedrooms")
		}
		input.Filter.MinBedrooms = &n
	}

	lat, lng, radius := c.QueryParam("lat"), c.QueryParam("lng"), c.QueryParam("radiusKm")
	if lat == "" && lng == "" && radius == "" {
		return input, nil
	}
	if lat == "" || lng == "" || radius == "" {
		return input, echo.NewHTTPError(http.StatusBadRequest, "lat, lng, and radiusKm must be provided together")
	}

	geo := &ports.GeoFilter{}
	var err error
	if geo.Lat, err = strconv.ParseFloat(lat, 64); err != nil {
		return input, echo.NewHTTPError(http.StatusBadRequest, "invalid lat")
	}
	if geo.Lng, err = strconv.ParseFloat(lng, 64); err != nil {
		return input, echo.NewHTTPError(http.StatusBadRequest, "invalid lng")
	}
	if geo.RadiusKm, err = strconv.ParseFloat(radius, 64); err != nil || geo.RadiusKm <= 0 {
		return input, echo.NewHTTPError(http.StatusBadRequest, "invalid radiusKm")
	}
	input.Geo = geo
	return input, nil
}
