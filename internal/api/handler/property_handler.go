package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/househunt/marketplace-api/internal/core/ports"
)

// PropertyHandler handles HTTP requests for physical locations.
type PropertyHandler struct {
	service ports.PropertyService
}

func NewPropertyHandler(service ports.PropertyService) *PropertyHandler {
	return &PropertyHandler{service: service}
}

type createPropertyRequest struct {
	Address                string   `json:"address"                  validate:"required"`
	Latitude               *float64 `json:"latitude"                 validate:"omitempty,latitude"`
	Longitude              *float64 `json:"longitude"                validate:"omitempty,longitude"`
	LandmarkName           *string  `json:"landmark_name"`
	DirectionsFromLandmark *string  `json:"directions_from_landmark"`
}

type updatePropertyRequest struct {
	Address                *string  `json:"address"`
	Latitude               *float64 `json:"latitude"                 validate:"omitempty,latitude"`
	Longitude              *float64 `json:"longitude"                validate:"omitempty,longitude"`
	LandmarkName           *string  `json:"landmark_name"`
	DirectionsFromLandmark *string  `json:"directions_from_landmark"`
}

// Create registers a property.
//
// @Summary      Register a property
// @Tags         properties
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPropertyRequest  true  "Property details"
// @Success      201   {object}  domain.Property
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /properties [post]
func (h *PropertyHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createPropertyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	property, err := h.service.Create(c.Request().Context(), ports.CreatePropertyInput{
		Address:                req.Address,
		Latitude:               req.Latitude,
		Longitude:              req.Longitude,
		LandmarkName:           req.LandmarkName,
		DirectionsFromLandmark: req.DirectionsFromLandmark,
		CreatedByUserID:        identity.UserID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, property)
}

// Get returns one property.
//
// @Summary      Get a property
// @Tags         properties
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Property id"
// @Success      200  {object}  domain.Property
// @Failure      404  {object}  errorResponse
// @Router       /properties/{id} [get]
func (h *PropertyHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	property, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, property)
}

// List returns all properties.
//
// @Summary      List properties
// @Tags         properties
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Property
// @Router       /properties [get]
func (h *PropertyHandler) List(c echo.Context) error {
	properties, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, properties)
}

// Update partially updates a property's descriptive fields.
//
// @Summary      Update a property
// @Tags         properties
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                    true  "Property id"
// @Param        body  body      updatePropertyRequest  true  "Fields to update"
// @Success      200   {object}  domain.Property
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /properties/{id} [patch]
func (h *PropertyHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updatePropertyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	property, err := h.service.Update(c.Request().Context(), id, ports.PropertyPatch{
		Address:                req.Address,
		Latitude:               req.Latitude,
		Longitude:              req.Longitude,
		LandmarkName:           req.LandmarkName,
		DirectionsFromLandmark: req.DirectionsFromLandmark,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, property)
}

// pathID parses a numeric path parameter, rejecting non-numeric ids with 400
// before any service call.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}
