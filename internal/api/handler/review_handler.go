package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/househunt/marketplace-api/internal/core/domain"
	"github.com/househunt/marketplace-api/internal/core/ports"
)

// ReviewHandler handles HTTP requests for listing reviews.
type ReviewHandler struct {
	service ports.ReviewService
}

func NewReviewHandler(service ports.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

type createReviewRequest struct {
	ListingID            int64   `json:"listing_id"             validate:"required,gt=0"`
	LocationAccurate     *int    `json:"location_accurate"      validate:"omitempty,gte=1,lte=5"`
	AmenitiesAsDescribed *int    `json:"amenities_as_described" validate:"omitempty,gte=1,lte=5"`
	NoHiddenFees         *int    `json:"no_hidden_fees"         validate:"omitempty,gte=1,lte=5"`
	OverallRating        int     `json:"overall_rating"         validate:"required,gte=1,lte=5"`
	Comment              *string `json:"comment"`
}

type reviewSummaryResponse struct {
	Count                   int      `json:"count"`
	AvgOverall              *float64 `json:"avg_overall,omitempty"`
	AvgLocationAccurate     *float64 `json:"avg_location_accurate,omitempty"`
	AvgAmenitiesAsDescribed *float64 `json:"avg_amenities_as_described,omitempty"`
	AvgNoHiddenFees         *float64 `json:"avg_no_hidden_fees,omitempty"`
}

type listReviewsResponse struct {
	Reviews []*domain.Review      `json:"reviews"`
	Summary reviewSummaryResponse `json:"summary"`
}

// Create records the authenticated tenant's review of a listing. One review
// per tenant per listing.
//
// @Summary      Review a listing
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createReviewRequest  true  "Review scores"
// @Success      201   {object}  domain.Review
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /reviews [post]
func (h *ReviewHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	review, err := h.service.Create(c.Request().Context(), ports.CreateReviewInput{
		TenantID:             identity.UserID,
		ListingID:            req.ListingID,
		LocationAccurate:     req.LocationAccurate,
		AmenitiesAsDescribed: req.AmenitiesAsDescribed,
		NoHiddenFees:         req.NoHiddenFees,
		OverallRating:        req.OverallRating,
		Comment:              req.Comment,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, review)
}

// ListByListing returns a listing's reviews plus their read-time aggregation.
//
// @Summary      List reviews for a listing
// @Tags         reviews
// @Produce      json
// @Param        listingId  query     int  true  "Listing id"
// @Success      200  {object}  listReviewsResponse
// @Failure      404  {object}  errorResponse
// @Router       /reviews [get]
func (h *ReviewHandler) ListByListing(c echo.Context) error {
	listingID, err := strconv.ParseInt(c.QueryParam("listingId"), 10, 64)
	if err != nil || listingID <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "listingId is required")
	}

	reviews, summary, err := h.service.ListByListing(c.Request().Context(), listingID)
	if err != nil {
		return err
	}
	if reviews == nil {
		reviews = []*domain.Review{}
	}

	return c.JSON(http.StatusOK, listReviewsResponse{
		Reviews: reviews,
		Summary: reviewSummaryResponse{
			Count:                   summary.Count,
			AvgOverall:              summary.AvgOverall,
			AvgLocationAccurate:     summary.AvgLocationAccurate,
			AvgAmenitiesAsDescribed: summary.AvgAmenitiesAsDescribed,
			AvgNoHiddenFees:         summary.AvgNoHiddenFees,
		},
	})
}
