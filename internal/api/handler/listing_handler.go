package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/toyshare/toyshare-api/internal/api/metrics"
	"github.com/toyshare/toyshare-api/internal/core/ports"
)

// ListingHandler handles HTTP requests for listing operations.
type ListingHandler struct {
	service ports.ListingService
}

func NewListingHandler(service ports.ListingService) *ListingHandler {
	return &ListingHandler{service: service}
}

// Browse handles GET /v1/listings.
//
// @Summary      Browse listings with optional filters
// @Tags         listings
// @Produce      json
// @Param        search     query     string  false  "Substring of title or description"
// @Param        category   query     string  false  "Category identifier (e.g. puzzles)"
// @Param        condition  query     string  false  "Condition (new, like-new, good, fair, poor)"
// @Param        location   query     string  false  "Substring of the location"
// @Success      200        {object}  listingCollectionResponse
// @Router       /v1/listings [get]
func (h *ListingHandler) Browse(c echo.Context) error {
	filter := ports.BrowseFilter{
		Search:     c.QueryParam("search"),
		CategoryID: c.QueryParam("category"),
		Condition:  c.QueryParam("condition"),
		Location:   c.QueryParam("location"),
	}

	filtered := "no"
	if filter != (ports.BrowseFilter{}) {
		filtered = "yes"
	}
	metrics.BrowseQueriesTotal.WithLabelValues(filtered).Inc()

	listings, err := h.service.Browse(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCollectionResponse(listings))
}

// Featured handles GET /v1/listings/featured — the first three listings of
// the current collection order.
//
// @Summary      Get the featured listings
// @Tags         listings
// @Produce      json
// @Success      200  {object}  listingCollectionResponse
// @Router       /v1/listings/featured [get]
func (h *ListingHandler) Featured(c echo.Context) error {
	listings, err := h.service.Featured(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCollectionResponse(listings))
}

// Get handles GET /v1/listings/:id.
//
// @Summary      Get a listing by id
// @Tags         listings
// @Produce      json
// @Param        id   path      string  true  "Listing id (e.g. ad-1700000000000)"
// @Success      200  {object}  listingResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/listings/{id} [get]
func (h *ListingHandler) Get(c echo.Context) error {
	listing, err := h.service.ByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListingResponse(*listing))
}

// ByUser handles GET /v1/users/:user_id/listings.
//
// @Summary      List a user's listings
// @Tags         listings
// @Produce      json
// @Param        user_id  path      string  true  "Owner user id"
// @Success      200      {object}  listingCollectionResponse
// @Router       /v1/users/{user_id}/listings [get]
func (h *ListingHandler) ByUser(c echo.Context) error {
	listings, err := h.service.ByUser(c.Request().Context(), c.Param("user_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCollectionResponse(listings))
}

// Create handles POST /v1/listings.
//
// @Summary      Post a new listing
// @Tags         listings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createListingRequest  true  "Listing details"
// @Success      201   {object}  listingResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/listings [post]
func (h *ListingHandler) Create(c echo.Context) error {
	var req createListingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	listing, err := h.service.Create(c.Request().Context(), toCreateInput(req, userID))
	if err != nil {
		return err
	}

	metrics.ListingsCreatedTotal.WithLabelValues(listing.Category).Inc()
	return c.JSON(http.StatusCreated, toListingResponse(*listing))
}

// Update handles PATCH /v1/listings/:id.
//
// @Summary      Partially update a listing
// @Tags         listings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Listing id"
// @Param        body  body      updateListingRequest  true  "Fields to change"
// @Success      200   {object}  listingResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/listings/{id} [patch]
func (h *ListingHandler) Update(c echo.Context) error {
	var req updateListingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	listing, err := h.service.Update(c.Request().Context(), c.Param("id"), toPatch(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListingResponse(*listing))
}

// Delete handles DELETE /v1/listings/:id. Deleting an absent id succeeds.
//
// @Summary      Delete a listing
// @Tags         listings
// @Security     BearerAuth
// @Param        id  path  string  true  "Listing id"
// @Success      204
// @Router       /v1/listings/{id} [delete]
func (h *ListingHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.ListingsDeletedTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}
