package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/toyshare/toyshare-api/internal/core/ports"
)

// AdminHandler serves the admin dashboard aggregates.
type AdminHandler struct {
	listings ports.ListingService
}

func NewAdminHandler(listings ports.ListingService) *AdminHandler {
	return &AdminHandler{listings: listings}
}

type adminStatsResponse struct {
	TotalListings      int            `json:"total_listings"`
	ListingsByCategory map[string]int `json:"listings_by_category"`
	ListingsByOwner    map[string]int `json:"listings_by_owner"`
}

// Stats handles GET /v1/admin/stats.
//
// @Summary      Listing aggregates for the admin dashboard
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  adminStatsResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/admin/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	listings, err := h.listings.List(c.Request().Context())
	if err != nil {
		return err
	}

	byCategory := make(map[string]int)
	byOwner := make(map[string]int)
	for _, l := range listings {
		byCategory[l.Category]++
		byOwner[l.UserID]++
	}

	return c.JSON(http.StatusOK, adminStatsResponse{
		TotalListings:      len(listings),
		ListingsByCategory: byCategory,
		ListingsByOwner:    byOwner,
	})
}
