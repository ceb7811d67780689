package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/toyshare/toyshare-api/internal/api/metrics"
	"github.com/toyshare/toyshare-api/internal/core/domain"
	"github.com/toyshare/toyshare-api/internal/core/ports"
)

// LocationHandler serves the location-entry control: suggestion matching and
// device geolocation.
type LocationHandler struct {
	suggestions ports.SuggestionService
	geolocation ports.GeolocationService
}

func NewLocationHandler(suggestions ports.SuggestionService, geolocation ports.GeolocationService) *LocationHandler {
	return &LocationHandler{suggestions: suggestions, geolocation: geolocation}
}

type suggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
	Open        bool     `json:"open"`
}

type positionResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Formatted string  `json:"formatted"`
}

// Suggest handles GET /v1/locations/suggestions.
//
// @Summary      Suggest locations for a partial query
// @Tags         locations
// @Produce      json
// @Param        q      query     string  true   "Partial location query"
// @Param        limit  query     int     false  "Maximum suggestions (default 5)"
// @Success      200    {object}  suggestionsResponse
// @Router       /v1/locations/suggestions [get]
func (h *LocationHandler) Suggest(c echo.Context) error {
	query := c.QueryParam("q")
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result := h.suggestions.Suggest(query, limit)

	outcome := "empty"
	if result.Open {
		outcome = "open"
	}
	metrics.SuggestionQueriesTotal.WithLabelValues(outcome).Inc()

	return c.JSON(http.StatusOK, suggestionsResponse{
		Suggestions: result.Entries,
		Open:        result.Open,
	})
}

// Current handles GET /v1/locations/current — a device position fix.
//
// @Summary      Resolve the device's current location
// @Tags         locations
// @Produce      json
// @Success      200  {object}  positionResponse
// @Failure      501  {object}  errorResponse
// @Failure      503  {object}  errorResponse
// @Router       /v1/locations/current [get]
func (h *LocationHandler) Current(c echo.Context) error {
	pos, err := h.geolocation.Current(c.Request().Context())
	if err != nil {
		metrics.GeolocationRequestsTotal.WithLabelValues(geoOutcome(err)).Inc()
		return err
	}

	metrics.GeolocationRequestsTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, positionResponse{
		Latitude:  pos.Latitude,
		Longitude: pos.Longitude,
		Formatted: pos.Formatted,
	})
}

func geoOutcome(err error) string {
	switch {
	case errors.Is(err, domain.ErrGeoUnsupported):
		return "unsupported"
	case errors.Is(err, domain.ErrGeoPermissionDenied):
		return "denied"
	case errors.Is(err, domain.ErrGeoUnavailable):
		return "unavailable"
	case errors.Is(err, domain.ErrGeoTimeout):
		return "timeout"
	default:
		return "unknown"
	}
}
