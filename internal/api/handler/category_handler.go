package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/toyshare/toyshare-api/internal/core/domain"
)

// CategoryHandler serves the static category set.
type CategoryHandler struct{}

func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

type categoriesResponse struct {
	Data []domain.Category `json:"data"`
}

// List handles GET /v1/categories.
//
// @Summary      List the toy categories
// @Tags         categories
// @Produce      json
// @Success      200  {object}  categoriesResponse
// @Router       /v1/categories [get]
func (h *CategoryHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, categoriesResponse{Data: domain.Categories()})
}
