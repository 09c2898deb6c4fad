package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/meepleworks/reviews-api/internal/model"
	"github.com/meepleworks/reviews-api/internal/server"
)

// CategoryStore is the repository contract the category handler needs.
type CategoryStore interface {
	List(ctx context.Context) ([]model.Category, error)
}

type CategoryHandler struct {
	Handler
	store CategoryStore
}

func NewCategoryHandler(s *server.Server, store CategoryStore) *CategoryHandler {
	return &CategoryHandler{Handler: NewHandler(s), store: store}
}

// GetCategories handles GET /api/categories.
func (h *CategoryHandler) GetCategories(c echo.Context) error {
	categories, err := h.store.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"categories": categories})
}
