package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/meepleworks/reviews-api/internal/model"
	"github.com/meepleworks/reviews-api/internal/server"
	"github.com/meepleworks/reviews-api/internal/validation"
)

// UserStore is the repository contract the user handler needs.
type UserStore interface {
	List(ctx context.Context) ([]model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
}

type UserHandler struct {
	Handler
	store UserStore
}

func NewUserHandler(s *server.Server, store UserStore) *UserHandler {
	return &UserHandler{Handler: NewHandler(s), store: store}
}

// GetUsers handles GET /api/users.
func (h *UserHandler) GetUsers(c echo.Context) error {
	users, err := h.store.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"users": users})
}

// GetUserRequest identifies one user by username.
type GetUserRequest struct {
	Username string `param:"username"`
}

func (r *GetUserRequest) Validate() error { return nil }

// GetUserByUsername handles GET /api/users/:username.
func (h *UserHandler) GetUserByUsername(c echo.Context) error {
	var req GetUserRequest
	if err := validation.BindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.store.GetByUsername(c.Request().Context(), req.Username)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"user": user})
}
