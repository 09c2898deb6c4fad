package router

import (
	"github.com/labstack/echo/v4"

	"github.com/meepleworks/reviews-api/internal/handler"
)

// registerSystemRoutes binds endpoints that are not part of the API
// surface proper.
func registerSystemRoutes(e *echo.Echo, h *handler.Handlers) {
	e.GET("/status", h.Health.CheckHealth)
}
