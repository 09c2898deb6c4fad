// Package router builds the echo instance: it registers the global
// middleware stack, binds the error handler, and maps verb+path
// patterns to handlers.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/meepleworks/reviews-api/internal/handler"
	"github.com/meepleworks/reviews-api/internal/middleware"
	"github.com/meepleworks/reviews-api/internal/server"
)

// New assembles the router. Middleware order matters: recovery first,
// then request-id before the context enhancer that reads it, then the
// request logger.
func New(s *server.Server, h *handler.Handlers, mw *middleware.Middlewares) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = middleware.ErrorHandler

	e.Use(mw.Global.Recover())
	e.Use(mw.Global.Secure())
	e.Use(mw.Global.CORS())
	e.Use(middleware.RequestID())
	e.Use(mw.ContextEnhancer.EnhanceContext())
	e.Use(mw.Global.RequestLogger())

	registerSystemRoutes(e, h)
	registerAPIRoutes(e, h)

	return e
}
