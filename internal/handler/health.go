package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/meepleworks/reviews-api/internal/middleware"
	"github.com/meepleworks/reviews-api/internal/server"
)

// HealthHandler exposes the liveness endpoint used by monitors and
// load balancers.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{Handler: NewHandler(s)}
}

// CheckHealth handles GET /status. It reports overall status plus a
// database connectivity check; 200 when healthy, 503 otherwise.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	logger := middleware.GetLogger(c)

	response := map[string]any{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
	}
	checks := map[string]any{}
	response["checks"] = checks

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	dbStart := time.Now()
	if err := h.server.DB.Pool.Ping(ctx); err != nil {
		checks["database"] = map[string]any{
			"status":        "unhealthy",
			"response_time": time.Since(dbStart).String(),
		}
		response["status"] = "unhealthy"

		logger.Error().Err(err).Dur("response_time", time.Since(dbStart)).
			Msg("database health check failed")

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	checks["database"] = map[string]any{
		"status":        "healthy",
		"response_time": time.Since(dbStart).String(),
	}

	return c.JSON(http.StatusOK, response)
}
