package handler

import (
	_ "embed"
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/meepleworks/reviews-api/internal/server"
)

//go:embed endpoints.json
var endpointsJSON []byte

// APIHandler serves the static endpoint descriptor at GET /api.
type APIHandler struct {
	Handler
	endpoints map[string]json.RawMessage
}

// NewAPIHandler parses the embedded descriptor once at construction.
// The file is part of the build, so a parse failure is a programming
// error and panics.
func NewAPIHandler(s *server.Server) *APIHandler {
	var endpoints map[string]json.RawMessage
	if err := json.Unmarshal(endpointsJSON, &endpoints); err != nil {
		panic("handler: malformed endpoints.json: " + err.Error())
	}

	return &APIHandler{
		Handler:   NewHandler(s),
		endpoints: endpoints,
	}
}

// GetEndpoints handles GET /api.
func (h *APIHandler) GetEndpoints(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"endpoints": h.endpoints})
}
