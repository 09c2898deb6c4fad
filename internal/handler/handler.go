// Package handler is the HTTP layer: each handler extracts request
// parameters, calls the matching repository operation, and writes the
// response body keyed by resource name. Errors are returned as-is for
// the global error handler to map.
package handler

import (
	"github.com/meepleworks/reviews-api/internal/server"
)

// Handler is the base type embedded by concrete handlers, giving them
// access to shared application dependencies.
type Handler struct {
	server *server.Server
}

func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}
