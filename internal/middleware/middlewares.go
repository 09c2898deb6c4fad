// Package middleware contains the HTTP middleware stack: request-id
// issuance, the request-scoped logger, the standard global middleware
// (CORS, recovery, secure headers, request logging), and the global
// error handler that maps every failure to its HTTP response.
package middleware

import (
	"github.com/meepleworks/reviews-api/internal/server"
)

// Middlewares groups the middleware components used by the router.
type Middlewares struct {
	Global          *GlobalMiddlewares
	ContextEnhancer *ContextEnhancer
}

// NewMiddlewares constructs all middleware components from the
// application container.
func NewMiddlewares(s *server.Server) *Middlewares {
	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
	}
}
