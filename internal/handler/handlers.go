package handler

import (
	"github.com/meepleworks/reviews-api/internal/repository"
	"github.com/meepleworks/reviews-api/internal/server"
)

// Handlers groups all HTTP handlers so router setup takes one object.
type Handlers struct {
	API        *APIHandler
	Categories *CategoryHandler
	Comments   *CommentHandler
	Health     *HealthHandler
	Reviews    *ReviewHandler
	Users      *UserHandler
}

// NewHandlers constructs the handler container on top of the
// repository container.
func NewHandlers(s *server.Server, repos *repository.Repositories) *Handlers {
	return &Handlers{
		API:        NewAPIHandler(s),
		Categories: NewCategoryHandler(s, repos.Categories),
		Comments:   NewCommentHandler(s, repos.Comments),
		Health:     NewHealthHandler(s),
		Reviews:    NewReviewHandler(s, repos.Reviews),
		Users:      NewUserHandler(s, repos.Users),
	}
}
