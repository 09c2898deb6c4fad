package router

import (
	"github.com/labstack/echo/v4"

	"github.com/meepleworks/reviews-api/internal/handler"
)

// registerAPIRoutes binds the /api surface to its handlers.
func registerAPIRoutes(e *echo.Echo, h *handler.Handlers) {
	api := e.Group("/api")

	api.GET("", h.API.GetEndpoints)

	api.GET("/categories", h.Categories.GetCategories)

	api.GET("/reviews", h.Reviews.GetReviews)
	api.GET("/reviews/:review_id", h.Reviews.GetReviewByID)
	api.PATCH("/reviews/:review_id", h.Reviews.PatchReviewVotes)

	api.GET("/reviews/:review_id/comments", h.Comments.GetCommentsByReview)
	api.POST("/reviews/:review_id/comments", h.Comments.PostComment)

	api.PATCH("/comments/:comment_id", h.Comments.PatchCommentVotes)
	api.DELETE("/comments/:comment_id", h.Comments.DeleteComment)

	api.GET("/users", h.Users.GetUsers)
	api.GET("/users/:username", h.Users.GetUserByUsername)
}
