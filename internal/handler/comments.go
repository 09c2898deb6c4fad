package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/meepleworks/reviews-api/internal/model"
	"github.com/meepleworks/reviews-api/internal/server"
	"github.com/meepleworks/reviews-api/internal/validation"
)

// CommentStore is the repository contract the comment handler needs.
type CommentStore interface {
	ListByReview(ctx context.Context, reviewID int) ([]model.Comment, error)
	Insert(ctx context.Context, reviewID int, username, body string) (*model.Comment, error)
	IncrementVotes(ctx context.Context, commentID, incVotes int) (*model.Comment, error)
	Delete(ctx context.Context, commentID int) error
}

type CommentHandler struct {
	Handler
	store CommentStore
}

func NewCommentHandler(s *server.Server, store CommentStore) *CommentHandler {
	return &CommentHandler{Handler: NewHandler(s), store: store}
}

// ListCommentsRequest identifies the review whose comments are listed.
type ListCommentsRequest struct {
	ReviewID int `param:"review_id"`
}

func (r *ListCommentsRequest) Validate() error { return nil }

// GetCommentsByReview handles GET /api/reviews/:review_id/comments.
func (h *CommentHandler) GetCommentsByReview(c echo.Context) error {
	var req ListCommentsRequest
	if err := validation.BindAndValidate(c, &req); err != nil {
		return err
	}

	comments, err := h.store.ListByReview(c.Request().Context(), req.ReviewID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"comments": comments})
}

// PostCommentRequest carries a new comment. The required-field check
// lives in the repository so it runs before any store access.
type PostCommentRequest struct {
	ReviewID int    `param:"review_id"`
	Username string `json:"username"`
	Body     string `json:"body"`
}

func (r *PostCommentRequest) Validate() error { return nil }

// PostComment handles POST /api/reviews/:review_id/comments.
func (h *CommentHandler) PostComment(c echo.Context) error {
	var req PostCommentRequest
	if err := validation.BindAndValidate(c, &req); err != nil {
		return err
	}

	comment, err := h.store.Insert(c.Request().Context(), req.ReviewID, req.Username, req.Body)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{"comment": comment})
}

// PatchCommentVotesRequest carries the vote delta for a comment.
type PatchCommentVotesRequest struct {
	CommentID int `param:"comment_id"`
	IncVotes  int `json:"inc_votes"`
}

func (r *PatchCommentVotesRequest) Validate() error { return nil }

// PatchCommentVotes handles PATCH /api/comments/:comment_id.
func (h *CommentHandler) PatchCommentVotes(c echo.Context) error {
	var req PatchCommentVotesRequest
	if err := validation.BindAndValidate(c, &req); err != nil {
		return err
	}

	comment, err := h.store.IncrementVotes(c.Request().Context(), req.CommentID, req.IncVotes)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusAccepted, echo.Map{"comment": comment})
}

// DeleteCommentRequest identifies the comment to delete.
type DeleteCommentRequest struct {
	CommentID int `param:"comment_id"`
}

func (r *DeleteCommentRequest) Validate() error { return nil }

// DeleteComment handles DELETE /api/comments/:comment_id.
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	var req DeleteCommentRequest
	if err := validation.BindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.store.Delete(c.Request().Context(), req.CommentID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
