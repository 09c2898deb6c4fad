package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/meepleworks/reviews-api/internal/model"
	"github.com/meepleworks/reviews-api/internal/server"
	"github.com/meepleworks/reviews-api/internal/validation"
)

// ReviewStore is the repository contract the review handler needs.
type ReviewStore interface {
	List(ctx context.Context, category, sortBy, order string) ([]model.ReviewSummary, error)
	GetByID(ctx context.Context, reviewID int) (*model.Review, error)
	IncrementVotes(ctx context.Context, reviewID, incVotes int) (*model.Review, error)
}

type ReviewHandler struct {
	Handler
	store ReviewStore
}

func NewReviewHandler(s *server.Server, store ReviewStore) *ReviewHandler {
	return &ReviewHandler{Handler: NewHandler(s), store: store}
}

// ListReviewsRequest carries the optional query parameters of the
// reviews listing. The sort/order values are validated in the
// repository, not here.
type ListReviewsRequest struct {
	Category string `query:"category"`
	SortBy   string `query:"sort_by"`
	Order    string `query:"order"`
}

func (r *ListReviewsRequest) Validate() error { return nil }

// GetReviews handles GET /api/reviews.
func (h *ReviewHandler) GetReviews(c echo.Context) error {
	var req ListReviewsRequest
	if err := validation.BindAndValidate(c, &req); err != nil {
		return err
	}

	reviews, err := h.store.List(c.Request().Context(), req.Category, req.SortBy, req.Order)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"reviews": reviews})
}

// GetReviewRequest identifies one review by its path parameter.
type GetReviewRequest struct {
	ReviewID int `param:"review_id"`
}

func (r *GetReviewRequest) Validate() error { return nil }

// GetReviewByID handles GET /api/reviews/:review_id.
func (h *ReviewHandler) GetReviewByID(c echo.Context) error {
	var req GetReviewRequest
	if err := validation.BindAndValidate(c, &req); err != nil {
		return err
	}

	review, err := h.store.GetByID(c.Request().Context(), req.ReviewID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"review": review})
}

// PatchReviewVotesRequest carries the vote delta for a review. Unknown
// extra body fields are ignored by the JSON binding.
type PatchReviewVotesRequest struct {
	ReviewID int `param:"review_id"`
	IncVotes int `json:"inc_votes"`
}

func (r *PatchReviewVotesRequest) Validate() error { return nil }

// PatchReviewVotes handles PATCH /api/reviews/:review_id.
func (h *ReviewHandler) PatchReviewVotes(c echo.Context) error {
	var req PatchReviewVotesRequest
	if err := validation.BindAndValidate(c, &req); err != nil {
		return err
	}

	review, err := h.store.IncrementVotes(c.Request().Context(), req.ReviewID, req.IncVotes)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusAccepted, echo.Map{"review": review})
}
