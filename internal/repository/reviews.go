package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/meepleworks/reviews-api/internal/errs"
	"github.com/meepleworks/reviews-api/internal/model"
)

// reviewSortColumns is the allow-list of queryable sort columns mapped
// to the expression used in ORDER BY. Sort columns are interpolated
// into SQL, so only values from this map ever reach the statement.
var reviewSortColumns = map[string]string{
	"owner":          "owner",
	"title":          "title",
	"review_id":      "reviews.review_id",
	"category":       "reviews.category",
	"review_img_url": "reviews.review_img_url",
	"created_at":     "reviews.created_at",
	"votes":          "reviews.votes",
	"designer":       "reviews.designer",
	"comment_count":  "comment_count",
}

const (
	defaultSortColumn = "created_at"
	defaultSortOrder  = "DESC"
)

// ReviewRepository reads and mutates the reviews table.
type ReviewRepository struct {
	db     Querier
	exists *ExistenceChecker
}

func NewReviewRepository(db Querier, exists *ExistenceChecker) *ReviewRepository {
	return &ReviewRepository{db: db, exists: exists}
}

// buildListQuery assembles the reviews listing statement. It validates
// sortBy against the allow-list and order against ASC/DESC before any
// SQL is built; both failures are 400s.
func buildListQuery(category, sortBy, order string) (string, []any, error) {
	if sortBy == "" {
		sortBy = defaultSortColumn
	}
	sortExpr, ok := reviewSortColumns[sortBy]
	if !ok {
		return "", nil, errs.NewBadRequest("invalid sort query")
	}

	if order == "" {
		order = defaultSortOrder
	}
	direction := strings.ToUpper(order)
	if direction != "ASC" && direction != "DESC" {
		return "", nil, errs.NewBadRequest("invalid order query")
	}

	var sb strings.Builder
	sb.WriteString(`SELECT users.username AS owner, title, reviews.review_id,
		reviews.category, reviews.review_img_url, reviews.created_at,
		reviews.votes, reviews.designer,
		CAST(COALESCE(COUNT(comments.review_id), 0) AS INT) AS comment_count
		FROM reviews
		JOIN users ON users.username = reviews.owner
		FULL OUTER JOIN comments ON comments.review_id = reviews.review_id`)

	args := []any{}
	if category != "" {
		sb.WriteString(` WHERE reviews.category = $1`)
		args = append(args, category)
	}

	sb.WriteString(` GROUP BY users.username, reviews.review_id`)
	fmt.Fprintf(&sb, ` ORDER BY %s %s`, sortExpr, direction)

	return sb.String(), args, nil
}

// List returns review summaries with aggregated comment counts,
// optionally filtered to one category and sorted by a queryable column.
//
// A category filter that matches nothing fails with 404 "No reviews
// found", whether the category is missing from the categories table or
// merely has no reviews; the two cases are deliberately collapsed.
func (r *ReviewRepository) List(ctx context.Context, category, sortBy, order string) ([]model.ReviewSummary, error) {
	query, args, err := buildListQuery(category, sortBy, order)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := []model.ReviewSummary{}
	for rows.Next() {
		var rv model.ReviewSummary
		err := rows.Scan(&rv.Owner, &rv.Title, &rv.ReviewID, &rv.Category,
			&rv.ReviewImgURL, &rv.CreatedAt, &rv.Votes, &rv.Designer, &rv.CommentCount)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if category != "" && len(reviews) == 0 {
		return nil, errs.NewNotFound("No reviews found")
	}
	return reviews, nil
}

// GetByID returns a single review with its comment count.
func (r *ReviewRepository) GetByID(ctx context.Context, reviewID int) (*model.Review, error) {
	row := r.db.QueryRow(ctx, `SELECT reviews.review_id, title, review_body, designer,
		review_img_url, reviews.votes, category, reviews.owner, reviews.created_at,
		CAST(COALESCE(COUNT(comments.review_id), 0) AS INT) AS comment_count
		FROM reviews
		FULL OUTER JOIN comments ON comments.review_id = reviews.review_id
		WHERE reviews.review_id = $1
		GROUP BY reviews.review_id`, reviewID)

	var rv model.Review
	var commentCount int
	err := row.Scan(&rv.ReviewID, &rv.Title, &rv.ReviewBody, &rv.Designer,
		&rv.ReviewImgURL, &rv.Votes, &rv.Category, &rv.Owner, &rv.CreatedAt, &commentCount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NewNotFound(fmt.Sprintf("No review found for review_id: %d", reviewID))
		}
		return nil, err
	}
	rv.CommentCount = &commentCount
	return &rv, nil
}

// IncrementVotes applies votes = votes + incVotes atomically and
// returns the updated row. A zero delta is rejected before any store
// access. The review's existence is verified first; if the row is gone
// by the time the update runs (check/update race) the update reports
// not-found rather than silently returning nothing.
func (r *ReviewRepository) IncrementVotes(ctx context.Context, reviewID, incVotes int) (*model.Review, error) {
	if incVotes == 0 {
		return nil, errs.NewBadRequest("Bad request")
	}

	if err := r.exists.Exists(ctx, "reviews", "review_id", reviewID); err != nil {
		return nil, err
	}

	row := r.db.QueryRow(ctx, `UPDATE reviews SET votes = votes + $1
		WHERE review_id = $2
		RETURNING review_id, title, review_body, designer, review_img_url,
		votes, category, owner, created_at`, incVotes, reviewID)

	var rv model.Review
	err := row.Scan(&rv.ReviewID, &rv.Title, &rv.ReviewBody, &rv.Designer,
		&rv.ReviewImgURL, &rv.Votes, &rv.Category, &rv.Owner, &rv.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NewNotFound("Resource not found")
		}
		return nil, err
	}
	return &rv, nil
}
