package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/meepleworks/reviews-api/internal/errs"
	"github.com/meepleworks/reviews-api/internal/model"
)

// CommentRepository reads and mutates the comments table.
type CommentRepository struct {
	db     Querier
	exists *ExistenceChecker
}

func NewCommentRepository(db Querier, exists *ExistenceChecker) *CommentRepository {
	return &CommentRepository{db: db, exists: exists}
}

// ListByReview returns a review's comments, newest first. The review
// must exist; a review with no comments yields an empty slice, not an
// error.
func (r *CommentRepository) ListByReview(ctx context.Context, reviewID int) ([]model.Comment, error) {
	if err := r.exists.Exists(ctx, "reviews", "review_id", reviewID); err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, `SELECT comment_id, comments.votes, comments.created_at,
		users.username AS author, body, review_id
		FROM comments
		JOIN users ON users.username = comments.author
		WHERE review_id = $1
		ORDER BY comments.created_at DESC`, reviewID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []model.Comment{}
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(&c.CommentID, &c.Votes, &c.CreatedAt, &c.Author, &c.Body, &c.ReviewID); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

// Insert adds a comment to a review. Both username and body are
// required and checked before any store access. The referenced review
// and user are verified in that order; the first missing one wins.
// Votes default to 0 and created_at to now.
func (r *CommentRepository) Insert(ctx context.Context, reviewID int, username, body string) (*model.Comment, error) {
	if username == "" || body == "" {
		return nil, errs.NewBadRequest("Bad request")
	}

	if err := r.exists.Exists(ctx, "reviews", "review_id", reviewID); err != nil {
		return nil, err
	}
	if err := r.exists.Exists(ctx, "users", "username", username); err != nil {
		return nil, err
	}

	row := r.db.QueryRow(ctx, `INSERT INTO comments (author, body, review_id)
		VALUES ($1, $2, $3)
		RETURNING comment_id, votes, created_at, author, body, review_id`,
		username, body, reviewID)

	var c model.Comment
	if err := row.Scan(&c.CommentID, &c.Votes, &c.CreatedAt, &c.Author, &c.Body, &c.ReviewID); err != nil {
		return nil, err
	}
	return &c, nil
}

// IncrementVotes applies votes = votes + incVotes to a comment and
// returns the updated row. Mirrors ReviewRepository.IncrementVotes.
func (r *CommentRepository) IncrementVotes(ctx context.Context, commentID, incVotes int) (*model.Comment, error) {
	if incVotes == 0 {
		return nil, errs.NewBadRequest("Bad request")
	}

	if err := r.exists.Exists(ctx, "comments", "comment_id", commentID); err != nil {
		return nil, err
	}

	row := r.db.QueryRow(ctx, `UPDATE comments SET votes = votes + $1
		WHERE comment_id = $2
		RETURNING comment_id, votes, created_at, author, body, review_id`,
		incVotes, commentID)

	var c model.Comment
	err := row.Scan(&c.CommentID, &c.Votes, &c.CreatedAt, &c.Author, &c.Body, &c.ReviewID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NewNotFound("Resource not found")
		}
		return nil, err
	}
	return &c, nil
}

// Delete removes a comment. Absent rows fail with 404.
func (r *CommentRepository) Delete(ctx context.Context, commentID int) error {
	if err := r.exists.Exists(ctx, "comments", "comment_id", commentID); err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM comments WHERE comment_id = $1`, commentID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.NewNotFound("Resource not found")
	}
	return nil
}
