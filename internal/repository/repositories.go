// Package repository is the query layer: one type per resource, each
// issuing parameterized SQL against the shared pgx pool and shaping
// rows into response-ready model values.
//
// All semantic validation lives here (sort allow-list, vote delta,
// required comment fields) so behavior is independent of transport.
// Known failure conditions are returned as *errs.APIError; raw driver
// errors are left for the error handler to classify.
package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/meepleworks/reviews-api/internal/server"
)

// Querier is the subset of pool operations the repositories use.
// *pgxpool.Pool satisfies it; tests may substitute their own.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Repositories groups all repository instances.
type Repositories struct {
	Categories *CategoryRepository
	Reviews    *ReviewRepository
	Comments   *CommentRepository
	Users      *UserRepository
}

// NewRepositories constructs the repository container on top of the
// server's database pool. The existence checker is shared by every
// repository that gates work on a referenced row.
func NewRepositories(s *server.Server) *Repositories {
	db := s.DB.Pool
	checker := NewExistenceChecker(db)

	return &Repositories{
		Categories: NewCategoryRepository(db),
		Reviews:    NewReviewRepository(db, checker),
		Comments:   NewCommentRepository(db, checker),
		Users:      NewUserRepository(db),
	}
}
