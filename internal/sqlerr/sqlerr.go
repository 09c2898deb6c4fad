// Package sqlerr classifies database driver errors.
//
// It inspects raw pgx/pgconn errors and converts the recognizable ones
// into application errors with the statuses and messages this API
// promises. Unrecognized driver errors become a generic 500 so their
// text never reaches a client.
package sqlerr

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/meepleworks/reviews-api/internal/errs"
)

// SQLSTATE codes this API cares about.
const (
	// invalidTextRepresentation is raised when a value cannot be coerced
	// to the column type, e.g. a non-numeric review_id.
	invalidTextRepresentation = "22P02"

	foreignKeyViolation = "23503"
	notNullViolation    = "23502"
)

// HandleError converts a failed database call into an application error.
//
// Order matters: an *errs.APIError passes through untouched so explicit
// application errors always win over driver-level sniffing, and only
// errors matching neither shape fall through to the 500 fallback.
func HandleError(err error) error {
	var apiErr *errs.APIError
	if errors.As(err, &apiErr) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case invalidTextRepresentation, notNullViolation:
			return errs.NewBadRequest("Bad request")
		case foreignKeyViolation:
			// A dangling reference: the row being pointed at is gone.
			return errs.NewNotFound("Resource not found")
		default:
			return errs.NewInternalServerError()
		}
	}

	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return errs.NewNotFound("Resource not found")
	}

	return errs.NewInternalServerError()
}
