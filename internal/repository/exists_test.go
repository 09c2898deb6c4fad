package repository

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meepleworks/reviews-api/internal/errs"
)

type fakeRow struct {
	scan func(dest ...any) error
}

func (r fakeRow) Scan(dest ...any) error { return r.scan(dest...) }

// fakeQuerier answers QueryRow with a canned row; the other operations
// are unused by the existence checker.
type fakeQuerier struct {
	queryRow func(ctx context.Context, sql string, args ...any) pgx.Row
}

func (f fakeQuerier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	panic("unexpected Query")
}

func (f fakeQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return f.queryRow(ctx, sql, args...)
}

func (f fakeQuerier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	panic("unexpected Exec")
}

func existsRow(found bool) fakeRow {
	return fakeRow{scan: func(dest ...any) error {
		*(dest[0].(*bool)) = found
		return nil
	}}
}

func TestExistsFound(t *testing.T) {
	var gotSQL string
	var gotArgs []any
	checker := NewExistenceChecker(fakeQuerier{
		queryRow: func(ctx context.Context, sql string, args ...any) pgx.Row {
			gotSQL = sql
			gotArgs = args
			return existsRow(true)
		},
	})

	err := checker.Exists(context.Background(), "reviews", "review_id", 3)
	require.NoError(t, err)

	assert.Equal(t, `SELECT EXISTS (SELECT 1 FROM reviews WHERE review_id = $1)`, gotSQL)
	assert.Equal(t, []any{3}, gotArgs)
}

func TestExistsMissingRow(t *testing.T) {
	checker := NewExistenceChecker(fakeQuerier{
		queryRow: func(ctx context.Context, sql string, args ...any) pgx.Row {
			return existsRow(false)
		},
	})

	err := checker.Exists(context.Background(), "users", "username", "hlily")

	var apiErr *errs.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Resource not found", apiErr.Msg)
}

func TestExistsRefusesUnknownLookups(t *testing.T) {
	// nil Querier: a rejected lookup must never reach the store.
	checker := NewExistenceChecker(nil)

	for _, pair := range [][2]string{
		{"reviews", "owner"},
		{"sessions", "session_id"},
		{"users", "review_id"},
	} {
		err := checker.Exists(context.Background(), pair[0], pair[1], 1)
		require.Error(t, err, "%s.%s", pair[0], pair[1])

		var apiErr *errs.APIError
		assert.False(t, errors.As(err, &apiErr), "unexpected client-facing error for %s.%s", pair[0], pair[1])
	}
}
