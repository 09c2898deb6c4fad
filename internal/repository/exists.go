package repository

import (
	"context"
	"fmt"

	"github.com/meepleworks/reviews-api/internal/errs"
)

// existenceLookups is the closed set of table/column pairs the checker
// may query. Identifiers cannot be bind parameters, so anything outside
// this set is refused outright.
var existenceLookups = map[string]string{
	"categories": "slug",
	"comments":   "comment_id",
	"reviews":    "review_id",
	"users":      "username",
}

// ExistenceChecker confirms a referenced row exists before an operation
// that depends on it. It is a precondition gate, not a lock: a row can
// still disappear between the check and the dependent statement.
type ExistenceChecker struct {
	db Querier
}

func NewExistenceChecker(db Querier) *ExistenceChecker {
	return &ExistenceChecker{db: db}
}

// Exists returns nil when a row with column = value is present in
// table, and a 404 "Resource not found" error when it is not.
func (c *ExistenceChecker) Exists(ctx context.Context, table, column string, value any) error {
	if existenceLookups[table] != column {
		return fmt.Errorf("existence check not allowed for %s.%s", table, column)
	}

	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`, table, column)

	var found bool
	if err := c.db.QueryRow(ctx, query, value).Scan(&found); err != nil {
		return err
	}
	if !found {
		return errs.NewNotFound("Resource not found")
	}
	return nil
}
