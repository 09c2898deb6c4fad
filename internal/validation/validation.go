// Package validation binds incoming request data into typed request
// structs.
//
// Parameter extraction is all that happens here: a request that cannot
// be bound (malformed path id, wrong JSON types) is rejected with
// 400 "Bad request". Semantic validation lives in the repository layer
// so behavior is independent of transport.
package validation

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/meepleworks/reviews-api/internal/errs"
)

// Validatable is implemented by request payload types.
type Validatable interface {
	Validate() error
}

// BindAndValidate populates payload from the request (path params,
// query string, body) and runs its Validate hook. payload must be a
// pointer so echo's binder can mutate it.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		// Bind failures cover non-integer ids and type-mismatched JSON
		// fields. The client gets the same message in every case.
		return errs.NewBadRequest("Bad request")
	}

	if err := payload.Validate(); err != nil {
		var apiErr *errs.APIError
		if errors.As(err, &apiErr) {
			return apiErr
		}
		return errs.NewBadRequest("Bad request")
	}

	return nil
}
