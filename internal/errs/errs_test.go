package errs

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	assert.Equal(t, &APIError{Status: 400, Msg: "Bad request"}, NewBadRequest("Bad request"))
	assert.Equal(t, &APIError{Status: 404, Msg: "No reviews found"}, NewNotFound("No reviews found"))
	assert.Equal(t, &APIError{Status: 500, Msg: "Internal Server Error"}, NewInternalServerError())
	assert.Equal(t, &APIError{Status: 418, Msg: "teapot"}, New(418, "teapot"))
}

func TestErrorMessage(t *testing.T) {
	err := NewNotFound("Resource not found")
	assert.Equal(t, "Resource not found", err.Error())
}

func TestIsMatchesOnType(t *testing.T) {
	wrapped := fmt.Errorf("query failed: %w", NewBadRequest("invalid sort query"))

	assert.True(t, errors.Is(wrapped, &APIError{}))

	var apiErr *APIError
	require.True(t, errors.As(wrapped, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "invalid sort query", apiErr.Msg)
}

func TestSerializesAsMsgOnly(t *testing.T) {
	b, err := json.Marshal(NewNotFound("Route not found"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"msg":"Route not found"}`, string(b))
}
