// Package errs defines the application error type shared by the query
// layer, handlers, and the global error handler.
//
// Every failure a client can see is expressed as an *APIError carrying
// the HTTP status and the message the client receives. Anything else
// that reaches the error handler is treated as unclassified and
// collapsed into a generic 500.
package errs

import "net/http"

// APIError is the typed error returned by repositories and handlers.
// It serializes as the response body `{"msg": ...}`.
type APIError struct {
	Status int    `json:"-"`
	Msg    string `json:"msg"`
}

// Error satisfies the error interface.
func (e *APIError) Error() string {
	return e.Msg
}

// Is reports whether target is also an *APIError. It matches on type,
// not on status or message, so errors.Is can be used as a shape check.
func (e *APIError) Is(target error) bool {
	_, ok := target.(*APIError)
	return ok
}

// New builds an APIError with an explicit status and message.
func New(status int, msg string) *APIError {
	return &APIError{Status: status, Msg: msg}
}

// NewBadRequest builds a 400 error.
func NewBadRequest(msg string) *APIError {
	return New(http.StatusBadRequest, msg)
}

// NewNotFound builds a 404 error.
func NewNotFound(msg string) *APIError {
	return New(http.StatusNotFound, msg)
}

// NewInternalServerError builds the generic 500 error. The message is
// always the bare status text so internal detail never leaks.
func NewInternalServerError() *APIError {
	return New(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}
