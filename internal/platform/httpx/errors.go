// Package httpx provides HTTP response utilities.
package httpx

import (
	"errors"
	"net/http"
)

// Sentinel errors for domain layer.
var (
	ErrNotFound   = errors.New("resource not found")
	ErrValidation = errors.New("validation failed")
)

// clientError carries a message that is safe to show to the caller.
type clientError struct {
	kind error
	msg  string
}

func (e *clientError) Error() string { return e.msg }

func (e *clientError) Unwrap() error { return e.kind }

// Invalid returns a validation error whose message is sent to the client.
func Invalid(msg string) error {
	return &clientError{kind: ErrValidation, msg: msg}
}

// NotFound returns a not-found error whose message is sent to the client.
func NotFound(msg string) error {
	return &clientError{kind: ErrNotFound, msg: msg}
}

// RespondError maps domain errors to HTTP responses. Anything that is not a
// client error becomes a 500 carrying only fallback.
func RespondError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, ErrValidation):
		Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNotFound):
		Error(w, http.StatusNotFound, err.Error())
	default:
		Error(w, http.StatusInternalServerError, fallback)
	}
}
