// Package apperror defines the error kinds the API surfaces to clients and
// maps them to HTTP status codes. Anything that is not one of these kinds is
// treated as an internal error and never shown to the client.
package apperror

import (
	"errors"
	"net/http"
)

var (
	ErrValidation   = errors.New("validation error")
	ErrConflict     = errors.New("conflict")
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrInternal     = errors.New("internal error")
)

const internalMessage = "Internal Server Error"

// Error carries a kind, the message safe to show to the client and an
// optional cause that is only meant for logs.
type Error struct {
	Kind    error
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

func New(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind error, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func Validation(message string) *Error { return New(ErrValidation, message) }

func Conflict(message string) *Error { return New(ErrConflict, message) }

func NotFound(message string) *Error { return New(ErrNotFound, message) }

func Unauthorized(message string) *Error { return New(ErrUnauthorized, message) }

// Internal wraps an unexpected failure (storage, hashing, signing).
func Internal(err error) *Error {
	return Wrap(ErrInternal, internalMessage, err)
}

// Status returns the HTTP status code for err.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the client-facing message for err. Internal errors and
// errors outside the taxonomy collapse to a generic message.
func Message(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) && !errors.Is(appErr.Kind, ErrInternal) {
		return appErr.Message
	}
	return internalMessage
}
