package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error kinds. Every error that crosses the service boundary wraps one of these.
var (
	ErrValidation        = errors.New("validation failed")         // Missing or malformed field
	ErrInvalidInput      = errors.New("invalid request payload")   // Payload failed schema validation
	ErrNotFound          = errors.New("resource not found")        // Referenced id has no record
	ErrForbidden         = errors.New("forbidden")                 // Caller is neither owner nor admin
	ErrUnauthorized      = errors.New("unauthorized")              // Missing or invalid credentials
	ErrConflict          = errors.New("conflict")                  // Unique constraint
	ErrDatabaseOperation = errors.New("database operation failed") // Generic database error
	ErrLineAPI           = errors.New("LINE API request failed")   // Generic LINE API error
	ErrScheduling        = errors.New("scheduling failed")         // Generic scheduling error
	ErrInternalServer    = errors.New("internal server error")     // Generic internal error
)

// Error pairs an error kind with a stable message key.
type Error struct {
	Kind error
	Key  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v (%s): %v", e.Kind, e.Key, e.Err)
	}
	return fmt.Sprintf("%v (%s)", e.Kind, e.Key)
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// New returns an error of the given kind carrying key.
func New(kind error, key string) error {
	return &Error{Kind: kind, Key: key}
}

// Wrap is New with an underlying cause.
func Wrap(kind error, key string, err error) error {
	return &Error{Kind: kind, Key: key, Err: err}
}

func Validation(key string) error   { return New(ErrValidation, key) }
func InvalidInput(key string) error { return New(ErrInvalidInput, key) }
func NotFound(key string) error     { return New(ErrNotFound, key) }
func Forbidden(key string) error    { return New(ErrForbidden, key) }
func Unauthorized(key string) error { return New(ErrUnauthorized, key) }
func Conflict(key string) error     { return New(ErrConflict, key) }

// Storage wraps a persistence failure. The cause is kept for logging only.
func Storage(key string, err error) error {
	return Wrap(ErrDatabaseOperation, key, err)
}

// KeyOf returns the message key carried by err, or fallback.
func KeyOf(err error, fallback string) string {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Key != "" {
		return appErr.Key
	}
	return fallback
}

// StatusOf maps an error to the HTTP status it is reported with.
func StatusOf(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidInput):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrLineAPI):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
