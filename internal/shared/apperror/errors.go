package apperror

import (
	"errors"
	"fmt"
	"net/http"

	pkgerrors "github.com/pkg/errors"
)

// Key is an error marker from a closed set.
// Repositories return a Key as a plain error value for expected failures.
type Key string

const (
	NotFound       Key = "NOT_FOUND"
	Conflict       Key = "CONFLICT"
	Validation     Key = "VALIDATION"
	InvalidInput   Key = "INVALID_INPUT"
	Forbidden      Key = "FORBIDDEN"
	Unauthorized   Key = "UNAUTHORIZED"
	InternalServer Key = "INTERNAL_SERVER"
)

var statusByKey = map[Key]int{
	NotFound:       http.StatusNotFound,
	Conflict:       http.StatusConflict,
	Validation:     http.StatusUnprocessableEntity,
	InvalidInput:   http.StatusBadRequest,
	Forbidden:      http.StatusForbidden,
	Unauthorized:   http.StatusUnauthorized,
	InternalServer: http.StatusInternalServerError,
}

func (k Key) Error() string {
	return string(k)
}

// Valid reports whether k belongs to the closed set.
func (k Key) Valid() bool {
	_, ok := statusByKey[k]
	return ok
}

// StatusOf maps a key to its HTTP status. Unknown keys map to 500.
func StatusOf(k Key) int {
	if status, ok := statusByKey[k]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// AsKey extracts an error marker from err.
func AsKey(err error) (Key, bool) {
	var key Key
	if errors.As(err, &key) && key.Valid() {
		return key, true
	}
	return "", false
}

// IsKey reports whether err is one of the error markers.
func IsKey(err error) bool {
	_, ok := AsKey(err)
	return ok
}

// Error is the typed error raised by controllers and rendered by the central handler.
type Error struct {
	Key     Key
	Message string
	// Detail keeps the message of the unexpected error this one replaces.
	Detail string

	cause error
}

// FromKey builds a typed error for key with a contextual message.
func FromKey(key Key, message string) *Error {
	return &Error{
		Key:     key,
		Message: message,
		cause:   pkgerrors.New(message),
	}
}

// InvalidInputError is raised for caller-supplied input rejected before any store access.
func InvalidInputError(message string) *Error {
	return FromKey(InvalidInput, message)
}

// Internal wraps an unexpected error into an INTERNAL_SERVER error.
func Internal(err error) *Error {
	return &Error{
		Key:     InternalServer,
		Message: "Internal Server Error",
		Detail:  err.Error(),
		cause:   pkgerrors.WithStack(err),
	}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Key, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Key
}

// Status returns the HTTP status for the error key.
func (e *Error) Status() int {
	return StatusOf(e.Key)
}

// Stack renders the stack captured when the error was created.
func (e *Error) Stack() string {
	if e.cause == nil {
		return ""
	}
	return fmt.Sprintf("%+v", e.cause)
}

// WithMessage turns an error marker into a typed error carrying message.
// Any other error is returned unchanged.
func WithMessage(err error, message string) error {
	if key, ok := AsKey(err); ok {
		return FromKey(key, message)
	}
	return err
}
