// Package apperr provides the single error type used for every domain and
// lookup failure in ETREE. Each error carries a Code that the command layer
// maps to a process exit code.
package apperr

import (
	"errors"
	"fmt"
)

// Code identifies a class of failure.
type Code string

const (
	// CodeNotFound indicates a referenced row does not exist.
	CodeNotFound Code = "NOT_FOUND"

	// CodeAlreadyExists indicates a row with the same key already exists.
	CodeAlreadyExists Code = "ALREADY_EXISTS"

	// CodeInvalidInput indicates a missing or malformed switch or field.
	CodeInvalidInput Code = "INVALID_INPUT"

	// CodeForbidden indicates the actor lacks the authority for the operation.
	CodeForbidden Code = "FORBIDDEN"

	// CodeConflict indicates the current state does not allow the operation.
	CodeConflict Code = "CONFLICT"

	// CodeNotReady indicates a change request is not ready for a branch.
	CodeNotReady Code = "NOT_READY"

	// CodeDatabase indicates a database operation failed.
	CodeDatabase Code = "DATABASE_ERROR"

	// CodeInvalidConfiguration indicates the configuration cannot be used.
	CodeInvalidConfiguration Code = "INVALID_CONFIGURATION"

	// CodeInternal is used for errors that carry no code.
	CodeInternal Code = "INTERNAL"
)

// Error is the domain error type.
type Error struct {
	Code    Code
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an Error with a formatted message.
func New(code Code, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an Error around an existing cause.
func Wrap(code Code, err error, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Err: err}
}

// NotFound reports a failed lookup of kind by name.
func NotFound(kind, name string) *Error {
	return New(CodeNotFound, "%s %s not found", kind, name)
}

// AlreadyExists reports a duplicate key of kind.
func AlreadyExists(kind, name string) *Error {
	return New(CodeAlreadyExists, "%s %s already exists", kind, name)
}

// InvalidInput reports a bad switch or field value.
func InvalidInput(format string, args ...interface{}) *Error {
	return New(CodeInvalidInput, format, args...)
}

// Database wraps a driver error.
func Database(err error, format string, args ...interface{}) *Error {
	return Wrap(CodeDatabase, err, format, args...)
}

// CodeOf returns the code of the first *Error in err's chain, CodeInternal
// when there is none and "" for a nil error.
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// Is reports whether err carries code.
func Is(err error, code Code) bool {
	return err != nil && CodeOf(err) == code
}

// IsNotFound reports whether err is a failed lookup.
func IsNotFound(err error) bool {
	return Is(err, CodeNotFound)
}
