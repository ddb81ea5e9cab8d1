package commands

import (
	"errors"
	"fmt"

	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/pkg/apperr"
)

// ExitCode is the process status of one invocation.
type ExitCode int

// Exit codes shared by every verb.
const (
	ExitOK                ExitCode = 0
	ExitError             ExitCode = 1
	ExitNotFound          ExitCode = 2
	ExitNotAuthorized     ExitCode = 3
	ExitIllegalTransition ExitCode = 4
	ExitNotReady          ExitCode = 5
	ExitAlreadyExists     ExitCode = 6
)

// StatusError ends an invocation with a specific exit code. A nil Err means
// the report already told the user what happened.
type StatusError struct {
	Code ExitCode
	Err  error
}

func (e *StatusError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *StatusError) Unwrap() error {
	return e.Err
}

// Silent reports whether the error message should be suppressed.
func (e *StatusError) Silent() bool {
	return e.Err == nil
}

// ExitCodeOf maps an invocation error to its exit code.
func ExitCodeOf(err error) ExitCode {
	if err == nil {
		return ExitOK
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code
	}
	switch apperr.CodeOf(err) {
	case apperr.CodeNotFound:
		return ExitNotFound
	case apperr.CodeForbidden:
		return ExitNotAuthorized
	case apperr.CodeConflict:
		return ExitIllegalTransition
	case apperr.CodeNotReady:
		return ExitNotReady
	case apperr.CodeAlreadyExists:
		return ExitAlreadyExists
	default:
		return ExitError
	}
}
