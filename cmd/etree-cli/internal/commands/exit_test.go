//go:build unit
// +build unit

package commands

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/pkg/apperr"

	"github.com/stretchr/testify/assert"
)

func TestExitCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ExitCode
	}{
		{"nil", nil, ExitOK},
		{"plain error", errors.New("boom"), ExitError},
		{"not found", apperr.NotFound("change request", "CR-1"), ExitNotFound},
		{"wrapped not found", fmt.Errorf("lookup: %w", apperr.NotFound("branch", "trunk")), ExitNotFound},
		{"forbidden", apperr.New(apperr.CodeForbidden, "no"), ExitNotAuthorized},
		{"conflict", apperr.New(apperr.CodeConflict, "moved"), ExitIllegalTransition},
		{"not ready", apperr.New(apperr.CodeNotReady, "wait"), ExitNotReady},
		{"already exists", apperr.AlreadyExists("user", "jdoe"), ExitAlreadyExists},
		{"invalid input", apperr.InvalidInput("bad"), ExitError},
		{"invalid configuration", apperr.Wrap(apperr.CodeInvalidConfiguration, errors.New("no targets"), "invalid --db"), ExitError},
		{"database", apperr.Database(errors.New("io"), "write failed"), ExitError},
		{"status error", &StatusError{Code: ExitNotReady}, ExitNotReady},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeOf(tt.err))
		})
	}
}

func TestStatusError(t *testing.T) {
	silent := &StatusError{Code: ExitNotFound}
	assert.True(t, silent.Silent())
	assert.Equal(t, "exit status 2", silent.Error())

	cause := errors.New("nothing to update")
	loud := &StatusError{Code: ExitNotFound, Err: cause}
	assert.False(t, loud.Silent())
	assert.ErrorIs(t, loud, cause)
}
