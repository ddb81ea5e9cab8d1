//go:build integration
// +build integration

package commands

import (
	"testing"

	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/infrastructure/persistence"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addCR(t *testing.T, c *cli, name, toolKit string) {
	t.Helper()
	_, code, err := c.as(persistence.TestUser, "cr", "add", "--cr", name, "-t", toolKit,
		"-c", persistence.TestComponent, "-d", "slack column truncated")
	require.NoError(t, err)
	require.Equal(t, ExitOK, code)
}

func TestCRCommands_AddShowList(t *testing.T) {
	c := newCLI(t)
	addCR(t, c, "CR-200", persistence.TestToolKit)

	out, code, err := c.as(persistence.TestUser, "cr", "show", "--cr", "CR-200")
	require.NoError(t, err)
	assert.Equal(t, ExitOK, code)
	assert.Contains(t, out, "SUBMITTED")
	assert.Contains(t, out, "DEFECT")
	assert.Contains(t, out, persistence.TestToolKit)

	out, code, err = c.as(persistence.TestUser, "cr", "list", "-t", persistence.TestToolKit)
	require.NoError(t, err)
	assert.Equal(t, ExitOK, code)
	assert.Contains(t, out, "CR-200")

	_, code, _ = c.as(persistence.TestUser, "cr", "list", "-s", "complete")
	assert.Equal(t, ExitNotFound, code)
}

func TestCRCommands_AddDuplicate(t *testing.T) {
	c := newCLI(t)
	addCR(t, c, "CR-200", persistence.TestToolKit)

	_, code, err := c.as(persistence.TestUser, "cr", "add", "--cr", "CR-200", "-t", persistence.TestToolKit,
		"-c", persistence.TestComponent, "-d", "again")
	require.Error(t, err)
	assert.Equal(t, ExitAlreadyExists, code)
}

func TestCRCommands_ShowUnknown(t *testing.T) {
	c := newCLI(t)

	_, code, err := c.as(persistence.TestUser, "cr", "show", "--cr", "CR-404")
	require.Error(t, err)
	assert.Equal(t, ExitNotFound, code)
}

func TestCRCommands_MissingFlag(t *testing.T) {
	c := newCLI(t)

	_, code, err := c.as(persistence.TestUser, "cr", "show")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--cr is required")
	assert.Equal(t, ExitError, code)
}

func TestCRCommands_ApproveNeedsCCB(t *testing.T) {
	c := newCLI(t)
	addCR(t, c, "CR-200", persistence.TestToolKit)

	out, code, err := c.as(persistence.TestUser, "cr", "approve", "--cr", "CR-200")
	require.Error(t, err)
	assert.Equal(t, ExitNotAuthorized, code)
	assert.Contains(t, out, "CR-200")

	_, code, err = c.as(persistence.TestUser, "user", "add", "-l", "ccbchair", "-n", "CCB Chair", "--roles", "ccb")
	require.NoError(t, err)
	require.Equal(t, ExitOK, code)

	_, code, err = c.as("ccbchair", "cr", "approve", "--cr", "CR-200")
	require.NoError(t, err)
	assert.Equal(t, ExitOK, code)

	// already approved is success
	_, code, err = c.as(persistence.TestUser, "cr", "approve", "--cr", "CR-200")
	require.NoError(t, err)
	assert.Equal(t, ExitOK, code)

	out, code, err = c.as(persistence.TestUser, "cr", "history", "--cr", "CR-200")
	require.NoError(t, err)
	assert.Equal(t, ExitOK, code)
	assert.Contains(t, out, "APPROVE")
	assert.Contains(t, out, "ccbchair")
}

func TestCRCommands_ActivateDevelopmentToolKit(t *testing.T) {
	c := newCLI(t)
	addCR(t, c, "CR-300", persistence.TestDevToolKit)

	_, code, err := c.as(persistence.TestUser, "cr", "activate", "--cr", "CR-300")
	require.NoError(t, err)
	assert.Equal(t, ExitOK, code)

	out, _, err := c.as(persistence.TestUser, "cr", "show", "--cr", "CR-300")
	require.NoError(t, err)
	assert.Contains(t, out, "APPROVED")
}

func TestCRCommands_UpdateStatus(t *testing.T) {
	c := newCLI(t)
	addCR(t, c, "CR-300", persistence.TestDevToolKit)

	_, code, err := c.as(persistence.TestUser, "cr", "update-status", "--cr", "CR-300", "-s", "reviewed")
	require.NoError(t, err)
	assert.Equal(t, ExitOK, code)

	_, code, err = c.as(persistence.TestUser, "cr", "update-status", "--cr", "CR-300", "-s", "submitted")
	require.Error(t, err)
	assert.Equal(t, ExitIllegalTransition, code)

	_, code, err = c.as(persistence.TestUser, "cr", "update-status", "--cr", "CR-300", "-s", "complete")
	require.Error(t, err)
	assert.Equal(t, ExitIllegalTransition, code)

	_, code, err = c.as(persistence.TestUser, "cr", "update-status", "--cr", "CR-300", "-s", "bogus")
	require.Error(t, err)
	assert.Equal(t, ExitError, code)
}

func TestCRCommands_ReactivateByCreatorOnly(t *testing.T) {
	c := newCLI(t)
	addCR(t, c, "CR-300", persistence.TestDevToolKit)

	for _, args := range [][]string{
		{"cr", "activate", "--cr", "CR-300"},
		{"cr", "update-status", "--cr", "CR-300", "-s", "complete"},
	} {
		_, code, err := c.as(persistence.TestUser, args...)
		require.NoError(t, err)
		require.Equal(t, ExitOK, code)
	}

	_, code, err := c.as("someone", "cr", "reactivate", "--cr", "CR-300")
	require.Error(t, err)
	assert.Equal(t, ExitNotAuthorized, code)

	_, code, err = c.as(testSystemAccount, "cr", "reactivate", "--cr", "CR-300")
	require.NoError(t, err)
	assert.Equal(t, ExitOK, code)
}

func TestCRCommands_Ready(t *testing.T) {
	c := newCLI(t)
	addCR(t, c, "CR-300", persistence.TestDevToolKit)

	out, code, err := c.as(persistence.TestUser, "cr", "ready", "--cr", "CR-300", "-b", persistence.TestBranch, "-c", persistence.TestComponent)
	require.Error(t, err)
	assert.Equal(t, ExitNotReady, code)
	assert.Contains(t, out, "NOT READY")

	_, _, err = c.as(persistence.TestUser, "cr", "activate", "--cr", "CR-300")
	require.NoError(t, err)

	out, code, err = c.as(persistence.TestUser, "cr", "ready", "--cr", "CR-300", "-b", persistence.TestBranch, "-c", persistence.TestComponent)
	require.NoError(t, err)
	assert.Equal(t, ExitOK, code)
	assert.Contains(t, out, "READY")
}

func TestCRCommands_ReadyDevSentinel(t *testing.T) {
	c := newCLI(t)

	// trunk is bound to the PRODUCTION tool kit as well
	_, code, err := c.as(persistence.TestUser, "cr", "ready", "--cr", "DEV", "-b", persistence.TestBranch, "-c", persistence.TestComponent)
	require.Error(t, err)
	assert.Equal(t, ExitNotReady, code)

	_, code, err = c.as(persistence.TestUser, "branch", "add", "-b", "feature", "-c", persistence.TestComponent, "-t", persistence.TestDevToolKit)
	require.NoError(t, err)
	require.Equal(t, ExitOK, code)

	_, code, err = c.as(persistence.TestUser, "cr", "ready", "--cr", "DEV", "-b", "feature", "-c", persistence.TestComponent)
	require.NoError(t, err)
	assert.Equal(t, ExitOK, code)
}

func TestCRCommands_Update(t *testing.T) {
	c := newCLI(t)
	addCR(t, c, "CR-200", persistence.TestToolKit)

	out, code, err := c.as(persistence.TestUser, "cr", "update", "--cr", "CR-200", "--severity", "1", "--customer", "acme")
	require.NoError(t, err)
	assert.Equal(t, ExitOK, code)
	assert.Contains(t, out, "acme")

	_, code, err = c.as(persistence.TestUser, "cr", "update", "--cr", "CR-200")
	require.Error(t, err)
	assert.Equal(t, ExitNotFound, code)
}
