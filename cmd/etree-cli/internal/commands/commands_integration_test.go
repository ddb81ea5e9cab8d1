//go:build integration
// +build integration

package commands

import (
	"testing"

	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/infrastructure/persistence"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBranchCommands_Check(t *testing.T) {
	c := newCLI(t)

	_, code, err := c.as(persistence.TestUser, "branch", "check", "-b", persistence.TestBranch, "-c", persistence.TestComponent, "-t", persistence.TestToolKit)
	require.NoError(t, err)
	assert.Equal(t, ExitOK, code)

	// a missing binding is reported, not raised
	out, code, err := c.as(persistence.TestUser, "branch", "check", "-b", "nosuch", "-c", persistence.TestComponent, "-t", persistence.TestToolKit)
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.True(t, se.Silent())
	assert.Equal(t, ExitNotFound, code)
	assert.Contains(t, out, "not a production branch")
}

func TestBranchCommands_Lifecycle(t *testing.T) {
	c := newCLI(t)
	key := []string{"-b", "rel14", "-c", persistence.TestComponent, "-t", persistence.TestToolKit}

	_, code, err := c.as(persistence.TestUser, append([]string{"branch", "add", "--type", "dev"}, key...)...)
	require.NoError(t, err)
	require.Equal(t, ExitOK, code)

	_, code, _ = c.as(persistence.TestUser, append([]string{"branch", "check"}, key...)...)
	assert.Equal(t, ExitNotFound, code)

	_, code, err = c.as(persistence.TestUser, append([]string{"branch", "update", "--type", "production"}, key...)...)
	require.NoError(t, err)
	require.Equal(t, ExitOK, code)

	_, code, err = c.as(persistence.TestUser, append([]string{"branch", "check"}, key...)...)
	require.NoError(t, err)
	assert.Equal(t, ExitOK, code)

	out, code, err := c.as(persistence.TestUser, "branch", "show", "-c", persistence.TestComponent)
	require.NoError(t, err)
	assert.Equal(t, ExitOK, code)
	assert.Contains(t, out, "rel14")

	_, code, err = c.as(persistence.TestUser, append([]string{"branch", "delete"}, key...)...)
	require.NoError(t, err)
	assert.Equal(t, ExitOK, code)

	_, code, err = c.as(persistence.TestUser, append([]string{"branch", "delete"}, key...)...)
	require.Error(t, err)
	assert.Equal(t, ExitNotFound, code)
}

func TestToolKitCommands(t *testing.T) {
	c := newCLI(t)

	out, code, err := c.as(persistence.TestUser, "toolkit", "duplicate", "--from", persistence.TestToolKit, "--to", "14.1.8")
	require.NoError(t, err)
	assert.Equal(t, ExitOK, code)
	assert.Contains(t, out, "14.1.8")

	out, code, err = c.as(persistence.TestUser, "toolkit", "show", "-t", "14.1.8")
	require.NoError(t, err)
	assert.Equal(t, ExitOK, code)
	assert.Contains(t, out, "DEVELOPMENT")
	assert.Contains(t, out, persistence.TestComponent)

	_, code, err = c.as(persistence.TestUser, "toolkit", "stage", "-t", "14.1.8", "--stage", "preview")
	require.NoError(t, err)
	assert.Equal(t, ExitOK, code)

	_, code, err = c.as(persistence.TestUser, "toolkit", "stage", "-t", "14.1.8", "--stage", "preview")
	require.Error(t, err)
	assert.Equal(t, ExitNotFound, code)

	out, code, err = c.as(persistence.TestUser, "toolkit", "list", "-r", persistence.TestRelease)
	require.NoError(t, err)
	assert.Equal(t, ExitOK, code)
	assert.Contains(t, out, persistence.TestDevToolKit)

	_, code, err = c.as(persistence.TestUser, "toolkit", "add", "-t", "14.1.9", "--stage", "nonsense")
	require.Error(t, err)
	assert.Equal(t, ExitError, code)
}

func TestReferenceDataCommands(t *testing.T) {
	c := newCLI(t)

	steps := [][]string{
		{"release", "add", "-r", "15.1", "-d", "next release"},
		{"toolkit", "add", "-t", "15.1.0"},
		{"component-type", "add", "-n", "library"},
		{"component-type", "update", "-n", "library", "-d", "shared libraries"},
		{"component", "add", "-c", "edif", "--type", "library"},
		{"component", "link", "-c", "edif", "-t", "15.1.0"},
		{"platform", "add", "-p", "64-rh7", "--short", "rh7"},
		{"package", "add", "-t", "15.1.0", "-p", "64-rh7"},
		{"event", "add", "-t", "15.1.0", "-c", "edif", "--location", "build", "-e", "BUILD_SUCCESS"},
	}
	for _, args := range steps {
		_, code, err := c.as(persistence.TestUser, args...)
		require.NoError(t, err, "%v", args)
		require.Equal(t, ExitOK, code, "%v", args)
	}

	out, _, err := c.as(persistence.TestUser, "release", "show", "-r", "15.1")
	require.NoError(t, err)
	assert.Contains(t, out, "15.1.0")

	out, _, err = c.as(persistence.TestUser, "component-type", "show", "-n", "library")
	require.NoError(t, err)
	assert.Contains(t, out, "shared libraries")

	out, _, err = c.as(persistence.TestUser, "component", "list", "-t", "15.1.0")
	require.NoError(t, err)
	assert.Contains(t, out, "edif")

	out, _, err = c.as(persistence.TestUser, "package", "show", "-n", "15.1.0-64-rh7")
	require.NoError(t, err)
	assert.Contains(t, out, "edif")

	out, _, err = c.as(persistence.TestUser, "event", "show", "-t", "15.1.0")
	require.NoError(t, err)
	assert.Contains(t, out, "BUILD_SUCCESS")

	_, code, err := c.as(persistence.TestUser, "component", "show", "-c", "nosuch")
	require.Error(t, err)
	assert.Equal(t, ExitNotFound, code)
}

func TestUserCommands(t *testing.T) {
	c := newCLI(t)

	_, code, err := c.as(persistence.TestUser, "user", "add", "-l", "asmith", "-n", "Alex Smith", "--email", "asmith@example.com")
	require.NoError(t, err)
	require.Equal(t, ExitOK, code)

	out, code, err := c.as(persistence.TestUser, "user", "update", "-l", "asmith", "--add-roles", "admin,ccb_approver")
	require.NoError(t, err)
	assert.Equal(t, ExitOK, code)
	assert.Contains(t, out, "ADMIN, CCB_APPROVER")

	out, _, err = c.as(persistence.TestUser, "user", "update", "-l", "asmith", "--active=false")
	require.NoError(t, err)
	assert.Contains(t, out, "false")

	_, code, err = c.as(persistence.TestUser, "user", "update", "-l", "asmith")
	require.Error(t, err)
	assert.Equal(t, ExitNotFound, code)

	_, code, err = c.as(persistence.TestUser, "user", "add", "-l", "asmith", "-n", "Again")
	require.Error(t, err)
	assert.Equal(t, ExitAlreadyExists, code)

	_, code, err = c.as(persistence.TestUser, "user", "show", "-l", "nobody")
	require.Error(t, err)
	assert.Equal(t, ExitNotFound, code)
}

func TestReportCommands(t *testing.T) {
	c := newCLI(t)

	_, code, _ := c.as(persistence.TestUser, "report", "crs", "-t", persistence.TestToolKit)
	assert.Equal(t, ExitNotFound, code)

	addCR(t, c, "CR-200", persistence.TestToolKit)

	out, code, err := c.as(persistence.TestUser, "report", "crs", "-t", persistence.TestToolKit)
	require.NoError(t, err)
	assert.Equal(t, ExitOK, code)
	assert.Contains(t, out, "Total 1")
	assert.Contains(t, out, "SUBMITTED 1")

	out, code, err = c.as(persistence.TestUser, "report", "toolkit", "-t", persistence.TestToolKit)
	require.NoError(t, err)
	assert.Equal(t, ExitOK, code)
	assert.Contains(t, out, persistence.TestBranch+"*")
}

func TestDBMigrate(t *testing.T) {
	c := newCLI(t)

	out, code, err := c.as(persistence.TestUser, "db", "migrate")
	require.NoError(t, err)
	assert.Equal(t, ExitOK, code)
	assert.Contains(t, out, "change_requests")
	assert.Contains(t, out, "location_events")
}

func TestUnknownTarget(t *testing.T) {
	c := newCLI(t)

	_, code, err := c.as(persistence.TestUser, "--db", "prod", "cr", "list")
	require.Error(t, err)
	assert.Equal(t, ExitError, code)
}
