//go:build integration
// +build integration

package app

import (
	"context"
	"testing"

	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/domain/branches"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/domain/changerequests"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/domain/events"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/domain/toolkits"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/domain/users"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/infrastructure/persistence"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/pkg/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolKitService_AddDerivesRelease(t *testing.T) {
	ts := SetupSqliteTestServices(t)
	ctx := context.Background()

	tk, err := ts.ToolKits.Add(ctx, persistence.TestUser, "14.1.8", "", "", "next")
	require.NoError(t, err)
	assert.Equal(t, persistence.TestRelease, tk.ReleaseName)
	assert.Equal(t, toolkits.StageDevelopment, tk.Stage)

	_, err = ts.ToolKits.Add(ctx, persistence.TestUser, "15.1.1", "", "", "")
	assert.True(t, apperr.IsNotFound(err))
}

func TestToolKitService_UpdateStage(t *testing.T) {
	ts := SetupSqliteTestServices(t)
	ctx := context.Background()

	tk, changed, err := ts.ToolKits.UpdateStage(ctx, persistence.TestUser, persistence.TestDevToolKit, toolkits.StagePreview)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, toolkits.StagePreview, tk.Stage)

	_, changed, err = ts.ToolKits.UpdateStage(ctx, persistence.TestUser, persistence.TestDevToolKit, toolkits.StagePreview)
	require.NoError(t, err)
	assert.False(t, changed)

	_, _, err = ts.ToolKits.UpdateStage(ctx, persistence.TestUser, persistence.TestDevToolKit, toolkits.Stage("GOLD"))
	assert.Equal(t, apperr.CodeInvalidInput, apperr.CodeOf(err))
}

func TestToolKitService_Duplicate(t *testing.T) {
	ts := SetupSqliteTestServices(t)
	ctx := context.Background()

	result, err := ts.ToolKits.Duplicate(ctx, persistence.TestUser, persistence.TestToolKit, "14.1.9")
	require.NoError(t, err)
	assert.Equal(t, toolkits.StageDevelopment, result.ToolKit.Stage)
	assert.Equal(t, 1, result.Components)
	assert.Equal(t, 1, result.Branches)

	prod, err := ts.Branches.IsProduction(ctx, persistence.TestBranch, persistence.TestComponent, "14.1.9")
	require.NoError(t, err)
	assert.True(t, prod)

	_, err = ts.ToolKits.Duplicate(ctx, persistence.TestUser, persistence.TestToolKit, "14.1.9")
	assert.Equal(t, apperr.CodeAlreadyExists, apperr.CodeOf(err))
}

func TestBranchService(t *testing.T) {
	ts := SetupSqliteTestServices(t)
	ctx := context.Background()

	_, err := ts.Branches.Add(ctx, persistence.TestUser, &branches.Branch{
		Name: "feature-x", ComponentName: "nutshell", ToolKitName: persistence.TestToolKit, Type: branches.TypeDevelopment,
	})
	assert.True(t, apperr.IsNotFound(err), "component must be part of the tool kit")

	b, err := ts.Branches.Add(ctx, persistence.TestUser, &branches.Branch{
		Name: "feature-x", ComponentName: persistence.TestComponent, ToolKitName: persistence.TestToolKit, Type: branches.TypeDevelopment,
	})
	require.NoError(t, err)
	assert.Equal(t, persistence.TestUser, b.CreatedBy)

	prod, err := ts.Branches.IsProduction(ctx, "feature-x", persistence.TestComponent, persistence.TestToolKit)
	require.NoError(t, err)
	assert.False(t, prod)

	prodType := branches.TypeProduction
	_, err = ts.Branches.Update(ctx, "feature-x", persistence.TestComponent, persistence.TestToolKit, &branches.BranchUpdate{Type: &prodType})
	require.NoError(t, err)
	prod, err = ts.Branches.IsProduction(ctx, "feature-x", persistence.TestComponent, persistence.TestToolKit)
	require.NoError(t, err)
	assert.True(t, prod)

	require.NoError(t, ts.Branches.Delete(ctx, "feature-x", persistence.TestComponent, persistence.TestToolKit))
	prod, err = ts.Branches.IsProduction(ctx, "feature-x", persistence.TestComponent, persistence.TestToolKit)
	require.NoError(t, err)
	assert.False(t, prod)
}

func TestComponentAndPackageServices(t *testing.T) {
	ts := SetupSqliteTestServices(t)
	ctx := context.Background()

	_, err := ts.Components.Add(ctx, persistence.TestUser, "nutshell", "library", "")
	assert.True(t, apperr.IsNotFound(err))

	_, err = ts.ComponentTypes.Add(ctx, "library", "shared libraries")
	require.NoError(t, err)
	_, err = ts.Components.Add(ctx, persistence.TestUser, "nutshell", "library", "")
	require.NoError(t, err)

	v, err := ts.Components.Link(ctx, persistence.TestUser, persistence.TestToolKit, "nutshell", "")
	require.NoError(t, err)
	assert.Equal(t, persistence.TestUser, v.Owner)

	_, err = ts.Platforms.Add(ctx, "64-rh7", "rh7", "RHEL 7 64 bit")
	require.NoError(t, err)

	pkg, err := ts.Packages.Add(ctx, persistence.TestUser, "", persistence.TestToolKit, "64-rh7", nil)
	require.NoError(t, err)
	assert.Equal(t, "14.1.6-64-rh7", pkg.Name)
	assert.ElementsMatch(t, []string{persistence.TestComponent, "nutshell"}, pkg.Components)

	_, err = ts.Packages.Add(ctx, persistence.TestUser, "partial", persistence.TestDevToolKit, "64-rh7", []string{"nutshell"})
	assert.True(t, apperr.IsNotFound(err))
}

func TestUserAndEventServices(t *testing.T) {
	ts := SetupSqliteTestServices(t)
	ctx := context.Background()

	u, err := ts.Users.Add(ctx, &users.User{
		Login: "ccbchair", Name: "Chair", Active: true,
		Roles: []users.Role{users.RoleCCBApprover, users.RoleCCBApprover},
	})
	require.NoError(t, err)
	assert.Len(t, u.Roles, 1)

	active := false
	u, err = ts.Users.Update(ctx, "ccbchair", &users.UserUpdate{Active: &active, AddRoles: []users.Role{users.RoleAdmin}})
	require.NoError(t, err)
	assert.False(t, u.IsCCBApprover())
	assert.True(t, u.HasRole(users.RoleAdmin))

	e, err := ts.Events.Add(ctx, persistence.TestUser, persistence.TestToolKit, persistence.TestComponent, events.LocationShip, "shipped", "to customer")
	require.NoError(t, err)
	assert.NotEmpty(t, e.ID)

	list, err := ts.Events.List(ctx, &events.EventQuery{ComponentName: persistence.TestComponent})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestChangeRequestService_AddAndUpdate(t *testing.T) {
	ts := SetupSqliteTestServices(t)
	ctx := context.Background()

	_, err := ts.ChangeRequests.Add(ctx, persistence.TestUser, &changerequests.ChangeRequest{
		Name: "DEV", Description: "x", ToolKitName: persistence.TestToolKit, ComponentName: persistence.TestComponent,
	})
	assert.Equal(t, apperr.CodeInvalidInput, apperr.CodeOf(err))

	addRequest(t, ts, "CR-400", persistence.TestToolKit)

	_, err = ts.ChangeRequests.Update(ctx, persistence.TestUser, "CR-400", &changerequests.ChangeRequestUpdate{})
	assert.Equal(t, apperr.CodeInvalidInput, apperr.CodeOf(err))

	sev := changerequests.SeverityCritical
	cr, err := ts.ChangeRequests.Update(ctx, "ccbchair", "CR-400", &changerequests.ChangeRequestUpdate{Severity: &sev})
	require.NoError(t, err)
	assert.Equal(t, changerequests.SeverityCritical, cr.Severity)
	assert.Equal(t, "ccbchair", cr.UpdatedBy)
}

func TestReportService(t *testing.T) {
	ts := SetupSqliteTestServices(t)
	ctx := context.Background()

	addRequest(t, ts, "CR-500", persistence.TestToolKit)
	addRequest(t, ts, "CR-501", persistence.TestToolKit)

	crs, err := ts.Reports.ChangeRequests(ctx, &changerequests.ChangeRequestQuery{ToolKitName: persistence.TestToolKit})
	require.NoError(t, err)
	assert.Len(t, crs.ChangeRequests, 2)
	assert.Equal(t, 2, crs.ByStatus[changerequests.StatusSubmitted])

	_, err = ts.Reports.ChangeRequests(ctx, &changerequests.ChangeRequestQuery{ToolKitName: "9.9"})
	assert.True(t, apperr.IsNotFound(err))

	matrix, err := ts.Reports.ToolKit(ctx, persistence.TestToolKit)
	require.NoError(t, err)
	require.Len(t, matrix.Rows, 1)
	assert.Equal(t, persistence.TestComponent, matrix.Rows[0].Component)
	assert.Equal(t, 2, matrix.Rows[0].OpenRequests)
	require.Len(t, matrix.Rows[0].Branches, 1)
	assert.Equal(t, persistence.TestBranch, matrix.Rows[0].Branches[0].Name)
}
