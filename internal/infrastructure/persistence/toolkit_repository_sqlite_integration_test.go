//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/domain/toolkits"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/pkg/apperr"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolKitSqliteRepository_CreateAndGet(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	SeedToolKits(t, tc)

	tk, err := tc.Repos.ToolKits.GetByName(context.Background(), TestToolKit)
	require.NoError(t, err)
	assert.Equal(t, TestRelease, tk.ReleaseName)
	assert.Equal(t, toolkits.StageProduction, tk.Stage)
}

func TestToolKitSqliteRepository_GetByName_NotFound(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	_, err := tc.Repos.ToolKits.GetByName(context.Background(), "9.9.9")
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
	assert.Contains(t, err.Error(), "tool kit 9.9.9 not found")
}

func TestToolKitSqliteRepository_Create_Duplicate(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	SeedToolKits(t, tc)

	now := time.Now().UTC()
	err := tc.Repos.ToolKits.Create(context.Background(), &toolkits.ToolKit{
		Name: TestToolKit, ReleaseName: TestRelease, Stage: toolkits.StageDevelopment,
		CreatedBy: TestUser, CreatedAt: now, UpdatedAt: now,
	})
	require.Error(t, err)
	assert.Equal(t, apperr.CodeAlreadyExists, apperr.CodeOf(err))
}

func TestToolKitSqliteRepository_Create_Invalid(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	err := tc.Repos.ToolKits.Create(context.Background(), &toolkits.ToolKit{
		Name: "15.1.1", ReleaseName: "14.1", Stage: toolkits.StageDevelopment, CreatedBy: TestUser,
	})
	require.Error(t, err)
	assert.Equal(t, apperr.CodeInvalidInput, apperr.CodeOf(err))
	assert.Contains(t, err.Error(), "validation")
}

func TestToolKitSqliteRepository_ListAndUpdate(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	SeedToolKits(t, tc)
	ctx := context.Background()

	dev, err := tc.Repos.ToolKits.List(ctx, &toolkits.ToolKitQuery{Stage: toolkits.StageDevelopment})
	require.NoError(t, err)
	require.Len(t, dev, 1)
	assert.Equal(t, TestDevToolKit, dev[0].Name)

	dev[0].Stage = toolkits.StagePreview
	require.NoError(t, tc.Repos.ToolKits.Update(ctx, dev[0]))

	updated, err := tc.Repos.ToolKits.GetByName(ctx, TestDevToolKit)
	require.NoError(t, err)
	assert.Equal(t, toolkits.StagePreview, updated.Stage)

	all, err := tc.Repos.ToolKits.List(ctx, &toolkits.ToolKitQuery{ReleaseName: TestRelease})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestToolKitSqliteRepository_Update_NotFound(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	SeedToolKits(t, tc)

	err := tc.Repos.ToolKits.Update(context.Background(), &toolkits.ToolKit{
		Name: "14.1.9", ReleaseName: TestRelease, Stage: toolkits.StageShip, CreatedBy: TestUser,
	})
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestComponentVersionSqliteRepository(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	SeedToolKits(t, tc)
	ctx := context.Background()

	version, err := tc.Repos.ComponentVersions.Get(ctx, TestToolKit, TestComponent)
	require.NoError(t, err)
	assert.Equal(t, TestUser, version.Owner)

	_, err = tc.Repos.ComponentVersions.Get(ctx, TestToolKit, "nutshell")
	assert.True(t, apperr.IsNotFound(err))

	list, err := tc.Repos.ComponentVersions.ListByToolKit(ctx, TestDevToolKit)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	err = tc.Repos.ComponentVersions.Create(ctx, &toolkits.ComponentVersion{
		ToolKitName: TestToolKit, ComponentName: TestComponent, CreatedAt: time.Now(),
	})
	assert.Equal(t, apperr.CodeAlreadyExists, apperr.CodeOf(err))
}

func TestComponentSqliteRepository_ListByType(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	SeedToolKits(t, tc)
	ctx := context.Background()

	require.NoError(t, tc.Repos.ComponentTypes.Create(ctx, &toolkits.ComponentType{Name: "library"}))
	require.NoError(t, tc.Repos.Components.Create(ctx, &toolkits.Component{
		Name: "nutshell", ComponentTypeName: "library", CreatedBy: TestUser, CreatedAt: time.Now(),
	}))

	tools, err := tc.Repos.Components.List(ctx, TestType)
	require.NoError(t, err)
	require.Len(t, tools, 1)
	assert.Equal(t, TestComponent, tools[0].Name)

	all, err := tc.Repos.Components.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	ct := &toolkits.ComponentType{Name: "library", Description: "shared libraries"}
	require.NoError(t, tc.Repos.ComponentTypes.Update(ctx, ct))
	fetched, err := tc.Repos.ComponentTypes.GetByName(ctx, "library")
	require.NoError(t, err)
	assert.Equal(t, "shared libraries", fetched.Description)
}

func TestReleasePackageSqliteRepository(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	SeedToolKits(t, tc)
	ctx := context.Background()

	require.NoError(t, tc.Repos.Platforms.Create(ctx, &toolkits.Platform{Name: "64-rh7", ShortName: "rh7"}))

	pkg := &toolkits.ReleasePackage{
		ID:           uuid.NewString(),
		Name:         "14.1.6-64-rh7",
		ToolKitName:  TestToolKit,
		PlatformName: "64-rh7",
		Components:   []string{TestComponent},
		CreatedBy:    TestUser,
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, tc.Repos.Packages.Create(ctx, pkg))

	fetched, err := tc.Repos.Packages.GetByName(ctx, pkg.Name)
	require.NoError(t, err)
	assert.Equal(t, pkg.ID, fetched.ID)
	assert.Equal(t, []string{TestComponent}, fetched.Components)

	list, err := tc.Repos.Packages.List(ctx, TestDevToolKit)
	require.NoError(t, err)
	assert.Empty(t, list)
}
