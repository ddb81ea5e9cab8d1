//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"

	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/domain/branches"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/pkg/apperr"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBranchSqliteRepository_ListByNameAndComponent(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	SeedToolKits(t, tc)

	list, err := tc.Repos.Branches.List(context.Background(), &branches.BranchQuery{
		Name: TestBranch, ComponentName: TestComponent,
	})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, TestToolKit, list[0].ToolKitName)
	assert.Equal(t, TestDevToolKit, list[1].ToolKitName)
}

func TestBranchSqliteRepository_UpdateAndDelete(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	SeedToolKits(t, tc)
	ctx := context.Background()

	b, err := tc.Repos.Branches.Get(ctx, TestBranch, TestComponent, TestDevToolKit)
	require.NoError(t, err)
	assert.True(t, b.IsProduction())

	b.Type = branches.TypeDevelopment
	b.Description = "moved to development"
	require.NoError(t, tc.Repos.Branches.Update(ctx, b))

	b, err = tc.Repos.Branches.Get(ctx, TestBranch, TestComponent, TestDevToolKit)
	require.NoError(t, err)
	assert.False(t, b.IsProduction())
	assert.Equal(t, "moved to development", b.Description)

	require.NoError(t, tc.Repos.Branches.Delete(ctx, TestBranch, TestComponent, TestDevToolKit))
	_, err = tc.Repos.Branches.Get(ctx, TestBranch, TestComponent, TestDevToolKit)
	assert.True(t, apperr.IsNotFound(err))

	err = tc.Repos.Branches.Delete(ctx, TestBranch, TestComponent, TestDevToolKit)
	assert.True(t, apperr.IsNotFound(err))
}
