//go:build integration
// +build integration

package persistence

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/domain/branches"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/domain/changerequests"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/domain/toolkits"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/pkg/config"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/pkg/testutil"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Test fixture names
const (
	TestRelease       = "14.1"
	TestToolKit       = "14.1.6"
	TestDevToolKit    = "14.1.7"
	TestComponent     = "einstimer"
	TestType          = "tool"
	TestBranch        = "trunk"
	TestUser          = "jdoe"
	TestChangeRequest = "CR-100"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB    *gorm.DB
	Repos *Repositories
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}
		cleanupFunc = func() {}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type:        config.PostgresDbType,
			DSN:         "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			DBName:      uniqueDBName,
			AutoMigrate: true,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	log := testutil.SetupTestLogger(t)

	db, err := NewDBConnection(settings, log)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	require.NoError(t, Migrate(db), "Failed to migrate schema")

	repos, err := NewRepositories(db, log)
	require.NoError(t, err, "Failed to create repositories")

	return &TestContext{DB: db, Repos: repos}
}

// SeedToolKits creates release 14.1 with a PRODUCTION tool kit 14.1.6 and a
// DEVELOPMENT tool kit 14.1.7, both carrying component einstimer on a
// production branch trunk.
func SeedToolKits(t *testing.T, tc *TestContext) {
	t.Helper()
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, tc.Repos.Releases.Create(ctx, &toolkits.Release{Name: TestRelease, CreatedBy: TestUser, CreatedAt: now}))
	for name, stage := range map[string]toolkits.Stage{TestToolKit: toolkits.StageProduction, TestDevToolKit: toolkits.StageDevelopment} {
		require.NoError(t, tc.Repos.ToolKits.Create(ctx, &toolkits.ToolKit{
			Name: name, ReleaseName: TestRelease, Stage: stage, CreatedBy: TestUser, CreatedAt: now, UpdatedAt: now,
		}))
	}
	require.NoError(t, tc.Repos.ComponentTypes.Create(ctx, &toolkits.ComponentType{Name: TestType}))
	require.NoError(t, tc.Repos.Components.Create(ctx, &toolkits.Component{
		Name: TestComponent, ComponentTypeName: TestType, CreatedBy: TestUser, CreatedAt: now,
	}))
	for _, tk := range []string{TestToolKit, TestDevToolKit} {
		require.NoError(t, tc.Repos.ComponentVersions.Create(ctx, &toolkits.ComponentVersion{
			ToolKitName: tk, ComponentName: TestComponent, Owner: TestUser, CreatedAt: now,
		}))
		require.NoError(t, tc.Repos.Branches.Create(ctx, &branches.Branch{
			Name: TestBranch, ComponentName: TestComponent, ToolKitName: tk,
			Type: branches.TypeProduction, CreatedBy: TestUser, CreatedAt: now,
		}))
	}
}

// NewTestChangeRequest returns a SUBMITTED defect on 14.1.6/einstimer.
func NewTestChangeRequest(name string) *changerequests.ChangeRequest {
	now := time.Now().UTC()
	return &changerequests.ChangeRequest{
		ID:            uuid.NewString(),
		Name:          name,
		Description:   "timing report truncates slack column",
		Status:        changerequests.StatusSubmitted,
		Type:          changerequests.TypeDefect,
		Severity:      2,
		ToolKitName:   TestToolKit,
		ComponentName: TestComponent,
		CreatedBy:     TestUser,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
