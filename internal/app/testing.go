//go:build integration
// +build integration

package app

import (
	"testing"

	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/infrastructure/persistence"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/pkg/config"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// TestSystemAccount is listed as a system account in every test setup.
const TestSystemAccount = "etreebld"

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	*Services

	// Infrastructure
	DBContext *persistence.TestContext
}

// SetupTestServices initializes all application services for integration
// tests on a seeded database.
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	log := testutil.SetupTestLogger(t)
	dbContext := persistence.SetupTestDB(t, dbType)
	persistence.SeedToolKits(t, dbContext)

	services, err := NewServices(dbContext.Repos, Options{SystemAccounts: []string{TestSystemAccount}}, log)
	require.NoError(t, err)

	return &TestServices{Services: services, DBContext: dbContext}
}

// SetupSqliteTestServices is SetupTestServices on an in-memory sqlite database.
func SetupSqliteTestServices(t *testing.T) *TestServices {
	t.Helper()
	return SetupTestServices(t, config.SqliteDbType)
}
