//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/domain/events"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/domain/users"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/pkg/apperr"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserSqliteRepository(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	user := &users.User{
		Login:  "ccbchair",
		Name:   "CCB Chair",
		Roles:  []users.Role{users.RoleCCBApprover},
		Active: true,
	}
	require.NoError(t, tc.Repos.Users.Create(ctx, user))
	require.NoError(t, tc.Repos.Users.Create(ctx, &users.User{Login: "retired", Name: "Retired"}))

	fetched, err := tc.Repos.Users.GetByLogin(ctx, "ccbchair")
	require.NoError(t, err)
	assert.True(t, fetched.IsCCBApprover())

	active, err := tc.Repos.Users.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, active, 1)

	fetched.Active = false
	require.NoError(t, tc.Repos.Users.Update(ctx, fetched))
	fetched, err = tc.Repos.Users.GetByLogin(ctx, "ccbchair")
	require.NoError(t, err)
	assert.False(t, fetched.IsCCBApprover())

	_, err = tc.Repos.Users.GetByLogin(ctx, "nobody")
	assert.True(t, apperr.IsNotFound(err))
}

func TestLocationEventSqliteRepository_NewestFirst(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	base := time.Now().UTC()
	for i, name := range []string{"build_started", "build_finished", "shipped"} {
		require.NoError(t, tc.Repos.Events.Create(ctx, &events.LocationEvent{
			ID:            uuid.NewString(),
			ToolKitName:   TestToolKit,
			ComponentName: TestComponent,
			Location:      events.LocationBuild,
			Event:         name,
			User:          TestUser,
			CreatedAt:     base.Add(time.Duration(i) * time.Minute),
		}))
	}

	list, err := tc.Repos.Events.List(ctx, &events.EventQuery{ToolKitName: TestToolKit, Limit: 2})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "shipped", list[0].Event)
	assert.Equal(t, "build_finished", list[1].Event)

	list, err = tc.Repos.Events.List(ctx, &events.EventQuery{Location: events.LocationShip})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestMigrate_Idempotent(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	require.NoError(t, Migrate(tc.DB))
	for _, table := range Tables() {
		assert.True(t, tc.DB.Migrator().HasTable(table), table)
	}
}
