//go:build integration
// +build integration

package commands

import (
	"bytes"
	"context"
	"testing"

	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/infrastructure/persistence"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/pkg/config"

	"gorm.io/gorm"
)

const testSystemAccount = "etreebld"

// cli runs etree-cli invocations against one seeded in-memory database.
type cli struct {
	t   *testing.T
	db  *gorm.DB
	cfg *config.CLIConfig
}

func newCLI(t *testing.T) *cli {
	t.Helper()
	tc := persistence.SetupTestDB(t, config.SqliteDbType)
	persistence.SeedToolKits(t, tc)

	cfg := &config.CLIConfig{
		Logger: config.LoggerSettings{LogLevel: config.LogLevelInfo, LogType: config.LogTypeConsole},
		Databases: map[string]config.DatabaseSettings{
			config.TargetDev: {Type: config.SqliteDbType, DSN: ":memory:"},
		},
		DefaultTarget:  config.TargetDev,
		SystemAccounts: []string{testSystemAccount},
	}
	return &cli{t: t, db: tc.DB, cfg: cfg}
}

// run executes one invocation on a fresh command tree, since cobra keeps
// flag values between executions.
func (c *cli) run(args ...string) (string, ExitCode, error) {
	c.t.Helper()
	var out bytes.Buffer
	root := NewRootCommand(WithDB(c.db), WithConfig(c.cfg), WithOutput(&out))
	root.SetArgs(args)
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	err := root.ExecuteContext(context.Background())
	return out.String(), ExitCodeOf(err), err
}

// as runs an invocation with --actor set.
func (c *cli) as(actor string, args ...string) (string, ExitCode, error) {
	c.t.Helper()
	return c.run(append([]string{"--actor", actor}, args...)...)
}
