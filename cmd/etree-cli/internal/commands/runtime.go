package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/app"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/infrastructure/persistence"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/pkg/apperr"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/pkg/config"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/pkg/logger"

	"gorm.io/gorm"
)

// Env is what a verb executes against: the services bound to the
// invocation transaction.
type Env struct {
	*app.Services
	Tx  *gorm.DB
	Log logger.Logger
}

// Runtime owns the per-process resources: configuration, logger and the
// database handle.
type Runtime struct {
	globals *globalFlags
	out     io.Writer
	cfg     *config.CLIConfig
	db      *gorm.DB
}

// Option customises a Runtime.
type Option func(*Runtime)

// WithOutput sends reports to w instead of stdout.
func WithOutput(w io.Writer) Option {
	return func(rt *Runtime) { rt.out = w }
}

// WithConfig uses cfg instead of loading a config file.
func WithConfig(cfg *config.CLIConfig) Option {
	return func(rt *Runtime) { rt.cfg = cfg }
}

// WithDB runs every invocation on db. The handle is not closed.
func WithDB(db *gorm.DB) Option {
	return func(rt *Runtime) { rt.db = db }
}

func newRuntime(opts ...Option) *Runtime {
	rt := &Runtime{globals: &globalFlags{}, out: os.Stdout}
	for _, opt := range opts {
		opt(rt)
	}
	return rt
}

func (rt *Runtime) config() (*config.CLIConfig, error) {
	if rt.cfg != nil {
		return rt.cfg, nil
	}
	cfg, err := config.InitializeCLIConfig(config.ResolveConfigPath(rt.globals.configPath))
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeInvalidConfiguration, err, "failed to load configuration")
	}
	rt.cfg = cfg
	return cfg, nil
}

// Invocation resolves the global switches against the configuration.
func (rt *Runtime) Invocation() (Invocation, *config.CLIConfig, error) {
	cfg, err := rt.config()
	if err != nil {
		return Invocation{}, nil, err
	}
	inv, err := newInvocation(rt.globals, cfg)
	if err != nil {
		return Invocation{}, nil, err
	}
	return inv, cfg, nil
}

// Run opens the target database and calls fn inside one transaction, which
// commits when fn returns nil and rolls back otherwise.
func (rt *Runtime) Run(ctx context.Context, inv Invocation, cfg *config.CLIConfig, fn func(ctx context.Context, env *Env) error) error {
	log, err := setupLogger(cfg.Logger.WithVerbose(inv.Verbose))
	if err != nil {
		return err
	}

	db, closeDB, err := rt.open(cfg, inv.Target, log)
	if err != nil {
		return err
	}
	defer closeDB()

	log.Debug("Running as ", inv.Actor, " on ", inv.Target)
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos, err := persistence.NewRepositories(tx, log)
		if err != nil {
			return fmt.Errorf("failed to create repositories: %w", err)
		}
		services, err := app.NewServices(repos, app.Options{SystemAccounts: cfg.SystemAccounts}, log)
		if err != nil {
			return fmt.Errorf("failed to create services: %w", err)
		}
		return fn(ctx, &Env{Services: services, Tx: tx, Log: log})
	})
}

func (rt *Runtime) open(cfg *config.CLIConfig, target string, log logger.Logger) (*gorm.DB, func(), error) {
	if rt.db != nil {
		return rt.db, func() {}, nil
	}

	settings, err := cfg.Database(target)
	if err != nil {
		return nil, nil, apperr.Wrap(apperr.CodeInvalidConfiguration, err, "invalid database target")
	}

	db, err := persistence.NewDBConnection(*settings, log)
	if err != nil {
		return nil, nil, apperr.Database(err, "failed to open %s database", target)
	}
	closeDB := func() {
		if err := persistence.CloseDB(db); err != nil {
			log.Warn("Failed to close database: ", err)
		}
	}

	if settings.AutoMigrate {
		if err := persistence.Migrate(db); err != nil {
			closeDB()
			return nil, nil, apperr.Database(err, "failed to migrate %s database", target)
		}
	}
	return db, closeDB, nil
}
