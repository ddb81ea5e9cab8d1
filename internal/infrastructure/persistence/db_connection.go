package persistence

import (
	"fmt"
	"log"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/pkg/config"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/pkg/logger"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewDBConnection creates a database connection for the given target settings.
// SQL traces are routed to log at debug level; a nil log silences them.
func NewDBConnection(settings config.DatabaseSettings, log logger.Logger) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	cfg := gormConfig(log)

	switch settings.Type {
	case config.PostgresDbType:
		db, err = connectPostgres(settings, cfg)
	case config.MysqlDbType:
		db, err = connectMySQL(settings, cfg)
	case config.SqliteDbType:
		db, err = connectSQLite(settings, cfg)
	default:
		return nil, fmt.Errorf("unsupported database type: %s", settings.Type)
	}

	if err != nil {
		return nil, err
	}

	return db, nil
}

func gormConfig(log logger.Logger) *gorm.Config {
	cfg := &gorm.Config{TranslateError: true}
	if log == nil {
		cfg.Logger = gormlogger.Default.LogMode(gormlogger.Silent)
		return cfg
	}
	cfg.Logger = gormlogger.New(gormWriter{log: log}, gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  gormlogger.Info,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
	return cfg
}

// gormWriter adapts the application logger to gorm's logger.Writer.
type gormWriter struct {
	log logger.Logger
}

func (w gormWriter) Printf(format string, args ...interface{}) {
	w.log.Debug(fmt.Sprintf(format, args...))
}

// connectPostgres establishes PostgreSQL connection with optional database creation
func connectPostgres(settings config.DatabaseSettings, cfg *gorm.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(settings.DSN), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	if settings.DBName != "" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get raw DB connection: %w", err)
		}

		if settings.AutoMigrate {
			// Idempotent; an existing database makes this fail silently.
			_, _ = sqlDB.Exec(fmt.Sprintf("CREATE DATABASE %s", settings.DBName))
		}

		if err := sqlDB.Close(); err != nil {
			return nil, fmt.Errorf("failed to close initial DB connection: %w", err)
		}

		dsn := fmt.Sprintf("%s dbname=%s", settings.DSN, settings.DBName)
		db, err = gorm.Open(postgres.Open(dsn), cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database '%s': %w", settings.DBName, err)
		}
	}

	return db, nil
}

// connectMySQL establishes a MySQL connection. The database name of the
// settings overrides the one in the DSN.
func connectMySQL(settings config.DatabaseSettings, cfg *gorm.Config) (*gorm.DB, error) {
	dsnConfig, err := mysqldriver.ParseDSN(settings.DSN)
	if err != nil {
		return nil, fmt.Errorf("invalid MySQL DSN: %w", err)
	}
	if settings.DBName != "" {
		dsnConfig.DBName = settings.DBName
	}
	dsnConfig.ParseTime = true
	// Updates report matched rows, as on the other drivers.
	dsnConfig.ClientFoundRows = true

	db, err := gorm.Open(mysql.Open(dsnConfig.FormatDSN()), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MySQL: %w", err)
	}
	return db, nil
}

// connectSQLite establishes SQLite connection
func connectSQLite(settings config.DatabaseSettings, cfg *gorm.Config) (*gorm.DB, error) {
	dsn := settings.DSN
	if dsn == "" {
		dsn = ":memory:"
	}

	db, err := gorm.Open(sqlite.Open(dsn), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite: %w", err)
	}

	// One connection: an in-memory database lives and dies with it, and the
	// invocation transaction must see every write.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get raw DB connection: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

// CloseDB closes the database connection
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}

// DropDatabase drops a PostgreSQL database (test cleanup utility)
func DropDatabase(adminDSN, dbName string) error {
	db, err := gorm.Open(postgres.Open(adminDSN), gormConfig(nil))
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer func() {
		if err := CloseDB(db); err != nil {
			log.Printf("Warning: failed to close database connection: %v", err)
		}
	}()

	err = db.Exec(fmt.Sprintf("DROP DATABASE IF EXISTS %s", dbName)).Error
	if err != nil {
		return fmt.Errorf("failed to drop database '%s': %w", dbName, err)
	}

	return nil
}
