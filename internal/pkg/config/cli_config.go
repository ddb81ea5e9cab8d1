package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables overriding file settings.
const EnvPrefix = "ETREE"

// DefaultConfigFile is looked up in the working directory when no path is given.
const DefaultConfigFile = "etree.yaml"

// CLIConfig is the complete configuration of the ETREE command-line suite.
type CLIConfig struct {
	Logger         LoggerSettings              `mapstructure:"logger"`
	Databases      map[string]DatabaseSettings `mapstructure:"databases"`
	DefaultTarget  string                      `mapstructure:"default_target" validate:"required"`
	SystemAccounts []string                    `mapstructure:"system_accounts"`
}

// InitializeCLIConfig reads the YAML file at path, applies ETREE_* environment
// overrides and validates the result. An empty path yields the built-in
// defaults: a console logger and a DEV sqlite database.
func InitializeCLIConfig(path string) (*CLIConfig, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var cfg CLIConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	// viper lower-cases map keys; targets are matched upper-case.
	normalized := make(map[string]DatabaseSettings, len(cfg.Databases))
	for target, settings := range cfg.Databases {
		normalized[strings.ToUpper(target)] = settings
	}
	cfg.Databases = normalized
	cfg.DefaultTarget = strings.ToUpper(cfg.DefaultTarget)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ResolveConfigPath picks the config file: the explicit flag value, then
// $ETREE_CONFIG, then ./etree.yaml when it exists. It returns "" when none
// applies.
func ResolveConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv(EnvPrefix + "_CONFIG"); env != "" {
		return env
	}
	if _, err := os.Stat(DefaultConfigFile); err == nil {
		return DefaultConfigFile
	}
	return ""
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("default_target", TargetDev)
	v.SetDefault("databases.dev.type", SqliteDbType)
	v.SetDefault("databases.dev.dsn", "etree-dev.db")
	v.SetDefault("databases.dev.db_name", "etree")
	v.SetDefault("databases.dev.auto_migrate", true)
}

// Validate checks the logger settings, every database target and that the
// default target is configured.
func (c *CLIConfig) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("validation failed for CLIConfig: %w", err)
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if len(c.Databases) == 0 {
		return errors.New("no database targets configured")
	}
	for target, settings := range c.Databases {
		if err := settings.Validate(); err != nil {
			return fmt.Errorf("database target %s: %w", target, err)
		}
	}
	if _, ok := c.Databases[c.DefaultTarget]; !ok {
		return fmt.Errorf("default target %s is not configured", c.DefaultTarget)
	}
	return nil
}

// Database returns the settings of target, or of the default target when
// target is empty.
func (c *CLIConfig) Database(target string) (*DatabaseSettings, error) {
	if target == "" {
		target = c.DefaultTarget
	}
	settings, ok := c.Databases[strings.ToUpper(target)]
	if !ok {
		return nil, fmt.Errorf("unknown database target %q (configured: %s)", target, strings.Join(c.Targets(), ", "))
	}
	return &settings, nil
}

// Targets lists the configured database targets in sorted order.
func (c *CLIConfig) Targets() []string {
	targets := make([]string, 0, len(c.Databases))
	for target := range c.Databases {
		targets = append(targets, target)
	}
	sort.Strings(targets)
	return targets
}
