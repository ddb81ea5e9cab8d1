package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// DatabaseSettings describes one database connection target.
type DatabaseSettings struct {
	Type        string `mapstructure:"type" validate:"required,oneof=sqlite postgres mysql"`
	DSN         string `mapstructure:"dsn" validate:"required"`
	DBName      string `mapstructure:"db_name" validate:"required"`
	AutoMigrate bool   `mapstructure:"auto_migrate"`
}

// Validate checks that all fields in DatabaseSettings are valid
func (s *DatabaseSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for DatabaseSettings: %w", err)
	}
	return nil
}
