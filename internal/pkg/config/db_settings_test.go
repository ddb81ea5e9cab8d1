//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDatabaseSettingsValidation(t *testing.T) {
	tests := []struct {
		name          string
		settings      *DatabaseSettings
		expectedError bool
	}{
		{
			name: "valid postgres settings",
			settings: &DatabaseSettings{
				Type:   PostgresDbType,
				DSN:    "user=etree password=etree host=localhost port=5432 sslmode=disable",
				DBName: "etree",
			},
			expectedError: false,
		},
		{
			name: "valid sqlite settings",
			settings: &DatabaseSettings{
				Type:        SqliteDbType,
				DSN:         "etree-dev.db",
				DBName:      "etree",
				AutoMigrate: true,
			},
			expectedError: false,
		},
		{
			name: "unsupported type",
			settings: &DatabaseSettings{
				Type:   "oracle",
				DSN:    "etree/etree@localhost",
				DBName: "etree",
			},
			expectedError: true,
		},
		{
			name: "missing type",
			settings: &DatabaseSettings{
				DSN:    "etree:etree@tcp(localhost:3306)/etree",
				DBName: "etree",
			},
			expectedError: true,
		},
		{
			name: "missing DSN",
			settings: &DatabaseSettings{
				Type:   MysqlDbType,
				DBName: "etree",
			},
			expectedError: true,
		},
		{
			name: "missing name",
			settings: &DatabaseSettings{
				Type: MysqlDbType,
				DSN:  "etree:etree@tcp(localhost:3306)/etree",
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()

			if tt.expectedError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
