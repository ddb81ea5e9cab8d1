package persistence

import (
	"fmt"

	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/infrastructure/persistence/models"

	"gorm.io/gorm"
)

// Migrate creates or updates every ETREE table.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// Tables lists the table names managed by Migrate.
func Tables() []string {
	var names []string
	for _, m := range models.All() {
		if t, ok := m.(interface{ TableName() string }); ok {
			names = append(names, t.TableName())
		}
	}
	return names
}
