package persistence

import (
	"errors"

	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/pkg/apperr"

	"gorm.io/gorm"
)

// translateError maps a GORM error on the row kind/name to a domain error.
func translateError(err error, kind, name string) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperr.NotFound(kind, name)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperr.AlreadyExists(kind, name)
	default:
		return apperr.Database(err, "failed to access %s %s", kind, name)
	}
}

// requireRows turns an update or delete that matched nothing into a lookup failure.
func requireRows(result *gorm.DB, kind, name string) error {
	if result.Error != nil {
		return translateError(result.Error, kind, name)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound(kind, name)
	}
	return nil
}
