package persistence

import (
	"context"
	"fmt"

	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/domain/events"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/infrastructure/persistence/models"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormLocationEventRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormLocationEventRepository creates a new GORM-based LocationEventRepository implementation
func NewGormLocationEventRepository(db *gorm.DB, logger logger.Logger) (events.LocationEventRepository, error) {
	return &gormLocationEventRepository{db: db, logger: logger}, nil
}

func (r *gormLocationEventRepository) Create(ctx context.Context, event *events.LocationEvent) error {
	if err := event.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.LocationEventModel{}
	model.FromDomain(event)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return translateError(err, "event", event.ID)
	}

	r.logger.Debug("Created location event with id ", event.ID)
	return nil
}

func (r *gormLocationEventRepository) List(ctx context.Context, query *events.EventQuery) ([]*events.LocationEvent, error) {
	var modelList []*models.LocationEventModel
	dbQuery := r.db.WithContext(ctx).Model(&models.LocationEventModel{})

	if query != nil {
		if query.ToolKitName != "" {
			dbQuery = dbQuery.Where("tool_kit_name = ?", query.ToolKitName)
		}
		if query.ComponentName != "" {
			dbQuery = dbQuery.Where("component_name = ?", query.ComponentName)
		}
		if query.Location != "" {
			dbQuery = dbQuery.Where("location = ?", string(query.Location))
		}
		if query.Limit > 0 {
			dbQuery = dbQuery.Limit(query.Limit)
		}
	}

	if err := dbQuery.Order("created_at DESC").Order("id").Find(&modelList).Error; err != nil {
		return nil, translateError(err, "event", "list")
	}

	domainList := make([]*events.LocationEvent, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}
