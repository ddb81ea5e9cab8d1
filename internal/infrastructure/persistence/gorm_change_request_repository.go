package persistence

import (
	"context"
	"fmt"

	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/domain/changerequests"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/infrastructure/persistence/models"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/pkg/apperr"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormChangeRequestRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormChangeRequestRepository creates a new GORM-based ChangeRequestRepository implementation
func NewGormChangeRequestRepository(db *gorm.DB, logger logger.Logger) (changerequests.ChangeRequestRepository, error) {
	return &gormChangeRequestRepository{db: db, logger: logger}, nil
}

func (r *gormChangeRequestRepository) Create(ctx context.Context, cr *changerequests.ChangeRequest) error {
	if err := cr.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ChangeRequestModel{}
	model.FromDomain(cr)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return translateError(err, "change request", cr.Name)
	}

	r.logger.Debug("Created change request ", cr.Name, " with id ", cr.ID)
	return nil
}

func (r *gormChangeRequestRepository) GetByName(ctx context.Context, name string) (*changerequests.ChangeRequest, error) {
	var model models.ChangeRequestModel
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&model).Error; err != nil {
		return nil, translateError(err, "change request", name)
	}
	return model.ToDomain(), nil
}

func (r *gormChangeRequestRepository) List(ctx context.Context, query *changerequests.ChangeRequestQuery) ([]*changerequests.ChangeRequest, error) {
	var modelList []*models.ChangeRequestModel
	dbQuery := r.db.WithContext(ctx).Model(&models.ChangeRequestModel{})

	if query != nil {
		if query.ToolKitName != "" {
			dbQuery = dbQuery.Where("tool_kit_name = ?", query.ToolKitName)
		}
		if query.ComponentName != "" {
			dbQuery = dbQuery.Where("component_name = ?", query.ComponentName)
		}
		if query.Status != "" {
			dbQuery = dbQuery.Where("status = ?", string(query.Status))
		}
		if query.Type != "" {
			dbQuery = dbQuery.Where("type = ?", string(query.Type))
		}
		if query.Limit > 0 {
			dbQuery = dbQuery.Limit(query.Limit)
		}
	}

	if err := dbQuery.Order("tool_kit_name, component_name, name").Find(&modelList).Error; err != nil {
		return nil, translateError(err, "change request", "list")
	}

	domainList := make([]*changerequests.ChangeRequest, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormChangeRequestRepository) Update(ctx context.Context, cr *changerequests.ChangeRequest) error {
	if err := cr.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ChangeRequestModel{}
	model.FromDomain(cr)

	result := r.db.WithContext(ctx).Model(model).Select("*").Updates(model)
	if err := requireRows(result, "change request", cr.Name); err != nil {
		return err
	}

	r.logger.Debug("Updated change request ", cr.Name)
	return nil
}

// SaveTransition writes the new status only if the stored status still equals
// history.FromStatus, then appends the history row.
func (r *gormChangeRequestRepository) SaveTransition(ctx context.Context, cr *changerequests.ChangeRequest, history *changerequests.History) error {
	if err := history.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.ChangeRequestModel{}).
			Where("id = ? AND status = ?", cr.ID, string(history.FromStatus)).
			Updates(map[string]interface{}{
				"status":     string(history.ToStatus),
				"updated_by": cr.UpdatedBy,
				"updated_at": cr.UpdatedAt,
			})
		if result.Error != nil {
			return translateError(result.Error, "change request", cr.Name)
		}
		if result.RowsAffected == 0 {
			return apperr.New(apperr.CodeConflict, "change request %s is no longer %s", cr.Name, history.FromStatus)
		}

		model := &models.ChangeRequestHistoryModel{}
		model.FromDomain(history)
		if err := tx.Create(model).Error; err != nil {
			return translateError(err, "history entry", history.ID)
		}

		r.logger.Debug("Moved change request ", cr.Name, " from ", history.FromStatus, " to ", history.ToStatus)
		return nil
	})
}

func (r *gormChangeRequestRepository) History(ctx context.Context, changeRequestID string) ([]*changerequests.History, error) {
	var modelList []*models.ChangeRequestHistoryModel
	err := r.db.WithContext(ctx).
		Where("change_request_id = ?", changeRequestID).
		Order("created_at").
		Order("id").
		Find(&modelList).Error
	if err != nil {
		return nil, translateError(err, "change request", changeRequestID)
	}

	domainList := make([]*changerequests.History, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}
