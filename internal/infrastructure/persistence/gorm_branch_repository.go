package persistence

import (
	"context"
	"fmt"

	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/domain/branches"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/infrastructure/persistence/models"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormBranchRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormBranchRepository creates a new GORM-based BranchRepository implementation
func NewGormBranchRepository(db *gorm.DB, logger logger.Logger) (branches.BranchRepository, error) {
	return &gormBranchRepository{db: db, logger: logger}, nil
}

func branchKey(name, componentName, toolKitName string) string {
	return fmt.Sprintf("%s of %s in tool kit %s", name, componentName, toolKitName)
}

func (r *gormBranchRepository) Create(ctx context.Context, branch *branches.Branch) error {
	if err := branch.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.BranchModel{}
	model.FromDomain(branch)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return translateError(err, "branch", branchKey(branch.Name, branch.ComponentName, branch.ToolKitName))
	}

	r.logger.Debug("Created branch ", branchKey(branch.Name, branch.ComponentName, branch.ToolKitName))
	return nil
}

func (r *gormBranchRepository) Get(ctx context.Context, name, componentName, toolKitName string) (*branches.Branch, error) {
	var model models.BranchModel
	err := r.db.WithContext(ctx).
		Where("name = ? AND component_name = ? AND tool_kit_name = ?", name, componentName, toolKitName).
		First(&model).Error
	if err != nil {
		return nil, translateError(err, "branch", branchKey(name, componentName, toolKitName))
	}
	return model.ToDomain(), nil
}

func (r *gormBranchRepository) List(ctx context.Context, query *branches.BranchQuery) ([]*branches.Branch, error) {
	var modelList []*models.BranchModel
	dbQuery := r.db.WithContext(ctx).Model(&models.BranchModel{})

	if query != nil {
		if query.Name != "" {
			dbQuery = dbQuery.Where("name = ?", query.Name)
		}
		if query.ComponentName != "" {
			dbQuery = dbQuery.Where("component_name = ?", query.ComponentName)
		}
		if query.ToolKitName != "" {
			dbQuery = dbQuery.Where("tool_kit_name = ?", query.ToolKitName)
		}
	}

	if err := dbQuery.Order("tool_kit_name, component_name, name").Find(&modelList).Error; err != nil {
		return nil, translateError(err, "branch", "list")
	}

	domainList := make([]*branches.Branch, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormBranchRepository) Update(ctx context.Context, branch *branches.Branch) error {
	if err := branch.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.BranchModel{}
	model.FromDomain(branch)

	key := branchKey(branch.Name, branch.ComponentName, branch.ToolKitName)
	result := r.db.WithContext(ctx).Model(model).Select("*").Updates(model)
	if err := requireRows(result, "branch", key); err != nil {
		return err
	}

	r.logger.Debug("Updated branch ", key)
	return nil
}

func (r *gormBranchRepository) Delete(ctx context.Context, name, componentName, toolKitName string) error {
	key := branchKey(name, componentName, toolKitName)
	result := r.db.WithContext(ctx).
		Where("name = ? AND component_name = ? AND tool_kit_name = ?", name, componentName, toolKitName).
		Delete(&models.BranchModel{})
	if err := requireRows(result, "branch", key); err != nil {
		return err
	}

	r.logger.Debug("Deleted branch ", key)
	return nil
}
