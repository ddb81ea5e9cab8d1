package persistence

import (
	"context"
	"fmt"

	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/domain/users"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/infrastructure/persistence/models"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormUserRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormUserRepository creates a new GORM-based UserRepository implementation
func NewGormUserRepository(db *gorm.DB, logger logger.Logger) (users.UserRepository, error) {
	return &gormUserRepository{db: db, logger: logger}, nil
}

func (r *gormUserRepository) Create(ctx context.Context, user *users.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.UserModel{}
	model.FromDomain(user)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return translateError(err, "user", user.Login)
	}

	r.logger.Debug("Created user ", user.Login)
	return nil
}

func (r *gormUserRepository) GetByLogin(ctx context.Context, login string) (*users.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).Where("login = ?", login).First(&model).Error; err != nil {
		return nil, translateError(err, "user", login)
	}
	return model.ToDomain(), nil
}

func (r *gormUserRepository) List(ctx context.Context, activeOnly bool) ([]*users.User, error) {
	var modelList []*models.UserModel
	dbQuery := r.db.WithContext(ctx).Model(&models.UserModel{})
	if activeOnly {
		dbQuery = dbQuery.Where("active = ?", true)
	}

	if err := dbQuery.Order("login").Find(&modelList).Error; err != nil {
		return nil, translateError(err, "user", "list")
	}

	domainList := make([]*users.User, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormUserRepository) Update(ctx context.Context, user *users.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.UserModel{}
	model.FromDomain(user)

	result := r.db.WithContext(ctx).Model(model).Select("*").Updates(model)
	if err := requireRows(result, "user", user.Login); err != nil {
		return err
	}

	r.logger.Debug("Updated user ", user.Login)
	return nil
}
