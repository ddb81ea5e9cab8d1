package persistence

import (
	"context"
	"fmt"

	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/domain/toolkits"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/infrastructure/persistence/models"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormReleaseRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormReleaseRepository creates a new GORM-based ReleaseRepository implementation
func NewGormReleaseRepository(db *gorm.DB, logger logger.Logger) (toolkits.ReleaseRepository, error) {
	return &gormReleaseRepository{db: db, logger: logger}, nil
}

func (r *gormReleaseRepository) Create(ctx context.Context, release *toolkits.Release) error {
	if err := release.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ReleaseModel{}
	model.FromDomain(release)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return translateError(err, "release", release.Name)
	}

	r.logger.Debug("Created release ", release.Name)
	return nil
}

func (r *gormReleaseRepository) GetByName(ctx context.Context, name string) (*toolkits.Release, error) {
	var model models.ReleaseModel
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&model).Error; err != nil {
		return nil, translateError(err, "release", name)
	}
	return model.ToDomain(), nil
}

func (r *gormReleaseRepository) List(ctx context.Context) ([]*toolkits.Release, error) {
	var modelList []*models.ReleaseModel
	if err := r.db.WithContext(ctx).Order("name").Find(&modelList).Error; err != nil {
		return nil, translateError(err, "release", "list")
	}

	domainList := make([]*toolkits.Release, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

type gormToolKitRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormToolKitRepository creates a new GORM-based ToolKitRepository implementation
func NewGormToolKitRepository(db *gorm.DB, logger logger.Logger) (toolkits.ToolKitRepository, error) {
	return &gormToolKitRepository{db: db, logger: logger}, nil
}

func (r *gormToolKitRepository) Create(ctx context.Context, toolKit *toolkits.ToolKit) error {
	if err := toolKit.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ToolKitModel{}
	model.FromDomain(toolKit)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return translateError(err, "tool kit", toolKit.Name)
	}

	r.logger.Debug("Created tool kit ", toolKit.Name, " in stage ", toolKit.Stage)
	return nil
}

func (r *gormToolKitRepository) GetByName(ctx context.Context, name string) (*toolkits.ToolKit, error) {
	var model models.ToolKitModel
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&model).Error; err != nil {
		return nil, translateError(err, "tool kit", name)
	}
	return model.ToDomain(), nil
}

func (r *gormToolKitRepository) List(ctx context.Context, query *toolkits.ToolKitQuery) ([]*toolkits.ToolKit, error) {
	var modelList []*models.ToolKitModel
	dbQuery := r.db.WithContext(ctx).Model(&models.ToolKitModel{})

	if query != nil {
		if query.ReleaseName != "" {
			dbQuery = dbQuery.Where("release_name = ?", query.ReleaseName)
		}
		if query.Stage != "" {
			dbQuery = dbQuery.Where("stage = ?", string(query.Stage))
		}
	}

	if err := dbQuery.Order("name").Find(&modelList).Error; err != nil {
		return nil, translateError(err, "tool kit", "list")
	}

	domainList := make([]*toolkits.ToolKit, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormToolKitRepository) Update(ctx context.Context, toolKit *toolkits.ToolKit) error {
	if err := toolKit.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ToolKitModel{}
	model.FromDomain(toolKit)

	result := r.db.WithContext(ctx).Model(model).Select("*").Updates(model)
	if err := requireRows(result, "tool kit", toolKit.Name); err != nil {
		return err
	}

	r.logger.Debug("Updated tool kit ", toolKit.Name)
	return nil
}

type gormComponentTypeRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormComponentTypeRepository creates a new GORM-based ComponentTypeRepository implementation
func NewGormComponentTypeRepository(db *gorm.DB, logger logger.Logger) (toolkits.ComponentTypeRepository, error) {
	return &gormComponentTypeRepository{db: db, logger: logger}, nil
}

func (r *gormComponentTypeRepository) Create(ctx context.Context, componentType *toolkits.ComponentType) error {
	if err := componentType.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ComponentTypeModel{}
	model.FromDomain(componentType)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return translateError(err, "component type", componentType.Name)
	}

	r.logger.Debug("Created component type ", componentType.Name)
	return nil
}

func (r *gormComponentTypeRepository) GetByName(ctx context.Context, name string) (*toolkits.ComponentType, error) {
	var model models.ComponentTypeModel
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&model).Error; err != nil {
		return nil, translateError(err, "component type", name)
	}
	return model.ToDomain(), nil
}

func (r *gormComponentTypeRepository) List(ctx context.Context) ([]*toolkits.ComponentType, error) {
	var modelList []*models.ComponentTypeModel
	if err := r.db.WithContext(ctx).Order("name").Find(&modelList).Error; err != nil {
		return nil, translateError(err, "component type", "list")
	}

	domainList := make([]*toolkits.ComponentType, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormComponentTypeRepository) Update(ctx context.Context, componentType *toolkits.ComponentType) error {
	if err := componentType.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ComponentTypeModel{}
	model.FromDomain(componentType)

	result := r.db.WithContext(ctx).Model(model).Select("*").Updates(model)
	return requireRows(result, "component type", componentType.Name)
}

type gormComponentRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormComponentRepository creates a new GORM-based ComponentRepository implementation
func NewGormComponentRepository(db *gorm.DB, logger logger.Logger) (toolkits.ComponentRepository, error) {
	return &gormComponentRepository{db: db, logger: logger}, nil
}

func (r *gormComponentRepository) Create(ctx context.Context, component *toolkits.Component) error {
	if err := component.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ComponentModel{}
	model.FromDomain(component)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return translateError(err, "component", component.Name)
	}

	r.logger.Debug("Created component ", component.Name)
	return nil
}

func (r *gormComponentRepository) GetByName(ctx context.Context, name string) (*toolkits.Component, error) {
	var model models.ComponentModel
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&model).Error; err != nil {
		return nil, translateError(err, "component", name)
	}
	return model.ToDomain(), nil
}

func (r *gormComponentRepository) List(ctx context.Context, typeName string) ([]*toolkits.Component, error) {
	var modelList []*models.ComponentModel
	dbQuery := r.db.WithContext(ctx).Model(&models.ComponentModel{})
	if typeName != "" {
		dbQuery = dbQuery.Where("component_type_name = ?", typeName)
	}

	if err := dbQuery.Order("name").Find(&modelList).Error; err != nil {
		return nil, translateError(err, "component", "list")
	}

	domainList := make([]*toolkits.Component, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

type gormComponentVersionRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormComponentVersionRepository creates a new GORM-based ComponentVersionRepository implementation
func NewGormComponentVersionRepository(db *gorm.DB, logger logger.Logger) (toolkits.ComponentVersionRepository, error) {
	return &gormComponentVersionRepository{db: db, logger: logger}, nil
}

func (r *gormComponentVersionRepository) Create(ctx context.Context, version *toolkits.ComponentVersion) error {
	if err := version.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ComponentVersionModel{}
	model.FromDomain(version)

	name := version.ComponentName + " in tool kit " + version.ToolKitName
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return translateError(err, "component", name)
	}

	r.logger.Debug("Linked component ", name)
	return nil
}

func (r *gormComponentVersionRepository) Get(ctx context.Context, toolKitName, componentName string) (*toolkits.ComponentVersion, error) {
	var model models.ComponentVersionModel
	err := r.db.WithContext(ctx).
		Where("tool_kit_name = ? AND component_name = ?", toolKitName, componentName).
		First(&model).Error
	if err != nil {
		return nil, translateError(err, "component", componentName+" in tool kit "+toolKitName)
	}
	return model.ToDomain(), nil
}

func (r *gormComponentVersionRepository) ListByToolKit(ctx context.Context, toolKitName string) ([]*toolkits.ComponentVersion, error) {
	var modelList []*models.ComponentVersionModel
	err := r.db.WithContext(ctx).
		Where("tool_kit_name = ?", toolKitName).
		Order("component_name").
		Find(&modelList).Error
	if err != nil {
		return nil, translateError(err, "tool kit", toolKitName)
	}

	domainList := make([]*toolkits.ComponentVersion, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

type gormPlatformRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormPlatformRepository creates a new GORM-based PlatformRepository implementation
func NewGormPlatformRepository(db *gorm.DB, logger logger.Logger) (toolkits.PlatformRepository, error) {
	return &gormPlatformRepository{db: db, logger: logger}, nil
}

func (r *gormPlatformRepository) Create(ctx context.Context, platform *toolkits.Platform) error {
	if err := platform.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.PlatformModel{}
	model.FromDomain(platform)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return translateError(err, "platform", platform.Name)
	}

	r.logger.Debug("Created platform ", platform.Name)
	return nil
}

func (r *gormPlatformRepository) GetByName(ctx context.Context, name string) (*toolkits.Platform, error) {
	var model models.PlatformModel
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&model).Error; err != nil {
		return nil, translateError(err, "platform", name)
	}
	return model.ToDomain(), nil
}

func (r *gormPlatformRepository) List(ctx context.Context) ([]*toolkits.Platform, error) {
	var modelList []*models.PlatformModel
	if err := r.db.WithContext(ctx).Order("name").Find(&modelList).Error; err != nil {
		return nil, translateError(err, "platform", "list")
	}

	domainList := make([]*toolkits.Platform, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

type gormReleasePackageRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormReleasePackageRepository creates a new GORM-based ReleasePackageRepository implementation
func NewGormReleasePackageRepository(db *gorm.DB, logger logger.Logger) (toolkits.ReleasePackageRepository, error) {
	return &gormReleasePackageRepository{db: db, logger: logger}, nil
}

func (r *gormReleasePackageRepository) Create(ctx context.Context, pkg *toolkits.ReleasePackage) error {
	if err := pkg.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ReleasePackageModel{}
	model.FromDomain(pkg)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return translateError(err, "package", pkg.Name)
	}

	r.logger.Debug("Created package ", pkg.Name, " with id ", pkg.ID)
	return nil
}

func (r *gormReleasePackageRepository) GetByName(ctx context.Context, name string) (*toolkits.ReleasePackage, error) {
	var model models.ReleasePackageModel
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&model).Error; err != nil {
		return nil, translateError(err, "package", name)
	}
	return model.ToDomain(), nil
}

func (r *gormReleasePackageRepository) List(ctx context.Context, toolKitName string) ([]*toolkits.ReleasePackage, error) {
	var modelList []*models.ReleasePackageModel
	dbQuery := r.db.WithContext(ctx).Model(&models.ReleasePackageModel{})
	if toolKitName != "" {
		dbQuery = dbQuery.Where("tool_kit_name = ?", toolKitName)
	}

	if err := dbQuery.Order("name").Find(&modelList).Error; err != nil {
		return nil, translateError(err, "package", "list")
	}

	domainList := make([]*toolkits.ReleasePackage, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}
