package app

import (
	"context"

	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/domain/toolkits"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/pkg/logger"
)

// componentService implements the ComponentService interface
type componentService struct {
	componentRepo toolkits.ComponentRepository
	typeRepo      toolkits.ComponentTypeRepository
	versionRepo   toolkits.ComponentVersionRepository
	toolKitRepo   toolkits.ToolKitRepository
	logger        logger.Logger
}

// NewComponentService creates a new componentService instance
func NewComponentService(
	componentRepo toolkits.ComponentRepository,
	typeRepo toolkits.ComponentTypeRepository,
	versionRepo toolkits.ComponentVersionRepository,
	toolKitRepo toolkits.ToolKitRepository,
	logger logger.Logger,
) (toolkits.ComponentService, error) {
	return &componentService{
		componentRepo: componentRepo,
		typeRepo:      typeRepo,
		versionRepo:   versionRepo,
		toolKitRepo:   toolKitRepo,
		logger:        logger,
	}, nil
}

func (s *componentService) Add(ctx context.Context, actor, name, typeName, description string) (*toolkits.Component, error) {
	if _, err := s.typeRepo.GetByName(ctx, typeName); err != nil {
		return nil, err
	}

	component := &toolkits.Component{
		Name:              name,
		ComponentTypeName: typeName,
		Description:       description,
		CreatedBy:         actor,
		CreatedAt:         now(),
	}
	if err := s.componentRepo.Create(ctx, component); err != nil {
		return nil, err
	}
	s.logger.Info("Component ", name, " of type ", typeName, " added by ", actor)
	return component, nil
}

func (s *componentService) Get(ctx context.Context, name string) (*toolkits.Component, error) {
	return s.componentRepo.GetByName(ctx, name)
}

func (s *componentService) List(ctx context.Context, typeName string) ([]*toolkits.Component, error) {
	if typeName != "" {
		if _, err := s.typeRepo.GetByName(ctx, typeName); err != nil {
			return nil, err
		}
	}
	return s.componentRepo.List(ctx, typeName)
}

func (s *componentService) Link(ctx context.Context, actor, toolKitName, componentName, owner string) (*toolkits.ComponentVersion, error) {
	if _, err := s.toolKitRepo.GetByName(ctx, toolKitName); err != nil {
		return nil, err
	}
	if _, err := s.componentRepo.GetByName(ctx, componentName); err != nil {
		return nil, err
	}
	if owner == "" {
		owner = actor
	}

	version := &toolkits.ComponentVersion{
		ToolKitName:   toolKitName,
		ComponentName: componentName,
		Owner:         owner,
		CreatedAt:     now(),
	}
	if err := s.versionRepo.Create(ctx, version); err != nil {
		return nil, err
	}
	s.logger.Info("Component ", componentName, " linked to tool kit ", toolKitName, " by ", actor)
	return version, nil
}

func (s *componentService) ListByToolKit(ctx context.Context, toolKitName string) ([]*toolkits.ComponentVersion, error) {
	if _, err := s.toolKitRepo.GetByName(ctx, toolKitName); err != nil {
		return nil, err
	}
	return s.versionRepo.ListByToolKit(ctx, toolKitName)
}

// componentTypeService implements the ComponentTypeService interface
type componentTypeService struct {
	typeRepo toolkits.ComponentTypeRepository
	logger   logger.Logger
}

// NewComponentTypeService creates a new componentTypeService instance
func NewComponentTypeService(typeRepo toolkits.ComponentTypeRepository, logger logger.Logger) (toolkits.ComponentTypeService, error) {
	return &componentTypeService{typeRepo: typeRepo, logger: logger}, nil
}

func (s *componentTypeService) Add(ctx context.Context, name, description string) (*toolkits.ComponentType, error) {
	componentType := &toolkits.ComponentType{Name: name, Description: description}
	if err := s.typeRepo.Create(ctx, componentType); err != nil {
		return nil, err
	}
	s.logger.Info("Component type ", name, " added")
	return componentType, nil
}

func (s *componentTypeService) Get(ctx context.Context, name string) (*toolkits.ComponentType, error) {
	return s.typeRepo.GetByName(ctx, name)
}

func (s *componentTypeService) List(ctx context.Context) ([]*toolkits.ComponentType, error) {
	return s.typeRepo.List(ctx)
}

func (s *componentTypeService) Update(ctx context.Context, name, description string) (*toolkits.ComponentType, error) {
	componentType, err := s.typeRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	componentType.Description = description
	if err := s.typeRepo.Update(ctx, componentType); err != nil {
		return nil, err
	}
	s.logger.Info("Component type ", name, " updated")
	return componentType, nil
}
