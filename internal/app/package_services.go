package app

import (
	"context"

	"github.com/google/uuid"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/domain/toolkits"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/pkg/apperr"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/pkg/logger"
)

// platformService implements the PlatformService interface
type platformService struct {
	platformRepo toolkits.PlatformRepository
	logger       logger.Logger
}

// NewPlatformService creates a new platformService instance
func NewPlatformService(platformRepo toolkits.PlatformRepository, logger logger.Logger) (toolkits.PlatformService, error) {
	return &platformService{platformRepo: platformRepo, logger: logger}, nil
}

func (s *platformService) Add(ctx context.Context, name, shortName, description string) (*toolkits.Platform, error) {
	if shortName == "" {
		shortName = name
	}
	platform := &toolkits.Platform{Name: name, ShortName: shortName, Description: description}
	if err := s.platformRepo.Create(ctx, platform); err != nil {
		return nil, err
	}
	s.logger.Info("Platform ", name, " added")
	return platform, nil
}

func (s *platformService) Get(ctx context.Context, name string) (*toolkits.Platform, error) {
	return s.platformRepo.GetByName(ctx, name)
}

func (s *platformService) List(ctx context.Context) ([]*toolkits.Platform, error) {
	return s.platformRepo.List(ctx)
}

// packageService implements the PackageService interface
type packageService struct {
	packageRepo  toolkits.ReleasePackageRepository
	toolKitRepo  toolkits.ToolKitRepository
	platformRepo toolkits.PlatformRepository
	versionRepo  toolkits.ComponentVersionRepository
	logger       logger.Logger
}

// NewPackageService creates a new packageService instance
func NewPackageService(
	packageRepo toolkits.ReleasePackageRepository,
	toolKitRepo toolkits.ToolKitRepository,
	platformRepo toolkits.PlatformRepository,
	versionRepo toolkits.ComponentVersionRepository,
	logger logger.Logger,
) (toolkits.PackageService, error) {
	return &packageService{
		packageRepo:  packageRepo,
		toolKitRepo:  toolKitRepo,
		platformRepo: platformRepo,
		versionRepo:  versionRepo,
		logger:       logger,
	}, nil
}

func (s *packageService) Add(ctx context.Context, actor, name, toolKitName, platformName string, components []string) (*toolkits.ReleasePackage, error) {
	if _, err := s.toolKitRepo.GetByName(ctx, toolKitName); err != nil {
		return nil, err
	}
	if _, err := s.platformRepo.GetByName(ctx, platformName); err != nil {
		return nil, err
	}

	if len(components) == 0 {
		versions, err := s.versionRepo.ListByToolKit(ctx, toolKitName)
		if err != nil {
			return nil, err
		}
		for _, v := range versions {
			components = append(components, v.ComponentName)
		}
		if len(components) == 0 {
			return nil, apperr.InvalidInput("tool kit %s has no components to package", toolKitName)
		}
	} else {
		for _, c := range components {
			if _, err := s.versionRepo.Get(ctx, toolKitName, c); err != nil {
				return nil, err
			}
		}
	}

	if name == "" {
		name = toolKitName + "-" + platformName
	}

	pkg := &toolkits.ReleasePackage{
		ID:           uuid.NewString(),
		Name:         name,
		ToolKitName:  toolKitName,
		PlatformName: platformName,
		Components:   components,
		CreatedBy:    actor,
		CreatedAt:    now(),
	}
	if err := s.packageRepo.Create(ctx, pkg); err != nil {
		return nil, err
	}
	s.logger.Info("Package ", name, " created with ", len(components), " components by ", actor)
	return pkg, nil
}

func (s *packageService) Get(ctx context.Context, name string) (*toolkits.ReleasePackage, error) {
	return s.packageRepo.GetByName(ctx, name)
}

func (s *packageService) List(ctx context.Context, toolKitName string) ([]*toolkits.ReleasePackage, error) {
	return s.packageRepo.List(ctx, toolKitName)
}
