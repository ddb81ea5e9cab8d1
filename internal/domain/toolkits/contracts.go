package toolkits

import (
	"context"
)

// ReleaseRepository defines persistence operations for releases.
type ReleaseRepository interface {
	Create(ctx context.Context, release *Release) error
	GetByName(ctx context.Context, name string) (*Release, error)
	List(ctx context.Context) ([]*Release, error)
}

// ToolKitRepository defines persistence operations for tool kits.
type ToolKitRepository interface {
	Create(ctx context.Context, toolKit *ToolKit) error
	GetByName(ctx context.Context, name string) (*ToolKit, error)
	List(ctx context.Context, query *ToolKitQuery) ([]*ToolKit, error)
	Update(ctx context.Context, toolKit *ToolKit) error
}

// ComponentTypeRepository defines persistence operations for component types.
type ComponentTypeRepository interface {
	Create(ctx context.Context, componentType *ComponentType) error
	GetByName(ctx context.Context, name string) (*ComponentType, error)
	List(ctx context.Context) ([]*ComponentType, error)
	Update(ctx context.Context, componentType *ComponentType) error
}

// ComponentRepository defines persistence operations for components.
type ComponentRepository interface {
	Create(ctx context.Context, component *Component) error
	GetByName(ctx context.Context, name string) (*Component, error)
	// List returns all components, restricted to one type when typeName is set.
	List(ctx context.Context, typeName string) ([]*Component, error)
}

// ComponentVersionRepository defines persistence operations for the
// tool kit/component pairings.
type ComponentVersionRepository interface {
	Create(ctx context.Context, version *ComponentVersion) error
	Get(ctx context.Context, toolKitName, componentName string) (*ComponentVersion, error)
	ListByToolKit(ctx context.Context, toolKitName string) ([]*ComponentVersion, error)
}

// PlatformRepository defines persistence operations for platforms.
type PlatformRepository interface {
	Create(ctx context.Context, platform *Platform) error
	GetByName(ctx context.Context, name string) (*Platform, error)
	List(ctx context.Context) ([]*Platform, error)
}

// ReleasePackageRepository defines persistence operations for release packages.
type ReleasePackageRepository interface {
	Create(ctx context.Context, pkg *ReleasePackage) error
	GetByName(ctx context.Context, name string) (*ReleasePackage, error)
	// List returns all packages, restricted to one tool kit when toolKitName is set.
	List(ctx context.Context, toolKitName string) ([]*ReleasePackage, error)
}

// ReleaseService manages releases.
type ReleaseService interface {
	Add(ctx context.Context, actor, name, description string) (*Release, error)
	Get(ctx context.Context, name string) (*Release, error)
	List(ctx context.Context) ([]*Release, error)
}

// DuplicateResult summarises a tool kit clone.
type DuplicateResult struct {
	ToolKit    *ToolKit
	Components int
	Branches   int
}

// ToolKitService manages tool kits and their stage.
type ToolKitService interface {
	// Add creates a tool kit in the given release. An empty stage defaults to DEVELOPMENT.
	Add(ctx context.Context, actor, name, releaseName string, stage Stage, description string) (*ToolKit, error)
	Get(ctx context.Context, name string) (*ToolKit, error)
	List(ctx context.Context, query *ToolKitQuery) ([]*ToolKit, error)
	// UpdateStage moves a tool kit to stage. The returned bool is false when
	// the tool kit already was at that stage.
	UpdateStage(ctx context.Context, actor, name string, stage Stage) (*ToolKit, bool, error)
	// Duplicate clones a tool kit into a new DEVELOPMENT tool kit, copying its
	// component versions and branch bindings.
	Duplicate(ctx context.Context, actor, from, to string) (*DuplicateResult, error)
}

// ComponentService manages components and their tool kit bindings.
type ComponentService interface {
	Add(ctx context.Context, actor, name, typeName, description string) (*Component, error)
	Get(ctx context.Context, name string) (*Component, error)
	List(ctx context.Context, typeName string) ([]*Component, error)
	// Link binds a component into a tool kit.
	Link(ctx context.Context, actor, toolKitName, componentName, owner string) (*ComponentVersion, error)
	ListByToolKit(ctx context.Context, toolKitName string) ([]*ComponentVersion, error)
}

// ComponentTypeService manages component types.
type ComponentTypeService interface {
	Add(ctx context.Context, name, description string) (*ComponentType, error)
	Get(ctx context.Context, name string) (*ComponentType, error)
	List(ctx context.Context) ([]*ComponentType, error)
	Update(ctx context.Context, name, description string) (*ComponentType, error)
}

// PlatformService manages platforms.
type PlatformService interface {
	Add(ctx context.Context, name, shortName, description string) (*Platform, error)
	Get(ctx context.Context, name string) (*Platform, error)
	List(ctx context.Context) ([]*Platform, error)
}

// PackageService assembles release packages.
type PackageService interface {
	// Add creates a package. When components is empty every component bound
	// to the tool kit is included.
	Add(ctx context.Context, actor, name, toolKitName, platformName string, components []string) (*ReleasePackage, error)
	Get(ctx context.Context, name string) (*ReleasePackage, error)
	List(ctx context.Context, toolKitName string) ([]*ReleasePackage, error)
}
