package persistence

import (
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/domain/branches"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/domain/changerequests"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/domain/events"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/domain/toolkits"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/domain/users"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/pkg/logger"

	"gorm.io/gorm"
)

// Repositories bundles every repository bound to one database handle.
type Repositories struct {
	Releases          toolkits.ReleaseRepository
	ToolKits          toolkits.ToolKitRepository
	ComponentTypes    toolkits.ComponentTypeRepository
	Components        toolkits.ComponentRepository
	ComponentVersions toolkits.ComponentVersionRepository
	Platforms         toolkits.PlatformRepository
	Packages          toolkits.ReleasePackageRepository
	Branches          branches.BranchRepository
	Users             users.UserRepository
	ChangeRequests    changerequests.ChangeRequestRepository
	Events            events.LocationEventRepository
}

// NewRepositories builds all repositories on db, typically a transaction.
func NewRepositories(db *gorm.DB, logger logger.Logger) (*Repositories, error) {
	repos := &Repositories{}
	var err error

	if repos.Releases, err = NewGormReleaseRepository(db, logger); err != nil {
		return nil, err
	}
	if repos.ToolKits, err = NewGormToolKitRepository(db, logger); err != nil {
		return nil, err
	}
	if repos.ComponentTypes, err = NewGormComponentTypeRepository(db, logger); err != nil {
		return nil, err
	}
	if repos.Components, err = NewGormComponentRepository(db, logger); err != nil {
		return nil, err
	}
	if repos.ComponentVersions, err = NewGormComponentVersionRepository(db, logger); err != nil {
		return nil, err
	}
	if repos.Platforms, err = NewGormPlatformRepository(db, logger); err != nil {
		return nil, err
	}
	if repos.Packages, err = NewGormReleasePackageRepository(db, logger); err != nil {
		return nil, err
	}
	if repos.Branches, err = NewGormBranchRepository(db, logger); err != nil {
		return nil, err
	}
	if repos.Users, err = NewGormUserRepository(db, logger); err != nil {
		return nil, err
	}
	if repos.ChangeRequests, err = NewGormChangeRequestRepository(db, logger); err != nil {
		return nil, err
	}
	if repos.Events, err = NewGormLocationEventRepository(db, logger); err != nil {
		return nil, err
	}

	return repos, nil
}
