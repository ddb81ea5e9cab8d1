package app

import (
	"time"

	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/domain/branches"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/domain/changerequests"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/domain/events"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/domain/toolkits"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/domain/users"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/infrastructure/persistence"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/pkg/logger"
)

// now is the clock used for every timestamp written by the services.
var now = func() time.Time { return time.Now().UTC() }

// Options carries the configuration the services depend on.
type Options struct {
	// SystemAccounts are logins treated as system accounts in addition to
	// users holding the SYSTEM role.
	SystemAccounts []string
}

// Services bundles every application service of one invocation.
type Services struct {
	Releases       toolkits.ReleaseService
	ToolKits       toolkits.ToolKitService
	Components     toolkits.ComponentService
	ComponentTypes toolkits.ComponentTypeService
	Platforms      toolkits.PlatformService
	Packages       toolkits.PackageService
	Branches       branches.BranchService
	Users          users.UserService
	Events         events.EventService
	ChangeRequests changerequests.ChangeRequestService
	Workflow       changerequests.WorkflowService
	Reports        ReportService
}

// NewServices wires the services on top of repos.
func NewServices(repos *persistence.Repositories, opts Options, logger logger.Logger) (*Services, error) {
	s := &Services{}
	var err error

	if s.Releases, err = NewReleaseService(repos.Releases, logger); err != nil {
		return nil, err
	}
	if s.ToolKits, err = NewToolKitService(repos.Releases, repos.ToolKits, repos.ComponentVersions, repos.Branches, logger); err != nil {
		return nil, err
	}
	if s.Components, err = NewComponentService(repos.Components, repos.ComponentTypes, repos.ComponentVersions, repos.ToolKits, logger); err != nil {
		return nil, err
	}
	if s.ComponentTypes, err = NewComponentTypeService(repos.ComponentTypes, logger); err != nil {
		return nil, err
	}
	if s.Platforms, err = NewPlatformService(repos.Platforms, logger); err != nil {
		return nil, err
	}
	if s.Packages, err = NewPackageService(repos.Packages, repos.ToolKits, repos.Platforms, repos.ComponentVersions, logger); err != nil {
		return nil, err
	}
	if s.Branches, err = NewBranchService(repos.Branches, repos.ToolKits, repos.ComponentVersions, logger); err != nil {
		return nil, err
	}
	if s.Users, err = NewUserService(repos.Users, logger); err != nil {
		return nil, err
	}
	if s.Events, err = NewEventService(repos.Events, repos.ToolKits, repos.Components, logger); err != nil {
		return nil, err
	}
	if s.ChangeRequests, err = NewChangeRequestService(repos.ChangeRequests, repos.ToolKits, repos.ComponentVersions, logger); err != nil {
		return nil, err
	}
	if s.Workflow, err = NewWorkflowService(repos.ChangeRequests, repos.ToolKits, repos.Users, repos.Branches, opts.SystemAccounts, logger); err != nil {
		return nil, err
	}
	if s.Reports, err = NewReportService(repos.ChangeRequests, repos.ToolKits, repos.ComponentVersions, repos.Branches, logger); err != nil {
		return nil, err
	}

	return s, nil
}
