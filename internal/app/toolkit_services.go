package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/domain/branches"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/domain/toolkits"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/pkg/apperr"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/pkg/logger"
)

// releaseService implements the ReleaseService interface
type releaseService struct {
	releaseRepo toolkits.ReleaseRepository
	logger      logger.Logger
}

// NewReleaseService creates a new releaseService instance
func NewReleaseService(releaseRepo toolkits.ReleaseRepository, logger logger.Logger) (toolkits.ReleaseService, error) {
	return &releaseService{releaseRepo: releaseRepo, logger: logger}, nil
}

func (s *releaseService) Add(ctx context.Context, actor, name, description string) (*toolkits.Release, error) {
	release := &toolkits.Release{
		Name:        name,
		Description: description,
		CreatedBy:   actor,
		CreatedAt:   now(),
	}
	if err := s.releaseRepo.Create(ctx, release); err != nil {
		return nil, err
	}
	s.logger.Info("Release ", name, " added by ", actor)
	return release, nil
}

func (s *releaseService) Get(ctx context.Context, name string) (*toolkits.Release, error) {
	return s.releaseRepo.GetByName(ctx, name)
}

func (s *releaseService) List(ctx context.Context) ([]*toolkits.Release, error) {
	return s.releaseRepo.List(ctx)
}

// toolKitService implements the ToolKitService interface
type toolKitService struct {
	releaseRepo toolkits.ReleaseRepository
	toolKitRepo toolkits.ToolKitRepository
	versionRepo toolkits.ComponentVersionRepository
	branchRepo  branches.BranchRepository
	logger      logger.Logger
}

// NewToolKitService creates a new toolKitService instance
func NewToolKitService(
	releaseRepo toolkits.ReleaseRepository,
	toolKitRepo toolkits.ToolKitRepository,
	versionRepo toolkits.ComponentVersionRepository,
	branchRepo branches.BranchRepository,
	logger logger.Logger,
) (toolkits.ToolKitService, error) {
	return &toolKitService{
		releaseRepo: releaseRepo,
		toolKitRepo: toolKitRepo,
		versionRepo: versionRepo,
		branchRepo:  branchRepo,
		logger:      logger,
	}, nil
}

func (s *toolKitService) Add(ctx context.Context, actor, name, releaseName string, stage toolkits.Stage, description string) (*toolkits.ToolKit, error) {
	if releaseName == "" {
		releaseName = releaseOf(name)
	}
	if _, err := s.releaseRepo.GetByName(ctx, releaseName); err != nil {
		return nil, err
	}
	if stage == "" {
		stage = toolkits.StageDevelopment
	}
	if !stage.IsValid() {
		return nil, apperr.InvalidInput("unknown tool kit stage %s", stage)
	}

	ts := now()
	toolKit := &toolkits.ToolKit{
		Name:        name,
		ReleaseName: releaseName,
		Stage:       stage,
		Description: description,
		CreatedBy:   actor,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}
	if err := s.toolKitRepo.Create(ctx, toolKit); err != nil {
		return nil, err
	}
	s.logger.Info("Tool kit ", name, " added in stage ", stage, " by ", actor)
	return toolKit, nil
}

func (s *toolKitService) Get(ctx context.Context, name string) (*toolkits.ToolKit, error) {
	return s.toolKitRepo.GetByName(ctx, name)
}

func (s *toolKitService) List(ctx context.Context, query *toolkits.ToolKitQuery) ([]*toolkits.ToolKit, error) {
	return s.toolKitRepo.List(ctx, query)
}

func (s *toolKitService) UpdateStage(ctx context.Context, actor, name string, stage toolkits.Stage) (*toolkits.ToolKit, bool, error) {
	if !stage.IsValid() {
		return nil, false, apperr.InvalidInput("unknown tool kit stage %s", stage)
	}

	toolKit, err := s.toolKitRepo.GetByName(ctx, name)
	if err != nil {
		return nil, false, err
	}
	if toolKit.Stage == stage {
		return toolKit, false, nil
	}

	from := toolKit.Stage
	toolKit.Stage = stage
	toolKit.UpdatedAt = now()
	if err := s.toolKitRepo.Update(ctx, toolKit); err != nil {
		return nil, false, err
	}
	s.logger.Info("Tool kit ", name, " moved from ", from, " to ", stage, " by ", actor)
	return toolKit, true, nil
}

func (s *toolKitService) Duplicate(ctx context.Context, actor, from, to string) (*toolkits.DuplicateResult, error) {
	source, err := s.toolKitRepo.GetByName(ctx, from)
	if err != nil {
		return nil, err
	}

	target, err := s.Add(ctx, actor, to, "", toolkits.StageDevelopment,
		fmt.Sprintf("copy of %s", source.Name))
	if err != nil {
		return nil, err
	}
	result := &toolkits.DuplicateResult{ToolKit: target}

	versions, err := s.versionRepo.ListByToolKit(ctx, source.Name)
	if err != nil {
		return nil, err
	}
	for _, v := range versions {
		copied := &toolkits.ComponentVersion{
			ToolKitName:   target.Name,
			ComponentName: v.ComponentName,
			Owner:         v.Owner,
			CreatedAt:     target.CreatedAt,
		}
		if err := s.versionRepo.Create(ctx, copied); err != nil {
			return nil, fmt.Errorf("failed to copy component %s: %w", v.ComponentName, err)
		}
		result.Components++
	}

	bindings, err := s.branchRepo.List(ctx, &branches.BranchQuery{ToolKitName: source.Name})
	if err != nil {
		return nil, err
	}
	for _, b := range bindings {
		copied := *b
		copied.ToolKitName = target.Name
		copied.CreatedBy = actor
		copied.CreatedAt = target.CreatedAt
		if err := s.branchRepo.Create(ctx, &copied); err != nil {
			return nil, fmt.Errorf("failed to copy branch %s: %w", b.Name, err)
		}
		result.Branches++
	}

	s.logger.Info("Tool kit ", from, " duplicated to ", to, ": ", result.Components, " components, ", result.Branches, " branches")
	return result, nil
}

// releaseOf derives the release of a tool kit name: 14.1.6 belongs to 14.1.
func releaseOf(toolKitName string) string {
	i := strings.LastIndex(toolKitName, ".")
	if i <= 0 {
		return toolKitName
	}
	return toolKitName[:i]
}
