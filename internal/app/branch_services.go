package app

import (
	"context"

	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/domain/branches"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/domain/toolkits"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/pkg/apperr"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/pkg/logger"
)

// branchService implements the BranchService interface
type branchService struct {
	branchRepo  branches.BranchRepository
	toolKitRepo toolkits.ToolKitRepository
	versionRepo toolkits.ComponentVersionRepository
	logger      logger.Logger
}

// NewBranchService creates a new branchService instance
func NewBranchService(
	branchRepo branches.BranchRepository,
	toolKitRepo toolkits.ToolKitRepository,
	versionRepo toolkits.ComponentVersionRepository,
	logger logger.Logger,
) (branches.BranchService, error) {
	return &branchService{
		branchRepo:  branchRepo,
		toolKitRepo: toolKitRepo,
		versionRepo: versionRepo,
		logger:      logger,
	}, nil
}

// Add binds a branch to a component of a tool kit. The component must
// already be part of the tool kit.
func (s *branchService) Add(ctx context.Context, actor string, branch *branches.Branch) (*branches.Branch, error) {
	if _, err := s.toolKitRepo.GetByName(ctx, branch.ToolKitName); err != nil {
		return nil, err
	}
	if _, err := s.versionRepo.Get(ctx, branch.ToolKitName, branch.ComponentName); err != nil {
		return nil, err
	}

	created := *branch
	created.CreatedBy = actor
	created.CreatedAt = now()
	if err := s.branchRepo.Create(ctx, &created); err != nil {
		return nil, err
	}
	s.logger.Info("Branch ", created.Name, " of ", created.ComponentName, " bound to tool kit ", created.ToolKitName, " by ", actor)
	return &created, nil
}

func (s *branchService) Get(ctx context.Context, name, componentName, toolKitName string) (*branches.Branch, error) {
	return s.branchRepo.Get(ctx, name, componentName, toolKitName)
}

func (s *branchService) List(ctx context.Context, query *branches.BranchQuery) ([]*branches.Branch, error) {
	return s.branchRepo.List(ctx, query)
}

func (s *branchService) Update(ctx context.Context, name, componentName, toolKitName string, update *branches.BranchUpdate) (*branches.Branch, error) {
	if update == nil || (update.Type == nil && update.Description == nil) {
		return nil, apperr.InvalidInput("nothing to update for branch %s", name)
	}

	branch, err := s.branchRepo.Get(ctx, name, componentName, toolKitName)
	if err != nil {
		return nil, err
	}
	if update.Type != nil {
		branch.Type = *update.Type
	}
	if update.Description != nil {
		branch.Description = *update.Description
	}
	if err := s.branchRepo.Update(ctx, branch); err != nil {
		return nil, err
	}
	s.logger.Info("Branch ", name, " of ", componentName, " in tool kit ", toolKitName, " updated")
	return branch, nil
}

func (s *branchService) Delete(ctx context.Context, name, componentName, toolKitName string) error {
	if err := s.branchRepo.Delete(ctx, name, componentName, toolKitName); err != nil {
		return err
	}
	s.logger.Info("Branch ", name, " of ", componentName, " removed from tool kit ", toolKitName)
	return nil
}

func (s *branchService) IsProduction(ctx context.Context, name, componentName, toolKitName string) (bool, error) {
	branch, err := s.branchRepo.Get(ctx, name, componentName, toolKitName)
	if err != nil {
		if apperr.IsNotFound(err) {
			s.logger.Debug("Branch lookup failed, not a production branch: ", err)
			return false, nil
		}
		return false, err
	}
	return branch.IsProduction(), nil
}
