package app

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/domain/branches"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/domain/changerequests"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/domain/toolkits"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/domain/users"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/pkg/apperr"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/pkg/logger"
)

// workflowService implements the WorkflowService interface on top of the
// transition table in the changerequests package.
type workflowService struct {
	crRepo         changerequests.ChangeRequestRepository
	toolKitRepo    toolkits.ToolKitRepository
	userRepo       users.UserRepository
	branchRepo     branches.BranchRepository
	systemAccounts []string
	logger         logger.Logger
}

// NewWorkflowService creates a new workflowService instance
func NewWorkflowService(
	crRepo changerequests.ChangeRequestRepository,
	toolKitRepo toolkits.ToolKitRepository,
	userRepo users.UserRepository,
	branchRepo branches.BranchRepository,
	systemAccounts []string,
	logger logger.Logger,
) (changerequests.WorkflowService, error) {
	return &workflowService{
		crRepo:         crRepo,
		toolKitRepo:    toolKitRepo,
		userRepo:       userRepo,
		branchRepo:     branchRepo,
		systemAccounts: systemAccounts,
		logger:         logger,
	}, nil
}

type evaluator func(cr *changerequests.ChangeRequest, actor changerequests.Actor, cond changerequests.Conditions) changerequests.TransitionResult

func (s *workflowService) Approve(ctx context.Context, actor, name string) (*changerequests.TransitionResult, error) {
	return s.transition(ctx, actor, name, func(cr *changerequests.ChangeRequest, a changerequests.Actor, c changerequests.Conditions) changerequests.TransitionResult {
		return changerequests.Evaluate(cr, changerequests.ActionApprove, a, c)
	})
}

func (s *workflowService) Activate(ctx context.Context, actor, name string) (*changerequests.TransitionResult, error) {
	return s.transition(ctx, actor, name, func(cr *changerequests.ChangeRequest, a changerequests.Actor, c changerequests.Conditions) changerequests.TransitionResult {
		return changerequests.Evaluate(cr, changerequests.ActionActivate, a, c)
	})
}

func (s *workflowService) ReActivate(ctx context.Context, actor, name string) (*changerequests.TransitionResult, error) {
	return s.transition(ctx, actor, name, func(cr *changerequests.ChangeRequest, a changerequests.Actor, c changerequests.Conditions) changerequests.TransitionResult {
		return changerequests.Evaluate(cr, changerequests.ActionReActivate, a, c)
	})
}

func (s *workflowService) UpdateStatus(ctx context.Context, actor, name string, target changerequests.Status) (*changerequests.TransitionResult, error) {
	return s.transition(ctx, actor, name, func(cr *changerequests.ChangeRequest, a changerequests.Actor, c changerequests.Conditions) changerequests.TransitionResult {
		return changerequests.EvaluateTarget(cr, target, a, c)
	})
}

// transition loads the request, evaluates it and persists an applied result
// with its history row. Rejections and no-ops write nothing.
func (s *workflowService) transition(ctx context.Context, login, name string, evaluate evaluator) (*changerequests.TransitionResult, error) {
	cr, err := s.crRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	actor, err := s.resolveActor(ctx, login)
	if err != nil {
		return nil, err
	}
	cond, err := s.conditions(ctx, cr)
	if err != nil {
		return nil, err
	}

	result := evaluate(cr, actor, cond)
	if !result.Changed() {
		s.logger.Debug("Change request ", name, ": ", result.Outcome, ": ", result.Reason)
		return &result, nil
	}

	ts := now()
	cr.Status = result.To
	cr.UpdatedBy = login
	cr.UpdatedAt = ts
	history := &changerequests.History{
		ID:              uuid.NewString(),
		ChangeRequestID: cr.ID,
		FromStatus:      result.From,
		ToStatus:        result.To,
		Action:          result.Action,
		Actor:           login,
		CreatedAt:       ts,
	}
	if err := s.crRepo.SaveTransition(ctx, cr, history); err != nil {
		return nil, err
	}

	s.logger.Info("Change request ", name, " moved from ", result.From, " to ", result.To, " by ", login)
	return &result, nil
}

// resolveActor looks up the acting user. Unknown logins act without roles;
// only the system account list can still grant them authority.
func (s *workflowService) resolveActor(ctx context.Context, login string) (changerequests.Actor, error) {
	actor := changerequests.Actor{Login: login, SystemAccount: s.isSystemAccount(login)}

	user, err := s.userRepo.GetByLogin(ctx, login)
	if err != nil {
		if apperr.IsNotFound(err) {
			s.logger.Debug("Unknown user ", login, " acts without roles")
			return actor, nil
		}
		return actor, err
	}

	actor.CCBApprover = user.IsCCBApprover()
	actor.SystemAccount = actor.SystemAccount || user.IsSystemAccount()
	return actor, nil
}

func (s *workflowService) isSystemAccount(login string) bool {
	for _, account := range s.systemAccounts {
		if strings.EqualFold(account, login) {
			return true
		}
	}
	return false
}

func (s *workflowService) conditions(ctx context.Context, cr *changerequests.ChangeRequest) (changerequests.Conditions, error) {
	toolKit, err := s.toolKitRepo.GetByName(ctx, cr.ToolKitName)
	if err != nil {
		return changerequests.Conditions{}, err
	}
	return changerequests.Conditions{DevelopmentToolKit: toolKit.IsDevelopment()}, nil
}

func (s *workflowService) Ready(ctx context.Context, name, branchName, componentName string) (*changerequests.Readiness, error) {
	var cr *changerequests.ChangeRequest
	if strings.EqualFold(name, changerequests.DevSentinel) {
		s.logger.Warn("Change request identifier DEV is deprecated; create a change request of type DEV instead")
		cr = changerequests.DevelopmentRequest(componentName)
	} else {
		var err error
		if cr, err = s.crRepo.GetByName(ctx, name); err != nil {
			return nil, err
		}
	}

	bound, err := s.branchRepo.List(ctx, &branches.BranchQuery{Name: branchName, ComponentName: componentName})
	if err != nil {
		return nil, err
	}

	bindings := make([]changerequests.Binding, 0, len(bound))
	for _, b := range bound {
		toolKit, err := s.toolKitRepo.GetByName(ctx, b.ToolKitName)
		if err != nil {
			return nil, err
		}
		bindings = append(bindings, changerequests.Binding{ToolKitName: toolKit.Name, Stage: toolKit.Stage})
	}

	readiness := changerequests.EvaluateReadiness(cr, branchName, componentName, bindings)
	return &readiness, nil
}
