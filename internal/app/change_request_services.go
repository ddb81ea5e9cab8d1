package app

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/domain/changerequests"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/domain/toolkits"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/pkg/apperr"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/pkg/logger"
)

// DefaultSeverity is assigned to change requests created without one.
const DefaultSeverity changerequests.Severity = 3

// changeRequestService implements the ChangeRequestService interface
type changeRequestService struct {
	crRepo      changerequests.ChangeRequestRepository
	toolKitRepo toolkits.ToolKitRepository
	versionRepo toolkits.ComponentVersionRepository
	logger      logger.Logger
}

// NewChangeRequestService creates a new changeRequestService instance
func NewChangeRequestService(
	crRepo changerequests.ChangeRequestRepository,
	toolKitRepo toolkits.ToolKitRepository,
	versionRepo toolkits.ComponentVersionRepository,
	logger logger.Logger,
) (changerequests.ChangeRequestService, error) {
	return &changeRequestService{
		crRepo:      crRepo,
		toolKitRepo: toolKitRepo,
		versionRepo: versionRepo,
		logger:      logger,
	}, nil
}

func (s *changeRequestService) Add(ctx context.Context, actor string, cr *changerequests.ChangeRequest) (*changerequests.ChangeRequest, error) {
	if strings.EqualFold(cr.Name, changerequests.DevSentinel) {
		return nil, apperr.InvalidInput("change request name %s is reserved; create a request of type DEV instead", cr.Name)
	}
	if _, err := s.toolKitRepo.GetByName(ctx, cr.ToolKitName); err != nil {
		return nil, err
	}
	if _, err := s.versionRepo.Get(ctx, cr.ToolKitName, cr.ComponentName); err != nil {
		return nil, err
	}

	created := *cr
	created.ID = uuid.NewString()
	created.Status = changerequests.StatusSubmitted
	if created.Type == "" {
		created.Type = changerequests.TypeDefect
	}
	if created.Severity == 0 {
		created.Severity = DefaultSeverity
	}
	created.CreatedBy = actor
	created.UpdatedBy = actor
	ts := now()
	created.CreatedAt = ts
	created.UpdatedAt = ts

	if err := s.crRepo.Create(ctx, &created); err != nil {
		return nil, err
	}
	s.logger.Info("Change request ", created.Name, " submitted for ", created.ComponentName, " in ", created.ToolKitName, " by ", actor)
	return &created, nil
}

func (s *changeRequestService) Get(ctx context.Context, name string) (*changerequests.ChangeRequest, error) {
	return s.crRepo.GetByName(ctx, name)
}

func (s *changeRequestService) List(ctx context.Context, query *changerequests.ChangeRequestQuery) ([]*changerequests.ChangeRequest, error) {
	return s.crRepo.List(ctx, query)
}

func (s *changeRequestService) Update(ctx context.Context, actor, name string, update *changerequests.ChangeRequestUpdate) (*changerequests.ChangeRequest, error) {
	if update == nil || update.IsEmpty() {
		return nil, apperr.InvalidInput("nothing to update for change request %s", name)
	}

	cr, err := s.crRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	update.Apply(cr)
	cr.UpdatedBy = actor
	cr.UpdatedAt = now()
	if err := s.crRepo.Update(ctx, cr); err != nil {
		return nil, err
	}
	s.logger.Info("Change request ", name, " updated by ", actor)
	return cr, nil
}

func (s *changeRequestService) History(ctx context.Context, name string) ([]*changerequests.History, error) {
	cr, err := s.crRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return s.crRepo.History(ctx, cr.ID)
}
