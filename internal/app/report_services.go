package app

import (
	"context"

	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/domain/branches"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/domain/changerequests"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/domain/toolkits"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/pkg/logger"
)

// ChangeRequestReport lists change requests and their count per status.
type ChangeRequestReport struct {
	Query          changerequests.ChangeRequestQuery
	ChangeRequests []*changerequests.ChangeRequest
	ByStatus       map[changerequests.Status]int
}

// ToolKitRow is one component line of a tool kit matrix.
type ToolKitRow struct {
	Component    string
	Owner        string
	Branches     []*branches.Branch
	OpenRequests int
}

// ToolKitReport is the component/branch matrix of a tool kit.
type ToolKitReport struct {
	ToolKit *toolkits.ToolKit
	Rows    []ToolKitRow
}

// ReportService builds the read-only summary reports.
type ReportService interface {
	ChangeRequests(ctx context.Context, query *changerequests.ChangeRequestQuery) (*ChangeRequestReport, error)
	ToolKit(ctx context.Context, name string) (*ToolKitReport, error)
}

type reportService struct {
	crRepo      changerequests.ChangeRequestRepository
	toolKitRepo toolkits.ToolKitRepository
	versionRepo toolkits.ComponentVersionRepository
	branchRepo  branches.BranchRepository
	logger      logger.Logger
}

// NewReportService creates a new reportService instance
func NewReportService(
	crRepo changerequests.ChangeRequestRepository,
	toolKitRepo toolkits.ToolKitRepository,
	versionRepo toolkits.ComponentVersionRepository,
	branchRepo branches.BranchRepository,
	logger logger.Logger,
) (ReportService, error) {
	return &reportService{
		crRepo:      crRepo,
		toolKitRepo: toolKitRepo,
		versionRepo: versionRepo,
		branchRepo:  branchRepo,
		logger:      logger,
	}, nil
}

func (s *reportService) ChangeRequests(ctx context.Context, query *changerequests.ChangeRequestQuery) (*ChangeRequestReport, error) {
	if query == nil {
		query = &changerequests.ChangeRequestQuery{}
	}
	if query.ToolKitName != "" {
		if _, err := s.toolKitRepo.GetByName(ctx, query.ToolKitName); err != nil {
			return nil, err
		}
	}

	list, err := s.crRepo.List(ctx, query)
	if err != nil {
		return nil, err
	}

	report := &ChangeRequestReport{
		Query:          *query,
		ChangeRequests: list,
		ByStatus:       make(map[changerequests.Status]int),
	}
	for _, cr := range list {
		report.ByStatus[cr.Status]++
	}
	return report, nil
}

func (s *reportService) ToolKit(ctx context.Context, name string) (*ToolKitReport, error) {
	toolKit, err := s.toolKitRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}

	versions, err := s.versionRepo.ListByToolKit(ctx, name)
	if err != nil {
		return nil, err
	}
	bound, err := s.branchRepo.List(ctx, &branches.BranchQuery{ToolKitName: name})
	if err != nil {
		return nil, err
	}
	crs, err := s.crRepo.List(ctx, &changerequests.ChangeRequestQuery{ToolKitName: name})
	if err != nil {
		return nil, err
	}

	byComponent := make(map[string][]*branches.Branch)
	for _, b := range bound {
		byComponent[b.ComponentName] = append(byComponent[b.ComponentName], b)
	}
	open := make(map[string]int)
	for _, cr := range crs {
		if cr.Status != changerequests.StatusComplete {
			open[cr.ComponentName]++
		}
	}

	report := &ToolKitReport{ToolKit: toolKit}
	for _, v := range versions {
		report.Rows = append(report.Rows, ToolKitRow{
			Component:    v.ComponentName,
			Owner:        v.Owner,
			Branches:     byComponent[v.ComponentName],
			OpenRequests: open[v.ComponentName],
		})
	}
	return report, nil
}
