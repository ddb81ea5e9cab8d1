package changerequests

import (
	"context"
)

// ChangeRequestRepository defines persistence operations for change requests.
type ChangeRequestRepository interface {
	Create(ctx context.Context, cr *ChangeRequest) error
	GetByName(ctx context.Context, name string) (*ChangeRequest, error)
	List(ctx context.Context, query *ChangeRequestQuery) ([]*ChangeRequest, error)
	Update(ctx context.Context, cr *ChangeRequest) error
	// SaveTransition persists cr's new status together with its history row.
	SaveTransition(ctx context.Context, cr *ChangeRequest, history *History) error
	// History returns the transitions of a change request, oldest first.
	History(ctx context.Context, changeRequestID string) ([]*History, error)
}

// ChangeRequestService manages change request records.
type ChangeRequestService interface {
	// Add creates a request in SUBMITTED status for a component of a tool kit.
	Add(ctx context.Context, actor string, cr *ChangeRequest) (*ChangeRequest, error)
	Get(ctx context.Context, name string) (*ChangeRequest, error)
	List(ctx context.Context, query *ChangeRequestQuery) ([]*ChangeRequest, error)
	Update(ctx context.Context, actor, name string, update *ChangeRequestUpdate) (*ChangeRequest, error)
	History(ctx context.Context, name string) ([]*History, error)
}

// WorkflowService applies status transitions and readiness checks.
// Rejected transitions are reported in the result, not as errors; errors are
// reserved for failed lookups and persistence failures.
type WorkflowService interface {
	Approve(ctx context.Context, actor, name string) (*TransitionResult, error)
	Activate(ctx context.Context, actor, name string) (*TransitionResult, error)
	ReActivate(ctx context.Context, actor, name string) (*TransitionResult, error)
	UpdateStatus(ctx context.Context, actor, name string, target Status) (*TransitionResult, error)
	// Ready checks a request against a branch of a component. name may be
	// DevSentinel.
	Ready(ctx context.Context, name, branchName, componentName string) (*Readiness, error)
}
