package branches

import (
	"context"
)

// BranchRepository defines persistence operations for branch bindings.
type BranchRepository interface {
	Create(ctx context.Context, branch *Branch) error
	Get(ctx context.Context, name, componentName, toolKitName string) (*Branch, error)
	List(ctx context.Context, query *BranchQuery) ([]*Branch, error)
	Update(ctx context.Context, branch *Branch) error
	Delete(ctx context.Context, name, componentName, toolKitName string) error
}

// BranchService manages branch bindings.
type BranchService interface {
	Add(ctx context.Context, actor string, branch *Branch) (*Branch, error)
	Get(ctx context.Context, name, componentName, toolKitName string) (*Branch, error)
	List(ctx context.Context, query *BranchQuery) ([]*Branch, error)
	Update(ctx context.Context, name, componentName, toolKitName string, update *BranchUpdate) (*Branch, error)
	Delete(ctx context.Context, name, componentName, toolKitName string) error
	// IsProduction reports whether the binding exists and is a production
	// branch. A missing binding is reported as false with a nil error.
	IsProduction(ctx context.Context, name, componentName, toolKitName string) (bool, error)
}
