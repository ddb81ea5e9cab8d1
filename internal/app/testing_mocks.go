//go:build unit
// +build unit

package app

import (
	"context"

	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/domain/branches"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/domain/changerequests"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/domain/toolkits"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/domain/users"

	"github.com/stretchr/testify/mock"
)

// MockChangeRequestRepository is a mock implementation of ChangeRequestRepository
type MockChangeRequestRepository struct {
	mock.Mock
}

func (m *MockChangeRequestRepository) Create(ctx context.Context, cr *changerequests.ChangeRequest) error {
	args := m.Called(ctx, cr)
	return args.Error(0)
}

func (m *MockChangeRequestRepository) GetByName(ctx context.Context, name string) (*changerequests.ChangeRequest, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*changerequests.ChangeRequest), args.Error(1)
}

func (m *MockChangeRequestRepository) List(ctx context.Context, query *changerequests.ChangeRequestQuery) ([]*changerequests.ChangeRequest, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*changerequests.ChangeRequest), args.Error(1)
}

func (m *MockChangeRequestRepository) Update(ctx context.Context, cr *changerequests.ChangeRequest) error {
	args := m.Called(ctx, cr)
	return args.Error(0)
}

func (m *MockChangeRequestRepository) SaveTransition(ctx context.Context, cr *changerequests.ChangeRequest, history *changerequests.History) error {
	args := m.Called(ctx, cr, history)
	return args.Error(0)
}

func (m *MockChangeRequestRepository) History(ctx context.Context, changeRequestID string) ([]*changerequests.History, error) {
	args := m.Called(ctx, changeRequestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*changerequests.History), args.Error(1)
}

// MockToolKitRepository is a mock implementation of ToolKitRepository
type MockToolKitRepository struct {
	mock.Mock
}

func (m *MockToolKitRepository) Create(ctx context.Context, toolKit *toolkits.ToolKit) error {
	args := m.Called(ctx, toolKit)
	return args.Error(0)
}

func (m *MockToolKitRepository) GetByName(ctx context.Context, name string) (*toolkits.ToolKit, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*toolkits.ToolKit), args.Error(1)
}

func (m *MockToolKitRepository) List(ctx context.Context, query *toolkits.ToolKitQuery) ([]*toolkits.ToolKit, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*toolkits.ToolKit), args.Error(1)
}

func (m *MockToolKitRepository) Update(ctx context.Context, toolKit *toolkits.ToolKit) error {
	args := m.Called(ctx, toolKit)
	return args.Error(0)
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *users.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByLogin(ctx context.Context, login string) (*users.User, error) {
	args := m.Called(ctx, login)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, activeOnly bool) ([]*users.User, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*users.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *users.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockBranchRepository is a mock implementation of BranchRepository
type MockBranchRepository struct {
	mock.Mock
}

func (m *MockBranchRepository) Create(ctx context.Context, branch *branches.Branch) error {
	args := m.Called(ctx, branch)
	return args.Error(0)
}

func (m *MockBranchRepository) Get(ctx context.Context, name, componentName, toolKitName string) (*branches.Branch, error) {
	args := m.Called(ctx, name, componentName, toolKitName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*branches.Branch), args.Error(1)
}

func (m *MockBranchRepository) List(ctx context.Context, query *branches.BranchQuery) ([]*branches.Branch, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*branches.Branch), args.Error(1)
}

func (m *MockBranchRepository) Update(ctx context.Context, branch *branches.Branch) error {
	args := m.Called(ctx, branch)
	return args.Error(0)
}

func (m *MockBranchRepository) Delete(ctx context.Context, name, componentName, toolKitName string) error {
	args := m.Called(ctx, name, componentName, toolKitName)
	return args.Error(0)
}
