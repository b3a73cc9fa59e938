package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"crmapi/internal/model"
)

type MockTeamMemberService struct {
	mock.Mock
}

func (m *MockTeamMemberService) List(ctx context.Context, f model.TeamMemberFilter) ([]model.TeamMember, error) {
	args := m.Called(ctx, f)
	return value[[]model.TeamMember](args, 0), args.Error(1)
}

func (m *MockTeamMemberService) Get(ctx context.Context, id string) (*model.TeamMember, error) {
	args := m.Called(ctx, id)
	return value[*model.TeamMember](args, 0), args.Error(1)
}

func (m *MockTeamMemberService) Invite(ctx context.Context, in model.TeamMember) (*model.TeamMember, error) {
	args := m.Called(ctx, in)
	return value[*model.TeamMember](args, 0), args.Error(1)
}

func (m *MockTeamMemberService) Update(ctx context.Context, id string, changes map[string]any) (*model.TeamMember, error) {
	args := m.Called(ctx, id, changes)
	return value[*model.TeamMember](args, 0), args.Error(1)
}

func (m *MockTeamMemberService) SetStatus(ctx context.Context, id, status string) (*model.TeamMember, error) {
	args := m.Called(ctx, id, status)
	return value[*model.TeamMember](args, 0), args.Error(1)
}

func (m *MockTeamMemberService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockTeamMemberService) Stats(ctx context.Context) (*model.TeamStats, error) {
	args := m.Called(ctx)
	return value[*model.TeamStats](args, 0), args.Error(1)
}
