package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"crmapi/internal/model"
)

type MockSalesRepService struct {
	mock.Mock
}

func (m *MockSalesRepService) List(ctx context.Context) ([]model.SalesRep, error) {
	args := m.Called(ctx)
	return value[[]model.SalesRep](args, 0), args.Error(1)
}

func (m *MockSalesRepService) Get(ctx context.Context, id string) (*model.SalesRep, error) {
	args := m.Called(ctx, id)
	return value[*model.SalesRep](args, 0), args.Error(1)
}

func (m *MockSalesRepService) Create(ctx context.Context, in model.SalesRep) (*model.SalesRep, error) {
	args := m.Called(ctx, in)
	return value[*model.SalesRep](args, 0), args.Error(1)
}

func (m *MockSalesRepService) Update(ctx context.Context, id string, changes map[string]any) (*model.SalesRep, error) {
	args := m.Called(ctx, id, changes)
	return value[*model.SalesRep](args, 0), args.Error(1)
}

func (m *MockSalesRepService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockSalesRepService) Leaderboard(ctx context.Context, metric string, limit int) ([]model.LeaderboardEntry, error) {
	args := m.Called(ctx, metric, limit)
	return value[[]model.LeaderboardEntry](args, 0), args.Error(1)
}
