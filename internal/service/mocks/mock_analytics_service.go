package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"crmapi/internal/model"
)

type MockAnalyticsService struct {
	mock.Mock
}

func (m *MockAnalyticsService) Overview(ctx context.Context) (*model.Overview, error) {
	args := m.Called(ctx)
	return value[*model.Overview](args, 0), args.Error(1)
}

func (m *MockAnalyticsService) LeadsByStatus(ctx context.Context) ([]model.CountBucket, error) {
	args := m.Called(ctx)
	return value[[]model.CountBucket](args, 0), args.Error(1)
}

func (m *MockAnalyticsService) LeadsByCategory(ctx context.Context) ([]model.CountBucket, error) {
	args := m.Called(ctx)
	return value[[]model.CountBucket](args, 0), args.Error(1)
}

func (m *MockAnalyticsService) LeadTrend(ctx context.Context, days int) ([]model.DayCount, error) {
	args := m.Called(ctx, days)
	return value[[]model.DayCount](args, 0), args.Error(1)
}
