package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"crmapi/internal/model"
	"crmapi/internal/service"
)

type MockLeadService struct {
	mock.Mock
}

func (m *MockLeadService) List(ctx context.Context, f model.LeadFilter) (*service.ListResult[model.Lead], error) {
	args := m.Called(ctx, f)
	return value[*service.ListResult[model.Lead]](args, 0), args.Error(1)
}

func (m *MockLeadService) Get(ctx context.Context, id string) (*model.Lead, error) {
	args := m.Called(ctx, id)
	return value[*model.Lead](args, 0), args.Error(1)
}

func (m *MockLeadService) Create(ctx context.Context, in model.Lead) (*model.Lead, error) {
	args := m.Called(ctx, in)
	return value[*model.Lead](args, 0), args.Error(1)
}

func (m *MockLeadService) Update(ctx context.Context, id string, changes map[string]any) (*model.Lead, error) {
	args := m.Called(ctx, id, changes)
	return value[*model.Lead](args, 0), args.Error(1)
}

func (m *MockLeadService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockLeadService) DailyLeads(ctx context.Context, days int, salesRepID string) (*model.DailyLeadsReport, error) {
	args := m.Called(ctx, days, salesRepID)
	return value[*model.DailyLeadsReport](args, 0), args.Error(1)
}

func (m *MockLeadService) FreshLeads(ctx context.Context, date string) ([]model.Lead, error) {
	args := m.Called(ctx, date)
	return value[[]model.Lead](args, 0), args.Error(1)
}
