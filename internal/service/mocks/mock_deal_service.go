package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"crmapi/internal/model"
	"crmapi/internal/service"
)

type MockDealService struct {
	mock.Mock
}

func (m *MockDealService) List(ctx context.Context, f model.DealFilter) (*service.ListResult[model.Deal], error) {
	args := m.Called(ctx, f)
	return value[*service.ListResult[model.Deal]](args, 0), args.Error(1)
}

func (m *MockDealService) Get(ctx context.Context, id string) (*model.Deal, error) {
	args := m.Called(ctx, id)
	return value[*model.Deal](args, 0), args.Error(1)
}

func (m *MockDealService) Create(ctx context.Context, in model.Deal) (*model.Deal, error) {
	args := m.Called(ctx, in)
	return value[*model.Deal](args, 0), args.Error(1)
}

func (m *MockDealService) Update(ctx context.Context, id string, changes map[string]any) (*model.Deal, error) {
	args := m.Called(ctx, id, changes)
	return value[*model.Deal](args, 0), args.Error(1)
}

func (m *MockDealService) UpdateStage(ctx context.Context, id, stage string) (*model.Deal, error) {
	args := m.Called(ctx, id, stage)
	return value[*model.Deal](args, 0), args.Error(1)
}

func (m *MockDealService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockDealService) Pipeline(ctx context.Context) (*model.Pipeline, error) {
	args := m.Called(ctx)
	return value[*model.Pipeline](args, 0), args.Error(1)
}
