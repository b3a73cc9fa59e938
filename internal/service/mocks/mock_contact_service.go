package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"crmapi/internal/model"
	"crmapi/internal/service"
)

type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) List(ctx context.Context, f model.ContactFilter) (*service.ListResult[model.Contact], error) {
	args := m.Called(ctx, f)
	return value[*service.ListResult[model.Contact]](args, 0), args.Error(1)
}

func (m *MockContactService) Get(ctx context.Context, id string) (*model.Contact, error) {
	args := m.Called(ctx, id)
	return value[*model.Contact](args, 0), args.Error(1)
}

func (m *MockContactService) Create(ctx context.Context, in model.Contact) (*model.Contact, error) {
	args := m.Called(ctx, in)
	return value[*model.Contact](args, 0), args.Error(1)
}

func (m *MockContactService) Update(ctx context.Context, id string, changes map[string]any) (*model.Contact, error) {
	args := m.Called(ctx, id, changes)
	return value[*model.Contact](args, 0), args.Error(1)
}

func (m *MockContactService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
