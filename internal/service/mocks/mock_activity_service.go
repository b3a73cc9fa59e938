package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"crmapi/internal/model"
)

type MockWebsiteActivityService struct {
	mock.Mock
}

func (m *MockWebsiteActivityService) Record(ctx context.Context, websiteURL, addedBy string) (*model.WebsiteActivity, error) {
	args := m.Called(ctx, websiteURL, addedBy)
	return value[*model.WebsiteActivity](args, 0), args.Error(1)
}

func (m *MockWebsiteActivityService) History(ctx context.Context, websiteURL string) ([]model.WebsiteActivity, error) {
	args := m.Called(ctx, websiteURL)
	return value[[]model.WebsiteActivity](args, 0), args.Error(1)
}

func (m *MockWebsiteActivityService) IsFresh(ctx context.Context, websiteURL, date string) (*model.Freshness, error) {
	args := m.Called(ctx, websiteURL, date)
	return value[*model.Freshness](args, 0), args.Error(1)
}

func (m *MockWebsiteActivityService) FreshURLs(ctx context.Context, date string) ([]string, error) {
	args := m.Called(ctx, date)
	return value[[]string](args, 0), args.Error(1)
}
