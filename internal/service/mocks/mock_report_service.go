package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"crmapi/internal/model"
	"crmapi/internal/service"
)

type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) Generate(ctx context.Context, kind string, days int) (*model.Report, error) {
	args := m.Called(ctx, kind, days)
	return value[*model.Report](args, 0), args.Error(1)
}

func (m *MockReportService) List(ctx context.Context, kind string, limit, offset int) (*service.ReportListResult, error) {
	args := m.Called(ctx, kind, limit, offset)
	return value[*service.ReportListResult](args, 0), args.Error(1)
}

func (m *MockReportService) Get(ctx context.Context, id string) (*model.Report, error) {
	args := m.Called(ctx, id)
	return value[*model.Report](args, 0), args.Error(1)
}

func (m *MockReportService) Download(ctx context.Context, id string) (io.ReadCloser, *model.Report, error) {
	args := m.Called(ctx, id)
	return value[io.ReadCloser](args, 0), value[*model.Report](args, 1), args.Error(2)
}

func (m *MockReportService) DownloadURL(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *MockReportService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
