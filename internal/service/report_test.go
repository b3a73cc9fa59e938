package service_test

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"crmapi/internal/model"
	"crmapi/internal/repository"
	repoMocks "crmapi/internal/repository/mocks"
	"crmapi/internal/service"
	svcMocks "crmapi/internal/service/mocks"
	"crmapi/internal/storage"
	objMocks "crmapi/internal/storage/mocks"
)

type reportFixture struct {
	store     *objMocks.MockStorage
	repo      *repoMocks.MockReportRepository
	leads     *svcMocks.MockLeadService
	deals     *svcMocks.MockDealService
	reps      *svcMocks.MockSalesRepService
	analytics *svcMocks.MockAnalyticsService
	svc       service.ReportService
}

func newReportFixture() *reportFixture {
	f := &reportFixture{
		store:     new(objMocks.MockStorage),
		repo:      new(repoMocks.MockReportRepository),
		leads:     new(svcMocks.MockLeadService),
		deals:     new(svcMocks.MockDealService),
		reps:      new(svcMocks.MockSalesRepService),
		analytics: new(svcMocks.MockAnalyticsService),
	}
	f.svc = service.NewReportService(f.store, f.repo, service.ReportSources{
		Leads:     f.leads,
		Deals:     f.deals,
		SalesReps: f.reps,
		Analytics: f.analytics,
	}, testCalendar(), 5*time.Minute)
	return f
}

// captureUpload accepts any Put under reports/<kind>/ and stores the uploaded CSV in *body.
func (f *reportFixture) captureUpload(ctx context.Context, kind string, body *string, err error) {
	f.store.On("Put", ctx, mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "reports/"+kind+"/") && strings.HasSuffix(key, ".csv")
	}), mock.Anything, mock.MatchedBy(func(opt storage.PutObjectOptions) bool {
		return opt.ContentType == "text/csv" && opt.Metadata["report-kind"] == kind
	})).Return(func(_ context.Context, key string, r io.Reader, opt storage.PutObjectOptions) storage.ObjectInfo {
		b, _ := io.ReadAll(r)
		*body = string(b)
		return storage.ObjectInfo{Key: key, Size: int64(len(b)), ContentType: opt.ContentType}
	}, err).Once()
}

func TestReportService_Generate(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		kind     string
		days     int
		setup    func(f *reportFixture)
		wantCSV  string
		wantRows int
	}{
		{
			name: "pipeline",
			kind: model.ReportPipeline,
			setup: func(f *reportFixture) {
				f.deals.On("Pipeline", ctx).Return(&model.Pipeline{
					Stages:     []model.StageSummary{{Stage: "Connected", Count: 2, Value: 150.5}, {Stage: "Closed Won", Count: 1, Value: 900}},
					TotalDeals: 3,
					TotalValue: 1050.5,
					WinRate:    100,
				}, nil)
			},
			wantCSV:  "stage,deals,value\nConnected,2,150.5\nClosed Won,1,900\nTotal,3,1050.5\n",
			wantRows: 3,
		},
		{
			name: "daily leads zero-fills empty days",
			kind: model.ReportDailyLeads,
			days: 2,
			setup: func(f *reportFixture) {
				f.leads.On("DailyLeads", ctx, 2, "").Return(&model.DailyLeadsReport{
					From: "2026-10-15",
					To:   "2026-10-16",
					Days: []model.DailyLeadDay{
						{Date: "2026-10-16", Total: 2, Reps: []model.DailyLeadCount{{Date: "2026-10-16", SalesRepID: "7", SalesRepName: "Priya", Count: 2}}},
						{Date: "2026-10-15", Reps: []model.DailyLeadCount{}},
					},
					Total: 2,
				}, nil)
			},
			wantCSV:  "date,sales_rep_id,sales_rep,leads\n2026-10-16,7,Priya,2\n2026-10-15,,,0\n",
			wantRows: 2,
		},
		{
			name: "lead status",
			kind: model.ReportLeadStatus,
			setup: func(f *reportFixture) {
				f.analytics.On("LeadsByStatus", ctx).Return([]model.CountBucket{{Key: "New", Count: 4}, {Key: "Closed Won", Count: 1}}, nil)
			},
			wantCSV:  "status,leads\nNew,4\nClosed Won,1\n",
			wantRows: 2,
		},
		{
			name: "sales performance",
			kind: model.ReportSalesPerformance,
			setup: func(f *reportFixture) {
				f.reps.On("Leaderboard", ctx, model.MetricRevenue, 100).Return([]model.LeaderboardEntry{{
					Rank: 1, SalesRepID: "7", Name: "Priya, R.", LeadsContacted: 10, MeetingsBooked: 4,
					DealsClosed: 2, TotalRevenue: 1200, ConversionRate: 20, TargetProgress: 60,
				}}, nil)
			},
			wantCSV: "rank,sales_rep_id,name,leads_contacted,meetings_booked,deals_closed,total_revenue,conversion_rate,target_progress\n" +
				"1,7,\"Priya, R.\",10,4,2,1200,20,60\n",
			wantRows: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newReportFixture()
			tt.setup(f)
			var body string
			f.captureUpload(ctx, tt.kind, &body, nil)
			f.repo.On("Create", ctx, mock.MatchedBy(func(r *model.Report) bool {
				return r.Kind == tt.kind && r.RowCount == tt.wantRows && r.Size == int64(len(tt.wantCSV)) &&
					r.StoragePath == storage.ReportKey(tt.kind, r.ID) && r.ContentType == "text/csv"
			})).Return(func(_ context.Context, r *model.Report) *model.Report { return r }, nil).Once()

			got, err := f.svc.Generate(ctx, tt.kind, tt.days)

			require.NoError(t, err)
			assert.Equal(t, tt.wantCSV, body)
			assert.NotEmpty(t, got.Title)
			f.store.AssertExpectations(t)
			f.repo.AssertExpectations(t)
		})
	}
}

func TestReportService_Generate_Failures(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown kind", func(t *testing.T) {
		f := newReportFixture()
		_, err := f.svc.Generate(ctx, "horoscope", 0)
		assert.ErrorIs(t, err, service.ErrUnknownReport)
	})

	t.Run("upload fails", func(t *testing.T) {
		f := newReportFixture()
		f.analytics.On("LeadsByStatus", ctx).Return([]model.CountBucket{}, nil)
		var body string
		f.captureUpload(ctx, model.ReportLeadStatus, &body, errors.New("bucket gone"))

		_, err := f.svc.Generate(ctx, model.ReportLeadStatus, 0)

		assert.ErrorContains(t, err, "upload to storage")
		f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("db failure rolls back the upload", func(t *testing.T) {
		f := newReportFixture()
		f.analytics.On("LeadsByStatus", ctx).Return([]model.CountBucket{}, nil)
		var body string
		f.captureUpload(ctx, model.ReportLeadStatus, &body, nil)
		f.repo.On("Create", ctx, mock.Anything).Return(nil, errors.New("db down")).Once()
		f.store.On("Delete", ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "reports/lead_status/")
		})).Return(nil).Once()

		_, err := f.svc.Generate(ctx, model.ReportLeadStatus, 0)

		assert.EqualError(t, err, "db save failed: db down")
		f.store.AssertExpectations(t)
	})

	t.Run("rollback failure is reported", func(t *testing.T) {
		f := newReportFixture()
		f.analytics.On("LeadsByStatus", ctx).Return([]model.CountBucket{}, nil)
		var body string
		f.captureUpload(ctx, model.ReportLeadStatus, &body, nil)
		f.repo.On("Create", ctx, mock.Anything).Return(nil, errors.New("db down")).Once()
		f.store.On("Delete", ctx, mock.Anything).Return(errors.New("s3 down")).Once()

		_, err := f.svc.Generate(ctx, model.ReportLeadStatus, 0)

		assert.EqualError(t, err, "db save failed: db down; rollback delete failed: s3 down")
	})
}

func TestReportService_List(t *testing.T) {
	ctx := context.Background()
	f := newReportFixture()
	f.repo.On("List", ctx, repository.PageQuery{Kind: "pipeline", Limit: 10, Offset: 0}).
		Return(&repository.PageResult[model.Report]{Items: []model.Report{{ID: "r-1"}}, Total: 1}, nil).Once()

	got, err := f.svc.List(ctx, "pipeline", 0, -3)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Total)

	_, err = f.svc.List(ctx, "horoscope", 10, 0)
	assert.ErrorIs(t, err, service.ErrUnknownReport)
}

func TestReportService_GetAndDelete(t *testing.T) {
	ctx := context.Background()
	stored := &model.Report{ID: "r-1", Kind: "pipeline", StoragePath: "reports/pipeline/r-1.csv"}

	t.Run("not found", func(t *testing.T) {
		f := newReportFixture()
		f.repo.On("FindByID", ctx, "missing").Return(nil, sql.ErrNoRows)

		_, err := f.svc.Get(ctx, "missing")
		assert.ErrorIs(t, err, service.ErrNotFound)
		assert.ErrorIs(t, f.svc.Delete(ctx, "missing"), service.ErrNotFound)

		_, err = f.svc.Get(ctx, "")
		assert.ErrorIs(t, err, service.ErrIDRequired)
	})

	t.Run("delete removes object then row", func(t *testing.T) {
		f := newReportFixture()
		f.repo.On("FindByID", ctx, "r-1").Return(stored, nil)
		f.store.On("Delete", ctx, "reports/pipeline/r-1.csv").Return(nil).Once()
		f.repo.On("Delete", ctx, "r-1").Return(nil).Once()

		require.NoError(t, f.svc.Delete(ctx, "r-1"))
		f.store.AssertExpectations(t)
		f.repo.AssertExpectations(t)
	})

	t.Run("storage failure keeps the row", func(t *testing.T) {
		f := newReportFixture()
		f.repo.On("FindByID", ctx, "r-1").Return(stored, nil)
		f.store.On("Delete", ctx, "reports/pipeline/r-1.csv").Return(errors.New("s3 down")).Once()

		assert.ErrorContains(t, f.svc.Delete(ctx, "r-1"), "delete storage")
		f.repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestReportService_Download(t *testing.T) {
	ctx := context.Background()
	stored := &model.Report{ID: "r-1", Kind: "pipeline", StoragePath: "reports/pipeline/r-1.csv"}

	t.Run("streams content", func(t *testing.T) {
		f := newReportFixture()
		f.repo.On("FindByID", ctx, "r-1").Return(stored, nil)
		f.store.On("Get", ctx, stored.StoragePath).
			Return(io.NopCloser(strings.NewReader("stage,deals\n")), storage.ObjectInfo{Size: 12}, nil)

		rc, r, err := f.svc.Download(ctx, "r-1")
		require.NoError(t, err)
		defer rc.Close()
		b, _ := io.ReadAll(rc)
		assert.Equal(t, "stage,deals\n", string(b))
		assert.Equal(t, stored, r)
	})

	t.Run("missing object", func(t *testing.T) {
		f := newReportFixture()
		f.repo.On("FindByID", ctx, "r-1").Return(stored, nil)
		f.store.On("Get", ctx, stored.StoragePath).Return(nil, storage.ObjectInfo{}, storage.ErrObjectNotFound)

		_, _, err := f.svc.Download(ctx, "r-1")
		assert.ErrorIs(t, err, service.ErrNotFound)
	})

	t.Run("presigned url uses the configured expiry", func(t *testing.T) {
		f := newReportFixture()
		f.repo.On("FindByID", ctx, "r-1").Return(stored, nil)
		f.store.On("PresignGet", ctx, stored.StoragePath, 5*time.Minute).Return("https://minio/reports/r-1.csv?sig", nil)

		u, err := f.svc.DownloadURL(ctx, "r-1")
		require.NoError(t, err)
		assert.Equal(t, "https://minio/reports/r-1.csv?sig", u)
	})
}
