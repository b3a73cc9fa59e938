package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"crmapi/internal/model"
	"crmapi/internal/recordstore"
	storeMocks "crmapi/internal/recordstore/mocks"
	"crmapi/internal/service"
)

func TestAnalyticsService_Overview(t *testing.T) {
	ctx := context.Background()
	client := new(storeMocks.MockClient)
	client.On("FetchRecords", ctx, "lead", mock.Anything).Return(fetched(
		recordstore.Record{"Id": float64(1), "CreatedOn": "2026-10-16T08:00:00Z", "added_by_c": rep(7, "Priya")},
		recordstore.Record{"Id": float64(2), "CreatedOn": "2026-10-16T09:00:00Z", "added_by_c": rep(7, "Priya")},
		recordstore.Record{"Id": float64(3), "CreatedOn": "2026-10-01T09:00:00Z", "added_by_c": rep(8, "Omar")},
		recordstore.Record{"Id": float64(4), "CreatedOn": "2026-06-01T09:00:00Z", "added_by_c": rep(9, "Lena")},
	), nil)
	client.On("FetchRecords", ctx, "deal", mock.Anything).Return(fetched(
		recordstore.Record{"Id": float64(1), "stage_c": "Negotiation", "value_c": float64(500)},
		recordstore.Record{"Id": float64(2), "stage_c": "Closed Won", "value_c": float64(300)},
	), nil)

	got, err := service.NewAnalyticsService(client, testCalendar()).Overview(ctx)

	require.NoError(t, err)
	assert.Equal(t, &model.Overview{
		TotalLeads:     4,
		LeadsToday:     2,
		TotalDeals:     2,
		PipelineValue:  500,
		WonValue:       300,
		ConversionRate: 25,
		ActiveReps:     2,
	}, got)
}

func TestAnalyticsService_Breakdowns(t *testing.T) {
	ctx := context.Background()
	client := new(storeMocks.MockClient)
	client.On("FetchRecords", ctx, "lead", mock.Anything).Return(fetched(
		recordstore.Record{"Id": float64(1), "status_c": "New", "category_c": "SaaS"},
		recordstore.Record{"Id": float64(2), "status_c": "Contacted", "category_c": "SaaS"},
		recordstore.Record{"Id": float64(3), "category_c": "Fintech"},
		recordstore.Record{"Id": float64(4)},
	), nil)
	svc := service.NewAnalyticsService(client, testCalendar())

	status, err := svc.LeadsByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.CountBucket{{Key: "New", Count: 3}, {Key: "Contacted", Count: 1}}, status)

	category, err := svc.LeadsByCategory(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.CountBucket{{Key: "SaaS", Count: 2}, {Key: "Fintech", Count: 1}, {Key: "Other", Count: 1}}, category)
}

func TestAnalyticsService_LeadTrend(t *testing.T) {
	ctx := context.Background()
	client := new(storeMocks.MockClient)
	client.On("FetchRecords", ctx, "lead", mock.Anything).Return(fetched(
		recordstore.Record{"Id": float64(1), "CreatedOn": "2026-10-16T08:00:00Z"},
		recordstore.Record{"Id": float64(2), "CreatedOn": "2026-10-14T08:00:00Z"},
		recordstore.Record{"Id": float64(3), "CreatedOn": "2026-10-14T18:00:00Z"},
	), nil)

	got, err := service.NewAnalyticsService(client, testCalendar()).LeadTrend(ctx, 3)

	require.NoError(t, err)
	assert.Equal(t, []model.DayCount{
		{Date: "2026-10-14", Count: 2},
		{Date: "2026-10-15", Count: 0},
		{Date: "2026-10-16", Count: 1},
	}, got)
}

func TestAnalyticsService_Degrades(t *testing.T) {
	ctx := context.Background()
	client := new(storeMocks.MockClient)
	client.On("FetchRecords", ctx, mock.Anything, mock.Anything).Return(nil, errors.New("down"))
	svc := service.NewAnalyticsService(client, testCalendar())

	overview, err := svc.Overview(ctx)
	require.NoError(t, err)
	assert.Equal(t, &model.Overview{}, overview)

	trend, err := svc.LeadTrend(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, trend, 30)
}
