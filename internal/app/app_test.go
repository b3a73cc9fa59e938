package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"crmapi/internal/model"
	"crmapi/internal/recordstore"
	storeMocks "crmapi/internal/recordstore/mocks"
	repoMocks "crmapi/internal/repository/mocks"
	"crmapi/internal/service"
	storageMocks "crmapi/internal/storage/mocks"
)

func TestWire(t *testing.T) {
	client := new(storeMocks.MockClient)
	svc := Wire(Deps{
		Client:   client,
		Storage:  new(storageMocks.MockStorage),
		Reports:  new(repoMocks.MockReportRepository),
		Calendar: service.NewCalendar(nil),
	})

	assert.NotNil(t, svc.Leads)
	assert.NotNil(t, svc.Deals)
	assert.NotNil(t, svc.Contacts)
	assert.NotNil(t, svc.SalesReps)
	assert.NotNil(t, svc.Team)
	assert.NotNil(t, svc.Activity)
	assert.NotNil(t, svc.Analytics)
	assert.NotNil(t, svc.Reports)

	// Every service reads through the same client.
	client.On("FetchRecords", mock.Anything, "sales_rep", mock.Anything).
		Return(&recordstore.FetchResponse{Success: true, Data: []recordstore.Record{{"Id": float64(1), "Name": "Ana"}}}, nil).Once()
	reps, err := svc.SalesReps.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []model.SalesRep{{ID: "1", Name: "Ana"}}, reps)
	client.AssertExpectations(t)
}

func TestClose_WithoutDB(t *testing.T) {
	assert.NoError(t, (&App{}).Close())
}
