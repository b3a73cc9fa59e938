package recordstore_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"crmapi/internal/recordstore"
	"crmapi/internal/recordstore/mocks"
)

func TestInstrument(t *testing.T) {
	ctx := context.Background()
	reg := prometheus.NewRegistry()
	inner := new(mocks.MockClient)

	client, err := recordstore.Instrument(inner, reg)
	require.NoError(t, err)

	inner.On("FetchRecords", ctx, "lead", mock.Anything).
		Return(&recordstore.FetchResponse{Success: true}, nil).Once()
	inner.On("FetchRecords", ctx, "lead", mock.Anything).
		Return(&recordstore.FetchResponse{Success: false, Message: "denied"}, nil).Once()
	inner.On("DeleteRecords", ctx, "deal", []string{"1"}).
		Return(nil, errors.New("timeout")).Once()

	_, _ = client.FetchRecords(ctx, "lead", recordstore.Select())
	_, _ = client.FetchRecords(ctx, "lead", recordstore.Select())
	_, err = client.DeleteRecords(ctx, "deal", []string{"1"})
	assert.Error(t, err)

	expected := `
# HELP recordstore_requests_total Total number of record store calls.
# TYPE recordstore_requests_total counter
recordstore_requests_total{entity="deal",operation="delete",outcome="error"} 1
recordstore_requests_total{entity="lead",operation="fetch",outcome="ok"} 1
recordstore_requests_total{entity="lead",operation="fetch",outcome="rejected"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "recordstore_requests_total"))
	histograms, err := testutil.GatherAndCount(reg, "recordstore_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, histograms)
	inner.AssertExpectations(t)
}

func TestInstrument_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := recordstore.Instrument(new(mocks.MockClient), reg)
	require.NoError(t, err)

	_, err = recordstore.Instrument(new(mocks.MockClient), reg)
	assert.Error(t, err)
}
