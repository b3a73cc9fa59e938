package mocks

import (
	"context"

	"crmapi/internal/recordstore"

	"github.com/stretchr/testify/mock"
)

type MockClient struct {
	mock.Mock
}

func (m *MockClient) FetchRecords(ctx context.Context, entity string, q recordstore.Query) (*recordstore.FetchResponse, error) {
	args := m.Called(ctx, entity, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recordstore.FetchResponse), args.Error(1)
}

func (m *MockClient) GetRecordByID(ctx context.Context, entity, id string, fields []string) (*recordstore.GetResponse, error) {
	args := m.Called(ctx, entity, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recordstore.GetResponse), args.Error(1)
}

func (m *MockClient) CreateRecords(ctx context.Context, entity string, records []recordstore.Record) (*recordstore.MutationResponse, error) {
	args := m.Called(ctx, entity, records)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recordstore.MutationResponse), args.Error(1)
}

func (m *MockClient) UpdateRecords(ctx context.Context, entity string, records []recordstore.Record) (*recordstore.MutationResponse, error) {
	args := m.Called(ctx, entity, records)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recordstore.MutationResponse), args.Error(1)
}

func (m *MockClient) DeleteRecords(ctx context.Context, entity string, ids []string) (*recordstore.MutationResponse, error) {
	args := m.Called(ctx, entity, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recordstore.MutationResponse), args.Error(1)
}
