package repository

import (
	"context"

	"crmapi/internal/model"
)

// ReportRepository persists archived report metadata. The CSV content itself lives in object storage.
type ReportRepository interface {
	// Create inserts a report row and returns it as stored.
	Create(ctx context.Context, r *model.Report) (*model.Report, error)

	// FindByID returns sql.ErrNoRows when the report does not exist.
	FindByID(ctx context.Context, id string) (*model.Report, error)

	// List returns one page of reports, newest first, and the total matching rows.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Report], error)

	// Delete is a no-op for a missing row.
	Delete(ctx context.Context, id string) error
}

// PageQuery holds limit/offset pagination parameters. An empty Kind lists every kind.
type PageQuery struct {
	Kind   string
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
type PageResult[T any] struct {
	Items []T
	Total int
}
