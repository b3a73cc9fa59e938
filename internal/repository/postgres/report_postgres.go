package postgres

import (
	"context"
	"database/sql"

	"crmapi/internal/model"
	"crmapi/internal/repository"
)

// ReportPostgres is the PostgreSQL implementation of repository.ReportRepository.
type ReportPostgres struct {
	db *sql.DB
}

func NewReportPostgres(db *sql.DB) *ReportPostgres {
	return &ReportPostgres{db: db}
}

var _ repository.ReportRepository = (*ReportPostgres)(nil)

const reportColumns = `id, kind, title, storage_path, size, content_type, row_count, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanReport(s scanner) (*model.Report, error) {
	var r model.Report
	if err := s.Scan(
		&r.ID,
		&r.Kind,
		&r.Title,
		&r.StoragePath,
		&r.Size,
		&r.ContentType,
		&r.RowCount,
		&r.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &r, nil
}

func (p *ReportPostgres) Create(ctx context.Context, r *model.Report) (*model.Report, error) {
	const q = `
		INSERT INTO reports (` + reportColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + reportColumns
	row := p.db.QueryRowContext(ctx, q,
		r.ID,
		r.Kind,
		r.Title,
		r.StoragePath,
		r.Size,
		r.ContentType,
		r.RowCount,
		r.CreatedAt,
	)
	return scanReport(row)
}

func (p *ReportPostgres) FindByID(ctx context.Context, id string) (*model.Report, error) {
	const q = `SELECT ` + reportColumns + ` FROM reports WHERE id = $1`
	return scanReport(p.db.QueryRowContext(ctx, q, id))
}

// List filters by kind when one is given. $1 = '' disables the filter so a single statement serves both.
func (p *ReportPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Report], error) {
	const qCount = `SELECT COUNT(*) FROM reports WHERE ($1 = '' OR kind = $1)`
	var total int
	if err := p.db.QueryRowContext(ctx, qCount, pq.Kind).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT ` + reportColumns + `
		FROM reports
		WHERE ($1 = '' OR kind = $1)
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := p.db.QueryContext(ctx, qList, pq.Kind, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Report, 0)
	for rows.Next() {
		r, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Report]{
		Items: items,
		Total: total,
	}, nil
}

func (p *ReportPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM reports WHERE id = $1`
	_, err := p.db.ExecContext(ctx, q, id)
	return err
}
