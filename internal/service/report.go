package service

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"time"

	"github.com/google/uuid"

	"crmapi/internal/model"
	"crmapi/internal/repository"
	"crmapi/internal/storage"
)

const (
	reportContentType = "text/csv"
	defaultURLExpiry  = 15 * time.Minute
)

var ReportKinds = []string{
	model.ReportDailyLeads,
	model.ReportPipeline,
	model.ReportSalesPerformance,
	model.ReportLeadStatus,
}

// ReportListResult is the service-level DTO for paginated reports.
type ReportListResult struct {
	Items []model.Report `json:"data"`
	Total int            `json:"total"`
}

// ReportService generates CSV exports of the aggregate reports and archives them.
type ReportService interface {
	// Generate renders a report, uploads it, and saves its metadata. The upload is removed again
	// when the metadata cannot be saved. days only applies to daily_leads.
	Generate(ctx context.Context, kind string, days int) (*model.Report, error)
	List(ctx context.Context, kind string, limit, offset int) (*ReportListResult, error)
	Get(ctx context.Context, id string) (*model.Report, error)
	// Download streams the CSV. The caller closes the reader.
	Download(ctx context.Context, id string) (io.ReadCloser, *model.Report, error)
	DownloadURL(ctx context.Context, id string) (string, error)
	// Delete removes the object first, then the row.
	Delete(ctx context.Context, id string) error
}

// ReportSources are the services a report is built from.
type ReportSources struct {
	Leads     LeadService
	Deals     DealService
	SalesReps SalesRepService
	Analytics AnalyticsService
}

type reportService struct {
	store     storage.Storage
	repo      repository.ReportRepository
	src       ReportSources
	cal       Calendar
	urlExpiry time.Duration
}

func NewReportService(store storage.Storage, repo repository.ReportRepository, src ReportSources, cal Calendar, urlExpiry time.Duration) ReportService {
	if urlExpiry <= 0 {
		urlExpiry = defaultURLExpiry
	}
	return &reportService{store: store, repo: repo, src: src, cal: cal, urlExpiry: urlExpiry}
}

type table struct {
	title  string
	header []string
	rows   [][]string
}

func (s *reportService) Generate(ctx context.Context, kind string, days int) (*model.Report, error) {
	t, err := s.build(ctx, kind, days)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(t.header); err != nil {
		return nil, fmt.Errorf("render csv: %w", err)
	}
	if err := w.WriteAll(t.rows); err != nil {
		return nil, fmt.Errorf("render csv: %w", err)
	}

	id := uuid.New().String()
	key := storage.ReportKey(kind, id)
	objInfo, err := s.store.Put(ctx, key, bytes.NewReader(buf.Bytes()), storage.PutObjectOptions{
		Size:        int64(buf.Len()),
		ContentType: reportContentType,
		Metadata:    map[string]string{"report-kind": kind},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	r := &model.Report{
		ID:          id,
		Kind:        kind,
		Title:       t.title,
		StoragePath: objInfo.Key,
		Size:        objInfo.Size,
		ContentType: reportContentType,
		RowCount:    len(t.rows),
		CreatedAt:   time.Now().UTC(),
	}
	stored, err := s.repo.Create(ctx, r)
	if err != nil {
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	return stored, nil
}

func (s *reportService) build(ctx context.Context, kind string, days int) (*table, error) {
	today := s.cal.DayKey(s.cal.Now())
	switch kind {
	case model.ReportDailyLeads:
		daily, err := s.src.Leads.DailyLeads(ctx, days, "")
		if err != nil {
			return nil, err
		}
		t := &table{
			title:  fmt.Sprintf("Daily leads %s to %s", daily.From, daily.To),
			header: []string{"date", "sales_rep_id", "sales_rep", "leads"},
		}
		for _, d := range daily.Days {
			if len(d.Reps) == 0 {
				t.rows = append(t.rows, []string{d.Date, "", "", "0"})
				continue
			}
			for _, c := range d.Reps {
				t.rows = append(t.rows, []string{c.Date, c.SalesRepID, c.SalesRepName, strconv.Itoa(c.Count)})
			}
		}
		return t, nil

	case model.ReportPipeline:
		p, err := s.src.Deals.Pipeline(ctx)
		if err != nil {
			return nil, err
		}
		t := &table{
			title:  fmt.Sprintf("Pipeline %s (win rate %s%%)", today, formatFloat(p.WinRate)),
			header: []string{"stage", "deals", "value"},
		}
		for _, st := range p.Stages {
			t.rows = append(t.rows, []string{st.Stage, strconv.Itoa(st.Count), formatFloat(st.Value)})
		}
		t.rows = append(t.rows, []string{"Total", strconv.Itoa(p.TotalDeals), formatFloat(p.TotalValue)})
		return t, nil

	case model.ReportSalesPerformance:
		board, err := s.src.SalesReps.Leaderboard(ctx, model.MetricRevenue, maxLeaderboardSize)
		if err != nil {
			return nil, err
		}
		t := &table{
			title: "Sales performance " + today,
			header: []string{
				"rank", "sales_rep_id", "name", "leads_contacted", "meetings_booked",
				"deals_closed", "total_revenue", "conversion_rate", "target_progress",
			},
		}
		for _, e := range board {
			t.rows = append(t.rows, []string{
				strconv.Itoa(e.Rank), e.SalesRepID, e.Name,
				strconv.Itoa(e.LeadsContacted), strconv.Itoa(e.MeetingsBooked), strconv.Itoa(e.DealsClosed),
				formatFloat(e.TotalRevenue), formatFloat(e.ConversionRate), formatFloat(e.TargetProgress),
			})
		}
		return t, nil

	case model.ReportLeadStatus:
		buckets, err := s.src.Analytics.LeadsByStatus(ctx)
		if err != nil {
			return nil, err
		}
		t := &table{
			title:  "Lead status " + today,
			header: []string{"status", "leads"},
		}
		for _, b := range buckets {
			t.rows = append(t.rows, []string{b.Key, strconv.Itoa(b.Count)})
		}
		return t, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownReport, kind)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func (s *reportService) List(ctx context.Context, kind string, limit, offset int) (*ReportListResult, error) {
	if kind != "" && !slices.Contains(ReportKinds, kind) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownReport, kind)
	}
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.repo.List(ctx, repository.PageQuery{Kind: kind, Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &ReportListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *reportService) Get(ctx context.Context, id string) (*model.Report, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("report %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return r, nil
}

func (s *reportService) Download(ctx context.Context, id string) (io.ReadCloser, *model.Report, error) {
	r, err := s.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	rc, _, err := s.store.Get(ctx, r.StoragePath)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, nil, fmt.Errorf("report %s content: %w", id, ErrNotFound)
		}
		return nil, nil, fmt.Errorf("download from storage: %w", err)
	}
	return rc, r, nil
}

func (s *reportService) DownloadURL(ctx context.Context, id string) (string, error) {
	r, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	u, err := s.store.PresignGet(ctx, r.StoragePath, s.urlExpiry)
	if err != nil {
		return "", fmt.Errorf("presign: %w", err)
	}
	return u, nil
}

func (s *reportService) Delete(ctx context.Context, id string) error {
	r, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	// Keep the row when the object cannot be removed so the object stays reachable.
	if err := s.store.Delete(ctx, r.StoragePath); err != nil {
		return fmt.Errorf("delete storage: %w", err)
	}
	return s.repo.Delete(ctx, id)
}
