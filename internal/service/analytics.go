package service

import (
	"context"
	"sort"
	"strings"

	"crmapi/internal/model"
	"crmapi/internal/recordstore"
)

const (
	defaultTrendDays = 30
	maxTrendDays     = 365
	activeRepDays    = 30
)

// AnalyticsService computes dashboard aggregates client-side over the full lead and deal sets.
type AnalyticsService interface {
	Overview(ctx context.Context) (*model.Overview, error)
	LeadsByStatus(ctx context.Context) ([]model.CountBucket, error)
	LeadsByCategory(ctx context.Context) ([]model.CountBucket, error)
	// LeadTrend returns zero-filled daily lead counts over the trailing window, oldest first.
	LeadTrend(ctx context.Context, days int) ([]model.DayCount, error)
}

type analyticsService struct {
	client recordstore.Client
	cal    Calendar
}

func NewAnalyticsService(client recordstore.Client, cal Calendar) AnalyticsService {
	return &analyticsService{client: client, cal: cal}
}

func (s *analyticsService) leads(ctx context.Context, fields ...string) []recordstore.Record {
	q := recordstore.Select(append([]string{"Id"}, fields...)...).Page(aggregateLimit, 0)
	recs, _ := fetch(ctx, s.client, entityLead, q)
	return recs
}

func (s *analyticsService) Overview(ctx context.Context) (*model.Overview, error) {
	leads := s.leads(ctx, "added_by_c", "CreatedOn")
	q := recordstore.Select("Id", "value_c", "stage_c").Page(aggregateLimit, 0)
	dealRecs, _ := fetch(ctx, s.client, entityDeal, q)

	deals := make([]model.Deal, 0, len(dealRecs))
	won := 0
	for _, r := range dealRecs {
		d := dealFromRecord(r)
		if d.Stage == model.StageClosedWon {
			won++
		}
		deals = append(deals, d)
	}
	pipeline := buildPipeline(deals)

	today := s.cal.DayKey(s.cal.Now())
	activeSince := s.cal.Today().AddDate(0, 0, -(activeRepDays - 1))
	activeReps := make(map[string]bool)
	leadsToday := 0
	for _, r := range leads {
		created := r.Time("CreatedOn")
		if s.cal.DayKey(created) == today {
			leadsToday++
		}
		if rep := r.LookupID("added_by_c"); rep != "" && !created.Before(activeSince) {
			activeReps[rep] = true
		}
	}

	return &model.Overview{
		TotalLeads:     len(leads),
		LeadsToday:     leadsToday,
		TotalDeals:     pipeline.TotalDeals,
		PipelineValue:  pipeline.OpenValue,
		WonValue:       pipeline.WonValue,
		ConversionRate: percent(float64(won), float64(len(leads))),
		ActiveReps:     len(activeReps),
	}, nil
}

func (s *analyticsService) LeadsByStatus(ctx context.Context) ([]model.CountBucket, error) {
	return countBy(s.leads(ctx, "status_c"), "status_c", DefaultLeadStatus), nil
}

func (s *analyticsService) LeadsByCategory(ctx context.Context) ([]model.CountBucket, error) {
	return countBy(s.leads(ctx, "category_c"), "category_c", DefaultLeadCategory), nil
}

// countBy groups records on field. Blank values count under def, the same default the lead reader
// fills in, so the counts always sum to len(recs).
func countBy(recs []recordstore.Record, field, def string) []model.CountBucket {
	counts := make(map[string]int)
	for _, r := range recs {
		key := strings.TrimSpace(r.String(field))
		if key == "" {
			key = def
		}
		counts[key]++
	}

	out := make([]model.CountBucket, 0, len(counts))
	for k, n := range counts {
		out = append(out, model.CountBucket{Key: k, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Key < out[j].Key
	})
	return out
}

func (s *analyticsService) LeadTrend(ctx context.Context, days int) ([]model.DayCount, error) {
	if days <= 0 {
		days = defaultTrendDays
	}
	days = min(days, maxTrendDays)
	from, keys := s.cal.Window(days)

	q := recordstore.Select("Id", "CreatedOn").
		Where("CreatedOn", recordstore.GreaterThanOrEqualTo, from.Format(timeLayout)).
		Page(aggregateLimit, 0)
	recs, _ := fetch(ctx, s.client, entityLead, q)

	counts := make(map[string]int, len(keys))
	for _, r := range recs {
		counts[s.cal.DayKey(r.Time("CreatedOn"))]++
	}
	out := make([]model.DayCount, 0, len(keys))
	for _, k := range keys {
		out = append(out, model.DayCount{Date: k, Count: counts[k]})
	}
	return out, nil
}
