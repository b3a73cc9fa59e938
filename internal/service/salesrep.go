package service

import (
	"context"
	"sort"
	"strings"

	"crmapi/internal/model"
	"crmapi/internal/recordstore"
)

const entitySalesRep = "sales_rep"

var salesRepFields = recordstore.FieldMap{
	"id":             "Id",
	"name":           "Name",
	"email":          "email_c",
	"leadsContacted": "leads_contacted_c",
	"meetingsBooked": "meetings_booked_c",
	"dealsClosed":    "deals_closed_c",
	"totalRevenue":   "total_revenue_c",
	"target":         "target_c",
	"createdAt":      "CreatedOn",
	"updatedAt":      "ModifiedOn",
}

var leaderboardMetrics = []string{
	model.MetricRevenue,
	model.MetricDeals,
	model.MetricMeetings,
	model.MetricContacted,
	model.MetricConversion,
}

const (
	defaultLeaderboardSize = 5
	maxLeaderboardSize     = 100
)

type SalesRepService interface {
	List(ctx context.Context) ([]model.SalesRep, error)
	Get(ctx context.Context, id string) (*model.SalesRep, error)
	Create(ctx context.Context, in model.SalesRep) (*model.SalesRep, error)
	Update(ctx context.Context, id string, changes map[string]any) (*model.SalesRep, error)
	Delete(ctx context.Context, id string) error
	// Leaderboard ranks reps by metric, highest first, ties by name.
	Leaderboard(ctx context.Context, metric string, limit int) ([]model.LeaderboardEntry, error)
}

type salesRepService struct {
	client recordstore.Client
}

func NewSalesRepService(client recordstore.Client) SalesRepService {
	return &salesRepService{client: client}
}

func salesRepFromRecord(r recordstore.Record) model.SalesRep {
	return model.SalesRep{
		ID:             r.ID(),
		Name:           r.String("Name"),
		Email:          r.String("email_c"),
		LeadsContacted: r.Int("leads_contacted_c"),
		MeetingsBooked: r.Int("meetings_booked_c"),
		DealsClosed:    r.Int("deals_closed_c"),
		TotalRevenue:   r.Float("total_revenue_c"),
		Target:         r.Float("target_c"),
		CreatedAt:      r.Time("CreatedOn"),
		UpdatedAt:      r.Time("ModifiedOn"),
	}
}

func salesRepToRecord(s model.SalesRep) recordstore.Record {
	rec := recordstore.Record{
		"Name":              s.Name,
		"leads_contacted_c": s.LeadsContacted,
		"meetings_booked_c": s.MeetingsBooked,
		"deals_closed_c":    s.DealsClosed,
		"total_revenue_c":   s.TotalRevenue,
		"target_c":          s.Target,
	}
	putIf(rec, "email_c", s.Email)
	return rec
}

func (s *salesRepService) List(ctx context.Context) ([]model.SalesRep, error) {
	q := recordstore.Select(salesRepFields.Fields()...).
		OrderBy("Name", recordstore.Asc).
		Page(aggregateLimit, 0)
	recs, _ := fetch(ctx, s.client, entitySalesRep, q)

	out := make([]model.SalesRep, 0, len(recs))
	for _, r := range recs {
		out = append(out, salesRepFromRecord(r))
	}
	return out, nil
}

func (s *salesRepService) Get(ctx context.Context, id string) (*model.SalesRep, error) {
	rec, err := getOne(ctx, s.client, entitySalesRep, id, salesRepFields.Fields())
	if err != nil {
		return nil, err
	}
	rep := salesRepFromRecord(rec)
	return &rep, nil
}

func (s *salesRepService) Create(ctx context.Context, in model.SalesRep) (*model.SalesRep, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, invalid("name", "is required")
	}
	in.Email = strings.TrimSpace(in.Email)
	if err := validateEmail("email", in.Email, false); err != nil {
		return nil, err
	}
	switch {
	case in.LeadsContacted < 0:
		return nil, invalid("leadsContacted", "must not be negative")
	case in.MeetingsBooked < 0:
		return nil, invalid("meetingsBooked", "must not be negative")
	case in.DealsClosed < 0:
		return nil, invalid("dealsClosed", "must not be negative")
	case in.TotalRevenue < 0:
		return nil, invalid("totalRevenue", "must not be negative")
	case in.Target < 0:
		return nil, invalid("target", "must not be negative")
	}
	if err := ensureUnique(ctx, s.client, entitySalesRep, "email_c", in.Email, ""); err != nil {
		return nil, err
	}

	stored, err := createOne(ctx, s.client, entitySalesRep, salesRepToRecord(in))
	if err != nil {
		return nil, err
	}
	rep := salesRepFromRecord(stored)
	return &rep, nil
}

func (s *salesRepService) Update(ctx context.Context, id string, changes map[string]any) (*model.SalesRep, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	if name, ok, err := stringChange(changes, "name"); err != nil {
		return nil, err
	} else if ok && name == "" {
		return nil, invalid("name", "must not be empty")
	}
	if email, ok, err := stringChange(changes, "email"); err != nil {
		return nil, err
	} else if ok {
		if err := validateEmail("email", email, false); err != nil {
			return nil, err
		}
		if err := ensureUnique(ctx, s.client, entitySalesRep, "email_c", email, id); err != nil {
			return nil, err
		}
		changes["email"] = email
	}
	for _, key := range []string{"leadsContacted", "meetingsBooked", "dealsClosed"} {
		if n, ok, err := numberChange(changes, key); err != nil {
			return nil, err
		} else if ok {
			changes[key] = int(n)
		}
	}
	for _, key := range []string{"totalRevenue", "target"} {
		if _, _, err := numberChange(changes, key); err != nil {
			return nil, err
		}
	}

	rec, err := translate(salesRepFields, changes)
	if err != nil {
		return nil, err
	}
	stored, err := updateOne(ctx, s.client, entitySalesRep, id, rec)
	if err != nil {
		return nil, err
	}
	rep := salesRepFromRecord(stored)
	return &rep, nil
}

func (s *salesRepService) Delete(ctx context.Context, id string) error {
	return deleteOne(ctx, s.client, entitySalesRep, id)
}

func (s *salesRepService) Leaderboard(ctx context.Context, metric string, limit int) ([]model.LeaderboardEntry, error) {
	if metric == "" {
		metric = model.MetricRevenue
	}
	if err := oneOf("metric", metric, leaderboardMetrics); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultLeaderboardSize
	}
	limit = min(limit, maxLeaderboardSize)

	reps, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return rankSalesReps(reps, metric, limit), nil
}

func rankSalesReps(reps []model.SalesRep, metric string, limit int) []model.LeaderboardEntry {
	entries := make([]model.LeaderboardEntry, 0, len(reps))
	for _, r := range reps {
		e := model.LeaderboardEntry{
			SalesRepID:     r.ID,
			Name:           r.Name,
			LeadsContacted: r.LeadsContacted,
			MeetingsBooked: r.MeetingsBooked,
			DealsClosed:    r.DealsClosed,
			TotalRevenue:   r.TotalRevenue,
			ConversionRate: percent(float64(r.DealsClosed), float64(r.LeadsContacted)),
			TargetProgress: percent(r.TotalRevenue, r.Target),
		}
		switch metric {
		case model.MetricRevenue:
			e.Score = r.TotalRevenue
		case model.MetricDeals:
			e.Score = float64(r.DealsClosed)
		case model.MetricMeetings:
			e.Score = float64(r.MeetingsBooked)
		case model.MetricContacted:
			e.Score = float64(r.LeadsContacted)
		case model.MetricConversion:
			e.Score = e.ConversionRate
		}
		entries = append(entries, e)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].Name < entries[j].Name
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}
