package service

import (
	"context"
	"strings"

	"crmapi/internal/model"
	"crmapi/internal/recordstore"
)

const entityDeal = "deal"

var dealFields = recordstore.FieldMap{
	"id":                "Id",
	"name":              "Name",
	"leadId":            "lead_id_c",
	"value":             "value_c",
	"stage":             "stage_c",
	"salesRepId":        "sales_rep_c",
	"edition":           "edition_c",
	"startMonth":        "start_month_c",
	"endMonth":          "end_month_c",
	"expectedCloseDate": "expected_close_date_c",
	"createdAt":         "CreatedOn",
	"updatedAt":         "ModifiedOn",
}

const (
	DefaultDealStage = model.StageConnected
	firstMonth       = 1
	lastMonth        = 12
)

// DealService covers deal CRUD, stage moves and the pipeline summary.
type DealService interface {
	List(ctx context.Context, f model.DealFilter) (*ListResult[model.Deal], error)
	Get(ctx context.Context, id string) (*model.Deal, error)
	Create(ctx context.Context, in model.Deal) (*model.Deal, error)
	Update(ctx context.Context, id string, changes map[string]any) (*model.Deal, error)
	UpdateStage(ctx context.Context, id, stage string) (*model.Deal, error)
	Delete(ctx context.Context, id string) error
	Pipeline(ctx context.Context) (*model.Pipeline, error)
}

type dealService struct {
	client recordstore.Client
}

func NewDealService(client recordstore.Client) DealService {
	return &dealService{client: client}
}

func dealFromRecord(r recordstore.Record) model.Deal {
	d := model.Deal{
		ID:                r.ID(),
		Name:              r.String("Name"),
		LeadID:            r.LookupID("lead_id_c"),
		LeadName:          r.LookupName("lead_id_c"),
		Value:             r.Float("value_c"),
		Stage:             r.String("stage_c"),
		SalesRepID:        r.LookupID("sales_rep_c"),
		SalesRepName:      r.LookupName("sales_rep_c"),
		Edition:           r.String("edition_c"),
		StartMonth:        r.Int("start_month_c"),
		EndMonth:          r.Int("end_month_c"),
		ExpectedCloseDate: model.NewDate(r.Time("expected_close_date_c")),
		CreatedAt:         r.Time("CreatedOn"),
		UpdatedAt:         r.Time("ModifiedOn"),
	}
	applyDealDefaults(&d)
	return d
}

func applyDealDefaults(d *model.Deal) {
	if d.Stage == "" {
		d.Stage = DefaultDealStage
	}
	if d.StartMonth == 0 {
		d.StartMonth = firstMonth
	}
	if d.EndMonth == 0 {
		d.EndMonth = lastMonth
	}
}

func dealToRecord(d model.Deal) recordstore.Record {
	rec := recordstore.Record{
		"Name":          d.Name,
		"value_c":       d.Value,
		"stage_c":       d.Stage,
		"start_month_c": d.StartMonth,
		"end_month_c":   d.EndMonth,
	}
	putIf(rec, "edition_c", d.Edition)
	if d.LeadID != "" {
		rec["lead_id_c"] = recordID(d.LeadID)
	}
	if d.SalesRepID != "" {
		rec["sales_rep_c"] = recordID(d.SalesRepID)
	}
	if d.ExpectedCloseDate != nil {
		rec["expected_close_date_c"] = d.ExpectedCloseDate.Format(dayLayout)
	}
	return rec
}

func validateMonths(start, end int) error {
	if start < firstMonth || start > lastMonth {
		return invalid("startMonth", "must be between 1 and 12")
	}
	if end < firstMonth || end > lastMonth {
		return invalid("endMonth", "must be between 1 and 12")
	}
	if start > end {
		return invalid("endMonth", "must not be before startMonth")
	}
	return nil
}

func (s *dealService) List(ctx context.Context, f model.DealFilter) (*ListResult[model.Deal], error) {
	q := recordstore.Select(dealFields.Fields()...).
		Where("stage_c", recordstore.EqualTo, f.Stage).
		OrderBy("CreatedOn", recordstore.Desc).
		Page(pageSize(f.Limit), f.Offset)
	if f.SalesRepID != "" {
		q = q.Where("sales_rep_c", recordstore.EqualTo, recordID(f.SalesRepID))
	}
	if f.LeadID != "" {
		q = q.Where("lead_id_c", recordstore.EqualTo, recordID(f.LeadID))
	}

	recs, total := fetch(ctx, s.client, entityDeal, q)
	items := make([]model.Deal, 0, len(recs))
	for _, r := range recs {
		items = append(items, dealFromRecord(r))
	}
	return &ListResult[model.Deal]{Items: items, Total: total}, nil
}

func (s *dealService) Get(ctx context.Context, id string) (*model.Deal, error) {
	rec, err := getOne(ctx, s.client, entityDeal, id, dealFields.Fields())
	if err != nil {
		return nil, err
	}
	d := dealFromRecord(rec)
	return &d, nil
}

func (s *dealService) Create(ctx context.Context, in model.Deal) (*model.Deal, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, invalid("name", "is required")
	}
	if in.Value < 0 {
		return nil, invalid("value", "must not be negative")
	}
	applyDealDefaults(&in)
	if err := oneOf("stage", in.Stage, model.DealStages); err != nil {
		return nil, err
	}
	if err := validateMonths(in.StartMonth, in.EndMonth); err != nil {
		return nil, err
	}

	stored, err := createOne(ctx, s.client, entityDeal, dealToRecord(in))
	if err != nil {
		return nil, err
	}
	d := dealFromRecord(stored)
	return &d, nil
}

func (s *dealService) Update(ctx context.Context, id string, changes map[string]any) (*model.Deal, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	if name, ok, err := stringChange(changes, "name"); err != nil {
		return nil, err
	} else if ok && name == "" {
		return nil, invalid("name", "must not be empty")
	}
	if stage, ok, err := stringChange(changes, "stage"); err != nil {
		return nil, err
	} else if ok {
		if err := oneOf("stage", stage, model.DealStages); err != nil {
			return nil, err
		}
	}
	if _, _, err := numberChange(changes, "value"); err != nil {
		return nil, err
	}
	if err := dateChange(changes, "expectedCloseDate"); err != nil {
		return nil, err
	}
	for _, key := range []string{"leadId", "salesRepId"} {
		if v, ok, err := stringChange(changes, key); err != nil {
			return nil, err
		} else if ok && v != "" {
			changes[key] = recordID(v)
		}
	}

	start, hasStart, err := numberChange(changes, "startMonth")
	if err != nil {
		return nil, err
	}
	end, hasEnd, err := numberChange(changes, "endMonth")
	if err != nil {
		return nil, err
	}
	if hasStart || hasEnd {
		// One bound alone can only be checked against the stored other bound.
		if !hasStart || !hasEnd {
			current, err := s.Get(ctx, id)
			if err != nil {
				return nil, err
			}
			if !hasStart {
				start = float64(current.StartMonth)
			}
			if !hasEnd {
				end = float64(current.EndMonth)
			}
		}
		if err := validateMonths(int(start), int(end)); err != nil {
			return nil, err
		}
		if hasStart {
			changes["startMonth"] = int(start)
		}
		if hasEnd {
			changes["endMonth"] = int(end)
		}
	}

	rec, err := translate(dealFields, changes)
	if err != nil {
		return nil, err
	}
	stored, err := updateOne(ctx, s.client, entityDeal, id, rec)
	if err != nil {
		return nil, err
	}
	d := dealFromRecord(stored)
	return &d, nil
}

func (s *dealService) UpdateStage(ctx context.Context, id, stage string) (*model.Deal, error) {
	return s.Update(ctx, id, map[string]any{"stage": stage})
}

func (s *dealService) Delete(ctx context.Context, id string) error {
	return deleteOne(ctx, s.client, entityDeal, id)
}

func (s *dealService) Pipeline(ctx context.Context) (*model.Pipeline, error) {
	q := recordstore.Select("Id", "value_c", "stage_c").Page(aggregateLimit, 0)
	recs, _ := fetch(ctx, s.client, entityDeal, q)

	deals := make([]model.Deal, 0, len(recs))
	for _, r := range recs {
		deals = append(deals, dealFromRecord(r))
	}
	return buildPipeline(deals), nil
}

// buildPipeline summarises deals per stage in pipeline order. Deals in a stage outside the known
// list land in a trailing Other summary, so stage counts always sum to TotalDeals.
func buildPipeline(deals []model.Deal) *model.Pipeline {
	idx := make(map[string]int, len(model.DealStages))
	p := &model.Pipeline{Stages: make([]model.StageSummary, len(model.DealStages))}
	for i, stage := range model.DealStages {
		idx[stage] = i
		p.Stages[i].Stage = stage
	}

	other := model.StageSummary{Stage: model.StageOther}
	var won, lost int
	for _, d := range deals {
		p.TotalDeals++
		p.TotalValue += d.Value
		if i, ok := idx[d.Stage]; ok {
			p.Stages[i].Count++
			p.Stages[i].Value += d.Value
		} else {
			other.Count++
			other.Value += d.Value
		}
		switch d.Stage {
		case model.StageClosedWon:
			won++
			p.WonValue += d.Value
		case model.StageClosedLost:
			lost++
		default:
			p.OpenValue += d.Value
		}
	}
	if other.Count > 0 {
		p.Stages = append(p.Stages, other)
	}
	p.WinRate = percent(float64(won), float64(won+lost))
	return p
}
