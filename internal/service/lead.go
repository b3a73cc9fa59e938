package service

import (
	"context"
	"sort"
	"strings"

	"crmapi/internal/logger"
	"crmapi/internal/model"
	"crmapi/internal/recordstore"
)

const entityLead = "lead"

var leadFields = recordstore.FieldMap{
	"id":           "Id",
	"name":         "Name",
	"email":        "email_c",
	"websiteUrl":   "website_url_c",
	"teamSize":     "team_size_c",
	"arr":          "arr_c",
	"category":     "category_c",
	"linkedinUrl":  "linkedin_url_c",
	"status":       "status_c",
	"fundingType":  "funding_type_c",
	"edition":      "edition_c",
	"followUpDate": "follow_up_date_c",
	"addedBy":      "added_by_c",
	"notes":        "notes_c",
	"createdAt":    "CreatedOn",
	"updatedAt":    "ModifiedOn",
}

// Lead defaults, applied on create and on read when the store returns a blank.
const (
	DefaultLeadStatus   = "New"
	DefaultLeadCategory = "Other"
	DefaultTeamSize     = "1-3"
	DefaultFundingType  = "Bootstrapped"
	DefaultEdition      = "Select Edition"

	defaultDailyDays = 7
	maxDailyDays     = 90
)

const unassigned = "unassigned"

// LeadService covers lead CRUD and the lead-centric daily reports.
type LeadService interface {
	List(ctx context.Context, f model.LeadFilter) (*ListResult[model.Lead], error)
	Get(ctx context.Context, id string) (*model.Lead, error)
	Create(ctx context.Context, in model.Lead) (*model.Lead, error)
	Update(ctx context.Context, id string, changes map[string]any) (*model.Lead, error)
	Delete(ctx context.Context, id string) error
	// DailyLeads counts leads per rep per day over the trailing window, newest day first.
	DailyLeads(ctx context.Context, days int, salesRepID string) (*model.DailyLeadsReport, error)
	// FreshLeads lists leads created on date whose website had never been seen before that day.
	FreshLeads(ctx context.Context, date string) ([]model.Lead, error)
}

type leadService struct {
	client   recordstore.Client
	activity WebsiteActivityService
	cal      Calendar
}

func NewLeadService(client recordstore.Client, activity WebsiteActivityService, cal Calendar) LeadService {
	return &leadService{client: client, activity: activity, cal: cal}
}

func applyLeadDefaults(l *model.Lead) {
	if l.Status == "" {
		l.Status = DefaultLeadStatus
	}
	if l.Category == "" {
		l.Category = DefaultLeadCategory
	}
	if l.TeamSize == "" {
		l.TeamSize = DefaultTeamSize
	}
	if l.FundingType == "" {
		l.FundingType = DefaultFundingType
	}
	if l.Edition == "" {
		l.Edition = DefaultEdition
	}
}

func leadFromRecord(r recordstore.Record) model.Lead {
	l := model.Lead{
		ID:           r.ID(),
		Name:         r.String("Name"),
		Email:        r.String("email_c"),
		WebsiteURL:   r.String("website_url_c"),
		TeamSize:     r.String("team_size_c"),
		ARR:          r.Float("arr_c"),
		Category:     r.String("category_c"),
		LinkedInURL:  r.String("linkedin_url_c"),
		Status:       r.String("status_c"),
		FundingType:  r.String("funding_type_c"),
		Edition:      r.String("edition_c"),
		FollowUpDate: model.NewDate(r.Time("follow_up_date_c")),
		AddedBy:      r.LookupID("added_by_c"),
		AddedByName:  r.LookupName("added_by_c"),
		Notes:        r.String("notes_c"),
		CreatedAt:    r.Time("CreatedOn"),
		UpdatedAt:    r.Time("ModifiedOn"),
	}
	applyLeadDefaults(&l)
	return l
}

func leadToRecord(l model.Lead) recordstore.Record {
	rec := recordstore.Record{
		"Name":           l.Name,
		"website_url_c":  l.WebsiteURL,
		"team_size_c":    l.TeamSize,
		"arr_c":          l.ARR,
		"category_c":     l.Category,
		"status_c":       l.Status,
		"funding_type_c": l.FundingType,
		"edition_c":      l.Edition,
	}
	putIf(rec, "email_c", l.Email)
	putIf(rec, "linkedin_url_c", l.LinkedInURL)
	putIf(rec, "notes_c", l.Notes)
	if l.FollowUpDate != nil {
		rec["follow_up_date_c"] = l.FollowUpDate.Format(dayLayout)
	}
	if l.AddedBy != "" {
		rec["added_by_c"] = recordID(l.AddedBy)
	}
	return rec
}

func (s *leadService) List(ctx context.Context, f model.LeadFilter) (*ListResult[model.Lead], error) {
	sortField := "CreatedOn"
	order := recordstore.Desc
	if f.Sort != "" {
		ext, ok := leadFields.External(f.Sort)
		if !ok {
			return nil, invalid("sort", "unknown field %q", f.Sort)
		}
		sortField, order = ext, f.Order
	}
	var addedBy any
	if f.AddedBy != "" {
		addedBy = recordID(f.AddedBy)
	}

	q := recordstore.Select(leadFields.Fields()...).
		Where("Name", recordstore.Contains, f.Search).
		Where("status_c", recordstore.EqualTo, f.Status).
		Where("category_c", recordstore.EqualTo, f.Category).
		OrderBy(sortField, order).
		Page(pageSize(f.Limit), f.Offset)
	if addedBy != nil {
		q = q.Where("added_by_c", recordstore.EqualTo, addedBy)
	}

	recs, total := fetch(ctx, s.client, entityLead, q)
	items := make([]model.Lead, 0, len(recs))
	for _, r := range recs {
		items = append(items, leadFromRecord(r))
	}
	return &ListResult[model.Lead]{Items: items, Total: total}, nil
}

func (s *leadService) Get(ctx context.Context, id string) (*model.Lead, error) {
	rec, err := getOne(ctx, s.client, entityLead, id, leadFields.Fields())
	if err != nil {
		return nil, err
	}
	l := leadFromRecord(rec)
	return &l, nil
}

func (s *leadService) Create(ctx context.Context, in model.Lead) (*model.Lead, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, invalid("name", "is required")
	}
	u, err := NormalizeURL(in.WebsiteURL)
	if err != nil {
		return nil, err
	}
	in.WebsiteURL = u
	if err := validateEmail("email", in.Email, false); err != nil {
		return nil, err
	}
	if in.ARR < 0 {
		return nil, invalid("arr", "must not be negative")
	}
	applyLeadDefaults(&in)
	if err := oneOf("status", in.Status, model.LeadStatuses); err != nil {
		return nil, err
	}

	if err := ensureUnique(ctx, s.client, entityLead, "website_url_c", u, ""); err != nil {
		return nil, err
	}

	stored, err := createOne(ctx, s.client, entityLead, leadToRecord(in))
	if err != nil {
		return nil, err
	}
	out := leadFromRecord(stored)

	if _, err := s.activity.Record(ctx, u, in.AddedBy); err != nil {
		logger.Ctx(ctx).Warn().Err(err).Str("lead_id", out.ID).Str("website_url", u).Msg("failed to record website activity")
	}
	return &out, nil
}

func (s *leadService) Update(ctx context.Context, id string, changes map[string]any) (*model.Lead, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	if name, ok, err := stringChange(changes, "name"); err != nil {
		return nil, err
	} else if ok && name == "" {
		return nil, invalid("name", "must not be empty")
	}
	if status, ok, err := stringChange(changes, "status"); err != nil {
		return nil, err
	} else if ok {
		if err := oneOf("status", status, model.LeadStatuses); err != nil {
			return nil, err
		}
	}
	if email, ok, err := stringChange(changes, "email"); err != nil {
		return nil, err
	} else if ok {
		if err := validateEmail("email", email, false); err != nil {
			return nil, err
		}
	}
	if _, _, err := numberChange(changes, "arr"); err != nil {
		return nil, err
	}
	if err := dateChange(changes, "followUpDate"); err != nil {
		return nil, err
	}
	if raw, ok, err := stringChange(changes, "websiteUrl"); err != nil {
		return nil, err
	} else if ok {
		u, err := NormalizeURL(raw)
		if err != nil {
			return nil, err
		}
		if err := ensureUnique(ctx, s.client, entityLead, "website_url_c", u, id); err != nil {
			return nil, err
		}
		changes["websiteUrl"] = u
	}
	if addedBy, ok, err := stringChange(changes, "addedBy"); err != nil {
		return nil, err
	} else if ok && addedBy != "" {
		changes["addedBy"] = recordID(addedBy)
	}

	rec, err := translate(leadFields, changes)
	if err != nil {
		return nil, err
	}
	stored, err := updateOne(ctx, s.client, entityLead, id, rec)
	if err != nil {
		return nil, err
	}
	l := leadFromRecord(stored)
	return &l, nil
}

func (s *leadService) Delete(ctx context.Context, id string) error {
	return deleteOne(ctx, s.client, entityLead, id)
}

func (s *leadService) DailyLeads(ctx context.Context, days int, salesRepID string) (*model.DailyLeadsReport, error) {
	if days <= 0 {
		days = defaultDailyDays
	}
	days = min(days, maxDailyDays)
	from, keys := s.cal.Window(days)

	q := recordstore.Select("Id", "added_by_c", "CreatedOn").
		Where("CreatedOn", recordstore.GreaterThanOrEqualTo, from.Format(timeLayout)).
		OrderBy("CreatedOn", recordstore.Desc).
		Page(aggregateLimit, 0)
	if salesRepID != "" {
		q = q.Where("added_by_c", recordstore.EqualTo, recordID(salesRepID))
	}
	recs, _ := fetch(ctx, s.client, entityLead, q)

	type repKey struct{ day, rep string }
	counts := make(map[repKey]*model.DailyLeadCount)
	inWindow := make(map[string]bool, len(keys))
	for _, k := range keys {
		inWindow[k] = true
	}
	for _, r := range recs {
		day := s.cal.DayKey(r.Time("CreatedOn"))
		if !inWindow[day] {
			continue
		}
		repID, repName := r.LookupID("added_by_c"), r.LookupName("added_by_c")
		if salesRepID != "" && repID != salesRepID {
			continue
		}
		if repID == "" {
			repID, repName = unassigned, "Unassigned"
		}
		k := repKey{day, repID}
		c, ok := counts[k]
		if !ok {
			c = &model.DailyLeadCount{Date: day, SalesRepID: repID, SalesRepName: repName}
			counts[k] = c
		}
		c.Count++
	}

	byDay := make(map[string][]model.DailyLeadCount, len(keys))
	for _, c := range counts {
		byDay[c.Date] = append(byDay[c.Date], *c)
	}

	report := &model.DailyLeadsReport{
		From: keys[0],
		To:   keys[len(keys)-1],
		Days: make([]model.DailyLeadDay, 0, len(keys)),
	}
	for i := len(keys) - 1; i >= 0; i-- {
		reps := byDay[keys[i]]
		if reps == nil {
			reps = []model.DailyLeadCount{}
		}
		sort.Slice(reps, func(a, b int) bool {
			if reps[a].Count != reps[b].Count {
				return reps[a].Count > reps[b].Count
			}
			return reps[a].SalesRepName < reps[b].SalesRepName
		})
		day := model.DailyLeadDay{Date: keys[i], Reps: reps}
		for _, c := range reps {
			day.Total += c.Count
		}
		report.Total += day.Total
		report.Days = append(report.Days, day)
	}
	return report, nil
}

func (s *leadService) FreshLeads(ctx context.Context, date string) ([]model.Lead, error) {
	day, err := s.cal.ParseDay(date)
	if err != nil {
		return nil, err
	}
	dayKey := day.Format(dayLayout)

	q := recordstore.Select(leadFields.Fields()...).
		Where("CreatedOn", recordstore.GreaterThanOrEqualTo, day.Format(timeLayout)).
		Where("CreatedOn", recordstore.LessThan, day.AddDate(0, 0, 1).Format(timeLayout)).
		OrderBy("CreatedOn", recordstore.Asc).
		Page(aggregateLimit, 0)
	recs, _ := fetch(ctx, s.client, entityLead, q)
	if len(recs) == 0 {
		return []model.Lead{}, nil
	}

	freshURLs, err := s.activity.FreshURLs(ctx, dayKey)
	if err != nil {
		return nil, err
	}
	fresh := make(map[string]bool, len(freshURLs))
	for _, u := range freshURLs {
		fresh[u] = true
	}

	out := make([]model.Lead, 0)
	for _, r := range recs {
		l := leadFromRecord(r)
		if s.cal.DayKey(l.CreatedAt) != dayKey {
			continue
		}
		u, err := NormalizeURL(l.WebsiteURL)
		if err != nil || !fresh[u] {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}
