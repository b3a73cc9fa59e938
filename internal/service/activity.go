package service

import (
	"context"
	"sort"

	"crmapi/internal/model"
	"crmapi/internal/recordstore"
)

const entityWebsiteActivity = "website_url_activity"

var activityFields = recordstore.FieldMap{
	"id":         "Id",
	"name":       "Name",
	"websiteUrl": "website_url_c",
	"addedBy":    "added_by_c",
	"createdAt":  "CreatedOn",
	"updatedAt":  "ModifiedOn",
}

// WebsiteActivityService keeps the sighting log that decides whether a website is new to the team.
type WebsiteActivityService interface {
	Record(ctx context.Context, websiteURL, addedBy string) (*model.WebsiteActivity, error)
	// History lists every sighting of a URL, oldest first.
	History(ctx context.Context, websiteURL string) ([]model.WebsiteActivity, error)
	// IsFresh reports whether the URL's earliest sighting falls on date (YYYY-MM-DD, empty for today).
	IsFresh(ctx context.Context, websiteURL, date string) (*model.Freshness, error)
	// FreshURLs lists the distinct URLs sighted on date whose earliest sighting is that day.
	FreshURLs(ctx context.Context, date string) ([]string, error)
}

type websiteActivityService struct {
	client recordstore.Client
	cal    Calendar
}

func NewWebsiteActivityService(client recordstore.Client, cal Calendar) WebsiteActivityService {
	return &websiteActivityService{client: client, cal: cal}
}

func activityFromRecord(r recordstore.Record) model.WebsiteActivity {
	return model.WebsiteActivity{
		ID:          r.ID(),
		WebsiteURL:  r.String("website_url_c"),
		AddedBy:     r.LookupID("added_by_c"),
		AddedByName: r.LookupName("added_by_c"),
		CreatedAt:   r.Time("CreatedOn"),
	}
}

func (s *websiteActivityService) Record(ctx context.Context, websiteURL, addedBy string) (*model.WebsiteActivity, error) {
	u, err := NormalizeURL(websiteURL)
	if err != nil {
		return nil, err
	}
	rec := recordstore.Record{"Name": u, "website_url_c": u}
	if addedBy != "" {
		rec["added_by_c"] = recordID(addedBy)
	}
	stored, err := createOne(ctx, s.client, entityWebsiteActivity, rec)
	if err != nil {
		return nil, err
	}
	a := activityFromRecord(stored)
	return &a, nil
}

func (s *websiteActivityService) History(ctx context.Context, websiteURL string) ([]model.WebsiteActivity, error) {
	u, err := NormalizeURL(websiteURL)
	if err != nil {
		return nil, err
	}
	q := recordstore.Select(activityFields.Fields()...).
		Where("website_url_c", recordstore.EqualTo, u).
		OrderBy("CreatedOn", recordstore.Asc).
		Page(aggregateLimit, 0)
	recs, _ := fetch(ctx, s.client, entityWebsiteActivity, q)

	out := make([]model.WebsiteActivity, 0, len(recs))
	for _, r := range recs {
		out = append(out, activityFromRecord(r))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *websiteActivityService) IsFresh(ctx context.Context, websiteURL, date string) (*model.Freshness, error) {
	u, err := NormalizeURL(websiteURL)
	if err != nil {
		return nil, err
	}
	day, err := s.cal.ParseDay(date)
	if err != nil {
		return nil, err
	}
	return s.freshness(ctx, u, day.Format(dayLayout)), nil
}

// freshness looks at the earliest sighting only. No sightings means not fresh.
func (s *websiteActivityService) freshness(ctx context.Context, normalizedURL, dayKey string) *model.Freshness {
	q := recordstore.Select("Id", "CreatedOn").
		Where("website_url_c", recordstore.EqualTo, normalizedURL).
		OrderBy("CreatedOn", recordstore.Asc).
		Page(1, 0)
	recs, _ := fetch(ctx, s.client, entityWebsiteActivity, q)

	f := &model.Freshness{WebsiteURL: normalizedURL, Date: dayKey}
	if len(recs) == 0 {
		return f
	}
	first := recs[0].Time("CreatedOn")
	f.FirstSeen = timePtr(first)
	f.Fresh = !first.IsZero() && s.cal.DayKey(first) == dayKey
	return f
}

func (s *websiteActivityService) FreshURLs(ctx context.Context, date string) ([]string, error) {
	day, err := s.cal.ParseDay(date)
	if err != nil {
		return nil, err
	}
	dayKey := day.Format(dayLayout)
	q := recordstore.Select("Id", "website_url_c", "CreatedOn").
		Where("CreatedOn", recordstore.GreaterThanOrEqualTo, day.Format(timeLayout)).
		Where("CreatedOn", recordstore.LessThan, day.AddDate(0, 0, 1).Format(timeLayout)).
		Page(aggregateLimit, 0)
	recs, _ := fetch(ctx, s.client, entityWebsiteActivity, q)

	seen := make(map[string]bool)
	fresh := make([]string, 0)
	for _, r := range recs {
		if s.cal.DayKey(r.Time("CreatedOn")) != dayKey {
			continue
		}
		u, err := NormalizeURL(r.String("website_url_c"))
		if err != nil || seen[u] {
			continue
		}
		seen[u] = true
		if s.freshness(ctx, u, dayKey).Fresh {
			fresh = append(fresh, u)
		}
	}
	sort.Strings(fresh)
	return fresh, nil
}
