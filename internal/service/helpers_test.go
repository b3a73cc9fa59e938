package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"crmapi/internal/model"
	"crmapi/internal/recordstore"
	"crmapi/internal/recordstore/mocks"
)

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "acme.io", want: "https://acme.io"},
		{in: "  https://www.Acme.io/  ", want: "https://acme.io"},
		{in: "http://acme.io/pricing/", want: "https://acme.io/pricing"},
		{in: "HTTPS://WWW.ACME.IO?utm=1#top", want: "https://acme.io"},
		{in: "", wantErr: true},
		{in: "ftp://acme.io", wantErr: true},
		{in: "localhost", wantErr: true},
		{in: "https://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := NormalizeURL(tt.in)
			if tt.wantErr {
				assert.True(t, IsValidation(err), "expected validation error, got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalendar(t *testing.T) {
	wib := time.FixedZone("WIB", 7*60*60)
	now := time.Date(2026, 10, 16, 20, 30, 0, 0, time.UTC)
	cal := NewCalendar(wib).WithClock(func() time.Time { return now })

	assert.Equal(t, "2026-10-17", cal.DayKey(cal.Now()))
	assert.Equal(t, time.Date(2026, 10, 17, 0, 0, 0, 0, wib), cal.Today())

	from, keys := cal.Window(3)
	assert.Equal(t, time.Date(2026, 10, 15, 0, 0, 0, 0, wib), from)
	assert.Equal(t, []string{"2026-10-15", "2026-10-16", "2026-10-17"}, keys)

	day, err := cal.ParseDay("2026-02-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, wib), day)

	day, err = cal.ParseDay("")
	require.NoError(t, err)
	assert.Equal(t, cal.Today(), day)

	_, err = cal.ParseDay("17/10/2026")
	assert.True(t, IsValidation(err))

	assert.Equal(t, time.UTC, NewCalendar(nil).loc)
}

func TestFetch_DegradesToEmpty(t *testing.T) {
	ctx := context.Background()

	t.Run("transport error", func(t *testing.T) {
		client := new(mocks.MockClient)
		client.On("FetchRecords", ctx, "lead", mock.Anything).Return(nil, errors.New("connection refused"))

		recs, total := fetch(ctx, client, "lead", recordstore.Select())

		assert.Empty(t, recs)
		assert.Zero(t, total)
	})

	t.Run("rejected envelope", func(t *testing.T) {
		client := new(mocks.MockClient)
		client.On("FetchRecords", ctx, "lead", mock.Anything).
			Return(&recordstore.FetchResponse{Success: false, Message: "invalid api key"}, nil)

		recs, _ := fetch(ctx, client, "lead", recordstore.Select())

		assert.Empty(t, recs)
	})

	t.Run("total never below page length", func(t *testing.T) {
		client := new(mocks.MockClient)
		client.On("FetchRecords", ctx, "lead", mock.Anything).
			Return(&recordstore.FetchResponse{Success: true, Data: []recordstore.Record{{"Id": 1}, {"Id": 2}}}, nil)

		recs, total := fetch(ctx, client, "lead", recordstore.Select())

		assert.Len(t, recs, 2)
		assert.Equal(t, 2, total)
	})
}

func TestGetOne(t *testing.T) {
	ctx := context.Background()

	_, err := getOne(ctx, new(mocks.MockClient), "lead", "", nil)
	assert.ErrorIs(t, err, ErrIDRequired)

	client := new(mocks.MockClient)
	client.On("GetRecordByID", ctx, "lead", "1", []string(nil)).
		Return(&recordstore.GetResponse{Success: false, Message: "Record not found"}, nil).Once()
	client.On("GetRecordByID", ctx, "lead", "2", []string(nil)).
		Return(nil, errors.New("timeout")).Once()
	client.On("GetRecordByID", ctx, "lead", "3", []string(nil)).
		Return(&recordstore.GetResponse{Success: true, Data: recordstore.Record{"Id": 3}}, nil).Once()

	_, err = getOne(ctx, client, "lead", "1", nil)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = getOne(ctx, client, "lead", "2", nil)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)

	rec, err := getOne(ctx, client, "lead", "3", nil)
	require.NoError(t, err)
	assert.Equal(t, "3", rec.ID())
}

func TestEnsureUnique(t *testing.T) {
	ctx := context.Background()
	holder := &recordstore.FetchResponse{Success: true, Data: []recordstore.Record{{"Id": float64(4)}}}

	client := new(mocks.MockClient)
	client.On("FetchRecords", ctx, "contact", mock.MatchedBy(func(q recordstore.Query) bool {
		return len(q.Conditions) == 1 && q.Conditions[0].FieldName == "email_c" && q.Conditions[0].Values[0] == "a@b.co"
	})).Return(holder, nil)

	assert.NoError(t, ensureUnique(ctx, client, "contact", "email_c", "", ""))
	assert.ErrorIs(t, ensureUnique(ctx, client, "contact", "email_c", "a@b.co", ""), ErrDuplicate)
	assert.NoError(t, ensureUnique(ctx, client, "contact", "email_c", "a@b.co", "4"))

	failing := new(mocks.MockClient)
	failing.On("FetchRecords", ctx, "contact", mock.Anything).Return(nil, errors.New("down"))
	err := ensureUnique(ctx, failing, "contact", "email_c", "a@b.co", "")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrDuplicate)
}

func TestTranslate(t *testing.T) {
	_, err := translate(leadFields, nil)
	assert.True(t, IsValidation(err))

	_, err = translate(leadFields, map[string]any{"updatedAt": "2026-01-01"})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "updatedAt", ve.Field)

	rec, err := translate(leadFields, map[string]any{"status": "Contacted", "arr": 10.0})
	require.NoError(t, err)
	assert.Equal(t, recordstore.Record{"status_c": "Contacted", "arr_c": 10.0}, rec)
}

func TestChangeReaders(t *testing.T) {
	changes := map[string]any{"name": "  Acme ", "arr": 12.5, "bad": -1.0, "word": 3.0, "day": "2026-10-16T10:00:00Z"}

	s, ok, err := stringChange(changes, "name")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Acme", s)

	_, _, err = stringChange(changes, "word")
	assert.True(t, IsValidation(err))

	_, ok, _ = stringChange(changes, "missing")
	assert.False(t, ok)

	n, ok, err := numberChange(changes, "arr")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 12.5, n)

	_, _, err = numberChange(changes, "bad")
	assert.True(t, IsValidation(err))

	_, _, err = numberChange(changes, "name")
	assert.True(t, IsValidation(err))

	require.NoError(t, dateChange(changes, "day"))
	assert.Equal(t, "2026-10-16", changes["day"])
	assert.True(t, IsValidation(dateChange(map[string]any{"d": "tomorrow"}, "d")))
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, validateEmail("email", "", false))
	assert.True(t, IsValidation(validateEmail("email", "", true)))
	assert.NoError(t, validateEmail("email", "priya@acme.io", true))
	assert.True(t, IsValidation(validateEmail("email", "Priya <priya@acme.io>", false)))
	assert.True(t, IsValidation(validateEmail("email", "not-an-email", false)))
}

func TestLeadMapping_Defaults(t *testing.T) {
	l := leadFromRecord(recordstore.Record{
		"Id":            float64(3),
		"Name":          "Acme",
		"website_url_c": "https://acme.io",
		"added_by_c":    map[string]any{"Id": float64(7), "Name": "Priya"},
		"CreatedOn":     "2026-10-16T09:00:00Z",
	})

	assert.Equal(t, "3", l.ID)
	assert.Equal(t, DefaultLeadStatus, l.Status)
	assert.Equal(t, DefaultLeadCategory, l.Category)
	assert.Equal(t, DefaultTeamSize, l.TeamSize)
	assert.Equal(t, DefaultFundingType, l.FundingType)
	assert.Equal(t, DefaultEdition, l.Edition)
	assert.Zero(t, l.ARR)
	assert.Nil(t, l.FollowUpDate)
	assert.Equal(t, "7", l.AddedBy)
	assert.Equal(t, "Priya", l.AddedByName)

	follow := model.NewDate(time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC))
	rec := leadToRecord(model.Lead{Name: "Acme", WebsiteURL: "https://acme.io", FollowUpDate: follow, AddedBy: "7"})
	assert.Equal(t, "2026-10-20", rec["follow_up_date_c"])
	assert.Equal(t, 7, rec["added_by_c"])
	assert.NotContains(t, rec, "email_c")
}

func TestCountBy_SumsToInput(t *testing.T) {
	recs := []recordstore.Record{
		{"status_c": "New"}, {"status_c": "Contacted"}, {"status_c": "New"},
		{}, {"status_c": " "}, {"status_c": "Closed Won"},
	}

	got := countBy(recs, "status_c", DefaultLeadStatus)

	assert.Equal(t, []model.CountBucket{
		{Key: "New", Count: 4},
		{Key: "Closed Won", Count: 1},
		{Key: "Contacted", Count: 1},
	}, got)
	sum := 0
	for _, b := range got {
		sum += b.Count
	}
	assert.Equal(t, len(recs), sum)
}

func TestBuildPipeline(t *testing.T) {
	p := buildPipeline([]model.Deal{
		{Stage: model.StageConnected, Value: 100},
		{Stage: model.StageNegotiation, Value: 200},
		{Stage: model.StageClosedWon, Value: 300},
		{Stage: model.StageClosedWon, Value: 100},
		{Stage: model.StageClosedLost, Value: 50},
	})

	require.Len(t, p.Stages, len(model.DealStages))
	assert.Equal(t, model.StageSummary{Stage: model.StageConnected, Count: 1, Value: 100}, p.Stages[0])
	assert.Equal(t, model.StageSummary{Stage: model.StageClosedWon, Count: 2, Value: 400}, p.Stages[5])
	assert.Equal(t, 5, p.TotalDeals)
	assert.Equal(t, 750.0, p.TotalValue)
	assert.Equal(t, 300.0, p.OpenValue)
	assert.Equal(t, 400.0, p.WonValue)
	assert.Equal(t, 66.67, p.WinRate)

	assert.Zero(t, buildPipeline(nil).WinRate)
}

func TestBuildPipeline_UnlistedStage(t *testing.T) {
	p := buildPipeline([]model.Deal{
		{Stage: model.StageConnected, Value: 10},
		{Stage: "Proposal Sent", Value: 20},
		{Stage: "Proposal Sent", Value: 5},
	})

	require.Len(t, p.Stages, len(model.DealStages)+1)
	assert.Equal(t, model.StageSummary{Stage: model.StageOther, Count: 2, Value: 25}, p.Stages[len(p.Stages)-1])
	assert.Equal(t, 35.0, p.OpenValue)

	sum := 0
	for _, st := range p.Stages {
		sum += st.Count
	}
	assert.Equal(t, p.TotalDeals, sum)
}

func TestRankSalesReps(t *testing.T) {
	reps := []model.SalesRep{
		{ID: "1", Name: "Ben", TotalRevenue: 300, DealsClosed: 1, LeadsContacted: 2},
		{ID: "2", Name: "Ava", TotalRevenue: 300},
		{ID: "3", Name: "Cara", TotalRevenue: 100, DealsClosed: 2, LeadsContacted: 10, Target: 400},
	}

	byRevenue := rankSalesReps(reps, model.MetricRevenue, 5)
	require.Len(t, byRevenue, 3)
	assert.Equal(t, []string{"Ava", "Ben", "Cara"}, []string{byRevenue[0].Name, byRevenue[1].Name, byRevenue[2].Name})
	assert.Equal(t, []int{1, 2, 3}, []int{byRevenue[0].Rank, byRevenue[1].Rank, byRevenue[2].Rank})
	assert.Equal(t, 25.0, byRevenue[2].TargetProgress)

	byConversion := rankSalesReps(reps, model.MetricConversion, 2)
	require.Len(t, byConversion, 2)
	assert.Equal(t, "Ben", byConversion[0].Name)
	assert.Equal(t, 50.0, byConversion[0].Score)
	assert.Equal(t, "Cara", byConversion[1].Name)
	assert.Equal(t, 20.0, byConversion[1].Score)
}
