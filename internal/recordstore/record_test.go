package recordstore

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordAccessors(t *testing.T) {
	var rec Record
	raw := `{
		"Id": 42,
		"Name": "Acme",
		"arr_c": "1250.5",
		"team_size_c": 12,
		"CreatedOn": "2026-10-14T09:30:00Z",
		"follow_up_date_c": "2026-10-20",
		"Tags": "vip, saas,,",
		"permissions_c": ["leads", "deals"],
		"added_by_c": {"Id": 7, "Name": "Priya"},
		"lead_id_c": 3
	}`
	require.NoError(t, json.Unmarshal([]byte(raw), &rec))

	assert.Equal(t, "42", rec.ID())
	assert.Equal(t, "Acme", rec.String("Name"))
	assert.Equal(t, 1250.5, rec.Float("arr_c"))
	assert.Equal(t, 12, rec.Int("team_size_c"))
	assert.Equal(t, time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC), rec.Time("CreatedOn"))
	assert.Equal(t, time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC), rec.Time("follow_up_date_c"))
	assert.Equal(t, []string{"vip", "saas"}, rec.Strings("Tags"))
	assert.Equal(t, []string{"leads", "deals"}, rec.Strings("permissions_c"))
	assert.Equal(t, "7", rec.LookupID("added_by_c"))
	assert.Equal(t, "Priya", rec.LookupName("added_by_c"))
	assert.Equal(t, "Priya", rec.String("added_by_c"))
	assert.Equal(t, "3", rec.LookupID("lead_id_c"))
	assert.Empty(t, rec.LookupName("lead_id_c"))
}

func TestRecordAccessors_MissingAndMalformed(t *testing.T) {
	rec := Record{"arr_c": "n/a", "CreatedOn": "yesterday"}

	assert.Empty(t, rec.String("missing"))
	assert.Zero(t, rec.Float("arr_c"))
	assert.Zero(t, rec.Int("missing"))
	assert.True(t, rec.Time("CreatedOn").IsZero())
	assert.Nil(t, rec.Strings("missing"))
	assert.Empty(t, rec.LookupID("missing"))
}

func TestQueryBuilder(t *testing.T) {
	q := Select("Name", "status_c").
		Where("status_c", EqualTo, "New").
		Where("category_c", EqualTo, "").
		Where("Name", Contains).
		OrderBy("CreatedOn", "desc").
		OrderBy("Name", Desc).
		Page(20, -5)

	assert.Equal(t, []string{"Name", "status_c"}, q.Fields)
	require.Len(t, q.Conditions, 1)
	assert.Equal(t, Condition{FieldName: "status_c", Operator: EqualTo, Values: []any{"New"}}, q.Conditions[0])
	assert.Equal(t, []Order{{FieldName: "CreatedOn", SortType: Desc}, {FieldName: "Name", SortType: Desc}}, q.Sort)
	assert.Equal(t, Asc, Select().OrderBy("Name", "sideways").Sort[0].SortType)
	assert.Equal(t, &Paging{Limit: 20, Offset: 0}, q.Paging)

	assert.Nil(t, Select().Page(0, 10).Paging)
}

func TestQueryBuilder_DoesNotAliasConditions(t *testing.T) {
	base := Select().Where("status_c", EqualTo, "New")
	a := base.Where("category_c", EqualTo, "SaaS")
	b := base.Where("category_c", EqualTo, "Fintech")

	assert.Len(t, base.Conditions, 1)
	assert.Equal(t, "SaaS", a.Conditions[1].Values[0])
	assert.Equal(t, "Fintech", b.Conditions[1].Values[0])
}

func TestQuery_JSONShape(t *testing.T) {
	q := Select("Name").Where("Name", Contains, "acme").OrderBy("Name", Asc).Page(10, 0)
	buf, err := json.Marshal(q)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"fields": ["Name"],
		"where": [{"FieldName": "Name", "Operator": "Contains", "Values": ["acme"]}],
		"orderBy": [{"fieldName": "Name", "sorttype": "ASC"}],
		"pagingInfo": {"limit": 10, "offset": 0}
	}`, string(buf))
}

func TestFieldMap(t *testing.T) {
	fm := FieldMap{
		"id":         "Id",
		"name":       "Name",
		"websiteUrl": "website_url_c",
		"createdAt":  "CreatedOn",
	}

	assert.Equal(t, []string{"CreatedOn", "Id", "Name", "website_url_c"}, fm.Fields())

	ext, ok := fm.External("websiteUrl")
	assert.True(t, ok)
	assert.Equal(t, "website_url_c", ext)

	rec, err := fm.Translate(map[string]any{"name": "Acme", "websiteUrl": "https://acme.io"})
	require.NoError(t, err)
	assert.Equal(t, Record{"Name": "Acme", "website_url_c": "https://acme.io"}, rec)

	_, err = fm.Translate(map[string]any{"createdAt": "2026-01-01"})
	var unknown *UnknownFieldError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "createdAt", unknown.Field)

	_, err = fm.Translate(map[string]any{"favouriteColour": "blue"})
	assert.ErrorAs(t, err, &unknown)
}

func TestFirstResult(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		rec, err := FirstResult("lead", "create", &MutationResponse{
			Success: true,
			Results: []Result{{Success: true, Data: Record{"Id": float64(9)}}},
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, "9", rec.ID())
	})

	t.Run("envelope failure", func(t *testing.T) {
		_, err := FirstResult("lead", "create", &MutationResponse{Success: false, Message: "quota exceeded"}, nil)
		assert.ErrorIs(t, err, ErrStore)
		assert.EqualError(t, err, "record store create lead failed: quota exceeded")
	})

	t.Run("record failure carries field errors", func(t *testing.T) {
		_, err := FirstResult("lead", "update", &MutationResponse{
			Success: true,
			Results: []Result{{
				Success: false,
				Message: "invalid record",
				Errors:  []FieldError{{FieldLabel: "email_c", Message: "bad format"}},
			}},
		}, nil)
		assert.ErrorIs(t, err, ErrStore)
		assert.Contains(t, err.Error(), "email_c: bad format")
	})

	t.Run("no results", func(t *testing.T) {
		_, err := FirstResult("lead", "delete", &MutationResponse{Success: true}, nil)
		assert.ErrorIs(t, err, ErrStore)
	})

	t.Run("transport error", func(t *testing.T) {
		_, err := FirstResult("lead", "create", nil, assert.AnError)
		assert.ErrorIs(t, err, assert.AnError)
		assert.NotErrorIs(t, err, ErrStore)
	})
}
