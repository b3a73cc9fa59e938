package recordstore

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crmapi/internal/config"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := NewHTTPClient(config.RecordStoreConfig{
		BaseURL:   srv.URL + "/v1/",
		APIKey:    "secret",
		ProjectID: "proj-1",
		Timeout:   2 * time.Second,
	})
	require.NoError(t, err)
	return c
}

func TestNewHTTPClient_Validation(t *testing.T) {
	_, err := NewHTTPClient(config.RecordStoreConfig{})
	assert.Error(t, err)

	_, err = NewHTTPClient(config.RecordStoreConfig{BaseURL: "ftp://records"})
	assert.Error(t, err)
}

func TestHTTPClient_FetchRecords(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/tables/lead/records/query", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.Equal(t, "proj-1", r.Header.Get("X-Project-ID"))

		var q Query
		require.NoError(t, json.NewDecoder(r.Body).Decode(&q))
		assert.Equal(t, []string{"Name"}, q.Fields)
		require.Len(t, q.Conditions, 1)
		assert.Equal(t, GreaterThanOrEqualTo, q.Conditions[0].Operator)

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"success":true,"total":2,"data":[{"Id":1,"Name":"A"},{"Id":2,"Name":"B"}]}`)
	})

	resp, err := c.FetchRecords(context.Background(), "lead",
		Select("Name").Where("CreatedOn", GreaterThanOrEqualTo, "2026-10-01"))

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, 2, resp.Total)
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "2", resp.Data[1].ID())
}

func TestHTTPClient_GetRecordByID(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/tables/deal/records/5":
			assert.Equal(t, "Name,value_c", r.URL.Query().Get("fields"))
			_, _ = io.WriteString(w, `{"success":true,"data":{"Id":5,"Name":"Renewal","value_c":1200}}`)
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"success":false,"message":"Record does not exist"}`)
		}
	})

	resp, err := c.GetRecordByID(context.Background(), "deal", "5", []string{"Name", "value_c"})
	require.NoError(t, err)
	assert.Equal(t, 1200.0, resp.Data.Float("value_c"))

	resp, err = c.GetRecordByID(context.Background(), "deal", "404", nil)
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "Record does not exist", resp.Message)
	assert.Nil(t, resp.Data)
}

func TestHTTPClient_Mutations(t *testing.T) {
	var methods []string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		methods = append(methods, r.Method)
		assert.Equal(t, "/v1/tables/contact/records", r.URL.Path)

		body, _ := io.ReadAll(r.Body)
		if r.Method == http.MethodDelete {
			assert.JSONEq(t, `{"RecordIds":["3"]}`, string(body))
		} else {
			assert.JSONEq(t, `{"records":[{"Name":"Sam"}]}`, string(body))
		}
		_, _ = io.WriteString(w, `{"success":true,"results":[{"success":true,"data":{"Id":3,"Name":"Sam"}}]}`)
	})
	ctx := context.Background()

	created, err := c.CreateRecords(ctx, "contact", []Record{{"Name": "Sam"}})
	require.NoError(t, err)
	assert.Equal(t, "3", created.Results[0].Data.ID())

	_, err = c.UpdateRecords(ctx, "contact", []Record{{"Name": "Sam"}})
	require.NoError(t, err)

	_, err = c.DeleteRecords(ctx, "contact", []string{"3"})
	require.NoError(t, err)

	assert.Equal(t, []string{http.MethodPost, http.MethodPatch, http.MethodDelete}, methods)
}

func TestHTTPClient_ErrorStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"success":false,"message":"invalid api key"}`)
	})

	_, err := c.FetchRecords(context.Background(), "lead", Select())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
	assert.Contains(t, err.Error(), "invalid api key")
	assert.ErrorIs(t, err, ErrStore)
}

func TestHTTPClient_PlainTextError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
	})

	_, err := c.CreateRecords(context.Background(), "lead", []Record{{"Name": "x"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upstream unavailable")
}

func TestHTTPClient_MalformedBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"success":`)
	})

	_, err := c.FetchRecords(context.Background(), "lead", Select())
	assert.ErrorContains(t, err, "decode")
}
