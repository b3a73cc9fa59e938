package recordstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"crmapi/internal/config"
)

const maxErrorBody = 4 << 10

// HTTPClient talks to the hosted record store over its JSON API.
// It is safe for concurrent use by multiple goroutines.
type HTTPClient struct {
	base      *url.URL
	apiKey    string
	projectID string
	http      *http.Client
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient builds a client for the record store described by cfg. Outgoing requests are traced.
func NewHTTPClient(cfg config.RecordStoreConfig) (*HTTPClient, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("record store url is required")
	}
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse record store url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("record store url must be http(s), got %q", cfg.BaseURL)
	}

	return &HTTPClient{
		base:      base,
		apiKey:    cfg.APIKey,
		projectID: cfg.ProjectID,
		http: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}, nil
}

type mutationPayload struct {
	Records []Record `json:"records"`
}

type deletePayload struct {
	RecordIDs []string `json:"RecordIds"`
}

// statusError is a non-2xx reply from the store.
type statusError struct {
	Status  int
	Message string
}

func (e *statusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("record store responded %d", e.Status)
	}
	return fmt.Sprintf("record store responded %d: %s", e.Status, e.Message)
}

func (e *statusError) Is(target error) bool {
	return target == ErrStore
}

func (c *HTTPClient) FetchRecords(ctx context.Context, entity string, q Query) (*FetchResponse, error) {
	var out FetchResponse
	if err := c.do(ctx, http.MethodPost, c.recordsPath(entity, "query"), nil, q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) GetRecordByID(ctx context.Context, entity, id string, fields []string) (*GetResponse, error) {
	params := url.Values{}
	if len(fields) > 0 {
		params.Set("fields", strings.Join(fields, ","))
	}
	var out GetResponse
	err := c.do(ctx, http.MethodGet, c.recordsPath(entity, url.PathEscape(id)), params, nil, &out)
	var se *statusError
	if errors.As(err, &se) && se.Status == http.StatusNotFound {
		return &GetResponse{Success: false, Message: se.Message}, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) CreateRecords(ctx context.Context, entity string, records []Record) (*MutationResponse, error) {
	return c.mutate(ctx, http.MethodPost, entity, mutationPayload{Records: records})
}

func (c *HTTPClient) UpdateRecords(ctx context.Context, entity string, records []Record) (*MutationResponse, error) {
	return c.mutate(ctx, http.MethodPatch, entity, mutationPayload{Records: records})
}

func (c *HTTPClient) DeleteRecords(ctx context.Context, entity string, ids []string) (*MutationResponse, error) {
	return c.mutate(ctx, http.MethodDelete, entity, deletePayload{RecordIDs: ids})
}

func (c *HTTPClient) mutate(ctx context.Context, method, entity string, payload any) (*MutationResponse, error) {
	var out MutationResponse
	if err := c.do(ctx, method, c.recordsPath(entity, ""), nil, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) recordsPath(entity, suffix string) string {
	p := "/tables/" + url.PathEscape(entity) + "/records"
	if suffix != "" {
		p += "/" + suffix
	}
	return p
}

func (c *HTTPClient) do(ctx context.Context, method, path string, params url.Values, body, out any) error {
	u := *c.base
	u.Path = c.base.Path + path
	if len(params) > 0 {
		u.RawQuery = params.Encode()
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	if c.projectID != "" {
		req.Header.Set("X-Project-ID", c.projectID)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		var env struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(raw, &env) != nil || env.Message == "" {
			env.Message = strings.TrimSpace(string(raw))
		}
		return &statusError{Status: resp.StatusCode, Message: env.Message}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}
