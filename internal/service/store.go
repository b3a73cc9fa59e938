package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/mail"
	"slices"
	"strconv"
	"strings"
	"time"

	"crmapi/internal/logger"
	"crmapi/internal/recordstore"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
	// aggregateLimit bounds the fetch behind every client-side aggregate.
	aggregateLimit = 5000
)

// ListResult is one page of an entity listing.
type ListResult[T any] struct {
	Items []T `json:"data"`
	Total int `json:"total"`
}

func pageSize(limit int) int {
	if limit <= 0 {
		return defaultPageSize
	}
	return min(limit, maxPageSize)
}

// fetchStrict returns the fetched records or the reason they could not be fetched.
func fetchStrict(ctx context.Context, client recordstore.Client, entity string, q recordstore.Query) (*recordstore.FetchResponse, error) {
	resp, err := client.FetchRecords(ctx, entity, q)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", entity, err)
	}
	if resp == nil || !resp.Success {
		msg := "empty response"
		if resp != nil {
			msg = resp.Message
		}
		return nil, &recordstore.Error{Entity: entity, Operation: "fetch", Message: msg}
	}
	return resp, nil
}

// fetch is the read path: a failed fetch is logged and degrades to no records.
func fetch(ctx context.Context, client recordstore.Client, entity string, q recordstore.Query) ([]recordstore.Record, int) {
	resp, err := fetchStrict(ctx, client, entity, q)
	if err != nil {
		logger.Ctx(ctx).Warn().Err(err).Str("entity", entity).Msg("fetch failed, returning empty result")
		return nil, 0
	}
	total := resp.Total
	if total < len(resp.Data) {
		total = len(resp.Data)
	}
	return resp.Data, total
}

// getOne reads a single record. A missing record or a rejected envelope is ErrNotFound;
// a transport failure is returned as is.
func getOne(ctx context.Context, client recordstore.Client, entity, id string, fields []string) (recordstore.Record, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	resp, err := client.GetRecordByID(ctx, entity, id, fields)
	if err != nil {
		logger.Ctx(ctx).Warn().Err(err).Str("entity", entity).Str("id", id).Msg("get failed")
		return nil, fmt.Errorf("get %s %s: %w", entity, id, err)
	}
	if resp == nil || !resp.Success || len(resp.Data) == 0 {
		return nil, fmt.Errorf("%s %s: %w", entity, id, ErrNotFound)
	}
	return resp.Data, nil
}

func createOne(ctx context.Context, client recordstore.Client, entity string, rec recordstore.Record) (recordstore.Record, error) {
	resp, err := client.CreateRecords(ctx, entity, []recordstore.Record{rec})
	return recordstore.FirstResult(entity, "create", resp, err)
}

func updateOne(ctx context.Context, client recordstore.Client, entity, id string, rec recordstore.Record) (recordstore.Record, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	rec["Id"] = recordID(id)
	resp, err := client.UpdateRecords(ctx, entity, []recordstore.Record{rec})
	return recordstore.FirstResult(entity, "update", resp, err)
}

func deleteOne(ctx context.Context, client recordstore.Client, entity, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	resp, err := client.DeleteRecords(ctx, entity, []string{id})
	_, err = recordstore.FirstResult(entity, "delete", resp, err)
	return err
}

// recordID sends numeric IDs as numbers, which is how the store issues them.
func recordID(id string) any {
	if n, err := strconv.Atoi(id); err == nil {
		return n
	}
	return id
}

// ensureUnique fails with ErrDuplicate when another record already holds value in field.
// It is part of a mutation, so a failed lookup is an error rather than an empty result.
func ensureUnique(ctx context.Context, client recordstore.Client, entity, field, value, exceptID string) error {
	if value == "" {
		return nil
	}
	q := recordstore.Select("Id", field).Where(field, recordstore.EqualTo, value).Page(2, 0)
	resp, err := fetchStrict(ctx, client, entity, q)
	if err != nil {
		return fmt.Errorf("uniqueness check on %s: %w", field, err)
	}
	for _, rec := range resp.Data {
		if rec.ID() != exceptID {
			return fmt.Errorf("%w: %s %s %q", ErrDuplicate, entity, field, value)
		}
	}
	return nil
}

// translate renames a partial update through fm, turning naming mistakes into validation errors.
func translate(fm recordstore.FieldMap, changes map[string]any) (recordstore.Record, error) {
	if len(changes) == 0 {
		return nil, invalid("", "no fields to update")
	}
	rec, err := fm.Translate(changes)
	if err != nil {
		var unknown *recordstore.UnknownFieldError
		if errors.As(err, &unknown) {
			return nil, invalid(unknown.Field, "cannot be updated")
		}
		return nil, err
	}
	return rec, nil
}

// stringChange reads an optional string out of a partial update.
func stringChange(changes map[string]any, key string) (string, bool, error) {
	v, ok := changes[key]
	if !ok {
		return "", false, nil
	}
	if v == nil {
		return "", true, nil
	}
	s, isString := v.(string)
	if !isString {
		return "", true, invalid(key, "must be a string")
	}
	return strings.TrimSpace(s), true, nil
}

// numberChange reads an optional non-negative number out of a partial update.
func numberChange(changes map[string]any, key string) (float64, bool, error) {
	v, ok := changes[key]
	if !ok {
		return 0, false, nil
	}
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	default:
		return 0, true, invalid(key, "must be a number")
	}
	if f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, true, invalid(key, "must not be negative")
	}
	return f, true, nil
}

// dateChange normalizes an optional YYYY-MM-DD (or RFC 3339) value in a partial update.
func dateChange(changes map[string]any, key string) error {
	s, ok, err := stringChange(changes, key)
	if err != nil || !ok || s == "" {
		return err
	}
	t, err := parseDate(s)
	if err != nil {
		return invalid(key, "expected YYYY-MM-DD, got %q", s)
	}
	changes[key] = t.Format(dayLayout)
	return nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(dayLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func validateEmail(field, email string, required bool) error {
	if email == "" {
		if required {
			return invalid(field, "is required")
		}
		return nil
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return invalid(field, "%q is not a valid email address", email)
	}
	return nil
}

func oneOf(field, value string, allowed []string) error {
	if !slices.Contains(allowed, value) {
		return invalid(field, "must be one of %s", strings.Join(allowed, ", "))
	}
	return nil
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// putIf sets field only when v is non-empty so optional values are not blanked on create.
func putIf(rec recordstore.Record, field, v string) {
	if v != "" {
		rec[field] = v
	}
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

func percent(part, whole float64) float64 {
	if whole <= 0 {
		return 0
	}
	return round2(part / whole * 100)
}
