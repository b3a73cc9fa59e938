package recordstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Client is the generic CRUD contract of the hosted record store.
// Every call returns the store's envelope; Success=false with a Message is a store-side failure,
// a non-nil error is a transport failure.
type Client interface {
	FetchRecords(ctx context.Context, entity string, q Query) (*FetchResponse, error)
	GetRecordByID(ctx context.Context, entity, id string, fields []string) (*GetResponse, error)
	CreateRecords(ctx context.Context, entity string, records []Record) (*MutationResponse, error)
	UpdateRecords(ctx context.Context, entity string, records []Record) (*MutationResponse, error)
	DeleteRecords(ctx context.Context, entity string, ids []string) (*MutationResponse, error)
}

// FetchResponse is the envelope of FetchRecords.
type FetchResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Data    []Record `json:"data"`
	Total   int      `json:"total,omitempty"`
}

// GetResponse is the envelope of GetRecordByID. Data is nil when the record does not exist.
type GetResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    Record `json:"data"`
}

// MutationResponse is the envelope of create, update and delete calls: one Result per submitted record.
type MutationResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Results []Result `json:"results"`
}

// Result is the per-record outcome of a mutation.
type Result struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Data    Record       `json:"data,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError is a store-side validation failure on one field.
type FieldError struct {
	FieldLabel string `json:"fieldLabel"`
	Message    string `json:"message"`
}

// ErrStore is matched by every *Error.
var ErrStore = errors.New("record store request failed")

// Error reports a mutation the record store rejected.
type Error struct {
	Entity    string
	Operation string
	Message   string
	Fields    []FieldError
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "record store %s %s failed", e.Operation, e.Entity)
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	for _, f := range e.Fields {
		fmt.Fprintf(&b, "; %s: %s", f.FieldLabel, f.Message)
	}
	return b.String()
}

func (e *Error) Is(target error) bool {
	return target == ErrStore
}

// FirstResult collapses a single-record mutation into the stored record or an error.
func FirstResult(entity, operation string, resp *MutationResponse, err error) (Record, error) {
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", operation, entity, err)
	}
	if resp == nil {
		return nil, &Error{Entity: entity, Operation: operation, Message: "empty response"}
	}
	if !resp.Success {
		return nil, &Error{Entity: entity, Operation: operation, Message: resp.Message}
	}
	if len(resp.Results) == 0 {
		return nil, &Error{Entity: entity, Operation: operation, Message: "no results returned"}
	}
	res := resp.Results[0]
	if !res.Success {
		return nil, &Error{Entity: entity, Operation: operation, Message: res.Message, Fields: res.Errors}
	}
	return res.Data, nil
}
