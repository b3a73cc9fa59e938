package recordstore

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type instrumented struct {
	next     Client
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// Instrument wraps a Client so every call is counted and timed per entity and operation.
// The outcome label is "ok", "rejected" (envelope Success=false) or "error" (transport failure).
func Instrument(next Client, reg prometheus.Registerer) (Client, error) {
	m := &instrumented{
		next: next,
		calls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recordstore_requests_total",
				Help: "Total number of record store calls.",
			},
			[]string{"entity", "operation", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "recordstore_request_duration_seconds",
				Help:    "Latency of record store calls.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"entity", "operation"},
		),
	}
	if err := reg.Register(m.calls); err != nil {
		return nil, err
	}
	if err := reg.Register(m.duration); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *instrumented) observe(entity, op string, start time.Time, success bool, err error) {
	outcome := "ok"
	switch {
	case err != nil:
		outcome = "error"
	case !success:
		outcome = "rejected"
	}
	m.calls.WithLabelValues(entity, op, outcome).Inc()
	m.duration.WithLabelValues(entity, op).Observe(time.Since(start).Seconds())
}

func (m *instrumented) FetchRecords(ctx context.Context, entity string, q Query) (*FetchResponse, error) {
	start := time.Now()
	resp, err := m.next.FetchRecords(ctx, entity, q)
	m.observe(entity, "fetch", start, resp != nil && resp.Success, err)
	return resp, err
}

func (m *instrumented) GetRecordByID(ctx context.Context, entity, id string, fields []string) (*GetResponse, error) {
	start := time.Now()
	resp, err := m.next.GetRecordByID(ctx, entity, id, fields)
	m.observe(entity, "get", start, resp != nil && resp.Success, err)
	return resp, err
}

func (m *instrumented) CreateRecords(ctx context.Context, entity string, records []Record) (*MutationResponse, error) {
	start := time.Now()
	resp, err := m.next.CreateRecords(ctx, entity, records)
	m.observe(entity, "create", start, resp != nil && resp.Success, err)
	return resp, err
}

func (m *instrumented) UpdateRecords(ctx context.Context, entity string, records []Record) (*MutationResponse, error) {
	start := time.Now()
	resp, err := m.next.UpdateRecords(ctx, entity, records)
	m.observe(entity, "update", start, resp != nil && resp.Success, err)
	return resp, err
}

func (m *instrumented) DeleteRecords(ctx context.Context, entity string, ids []string) (*MutationResponse, error) {
	start := time.Now()
	resp, err := m.next.DeleteRecords(ctx, entity, ids)
	m.observe(entity, "delete", start, resp != nil && resp.Success, err)
	return resp, err
}
