package model

import "time"

// Report is an archived CSV export. The content lives in object storage, the metadata in Postgres.
type Report struct {
	ID          string    `json:"id"`
	Kind        string    `json:"kind"`
	Title       string    `json:"title"`
	StoragePath string    `json:"storage_path"`
	Size        int64     `json:"size"`
	ContentType string    `json:"content_type"`
	RowCount    int       `json:"row_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// Report kinds.
const (
	ReportDailyLeads       = "daily_leads"
	ReportPipeline         = "pipeline"
	ReportSalesPerformance = "sales_performance"
	ReportLeadStatus       = "lead_status"
)
