package model

import "time"

// SalesRep carries the activity counters the leaderboard ranks on.
type SalesRep struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email,omitempty"`
	LeadsContacted int       `json:"leadsContacted"`
	MeetingsBooked int       `json:"meetingsBooked"`
	DealsClosed    int       `json:"dealsClosed"`
	TotalRevenue   float64   `json:"totalRevenue"`
	Target         float64   `json:"target"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Leaderboard metrics.
const (
	MetricRevenue    = "revenue"
	MetricDeals      = "deals"
	MetricMeetings   = "meetings"
	MetricContacted  = "contacted"
	MetricConversion = "conversion"
)

// LeaderboardEntry is one ranked rep.
type LeaderboardEntry struct {
	Rank           int     `json:"rank"`
	SalesRepID     string  `json:"salesRepId"`
	Name           string  `json:"name"`
	Score          float64 `json:"score"`
	LeadsContacted int     `json:"leadsContacted"`
	MeetingsBooked int     `json:"meetingsBooked"`
	DealsClosed    int     `json:"dealsClosed"`
	TotalRevenue   float64 `json:"totalRevenue"`
	ConversionRate float64 `json:"conversionRate"`
	TargetProgress float64 `json:"targetProgress"`
}
