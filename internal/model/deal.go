package model

import "time"

// Deal is an opportunity attached to a lead and owned by a sales rep.
type Deal struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	LeadID            string    `json:"leadId,omitempty"`
	LeadName          string    `json:"leadName,omitempty"`
	Value             float64   `json:"value"`
	Stage             string    `json:"stage"`
	SalesRepID        string    `json:"salesRepId,omitempty"`
	SalesRepName      string    `json:"salesRepName,omitempty"`
	Edition           string    `json:"edition,omitempty"`
	StartMonth        int       `json:"startMonth"`
	EndMonth          int       `json:"endMonth"`
	ExpectedCloseDate *Date     `json:"expectedCloseDate,omitempty" swaggertype:"string" format:"date"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// Deal stages in pipeline order.
const (
	StageConnected     = "Connected"
	StageLocked        = "Locked"
	StageMeetingBooked = "Meeting Booked"
	StageMeetingDone   = "Meeting Done"
	StageNegotiation   = "Negotiation"
	StageClosedWon     = "Closed Won"
	StageClosedLost    = "Closed Lost"

	// StageOther collects pipeline deals whose stage is not one of DealStages.
	StageOther = "Other"
)

var DealStages = []string{
	StageConnected,
	StageLocked,
	StageMeetingBooked,
	StageMeetingDone,
	StageNegotiation,
	StageClosedWon,
	StageClosedLost,
}

// DealFilter narrows a deal listing.
type DealFilter struct {
	Stage      string
	SalesRepID string
	LeadID     string
	Limit      int
	Offset     int
}

// StageSummary aggregates the deals sitting in one pipeline stage.
type StageSummary struct {
	Stage string  `json:"stage"`
	Count int     `json:"count"`
	Value float64 `json:"value"`
}

// Pipeline is the per-stage breakdown of all deals.
type Pipeline struct {
	Stages     []StageSummary `json:"stages"`
	TotalDeals int            `json:"totalDeals"`
	TotalValue float64        `json:"totalValue"`
	OpenValue  float64        `json:"openValue"`
	WonValue   float64        `json:"wonValue"`
	WinRate    float64        `json:"winRate"`
}
