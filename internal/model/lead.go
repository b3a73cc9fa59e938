package model

import "time"

// Lead is a prospect company tracked by the sales team.
type Lead struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email,omitempty"`
	WebsiteURL   string    `json:"websiteUrl"`
	TeamSize     string    `json:"teamSize"`
	ARR          float64   `json:"arr"`
	Category     string    `json:"category"`
	LinkedInURL  string    `json:"linkedinUrl,omitempty"`
	Status       string    `json:"status"`
	FundingType  string    `json:"fundingType"`
	Edition      string    `json:"edition"`
	FollowUpDate *Date     `json:"followUpDate,omitempty" swaggertype:"string" format:"date"`
	AddedBy      string    `json:"addedBy,omitempty"`
	AddedByName  string    `json:"addedByName,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Lead statuses in the order a lead normally moves through them.
var LeadStatuses = []string{
	"New",
	"Contacted",
	"Following Up",
	"Meeting Booked",
	"Meeting Done",
	"Negotiation",
	"Closed Won",
	"Closed Lost",
	"No Response",
	"Unsubscribed",
}

// LeadFilter narrows a lead listing. Sort names an application field (e.g. "createdAt").
type LeadFilter struct {
	Search   string
	Status   string
	Category string
	AddedBy  string
	Sort     string
	Order    string
	Limit    int
	Offset   int
}

// DailyLeadCount is the number of leads one sales rep added on one day.
type DailyLeadCount struct {
	Date         string `json:"date"`
	SalesRepID   string `json:"salesRepId"`
	SalesRepName string `json:"salesRepName"`
	Count        int    `json:"count"`
}

// DailyLeadsReport groups per-rep counts by day over a trailing window, newest day first.
type DailyLeadsReport struct {
	From  string         `json:"from"`
	To    string         `json:"to"`
	Days  []DailyLeadDay `json:"days"`
	Total int            `json:"total"`
}

// DailyLeadDay is one calendar day of a DailyLeadsReport.
type DailyLeadDay struct {
	Date  string           `json:"date"`
	Total int              `json:"total"`
	Reps  []DailyLeadCount `json:"reps"`
}
