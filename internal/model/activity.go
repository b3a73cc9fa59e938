package model

import "time"

// WebsiteActivity is one sighting of a website URL, written every time a lead is submitted for it.
type WebsiteActivity struct {
	ID          string    `json:"id"`
	WebsiteURL  string    `json:"websiteUrl"`
	AddedBy     string    `json:"addedBy,omitempty"`
	AddedByName string    `json:"addedByName,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Freshness reports whether a URL was first seen on the given day.
type Freshness struct {
	WebsiteURL string     `json:"websiteUrl"`
	Date       string     `json:"date"`
	Fresh      bool       `json:"fresh"`
	FirstSeen  *time.Time `json:"firstSeen,omitempty"`
}
