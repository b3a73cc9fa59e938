package model

// CountBucket is one group of a categorical breakdown.
type CountBucket struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// DayCount is one day of a zero-filled trend.
type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// Overview is the dashboard headline block. ActiveReps counts reps who added a lead in the last 30 days.
type Overview struct {
	TotalLeads     int     `json:"totalLeads"`
	LeadsToday     int     `json:"leadsToday"`
	TotalDeals     int     `json:"totalDeals"`
	PipelineValue  float64 `json:"pipelineValue"`
	WonValue       float64 `json:"wonValue"`
	ConversionRate float64 `json:"conversionRate"`
	ActiveReps     int     `json:"activeReps"`
}
