package service

import (
	"time"
)

const (
	dayLayout  = "2006-01-02"
	timeLayout = time.RFC3339
)

// Calendar answers "what day is it" in the workspace timezone. All day bucketing goes through it.
type Calendar struct {
	loc *time.Location
	now func() time.Time
}

func NewCalendar(loc *time.Location) Calendar {
	if loc == nil {
		loc = time.UTC
	}
	return Calendar{loc: loc, now: time.Now}
}

// WithClock returns a copy of c that reads the current time from now.
func (c Calendar) WithClock(now func() time.Time) Calendar {
	c.now = now
	return c
}

func (c Calendar) Now() time.Time {
	return c.now().In(c.loc)
}

// StartOfDay truncates t to local midnight.
func (c Calendar) StartOfDay(t time.Time) time.Time {
	t = t.In(c.loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, c.loc)
}

func (c Calendar) Today() time.Time {
	return c.StartOfDay(c.now())
}

// DayKey formats the local calendar day of t as YYYY-MM-DD.
func (c Calendar) DayKey(t time.Time) string {
	return t.In(c.loc).Format(dayLayout)
}

// ParseDay reads a YYYY-MM-DD day in the workspace timezone. An empty string means today.
func (c Calendar) ParseDay(s string) (time.Time, error) {
	if s == "" {
		return c.Today(), nil
	}
	t, err := time.ParseInLocation(dayLayout, s, c.loc)
	if err != nil {
		return time.Time{}, invalid("date", "expected YYYY-MM-DD, got %q", s)
	}
	return t, nil
}

// Window returns the first day of a trailing window of n days ending today, and the day keys of the
// window oldest first.
func (c Calendar) Window(n int) (time.Time, []string) {
	today := c.Today()
	from := today.AddDate(0, 0, -(n - 1))
	keys := make([]string, 0, n)
	for d := from; !d.After(today); d = d.AddDate(0, 0, 1) {
		keys = append(keys, d.Format(dayLayout))
	}
	return from, keys
}
