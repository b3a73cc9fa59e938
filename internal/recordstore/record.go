package recordstore

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Record is one schema-less row as the record store returns it, keyed by external field name.
type Record map[string]any

// ID returns the record identifier as a string. Numeric ids are rendered without a fraction.
func (r Record) ID() string {
	return r.String("Id")
}

// String returns a field as text. Lookup objects yield their Name.
func (r Record) String(field string) string {
	switch v := r[field].(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	case map[string]any:
		return Record(v).String("Name")
	default:
		return fmt.Sprint(v)
	}
}

// Float returns a numeric field. Missing or unparsable values yield 0.
func (r Record) Float(field string) float64 {
	switch v := r[field].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		f, _ := v.Float64()
		return f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// Int returns a numeric field truncated to int.
func (r Record) Int(field string) int {
	return int(r.Float(field))
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Time parses a date or datetime field. The zero time is returned when the field is empty or malformed.
func (r Record) Time(field string) time.Time {
	switch v := r[field].(type) {
	case time.Time:
		return v
	case string:
		s := strings.TrimSpace(v)
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t
			}
		}
	}
	return time.Time{}
}

// Strings returns a multi-value field. Both JSON arrays and comma separated text are accepted.
func (r Record) Strings(field string) []string {
	var out []string
	switch v := r[field].(type) {
	case []any:
		for _, item := range v {
			if s := strings.TrimSpace(fmt.Sprint(item)); s != "" {
				out = append(out, s)
			}
		}
	case []string:
		for _, s := range v {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	case string:
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

// LookupID returns the referenced record id of a lookup field, which arrives either as a bare id or as
// an {"Id": ..., "Name": ...} object.
func (r Record) LookupID(field string) string {
	if obj, ok := r[field].(map[string]any); ok {
		return Record(obj).ID()
	}
	return r.String(field)
}

// LookupName returns the display name of an expanded lookup field, or "" for a bare id.
func (r Record) LookupName(field string) string {
	if obj, ok := r[field].(map[string]any); ok {
		return Record(obj).String("Name")
	}
	return ""
}
