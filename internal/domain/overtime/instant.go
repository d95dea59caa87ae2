package overtime

import (
	"strings"
	"time"
)

// Zone-less layouts are read as wall-clock times in UTC; no conversion is
// ever applied to instants that carry an offset.
var instantLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// ParseInstant parses a clock instant. Empty or unparsable strings are
// reported as invalid input.
func ParseInstant(field, s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, NewInvalidInput(field, s, "instant is required")
	}
	for _, layout := range instantLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, NewInvalidInput(field, s, "instant is not a valid calendar time")
}

// ParseWorkDate splits a YYYY-MM-DD work date into its calendar fields.
func ParseWorkDate(workDate string) (year int, month time.Month, day int, err error) {
	d, err := time.Parse("2006-01-02", workDate)
	if err != nil {
		return 0, 0, 0, NewInvalidInput("work_date", workDate, "work date must be in YYYY-MM-DD format")
	}
	return d.Year(), d.Month(), d.Day(), nil
}
