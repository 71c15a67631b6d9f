package model

import "time"

// DateLayout is the wire and input format for all dates (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// DateRange bounds the listing by date. A nil end is unbounded.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// Filter constrains the listing query.
type Filter struct {
	Title     string
	DateRange DateRange
}

// FormatDate renders t as YYYY-MM-DD, or "" for nil.
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DateLayout)
}

// ParseDate parses YYYY-MM-DD text. Empty text yields nil without error.
func ParseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
