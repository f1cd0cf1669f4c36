package event

import (
	"strings"
	"time"
)

// ===========================
// 🎯 Search Parameters
// ===========================

// SearchParams are the public catalog filters. All of them are optional and
// combine with AND semantics.
type SearchParams struct {
	Search    string
	EventType string
	Location  string
	Date      string
}

// Normalize trims whitespace and folds the UI's "all" sentinel into the
// empty string so a filter dropdown left on its default matches everything.
func (p SearchParams) Normalize() SearchParams {
	p.Search = strings.TrimSpace(p.Search)
	p.EventType = strings.TrimSpace(p.EventType)
	p.Location = strings.TrimSpace(p.Location)
	p.Date = strings.TrimSpace(p.Date)

	if strings.EqualFold(p.EventType, "all") {
		p.EventType = ""
	}
	if strings.EqualFold(p.Location, "all") {
		p.Location = ""
	}
	return p
}

// IsEmpty reports whether no filter is active.
func (p SearchParams) IsEmpty() bool {
	return p.Search == "" && p.EventType == "" && p.Location == "" && p.Date == ""
}

// DayWindow resolves the date filter into the half-open range
// [day 00:00, next day 00:00). Returns ok=false when no date was given or it
// does not parse as YYYY-MM-DD.
func (p SearchParams) DayWindow() (time.Time, time.Time, bool) {
	if p.Date == "" {
		return time.Time{}, time.Time{}, false
	}
	day, err := time.Parse("2006-01-02", p.Date)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	return day, day.Add(24 * time.Hour), true
}
