package domain

import (
	"sort"
	"strings"
	"time"
)

// Tab partitions the event listing.
type Tab string

const (
	TabUpcoming  Tab = "upcoming"
	TabAll       Tab = "all"
	TabAvailable Tab = "available"
)

// ParseTab maps a query value to a known tab, defaulting to upcoming.
func ParseTab(s string) Tab {
	switch Tab(strings.ToLower(s)) {
	case TabAll:
		return TabAll
	case TabAvailable:
		return TabAvailable
	default:
		return TabUpcoming
	}
}

// EventFilter captures the browsing filter state. Text search matches
// title, description and tags case-insensitively; category, campus and
// date are exact matches; the tab partitions by date or capacity.
type EventFilter struct {
	SearchTerm string
	Category   string
	Campus     string
	Date       string
	Tab        Tab
}

// Apply returns the filtered, date-sorted view of the snapshot. The input
// slice is never modified. Reference time decides what counts as upcoming.
func (f EventFilter) Apply(events []Event, now time.Time) []Event {
	today := now.Format(DateLayout)

	out := make([]Event, 0, len(events))
	for _, e := range events {
		if f.matches(e, today) {
			out = append(out, e)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].StartTime < out[j].StartTime
	})
	return out
}

func (f EventFilter) matches(e Event, today string) bool {
	if term := strings.ToLower(strings.TrimSpace(f.SearchTerm)); term != "" {
		if !matchesTerm(e, term) {
			return false
		}
	}
	if f.Category != "" && e.Category != f.Category {
		return false
	}
	if f.Campus != "" && e.Campus != f.Campus {
		return false
	}
	if f.Date != "" && e.Date != f.Date {
		return false
	}

	switch f.Tab {
	case TabAll:
		return true
	case TabAvailable:
		// Capacity-only partition; past events drop out via the date
		// filter when one is set.
		return e.HasCapacity()
	default:
		// ISO dates compare lexicographically.
		return e.Date >= today
	}
}

func matchesTerm(e Event, term string) bool {
	if strings.Contains(strings.ToLower(e.Title), term) {
		return true
	}
	if strings.Contains(strings.ToLower(e.Description), term) {
		return true
	}
	for _, tag := range e.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}
