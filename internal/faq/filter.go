package faq

import (
	"strings"

	"golang.org/x/text/cases"
)

// Status selects records by their active flag.
type Status string

const (
	StatusAll      Status = "all"
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Statuses returns the status filter options in display order.
func Statuses() []Status {
	return []Status{StatusAll, StatusActive, StatusInactive}
}

// ParseStatus resolves a status filter; unknown values select all records.
func ParseStatus(value string) Status {
	switch Status(strings.ToLower(strings.TrimSpace(value))) {
	case StatusActive:
		return StatusActive
	case StatusInactive:
		return StatusInactive
	default:
		return StatusAll
	}
}

// Filter is the client-side predicate applied to a category's records.
type Filter struct {
	Search string
	Status Status
}

// Apply returns the records whose question or answer contains the search
// string, compared with Unicode case folding, and whose active flag matches
// the status. Input order is preserved.
func Apply(records []Record, filter Filter) []Record {
	folder := cases.Fold()
	needle := folder.String(filter.Search)
	out := make([]Record, 0, len(records))
	for _, record := range records {
		if !matchesStatus(record, filter.Status) {
			continue
		}
		if needle != "" &&
			!strings.Contains(folder.String(record.Question), needle) &&
			!strings.Contains(folder.String(record.Answer), needle) {
			continue
		}
		out = append(out, record)
	}
	return out
}

func matchesStatus(record Record, status Status) bool {
	switch status {
	case StatusActive:
		return record.IsActive
	case StatusInactive:
		return !record.IsActive
	default:
		return true
	}
}

// Summary counts a category's records by active flag.
type Summary struct {
	Total    int
	Active   int
	Inactive int
}

// Summarize counts records over the unfiltered list.
func Summarize(records []Record) Summary {
	summary := Summary{Total: len(records)}
	for _, record := range records {
		if record.IsActive {
			summary.Active++
		} else {
			summary.Inactive++
		}
	}
	return summary
}
