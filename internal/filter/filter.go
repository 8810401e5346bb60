package filter

import (
	"strings"

	"github.com/xolan/tante/internal/entry"
)

// Filter represents search criteria for reconstructed intervals.
// All filter fields are optional - empty values match all entries.
type Filter struct {
	Keyword string // Case-insensitive substring search in task names
	Task    string // Exact task match (case-insensitive)
}

// NewFilter creates a new Filter with the given criteria.
// Surrounding whitespace is ignored.
func NewFilter(keyword, task string) *Filter {
	return &Filter{
		Keyword: strings.TrimSpace(keyword),
		Task:    strings.TrimSpace(task),
	}
}

// IsEmpty returns true if all filter fields are empty (matches all entries).
// A nil filter is empty.
func (f *Filter) IsEmpty() bool {
	return f == nil || (f.Keyword == "" && f.Task == "")
}

// FilterEntries returns a new slice containing only entries that match the filter criteria.
// If the filter is empty, returns all entries.
func FilterEntries(entries []entry.ParsedEntry, f *Filter) []entry.ParsedEntry {
	if f.IsEmpty() {
		return entries
	}

	filtered := make([]entry.ParsedEntry, 0)
	for _, e := range entries {
		if f.Matches(e) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// MatchesKeyword returns true if the keyword is found in the task name (case-insensitive).
// An empty keyword matches all entries.
func (f *Filter) MatchesKeyword(e entry.ParsedEntry) bool {
	if f.Keyword == "" {
		return true
	}
	return strings.Contains(strings.ToLower(e.Name), strings.ToLower(f.Keyword))
}

// MatchesTask returns true if the task name equals the filter task (case-insensitive).
// An empty task filter matches all entries.
func (f *Filter) MatchesTask(e entry.ParsedEntry) bool {
	if f.Task == "" {
		return true
	}
	return strings.EqualFold(e.Name, f.Task)
}

// Matches returns true if the entry satisfies every criterion.
func (f *Filter) Matches(e entry.ParsedEntry) bool {
	return f.MatchesKeyword(e) && f.MatchesTask(e)
}

// String describes the active criteria, e.g. "task 'abc'".
func (f *Filter) String() string {
	if f.IsEmpty() {
		return ""
	}
	var parts []string
	if f.Task != "" {
		parts = append(parts, "task '"+f.Task+"'")
	}
	if f.Keyword != "" {
		parts = append(parts, "keyword '"+f.Keyword+"'")
	}
	return strings.Join(parts, " and ")
}
