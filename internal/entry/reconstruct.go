package entry

import "github.com/xolan/tante/internal/timeutil"

// ParsedEntry is one reconstructed interval of a single task.
// Closed intervals carry To and Duration. A still running interval carries
// ToNow and DurationNow instead. An interval starting after the reference
// time carries neither.
type ParsedEntry struct {
	Name        string                  `json:"name"`
	From        timeutil.ClockTime      `json:"from"`
	To          timeutil.ClockTime      `json:"to,omitempty"`
	Duration    timeutil.DurationString `json:"duration,omitempty"`
	ToNow       timeutil.ClockTime      `json:"toNow,omitempty"`
	DurationNow timeutil.DurationString `json:"durationNow,omitempty"`
}

// IsClosed reports whether the interval was ended by a stop or a task switch.
func (p ParsedEntry) IsClosed() bool {
	return p.To != ""
}

// IsRunning reports whether the interval is open and already started.
func (p ParsedEntry) IsRunning() bool {
	return p.ToNow != ""
}

// EffectiveTo returns To, falling back to ToNow.
func (p ParsedEntry) EffectiveTo() timeutil.ClockTime {
	if p.To != "" {
		return p.To
	}
	return p.ToNow
}

// EffectiveDuration returns Duration, falling back to DurationNow.
func (p ParsedEntry) EffectiveDuration() timeutil.DurationString {
	if p.Duration != "" {
		return p.Duration
	}
	return p.DurationNow
}

// ParseWarning describes a raw event that was skipped during reconstruction.
type ParseWarning struct {
	Position int      // Position in the day's event list (1-indexed)
	Content  RawEvent // The raw event as stored
	Error    string   // Why it was skipped
}

// ReconstructResult holds the intervals of a day plus skipped rows.
type ReconstructResult struct {
	Entries  []ParsedEntry
	Warnings []ParseWarning
}

// Reconstruct pairs a day's sorted events into intervals.
// ref is the reference time used to project a still open interval.
func Reconstruct(events []RawEvent, ref timeutil.ClockTime) []ParsedEntry {
	return ReconstructWithWarnings(events, ref).Entries
}

// ReconstructWithWarnings is Reconstruct that also reports malformed rows.
//
// A start for a different task closes the open interval and opens a new one.
// A start for the running task and a stop with nothing running are no-ops.
func ReconstructWithWarnings(events []RawEvent, ref timeutil.ClockTime) ReconstructResult {
	result := ReconstructResult{
		Entries:  []ParsedEntry{},
		Warnings: []ParseWarning{},
	}

	var open *ParsedEntry
	closeOpen := func(at timeutil.ClockTime) {
		open.To = at
		open.Duration = timeutil.CalcDuration(open.From, at)
		result.Entries = append(result.Entries, *open)
		open = nil
	}

	for i, raw := range events {
		e, err := ParseRawEvent(raw)
		if err != nil {
			result.Warnings = append(result.Warnings, ParseWarning{
				Position: i + 1,
				Content:  raw,
				Error:    err.Error(),
			})
			continue
		}

		switch e.Command {
		case CommandStart:
			if open != nil {
				if open.Name == e.Task {
					continue
				}
				closeOpen(e.Time)
			}
			open = &ParsedEntry{Name: e.Task, From: e.Time}
		case CommandStop:
			if open != nil {
				closeOpen(e.Time)
			}
		}
	}

	if open != nil {
		if open.From.Before(ref) {
			open.ToNow = ref
			open.DurationNow = timeutil.CalcDuration(open.From, ref)
		}
		result.Entries = append(result.Entries, *open)
	}

	return result
}

// SumDuration adds up Duration, or DurationNow where Duration is missing,
// and returns minutes. Entries with neither are skipped.
func SumDuration(entries []ParsedEntry) int {
	total := 0
	for _, e := range entries {
		d := e.EffectiveDuration()
		if d == "" {
			continue
		}
		if m, err := timeutil.ParseDuration(d); err == nil {
			total += m
		}
	}
	return total
}

// LastOpen returns the final entry when it has no closing time.
func LastOpen(entries []ParsedEntry) (ParsedEntry, bool) {
	if len(entries) == 0 {
		return ParsedEntry{}, false
	}
	last := entries[len(entries)-1]
	return last, !last.IsClosed()
}
