package stats

import (
	"fmt"
	"sort"

	"github.com/xolan/tante/internal/entry"
	"github.com/xolan/tante/internal/timeutil"
)

// Day is one reconstructed day of the time log.
type Day struct {
	Key     timeutil.DayKey
	Entries []entry.ParsedEntry
}

// Statistics contains aggregated statistics for a range of days
type Statistics struct {
	TotalMinutes         int
	AverageMinutesPerDay float64
	EntryCount           int
	DaysWithEntries      int
	Days                 int
}

// TaskBreakdown contains statistics for a single task
type TaskBreakdown struct {
	Task         string
	TotalMinutes int
	EntryCount   int
}

func entryMinutes(e entry.ParsedEntry) int {
	return entry.SumDuration([]entry.ParsedEntry{e})
}

// CalculateStatistics computes statistics for the given days.
// The average is taken over every day of the range, tracked or not.
func CalculateStatistics(days []Day) Statistics {
	stats := Statistics{Days: len(days)}

	for _, d := range days {
		if len(d.Entries) == 0 {
			continue
		}
		stats.DaysWithEntries++
		for _, e := range d.Entries {
			stats.TotalMinutes += entryMinutes(e)
			stats.EntryCount++
		}
	}

	if stats.Days > 0 {
		stats.AverageMinutesPerDay = float64(stats.TotalMinutes) / float64(stats.Days)
	}
	return stats
}

// CalculateTaskBreakdown groups entries by task and returns the breakdown
// sorted by total minutes, largest first. Ties are ordered by task name.
func CalculateTaskBreakdown(days []Day) []TaskBreakdown {
	taskMap := make(map[string]*TaskBreakdown)

	for _, d := range days {
		for _, e := range d.Entries {
			if _, exists := taskMap[e.Name]; !exists {
				taskMap[e.Name] = &TaskBreakdown{Task: e.Name}
			}
			taskMap[e.Name].TotalMinutes += entryMinutes(e)
			taskMap[e.Name].EntryCount++
		}
	}

	breakdowns := make([]TaskBreakdown, 0, len(taskMap))
	for _, breakdown := range taskMap {
		breakdowns = append(breakdowns, *breakdown)
	}

	sort.Slice(breakdowns, func(i, j int) bool {
		if breakdowns[i].TotalMinutes != breakdowns[j].TotalMinutes {
			return breakdowns[i].TotalMinutes > breakdowns[j].TotalMinutes
		}
		return breakdowns[i].Task < breakdowns[j].Task
	})

	return breakdowns
}

// CompareStatistics returns the difference in total minutes between the
// current and the previous period.
func CompareStatistics(current, previous Statistics) int {
	return current.TotalMinutes - previous.TotalMinutes
}

// FormatComparison renders a minute difference against the previous period.
func FormatComparison(diffMinutes int, period string) string {
	switch {
	case diffMinutes > 0:
		return fmt.Sprintf("+%s vs previous %s", timeutil.FormatDuration(diffMinutes, false), period)
	case diffMinutes < 0:
		return fmt.Sprintf("-%s vs previous %s", timeutil.FormatDuration(diffMinutes, false), period)
	default:
		return fmt.Sprintf("same as previous %s", period)
	}
}
