// Package service provides the business logic layer for the tante application.
// Each operation reads the state file once and derives everything from that snapshot.
package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/xolan/tante/internal/entry"
	"github.com/xolan/tante/internal/filter"
	"github.com/xolan/tante/internal/report"
	"github.com/xolan/tante/internal/stats"
	"github.com/xolan/tante/internal/timeutil"
)

// Common errors
var (
	ErrInvalidTime    = errors.New("invalid time")
	ErrInvalidCommand = errors.New("invalid command")
	ErrInvalidTask    = errors.New("invalid task name")
)

// Recorded describes an event that was appended to the log.
type Recorded struct {
	Day  time.Time
	Time timeutil.ClockTime
	Task string // empty for stop events
}

// FullDayResult describes a holiday or sick day that was recorded.
type FullDayResult struct {
	Kind  string
	Day   time.Time
	Start time.Time
	End   time.Time
}

// DayReport is one day of a report with its derived values.
type DayReport struct {
	Day      time.Time
	Entries  []entry.ParsedEntry
	Warnings []entry.ParseWarning
	Sum      int // minutes
	Mode     report.DayMode
}

// SumString renders Sum as an unsigned duration.
func (d DayReport) SumString() timeutil.DurationString {
	return timeutil.FormatDuration(d.Sum, false)
}

// StatsResult aggregates a range of days and the equally long period before it.
type StatsResult struct {
	From     time.Time
	To       time.Time
	Current  stats.Statistics
	Previous stats.Statistics
	Tasks    []stats.TaskBreakdown
	Filter   *filter.Filter
}

// Comparison renders the change against the previous period.
func (r StatsResult) Comparison() string {
	period := fmt.Sprintf("%d %s", r.Current.Days, pluralDays(r.Current.Days))
	return stats.FormatComparison(stats.CompareStatistics(r.Current, r.Previous), period)
}

func pluralDays(n int) string {
	if n == 1 {
		return "day"
	}
	return "days"
}

// DayChart is a day report with its colour map.
type DayChart struct {
	DayReport
	ColorMap report.ColorMap
}

// StatusResult is everything the status screen shows.
type StatusResult struct {
	Now     time.Time
	Running bool
	Current entry.ParsedEntry // valid when Running
	// Weeks holds three Monday-to-Sunday weeks of colour maps, oldest first.
	Weeks    [][]report.ColorMap
	Week     report.Countdown
	Day      report.Countdown
	Warnings []entry.ParseWarning // malformed rows of today
}

// ShortStatus is the one-line status.
type ShortStatus struct {
	Running    bool
	SpentToday timeutil.DurationString
	ToGoToday  string
	SpentWeek  timeutil.DurationString
	ToGoWeek   string
}

// String renders "Running|spent today|to go today|spent week|to go week".
func (s ShortStatus) String() string {
	state := "Stopped"
	if s.Running {
		state = "Running"
	}
	return state + "|" + string(s.SpentToday) + "|" + s.ToGoToday + "|" + string(s.SpentWeek) + "|" + s.ToGoWeek
}
