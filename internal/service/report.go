package service

import (
	"time"

	"github.com/xolan/tante/internal/config"
	"github.com/xolan/tante/internal/entry"
	"github.com/xolan/tante/internal/filter"
	"github.com/xolan/tante/internal/logger"
	"github.com/xolan/tante/internal/report"
	"github.com/xolan/tante/internal/stats"
	"github.com/xolan/tante/internal/storage"
	"github.com/xolan/tante/internal/timeutil"
)

// ReportService derives per-day and per-week reports from the log.
type ReportService struct {
	store  *storage.Store
	config config.Config
}

// NewReportService creates a new ReportService
func NewReportService(store *storage.Store, cfg config.Config) *ReportService {
	return &ReportService{store: store, config: cfg}
}

// Days returns a report for every day in the from/to range.
func (s *ReportService) Days(from, to string, now time.Time) ([]DayReport, error) {
	days, err := timeutil.ParseDayRange(from, to, now)
	if err != nil {
		return nil, err
	}

	state, err := s.store.ReadState()
	if err != nil {
		return nil, err
	}

	ref := timeutil.ClockOf(now)
	reports := make([]DayReport, 0, len(days))
	for _, day := range days {
		reports = append(reports, dayReport(state.Days, day, ref))
	}
	return reports, nil
}

// AddUp aggregates the full weeks covering the from/to range against the
// weekly target, accumulating the over/under time from week to week.
func (s *ReportService) AddUp(from, to string, now time.Time) ([]report.WeekSummary, error) {
	weeks, err := timeutil.ParseDayInputRangeToFullWeeks(from, to, now)
	if err != nil {
		return nil, err
	}

	target, err := s.config.WeeklyTarget()
	if err != nil {
		return nil, err
	}

	state, err := s.store.ReadState()
	if err != nil {
		return nil, err
	}

	ref := timeutil.ClockOf(now)
	summaries := make([]report.WeekSummary, 0, len(weeks))
	accumulated := 0
	for _, week := range weeks {
		w := report.WeekSummary{
			Key:      timeutil.ISOWeekKey(week.Monday()),
			FirstDay: week.Monday(),
			Modes:    make([]report.DayMode, 0, len(week.Days)),
		}
		for _, day := range week.Days {
			d := dayReport(state.Days, day, ref)
			w.Duration += d.Sum
			w.Modes = append(w.Modes, d.Mode)
		}
		w.OverUnder = w.Duration - target
		accumulated += w.OverUnder
		w.Accumulated = accumulated
		summaries = append(summaries, w)
	}
	return summaries, nil
}

// Chart returns the report of a single day together with its colour map.
// An empty day means today.
func (s *ReportService) Chart(day string, now time.Time) (DayChart, error) {
	theDay := timeutil.StartOfDay(now)
	if day != "" {
		var err error
		theDay, err = timeutil.ParseDayInput(day, now)
		if err != nil {
			return DayChart{}, err
		}
	}

	state, err := s.store.ReadState()
	if err != nil {
		return DayChart{}, err
	}

	ref := timeutil.ClockOf(now)
	chart := DayChart{
		DayReport: dayReport(state.Days, theDay, ref),
		ColorMap:  report.ParseColorMap(state.Days.Events(timeutil.DayKeyOf(theDay)), ref, report.DefaultStepMinutes),
	}
	if timeutil.IsWeekend(theDay) {
		chart.ColorMap.Offset = 1
	}
	return chart, nil
}

// Stats aggregates the from/to range and the equally long period right
// before it. Only entries matching f are counted. A from day after the to
// day yields a result without days.
func (s *ReportService) Stats(from, to string, f *filter.Filter, now time.Time) (StatsResult, error) {
	fromDay, toDay, err := timeutil.ParseDayInputRange(from, to, now)
	if err != nil {
		return StatsResult{}, err
	}

	res := StatsResult{From: fromDay, To: toDay, Filter: f}
	days := timeutil.AllDaysInRange(fromDay, toDay)
	if len(days) == 0 {
		return res, nil
	}

	state, err := s.store.ReadState()
	if err != nil {
		return StatsResult{}, err
	}

	previous := timeutil.AllDaysInRange(days[0].AddDate(0, 0, -len(days)), days[0].AddDate(0, 0, -1))
	ref := timeutil.ClockOf(now)
	collect := func(days []time.Time) []stats.Day {
		out := make([]stats.Day, 0, len(days))
		for _, day := range days {
			d := FilterDays([]DayReport{dayReport(state.Days, day, ref)}, f)[0]
			out = append(out, stats.Day{Key: timeutil.DayKeyOf(day), Entries: d.Entries})
		}
		return out
	}

	current := collect(days)
	res.Current = stats.CalculateStatistics(current)
	res.Previous = stats.CalculateStatistics(collect(previous))
	res.Tasks = stats.CalculateTaskBreakdown(current)
	return res, nil
}

// FilterDays keeps the entries matching f and recomputes each day's sum.
// The day mode and parse warnings are left as they are.
func FilterDays(days []DayReport, f *filter.Filter) []DayReport {
	if f.IsEmpty() {
		return days
	}
	out := make([]DayReport, 0, len(days))
	for _, d := range days {
		d.Entries = filter.FilterEntries(d.Entries, f)
		d.Sum = entry.SumDuration(d.Entries)
		out = append(out, d)
	}
	return out
}

// SumNumber renders minutes as decimal hours using the configured separator.
func (s *ReportService) SumNumber(minutes int) string {
	return timeutil.FormatDurationAsNumber(minutes, s.config.DecimalSeparator)
}

// dayReport reconstructs one day of the log at reference time ref.
func dayReport(log entry.DayLog, day time.Time, ref timeutil.ClockTime) DayReport {
	key := timeutil.DayKeyOf(day)
	result := entry.ReconstructWithWarnings(log.Events(key), ref)
	for _, w := range result.Warnings {
		logger.Warn("skipping malformed event", "day", key, "position", w.Position, "event", w.Content, "error", w.Error)
	}
	return DayReport{
		Day:      day,
		Entries:  result.Entries,
		Warnings: result.Warnings,
		Sum:      entry.SumDuration(result.Entries),
		Mode:     report.Classify(day, result.Entries),
	}
}
