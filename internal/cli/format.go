// Package cli renders service results as terminal text for the tante commands
// and the watch dashboard.
package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/xolan/tante/internal/entry"
	"github.com/xolan/tante/internal/report"
	"github.com/xolan/tante/internal/service"
	"github.com/xolan/tante/internal/timeutil"
)

// Bar header layout used by status and chart.
const (
	barHeaderGap         = 2
	barHeaderCharPerHour = 2
)

// FormatStarted formats the confirmation of a start event.
func FormatStarted(rec service.Recorded) string {
	return fmt.Sprintf("Task %s started at %s.", rec.Task, rec.Time)
}

// FormatStopped formats the confirmation of a stop event.
func FormatStopped(rec service.Recorded) string {
	return fmt.Sprintf("Task stopped at %s.", rec.Time)
}

// FormatFullDay formats the confirmation of a holiday or sick day.
func FormatFullDay(res service.FullDayResult, locale string) string {
	return fmt.Sprintf("Fullday of %s added at %s %s.",
		res.Kind, timeutil.WeekdayLong(res.Day, locale), res.Day.Format("02.01.2006"))
}

// FormatParseWarning formats a skipped raw event for display.
func FormatParseWarning(day timeutil.DayKey, w entry.ParseWarning) string {
	content := ansi.Truncate(string(w.Content), 50, "...")
	return fmt.Sprintf("%s event %d: %s (content: %q)", day, w.Position, w.Error, content)
}

// Pluralize returns the plural of word unless count is one.
func Pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	if n := len(word); n > 1 && word[n-1] == 'y' && !strings.ContainsRune("aeiou", rune(word[n-2])) {
		return word[:n-1] + "ies"
	}
	return word + "s"
}

// RenderReport renders one table per day.
func RenderReport(days []service.DayReport, locale string) string {
	var b strings.Builder
	for _, d := range days {
		b.WriteString(report.RenderEntries(d.Entries, d.Day, d.SumString(), locale))
	}
	return b.String()
}

// RenderCSV renders the CSV header followed by the rows of every day.
// sumNumber formats a minute total as decimal hours.
func RenderCSV(days []service.DayReport, sumNumber func(minutes int) string) string {
	var b strings.Builder
	b.WriteString(report.CSVHeader)
	b.WriteString("\n")
	for _, d := range days {
		b.WriteString(report.RenderEntriesAsCSV(d.Entries, d.Day, d.SumString(), sumNumber(d.Sum)))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderAddUp renders one line per week.
func RenderAddUp(weeks []report.WeekSummary, p report.Palette) string {
	var b strings.Builder
	for _, w := range weeks {
		b.WriteString(report.RenderWeekLine(w, p))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderChart renders a day's table followed by its colour bar and legend.
func RenderChart(chart service.DayChart, p report.Palette, locale string) string {
	var b strings.Builder
	b.WriteString(report.RenderEntries(chart.Entries, chart.Day, chart.SumString(), locale))
	b.WriteString("\n")
	b.WriteString(report.RenderColorBarHeader(barHeaderGap, barHeaderCharPerHour, p))
	b.WriteString("\n")
	b.WriteString(report.RenderColorBar(chart.ColorMap, p))
	b.WriteString("\n")
	if legend := report.RenderLegend(chart.ColorMap, p); legend != "" {
		b.WriteString(legend)
		b.WriteString("\n")
	}
	return b.String()
}

// RenderStats renders the statistics of a range and its task breakdown.
func RenderStats(res service.StatsResult) string {
	var b strings.Builder
	title := fmt.Sprintf("Statistics for %s to %s", res.From.Format("02.01.2006"), res.To.Format("02.01.2006"))
	if !res.Filter.IsEmpty() {
		title += " (" + res.Filter.String() + ")"
	}
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	st := res.Current
	if st.Days == 0 {
		b.WriteString("No days in range, the from day is after the to day.\n")
		return b.String()
	}
	fmt.Fprintf(&b, "Total Hours:     %s\n", timeutil.FormatDuration(st.TotalMinutes, false))
	fmt.Fprintf(&b, "Average/Day:     %s\n", timeutil.FormatDuration(int(st.AverageMinutesPerDay+0.5), false))
	fmt.Fprintf(&b, "Entries:         %d %s\n", st.EntryCount, Pluralize("entry", st.EntryCount))
	fmt.Fprintf(&b, "Days Tracked:    %d of %d %s\n", st.DaysWithEntries, st.Days, Pluralize("day", st.Days))
	fmt.Fprintf(&b, "Comparison:      %s\n", res.Comparison())

	if len(res.Tasks) == 0 {
		return b.String()
	}
	b.WriteString("\nBy Task:\n")
	b.WriteString(strings.Repeat("-", 60) + "\n")
	for _, t := range res.Tasks {
		fmt.Fprintf(&b, "  %-28s  %10s  (%d %s)\n",
			t.Task, timeutil.FormatDuration(t.TotalMinutes, false), t.EntryCount, Pluralize("entry", t.EntryCount))
	}
	return b.String()
}

// RenderRunning renders the running task line.
func RenderRunning(st service.StatusResult) string {
	if !st.Running {
		return "No task is running."
	}
	return fmt.Sprintf("Task '%s' is running since %s.", st.Current.Name, st.Current.From)
}

// RenderStatus renders the running task, three weeks of colour bars
// separated by hour rulers, and the week and day countdowns.
func RenderStatus(st service.StatusResult, p report.Palette) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(RenderRunning(st))
	b.WriteString("\n\n")

	header := report.RenderColorBarHeader(barHeaderGap, barHeaderCharPerHour, p)
	b.WriteString(header)
	b.WriteString("\n")
	for _, week := range st.Weeks {
		for _, cm := range week {
			b.WriteString(report.RenderColorBar(cm, p))
			b.WriteString("\n")
		}
		b.WriteString(header)
		b.WriteString("\n")
	}

	b.WriteString(report.RenderWeekCountdown(st.Week))
	b.WriteString("\n")
	b.WriteString(report.RenderDayCountdown(st.Day))
	return b.String()
}
