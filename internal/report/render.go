package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/xolan/tante/internal/entry"
	"github.com/xolan/tante/internal/timeutil"
)

// CSVHeader is the first line of a CSV export.
const CSVHeader = "date      ;from ;to   ;time ;sum  ;sum_as_h"

const (
	tableRule  = " +-------+-------+-------+--------------------+\n"
	tableHead  = " | from  | to    | time  | task               |\n"
	tableSplit = " +-------+-------+-------|--------------------+\n"
	blankCell  = "     "
	sumSymbol  = "∑"
	barChar    = "▌"
)

// RenderEntries renders a day as a fixed-width table followed by its sum.
func RenderEntries(entries []entry.ParsedEntry, day time.Time, sum timeutil.DurationString, locale string) string {
	var b strings.Builder
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s %s    \n", timeutil.WeekdayShort(day, locale), day.Format("02.01.2006"))
	b.WriteString(tableRule)
	b.WriteString(tableHead)
	b.WriteString(tableSplit)
	for _, e := range entries {
		fmt.Fprintf(&b, " | %s | %s | %s | %-18s |\n",
			e.From, orBlank(string(e.EffectiveTo())), orBlank(string(e.EffectiveDuration())), e.Name)
	}
	b.WriteString(tableRule)
	fmt.Fprintf(&b, " |       |       | %s | %-18s |\n", sum, sumSymbol)
	b.WriteString(tableRule)
	return b.String()
}

func orBlank(s string) string {
	if s == "" {
		return blankCell
	}
	return s
}

// RenderEntriesAsCSV renders a day's rows and its summary row.
func RenderEntriesAsCSV(entries []entry.ParsedEntry, day time.Time, sum timeutil.DurationString, sumNumber string) string {
	var b strings.Builder
	date := day.Format("02.01.2006")
	for _, e := range entries {
		b.WriteString(strings.Join([]string{
			date,
			string(e.From),
			string(e.EffectiveTo()),
			string(e.EffectiveDuration()),
			blankCell,
			"\n",
		}, ";"))
	}
	fmt.Fprintf(&b, "          ;     ;     ;     ;%s;%s", sum, sumNumber)
	return b.String()
}

// RenderColorBarHeader renders an hour ruler for 24 hours, charPerHour
// columns per hour, labelling every gap-th hour.
func RenderColorBarHeader(gap, charPerHour int, p Palette) string {
	if gap <= 0 {
		gap = 1
	}
	var b strings.Builder
	for i := 0; i < 24; i++ {
		label := strings.Repeat(" ", charPerHour)
		if i%gap == 0 {
			label = fmt.Sprintf("%*d", charPerHour, i)
		}
		style := lipgloss.NewStyle().Foreground(p.Ink).Background(p.Header[i%2])
		b.WriteString(style.Render(label))
	}
	return b.String()
}

// RenderColorBar renders two buckets per character cell: the left bucket as
// foreground of a half block, the right one as its background.
func RenderColorBar(cm ColorMap, p Palette) string {
	idle := p.Idle[cm.Offset%2]
	colorOf := func(i int) lipgloss.TerminalColor {
		if i >= len(cm.Map) || cm.Map[i] <= 0 {
			return idle
		}
		return p.taskColor(cm.Map[i])
	}

	var b strings.Builder
	for i := 0; i < len(cm.Map); i += 2 {
		style := lipgloss.NewStyle().Foreground(colorOf(i)).Background(colorOf(i + 1))
		b.WriteString(style.Render(barChar))
	}
	return b.String()
}

// RenderLegend lists the known tasks of a colour map with their colours.
func RenderLegend(cm ColorMap, p Palette) string {
	var parts []string
	for i, name := range cm.KnownTasks {
		if i == 0 {
			continue
		}
		swatch := lipgloss.NewStyle().Foreground(p.taskColor(i)).Render("■")
		parts = append(parts, swatch+" "+name)
	}
	return strings.Join(parts, "  ")
}

// WeekSummary is one line of the add-up report.
type WeekSummary struct {
	Key         string // e.g. "2024-kw-03"
	FirstDay    time.Time
	Duration    int // minutes worked
	OverUnder   int // Duration minus the weekly target
	Accumulated int // running OverUnder total
	Modes       []DayMode
}

// RenderWeekLine renders an add-up line with signed durations and the mode chart.
func RenderWeekLine(w WeekSummary, p Palette) string {
	return fmt.Sprintf("%s  %s  %s   %s %9s %s",
		w.Key,
		w.FirstDay.Format(timeutil.DayKeyLayout),
		timeutil.FormatDuration(w.Duration, true),
		timeutil.FormatDuration(w.OverUnder, true),
		timeutil.FormatDuration(w.Accumulated, true),
		ModeChart(w.Modes, p),
	)
}
