package report

import (
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/xolan/tante/internal/entry"
	"github.com/xolan/tante/internal/timeutil"
)

// Task names with a day-wide meaning.
const (
	TaskSick    = "sick"
	TaskHoliday = "holiday"
)

// DayMode classifies a day for the compact week chart.
type DayMode string

const (
	ModeWork                    DayMode = "work"
	ModeHoliday                 DayMode = "holiday"
	ModeSick                    DayMode = "sick"
	ModeWeekend                 DayMode = "weekend"
	ModeEmpty                   DayMode = "empty"
	ModeErrorSickAndMore        DayMode = "error-sick-and-more"
	ModeErrorHolidayAndMore     DayMode = "error-holiday-and-more"
	ModeErrorUnstoppedLastEntry DayMode = "error-unstopped-last-entry"
)

// IsError reports whether the mode flags inconsistent data.
func (m DayMode) IsError() bool {
	switch m {
	case ModeErrorSickAndMore, ModeErrorHolidayAndMore, ModeErrorUnstoppedLastEntry:
		return true
	}
	return false
}

// Classify returns the mode of day given its reconstructed entries.
// Weekends win over everything else.
func Classify(day time.Time, entries []entry.ParsedEntry) DayMode {
	if timeutil.IsWeekend(day) {
		return ModeWeekend
	}
	if len(entries) == 0 {
		return ModeEmpty
	}
	if hasTask(entries, TaskSick) {
		if len(entries) == 1 {
			return ModeSick
		}
		return ModeErrorSickAndMore
	}
	if hasTask(entries, TaskHoliday) {
		if len(entries) == 1 {
			return ModeHoliday
		}
		return ModeErrorHolidayAndMore
	}
	if !entries[len(entries)-1].IsClosed() {
		return ModeErrorUnstoppedLastEntry
	}
	return ModeWork
}

func hasTask(entries []entry.ParsedEntry, name string) bool {
	for _, e := range entries {
		if e.Name == name {
			return true
		}
	}
	return false
}

var modeSymbols = map[DayMode]string{
	ModeWork:                    "■ ",
	ModeHoliday:                 "h ",
	ModeSick:                    "s ",
	ModeEmpty:                   "  ",
	ModeWeekend:                 "  ",
	ModeErrorSickAndMore:        "s*",
	ModeErrorHolidayAndMore:     "h*",
	ModeErrorUnstoppedLastEntry: "[*",
}

// Symbol returns the two-character symbol of the mode without colour.
func (m DayMode) Symbol() string {
	return modeSymbols[m]
}

// Glyph renders the mode symbol with its background.
func Glyph(mode DayMode, p Palette) string {
	style := lipgloss.NewStyle().Foreground(p.Ink)
	switch {
	case mode == ModeWeekend:
		style = style.Background(p.Weekend)
	case mode.IsError():
		style = style.Background(p.Alert)
	default:
		style = style.Background(p.Paper)
	}
	return style.Render(mode.Symbol())
}

// ModeChart renders one glyph per classified day.
func ModeChart(modes []DayMode, p Palette) string {
	out := ""
	for _, m := range modes {
		out += Glyph(m, p)
	}
	return out
}
