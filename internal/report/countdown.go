package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/xolan/tante/internal/timeutil"
)

// Countdown compares time spent against a target.
type Countdown struct {
	Spent  int // minutes
	Target int // minutes
	// Diff is Target minus Spent; positive means time is still owed.
	Diff int
	// FinishedAt is now shifted by Diff.
	FinishedAt time.Time
}

// NewCountdown computes the remaining time relative to now.
func NewCountdown(spent, target int, now time.Time) Countdown {
	diff := target - spent
	return Countdown{
		Spent:      spent,
		Target:     target,
		Diff:       diff,
		FinishedAt: now.Add(time.Duration(diff) * time.Minute),
	}
}

// IsOvertime reports whether the target has been reached.
func (c Countdown) IsOvertime() bool {
	return c.Diff <= 0
}

// ToGo renders the remaining time, prefixed with "-" once in overtime.
func (c Countdown) ToGo() string {
	d := string(timeutil.FormatDuration(c.Diff, false))
	if c.IsOvertime() {
		return "-" + d
	}
	return d
}

// RenderWeekCountdown renders the weekly countdown block.
func RenderWeekCountdown(c Countdown) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Time spent this week %s\n", timeutil.FormatDuration(c.Spent, false))
	if c.IsOvertime() {
		fmt.Fprintf(&b, "Overtime             %s\n", timeutil.FormatDuration(c.Diff, false))
	} else {
		fmt.Fprintf(&b, "Time to go           %s\n", timeutil.FormatDuration(c.Diff, false))
	}
	return b.String()
}

// RenderDayCountdown renders the daily countdown block including the finishing time.
func RenderDayCountdown(c Countdown) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Time spent today     %s\n", timeutil.FormatDuration(c.Spent, false))
	finished := timeutil.ClockOf(c.FinishedAt)
	if c.IsOvertime() {
		fmt.Fprintf(&b, "Overtime             %s\n", timeutil.FormatDuration(c.Diff, false))
		fmt.Fprintf(&b, "You were finished    %s\n", finished)
	} else {
		fmt.Fprintf(&b, "Time to go           %s\n", timeutil.FormatDuration(c.Diff, false))
		fmt.Fprintf(&b, "You are finished     %s\n", finished)
	}
	return b.String()
}
