package timeutil

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ClockLayout is the layout of a wall-clock time in raw events.
const ClockLayout = "15:04"

// ClockTime is a same-day wall-clock time in HH:mm form.
type ClockTime string

// DurationString is a duration rendered as HH:mm, optionally with a leading sign.
// Hours may exceed 24.
type DurationString string

var (
	clockRe    = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):([0-5][0-9])$`)
	durationRe = regexp.MustCompile(`^([-+ ]?)([0-9]+):([0-5][0-9])$`)
)

// ParseClock validates a user supplied time like "9:05" or "17:30" and
// returns it zero-padded.
func ParseClock(input string) (ClockTime, error) {
	m := clockRe.FindStringSubmatch(strings.TrimSpace(input))
	if m == nil {
		return "", fmt.Errorf("invalid time '%s' (use format HH:mm, e.g., 09:30)", input)
	}
	h, _ := strconv.Atoi(m[1])
	mins, _ := strconv.Atoi(m[2])
	return ClockFromMinutes(h*60 + mins), nil
}

// IsClock reports whether input is a valid wall-clock time.
func IsClock(input string) bool {
	_, err := ParseClock(input)
	return err == nil
}

// ClockOf returns the wall-clock time of t.
func ClockOf(t time.Time) ClockTime {
	return ClockTime(t.Format(ClockLayout))
}

// ClockFromMinutes formats minutes since midnight as a clock time.
// Values outside one day wrap around.
func ClockFromMinutes(minutes int) ClockTime {
	minutes = ((minutes % (24 * 60)) + 24*60) % (24 * 60)
	return ClockTime(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60))
}

// Minutes returns the minutes elapsed since midnight.
func (c ClockTime) Minutes() (int, error) {
	m := clockRe.FindStringSubmatch(string(c))
	if m == nil {
		return 0, fmt.Errorf("invalid clock time %q", string(c))
	}
	h, _ := strconv.Atoi(m[1])
	mins, _ := strconv.Atoi(m[2])
	return h*60 + mins, nil
}

// Before reports whether c is strictly earlier than other.
func (c ClockTime) Before(other ClockTime) bool {
	a, _ := c.Minutes()
	b, _ := other.Minutes()
	return a < b
}

// FormatDuration renders a minute count as HH:mm.
// Unsigned output drops the sign. Signed output prefixes "-" for negative
// values and a space otherwise.
func FormatDuration(minutes int, signed bool) DurationString {
	abs := minutes
	if abs < 0 {
		abs = -abs
	}
	s := fmt.Sprintf("%02d:%02d", abs/60, abs%60)
	if !signed {
		return DurationString(s)
	}
	if minutes < 0 {
		return DurationString("-" + s)
	}
	return DurationString(" " + s)
}

// ParseDuration converts a duration string back into signed minutes.
// Accepts an optional leading "-", "+" or space and unpadded hours ("8:00").
func ParseDuration(d DurationString) (int, error) {
	m := durationRe.FindStringSubmatch(string(d))
	if m == nil {
		return 0, fmt.Errorf("invalid duration '%s' (use format HH:mm, e.g., 8:00)", string(d))
	}
	h, err := strconv.Atoi(m[2])
	if err != nil {
		return 0, fmt.Errorf("invalid hours in duration '%s': %w", string(d), err)
	}
	mins, _ := strconv.Atoi(m[3])
	total := h*60 + mins
	if m[1] == "-" {
		total = -total
	}
	return total, nil
}

// DiffMinutes returns to minus from in minutes. Invalid clock times count as midnight.
func DiffMinutes(from, to ClockTime) int {
	a, _ := from.Minutes()
	b, _ := to.Minutes()
	return b - a
}

// CalcDuration returns the unsigned distance between two same-day clock times.
// Times are never wrapped across midnight.
func CalcDuration(from, to ClockTime) DurationString {
	return FormatDuration(DiffMinutes(from, to), false)
}

// FormatDurationAsNumber renders minutes as decimal hours rounded to two
// places, using sep as the decimal separator (e.g. 90 -> "1.5").
func FormatDurationAsNumber(minutes int, sep string) string {
	hours := math.Round(float64(minutes)/60*100) / 100
	if hours == 0 {
		hours = 0 // drop negative zero
	}
	s := strconv.FormatFloat(hours, 'f', -1, 64)
	if sep == "" || sep == "." {
		return s
	}
	return strings.Replace(s, ".", sep, 1)
}
