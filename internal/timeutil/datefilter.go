package timeutil

import (
	"fmt"
	"time"
)

// DayKeyLayout is the layout of a normalized day key.
const DayKeyLayout = "2006-01-02"

// DayKey identifies one calendar day in the log, formatted as YYYY-MM-DD.
type DayKey string

// DayKeyOf returns the day key of the given time in its own location.
func DayKeyOf(t time.Time) DayKey {
	return DayKey(t.Format(DayKeyLayout))
}

// Time parses the key back into midnight of that day in loc.
func (k DayKey) Time(loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DayKeyLayout, string(k), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day key %q: %w", string(k), err)
	}
	return t, nil
}

// StartOfDay returns midnight (00:00:00) of the given day in the same timezone
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns Monday 00:00:00 of the week containing the given time (ISO standard)
// Handles the Sunday edge case where Go's Weekday() returns 0
func StartOfWeek(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 { // Sunday
		weekday = 7
	}
	return StartOfDay(t).AddDate(0, 0, -(weekday - 1))
}

// AtClock returns day at the given wall-clock time.
func AtClock(day time.Time, c ClockTime) time.Time {
	m, _ := c.Minutes()
	return time.Date(day.Year(), day.Month(), day.Day(), m/60, m%60, 0, 0, day.Location())
}

// IsWeekend reports whether t falls on a Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// AllDaysInRange returns every calendar day from 'from' to 'to', both inclusive.
// It returns an empty slice when from is after to.
func AllDaysInRange(from, to time.Time) []time.Time {
	days := []time.Time{}
	last := StartOfDay(to)
	for d := StartOfDay(from); !d.After(last); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// DaysOfWeek returns Monday to Friday of the week containing day,
// or Monday to Sunday when weekend is true.
func DaysOfWeek(day time.Time, weekend bool) []time.Time {
	n := 5
	if weekend {
		n = 7
	}
	monday := StartOfWeek(day)
	days := make([]time.Time, n)
	for i := range days {
		days[i] = monday.AddDate(0, 0, i)
	}
	return days
}

// ISOWeekKey returns a label like "2024-kw-03" built from the ISO year and week of t.
func ISOWeekKey(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-kw-%02d", year, week)
}
