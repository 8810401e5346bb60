package timeutil

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDayInput is returned when a day token matches none of the accepted forms.
var ErrInvalidDayInput = errors.New("invalid day")

var (
	isoDateRe      = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}$`)
	dotDateRe      = regexp.MustCompile(`^([0123]?[0-9])\.([01]?[0-9])\.([0-9]{4})$`)
	dotDateShortRe = regexp.MustCompile(`^([0123]?[0-9])\.([01]?[0-9])\.$`)
	relativeRe     = regexp.MustCompile(`^([~+]?)([0-9]+)$`)
)

// ParseDayInput resolves a day token against now and returns midnight of that day
// in now's location.
//
// Accepted forms, tried in order:
//   - "2024-01-15" (ISO date)
//   - "15.1.2024" (dotted date with year)
//   - "15.1." (dotted date, year taken from now)
//   - "~1", "0", "2", "+2" (days relative to now, "~" subtracts)
func ParseDayInput(input string, now time.Time) (time.Time, error) {
	input = strings.TrimSpace(input)
	loc := now.Location()

	if isoDateRe.MatchString(input) {
		t, err := time.ParseInLocation(DayKeyLayout, input, loc)
		if err != nil {
			return time.Time{}, dayInputError(input)
		}
		return t, nil
	}

	if m := dotDateRe.FindStringSubmatch(input); m != nil {
		year, _ := strconv.Atoi(m[3])
		return calendarDay(input, year, m[2], m[1], loc)
	}

	if m := dotDateShortRe.FindStringSubmatch(input); m != nil {
		return calendarDay(input, now.Year(), m[2], m[1], loc)
	}

	if m := relativeRe.FindStringSubmatch(input); m != nil {
		n, err := strconv.Atoi(m[2])
		if err != nil {
			return time.Time{}, dayInputError(input)
		}
		if m[1] == "~" {
			n = -n
		}
		return StartOfDay(now).AddDate(0, 0, n), nil
	}

	return time.Time{}, dayInputError(input)
}

// calendarDay builds a date and rejects values that time.Date would normalize,
// such as 31.2. or month 0.
func calendarDay(input string, year int, monthStr, dayStr string, loc *time.Location) (time.Time, error) {
	month, _ := strconv.Atoi(monthStr)
	day, _ := strconv.Atoi(dayStr)
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, dayInputError(input)
	}
	return t, nil
}

func dayInputError(input string) error {
	return fmt.Errorf("%w '%s' (use YYYY-MM-DD, DD.MM.YYYY, DD.MM. or a relative offset like ~1, 0, 2)", ErrInvalidDayInput, input)
}
