package timeutil

import (
	"fmt"
	"time"
)

// SameDayMarker as the 'to' argument means "the same day as 'from'".
const SameDayMarker = "="

// ValidationError reports which side of a day range could not be parsed.
type ValidationError struct {
	Side  string // "from" or "to"
	Input string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("[%s] is not valid %s", e.Side, e.Input)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Week is a Monday to Sunday run of days.
type Week struct {
	Days [7]time.Time
}

// Monday returns the first day of the week.
func (w Week) Monday() time.Time {
	return w.Days[0]
}

// ParseDayInputRange resolves the optional from/to tokens of a report command.
// Without tokens both ends are today; with only from, the range ends today.
// A 'to' of "=" repeats the from day.
func ParseDayInputRange(from, to string, now time.Time) (fromDay, toDay time.Time, err error) {
	today := StartOfDay(now)
	fromDay, toDay = today, today

	if from != "" {
		fromDay, err = ParseDayInput(from, now)
		if err != nil {
			return time.Time{}, time.Time{}, &ValidationError{Side: "from", Input: from, Err: err}
		}
	}

	switch to {
	case "":
	case SameDayMarker:
		toDay = fromDay
	default:
		toDay, err = ParseDayInput(to, now)
		if err != nil {
			return time.Time{}, time.Time{}, &ValidationError{Side: "to", Input: to, Err: err}
		}
	}

	return fromDay, toDay, nil
}

// ParseDayRange returns every day between the parsed from and to tokens.
func ParseDayRange(from, to string, now time.Time) ([]time.Time, error) {
	fromDay, toDay, err := ParseDayInputRange(from, to, now)
	if err != nil {
		return nil, err
	}
	return AllDaysInRange(fromDay, toDay), nil
}

// ParseDayInputRangeToFullWeeks groups the parsed range into whole ISO weeks,
// from the week containing from through the week containing to. The first
// week is always produced, even when from lies after to.
func ParseDayInputRangeToFullWeeks(from, to string, now time.Time) ([]Week, error) {
	fromDay, toDay, err := ParseDayInputRange(from, to, now)
	if err != nil {
		return nil, err
	}
	return FullWeeks(fromDay, toDay), nil
}

// FullWeeks returns the weeks covering fromDay through toDay.
func FullWeeks(fromDay, toDay time.Time) []Week {
	last := StartOfWeek(toDay)
	var weeks []Week
	monday := StartOfWeek(fromDay)
	for {
		var w Week
		for i := range w.Days {
			w.Days[i] = monday.AddDate(0, 0, i)
		}
		weeks = append(weeks, w)
		monday = monday.AddDate(0, 0, 7)
		if monday.After(last) {
			break
		}
	}
	return weeks
}
