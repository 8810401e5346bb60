package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/xolan/tante/internal/config"
	"github.com/xolan/tante/internal/entry"
	"github.com/xolan/tante/internal/logger"
	"github.com/xolan/tante/internal/report"
	"github.com/xolan/tante/internal/storage"
	"github.com/xolan/tante/internal/timeutil"
)

// FullDayStart is the clock time at which holiday and sick days begin.
const FullDayStart timeutil.ClockTime = "08:00"

// TrackingService appends start and stop events to the log.
type TrackingService struct {
	store  *storage.Store
	config config.Config
}

// NewTrackingService creates a new TrackingService
func NewTrackingService(store *storage.Store, cfg config.Config) *TrackingService {
	return &TrackingService{store: store, config: cfg}
}

// Start records a start event. The two optional arguments are a task name and
// a time in either order; missing values default to the configured task and now.
func (s *TrackingService) Start(first, second string, now time.Time) (Recorded, error) {
	task, at, err := s.resolveStartArgs(first, second, now)
	if err != nil {
		return Recorded{}, err
	}
	if err := s.append(at, entry.NewStart(timeutil.ClockOf(at), task)); err != nil {
		return Recorded{}, err
	}
	return Recorded{Day: timeutil.StartOfDay(at), Time: timeutil.ClockOf(at), Task: task}, nil
}

// Stop records a stop event at timeArg, or at now when empty.
func (s *TrackingService) Stop(timeArg string, now time.Time) (Recorded, error) {
	at := now
	if timeArg != "" {
		c, err := parseTimeArg(timeArg)
		if err != nil {
			return Recorded{}, err
		}
		at = timeutil.AtClock(now, c)
	}
	if err := s.append(at, entry.NewStop(timeutil.ClockOf(at))); err != nil {
		return Recorded{}, err
	}
	return Recorded{Day: timeutil.StartOfDay(at), Time: timeutil.ClockOf(at)}, nil
}

// Set records a start or stop on another day. Without a time the event is
// placed at 00:00 of that day.
func (s *TrackingService) Set(command, day, first, second string, now time.Time) (Recorded, error) {
	target, err := timeutil.ParseDayInput(day, now)
	if err != nil {
		return Recorded{}, err
	}

	switch entry.Command(command) {
	case entry.CommandStart:
		return s.Start(first, second, target)
	case entry.CommandStop:
		return s.Stop(first, target)
	default:
		return Recorded{}, fmt.Errorf("%w '%s' (use start or stop)", ErrInvalidCommand, command)
	}
}

// FullDay records a holiday or sick day: a start at 08:00 and a stop one
// daily target later. An empty day means today.
func (s *TrackingService) FullDay(kind, day string, now time.Time) (FullDayResult, error) {
	if kind != report.TaskHoliday && kind != report.TaskSick {
		return FullDayResult{}, fmt.Errorf("%w '%s' (use holiday or sick)", ErrInvalidCommand, kind)
	}

	theDay := timeutil.StartOfDay(now)
	if day != "" {
		var err error
		theDay, err = timeutil.ParseDayInput(day, now)
		if err != nil {
			return FullDayResult{}, err
		}
	}

	target, err := s.config.DailyTarget()
	if err != nil {
		return FullDayResult{}, err
	}

	start := timeutil.AtClock(theDay, FullDayStart)
	end := start.Add(time.Duration(target) * time.Minute)

	state, err := s.store.ReadState()
	if err != nil {
		return FullDayResult{}, err
	}
	state.Days.Append(timeutil.DayKeyOf(start), entry.NewStart(timeutil.ClockOf(start), kind))
	state.Days.Append(timeutil.DayKeyOf(end), entry.NewStop(timeutil.ClockOf(end)))
	if err := s.store.WriteState(state); err != nil {
		return FullDayResult{}, err
	}
	logger.Info("full day recorded", "kind", kind, "day", timeutil.DayKeyOf(theDay))

	return FullDayResult{Kind: kind, Day: theDay, Start: start, End: end}, nil
}

func (s *TrackingService) resolveStartArgs(first, second string, now time.Time) (string, time.Time, error) {
	task := ""
	at := now

	switch {
	case first != "" && timeutil.IsClock(first):
		c, _ := timeutil.ParseClock(first)
		at = timeutil.AtClock(now, c)
		task = second
	default:
		task = first
		if second != "" {
			c, err := parseTimeArg(second)
			if err != nil {
				return "", time.Time{}, err
			}
			at = timeutil.AtClock(now, c)
		}
	}

	task = strings.TrimSpace(task)
	if task == "" {
		task = s.config.DefaultTask
	}
	if strings.ContainsAny(task, "|\n") {
		return "", time.Time{}, fmt.Errorf("%w '%s': must not contain '|' or newlines", ErrInvalidTask, task)
	}
	return task, at, nil
}

func (s *TrackingService) append(at time.Time, e entry.Event) error {
	state, err := s.store.ReadState()
	if err != nil {
		return err
	}
	day := timeutil.DayKeyOf(at)
	state.Days.Append(day, e)
	if err := s.store.WriteState(state); err != nil {
		return err
	}
	logger.Debug("event appended", "day", day, "event", e.Raw())
	return nil
}

func parseTimeArg(input string) (timeutil.ClockTime, error) {
	c, err := timeutil.ParseClock(input)
	if err != nil {
		return "", fmt.Errorf("%w '%s' (use format HH:mm, e.g., 09:30)", ErrInvalidTime, input)
	}
	return c, nil
}
