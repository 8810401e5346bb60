package service

import (
	"time"

	"github.com/xolan/tante/internal/config"
	"github.com/xolan/tante/internal/entry"
	"github.com/xolan/tante/internal/report"
	"github.com/xolan/tante/internal/storage"
	"github.com/xolan/tante/internal/timeutil"
)

// StatusWeeks is the number of weeks shown by the status colour bars.
const StatusWeeks = 3

// StatusService reports whether a task is running and how much time is left.
type StatusService struct {
	store  *storage.Store
	config config.Config
}

// NewStatusService creates a new StatusService
func NewStatusService(store *storage.Store, cfg config.Config) *StatusService {
	return &StatusService{store: store, config: cfg}
}

// Status collects the running task, colour maps for the last three weeks
// including weekends, and the week and day countdowns.
func (s *StatusService) Status(now time.Time) (StatusResult, error) {
	dayTarget, weekTarget, err := s.targets()
	if err != nil {
		return StatusResult{}, err
	}

	state, err := s.store.ReadState()
	if err != nil {
		return StatusResult{}, err
	}

	ref := timeutil.ClockOf(now)
	today := dayReport(state.Days, timeutil.StartOfDay(now), ref)
	result := StatusResult{
		Now:      now,
		Weeks:    make([][]report.ColorMap, 0, StatusWeeks),
		Day:      report.NewCountdown(today.Sum, dayTarget, now),
		Warnings: today.Warnings,
	}
	result.Current, result.Running = entry.LastOpen(today.Entries)

	for i := -(StatusWeeks - 1); i <= 0; i++ {
		days := timeutil.DaysOfWeek(now.AddDate(0, 0, 7*i), true)
		maps := make([]report.ColorMap, 0, len(days))
		for index, day := range days {
			cm := report.ParseColorMap(state.Days.Events(timeutil.DayKeyOf(day)), ref, report.DefaultStepMinutes)
			if index >= 5 {
				cm.Offset = 1
			}
			maps = append(maps, cm)
		}
		result.Weeks = append(result.Weeks, maps)
	}

	weekSpent := sumDays(state.Days, timeutil.DaysOfWeek(now, true), ref)
	result.Week = report.NewCountdown(weekSpent, weekTarget, now)
	return result, nil
}

// Short returns the one-line status. The week covers Monday to Friday.
func (s *StatusService) Short(now time.Time) (ShortStatus, error) {
	dayTarget, weekTarget, err := s.targets()
	if err != nil {
		return ShortStatus{}, err
	}

	state, err := s.store.ReadState()
	if err != nil {
		return ShortStatus{}, err
	}

	ref := timeutil.ClockOf(now)
	today := dayReport(state.Days, timeutil.StartOfDay(now), ref)
	_, running := entry.LastOpen(today.Entries)

	day := report.NewCountdown(today.Sum, dayTarget, now)
	week := report.NewCountdown(sumDays(state.Days, timeutil.DaysOfWeek(now, false), ref), weekTarget, now)

	return ShortStatus{
		Running:    running,
		SpentToday: timeutil.FormatDuration(day.Spent, false),
		ToGoToday:  day.ToGo(),
		SpentWeek:  timeutil.FormatDuration(week.Spent, false),
		ToGoWeek:   week.ToGo(),
	}, nil
}

func (s *StatusService) targets() (day, week int, err error) {
	if day, err = s.config.DailyTarget(); err != nil {
		return 0, 0, err
	}
	if week, err = s.config.WeeklyTarget(); err != nil {
		return 0, 0, err
	}
	return day, week, nil
}

func sumDays(log entry.DayLog, days []time.Time, ref timeutil.ClockTime) int {
	total := 0
	for _, day := range days {
		total += dayReport(log, day, ref).Sum
	}
	return total
}
