package storage

import (
	"time"

	"github.com/xolan/tante/internal/entry"
	"github.com/xolan/tante/internal/timeutil"
)

// DayWarning is a malformed row found in one day of the log.
type DayWarning struct {
	Day timeutil.DayKey
	entry.ParseWarning
}

// StorageHealth contains information about the health status of the state file.
type StorageHealth struct {
	Days          int          // Number of day keys
	EmptyDays     int          // Day keys without events
	TotalEvents   int          // Raw events across all days
	ValidEvents   int          // Events that decode cleanly
	InvalidDays   []string     // Keys that are not YYYY-MM-DD
	Warnings      []DayWarning // Malformed rows
	UnsortedDays  []timeutil.DayKey
	OpenDays      []timeutil.DayKey // Days whose last interval was never stopped
	BackupsOnDisk int
}

// IsHealthy reports whether no malformed data was found.
func (h StorageHealth) IsHealthy() bool {
	return len(h.Warnings) == 0 && len(h.InvalidDays) == 0 && len(h.UnsortedDays) == 0
}

// ValidateStorage checks every day of the state file. today is excluded from
// the open-day check since its last interval may still be running.
func ValidateStorage(s *Store, today time.Time) (StorageHealth, error) {
	health := StorageHealth{
		InvalidDays:  []string{},
		Warnings:     []DayWarning{},
		UnsortedDays: []timeutil.DayKey{},
		OpenDays:     []timeutil.DayKey{},
	}

	state, err := s.ReadState()
	if err != nil {
		return health, err
	}

	todayKey := timeutil.DayKeyOf(today)
	for _, day := range state.Days.Keys() {
		health.Days++
		if _, err := day.Time(today.Location()); err != nil {
			health.InvalidDays = append(health.InvalidDays, string(day))
		}

		events := state.Days.Events(day)
		if len(events) == 0 {
			health.EmptyDays++
			continue
		}
		health.TotalEvents += len(events)
		if !isSorted(events) {
			health.UnsortedDays = append(health.UnsortedDays, day)
		}

		result := entry.ReconstructWithWarnings(events, "23:59")
		health.ValidEvents += len(events) - len(result.Warnings)
		for _, w := range result.Warnings {
			health.Warnings = append(health.Warnings, DayWarning{Day: day, ParseWarning: w})
		}
		if day != todayKey {
			if _, open := entry.LastOpen(result.Entries); open {
				health.OpenDays = append(health.OpenDays, day)
			}
		}
	}

	health.BackupsOnDisk = len(ListBackups(s.Path))
	return health, nil
}

func isSorted(events []entry.RawEvent) bool {
	for i := 1; i < len(events); i++ {
		if events[i] < events[i-1] {
			return false
		}
	}
	return true
}
