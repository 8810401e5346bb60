// Package entry holds the per-day raw event log and turns it into work intervals.
package entry

import (
	"fmt"
	"slices"
	"strings"

	"github.com/xolan/tante/internal/timeutil"
)

// Command is the action recorded by a raw event.
type Command string

const (
	CommandStart Command = "start"
	CommandStop  Command = "stop"
)

// UnknownTask replaces the task name of a start event that has none.
const UnknownTask = "unknown"

const separator = "|"

// RawEvent is one stored log line: "HH:mm|start|task" or "HH:mm|stop".
type RawEvent string

// Event is a decoded RawEvent.
type Event struct {
	Time    timeutil.ClockTime
	Command Command
	Task    string
}

// NewStart returns a start event for task at clock time c.
func NewStart(c timeutil.ClockTime, task string) Event {
	return Event{Time: c, Command: CommandStart, Task: task}
}

// NewStop returns a stop event at clock time c.
func NewStop(c timeutil.ClockTime) Event {
	return Event{Time: c, Command: CommandStop}
}

// Raw encodes the event in its stored form.
func (e Event) Raw() RawEvent {
	if e.Command == CommandStart {
		return RawEvent(string(e.Time) + separator + string(CommandStart) + separator + e.Task)
	}
	return RawEvent(string(e.Time) + separator + string(e.Command))
}

// ParseRawEvent decodes a stored line. A start without task name is given
// UnknownTask; an unknown command or a bad clock time is an error.
func ParseRawEvent(raw RawEvent) (Event, error) {
	parts := strings.SplitN(string(raw), separator, 3)
	if len(parts) < 2 {
		return Event{}, fmt.Errorf("missing command in %q", string(raw))
	}

	c := timeutil.ClockTime(parts[0])
	if _, err := c.Minutes(); err != nil {
		return Event{}, err
	}

	switch Command(parts[1]) {
	case CommandStart:
		task := ""
		if len(parts) == 3 {
			task = strings.TrimSpace(parts[2])
		}
		if task == "" {
			task = UnknownTask
		}
		return NewStart(c, task), nil
	case CommandStop:
		return NewStop(c), nil
	default:
		return Event{}, fmt.Errorf("unknown command %q in %q", parts[1], string(raw))
	}
}

// DayLog maps a day key to that day's raw events.
// Each list is kept sorted, which orders same-day events chronologically.
type DayLog map[timeutil.DayKey][]RawEvent

// Append records e under day and restores the sort order.
func (l DayLog) Append(day timeutil.DayKey, e Event) {
	events := append(l[day], e.Raw())
	slices.Sort(events)
	l[day] = events
}

// Events returns the raw events of day, or nil when nothing was recorded.
func (l DayLog) Events(day timeutil.DayKey) []RawEvent {
	return l[day]
}

// Keys returns all day keys in ascending order.
func (l DayLog) Keys() []timeutil.DayKey {
	keys := make([]timeutil.DayKey, 0, len(l))
	for k := range l {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
