package report

import (
	"github.com/xolan/tante/internal/entry"
	"github.com/xolan/tante/internal/timeutil"
)

// NoTask is the reserved name at index 0 of a colour map.
const NoTask = "_NONE_"

// DefaultStepMinutes is the width of one colour map bucket.
const DefaultStepMinutes = 15

const minutesPerDay = 24 * 60

// ColorMap assigns a task index to each fixed-size bucket of a day.
type ColorMap struct {
	KnownTasks []string // index 0 is NoTask
	Map        []int    // one task index per bucket
	Offset     int      // 1 renders idle buckets in weekend colours
}

// timedEvent is a decoded event with its minute of day.
type timedEvent struct {
	minute int
	event  entry.Event
}

// eventCursor walks a decoded event list in order.
type eventCursor struct {
	events []timedEvent
	pos    int
}

func (c *eventCursor) Peek() (timedEvent, bool) {
	if c.pos >= len(c.events) {
		return timedEvent{}, false
	}
	return c.events[c.pos], true
}

func (c *eventCursor) Advance() {
	c.pos++
}

// ParseColorMap projects a day's events onto buckets of step minutes.
// A stop at ref is appended after the recorded events so an open interval
// ends at the reference time. Malformed events are ignored.
func ParseColorMap(events []entry.RawEvent, ref timeutil.ClockTime, step int) ColorMap {
	if step <= 0 {
		step = DefaultStepMinutes
	}

	timed := make([]timedEvent, 0, len(events)+1)
	for _, raw := range events {
		e, err := entry.ParseRawEvent(raw)
		if err != nil {
			continue
		}
		m, _ := e.Time.Minutes()
		timed = append(timed, timedEvent{minute: m, event: e})
	}
	refMinute, _ := ref.Minutes()
	timed = append(timed, timedEvent{minute: refMinute, event: entry.NewStop(ref)})

	cm := ColorMap{
		KnownTasks: []string{NoTask},
		Map:        make([]int, 0, minutesPerDay/step),
	}
	index := map[string]int{NoTask: 0}
	cursor := &eventCursor{events: timed}
	current := 0

	for end := step; end <= minutesPerDay; end += step {
		for {
			next, ok := cursor.Peek()
			if !ok || next.minute >= end {
				break
			}
			switch next.event.Command {
			case entry.CommandStop:
				current = 0
			case entry.CommandStart:
				i, seen := index[next.event.Task]
				if !seen {
					i = len(cm.KnownTasks)
					index[next.event.Task] = i
					cm.KnownTasks = append(cm.KnownTasks, next.event.Task)
				}
				current = i
			}
			cursor.Advance()
		}
		cm.Map = append(cm.Map, current)
	}

	return cm
}
