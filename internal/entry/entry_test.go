package entry

import (
	"reflect"
	"testing"

	"github.com/xolan/tante/internal/timeutil"
)

func TestParseRawEvent(t *testing.T) {
	tests := []struct {
		name     string
		raw      RawEvent
		expected Event
	}{
		{"start", "09:29|start|abc", Event{Time: "09:29", Command: CommandStart, Task: "abc"}},
		{"stop", "13:47|stop", Event{Time: "13:47", Command: CommandStop}},
		{"start without task", "08:00|start", Event{Time: "08:00", Command: CommandStart, Task: UnknownTask}},
		{"start with empty task", "08:00|start|", Event{Time: "08:00", Command: CommandStart, Task: UnknownTask}},
		{"task containing separator", "08:00|start|a|b", Event{Time: "08:00", Command: CommandStart, Task: "a|b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseRawEvent(tt.raw)
			if err != nil {
				t.Fatalf("ParseRawEvent(%q) unexpected error: %v", tt.raw, err)
			}
			if result != tt.expected {
				t.Errorf("ParseRawEvent(%q) = %+v, expected %+v", tt.raw, result, tt.expected)
			}
		})
	}
}

func TestParseRawEvent_Invalid(t *testing.T) {
	for _, raw := range []RawEvent{"", "09:29", "9:2|stop", "25:00|stop", "09:29|pause", "garbage"} {
		t.Run(string(raw), func(t *testing.T) {
			if _, err := ParseRawEvent(raw); err == nil {
				t.Errorf("ParseRawEvent(%q) expected error, got nil", raw)
			}
		})
	}
}

func TestEvent_Raw(t *testing.T) {
	if got := NewStart("09:00", "abc").Raw(); got != "09:00|start|abc" {
		t.Errorf("start Raw() = %q", got)
	}
	if got := NewStop("17:30").Raw(); got != "17:30|stop" {
		t.Errorf("stop Raw() = %q", got)
	}
}

func TestDayLog_AppendKeepsSorted(t *testing.T) {
	log := DayLog{}
	day := timeutil.DayKey("2024-01-15")

	log.Append(day, NewStop("17:00"))
	log.Append(day, NewStart("09:00", "abc"))
	log.Append(day, NewStart("12:30", "def"))

	expected := []RawEvent{"09:00|start|abc", "12:30|start|def", "17:00|stop"}
	if !reflect.DeepEqual(log.Events(day), expected) {
		t.Errorf("Events = %v, expected %v", log.Events(day), expected)
	}
	if log.Events("2024-01-16") != nil {
		t.Error("expected nil for unknown day")
	}
}

func TestDayLog_Keys(t *testing.T) {
	log := DayLog{
		"2024-01-16": {"09:00|stop"},
		"2023-12-31": {"09:00|stop"},
		"2024-01-01": {"09:00|stop"},
	}
	expected := []timeutil.DayKey{"2023-12-31", "2024-01-01", "2024-01-16"}
	if !reflect.DeepEqual(log.Keys(), expected) {
		t.Errorf("Keys = %v, expected %v", log.Keys(), expected)
	}
}
