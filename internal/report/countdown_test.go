package report

import (
	"strings"
	"testing"
	"time"
)

func TestNewCountdown(t *testing.T) {
	now := time.Date(2024, time.January, 17, 14, 0, 0, 0, time.Local)

	tests := []struct {
		name      string
		spent     int
		target    int
		overtime  bool
		toGo      string
		finishedH int
		finishedM int
	}{
		{"time to go", 5 * 60, 8 * 60, false, "03:00", 17, 0},
		{"exactly done", 8 * 60, 8 * 60, true, "-00:00", 14, 0},
		{"overtime", 9*60 + 30, 8 * 60, true, "-01:30", 12, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCountdown(tt.spent, tt.target, now)
			if c.IsOvertime() != tt.overtime {
				t.Errorf("IsOvertime() = %v, expected %v", c.IsOvertime(), tt.overtime)
			}
			if c.ToGo() != tt.toGo {
				t.Errorf("ToGo() = %q, expected %q", c.ToGo(), tt.toGo)
			}
			if c.FinishedAt.Hour() != tt.finishedH || c.FinishedAt.Minute() != tt.finishedM {
				t.Errorf("FinishedAt = %v", c.FinishedAt)
			}
		})
	}
}

func TestRenderDayCountdown(t *testing.T) {
	now := time.Date(2024, time.January, 17, 14, 0, 0, 0, time.Local)

	out := RenderDayCountdown(NewCountdown(5*60, 8*60, now))
	expected := "Time spent today     05:00\n" +
		"Time to go           03:00\n" +
		"You are finished     17:00\n"
	if out != expected {
		t.Errorf("RenderDayCountdown() = %q, expected %q", out, expected)
	}

	out = RenderDayCountdown(NewCountdown(9*60, 8*60, now))
	if !strings.Contains(out, "Overtime             01:00\n") || !strings.Contains(out, "You were finished    13:00\n") {
		t.Errorf("unexpected overtime output %q", out)
	}
}

func TestRenderWeekCountdown(t *testing.T) {
	now := time.Date(2024, time.January, 17, 14, 0, 0, 0, time.Local)

	out := RenderWeekCountdown(NewCountdown(20*60, 40*60, now))
	if out != "Time spent this week 20:00\nTime to go           20:00\n" {
		t.Errorf("RenderWeekCountdown() = %q", out)
	}

	out = RenderWeekCountdown(NewCountdown(41*60, 40*60, now))
	if out != "Time spent this week 41:00\nOvertime             01:00\n" {
		t.Errorf("RenderWeekCountdown() = %q", out)
	}
}
