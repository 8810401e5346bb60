package service

import (
	"errors"
	"slices"
	"testing"

	"github.com/xolan/tante/internal/config"
	"github.com/xolan/tante/internal/entry"
	"github.com/xolan/tante/internal/timeutil"
)

func TestTrackingService_Start(t *testing.T) {
	tests := []struct {
		name     string
		first    string
		second   string
		wantRaw  entry.RawEvent
		wantTask string
	}{
		{name: "defaults", wantRaw: "18:03|start|default", wantTask: "default"},
		{name: "task only", first: "abc", wantRaw: "18:03|start|abc", wantTask: "abc"},
		{name: "time first", first: "9:30", second: "abc", wantRaw: "09:30|start|abc", wantTask: "abc"},
		{name: "time without task", first: "07:15", wantRaw: "07:15|start|default", wantTask: "default"},
		{name: "task then time", first: "abc", second: "10:00", wantRaw: "10:00|start|abc", wantTask: "abc"},
		{name: "task with spaces", first: "  review  ", wantRaw: "18:03|start|review", wantTask: "review"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestServices(t, config.DefaultConfig())

			rec, err := svc.Tracking.Start(tt.first, tt.second, testNow)
			if err != nil {
				t.Fatalf("Start() error: %v", err)
			}
			if rec.Task != tt.wantTask {
				t.Errorf("Task = %q, want %q", rec.Task, tt.wantTask)
			}

			events := readDays(t, svc).Events("2024-01-17")
			if !slices.Equal(events, []entry.RawEvent{tt.wantRaw}) {
				t.Errorf("events = %v, want [%s]", events, tt.wantRaw)
			}
		})
	}
}

func TestTrackingService_Start_Invalid(t *testing.T) {
	svc := newTestServices(t, config.DefaultConfig())

	if _, err := svc.Tracking.Start("abc", "25:00", testNow); !errors.Is(err, ErrInvalidTime) {
		t.Errorf("expected ErrInvalidTime, got %v", err)
	}
	if _, err := svc.Tracking.Start("a|b", "", testNow); !errors.Is(err, ErrInvalidTask) {
		t.Errorf("expected ErrInvalidTask, got %v", err)
	}
	if days := readDays(t, svc); len(days) != 0 {
		t.Errorf("expected no state change, got %v", days)
	}
}

func TestTrackingService_StartKeepsEventsSorted(t *testing.T) {
	svc := newTestServices(t, config.DefaultConfig())

	if _, err := svc.Tracking.Start("b", "", testNow); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Tracking.Start("a", "08:00", testNow); err != nil {
		t.Fatal(err)
	}

	want := []entry.RawEvent{"08:00|start|a", "18:03|start|b"}
	if got := readDays(t, svc).Events("2024-01-17"); !slices.Equal(got, want) {
		t.Errorf("events = %v, want %v", got, want)
	}
}

func TestTrackingService_Stop(t *testing.T) {
	svc := newTestServices(t, config.DefaultConfig())

	rec, err := svc.Tracking.Stop("", testNow)
	if err != nil {
		t.Fatalf("Stop() error: %v", err)
	}
	if rec.Time != "18:03" {
		t.Errorf("Time = %q, want 18:03", rec.Time)
	}
	if _, err := svc.Tracking.Stop("12:00", testNow); err != nil {
		t.Fatalf("Stop() error: %v", err)
	}

	want := []entry.RawEvent{"12:00|stop", "18:03|stop"}
	if got := readDays(t, svc).Events("2024-01-17"); !slices.Equal(got, want) {
		t.Errorf("events = %v, want %v", got, want)
	}

	if _, err := svc.Tracking.Stop("noon", testNow); !errors.Is(err, ErrInvalidTime) {
		t.Errorf("expected ErrInvalidTime, got %v", err)
	}
}

func TestTrackingService_Set(t *testing.T) {
	svc := newTestServices(t, config.DefaultConfig())

	if _, err := svc.Tracking.Set("start", "2024-01-15", "", "", testNow); err != nil {
		t.Fatalf("Set(start) error: %v", err)
	}
	if _, err := svc.Tracking.Set("start", "2024-01-15", "9:00", "abc", testNow); err != nil {
		t.Fatalf("Set(start) error: %v", err)
	}
	if _, err := svc.Tracking.Set("stop", "~1", "17:00", "", testNow); err != nil {
		t.Fatalf("Set(stop) error: %v", err)
	}

	days := readDays(t, svc)
	if got, want := days.Events("2024-01-15"), []entry.RawEvent{"00:00|start|default", "09:00|start|abc"}; !slices.Equal(got, want) {
		t.Errorf("2024-01-15 = %v, want %v", got, want)
	}
	if got, want := days.Events("2024-01-16"), []entry.RawEvent{"17:00|stop"}; !slices.Equal(got, want) {
		t.Errorf("2024-01-16 = %v, want %v", got, want)
	}
}

func TestTrackingService_Set_Invalid(t *testing.T) {
	svc := newTestServices(t, config.DefaultConfig())

	if _, err := svc.Tracking.Set("pause", "0", "", "", testNow); !errors.Is(err, ErrInvalidCommand) {
		t.Errorf("expected ErrInvalidCommand, got %v", err)
	}
	if _, err := svc.Tracking.Set("start", "yesterday", "", "", testNow); !errors.Is(err, timeutil.ErrInvalidDayInput) {
		t.Errorf("expected ErrInvalidDayInput, got %v", err)
	}
}

func TestTrackingService_FullDay(t *testing.T) {
	svc := newTestServices(t, config.DefaultConfig())

	res, err := svc.Tracking.FullDay("holiday", "15.1.2024", testNow)
	if err != nil {
		t.Fatalf("FullDay() error: %v", err)
	}
	if res.Start.Hour() != 8 || res.End.Hour() != 16 {
		t.Errorf("unexpected range %v - %v", res.Start, res.End)
	}

	if _, err := svc.Tracking.FullDay("sick", "", testNow); err != nil {
		t.Fatalf("FullDay() error: %v", err)
	}

	days := readDays(t, svc)
	if got, want := days.Events("2024-01-15"), []entry.RawEvent{"08:00|start|holiday", "16:00|stop"}; !slices.Equal(got, want) {
		t.Errorf("2024-01-15 = %v, want %v", got, want)
	}
	if got, want := days.Events("2024-01-17"), []entry.RawEvent{"08:00|start|sick", "16:00|stop"}; !slices.Equal(got, want) {
		t.Errorf("2024-01-17 = %v, want %v", got, want)
	}
}

func TestTrackingService_FullDay_CrossesMidnight(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.TargetPerDay = "20:00"
	svc := newTestServices(t, cfg)

	if _, err := svc.Tracking.FullDay("holiday", "2024-01-15", testNow); err != nil {
		t.Fatalf("FullDay() error: %v", err)
	}

	days := readDays(t, svc)
	if got, want := days.Events("2024-01-15"), []entry.RawEvent{"08:00|start|holiday"}; !slices.Equal(got, want) {
		t.Errorf("2024-01-15 = %v, want %v", got, want)
	}
	if got, want := days.Events("2024-01-16"), []entry.RawEvent{"04:00|stop"}; !slices.Equal(got, want) {
		t.Errorf("2024-01-16 = %v, want %v", got, want)
	}
}

func TestTrackingService_FullDay_InvalidKind(t *testing.T) {
	svc := newTestServices(t, config.DefaultConfig())

	if _, err := svc.Tracking.FullDay("vacation", "", testNow); !errors.Is(err, ErrInvalidCommand) {
		t.Errorf("expected ErrInvalidCommand, got %v", err)
	}
}
