package service

import (
	"testing"

	"github.com/xolan/tante/internal/config"
)

func TestStatusService_Status_Running(t *testing.T) {
	svc := newTestServices(t, config.DefaultConfig())
	seedWeek(t, svc)

	st, err := svc.Status.Status(testNow)
	if err != nil {
		t.Fatalf("Status() error: %v", err)
	}

	if !st.Running {
		t.Fatal("expected a running task")
	}
	if st.Current.Name != "abc" || st.Current.From != "13:00" {
		t.Errorf("unexpected current entry %+v", st.Current)
	}

	if len(st.Weeks) != StatusWeeks {
		t.Fatalf("expected %d weeks, got %d", StatusWeeks, len(st.Weeks))
	}
	for i, week := range st.Weeks {
		if len(week) != 7 {
			t.Fatalf("week %d has %d days", i, len(week))
		}
		for d, cm := range week {
			wantOffset := 0
			if d >= 5 {
				wantOffset = 1
			}
			if cm.Offset != wantOffset {
				t.Errorf("week %d day %d: offset = %d, want %d", i, d, cm.Offset, wantOffset)
			}
		}
	}
	// Wednesday of the current week, 09:00.
	if st.Weeks[2][2].Map[36] == 0 {
		t.Error("expected today's 09:00 bucket to be assigned")
	}
	// Nothing after the reference time.
	if st.Weeks[2][2].Map[80] != 0 {
		t.Error("expected today's 20:00 bucket to be idle")
	}

	if st.Day.Spent != 483 || !st.Day.IsOvertime() {
		t.Errorf("unexpected day countdown %+v", st.Day)
	}
	if st.Week.Spent != 963 || st.Week.Diff != 1437 {
		t.Errorf("unexpected week countdown %+v", st.Week)
	}
}

func TestStatusService_Status_Stopped(t *testing.T) {
	svc := newTestServices(t, config.DefaultConfig())

	st, err := svc.Status.Status(testNow)
	if err != nil {
		t.Fatalf("Status() error: %v", err)
	}
	if st.Running {
		t.Error("expected nothing running on an empty log")
	}
	if st.Day.Spent != 0 || st.Day.Diff != 480 {
		t.Errorf("unexpected day countdown %+v", st.Day)
	}
}

func TestStatusService_Short(t *testing.T) {
	tests := []struct {
		name  string
		today []string
		want  string
	}{
		{
			name:  "running",
			today: []string{"09:00|start|abc", "12:00|stop", "13:00|start|abc"},
			want:  "Running|08:03|-00:03|16:03|23:57",
		},
		{
			name:  "stopped",
			today: []string{"09:00|start|abc", "12:00|stop", "13:00|start|abc", "17:00|stop"},
			want:  "Stopped|07:00|01:00|15:00|25:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestServices(t, config.DefaultConfig())
			seedState(t, svc, map[string][]string{
				"2024-01-15": {"08:00|start|x", "16:00|stop"},
				"2024-01-17": tt.today,
				// Saturday of the previous week is not part of this week.
				"2024-01-13": {"08:00|start|x", "10:00|stop"},
			})

			st, err := svc.Status.Short(testNow)
			if err != nil {
				t.Fatalf("Short() error: %v", err)
			}
			if got := st.String(); got != tt.want {
				t.Errorf("Short() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStatusService_InvalidTarget(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.TargetPerWeek = "lots"
	svc := newTestServices(t, cfg)

	if _, err := svc.Status.Status(testNow); err == nil {
		t.Error("expected error for invalid weekly target")
	}
	if _, err := svc.Status.Short(testNow); err == nil {
		t.Error("expected error for invalid weekly target")
	}
}
