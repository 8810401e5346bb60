package cli

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
	"github.com/xolan/tante/internal/entry"
	"github.com/xolan/tante/internal/filter"
	"github.com/xolan/tante/internal/report"
	"github.com/xolan/tante/internal/service"
	"github.com/xolan/tante/internal/stats"
	"github.com/xolan/tante/internal/timeutil"
)

var testNow = time.Date(2024, 1, 17, 18, 3, 0, 0, time.UTC)

func TestFormatStartedAndStopped(t *testing.T) {
	rec := service.Recorded{Day: testNow, Time: "09:30", Task: "abc"}

	if got := FormatStarted(rec); got != "Task abc started at 09:30." {
		t.Errorf("FormatStarted() = %q", got)
	}
	if got := FormatStopped(rec); got != "Task stopped at 09:30." {
		t.Errorf("FormatStopped() = %q", got)
	}
}

func TestFormatFullDay(t *testing.T) {
	res := service.FullDayResult{Kind: "holiday", Day: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)}

	tests := []struct {
		locale   string
		expected string
	}{
		{"en", "Fullday of holiday added at Monday 15.01.2024."},
		{"de", "Fullday of holiday added at Montag 15.01.2024."},
	}
	for _, tt := range tests {
		if got := FormatFullDay(res, tt.locale); got != tt.expected {
			t.Errorf("FormatFullDay(%s) = %q, expected %q", tt.locale, got, tt.expected)
		}
	}
}

func TestFormatParseWarning(t *testing.T) {
	w := entry.ParseWarning{Position: 2, Content: "xx|start|a", Error: "invalid time"}
	got := FormatParseWarning("2024-01-15", w)
	if got != `2024-01-15 event 2: invalid time (content: "xx|start|a")` {
		t.Errorf("FormatParseWarning() = %q", got)
	}

	long := entry.ParseWarning{Position: 1, Content: entry.RawEvent(strings.Repeat("x", 80)), Error: "bad"}
	if got := FormatParseWarning("2024-01-15", long); !strings.Contains(got, strings.Repeat("x", 47)+"...\"") {
		t.Errorf("expected truncated content, got %q", got)
	}
}

func TestFormatParseWarning_TruncatesOnRuneBoundary(t *testing.T) {
	w := entry.ParseWarning{Position: 1, Content: entry.RawEvent("0800|start|" + strings.Repeat("ü", 60)), Error: "bad"}

	got := FormatParseWarning("2024-01-15", w)
	if !utf8.ValidString(got) {
		t.Fatalf("invalid UTF-8 in %q", got)
	}
	if strings.Contains(got, `\x`) {
		t.Errorf("expected no escaped bytes, got %q", got)
	}
	if !strings.Contains(got, "üüü...") {
		t.Errorf("expected truncated umlauts, got %q", got)
	}
}

func TestPluralize(t *testing.T) {
	tests := []struct {
		word     string
		count    int
		expected string
	}{
		{"day", 0, "days"},
		{"day", 1, "day"},
		{"event", 3, "events"},
		{"entry", 2, "entries"},
		{"entry", 1, "entry"},
	}
	for _, tt := range tests {
		if got := Pluralize(tt.word, tt.count); got != tt.expected {
			t.Errorf("Pluralize(%q, %d) = %q, expected %q", tt.word, tt.count, got, tt.expected)
		}
	}
}

func sampleDay() service.DayReport {
	return service.DayReport{
		Day: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Entries: []entry.ParsedEntry{
			{Name: "abc", From: "09:29", To: "13:47", Duration: "04:18"},
		},
		Sum: 258,
	}
}

func TestRenderReport(t *testing.T) {
	out := RenderReport([]service.DayReport{sampleDay(), sampleDay()}, timeutil.LocaleEN)

	if strings.Count(out, "Mon 15.01.2024") != 2 {
		t.Errorf("expected two day headings, got:\n%s", out)
	}
	if !strings.Contains(out, " | 09:29 | 13:47 | 04:18 | abc                |") {
		t.Errorf("expected entry row, got:\n%s", out)
	}
}

func TestRenderCSV(t *testing.T) {
	sumNumber := func(minutes int) string { return timeutil.FormatDurationAsNumber(minutes, ",") }
	out := RenderCSV([]service.DayReport{sampleDay()}, sumNumber)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")

	if lines[0] != report.CSVHeader {
		t.Errorf("first line = %q, expected header", lines[0])
	}
	if lines[1] != "15.01.2024;09:29;13:47;04:18;     ;" {
		t.Errorf("row = %q", lines[1])
	}
	if lines[len(lines)-1] != "          ;     ;     ;     ;04:18;4,3" {
		t.Errorf("summary = %q", lines[len(lines)-1])
	}
}

func TestRenderAddUp(t *testing.T) {
	p := report.NewPalette(report.DefaultTheme)
	weeks := []report.WeekSummary{
		{Key: "2024-kw-02", FirstDay: time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC), OverUnder: -2400, Accumulated: -2400},
		{Key: "2024-kw-03", FirstDay: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), Duration: 2460, OverUnder: 60, Accumulated: -2340},
	}

	out := ansi.Strip(RenderAddUp(weeks, p))
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[1], "2024-kw-03  2024-01-15   41:00    01:00    -39:00") {
		t.Errorf("unexpected line %q", lines[1])
	}
}

func idleWeeks() [][]report.ColorMap {
	weeks := make([][]report.ColorMap, 3)
	for i := range weeks {
		for d := 0; d < 7; d++ {
			cm := report.ColorMap{KnownTasks: []string{report.NoTask}, Map: make([]int, 96)}
			if d >= 5 {
				cm.Offset = 1
			}
			weeks[i] = append(weeks[i], cm)
		}
	}
	return weeks
}

func TestRenderStatus(t *testing.T) {
	p := report.NewPalette(report.DefaultTheme)
	st := service.StatusResult{
		Now:     testNow,
		Running: true,
		Current: entry.ParsedEntry{Name: "abc", From: "13:00", ToNow: "18:03", DurationNow: "05:03"},
		Weeks:   idleWeeks(),
		Week:    report.NewCountdown(963, 2400, testNow),
		Day:     report.NewCountdown(483, 480, testNow),
	}

	out := ansi.Strip(RenderStatus(st, p))

	for _, want := range []string{
		"Task 'abc' is running since 13:00.",
		"Time spent this week 16:03",
		"Time to go           23:57",
		"Time spent today     08:03",
		"Overtime             00:03",
		"You were finished    18:00",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}

	header := ansi.Strip(report.RenderColorBarHeader(2, 2, p))
	headers := 0
	bars := 0
	for _, line := range strings.Split(out, "\n") {
		switch {
		case line == header:
			headers++
		case strings.HasPrefix(line, "▌"):
			bars++
		}
	}
	if headers != 4 {
		t.Errorf("expected 4 bar headers, got %d", headers)
	}
	if bars != 21 {
		t.Errorf("expected 21 colour bars, got %d", bars)
	}
}

func TestRenderRunning_Stopped(t *testing.T) {
	if got := RenderRunning(service.StatusResult{}); got != "No task is running." {
		t.Errorf("RenderRunning() = %q", got)
	}
}

func TestRenderChart(t *testing.T) {
	p := report.NewPalette(report.DefaultTheme)
	cm := report.ParseColorMap([]entry.RawEvent{"09:00|start|abc", "10:00|stop"}, "18:03", report.DefaultStepMinutes)
	chart := service.DayChart{DayReport: sampleDay(), ColorMap: cm}

	out := ansi.Strip(RenderChart(chart, p, timeutil.LocaleEN))
	if !strings.Contains(out, "Mon 15.01.2024") {
		t.Errorf("expected table heading, got:\n%s", out)
	}
	if !strings.Contains(out, "■ abc") {
		t.Errorf("expected legend, got:\n%s", out)
	}
}

func TestRenderStats(t *testing.T) {
	res := service.StatsResult{
		From:     time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		To:       time.Date(2024, 1, 17, 0, 0, 0, 0, time.UTC),
		Current:  stats.Statistics{TotalMinutes: 963, AverageMinutesPerDay: 321, EntryCount: 3, DaysWithEntries: 2, Days: 3},
		Previous: stats.Statistics{TotalMinutes: 120, Days: 3},
		Tasks: []stats.TaskBreakdown{
			{Task: "abc", TotalMinutes: 483, EntryCount: 2},
			{Task: "x", TotalMinutes: 480, EntryCount: 1},
		},
		Filter: filter.NewFilter("", "abc"),
	}

	out := RenderStats(res)
	for _, want := range []string{
		"Statistics for 15.01.2024 to 17.01.2024 (task 'abc')\n",
		"Total Hours:     16:03\n",
		"Average/Day:     05:21\n",
		"Entries:         3 entries\n",
		"Days Tracked:    2 of 3 days\n",
		"Comparison:      +14:03 vs previous 3 days\n",
		"  abc                                08:03  (2 entries)\n",
		"  x                                  08:00  (1 entry)\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestRenderStats_NoTasks(t *testing.T) {
	out := RenderStats(service.StatsResult{Current: stats.Statistics{Days: 1}, Previous: stats.Statistics{Days: 1}})
	if strings.Contains(out, "By Task:") {
		t.Errorf("did not expect a task section:\n%s", out)
	}
	if !strings.Contains(out, "same as previous 1 day") {
		t.Errorf("unexpected comparison:\n%s", out)
	}
}

func TestRenderStats_EmptyRange(t *testing.T) {
	res := service.StatsResult{
		From: time.Date(2024, 1, 17, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC),
	}

	out := RenderStats(res)
	if !strings.HasPrefix(out, "Statistics for 17.01.2024 to 14.01.2024\n") {
		t.Errorf("unexpected title:\n%s", out)
	}
	if !strings.Contains(out, "No days in range") {
		t.Errorf("expected empty range notice:\n%s", out)
	}
	if strings.Contains(out, "Total Hours:") || strings.Contains(out, "01.01.0001") {
		t.Errorf("did not expect totals:\n%s", out)
	}
}
