package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/xolan/tante/internal/filter"
	"github.com/xolan/tante/internal/report"
)

func TestShowReport(t *testing.T) {
	env := setupTest(t)
	seedWeek(t, env)

	showReport("2024-01-15", "~1", nil)

	out := env.stdout.String()
	if !strings.Contains(out, "Mon 15.01.2024") || !strings.Contains(out, "Tue 16.01.2024") {
		t.Errorf("expected both days, got:\n%s", out)
	}
	if strings.Contains(out, "Wed 17.01.2024") {
		t.Errorf("did not expect today, got:\n%s", out)
	}
	if !strings.Contains(out, " | 08:00 | 16:00 | 08:00 | x                  |") {
		t.Errorf("expected entry row, got:\n%s", out)
	}
}

func TestShowReport_InvalidRange(t *testing.T) {
	env := setupTest(t)

	showReport("0", "later", nil)

	if !strings.Contains(env.stderr.String(), "Error: 'later' is not a valid to day") {
		t.Errorf("unexpected stderr:\n%s", env.stderr.String())
	}
	if env.exitCode != 1 {
		t.Errorf("exit code = %d, want 1", env.exitCode)
	}
	if env.stdout.Len() != 0 {
		t.Errorf("expected no output, got:\n%s", env.stdout.String())
	}
}

func TestExportCSV(t *testing.T) {
	env := setupTest(t)
	seedWeek(t, env)

	exportCSV("~2", "=", nil)

	lines := strings.Split(strings.TrimSuffix(env.stdout.String(), "\n"), "\n")
	if lines[0] != report.CSVHeader {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "15.01.2024;08:00;16:00;08:00;     ;" {
		t.Errorf("row = %q", lines[1])
	}
	if lines[2] != "          ;     ;     ;     ;08:00;8" {
		t.Errorf("summary = %q", lines[2])
	}
}

func TestAddUp(t *testing.T) {
	env := setupTest(t)
	seedWeek(t, env)

	addUp("2024-01-15", "")

	out := ansi.Strip(env.stdout.String())
	if !strings.HasPrefix(out, "2024-kw-03  2024-01-15   16:03   -23:57    -23:57 ") {
		t.Errorf("unexpected output:\n%q", out)
	}
}

func TestShowChart(t *testing.T) {
	env := setupTest(t)
	seedWeek(t, env)

	showChart("")

	out := ansi.Strip(env.stdout.String())
	if !strings.Contains(out, "Wed 17.01.2024") {
		t.Errorf("expected today's table, got:\n%s", out)
	}
	if !strings.Contains(out, "■ abc") {
		t.Errorf("expected legend, got:\n%s", out)
	}
}

func TestShowReport_Filtered(t *testing.T) {
	env := setupTest(t)
	seedWeek(t, env)

	showReport("2024-01-15", "=", filter.NewFilter("ab", ""))

	out := env.stdout.String()
	if strings.Contains(out, "| x ") {
		t.Errorf("filtered task must not be listed:\n%s", out)
	}
	if !strings.Contains(out, " |       |       | 00:00 | ∑                  |") {
		t.Errorf("expected zero sum, got:\n%s", out)
	}
}

func TestShowStats(t *testing.T) {
	env := setupTest(t)
	seedWeek(t, env)

	showStats("", "", nil)

	out := env.stdout.String()
	for _, want := range []string{
		"Statistics for 15.01.2024 to 17.01.2024\n",
		"Total Hours:     16:03\n",
		"Days Tracked:    2 of 3 days\n",
		"Comparison:      +16:03 vs previous 3 days\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestStatsCmd_FilterFlags(t *testing.T) {
	env := setupTest(t)
	seedWeek(t, env)

	cmd := statsCmd
	if err := cmd.Flags().Set("task", "abc"); err != nil {
		t.Fatal(err)
	}
	defer func() { _ = cmd.Flags().Set("task", "") }()

	showStats("2024-01-15", "", filterFromFlags(cmd))

	out := env.stdout.String()
	if !strings.Contains(out, "(task 'abc')") || !strings.Contains(out, "Total Hours:     08:03") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestShowStats_ReversedRange(t *testing.T) {
	env := setupTest(t)
	seedWeek(t, env)

	showStats("0", "~3", nil)

	out := env.stdout.String()
	if !strings.Contains(out, "Statistics for 17.01.2024 to 14.01.2024") || !strings.Contains(out, "No days in range") {
		t.Errorf("unexpected output:\n%s", out)
	}
	if env.exitCode != -1 {
		t.Errorf("unexpected exit code %d", env.exitCode)
	}
}

func TestReadCommands_CorruptDatabase(t *testing.T) {
	tests := []struct {
		name string
		run  func()
	}{
		{"report", func() { showReport("", "", nil) }},
		{"csv", func() { exportCSV("", "", nil) }},
		{"addup", func() { addUp("", "") }},
		{"stats", func() { showStats("", "", nil) }},
		{"chart", func() { showChart("") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTest(t)
			if err := os.MkdirAll(filepath.Dir(env.storagePath), 0755); err != nil {
				t.Fatal(err)
			}
			if err := os.WriteFile(env.storagePath, []byte("not json"), 0644); err != nil {
				t.Fatal(err)
			}

			tt.run()

			out := env.stderr.String()
			if !strings.Contains(out, "Error: Failed to read the time log") {
				t.Errorf("unexpected stderr:\n%s", out)
			}
			if strings.Contains(out, "writable") {
				t.Errorf("read failure must not hint at write access:\n%s", out)
			}
			if env.exitCode != 1 {
				t.Errorf("exit code = %d, want 1", env.exitCode)
			}
		})
	}
}
