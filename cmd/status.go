package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xolan/tante/internal/cli"
	"github.com/xolan/tante/internal/report"
	"github.com/xolan/tante/internal/timeutil"
)

var shortFlag bool

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show current tracking status",
	Long: `Show the running task, colour bars of the last three weeks and how much
time is left this week and today.

With --short a single line is printed:
  {Running|Stopped}|{spent today}|{to go today}|{spent this week}|{to go this week}
The week covers Monday to Friday. The exit status is 0 while a task is
running and 1 otherwise, so the line can drive a shell prompt or status bar.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if shortFlag {
			showShortStatus()
			return
		}
		showStatus()
	},
}

func init() {
	statusCmd.Flags().BoolVarP(&shortFlag, "short", "s", false, "print a one-line status")
	rootCmd.AddCommand(statusCmd)
}

// showStatus prints the full status screen
func showStatus() {
	svc, ok := loadServices()
	if !ok {
		return
	}

	st, err := svc.Status.Status(deps.Now())
	if err != nil {
		fail("Failed to compute status", err, "")
		return
	}

	printWarnings(timeutil.DayKeyOf(st.Now), st.Warnings)
	p := report.NewPalette(svc.Config.Get().Theme)
	_, _ = fmt.Fprint(deps.Stdout, cli.RenderStatus(st, p))
}

// showShortStatus prints the one-line status and exits 1 when stopped
func showShortStatus() {
	svc, ok := loadServices()
	if !ok {
		return
	}

	st, err := svc.Status.Short(deps.Now())
	if err != nil {
		fail("Failed to compute status", err, "")
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, st.String())
	if !st.Running {
		deps.Exit(1)
	}
}
