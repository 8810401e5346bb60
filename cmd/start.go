package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xolan/tante/internal/cli"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start [task] [time]",
	Short: "Start a task",
	Long: `Start working on a task. Starting another task while one is running
switches to the new task.

Both arguments are optional and may be given in either order:
  task   The name of the task. Default: default_task from the config.
  time   The time to start the task at, as HH:mm. Default: now.

Examples:
  tante start
  tante start review
  tante start 08:30 review
  tante start review 08:30`,
	Args: cobra.MaximumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		startTask(args)
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
}

// startTask records a start event for today
func startTask(args []string) {
	svc, ok := loadServices()
	if !ok {
		return
	}

	first, second := argAt(args, 0), argAt(args, 1)
	rec, err := svc.Tracking.Start(first, second, deps.Now())
	if err != nil {
		failInput(err)
		return
	}
	_, _ = fmt.Fprintln(deps.Stdout, cli.FormatStarted(rec))
}

// argAt returns args[i] or "" when absent.
func argAt(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
