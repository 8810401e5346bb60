package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xolan/tante/internal/cli"
)

// stopCmd represents the stop command
var stopCmd = &cobra.Command{
	Use:   "stop [time]",
	Short: "Stop the current task",
	Long: `Stop the running task.

  time   The time to stop the current task, as HH:mm. Default: now.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		stopTask(args)
	},
}

func init() {
	rootCmd.AddCommand(stopCmd)
}

// stopTask records a stop event for today
func stopTask(args []string) {
	svc, ok := loadServices()
	if !ok {
		return
	}

	rec, err := svc.Tracking.Stop(argAt(args, 0), deps.Now())
	if err != nil {
		failInput(err)
		return
	}
	_, _ = fmt.Fprintln(deps.Stdout, cli.FormatStopped(rec))
}
