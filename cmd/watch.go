package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xolan/tante/internal/watch"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Live status dashboard",
	Long: `Show the status screen and refresh it every 30 seconds.

Keyboard shortcuts:
  s   Start the default task
  x   Stop the running task
  r   Refresh now
  ?   Toggle help
  q   Quit`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runWatch()
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

// runWatch runs the dashboard until the user quits
func runWatch() {
	svc, ok := loadServices()
	if !ok {
		return
	}

	if err := watch.Run(svc, deps.Now); err != nil {
		fail("Failed to run the dashboard", err, "")
	}
}
