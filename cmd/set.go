package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xolan/tante/internal/cli"
	"github.com/xolan/tante/internal/entry"
)

// setCmd represents the set command
var setCmd = &cobra.Command{
	Use:   "set <start|stop> <day> [time] [task]",
	Short: "Record a start or stop on another day",
	Long: `Record a start or stop event on any day. Without a time the event is
placed at 00:00 of that day.

Examples:
  tante set start ~1 08:00 review     Start 'review' yesterday at 08:00
  tante set stop ~1 17:30             Stop yesterday at 17:30
  tante set start 24.12. 09:00`,
	Args:      cobra.RangeArgs(2, 4),
	ValidArgs: []string{string(entry.CommandStart), string(entry.CommandStop)},
	Run: func(cmd *cobra.Command, args []string) {
		setEvent(args)
	},
}

func init() {
	rootCmd.AddCommand(setCmd)
}

// setEvent records a start or stop on the given day
func setEvent(args []string) {
	svc, ok := loadServices()
	if !ok {
		return
	}

	rec, err := svc.Tracking.Set(args[0], args[1], argAt(args, 2), argAt(args, 3), deps.Now())
	if err != nil {
		failInput(err)
		return
	}

	day := rec.Day.Format("02.01.2006")
	if rec.Task != "" {
		_, _ = fmt.Fprintf(deps.Stdout, "%s %s\n", cli.FormatStarted(rec), day)
	} else {
		_, _ = fmt.Fprintf(deps.Stdout, "%s %s\n", cli.FormatStopped(rec), day)
	}
}
