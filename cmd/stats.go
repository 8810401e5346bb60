package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xolan/tante/internal/cli"
	"github.com/xolan/tante/internal/filter"
	"github.com/xolan/tante/internal/timeutil"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats [from] [to]",
	Short: "Show summary statistics for a range of days",
	Long: `Show the total and average time of the range, the number of intervals,
the days with tracked time and the time spent per task. The totals are
compared with the equally long period right before the range.

By default the current week from Monday up to today is used.

Use --task to count a single task or --keyword to count every task whose
name contains the keyword.
` + rangeArgsHelp,
	Args: cobra.MaximumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		showStats(argAt(args, 0), argAt(args, 1), filterFromFlags(cmd))
	},
}

func init() {
	addFilterFlags(statsCmd)
	rootCmd.AddCommand(statsCmd)
}

// addFilterFlags registers --task and --keyword on cmd.
func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("task", "t", "", "only count intervals of this task (case-insensitive)")
	cmd.Flags().StringP("keyword", "k", "", "only count tasks whose name contains the keyword")
}

func filterFromFlags(cmd *cobra.Command) *filter.Filter {
	task, _ := cmd.Flags().GetString("task")
	keyword, _ := cmd.Flags().GetString("keyword")
	return filter.NewFilter(keyword, task)
}

// showStats prints the statistics of the range
func showStats(from, to string, f *filter.Filter) {
	svc, ok := loadServices()
	if !ok {
		return
	}

	now := deps.Now()
	if from == "" {
		from = string(timeutil.DayKeyOf(timeutil.StartOfWeek(now)))
	}

	res, err := svc.Report.Stats(from, to, f, now)
	if err != nil {
		failQuery(err)
		return
	}
	_, _ = fmt.Fprint(deps.Stdout, cli.RenderStats(res))
}
