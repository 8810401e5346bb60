package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xolan/tante/internal/cli"
	"github.com/xolan/tante/internal/report"
	"github.com/xolan/tante/internal/timeutil"
)

// chartCmd represents the chart command
var chartCmd = &cobra.Command{
	Use:   "chart [day]",
	Short: "Show a day as table and colour bar",
	Long: `Show the intervals of a day as table followed by a 24 hour colour bar,
one colour per task.

  day   The day to chart. Default: today.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		showChart(argAt(args, 0))
	},
}

func init() {
	rootCmd.AddCommand(chartCmd)
}

// showChart prints the table and colour bar of a day
func showChart(day string) {
	svc, ok := loadServices()
	if !ok {
		return
	}

	chart, err := svc.Report.Chart(day, deps.Now())
	if err != nil {
		failQuery(err)
		return
	}

	printWarnings(timeutil.DayKeyOf(chart.Day), chart.Warnings)
	cfg := svc.Config.Get()
	_, _ = fmt.Fprint(deps.Stdout, cli.RenderChart(chart, report.NewPalette(cfg.Theme), cfg.Locale))
}
