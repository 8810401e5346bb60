package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xolan/tante/internal/cli"
	"github.com/xolan/tante/internal/report"
)

// holidayCmd represents the holiday command
var holidayCmd = &cobra.Command{
	Use:   "holiday [day]",
	Short: "Record a holiday",
	Long: `Record a holiday from 08:00 lasting target_per_day.

  day   The day of the holiday. Default: today.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		addFullDay(report.TaskHoliday, argAt(args, 0))
	},
}

// sickCmd represents the sick command
var sickCmd = &cobra.Command{
	Use:   "sick [day]",
	Short: "Record a sick day",
	Long: `Record a sick day from 08:00 lasting target_per_day.

  day   The day of the sick leave. Default: today.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		addFullDay(report.TaskSick, argAt(args, 0))
	},
}

func init() {
	rootCmd.AddCommand(holidayCmd)
	rootCmd.AddCommand(sickCmd)
}

// addFullDay records a holiday or sick day
func addFullDay(kind, day string) {
	svc, ok := loadServices()
	if !ok {
		return
	}

	res, err := svc.Tracking.FullDay(kind, day, deps.Now())
	if err != nil {
		failInput(err)
		return
	}
	_, _ = fmt.Fprintln(deps.Stdout, cli.FormatFullDay(res, svc.Config.Get().Locale))
}
