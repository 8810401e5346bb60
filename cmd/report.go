package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xolan/tante/internal/cli"
	"github.com/xolan/tante/internal/entry"
	"github.com/xolan/tante/internal/filter"
	"github.com/xolan/tante/internal/report"
	"github.com/xolan/tante/internal/service"
	"github.com/xolan/tante/internal/timeutil"
)

const rangeArgsHelp = `
  from   The first day of the report. Default: today.
  to     The last day of the report. Default: today. '=' repeats from.

Days are given as YYYY-MM-DD, DD.MM.YYYY, DD.MM. or relative to today:
  ~1   (yesterday)
  0    (today)
  2    (the day after tomorrow)`

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report [from] [to]",
	Short: "Show a detailed report as table",
	Long:  "Show a table of intervals and their sum for every day in the range.\n" + rangeArgsHelp,
	Args:  cobra.MaximumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		showReport(argAt(args, 0), argAt(args, 1), filterFromFlags(cmd))
	},
}

// csvCmd represents the csv command
var csvCmd = &cobra.Command{
	Use:   "csv [from] [to]",
	Short: "Export a detailed report as CSV",
	Long: "Export the intervals of every day in the range as ';' separated values.\n" +
		"The decimal hours use decimal_separator from the config.\n" + rangeArgsHelp,
	Args: cobra.MaximumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		exportCSV(argAt(args, 0), argAt(args, 1), filterFromFlags(cmd))
	},
}

// addUpCmd represents the addup command
var addUpCmd = &cobra.Command{
	Use:   "addup [from] [to]",
	Short: "Add up full weeks against the weekly target",
	Long: `Add up every Monday to Sunday week touching the range. Each line shows
the ISO week, its first day, the time spent, the difference to
target_per_week, the accumulated difference and one glyph per day:
  ■  work           h  holiday        s  sick
  (blank) empty or weekend, weekends highlighted
  s* sick and more  h* holiday and more  [* last interval never stopped
` + rangeArgsHelp,
	Args: cobra.MaximumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		addUp(argAt(args, 0), argAt(args, 1))
	},
}

func init() {
	addFilterFlags(reportCmd)
	addFilterFlags(csvCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(csvCmd)
	rootCmd.AddCommand(addUpCmd)
}

// loadDays resolves the range, reports input errors and applies f
func loadDays(from, to string, f *filter.Filter) (*service.Services, []service.DayReport, bool) {
	svc, ok := loadServices()
	if !ok {
		return nil, nil, false
	}

	days, err := svc.Report.Days(from, to, deps.Now())
	if err != nil {
		failQuery(err)
		return nil, nil, false
	}
	for _, d := range days {
		printWarnings(timeutil.DayKeyOf(d.Day), d.Warnings)
	}
	return svc, service.FilterDays(days, f), true
}

// showReport prints one table per day
func showReport(from, to string, f *filter.Filter) {
	svc, days, ok := loadDays(from, to, f)
	if !ok {
		return
	}
	_, _ = fmt.Fprint(deps.Stdout, cli.RenderReport(days, svc.Config.Get().Locale))
}

// exportCSV prints the CSV export
func exportCSV(from, to string, f *filter.Filter) {
	svc, days, ok := loadDays(from, to, f)
	if !ok {
		return
	}
	_, _ = fmt.Fprint(deps.Stdout, cli.RenderCSV(days, svc.Report.SumNumber))
}

// addUp prints one line per full week
func addUp(from, to string) {
	svc, ok := loadServices()
	if !ok {
		return
	}

	weeks, err := svc.Report.AddUp(from, to, deps.Now())
	if err != nil {
		failQuery(err)
		return
	}
	p := report.NewPalette(svc.Config.Get().Theme)
	_, _ = fmt.Fprint(deps.Stdout, cli.RenderAddUp(weeks, p))
}

// printWarnings lists skipped raw events of a day on stderr
func printWarnings(day timeutil.DayKey, warnings []entry.ParseWarning) {
	if len(warnings) == 0 {
		return
	}
	_, _ = fmt.Fprintf(deps.Stderr, "Warning: Skipped %d malformed %s:\n", len(warnings), cli.Pluralize("event", len(warnings)))
	for _, w := range warnings {
		_, _ = fmt.Fprintf(deps.Stderr, "  %s\n", cli.FormatParseWarning(day, w))
	}
	_, _ = fmt.Fprintln(deps.Stderr)
}
