package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xolan/tante/internal/logger"
	"github.com/xolan/tante/internal/osutil"
)

var debugFlag bool

var rootCmd = &cobra.Command{
	Use:   "tante",
	Short: "A start/stop time tracking CLI application",
	Long: `tante records when you start and stop working on a task and reports
the time spent per day and week against your daily and weekly targets.

Usage:
  tante start [task] [time]        Start a task (default: configured task, now)
  tante stop [time]                Stop the running task
  tante set <start|stop> <day>     Record a start or stop on another day
  tante holiday [day]              Record a holiday
  tante sick [day]                 Record a sick day
  tante status                     Show the running task and countdowns
  tante report [from] [to]         Show a table per day
  tante csv [from] [to]            Export a report as CSV
  tante addup [from] [to]          Add up full weeks against the weekly target
  tante watch                      Live status dashboard

Days are given as YYYY-MM-DD, DD.MM.YYYY, DD.MM. or relative to today:
  ~1   (yesterday)
  0    (today)
  2    (the day after tomorrow)
Times are given as HH:mm.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initLogger()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "write debug logs and mirror them to stderr")
}

// initLogger starts file logging below the application home. Failing to
// log never stops a command.
func initLogger() {
	logDir, err := osutil.AppDir("logs")
	if err != nil {
		return
	}
	_ = logger.Init(logger.Config{
		Debug:  debugFlag,
		LogDir: logDir,
		Stderr: deps.Stderr,
	})
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"tante version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
