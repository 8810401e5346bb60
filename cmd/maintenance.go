package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xolan/tante/internal/cli"
	"github.com/xolan/tante/internal/storage"
)

// dumpCmd represents the dump command
var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Dump the current database",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		dumpDatabase()
	},
}

// archiveCmd represents the archive command
var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Move the current database to an archive file and start a new one",
	Long: `Rename the database file to <name>-YYYY-MM-DD.json and create a new,
empty database. Only one archive can be created per day.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		archiveDatabase()
	},
}

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check database file health",
	Long: `Check every day of the database for malformed events, invalid day keys,
unsorted days and days whose last task was never stopped.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		validateDatabase()
	},
}

// restoreCmd represents the restore command
var restoreCmd = &cobra.Command{
	Use:   "restore [backup_number]",
	Short: "Restore from a backup file",
	Long: fmt.Sprintf(`Restore the database file from a backup. A backup is taken before every write.

By default, restores from the most recent backup (.bak.1).
Optionally specify a backup number to restore from (1-%d).

Examples:
  tante restore       Restore from most recent backup
  tante restore 2     Restore from backup #2`, storage.MaxBackupCount),
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		restoreFromBackup(args)
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(archiveCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(restoreCmd)
}

// dumpDatabase prints the database as indented JSON
func dumpDatabase() {
	svc, ok := loadServices()
	if !ok {
		return
	}

	out, err := svc.Storage.Dump()
	if err != nil {
		fail("Failed to read database", err, fmt.Sprintf("Check that the file is valid JSON: %s", svc.Storage.Path()))
		return
	}
	_, _ = fmt.Fprintln(deps.Stdout, out)
}

// archiveDatabase moves the database aside
func archiveDatabase() {
	svc, ok := loadServices()
	if !ok {
		return
	}

	res, err := svc.Storage.Archive(deps.Now())
	if err != nil {
		fail("Failed to archive database", err, "")
		return
	}
	if res.AlreadyExists {
		_, _ = fmt.Fprintln(deps.Stdout, "There was already an archive created today.")
		return
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Moved %s to %s.\n", res.From, res.To)
}

// validateDatabase checks the database health and reports status
func validateDatabase() {
	svc, ok := loadServices()
	if !ok {
		return
	}

	health, err := svc.Storage.Validate(deps.Now())
	if err != nil {
		fail("Failed to validate database", err, "")
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Database file: %s\n", svc.Storage.Path())
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))

	_, _ = fmt.Fprintf(deps.Stdout, "Days:              %d (%d empty)\n", health.Days, health.EmptyDays)
	_, _ = fmt.Fprintf(deps.Stdout, "Total events:      %d\n", health.TotalEvents)
	_, _ = fmt.Fprintf(deps.Stdout, "Valid events:      %d\n", health.ValidEvents)
	_, _ = fmt.Fprintf(deps.Stdout, "Malformed events:  %d\n", len(health.Warnings))
	_, _ = fmt.Fprintf(deps.Stdout, "Backups:           %d\n", health.BackupsOnDisk)

	if len(health.Warnings) > 0 {
		_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
		_, _ = fmt.Fprintln(deps.Stdout, "Malformed events:")
		for _, w := range health.Warnings {
			_, _ = fmt.Fprintf(deps.Stdout, "  %s\n", cli.FormatParseWarning(w.Day, w.ParseWarning))
		}
	}
	if len(health.InvalidDays) > 0 {
		_, _ = fmt.Fprintf(deps.Stdout, "Invalid day keys:  %s\n", strings.Join(health.InvalidDays, ", "))
	}
	for _, day := range health.UnsortedDays {
		_, _ = fmt.Fprintf(deps.Stdout, "Unsorted day:      %s\n", day)
	}
	for _, day := range health.OpenDays {
		_, _ = fmt.Fprintf(deps.Stdout, "Never stopped:     %s\n", day)
	}

	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
	if health.IsHealthy() {
		_, _ = fmt.Fprintln(deps.Stdout, "Status: ✓ Database file is healthy")
	} else {
		_, _ = fmt.Fprintln(deps.Stderr, "Status: ⚠ Database file has problems")
	}
}

// restoreFromBackup handles the restore command logic
func restoreFromBackup(args []string) {
	svc, ok := loadServices()
	if !ok {
		return
	}

	backups := svc.Storage.Backups()
	if len(backups) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No backups available")
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, "Available backups:")
	for _, backup := range backups {
		if backup.Number == 1 {
			_, _ = fmt.Fprintf(deps.Stdout, "  %d: %s (most recent)\n", backup.Number, backup.Path)
		} else {
			_, _ = fmt.Fprintf(deps.Stdout, "  %d: %s\n", backup.Number, backup.Path)
		}
	}
	_, _ = fmt.Fprintln(deps.Stdout)

	backupNum := 1
	if len(args) > 0 {
		num, err := strconv.Atoi(args[0])
		if err != nil {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid backup number '%s'\n", args[0])
			deps.Exit(1)
			return
		}
		backupNum = num
	}

	if err := svc.Storage.Restore(backupNum); err != nil {
		fail("Failed to restore backup", err, "")
		return
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Successfully restored from backup %d\n", backupNum)
}
