package cmd

import (
	"errors"
	"fmt"

	"github.com/xolan/tante/internal/config"
	"github.com/xolan/tante/internal/logger"
	"github.com/xolan/tante/internal/service"
	"github.com/xolan/tante/internal/timeutil"
)

// fail prints an error block on stderr and exits with status 1.
// An empty hint is omitted.
func fail(message string, err error, hint string) {
	_, _ = fmt.Fprintf(deps.Stderr, "Error: %s\n", message)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		logger.Error(message, "error", err)
	}
	if hint != "" {
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: %s\n", hint)
	}
	deps.Exit(1)
}

// failInput reports invalid user input with a hint matching the error kind.
// Any other error is reported as a failed write of the time log.
func failInput(err error) {
	failInputOr(err, "Failed to update the time log", "Check that the database file is writable, see 'tante config path'")
}

// failQuery is failInput for commands that only read the time log.
func failQuery(err error) {
	failInputOr(err, "Failed to read the time log", "Check that the database file exists and is valid JSON, see 'tante config path'")
}

func failInputOr(err error, message, hint string) {
	var verr *timeutil.ValidationError
	switch {
	case errors.As(err, &verr):
		fail(fmt.Sprintf("'%s' is not a valid %s day", verr.Input, verr.Side), err, dayInputHint)
	case errors.Is(err, timeutil.ErrInvalidDayInput):
		fail("Invalid day", err, dayInputHint)
	case errors.Is(err, service.ErrInvalidTime):
		fail("Invalid time", err, "Times are given as HH:mm, e.g. 09:30")
	case errors.Is(err, service.ErrInvalidTask):
		fail("Invalid task name", err, "")
	case errors.Is(err, service.ErrInvalidCommand):
		fail("Invalid command", err, "")
	default:
		fail(message, err, hint)
	}
}

// loadServices builds the services from the configured paths.
func loadServices() (*service.Services, bool) {
	configPath, err := deps.ConfigPath()
	if err != nil {
		fail("Failed to determine config file location", err, "Check that your home directory is accessible")
		return nil, false
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		fail("Failed to load configuration", err, fmt.Sprintf("Check that your config file is valid TOML format: %s", configPath))
		return nil, false
	}

	storagePath, err := deps.StoragePath(cfg.DatabaseName)
	if err != nil {
		fail("Failed to determine database location", err, "Check that your home directory is accessible")
		return nil, false
	}

	return service.NewServicesWithPaths(storagePath, configPath, cfg), true
}

const dayInputHint = `Days are given as YYYY-MM-DD, DD.MM.YYYY, DD.MM. or relative to today: ~1 (yesterday), 0 (today), 2 (the day after tomorrow)`
