// Package config loads the TOML configuration file.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/xolan/tante/internal/osutil"
	"github.com/xolan/tante/internal/report"
	"github.com/xolan/tante/internal/timeutil"
)

// ConfigFile is the name of the TOML configuration file
const ConfigFile = "config.toml"

// Config represents the application configuration
type Config struct {
	// DefaultTask is used by start when no task name is given
	DefaultTask string `toml:"default_task"`
	// DatabaseName is the state file name below <home>/db, without extension
	DatabaseName string `toml:"database_name"`
	// DecimalSeparator is used for decimal hours in the CSV export
	DecimalSeparator string `toml:"decimal_separator"`
	// TargetPerDay is the daily working target as H:mm
	TargetPerDay timeutil.DurationString `toml:"target_per_day"`
	// TargetPerWeek is the weekly working target as H:mm
	TargetPerWeek timeutil.DurationString `toml:"target_per_week"`
	// Locale selects weekday names ("en" or "de")
	Locale string `toml:"locale"`
	// Theme is a bubbletint theme ID used for colours
	Theme string `toml:"theme"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		DefaultTask:      "default",
		DatabaseName:     "db",
		DecimalSeparator: ".",
		TargetPerDay:     "8:00",
		TargetPerWeek:    "40:00",
		Locale:           timeutil.LocaleEN,
		Theme:            report.DefaultTheme,
	}
}

// GetConfigPath returns the path to the config file, creating the
// application home if it doesn't exist.
func GetConfigPath() (string, error) {
	dir, err := osutil.AppDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFile), nil
}

// Load reads, normalizes and validates the config file at path.
// Keys missing from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			return Config{}, err
		}
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadOrDefault is Load, except that a missing file yields DefaultConfig.
func LoadOrDefault(path string) (Config, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return Config{}, err
	}
	return Load(path)
}

// Normalize trims values, lower-cases locale and theme, and fills empty
// fields with defaults.
func (c *Config) Normalize() {
	defaults := DefaultConfig()

	c.DefaultTask = strings.TrimSpace(c.DefaultTask)
	c.DatabaseName = strings.TrimSpace(c.DatabaseName)
	c.TargetPerDay = timeutil.DurationString(strings.TrimSpace(string(c.TargetPerDay)))
	c.TargetPerWeek = timeutil.DurationString(strings.TrimSpace(string(c.TargetPerWeek)))
	c.Locale = strings.ToLower(strings.TrimSpace(c.Locale))
	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))

	if c.DefaultTask == "" {
		c.DefaultTask = defaults.DefaultTask
	}
	if c.DatabaseName == "" {
		c.DatabaseName = defaults.DatabaseName
	}
	if c.DecimalSeparator == "" {
		c.DecimalSeparator = defaults.DecimalSeparator
	}
	if c.TargetPerDay == "" {
		c.TargetPerDay = defaults.TargetPerDay
	}
	if c.TargetPerWeek == "" {
		c.TargetPerWeek = defaults.TargetPerWeek
	}
	if c.Locale == "" {
		c.Locale = defaults.Locale
	}
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
}

// Validate checks that every value can be used.
func (c Config) Validate() error {
	if strings.ContainsAny(c.DefaultTask, "|\n") {
		return fmt.Errorf("invalid default_task %q: must not contain '|' or newlines", c.DefaultTask)
	}
	if strings.ContainsAny(c.DatabaseName, `/\`) {
		return fmt.Errorf("invalid database_name %q: must be a plain file name", c.DatabaseName)
	}
	if c.DecimalSeparator == "" {
		return errors.New("invalid decimal_separator: must not be empty")
	}
	if _, err := c.DailyTarget(); err != nil {
		return fmt.Errorf("invalid target_per_day: %w", err)
	}
	if _, err := c.WeeklyTarget(); err != nil {
		return fmt.Errorf("invalid target_per_week: %w", err)
	}
	if !timeutil.IsSupportedLocale(c.Locale) {
		return fmt.Errorf("invalid locale %q: must be 'en' or 'de'", c.Locale)
	}
	if !report.IsKnownTheme(c.Theme) {
		return fmt.Errorf("invalid theme %q: see 'tante config themes'", c.Theme)
	}
	return nil
}

// DailyTarget returns target_per_day in minutes.
func (c Config) DailyTarget() (int, error) {
	return parseTarget(c.TargetPerDay)
}

// WeeklyTarget returns target_per_week in minutes.
func (c Config) WeeklyTarget() (int, error) {
	return parseTarget(c.TargetPerWeek)
}

func parseTarget(d timeutil.DurationString) (int, error) {
	m, err := timeutil.ParseDuration(d)
	if err != nil {
		return 0, err
	}
	if m < 0 {
		return 0, fmt.Errorf("'%s' must not be negative", d)
	}
	return m, nil
}

// Encode writes the configuration as TOML.
func (c Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// GenerateSampleConfig returns a commented config file listing every key with its default.
func GenerateSampleConfig() string {
	return `# tante configuration file
# Remove the leading '#' of a line to change a value.

# Task name used by 'tante start' without a task
# default_task = "default"

# State file name below <home>/db (without .json)
# database_name = "db"

# Decimal separator for the hours column of 'tante csv' ("." or ",")
# decimal_separator = "."

# Working targets as H:mm
# target_per_day = "8:00"
# target_per_week = "40:00"

# Weekday names: "en" or "de"
# locale = "en"

# Colour theme ID, list them with 'tante config themes'
# theme = "dracula"
`
}
