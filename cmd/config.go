package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display or manage configuration settings",
	Long: `Display the database file, the config file and the effective configuration.

By default, tante works without any configuration file. All settings have defaults:
  - default_task: default
  - database_name: db
  - decimal_separator: .
  - target_per_day: 8:00
  - target_per_week: 40:00
  - locale: en
  - theme: dracula

Configuration file location:
  ~/.config/tante/config.toml        Linux
  $TANTE_HOME/config.toml            when TANTE_HOME is set`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showConfig()
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a commented sample config file",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		initConfig()
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config and database file paths",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showPaths()
	},
}

var configThemesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List the available colour themes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		listThemes()
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configThemesCmd)
	rootCmd.AddCommand(configCmd)
}

// showConfig displays the paths and the effective configuration
func showConfig() {
	svc, ok := loadServices()
	if !ok {
		return
	}

	out, err := svc.Config.Show()
	if err != nil {
		fail("Failed to encode configuration", err, "")
		return
	}

	showPathsOf(svc.Storage.Path(), svc.Config.GetPath(), svc.Config.Exists())
	_, _ = fmt.Fprintln(deps.Stdout, "Configuration :")
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		_, _ = fmt.Fprintf(deps.Stdout, "  %s\n", line)
	}
}

// initConfig writes the sample config file
func initConfig() {
	svc, ok := loadServices()
	if !ok {
		return
	}

	if err := svc.Config.Init(); err != nil {
		fail("Failed to create config file", err, "Edit the existing file or remove it first")
		return
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Created config file at %s\n", svc.Config.GetPath())
}

// showPaths prints the database and config file locations
func showPaths() {
	svc, ok := loadServices()
	if !ok {
		return
	}
	showPathsOf(svc.Storage.Path(), svc.Config.GetPath(), svc.Config.Exists())
}

func showPathsOf(storagePath, configPath string, configExists bool) {
	_, _ = fmt.Fprintf(deps.Stdout, "Database file : %s\n", storagePath)
	if configExists {
		_, _ = fmt.Fprintf(deps.Stdout, "Config file   : %s\n", configPath)
	} else {
		_, _ = fmt.Fprintf(deps.Stdout, "Config file   : %s (not created, using defaults)\n", configPath)
	}
}

// listThemes prints one theme ID per line
func listThemes() {
	svc, ok := loadServices()
	if !ok {
		return
	}

	current := svc.Config.Get().Theme
	for _, id := range svc.Config.Themes() {
		if id == current {
			_, _ = fmt.Fprintf(deps.Stdout, "%s (current)\n", id)
			continue
		}
		_, _ = fmt.Fprintln(deps.Stdout, id)
	}
}
