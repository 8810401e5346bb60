package main

import (
	"os"

	"github.com/xolan/tante/cmd"
	"github.com/xolan/tante/internal/config"
)

// Version information injected by GoReleaser via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var exitFunc = os.Exit

func main() {
	exitFunc(run())
}

// run validates that the application home is reachable and executes the
// command tree, returning the process exit code.
func run() int {
	if _, err := config.GetConfigPath(); err != nil {
		_, _ = os.Stderr.WriteString("Error: Failed to determine config file location\n")
		_, _ = os.Stderr.WriteString("Details: " + err.Error() + "\n")
		return 1
	}

	cmd.SetVersionInfo(version, commit, date)
	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}
