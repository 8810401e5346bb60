package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Print a completion script for bash, zsh, fish or powershell to stdout.

Load it in the current shell, e.g.
  source <(tante completion bash)
  tante completion fish | source

or write it to your shell's completion directory once.`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	Run: func(cmd *cobra.Command, args []string) {
		generateCompletion(args[0])
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}

// generateCompletion writes the script for shell to stdout
func generateCompletion(shell string) {
	var err error
	switch shell {
	case "bash":
		err = rootCmd.GenBashCompletion(deps.Stdout)
	case "zsh":
		err = rootCmd.GenZshCompletion(deps.Stdout)
	case "fish":
		err = rootCmd.GenFishCompletion(deps.Stdout, true)
	case "powershell":
		err = rootCmd.GenPowerShellCompletionWithDesc(deps.Stdout)
	default:
		fail(fmt.Sprintf("Unsupported shell '%s'", shell), nil, "Supported shells: bash, zsh, fish, powershell")
		return
	}

	if err != nil {
		fail(fmt.Sprintf("Failed to generate %s completion", shell), err, "")
	}
}
