package cli

import (
	"github.com/spf13/cobra"

	"github.com/louisboii747/hwmon/internal/errors"
	"github.com/louisboii747/hwmon/internal/monitor"
)

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for hwmon.

Examples:
  # Bash
  hwmon completion bash > /etc/bash_completion.d/hwmon

  # Zsh
  hwmon completion zsh > "${fpath[1]}/_hwmon"

  # Fish
  hwmon completion fish > ~/.config/fish/completions/hwmon.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return cmd.Root().GenBashCompletion(out)
		case "zsh":
			return cmd.Root().GenZshCompletion(out)
		case "fish":
			return cmd.Root().GenFishCompletion(out, true)
		case "powershell":
			return cmd.Root().GenPowerShellCompletion(out)
		default:
			return errors.New(errors.ErrConfig,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}

// themeCompletions completes --theme with the built-in theme names.
func themeCompletions(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return monitor.NewThemeSet().Names(), cobra.ShellCompDirectiveNoFileComp
}
