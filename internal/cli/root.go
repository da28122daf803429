package cli

import (
	stderrors "errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/louisboii747/hwmon/internal/errors"
	"github.com/louisboii747/hwmon/internal/ui"
	"github.com/louisboii747/hwmon/internal/util"
)

// NoUpdateCheckEnv disables the release check when set to "1".
const NoUpdateCheckEnv = "HWMON_NO_UPDATE_CHECK"

// Global flags
var (
	cfgFile       string
	intervalFlag  string
	themeFlag     string
	noUpdateCheck bool
	noColor       bool
)

// rootCmd starts the dashboard when run without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "hwmon",
	Short: "Live hardware and OS telemetry in your terminal",
	Long: `hwmon samples CPU, memory, disk, network, sensors, battery and attached
devices once a second and shows them as a scrollable dashboard with
usage graphs and threshold alerts.

Run without a subcommand to open the dashboard. Use 'hwmon watch' for a
plain text report that works over pipes and serial consoles.

Examples:
  hwmon
  hwmon --theme hacker --interval 2s
  hwmon watch --once
  hwmon sections`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor || os.Getenv("NO_COLOR") != "" {
			ui.DisableColors()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDashboard(cmd, dashboardOpts)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: ./.hwmon.yaml or ~/.config/hwmon/config.yaml)")
	flags.StringVar(&intervalFlag, "interval", "", "refresh interval (e.g., 1s, 500ms, 2s)")
	flags.StringVar(&themeFlag, "theme", "", "dashboard theme (see 'hwmon themes')")
	flags.BoolVar(&noUpdateCheck, "no-update-check", false, "don't check for new releases")
	flags.BoolVar(&noColor, "no-color", false, "disable colored output")
	_ = rootCmd.RegisterFlagCompletionFunc("theme", themeCompletions)

	addDashboardFlags(rootCmd, &dashboardOpts)
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprint(os.Stderr, formatError(err))
		os.Exit(1)
	}
}

// formatError renders err for the terminal. Structured errors already carry
// their own layout; cobra's usage errors get a pointer to --help.
func formatError(err error) string {
	var structured *errors.Error
	if stderrors.As(err, &structured) {
		return structured.Error()
	}

	if isUnknownCommandError(err) {
		hint := "Run 'hwmon --help' to see the available commands and flags."
		if name := extractUnknownCommand(err); name != "" {
			hint = fmt.Sprintf("'%s' isn't a hwmon command. Run 'hwmon --help' to see what is.", name)
			if dym := util.DidYouMean(util.SuggestSimilar(name, commandNames(), 3)); dym != "" {
				hint = fmt.Sprintf("'%s' isn't a hwmon command. %s", name, dym)
			}
		}
		return errors.New(errors.ErrConfig, err.Error(), hint).Error()
	}

	return fmt.Sprintf("✗ %s\n", err.Error())
}

// commandNames lists the visible subcommands of the root command.
func commandNames() []string {
	var names []string
	for _, c := range rootCmd.Commands() {
		if c.IsAvailableCommand() {
			names = append(names, c.Name())
		}
	}
	return names
}

// isUnknownCommandError reports whether err is cobra's unknown command or
// unknown flag error.
func isUnknownCommandError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command") ||
		strings.HasPrefix(msg, "unknown flag") ||
		strings.HasPrefix(msg, "unknown shorthand flag")
}

// extractUnknownCommand pulls the command name out of
// `unknown command "foo" for "hwmon"`.
func extractUnknownCommand(err error) string {
	msg := err.Error()
	start := strings.Index(msg, `"`)
	if start < 0 {
		return ""
	}
	end := strings.Index(msg[start+1:], `"`)
	if end < 0 {
		return ""
	}
	return msg[start+1 : start+1+end]
}
