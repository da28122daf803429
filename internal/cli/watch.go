package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/louisboii747/hwmon/internal/logger"
	"github.com/louisboii747/hwmon/internal/monitor"
)

// watch command flags
var (
	watchOnce    bool
	watchSummary bool
)

// watchCmd prints the report in a loop
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print the full report every interval",
	Long: `Clear the screen and print every configured section once per interval,
with an alert block on top when a threshold is crossed. Stop with Ctrl+C.

Works without a full-screen terminal, so it is the mode to use over
serial consoles, in tmux status panes, or when piping to a file
(with --once).

Examples:
  hwmon watch
  hwmon watch --interval 5s
  hwmon watch --once > report.txt
  hwmon watch --summary`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return runWatch(ctx, cmd, watchOnce, watchSummary)
	},
}

func init() {
	watchCmd.Flags().BoolVar(&watchOnce, "once", false, "print a single report and exit")
	watchCmd.Flags().BoolVar(&watchSummary, "summary", false, "print the summary view instead of every section")
	rootCmd.AddCommand(watchCmd)
}

// runWatch runs the terminal loop until ctx is cancelled.
func runWatch(ctx context.Context, cmd *cobra.Command, once, summary bool) error {
	cfg, _, err := loadSettings()
	if err != nil {
		return err
	}

	mon, err := newMonitor(cfg, logger.NewEnvLogger("[hwmon]"))
	if err != nil {
		return err
	}

	return monitor.RunTerminal(ctx, mon, cmd.OutOrStdout(), monitor.TerminalOptions{
		Interval: cfg.Interval,
		Once:     once,
		Summary:  summary,
	})
}
