package cli

import (
	stderrors "errors"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/louisboii747/hwmon/internal/config"
	"github.com/louisboii747/hwmon/internal/errors"
	"github.com/louisboii747/hwmon/internal/logger"
	"github.com/louisboii747/hwmon/internal/monitor"
	"github.com/louisboii747/hwmon/internal/ui"
)

// DebugLogFile receives dashboard logs when HWMON_DEBUG is set. The alt
// screen owns the terminal, so logs can't go to stderr.
const DebugLogFile = "hwmon-debug.log"

// dashboardOptions are the flags shared by the root and dashboard commands.
type dashboardOptions struct {
	PickTheme bool
	Summary   bool
	Full      bool
}

var dashboardOpts dashboardOptions

// dashboardCmd starts the interactive dashboard
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Interactive dashboard with graphs and alerts (default)",
	Long: `Start the interactive dashboard: a status banner, braille graphs for
CPU, memory and disk usage, and a scrollable report below them.

Keyboard shortcuts:
  F2 / t        Toggle summary / full view
  F3 / c        Cycle theme
  r             Refresh now
  up/down       Scroll one line
  PgUp/PgDn     Scroll one page
  ?             Show help
  q / Ctrl+C    Quit

Examples:
  hwmon dashboard
  hwmon dashboard --full
  hwmon dashboard --pick-theme`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDashboard(cmd, dashboardOpts)
	},
}

func init() {
	addDashboardFlags(dashboardCmd, &dashboardOpts)
	rootCmd.AddCommand(dashboardCmd)
}

func addDashboardFlags(cmd *cobra.Command, opts *dashboardOptions) {
	cmd.Flags().BoolVar(&opts.PickTheme, "pick-theme", false, "choose the theme interactively before starting")
	cmd.Flags().BoolVar(&opts.Summary, "summary", false, "start in the summary view (the default unless start_in_summary is false)")
	cmd.Flags().BoolVar(&opts.Full, "full", false, "start in the full view")
	cmd.MarkFlagsMutuallyExclusive("summary", "full")
}

// runDashboard runs the Bubble Tea program until the user quits.
func runDashboard(cmd *cobra.Command, opts dashboardOptions) error {
	cfg, _, err := loadSettings()
	if err != nil {
		return err
	}

	if !ui.IsTerminal(os.Stdout) {
		return errors.New(errors.ErrConfig,
			"The dashboard needs an interactive terminal",
			"Use 'hwmon watch' when piping output or running without a TTY.")
	}

	themes, err := newThemeSet(cfg)
	if err != nil {
		return err
	}
	if opts.PickTheme {
		if err := pickTheme(themes); err != nil {
			return err
		}
	}

	closeLog, err := routeDashboardLogs()
	if err != nil {
		return err
	}
	defer closeLog()

	mon, err := newMonitor(cfg, logger.NewEnvLogger("[hwmon]"))
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	model := monitor.NewModel(mon, themes, monitor.ModelOptions{
		Interval:       cfg.Interval,
		StartInSummary: startInSummary(cfg, opts),
		Context:        ctx,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	_, err = p.Run()
	return err
}

// startInSummary picks the initial view: --full or --summary win over the
// start_in_summary setting.
func startInSummary(cfg *config.Config, opts dashboardOptions) bool {
	switch {
	case opts.Full:
		return false
	case opts.Summary:
		return true
	}
	return cfg.StartInSummary
}

// routeDashboardLogs sends the standard logger to DebugLogFile when debug
// logging is on and discards it otherwise.
func routeDashboardLogs() (func(), error) {
	prev := log.Writer()
	if !logger.DebugEnabled() {
		log.SetOutput(io.Discard)
		return func() { log.SetOutput(prev) }, nil
	}

	f, err := tea.LogToFile(DebugLogFile, "hwmon")
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't open the debug log",
			"Unset HWMON_DEBUG or run from a writable directory.")
	}
	return func() {
		log.SetOutput(prev)
		_ = f.Close()
	}, nil
}

// pickTheme asks for a theme with a huh select and makes it current.
// Cancelling keeps the configured theme.
func pickTheme(themes *monitor.ThemeSet) error {
	selected := themes.Current().Name
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Dashboard theme").
				Options(themeOptions(themes)...).
				Value(&selected),
		),
	)

	if err := form.Run(); err != nil {
		if stderrors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		return errors.WrapWithCode(err, errors.ErrConfig, "Theme picker failed", "Pass --theme instead.")
	}
	return themes.Select(selected)
}

// themeOptions lists the themes as huh options in cycle order.
func themeOptions(themes *monitor.ThemeSet) []huh.Option[string] {
	var options []huh.Option[string]
	for _, name := range themes.Names() {
		options = append(options, huh.NewOption(name, name))
	}
	return options
}
