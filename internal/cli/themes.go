package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/louisboii747/hwmon/internal/monitor"
	"github.com/louisboii747/hwmon/internal/ui"
)

// themesCmd lists the dashboard themes
var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List the dashboard themes",
	Long: `List the built-in dashboard themes in the order F3 cycles through them.
The active theme comes from --theme, HWMON_THEME or 'theme' in the config.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadSettings()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderThemesTable(monitor.BuiltinThemes, cfg.Theme))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(themesCmd)
}

// renderThemesTable lists themes with their colors, marking active.
func renderThemesTable(themes []monitor.Theme, active string) string {
	var rows [][]string
	for _, t := range themes {
		marker := ""
		if t.Name == active {
			marker = ui.SymbolActive
		}
		rows = append(rows, []string{marker, t.Name, string(t.Background), string(t.Foreground), string(t.Accent)})
	}

	return ui.RenderSimpleTable([]ui.TableColumn{
		{Title: "", Width: 2},
		{Title: "Theme", Width: 10},
		{Title: "Background", Width: 12},
		{Title: "Foreground", Width: 12},
		{Title: "Accent", Width: 10},
	}, rows)
}
