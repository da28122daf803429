package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/louisboii747/hwmon/internal/monitor"
	"github.com/louisboii747/hwmon/internal/ui"
	"github.com/louisboii747/hwmon/internal/util"
)

// sectionsCmd lists the report sections
var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "List the report sections",
	Long: `List every section the report can show, in default order, and mark the
ones enabled by the current config. Use the names in the 'sections' list
of your config file (or HWMON_SECTIONS=gpu,wifi) to pick and order them.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadSettings()
		if err != nil {
			return err
		}

		enabled := cfg.Sections
		if len(enabled) == 0 {
			enabled = monitor.DefaultSections
		}
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, renderSectionsTable(monitor.DefaultRegistry(), enabled))
		fmt.Fprintf(out, "\n%d %s enabled\n", len(enabled), util.Pluralize(len(enabled), "section", "sections"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sectionsCmd)
}

// renderSectionsTable lists every registered section with its position in
// enabled, or a pending marker when it is not shown.
func renderSectionsTable(reg *monitor.Registry, enabled []string) string {
	position := make(map[string]int, len(enabled))
	for i, name := range enabled {
		position[name] = i + 1
	}

	var rows [][]string
	for _, name := range reg.Names() {
		s, _ := reg.Lookup(name)
		shown := ui.SymbolPending
		if pos, ok := position[name]; ok {
			shown = fmt.Sprintf("%s %d", ui.SymbolSuccess, pos)
		}
		if name == monitor.SectionSummary {
			shown = "summary view"
		}
		rows = append(rows, []string{name, s.Title, shown})
	}

	return ui.RenderSimpleTable([]ui.TableColumn{
		{Title: "Name", Width: 14},
		{Title: "Title", Width: 30},
		{Title: "Shown", Width: 14},
	}, rows)
}
