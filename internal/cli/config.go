package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/louisboii747/hwmon/internal/config"
	"github.com/louisboii747/hwmon/internal/monitor"
)

// configCmd prints the effective configuration
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration hwmon would run with: the config file (if any),
HWMON_* environment overrides and global flags merged over the defaults.
The output is a valid config file.

Examples:
  hwmon config
  hwmon config > ~/.config/hwmon/config.yaml
  HWMON_ALERTS_CPU=75 hwmon config`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, path, err := loadSettings()
		if err != nil {
			return err
		}
		if len(cfg.Sections) == 0 {
			cfg.Sections = append([]string(nil), monitor.DefaultSections...)
		}

		out, err := config.Marshal(cfg)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		if path != "" {
			fmt.Fprintf(w, "# loaded from %s\n", path)
		} else {
			fmt.Fprintln(w, "# no config file found; defaults and environment only")
		}
		_, err = w.Write(out)
		return err
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
