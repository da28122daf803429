package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/louisboii747/hwmon/internal/config"
	"github.com/louisboii747/hwmon/internal/errors"
	"github.com/louisboii747/hwmon/internal/logger"
	"github.com/louisboii747/hwmon/internal/monitor"
	"github.com/louisboii747/hwmon/internal/probe"
	"github.com/louisboii747/hwmon/internal/sampler"
)

// Factories for the data sources. Tests swap them for fakes.
var (
	newSampler = func(log logger.Logger) sampler.Sampler {
		return sampler.NewSystem(log)
	}
	newRunner = func() probe.Runner {
		return probe.LocalRunner{}
	}
)

// loadSettings resolves the config file, environment and global flags into
// one validated Config. The returned path is empty when no file was found.
func loadSettings() (*config.Config, string, error) {
	cfg, path, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return nil, "", err
	}

	if intervalFlag != "" {
		d, err := time.ParseDuration(intervalFlag)
		if err != nil {
			return nil, "", errors.WrapWithCode(err, errors.ErrConfig,
				fmt.Sprintf("'%s' doesn't look like a valid interval", intervalFlag),
				"Try something like 1s, 500ms, or 2s.")
		}
		cfg.Interval = d
	}
	if themeFlag != "" {
		cfg.Theme = strings.ToLower(strings.TrimSpace(themeFlag))
	}
	if noUpdateCheck || os.Getenv(NoUpdateCheckEnv) == "1" {
		cfg.UpdateCheck.Enabled = false
	}

	err = config.Validate(cfg,
		config.WithThemes(monitor.NewThemeSet().Names()),
		config.WithSectionValidator(monitor.DefaultRegistry().Validate),
	)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

// newMonitor wires the sampler, prober and update checker into a Monitor.
func newMonitor(cfg *config.Config, log logger.Logger) (*monitor.Monitor, error) {
	var updater *monitor.UpdateChecker
	if cfg.UpdateCheck.Enabled {
		updater = monitor.NewUpdateChecker(version, cfg.UpdateCheck.URL, cfg.UpdateCheck.Interval,
			monitor.WithUpdateLogger(log))
	}

	return monitor.New(newSampler(log), probe.New(newRunner(), probe.WithLogger(log)), monitor.Options{
		Version:     version,
		DiskPath:    cfg.DiskPath,
		TopN:        cfg.TopProcesses,
		BarWidth:    cfg.BarWidth,
		HistorySize: cfg.HistorySize,
		Thresholds: monitor.Thresholds{
			CPU:        cfg.Alerts.CPU,
			Memory:     cfg.Alerts.Memory,
			GPUTemp:    cfg.Alerts.GPUTemp,
			BatteryLow: cfg.Alerts.BatteryLow,
			Hysteresis: cfg.Alerts.Hysteresis,
		},
		Sections: cfg.Sections,
		Updater:  updater,
		Log:      log,
	})
}

// newThemeSet returns the built-in themes with cfg.Theme selected.
func newThemeSet(cfg *config.Config) (*monitor.ThemeSet, error) {
	themes := monitor.NewThemeSet()
	if err := themes.Select(cfg.Theme); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Unknown theme '%s'", cfg.Theme),
			"Run 'hwmon themes' to list the available themes.")
	}
	return themes, nil
}
