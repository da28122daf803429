package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/louisboii747/hwmon/internal/errors"
	"github.com/louisboii747/hwmon/internal/util"
)

// Bounds for numeric settings.
const (
	MinInterval    = 100 * time.Millisecond
	MaxHistorySize = 3600
	MaxBarWidth    = 500
)

// ValidationOption controls validation behavior.
type ValidationOption func(*validationContext)

type validationContext struct {
	themes   []string
	sections func([]string) error
}

// WithThemes restricts theme to one of names (case-insensitive).
func WithThemes(names []string) ValidationOption {
	return func(c *validationContext) {
		c.themes = names
	}
}

// WithSectionValidator checks the sections list, typically against the
// monitor's section registry.
func WithSectionValidator(fn func([]string) error) ValidationOption {
	return func(c *validationContext) {
		c.sections = fn
	}
}

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config, opts ...ValidationOption) error {
	if cfg == nil {
		return errors.New(errors.ErrConfig,
			"Config is nil",
			"This is unexpected - try running the command again.")
	}

	ctx := &validationContext{}
	for _, opt := range opts {
		opt(ctx)
	}

	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but hwmon only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Grab the latest hwmon: https://github.com/louisboii747/HardwareMon/releases")
	}

	if err := validateDisplay(cfg); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the top-level settings in your config file.")
	}

	if err := validateAlerts(cfg.Alerts); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'alerts' section in your config file.")
	}

	if err := validateUpdateCheck(cfg.UpdateCheck); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'update_check' section in your config file.")
	}

	if len(ctx.themes) > 0 && !containsFold(ctx.themes, cfg.Theme) {
		hint := fmt.Sprintf("Available themes: %s", strings.Join(ctx.themes, ", "))
		if dym := util.DidYouMean(util.SuggestSimilar(cfg.Theme, ctx.themes, 3)); dym != "" {
			hint = dym + " " + hint
		}
		return errors.New(errors.ErrConfig, fmt.Sprintf("Unknown theme '%s'", cfg.Theme), hint)
	}

	if err := validateSections(cfg.Sections); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Run 'hwmon sections' to list the available sections.")
	}
	if ctx.sections != nil && len(cfg.Sections) > 0 {
		if err := ctx.sections(cfg.Sections); err != nil {
			return err
		}
	}

	return nil
}

// validateDisplay checks the refresh and layout settings.
func validateDisplay(cfg *Config) error {
	if cfg.Interval < MinInterval {
		return fmt.Errorf("interval %s is too short (minimum %s)", cfg.Interval, MinInterval)
	}
	if cfg.HistorySize < 1 || cfg.HistorySize > MaxHistorySize {
		return fmt.Errorf("history_size must be between 1 and %d, got %d", MaxHistorySize, cfg.HistorySize)
	}
	if cfg.BarWidth < 1 || cfg.BarWidth > MaxBarWidth {
		return fmt.Errorf("bar_width must be between 1 and %d, got %d", MaxBarWidth, cfg.BarWidth)
	}
	if cfg.TopProcesses < 1 {
		return fmt.Errorf("top_processes must be at least 1, got %d", cfg.TopProcesses)
	}
	if strings.TrimSpace(cfg.DiskPath) == "" {
		return fmt.Errorf("disk_path can't be empty")
	}
	return nil
}

// validateAlerts checks that thresholds are in range.
func validateAlerts(a AlertsConfig) error {
	if err := validatePercent("alerts.cpu", a.CPU); err != nil {
		return err
	}
	if err := validatePercent("alerts.memory", a.Memory); err != nil {
		return err
	}
	if err := validatePercent("alerts.battery_low", a.BatteryLow); err != nil {
		return err
	}
	if a.GPUTemp <= 0 || a.GPUTemp > 150 {
		return fmt.Errorf("alerts.gpu_temp must be between 0 and 150 °C, got %g", a.GPUTemp)
	}
	if a.Hysteresis < 0 {
		return fmt.Errorf("alerts.hysteresis can't be negative, got %g", a.Hysteresis)
	}
	return nil
}

func validatePercent(key string, v float64) error {
	if v < 0 || v > 100 {
		return fmt.Errorf("%s must be between 0 and 100, got %g", key, v)
	}
	return nil
}

// validateUpdateCheck requires an http(s) URL when the check is enabled.
func validateUpdateCheck(u UpdateCheckConfig) error {
	if u.Interval < 0 {
		return fmt.Errorf("update_check.interval can't be negative, got %s", u.Interval)
	}
	if !u.Enabled {
		return nil
	}
	parsed, err := url.Parse(u.URL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return fmt.Errorf("update_check.url must be an http(s) URL, got '%s'", u.URL)
	}
	return nil
}

// validateSections rejects blank and duplicate entries.
func validateSections(sections []string) error {
	seen := make(map[string]bool, len(sections))
	for i, s := range sections {
		if s == "" {
			return fmt.Errorf("sections has an empty entry at position %d", i)
		}
		if seen[s] {
			return fmt.Errorf("section '%s' is listed more than once", s)
		}
		seen[s] = true
	}
	return nil
}

func containsFold(list []string, s string) bool {
	for _, item := range list {
		if strings.EqualFold(item, s) {
			return true
		}
	}
	return false
}
