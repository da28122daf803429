package config

import "time"

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// DefaultReleasesURL is where the update check looks for the latest release.
const DefaultReleasesURL = "https://api.github.com/repos/louisboii747/HardwareMon/releases/latest"

// Config represents the complete hwmon configuration.
type Config struct {
	Version int `yaml:"version" mapstructure:"version"`

	// Interval is the refresh period of both the dashboard and watch loops.
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`

	// HistorySize is how many samples the graphs keep per metric.
	HistorySize int `yaml:"history_size" mapstructure:"history_size"`

	// BarWidth is the width of the CPU/memory gauges in characters.
	BarWidth int `yaml:"bar_width" mapstructure:"bar_width"`

	// DiskPath is the mount point used for disk usage and the disk graph.
	// Supports ~ and ${HOME}.
	DiskPath string `yaml:"disk_path" mapstructure:"disk_path"`

	// TopProcesses is how many processes the processes section lists.
	TopProcesses int `yaml:"top_processes" mapstructure:"top_processes"`

	Theme          string `yaml:"theme" mapstructure:"theme"`
	StartInSummary bool   `yaml:"start_in_summary" mapstructure:"start_in_summary"`

	Alerts      AlertsConfig      `yaml:"alerts" mapstructure:"alerts"`
	UpdateCheck UpdateCheckConfig `yaml:"update_check" mapstructure:"update_check"`

	// Sections is the full-view section list, in display order. Empty
	// selects every built-in section.
	Sections []string `yaml:"sections" mapstructure:"sections"`
}

// AlertsConfig holds the alert thresholds.
type AlertsConfig struct {
	// CPU and Memory are usage percentages; an alert fires above them.
	CPU    float64 `yaml:"cpu" mapstructure:"cpu"`
	Memory float64 `yaml:"memory" mapstructure:"memory"`

	// GPUTemp is in degrees Celsius.
	GPUTemp float64 `yaml:"gpu_temp" mapstructure:"gpu_temp"`

	// BatteryLow fires below this charge percentage while unplugged.
	BatteryLow float64 `yaml:"battery_low" mapstructure:"battery_low"`

	// Hysteresis is how far a value must move back past a threshold before
	// an active alert clears. Zero clears as soon as the condition stops.
	Hysteresis float64 `yaml:"hysteresis" mapstructure:"hysteresis"`
}

// UpdateCheckConfig controls the release check shown in the banner.
type UpdateCheckConfig struct {
	Enabled bool   `yaml:"enabled" mapstructure:"enabled"`
	URL     string `yaml:"url" mapstructure:"url"`

	// Interval is how long a lookup result is cached.
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version:        CurrentConfigVersion,
		Interval:       time.Second,
		HistorySize:    60,
		BarWidth:       50,
		DiskPath:       "/",
		TopProcesses:   5,
		Theme:          "dark",
		StartInSummary: true,
		Alerts: AlertsConfig{
			CPU:        90,
			Memory:     90,
			GPUTemp:    80,
			BatteryLow: 20,
		},
		UpdateCheck: UpdateCheckConfig{
			Enabled:  true,
			URL:      DefaultReleasesURL,
			Interval: 10 * time.Minute,
		},
	}
}
