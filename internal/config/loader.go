package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/louisboii747/hwmon/internal/errors"
)

const (
	// ConfigFileName is the per-directory config file name.
	ConfigFileName = ".hwmon.yaml"
	// GlobalConfigDir is the directory for global config, relative to home.
	GlobalConfigDir = ".config/hwmon"
	// GlobalConfigFile is the global config file name.
	GlobalConfigFile = "config.yaml"
	// EnvPrefix prefixes environment overrides, e.g. HWMON_ALERTS_CPU=80.
	EnvPrefix = "HWMON"
)

// Load reads config from the specified path. Environment overrides apply
// on top of the file.
func Load(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Config file not found",
				"Create one, or point --config at an existing file")
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file",
			"Check the file exists and is valid YAML")
	}

	return parseConfig(v, path)
}

// Find locates the config file using the search order:
// 1. Explicit path (from --config flag)
// 2. .hwmon.yaml in the current directory
// 3. ~/.config/hwmon/config.yaml
//
// Returns the path to the config file, or empty string if not found.
func Find(explicit string) (string, error) {
	if explicit != "" {
		explicit = ExpandTilde(explicit)
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine current directory",
			"Check directory permissions")
	}

	localConfig := filepath.Join(cwd, ConfigFileName)
	if _, err := os.Stat(localConfig); err == nil {
		return localConfig, nil
	}

	if home, _ := os.UserHomeDir(); home != "" {
		globalConfig := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
		if _, err := os.Stat(globalConfig); err == nil {
			return globalConfig, nil
		}
	}

	return "", nil
}

// LoadOrDefault loads the config found by Find(explicit), or the defaults
// plus environment overrides when there is no file. The returned path is
// empty in the latter case.
func LoadOrDefault(explicit string) (*Config, string, error) {
	path, err := Find(explicit)
	if err != nil {
		return nil, "", err
	}

	if path == "" {
		cfg, err := parseConfig(newViper(), "environment")
		return cfg, "", err
	}

	cfg, err := Load(path)
	return cfg, path, err
}

// Marshal renders cfg as YAML, the format Load reads.
func Marshal(cfg *Config) ([]byte, error) {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to encode config", "")
	}
	return out, nil
}

// newViper returns a viper instance with every key defaulted and bound to
// its HWMON_ environment variable.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	// sections has no default, so AutomaticEnv alone would never see it.
	_ = v.BindEnv("sections")
	return v
}

// setDefaults registers DefaultConfig with viper. Unmarshal only visits
// keys viper knows about, so env overrides need these.
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("version", d.Version)
	v.SetDefault("interval", d.Interval)
	v.SetDefault("history_size", d.HistorySize)
	v.SetDefault("bar_width", d.BarWidth)
	v.SetDefault("disk_path", d.DiskPath)
	v.SetDefault("top_processes", d.TopProcesses)
	v.SetDefault("theme", d.Theme)
	v.SetDefault("start_in_summary", d.StartInSummary)
	v.SetDefault("alerts.cpu", d.Alerts.CPU)
	v.SetDefault("alerts.memory", d.Alerts.Memory)
	v.SetDefault("alerts.gpu_temp", d.Alerts.GPUTemp)
	v.SetDefault("alerts.battery_low", d.Alerts.BatteryLow)
	v.SetDefault("alerts.hysteresis", d.Alerts.Hysteresis)
	v.SetDefault("update_check.enabled", d.UpdateCheck.Enabled)
	v.SetDefault("update_check.url", d.UpdateCheck.URL)
	v.SetDefault("update_check.interval", d.UpdateCheck.Interval)
}

// parseConfig converts viper config to our Config struct with defaults merged in.
func parseConfig(v *viper.Viper, source string) (*Config, error) {
	cfg := DefaultConfig()

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the YAML syntax in "+source)
	}

	cfg.DiskPath = ExpandPath(cfg.DiskPath)
	cfg.Theme = strings.ToLower(strings.TrimSpace(cfg.Theme))
	for i, s := range cfg.Sections {
		cfg.Sections[i] = strings.TrimSpace(s)
	}

	return cfg, nil
}
