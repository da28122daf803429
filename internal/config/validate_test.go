package config

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/louisboii747/hwmon/internal/errors"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"future version", func(c *Config) { c.Version = 99 }, "from the future"},
		{"interval too short", func(c *Config) { c.Interval = 10 * time.Millisecond }, "interval 10ms is too short"},
		{"interval at minimum", func(c *Config) { c.Interval = MinInterval }, ""},
		{"history too small", func(c *Config) { c.HistorySize = 0 }, "history_size"},
		{"history too large", func(c *Config) { c.HistorySize = MaxHistorySize + 1 }, "history_size"},
		{"bar width zero", func(c *Config) { c.BarWidth = 0 }, "bar_width"},
		{"top processes zero", func(c *Config) { c.TopProcesses = 0 }, "top_processes"},
		{"empty disk path", func(c *Config) { c.DiskPath = "  " }, "disk_path"},
		{"cpu above 100", func(c *Config) { c.Alerts.CPU = 101 }, "alerts.cpu"},
		{"memory negative", func(c *Config) { c.Alerts.Memory = -1 }, "alerts.memory"},
		{"battery above 100", func(c *Config) { c.Alerts.BatteryLow = 150 }, "alerts.battery_low"},
		{"gpu temp zero", func(c *Config) { c.Alerts.GPUTemp = 0 }, "alerts.gpu_temp"},
		{"negative hysteresis", func(c *Config) { c.Alerts.Hysteresis = -2 }, "alerts.hysteresis"},
		{"bad update url", func(c *Config) { c.UpdateCheck.URL = "ftp://example.com" }, "update_check.url"},
		{"bad url ignored when disabled", func(c *Config) {
			c.UpdateCheck.Enabled = false
			c.UpdateCheck.URL = ""
		}, ""},
		{"negative cache interval", func(c *Config) { c.UpdateCheck.Interval = -time.Second }, "update_check.interval"},
		{"duplicate section", func(c *Config) { c.Sections = []string{"gpu", "wifi", "gpu"} }, "listed more than once"},
		{"blank section", func(c *Config) { c.Sections = []string{"gpu", ""} }, "empty entry at position 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrConfig))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_Nil(t *testing.T) {
	err := Validate(nil)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestValidate_WithThemes(t *testing.T) {
	themes := []string{"dark", "light"}

	cfg := DefaultConfig()
	cfg.Theme = "Light"
	assert.NoError(t, Validate(cfg, WithThemes(themes)))

	cfg.Theme = "solarized"
	err := Validate(cfg, WithThemes(themes))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unknown theme 'solarized'")
	assert.NotContains(t, err.Error(), "Did you mean")

	cfg.Theme = "ligt"
	err = Validate(cfg, WithThemes(themes))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Did you mean 'light'?")

	assert.NoError(t, Validate(cfg), "themes are not checked without the option")
}

func TestValidate_WithSectionValidator(t *testing.T) {
	var got []string
	check := func(names []string) error {
		got = names
		for _, n := range names {
			if n == "bogus" {
				return errors.New(errors.ErrConfig, fmt.Sprintf("Unknown section(s): [%s]", n), "")
			}
		}
		return nil
	}

	cfg := DefaultConfig()
	assert.NoError(t, Validate(cfg, WithSectionValidator(check)))
	assert.Nil(t, got, "empty sections select the defaults and skip the check")

	cfg.Sections = []string{"gpu", "bogus"}
	err := Validate(cfg, WithSectionValidator(check))
	require.Error(t, err)
	assert.Equal(t, []string{"gpu", "bogus"}, got)
	assert.Contains(t, err.Error(), "Unknown section(s): [bogus]")
}
