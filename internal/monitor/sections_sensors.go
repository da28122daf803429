package monitor

import (
	"context"
	"fmt"
	"strings"

	"github.com/louisboii747/hwmon/internal/sampler"
)

func renderFans(ctx context.Context, env *Env, _ Reading) ([]string, error) {
	fans, err := env.Sampler.Fans(ctx)
	if err != nil {
		return nil, err
	}

	lines := make([]string, 0, len(fans))
	for _, f := range fans {
		lines = append(lines, fmt.Sprintf("%s %s: %d RPM", f.Chip, f.Sensor, f.RPM))
	}
	return lines, nil
}

// IsCPUSensor reports whether a sensor key is a CPU core or package sensor.
func IsCPUSensor(key string) bool {
	k := strings.ToLower(key)
	return strings.Contains(k, "coretemp") || strings.Contains(k, "k10temp") ||
		strings.Contains(k, "zenpower") || strings.HasPrefix(k, "core")
}

// IsMemorySensor reports whether a sensor key belongs to a memory module.
func IsMemorySensor(key string) bool {
	k := strings.ToLower(key)
	return strings.Contains(k, "memory") || strings.Contains(k, "ram") ||
		strings.Contains(k, "dimm") || strings.Contains(k, "jc42") ||
		strings.Contains(k, "spd5118")
}

// temperatureLines lists readings matching keep as "sensor: 45.0 °C".
func temperatureLines(r Reading, keep func(string) bool) ([]string, error) {
	if r.TemperatureErr != nil && len(r.Temperatures) == 0 {
		return nil, r.TemperatureErr
	}
	if len(r.Temperatures) == 0 {
		return nil, sampler.ErrUnavailable
	}

	var lines []string
	for _, t := range r.Temperatures {
		if keep(t.Sensor) {
			lines = append(lines, fmt.Sprintf("%s: %.1f °C", t.Sensor, t.Celsius))
		}
	}
	return lines, nil
}

func renderCPUTemps(_ context.Context, _ *Env, r Reading) ([]string, error) {
	return temperatureLines(r, IsCPUSensor)
}

func renderGPUTemps(_ context.Context, _ *Env, r Reading) ([]string, error) {
	return temperatureLines(r, IsGPUSensor)
}

func renderMemoryTemps(_ context.Context, _ *Env, r Reading) ([]string, error) {
	return temperatureLines(r, IsMemorySensor)
}
