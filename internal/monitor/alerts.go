package monitor

import (
	"fmt"
	"strings"
)

// Default alert thresholds.
const (
	DefaultCPUThreshold        = 90.0
	DefaultMemoryThreshold     = 90.0
	DefaultGPUTempThreshold    = 80.0
	DefaultBatteryLowThreshold = 20.0
)

// Thresholds configures when alerts fire. CPU, memory and GPU temperature
// alert above their value; the battery alerts below it while discharging.
type Thresholds struct {
	CPU        float64
	Memory     float64
	GPUTemp    float64
	BatteryLow float64

	// Hysteresis keeps an alert active until the value has recovered past
	// the threshold by this margin. Zero re-evaluates every cycle from scratch.
	Hysteresis float64
}

// DefaultThresholds returns the stock alert thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		CPU:        DefaultCPUThreshold,
		Memory:     DefaultMemoryThreshold,
		GPUTemp:    DefaultGPUTempThreshold,
		BatteryLow: DefaultBatteryLowThreshold,
	}
}

// Evaluator turns a Reading into alerts. It remembers which alerts were
// active on the previous cycle for hysteresis and is not safe for
// concurrent use.
type Evaluator struct {
	thresholds Thresholds
	active     map[string]bool
}

// NewEvaluator creates an evaluator with the given thresholds.
func NewEvaluator(t Thresholds) *Evaluator {
	return &Evaluator{
		thresholds: t,
		active:     make(map[string]bool),
	}
}

// Thresholds returns the configured thresholds.
func (e *Evaluator) Thresholds() Thresholds {
	return e.thresholds
}

// Evaluate returns the alerts for r in the order CPU, memory, GPU
// temperature, battery. An empty result means everything is nominal.
func (e *Evaluator) Evaluate(r Reading) []Alert {
	t := e.thresholds
	next := make(map[string]bool)
	var alerts []Alert

	if e.above(next, MetricCPU, r.CPUPercent, t.CPU) {
		alerts = append(alerts, Alert{
			Metric:    MetricCPU,
			Value:     r.CPUPercent,
			Threshold: t.CPU,
			Message:   fmt.Sprintf("⚠️ CPU Usage High: %.1f%%", r.CPUPercent),
		})
	}

	if e.above(next, MetricMemory, r.MemoryPercent, t.Memory) {
		alerts = append(alerts, Alert{
			Metric:    MetricMemory,
			Value:     r.MemoryPercent,
			Threshold: t.Memory,
			Message:   fmt.Sprintf("⚠️ Memory Usage High: %.1f%%", r.MemoryPercent),
		})
	}

	for _, temp := range r.Temperatures {
		if !IsGPUSensor(temp.Sensor) {
			continue
		}
		if e.above(next, "gpu_temp:"+temp.Sensor, temp.Celsius, t.GPUTemp) {
			alerts = append(alerts, Alert{
				Metric:    "gpu_temp",
				Value:     temp.Celsius,
				Threshold: t.GPUTemp,
				Message:   fmt.Sprintf("⚠️ GPU Temp High: %.1f °C", temp.Celsius),
			})
		}
	}

	if b := r.Battery; b != nil && !b.Plugged && e.below(next, "battery", b.Percent, t.BatteryLow) {
		alerts = append(alerts, Alert{
			Metric:    "battery",
			Value:     b.Percent,
			Threshold: t.BatteryLow,
			Message:   fmt.Sprintf("⚠️ Battery Low: %.1f%%", b.Percent),
		})
	}

	e.active = next
	return alerts
}

func (e *Evaluator) above(next map[string]bool, key string, value, threshold float64) bool {
	firing := value > threshold ||
		(e.active[key] && e.thresholds.Hysteresis > 0 && value > threshold-e.thresholds.Hysteresis)
	next[key] = firing
	return firing
}

func (e *Evaluator) below(next map[string]bool, key string, value, threshold float64) bool {
	firing := value < threshold ||
		(e.active[key] && e.thresholds.Hysteresis > 0 && value < threshold+e.thresholds.Hysteresis)
	next[key] = firing
	return firing
}

// IsGPUSensor reports whether a temperature sensor key belongs to a
// graphics card (amdgpu, nouveau, nvidia or anything labelled gpu).
func IsGPUSensor(key string) bool {
	k := strings.ToLower(key)
	return strings.Contains(k, "gpu") ||
		strings.Contains(k, "nvidia") ||
		strings.Contains(k, "nouveau")
}

// AlertMessages returns the message of every alert.
func AlertMessages(alerts []Alert) []string {
	msgs := make([]string, 0, len(alerts))
	for _, a := range alerts {
		msgs = append(msgs, a.Message)
	}
	return msgs
}
