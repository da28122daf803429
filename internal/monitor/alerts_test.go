package monitor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/louisboii747/hwmon/internal/sampler"
)

func TestEvaluate_Nominal(t *testing.T) {
	e := NewEvaluator(DefaultThresholds())
	alerts := e.Evaluate(Reading{
		CPUPercent:    50,
		MemoryPercent: 50,
		Battery:       &sampler.Battery{Percent: 80},
	})
	assert.Empty(t, alerts)
}

func TestEvaluate_CPUOnly(t *testing.T) {
	e := NewEvaluator(DefaultThresholds())
	alerts := e.Evaluate(Reading{
		CPUPercent:    95,
		MemoryPercent: 50,
		Battery:       &sampler.Battery{Percent: 80},
	})

	require.Len(t, alerts, 1)
	assert.Equal(t, "⚠️ CPU Usage High: 95.0%", alerts[0].Message)
	assert.Equal(t, MetricCPU, alerts[0].Metric)
	assert.Equal(t, 90.0, alerts[0].Threshold)
}

func TestEvaluate_ThresholdIsExclusive(t *testing.T) {
	e := NewEvaluator(DefaultThresholds())
	assert.Empty(t, e.Evaluate(Reading{CPUPercent: 90, MemoryPercent: 90}))
}

func TestEvaluate_Order(t *testing.T) {
	e := NewEvaluator(DefaultThresholds())
	alerts := e.Evaluate(Reading{
		CPUPercent:    99,
		MemoryPercent: 91.24,
		Temperatures: []sampler.Temperature{
			{Sensor: "coretemp_package_id_0", Celsius: 99},
			{Sensor: "amdgpu_edge", Celsius: 84},
			{Sensor: "nvidia_gpu0", Celsius: 60},
		},
		Battery: &sampler.Battery{Percent: 12},
	})

	assert.Equal(t, []string{
		"⚠️ CPU Usage High: 99.0%",
		"⚠️ Memory Usage High: 91.2%",
		"⚠️ GPU Temp High: 84.0 °C",
		"⚠️ Battery Low: 12.0%",
	}, AlertMessages(alerts))
}

func TestEvaluate_BatteryPluggedDoesNotAlert(t *testing.T) {
	e := NewEvaluator(DefaultThresholds())
	alerts := e.Evaluate(Reading{Battery: &sampler.Battery{Percent: 5, Plugged: true}})
	assert.Empty(t, alerts)
}

func TestEvaluate_NoBattery(t *testing.T) {
	e := NewEvaluator(DefaultThresholds())
	assert.Empty(t, e.Evaluate(Reading{}))
}

func TestEvaluate_CustomThresholds(t *testing.T) {
	e := NewEvaluator(Thresholds{CPU: 50, Memory: 100, GPUTemp: 100, BatteryLow: 0})
	alerts := e.Evaluate(Reading{CPUPercent: 60, MemoryPercent: 99})
	require.Len(t, alerts, 1)
	assert.Equal(t, MetricCPU, alerts[0].Metric)
}

func TestEvaluate_NoHysteresisFlaps(t *testing.T) {
	e := NewEvaluator(DefaultThresholds())
	assert.Len(t, e.Evaluate(Reading{CPUPercent: 91}), 1)
	assert.Empty(t, e.Evaluate(Reading{CPUPercent: 89}))
	assert.Len(t, e.Evaluate(Reading{CPUPercent: 91}), 1)
}

func TestEvaluate_Hysteresis(t *testing.T) {
	th := DefaultThresholds()
	th.Hysteresis = 5
	e := NewEvaluator(th)

	// Not yet active: 88 is below the threshold.
	assert.Empty(t, e.Evaluate(Reading{CPUPercent: 88}))

	assert.Len(t, e.Evaluate(Reading{CPUPercent: 91}), 1)
	// Stays active inside the margin.
	assert.Len(t, e.Evaluate(Reading{CPUPercent: 88}), 1)
	// Clears once recovered past threshold - hysteresis.
	assert.Empty(t, e.Evaluate(Reading{CPUPercent: 84}))
	assert.Empty(t, e.Evaluate(Reading{CPUPercent: 88}))
}

func TestEvaluate_BatteryHysteresis(t *testing.T) {
	th := DefaultThresholds()
	th.Hysteresis = 3
	e := NewEvaluator(th)

	assert.Len(t, e.Evaluate(Reading{Battery: &sampler.Battery{Percent: 19}}), 1)
	assert.Len(t, e.Evaluate(Reading{Battery: &sampler.Battery{Percent: 22}}), 1)
	assert.Empty(t, e.Evaluate(Reading{Battery: &sampler.Battery{Percent: 24}}))
}

func TestIsGPUSensor(t *testing.T) {
	assert.True(t, IsGPUSensor("amdgpu_edge"))
	assert.True(t, IsGPUSensor("nouveau_temp1"))
	assert.True(t, IsGPUSensor("NVIDIA_GPU"))
	assert.False(t, IsGPUSensor("coretemp_core_0"))
	assert.False(t, IsGPUSensor("nvme_composite"))
}
