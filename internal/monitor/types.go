package monitor

import (
	"time"

	"github.com/louisboii747/hwmon/internal/sampler"
)

// Metric names recorded in History.
const (
	MetricCPU    = "cpu"
	MetricMemory = "memory"
	MetricDisk   = "disk"
)

// Reading is the per-cycle sample shared by history, alerts and the gauge
// sections. CPU utilisation is measured since the previous call, so it is
// sampled once here and reused everywhere in the cycle.
type Reading struct {
	Time          time.Time
	CPUPercent    float64
	MemoryPercent float64
	DiskPercent   float64
	Temperatures  []sampler.Temperature

	// Battery is nil when the machine has none or it could not be read.
	Battery *sampler.Battery

	// Errors from the shared samples, surfaced by the sections that use them.
	TemperatureErr error
	BatteryErr     error
}

// Alert is a threshold breach found in a Reading.
type Alert struct {
	Metric    string
	Value     float64
	Threshold float64
	Message   string
}

// Frame is the output of one refresh cycle.
type Frame struct {
	Reading Reading
	Alerts  []Alert
	Banner  string
	Lines   []string
	Summary bool
}
