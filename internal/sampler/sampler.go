// Package sampler reads operating-system and hardware metrics at the moment
// of the call. Nothing is cached: every method re-queries the OS so callers
// always see fresh values.
package sampler

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrUnavailable reports that the platform does not expose a metric
// (no battery, no sensors, no hwmon directory).
var ErrUnavailable = errors.New("not available")

// Sampler is the source of every metric hwmon displays.
type Sampler interface {
	CPU(ctx context.Context) (CPU, error)
	CPUPercent(ctx context.Context) (float64, error)
	Memory(ctx context.Context) (Memory, error)
	Swap(ctx context.Context) (Swap, error)
	Disk(ctx context.Context, path string) (DiskUsage, error)
	Partitions(ctx context.Context) ([]Partition, error)
	DiskIO(ctx context.Context) (DiskIO, error)
	Network(ctx context.Context) ([]NetInterface, error)
	Processes(ctx context.Context) ([]Process, error)
	Temperatures(ctx context.Context) ([]Temperature, error)
	Fans(ctx context.Context) ([]Fan, error)
	Battery(ctx context.Context) (Battery, error)
	Board(ctx context.Context) (Board, error)
	GPUNames(ctx context.Context) ([]string, error)
	Host(ctx context.Context) (Host, error)
}

// CPU describes the processor.
type CPU struct {
	Model         string
	PhysicalCores int
	LogicalCores  int
	MHz           float64
}

// Memory contains physical memory usage.
type Memory struct {
	Total     uint64
	Used      uint64
	Available uint64
	Percent   float64
}

// Swap contains swap usage.
type Swap struct {
	Total   uint64
	Used    uint64
	Percent float64
}

// DiskUsage contains filesystem usage for one mount point.
type DiskUsage struct {
	Path    string
	Total   uint64
	Used    uint64
	Free    uint64
	Percent float64
}

// Partition is a mounted filesystem.
type Partition struct {
	Device     string
	Mountpoint string
	Fstype     string
}

// DiskIO holds cumulative disk traffic across all devices.
type DiskIO struct {
	ReadBytes  uint64
	WriteBytes uint64
}

// NetInterface holds cumulative traffic for one network interface.
type NetInterface struct {
	Name      string
	BytesSent uint64
	BytesRecv uint64
}

// Process is a running process with its resource usage.
type Process struct {
	Name          string
	CPUPercent    float64
	MemoryPercent float64
}

// Temperature is one sensor reading. Sensor is the platform key, for
// example "coretemp_package_id_0" or "amdgpu_edge".
type Temperature struct {
	Sensor  string
	Celsius float64
}

// Fan is one fan speed reading.
type Fan struct {
	Chip   string
	Sensor string
	RPM    int
}

// Battery time-remaining sentinels.
const (
	// TimeUnknown means the discharge rate is not known.
	TimeUnknown int64 = -1
	// TimeUnlimited means the machine is on external power.
	TimeUnlimited int64 = -2
)

// Battery contains charge state. SecondsLeft is either a positive duration
// or one of TimeUnknown / TimeUnlimited.
type Battery struct {
	Percent     float64
	Plugged     bool
	SecondsLeft int64
}

// TimeLeft converts SecondsLeft into display text, turning the sentinel
// values into "N/A" and "Unknown".
func (b Battery) TimeLeft() string {
	switch {
	case b.SecondsLeft == TimeUnlimited:
		return "N/A"
	case b.SecondsLeft < 0:
		return "Unknown"
	}
	hours := b.SecondsLeft / 3600
	minutes := (b.SecondsLeft % 3600) / 60
	return fmt.Sprintf("%dh %dm", hours, minutes)
}

// State returns "Charging" or "Discharging".
func (b Battery) State() string {
	if b.Plugged {
		return "Charging"
	}
	return "Discharging"
}

// Board identifies the motherboard.
type Board struct {
	Vendor  string
	Product string
	Version string
	Serial  string
}

// Host contains operating system information.
type Host struct {
	Hostname        string
	OS              string
	Platform        string
	PlatformVersion string
	Kernel          string
	Arch            string
	Uptime          time.Duration
}
