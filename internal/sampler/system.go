package sampler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/klauspost/cpuid/v2"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/net"

	"github.com/louisboii747/hwmon/internal/logger"
)

// System samples the local machine through gopsutil and friends.
type System struct {
	// HwmonRoot is the sysfs directory scanned for fan sensors.
	HwmonRoot string

	log   logger.Logger
	procs *processTable
}

// NewSystem creates a sampler for the local machine.
func NewSystem(log logger.Logger) *System {
	if log == nil {
		log = logger.Noop()
	}
	return &System{
		HwmonRoot: DefaultHwmonRoot,
		log:       log,
		procs:     newProcessTable(),
	}
}

// CPU returns the processor description. The brand string comes from CPUID
// where the architecture supports it, and from the OS otherwise.
func (s *System) CPU(ctx context.Context) (CPU, error) {
	info := CPU{
		Model:         strings.TrimSpace(cpuid.CPU.BrandName),
		PhysicalCores: cpuid.CPU.PhysicalCores,
		LogicalCores:  cpuid.CPU.LogicalCores,
	}

	stats, err := cpu.InfoWithContext(ctx)
	if err != nil {
		s.log.Debug("cpu info: %v", err)
	}
	if len(stats) > 0 {
		if info.Model == "" {
			info.Model = strings.TrimSpace(stats[0].ModelName)
		}
		info.MHz = stats[0].Mhz
	}

	if info.PhysicalCores == 0 {
		if n, err := cpu.CountsWithContext(ctx, false); err == nil {
			info.PhysicalCores = n
		}
	}
	if info.LogicalCores == 0 {
		if n, err := cpu.CountsWithContext(ctx, true); err == nil {
			info.LogicalCores = n
		}
	}

	if info.Model == "" && info.LogicalCores == 0 {
		if err != nil {
			return CPU{}, err
		}
		return CPU{}, ErrUnavailable
	}
	return info, nil
}

// CPUPercent returns system-wide utilisation since the previous call.
func (s *System) CPUPercent(ctx context.Context) (float64, error) {
	pct, err := cpu.PercentWithContext(ctx, 0, false)
	if err != nil {
		return 0, err
	}
	if len(pct) == 0 {
		return 0, ErrUnavailable
	}
	return pct[0], nil
}

// Memory returns physical memory usage.
func (s *System) Memory(ctx context.Context) (Memory, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return Memory{}, err
	}
	return Memory{
		Total:     vm.Total,
		Used:      vm.Used,
		Available: vm.Available,
		Percent:   vm.UsedPercent,
	}, nil
}

// Swap returns swap usage.
func (s *System) Swap(ctx context.Context) (Swap, error) {
	sw, err := mem.SwapMemoryWithContext(ctx)
	if err != nil {
		return Swap{}, err
	}
	return Swap{
		Total:   sw.Total,
		Used:    sw.Used,
		Percent: sw.UsedPercent,
	}, nil
}

// Disk returns filesystem usage for the given mount point.
func (s *System) Disk(ctx context.Context, path string) (DiskUsage, error) {
	u, err := disk.UsageWithContext(ctx, path)
	if err != nil {
		return DiskUsage{}, err
	}
	return DiskUsage{
		Path:    path,
		Total:   u.Total,
		Used:    u.Used,
		Free:    u.Free,
		Percent: u.UsedPercent,
	}, nil
}

// Partitions returns physical mounted filesystems.
func (s *System) Partitions(ctx context.Context) ([]Partition, error) {
	parts, err := disk.PartitionsWithContext(ctx, false)
	if err != nil && len(parts) == 0 {
		return nil, err
	}

	out := make([]Partition, 0, len(parts))
	for _, p := range parts {
		out = append(out, Partition{
			Device:     p.Device,
			Mountpoint: p.Mountpoint,
			Fstype:     p.Fstype,
		})
	}
	return out, nil
}

// DiskIO returns read/write totals summed over every block device.
func (s *System) DiskIO(ctx context.Context) (DiskIO, error) {
	counters, err := disk.IOCountersWithContext(ctx)
	if err != nil {
		return DiskIO{}, err
	}
	if len(counters) == 0 {
		return DiskIO{}, ErrUnavailable
	}

	var total DiskIO
	for _, c := range counters {
		total.ReadBytes += c.ReadBytes
		total.WriteBytes += c.WriteBytes
	}
	return total, nil
}

// Network returns per-interface traffic counters.
func (s *System) Network(ctx context.Context) ([]NetInterface, error) {
	counters, err := net.IOCountersWithContext(ctx, true)
	if err != nil {
		return nil, err
	}

	out := make([]NetInterface, 0, len(counters))
	for _, c := range counters {
		out = append(out, NetInterface{
			Name:      c.Name,
			BytesSent: c.BytesSent,
			BytesRecv: c.BytesRecv,
		})
	}
	return out, nil
}

// Processes returns every process that could be inspected. Processes that
// exit or deny access while being read are skipped. CPU percent covers the
// interval since the previous call.
func (s *System) Processes(ctx context.Context) ([]Process, error) {
	return s.procs.sample(ctx)
}

// Temperatures returns every temperature sensor. gopsutil reports partial
// failures as warnings alongside valid readings; those are kept.
func (s *System) Temperatures(ctx context.Context) ([]Temperature, error) {
	temps, err := host.SensorsTemperaturesWithContext(ctx)
	if len(temps) == 0 {
		if err != nil {
			return nil, err
		}
		return nil, ErrUnavailable
	}
	if err != nil {
		s.log.Debug("sensor warnings: %v", err)
	}

	out := make([]Temperature, 0, len(temps))
	for _, t := range temps {
		out = append(out, Temperature{Sensor: t.SensorKey, Celsius: t.Temperature})
	}
	return out, nil
}

// Host returns operating system information.
func (s *System) Host(ctx context.Context) (Host, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return Host{}, err
	}
	return Host{
		Hostname:        info.Hostname,
		OS:              info.OS,
		Platform:        info.Platform,
		PlatformVersion: info.PlatformVersion,
		Kernel:          info.KernelVersion,
		Arch:            info.KernelArch,
		Uptime:          time.Duration(info.Uptime) * time.Second,
	}, nil
}

// String implements fmt.Stringer for debug output.
func (s *System) String() string {
	return fmt.Sprintf("sampler.System{hwmon=%s}", s.HwmonRoot)
}
