package monitor

import (
	"context"
	"fmt"
	"os"
	"os/user"
	"strings"

	"github.com/louisboii747/hwmon/internal/sampler"
)

// resizableBARPath is the sysfs attribute present when the root port
// supports Resizable BAR.
var resizableBARPath = "/sys/bus/pci/devices/0000:00:01.0/resizable_bar"

func renderSystem(ctx context.Context, env *Env, r Reading) ([]string, error) {
	s := env.Sampler
	h, err := s.Host(ctx)
	if err != nil {
		return nil, err
	}

	lines := []string{
		fmt.Sprintf("OS/Kernel Version: %s %s", h.OS, h.Kernel),
		fmt.Sprintf("Architecture: %s", h.Arch),
	}

	if c, err := s.CPU(ctx); err == nil {
		lines = append(lines,
			fmt.Sprintf("CPU: %s", orUnknown(c.Model)),
			fmt.Sprintf("CPU Frequency: %.2f MHz", c.MHz),
			fmt.Sprintf("CPU Cores: %d", c.PhysicalCores),
			fmt.Sprintf("Threads: %d", c.LogicalCores),
		)
	} else {
		lines = append(lines, "CPU: N/A")
	}

	if m, err := s.Memory(ctx); err == nil {
		lines = append(lines, "Memory: "+FormatGB(m.Total, 2))
	}
	if d, err := s.Disk(ctx, env.DiskPath); err == nil {
		lines = append(lines, "Disk: "+FormatGB(d.Total, 2))
	}

	lines = append(lines,
		fmt.Sprintf("Uptime: %.2f hours", h.Uptime.Hours()),
		"User: "+currentUser(),
		"Display Size: "+displaySize(env),
		"Filesystem: "+filesystemOf(ctx, s, env.DiskPath),
		"Resizable Bar: "+resizableBAR(),
	)

	if io, err := s.DiskIO(ctx); err == nil {
		lines = append(lines, fmt.Sprintf("Disk Activity: %.2f MB read, %.2f MB written",
			float64(io.ReadBytes)/(1024*1024), float64(io.WriteBytes)/(1024*1024)))
	}

	battery := "N/A"
	if r.Battery != nil {
		battery = batteryLine(*r.Battery)
	}
	lines = append(lines, "Battery: "+battery)
	return lines, nil
}

func currentUser() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "N/A"
}

func displaySize(env *Env) string {
	w, h, ok := env.DisplaySize()
	if !ok {
		return "N/A"
	}
	return fmt.Sprintf("%dx%d", w, h)
}

// filesystemOf returns the filesystem type mounted at path.
func filesystemOf(ctx context.Context, s sampler.Sampler, path string) string {
	parts, err := s.Partitions(ctx)
	if err != nil {
		return "N/A"
	}
	for _, p := range parts {
		if p.Mountpoint == path {
			return p.Fstype
		}
	}
	return "N/A"
}

func resizableBAR() string {
	if _, err := os.Stat(resizableBARPath); err == nil {
		return "Supported"
	}
	return "Not Supported"
}

func renderSwap(ctx context.Context, env *Env, _ Reading) ([]string, error) {
	sw, err := env.Sampler.Swap(ctx)
	if err != nil {
		return nil, err
	}
	return []string{fmt.Sprintf("Swap: %s, Used: %s (%s)",
		FormatGB(sw.Total, 2), FormatGB(sw.Used, 2), FormatPercent(sw.Percent))}, nil
}

func renderBoard(ctx context.Context, env *Env, _ Reading) ([]string, error) {
	b, err := env.Sampler.Board(ctx)
	if err != nil {
		return nil, err
	}
	return []string{
		"Manufacturer: " + orNA(b.Vendor),
		"Product Name: " + orNA(b.Product),
		"Version: " + orNA(b.Version),
		"Serial Number: " + orNA(b.Serial),
	}, nil
}

func renderOS(ctx context.Context, env *Env, _ Reading) ([]string, error) {
	h, err := env.Sampler.Host(ctx)
	if err != nil {
		return nil, err
	}

	version := strings.TrimSpace(h.Platform + " " + h.PlatformVersion)
	switch h.OS {
	case "linux":
		return []string{"Distribution: " + orUnknown(version)}, nil
	case "windows":
		return []string{"Windows Version: " + orUnknown(h.PlatformVersion)}, nil
	case "darwin":
		return []string{"macOS Version: " + orUnknown(h.PlatformVersion)}, nil
	}
	return []string{fmt.Sprintf("%s %s", h.OS, orUnknown(version))}, nil
}

// batteryLine renders "80.0% (Charging) - Time left: N/A".
func batteryLine(b sampler.Battery) string {
	return fmt.Sprintf("%s (%s) - Time left: %s", FormatPercent(b.Percent), b.State(), b.TimeLeft())
}

func renderBattery(_ context.Context, _ *Env, r Reading) ([]string, error) {
	if r.Battery == nil {
		if r.BatteryErr != nil {
			return nil, r.BatteryErr
		}
		return nil, sampler.ErrUnavailable
	}
	return []string{batteryLine(*r.Battery)}, nil
}

func renderSummary(ctx context.Context, env *Env, r Reading) ([]string, error) {
	s := env.Sampler

	cpuName := "Unknown"
	if c, err := s.CPU(ctx); err == nil && c.Model != "" {
		cpuName = c.Model
	}

	ram := "N/A"
	if m, err := s.Memory(ctx); err == nil {
		ram = FormatGB(m.Total, 1)
	}
	disk := "N/A"
	if d, err := s.Disk(ctx, env.DiskPath); err == nil {
		disk = FormatGB(d.Total, 1)
	}

	return []string{
		"CPU  : " + cpuName,
		"GPU  : " + gpuName(ctx, env),
		"RAM  : " + ram,
		"Disk : " + disk,
		"",
		"CPU Usage   : " + FormatPercent(r.CPUPercent),
		"Memory Usage: " + FormatPercent(r.MemoryPercent),
		"Disk Usage  : " + FormatPercent(r.DiskPercent),
	}, nil
}

// gpuName prefers the first dedicated adapter from lspci and falls back to
// the PCI database.
func gpuName(ctx context.Context, env *Env) string {
	if gpus, err := env.Probe.GPUs(ctx); err == nil && len(gpus) > 0 {
		desc := gpus[0].Description
		if i := strings.LastIndex(desc, ":"); i >= 0 {
			desc = desc[i+1:]
		}
		if desc = strings.TrimSpace(desc); desc != "" {
			return desc
		}
	}
	if names, err := env.Sampler.GPUNames(ctx); err == nil && len(names) > 0 {
		return names[0]
	}
	return "Unknown"
}

func orNA(v string) string {
	if strings.TrimSpace(v) == "" {
		return "N/A"
	}
	return v
}

func orUnknown(v string) string {
	if strings.TrimSpace(v) == "" {
		return "Unknown"
	}
	return v
}
