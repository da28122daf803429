package monitor

import (
	"context"
	"fmt"
	"sort"

	"github.com/louisboii747/hwmon/internal/sampler"
)

func renderNetwork(ctx context.Context, env *Env, _ Reading) ([]string, error) {
	ifaces, err := env.Sampler.Network(ctx)
	if err != nil {
		return nil, err
	}

	lines := make([]string, 0, len(ifaces))
	for _, n := range ifaces {
		lines = append(lines, fmt.Sprintf("%-10s: Sent=%s | Recv=%s", n.Name, FormatMB(n.BytesSent), FormatMB(n.BytesRecv)))
	}
	return lines, nil
}

// TopProcesses returns the n busiest processes ordered by CPU, then memory,
// both descending.
func TopProcesses(procs []sampler.Process, n int) []sampler.Process {
	sorted := make([]sampler.Process, len(procs))
	copy(sorted, procs)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].CPUPercent != sorted[j].CPUPercent {
			return sorted[i].CPUPercent > sorted[j].CPUPercent
		}
		return sorted[i].MemoryPercent > sorted[j].MemoryPercent
	})
	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func renderProcesses(ctx context.Context, env *Env, _ Reading) ([]string, error) {
	procs, err := env.Sampler.Processes(ctx)
	if err != nil {
		return nil, err
	}

	var lines []string
	for _, p := range TopProcesses(procs, env.TopN) {
		lines = append(lines, fmt.Sprintf("%-25s | CPU: %5.1f%% | MEM: %5.1f%%", truncate(p.Name, 25), p.CPUPercent, p.MemoryPercent))
	}
	return lines, nil
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func renderCPUMemBar(_ context.Context, env *Env, r Reading) ([]string, error) {
	return []string{
		GaugeLine("CPU", r.CPUPercent, env.BarWidth),
		GaugeLine("MEM", r.MemoryPercent, env.BarWidth),
	}, nil
}

// renderDrives lists usage for every mounted partition, skipping mounts
// that cannot be read (permission denied, vanished).
func renderDrives(ctx context.Context, env *Env, _ Reading) ([]string, error) {
	parts, err := env.Sampler.Partitions(ctx)
	if err != nil {
		return nil, err
	}

	var lines []string
	for _, p := range parts {
		u, err := env.Sampler.Disk(ctx, p.Mountpoint)
		if err != nil {
			env.Log.Debug("disk usage %s: %v", p.Mountpoint, err)
			continue
		}
		lines = append(lines, fmt.Sprintf("%-15s %4d / %4d GB (%5.1f%%)",
			p.Mountpoint, u.Used/bytesPerGB, u.Total/bytesPerGB, u.Percent))
	}
	return lines, nil
}

func renderPartitions(ctx context.Context, env *Env, _ Reading) ([]string, error) {
	parts, err := env.Sampler.Partitions(ctx)
	if err != nil {
		return nil, err
	}

	lines := make([]string, 0, len(parts))
	for _, p := range parts {
		lines = append(lines, fmt.Sprintf("%s mounted on %s - Type: %s", p.Device, p.Mountpoint, p.Fstype))
	}
	return lines, nil
}
