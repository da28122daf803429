package sampler

import (
	"context"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v3/process"
)

// processHandle is the part of *process.Process the table reads.
type processHandle interface {
	NameWithContext(ctx context.Context) (string, error)
	PercentWithContext(ctx context.Context, interval time.Duration) (float64, error)
	MemoryPercentWithContext(ctx context.Context) (float32, error)
}

// processTable keeps one handle per PID between samples so CPU percent is
// measured over the time since the previous sample, not the process
// lifetime. A process seen for the first time reports 0%.
type processTable struct {
	mu      sync.Mutex
	pids    func(ctx context.Context) ([]int32, error)
	open    func(ctx context.Context, pid int32) (processHandle, error)
	handles map[int32]processHandle
}

func newProcessTable() *processTable {
	return &processTable{
		pids: process.PidsWithContext,
		open: func(ctx context.Context, pid int32) (processHandle, error) {
			return process.NewProcessWithContext(ctx, pid)
		},
		handles: make(map[int32]processHandle),
	}
}

// sample reads every live process. Handles for PIDs that have exited are
// dropped.
func (t *processTable) sample(ctx context.Context) ([]Process, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	pids, err := t.pids(ctx)
	if err != nil {
		return nil, err
	}

	live := make(map[int32]processHandle, len(pids))
	out := make([]Process, 0, len(pids))
	for _, pid := range pids {
		h, ok := t.handles[pid]
		if !ok {
			if h, err = t.open(ctx, pid); err != nil {
				continue
			}
		}
		name, err := h.NameWithContext(ctx)
		if err != nil {
			continue
		}
		live[pid] = h

		cpuPct, _ := h.PercentWithContext(ctx, 0)
		memPct, _ := h.MemoryPercentWithContext(ctx)
		out = append(out, Process{
			Name:          name,
			CPUPercent:    cpuPct,
			MemoryPercent: float64(memPct),
		})
	}
	t.handles = live
	return out, nil
}
