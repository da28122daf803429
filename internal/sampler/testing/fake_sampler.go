// Package testing provides test doubles for the sampler package.
package testing

import (
	"context"
	"sync"

	"github.com/louisboii747/hwmon/internal/sampler"
)

// FakeSampler returns canned values. Every field left at its zero value is
// returned as-is; set the matching *Err field to make a method fail.
type FakeSampler struct {
	mu sync.Mutex

	CPUInfo      sampler.CPU
	CPUPct       float64
	Mem          sampler.Memory
	SwapInfo     sampler.Swap
	DiskUsage    sampler.DiskUsage
	Parts        []sampler.Partition
	IO           sampler.DiskIO
	Interfaces   []sampler.NetInterface
	Procs        []sampler.Process
	Temps        []sampler.Temperature
	FanList      []sampler.Fan
	Batt         sampler.Battery
	BoardInfo    sampler.Board
	HostInfo     sampler.Host
	GPUs         []string
	CPUPctSeries []float64 // when set, successive CPUPercent calls walk this list

	CPUErr     error
	CPUPctErr  error
	MemErr     error
	SwapErr    error
	DiskErr    error
	PartsErr   error
	IOErr      error
	NetErr     error
	ProcsErr   error
	TempsErr   error
	FansErr    error
	BattErr    error
	BoardErr   error
	HostErr    error
	GPUNameErr error

	// Tracking for assertions
	Calls map[string]int
}

// NewFakeSampler creates a fake with a plausible idle machine.
func NewFakeSampler() *FakeSampler {
	return &FakeSampler{
		CPUInfo: sampler.CPU{Model: "Fake CPU 3000", PhysicalCores: 4, LogicalCores: 8, MHz: 3200},
		CPUPct:  12.5,
		Mem: sampler.Memory{
			Total:   16 << 30,
			Used:    4 << 30,
			Percent: 25,
		},
		DiskUsage: sampler.DiskUsage{Path: "/", Total: 500 << 30, Used: 100 << 30, Percent: 20},
		Batt:      sampler.Battery{Percent: 80, Plugged: true, SecondsLeft: sampler.TimeUnlimited},
		BoardInfo: sampler.Board{Vendor: "N/A", Product: "N/A", Version: "N/A", Serial: "N/A"},
		HostInfo:  sampler.Host{Hostname: "fake", OS: "linux", Platform: "fake", Kernel: "6.0.0", Arch: "x86_64"},
		Calls:     make(map[string]int),
	}
}

func (f *FakeSampler) track(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Calls == nil {
		f.Calls = make(map[string]int)
	}
	f.Calls[name]++
}

// CallCount returns how often the named method was called.
func (f *FakeSampler) CallCount(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Calls[name]
}

func (f *FakeSampler) CPU(context.Context) (sampler.CPU, error) {
	f.track("CPU")
	return f.CPUInfo, f.CPUErr
}

func (f *FakeSampler) CPUPercent(context.Context) (float64, error) {
	f.track("CPUPercent")
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.CPUPctSeries) > 0 {
		f.CPUPct = f.CPUPctSeries[0]
		f.CPUPctSeries = f.CPUPctSeries[1:]
	}
	return f.CPUPct, f.CPUPctErr
}

func (f *FakeSampler) Memory(context.Context) (sampler.Memory, error) {
	f.track("Memory")
	return f.Mem, f.MemErr
}

func (f *FakeSampler) Swap(context.Context) (sampler.Swap, error) {
	f.track("Swap")
	return f.SwapInfo, f.SwapErr
}

func (f *FakeSampler) Disk(_ context.Context, path string) (sampler.DiskUsage, error) {
	f.track("Disk")
	d := f.DiskUsage
	if d.Path == "" {
		d.Path = path
	}
	return d, f.DiskErr
}

func (f *FakeSampler) Partitions(context.Context) ([]sampler.Partition, error) {
	f.track("Partitions")
	return f.Parts, f.PartsErr
}

func (f *FakeSampler) DiskIO(context.Context) (sampler.DiskIO, error) {
	f.track("DiskIO")
	return f.IO, f.IOErr
}

func (f *FakeSampler) Network(context.Context) ([]sampler.NetInterface, error) {
	f.track("Network")
	return f.Interfaces, f.NetErr
}

func (f *FakeSampler) Processes(context.Context) ([]sampler.Process, error) {
	f.track("Processes")
	return f.Procs, f.ProcsErr
}

func (f *FakeSampler) Temperatures(context.Context) ([]sampler.Temperature, error) {
	f.track("Temperatures")
	return f.Temps, f.TempsErr
}

func (f *FakeSampler) Fans(context.Context) ([]sampler.Fan, error) {
	f.track("Fans")
	return f.FanList, f.FansErr
}

func (f *FakeSampler) Battery(context.Context) (sampler.Battery, error) {
	f.track("Battery")
	return f.Batt, f.BattErr
}

func (f *FakeSampler) Board(context.Context) (sampler.Board, error) {
	f.track("Board")
	return f.BoardInfo, f.BoardErr
}

func (f *FakeSampler) GPUNames(context.Context) ([]string, error) {
	f.track("GPUNames")
	return f.GPUs, f.GPUNameErr
}

func (f *FakeSampler) Host(context.Context) (sampler.Host, error) {
	f.track("Host")
	return f.HostInfo, f.HostErr
}

var _ sampler.Sampler = (*FakeSampler)(nil)
