package monitor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"

	"golang.org/x/term"

	hwerrors "github.com/louisboii747/hwmon/internal/errors"
	"github.com/louisboii747/hwmon/internal/logger"
	"github.com/louisboii747/hwmon/internal/probe"
	"github.com/louisboii747/hwmon/internal/sampler"
	"github.com/louisboii747/hwmon/internal/util"
)

// Env carries what sections need to render.
type Env struct {
	Sampler  sampler.Sampler
	Probe    *probe.Prober
	DiskPath string
	TopN     int
	BarWidth int
	Log      logger.Logger

	// DisplaySize reports the terminal size. Defaults to querying stdout.
	DisplaySize func() (width, height int, ok bool)
}

// Defaults for Env fields.
const (
	DefaultDiskPath = "/"
	DefaultTopN     = 5
	DefaultBarWidth = 50
)

func (e *Env) withDefaults() *Env {
	out := *e
	if out.DiskPath == "" {
		out.DiskPath = DefaultDiskPath
	}
	if out.TopN <= 0 {
		out.TopN = DefaultTopN
	}
	if out.BarWidth <= 0 {
		out.BarWidth = DefaultBarWidth
	}
	if out.Log == nil {
		out.Log = logger.Noop()
	}
	if out.Probe == nil {
		out.Probe = probe.New(nil)
	}
	if out.DisplaySize == nil {
		out.DisplaySize = stdoutSize
	}
	return &out
}

func stdoutSize() (int, int, bool) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0, 0, false
	}
	return w, h, true
}

// RenderFunc produces the body lines of a section, without the header.
// Returning (nil, nil) renders the section's Empty message.
type RenderFunc func(ctx context.Context, env *Env, r Reading) ([]string, error)

// Section is one named block of the report.
type Section struct {
	// Name is the key used in config and on the command line.
	Name  string
	Title string
	// Label prefixes diagnostic lines, for example "GPU info error: ...".
	Label string
	// Empty is shown when the section has nothing to list.
	Empty string
	// Unavailable is shown when the platform does not expose the data.
	Unavailable string
	Render      RenderFunc

	// title overrides Title when the header depends on the environment.
	title func(env *Env) string
}

func (s Section) header(env *Env) string {
	if s.title != nil {
		return Header(s.title(env))
	}
	return Header(s.Title)
}

// Registry holds sections in display order.
type Registry struct {
	sections map[string]Section
	order    []string
}

// NewRegistry creates a registry from sections in order.
func NewRegistry(sections ...Section) *Registry {
	r := &Registry{sections: make(map[string]Section)}
	for _, s := range sections {
		r.Add(s)
	}
	return r
}

// Add appends a section, replacing any existing section with the same name.
func (r *Registry) Add(s Section) {
	if _, exists := r.sections[s.Name]; !exists {
		r.order = append(r.order, s.Name)
	}
	r.sections[s.Name] = s
}

// Lookup returns the named section.
func (r *Registry) Lookup(name string) (Section, bool) {
	s, ok := r.sections[name]
	return s, ok
}

// Names returns section names in display order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Validate checks that every name refers to a registered section.
func (r *Registry) Validate(names []string) error {
	var unknown []string
	for _, n := range names {
		if _, ok := r.sections[n]; !ok {
			unknown = append(unknown, n)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	sort.Strings(unknown)
	hint := "Run 'hwmon sections' to list the available sections"
	if len(unknown) == 1 {
		if dym := util.DidYouMean(util.SuggestSimilar(unknown[0], r.order, 3)); dym != "" {
			hint = dym + " " + hint
		}
	}
	return hwerrors.New(hwerrors.ErrConfig, fmt.Sprintf("Unknown section(s): %v", unknown), hint)
}

// Render renders the named sections in the given order. Unknown names are
// skipped; Validate catches them earlier.
func (r *Registry) Render(ctx context.Context, env *Env, reading Reading, names []string) []string {
	env = env.withDefaults()
	var lines []string
	for _, name := range names {
		s, ok := r.sections[name]
		if !ok {
			continue
		}
		lines = append(lines, r.renderSection(ctx, s, env, reading)...)
	}
	return lines
}

// renderSection never fails: errors and panics become a diagnostic line.
func (r *Registry) renderSection(ctx context.Context, s Section, env *Env, reading Reading) (lines []string) {
	head := s.header(env)

	defer func() {
		if rec := recover(); rec != nil {
			env.Log.Error("section %s panicked: %v", s.Name, rec)
			lines = []string{head, fmt.Sprintf("%s info error: %v", s.Label, rec)}
		}
	}()

	body, err := s.Render(ctx, env, reading)
	if err != nil {
		env.Log.Debug("section %s: %v", s.Name, err)
		return []string{head, s.diagnostic(err)}
	}
	if len(body) == 0 {
		empty := s.Empty
		if empty == "" {
			empty = fmt.Sprintf("No %s information found", s.Label)
		}
		return []string{head, empty}
	}
	return append([]string{head}, body...)
}

// diagnostic maps an error to the single line shown in place of the body.
func (s Section) diagnostic(err error) string {
	var toolErr *probe.ToolError
	switch {
	case errors.Is(err, probe.ErrUnsupportedOS):
		return fmt.Sprintf("%s info not available on this OS", s.Label)
	case errors.As(err, &toolErr):
		return toolErr.Error()
	case errors.Is(err, sampler.ErrUnavailable):
		if s.Unavailable != "" {
			return s.Unavailable
		}
		return fmt.Sprintf("%s info not available", s.Label)
	}
	return fmt.Sprintf("%s info error: %s", s.Label, hwerrors.OneLine(err))
}

// Section names.
const (
	SectionSystem     = "system"
	SectionSwap       = "swap"
	SectionNetwork    = "network"
	SectionProcesses  = "processes"
	SectionCPUMemBar  = "cpu_mem_bar"
	SectionDrives     = "drives"
	SectionFans       = "fans"
	SectionBoard      = "motherboard"
	SectionCPUTemp    = "cpu_temp"
	SectionGPU        = "gpu"
	SectionGPUTemp    = "gpu_temp"
	SectionMemoryTemp = "memory_temp"
	SectionOS         = "os"
	SectionKeyboard   = "keyboard"
	SectionMouse      = "mouse"
	SectionWiFi       = "wifi"
	SectionPartitions = "partitions"
	SectionIntelGPU   = "intel_gpu"
	SectionBattery    = "battery"
	SectionSummary    = "summary"
)

// DefaultSections is the full view, in display order.
var DefaultSections = []string{
	SectionSystem, SectionSwap, SectionNetwork, SectionProcesses,
	SectionCPUMemBar, SectionDrives, SectionFans, SectionBoard,
	SectionCPUTemp, SectionGPU, SectionGPUTemp, SectionMemoryTemp,
	SectionOS, SectionKeyboard, SectionMouse, SectionWiFi,
	SectionPartitions, SectionIntelGPU, SectionBattery,
}

// SummarySections is the condensed view.
var SummarySections = []string{SectionSummary}

// DefaultRegistry returns a registry containing every built-in section.
func DefaultRegistry() *Registry {
	return NewRegistry(
		Section{Name: SectionSystem, Title: "System Information", Label: "System", Render: renderSystem},
		Section{Name: SectionSwap, Title: "Swap Memory", Label: "Swap", Render: renderSwap},
		Section{Name: SectionNetwork, Title: "Network Interfaces", Label: "Network", Empty: "No network interfaces found", Render: renderNetwork},
		Section{Name: SectionProcesses, Title: "Top Processes", Label: "Process", Render: renderProcesses,
			title: func(env *Env) string { return fmt.Sprintf("Top %d Processes", env.TopN) }},
		Section{Name: SectionCPUMemBar, Title: "CPU and Memory Usage", Label: "Usage", Render: renderCPUMemBar},
		Section{Name: SectionDrives, Title: "Drive Information", Label: "Drive", Empty: "No drives found", Render: renderDrives},
		Section{Name: SectionFans, Title: "Fan Sensors", Label: "Fan", Empty: "No fans detected", Unavailable: "Fan sensors not available", Render: renderFans},
		Section{Name: SectionBoard, Title: "Motherboard Information", Label: "Motherboard", Render: renderBoard},
		Section{Name: SectionCPUTemp, Title: "CPU Core Temperatures", Label: "CPU temperature", Empty: "CPU core temperature sensors not found", Unavailable: "CPU temperature sensors not available", Render: renderCPUTemps},
		Section{Name: SectionGPU, Title: "GPU Information", Label: "GPU", Empty: "No dedicated AMD or NVIDIA GPU found", Render: renderGPU},
		Section{Name: SectionGPUTemp, Title: "GPU Temperature", Label: "GPU temperature", Empty: "No GPU temperature data found", Unavailable: "GPU temperature sensors not available", Render: renderGPUTemps},
		Section{Name: SectionMemoryTemp, Title: "Memory Temperature", Label: "Memory temperature", Empty: "No memory temperature data found", Unavailable: "Memory temperature sensors not available", Render: renderMemoryTemps},
		Section{Name: SectionOS, Title: "Operating System Information", Label: "OS", Render: renderOS},
		Section{Name: SectionKeyboard, Title: "Keyboard Information", Label: "Keyboard", Empty: "No keyboard information found", Render: renderKeyboards},
		Section{Name: SectionMouse, Title: "Mouse Information", Label: "Mouse", Empty: "No mouse information found", Render: renderMice},
		Section{Name: SectionWiFi, Title: "Wi-Fi Information", Label: "Wi-Fi", Empty: "No Wi-Fi information found", Render: renderWiFi},
		Section{Name: SectionPartitions, Title: "Partition Information", Label: "Partition", Empty: "No partitions found", Render: renderPartitions},
		Section{Name: SectionIntelGPU, Title: "Intel GPU Information", Label: "Intel GPU", Empty: "No Intel GPU information found", Render: renderIntelGPU},
		Section{Name: SectionBattery, Title: "Battery Information", Label: "Battery", Unavailable: "No battery detected", Render: renderBattery},
		Section{Name: SectionSummary, Title: "SYSTEM SUMMARY", Label: "Summary", Render: renderSummary},
	)
}
