package monitor

import (
	"context"
	"strings"
	"time"

	"github.com/louisboii747/hwmon/internal/logger"
	"github.com/louisboii747/hwmon/internal/probe"
	"github.com/louisboii747/hwmon/internal/sampler"
)

// AppName is shown in the status banner.
const AppName = "HardwareMon"

// Options configures a Monitor.
type Options struct {
	Version     string
	DiskPath    string
	TopN        int
	BarWidth    int
	HistorySize int
	Thresholds  Thresholds
	// Sections is the full-view section list; empty selects DefaultSections.
	Sections []string
	// Updater is optional; nil disables the banner update message.
	Updater *UpdateChecker
	Log     logger.Logger
}

// Monitor runs one refresh cycle at a time: sample, record history,
// evaluate alerts, and render sections. It is driven by either the
// terminal loop or the dashboard, never both at once.
type Monitor struct {
	env       *Env
	registry  *Registry
	history   *History
	evaluator *Evaluator
	updater   *UpdateChecker
	version   string
	sections  []string
	log       logger.Logger
}

// New creates a Monitor. It fails when Sections names an unknown section.
func New(s sampler.Sampler, p *probe.Prober, opts Options) (*Monitor, error) {
	log := opts.Log
	if log == nil {
		log = logger.Noop()
	}

	registry := DefaultRegistry()
	sections := opts.Sections
	if len(sections) == 0 {
		sections = DefaultSections
	}
	if err := registry.Validate(sections); err != nil {
		return nil, err
	}

	thresholds := opts.Thresholds
	if thresholds == (Thresholds{}) {
		thresholds = DefaultThresholds()
	}

	env := (&Env{
		Sampler:  s,
		Probe:    p,
		DiskPath: opts.DiskPath,
		TopN:     opts.TopN,
		BarWidth: opts.BarWidth,
		Log:      log,
	}).withDefaults()

	return &Monitor{
		env:       env,
		registry:  registry,
		history:   NewHistory(opts.HistorySize),
		evaluator: NewEvaluator(thresholds),
		updater:   opts.Updater,
		version:   opts.Version,
		sections:  append([]string(nil), sections...),
		log:       log,
	}, nil
}

// History returns the metric history.
func (m *Monitor) History() *History {
	return m.history
}

// Registry returns the section registry.
func (m *Monitor) Registry() *Registry {
	return m.registry
}

// Sections returns the configured full-view section names.
func (m *Monitor) Sections() []string {
	return append([]string(nil), m.sections...)
}

// SetDisplaySize overrides how the system section learns the terminal size.
// The dashboard reports its window size instead of querying stdout.
func (m *Monitor) SetDisplaySize(fn func() (int, int, bool)) {
	m.env.DisplaySize = fn
}

// Sample takes the per-cycle reading. Missing metrics are left at zero.
func (m *Monitor) Sample(ctx context.Context) Reading {
	s := m.env.Sampler
	r := Reading{Time: time.Now()}

	if pct, err := s.CPUPercent(ctx); err == nil {
		r.CPUPercent = pct
	} else {
		m.log.Debug("cpu percent: %v", err)
	}
	if mem, err := s.Memory(ctx); err == nil {
		r.MemoryPercent = mem.Percent
	} else {
		m.log.Debug("memory: %v", err)
	}
	if d, err := s.Disk(ctx, m.env.DiskPath); err == nil {
		r.DiskPercent = d.Percent
	} else {
		m.log.Debug("disk %s: %v", m.env.DiskPath, err)
	}

	r.Temperatures, r.TemperatureErr = s.Temperatures(ctx)

	if b, err := s.Battery(ctx); err == nil {
		r.Battery = &b
	} else {
		r.BatteryErr = err
	}
	return r
}

// Tick runs one full cycle and returns what to display.
func (m *Monitor) Tick(ctx context.Context, summary bool) Frame {
	r := m.Sample(ctx)

	m.history.Record(MetricCPU, r.CPUPercent)
	m.history.Record(MetricMemory, r.MemoryPercent)
	m.history.Record(MetricDisk, r.DiskPercent)

	alerts := m.evaluator.Evaluate(r)

	var updateMsg string
	if m.updater != nil && len(alerts) == 0 {
		updateMsg = m.updater.Message(ctx)
	}

	names := m.sections
	if summary {
		names = SummarySections
	}

	return Frame{
		Reading: r,
		Alerts:  alerts,
		Banner:  Banner(alerts, m.version, updateMsg),
		Lines:   m.registry.Render(ctx, m.env, r, names),
		Summary: summary,
	}
}

// Banner builds the status line: alerts joined by " | ", otherwise the
// version with an optional update notice.
func Banner(alerts []Alert, version, updateMsg string) string {
	if len(alerts) > 0 {
		return strings.Join(AlertMessages(alerts), " | ")
	}
	title := AppName + " " + formatVersion(version)
	if updateMsg != "" {
		return title + " → " + updateMsg
	}
	return title
}

// formatVersion ensures version has a 'v' prefix for display.
func formatVersion(v string) string {
	if v == "" || v == "dev" {
		return v
	}
	if v[0] != 'v' {
		return "v" + v
	}
	return v
}
