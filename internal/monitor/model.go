package monitor

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Layout constants for the dashboard chrome.
const (
	bannerHeight = 1
	graphHeight  = 3 // rows of braille per graph
	graphTitle   = 1
	footerHeight = 1
	graphCount   = 3
)

// ModelOptions configures the dashboard.
type ModelOptions struct {
	Interval       time.Duration
	StartInSummary bool
	// Context bounds every collection; defaults to context.Background().
	Context context.Context
}

// Model is the Bubble Tea model for the interactive dashboard.
type Model struct {
	ctx      context.Context
	monitor  *Monitor
	themes   *ThemeSet
	styles   Styles
	interval time.Duration

	summary  bool
	showHelp bool
	quitting bool

	// collecting is true while a Tick is in flight. tickGen invalidates
	// ticks scheduled before a manual refresh so only one chain runs.
	collecting bool
	tickGen    int

	frame      Frame
	hasFrame   bool
	lastUpdate time.Time

	width  int
	height int
	size   *termSize

	viewport      viewport.Model
	viewportReady bool
}

// termSize is shared with the system section, which reads it from the
// collection goroutine.
type termSize struct {
	width  atomic.Int32
	height atomic.Int32
}

func (s *termSize) get() (int, int, bool) {
	w, h := int(s.width.Load()), int(s.height.Load())
	return w, h, w > 0 && h > 0
}

// tickMsg signals a periodic refresh.
type tickMsg struct {
	gen  int
	time time.Time
}

// frameMsg carries the result of one collection cycle.
type frameMsg struct {
	frame Frame
	time  time.Time
}

// NewModel creates the dashboard model. The theme set's current theme is
// the starting theme.
func NewModel(mon *Monitor, themes *ThemeSet, opts ModelOptions) Model {
	if themes == nil {
		themes = NewThemeSet()
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}

	size := &termSize{}
	mon.SetDisplaySize(size.get)

	return Model{
		ctx:      opts.Context,
		monitor:  mon,
		themes:   themes,
		styles:   NewStyles(themes.Current()),
		interval: opts.Interval,
		summary:  opts.StartInSummary,
		size:     size,
		// Init starts the first collection.
		collecting: true,
	}
}

// Init triggers the first collection immediately.
func (m Model) Init() tea.Cmd {
	return m.collectCmd()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg)
		if handled {
			return m, cmd
		}
		if m.viewportReady {
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

	case tea.MouseMsg:
		if m.viewportReady {
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.size.width.Store(int32(msg.Width))
		m.size.height.Store(int32(msg.Height))

		vpHeight := m.viewportHeight()
		if !m.viewportReady {
			m.viewport = viewport.New(m.width, vpHeight)
			m.viewportReady = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = vpHeight
		}
		m.updateViewportContent()

	case tickMsg:
		if msg.gen != m.tickGen || m.collecting {
			return m, nil
		}
		m.collecting = true
		return m, m.collectCmd()

	case frameMsg:
		m.collecting = false
		m.frame = msg.frame
		m.hasFrame = true
		m.lastUpdate = msg.time
		m.updateViewportContent()
		// Schedule the next tick only now so cycles never overlap.
		return m, m.tickCmd()
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.renderDashboard()
}

// tickCmd returns a command that sends a tick after the refresh interval.
func (m *Model) tickCmd() tea.Cmd {
	m.tickGen++
	gen := m.tickGen
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg{gen: gen, time: t}
	})
}

// collectCmd runs one monitor cycle off the UI goroutine.
func (m Model) collectCmd() tea.Cmd {
	mon, ctx, summary := m.monitor, m.ctx, m.summary
	return func() tea.Msg {
		return frameMsg{frame: mon.Tick(ctx, summary), time: time.Now()}
	}
}

// refresh starts a collection now unless one is already running. Pending
// ticks are invalidated; the new frame schedules the next one.
func (m *Model) refresh() tea.Cmd {
	if m.collecting {
		return nil
	}
	m.tickGen++
	m.collecting = true
	return m.collectCmd()
}

func (m Model) viewportHeight() int {
	h := m.height - bannerHeight - graphTitle - graphHeight - 2 - footerHeight
	if h < 1 {
		h = 1
	}
	return h
}

// updateViewportContent re-renders the section text. SetContent keeps the
// scroll offset so refreshes do not jump back to the top.
func (m *Model) updateViewportContent() {
	if !m.viewportReady {
		return
	}
	m.viewport.SetContent(m.renderLines())
}

// Summary reports whether the summary view is active.
func (m Model) Summary() bool {
	return m.summary
}

// Theme returns the active theme.
func (m Model) Theme() Theme {
	return m.themes.Current()
}

// Frame returns the last collected frame.
func (m Model) Frame() Frame {
	return m.frame
}
