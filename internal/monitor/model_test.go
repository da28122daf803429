package monitor

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	samplertesting "github.com/louisboii747/hwmon/internal/sampler/testing"
)

func newTestModel(t *testing.T, opts ModelOptions) (Model, *samplertesting.FakeSampler) {
	t.Helper()
	s := samplertesting.NewFakeSampler()
	mon := newTestMonitor(t, s, Options{Version: "2.0.0", Sections: []string{SectionSwap, SectionCPUMemBar}})
	return NewModel(mon, NewThemeSet(), opts), s
}

// collect runs the pending collection command and delivers its frame.
func collect(t *testing.T, m Model, cmd tea.Cmd) (Model, tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)
	msg := cmd()
	_, ok := msg.(frameMsg)
	require.True(t, ok, "expected frameMsg, got %T", msg)
	next, nextCmd := m.Update(msg)
	return next.(Model), nextCmd
}

func press(m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNewModel(t *testing.T) {
	m, _ := newTestModel(t, ModelOptions{})

	assert.Equal(t, DefaultInterval, m.interval)
	assert.False(t, m.Summary())
	assert.True(t, m.collecting)
	assert.False(t, m.hasFrame)
	assert.Equal(t, DefaultTheme, m.Theme().Name)
}

func TestNewModel_StartInSummary(t *testing.T) {
	m, _ := newTestModel(t, ModelOptions{StartInSummary: true, Interval: 2 * time.Second})
	assert.True(t, m.Summary())
	assert.Equal(t, 2*time.Second, m.interval)
}

func TestModel_InitCollectsFrame(t *testing.T) {
	m, s := newTestModel(t, ModelOptions{})

	m, next := collect(t, m, m.Init())
	assert.NotNil(t, next, "frame should schedule the next tick")
	assert.True(t, m.hasFrame)
	assert.False(t, m.collecting)
	assert.Equal(t, 1, s.CallCount("CPUPercent"))
	assert.Equal(t, "=== Swap Memory ===", m.Frame().Lines[0])
	assert.Equal(t, 1, m.tickGen)
}

func TestModel_StaleTickIgnored(t *testing.T) {
	m, _ := newTestModel(t, ModelOptions{})
	m, _ = collect(t, m, m.Init())

	next, cmd := m.Update(tickMsg{gen: m.tickGen - 1})
	assert.Nil(t, cmd)
	assert.False(t, next.(Model).collecting)
}

func TestModel_TickWhileCollectingIgnored(t *testing.T) {
	m, _ := newTestModel(t, ModelOptions{})

	_, cmd := m.Update(tickMsg{gen: m.tickGen})
	assert.Nil(t, cmd)
}

func TestModel_CurrentTickCollects(t *testing.T) {
	m, s := newTestModel(t, ModelOptions{})
	m, _ = collect(t, m, m.Init())

	next, cmd := m.Update(tickMsg{gen: m.tickGen, time: time.Now()})
	m = next.(Model)
	assert.True(t, m.collecting)

	m, _ = collect(t, m, cmd)
	assert.Equal(t, 2, s.CallCount("CPUPercent"))
	assert.Equal(t, 2, m.monitor.History().Len(MetricCPU))
}

func TestModel_RefreshInvalidatesPendingTick(t *testing.T) {
	m, _ := newTestModel(t, ModelOptions{})
	m, _ = collect(t, m, m.Init())
	pending := m.tickGen

	m, cmd := press(m, runeKey('r'))
	require.NotNil(t, cmd)
	assert.True(t, m.collecting)
	assert.NotEqual(t, pending, m.tickGen)

	m, _ = collect(t, m, cmd)
	_, stale := m.Update(tickMsg{gen: pending})
	assert.Nil(t, stale)
}

func TestModel_RefreshWhileCollectingIsNoop(t *testing.T) {
	m, _ := newTestModel(t, ModelOptions{})

	_, cmd := press(m, runeKey('r'))
	assert.Nil(t, cmd)
}

func TestModel_ToggleSummary(t *testing.T) {
	for _, key := range []tea.KeyMsg{{Type: tea.KeyF2}, runeKey('t')} {
		t.Run(key.String(), func(t *testing.T) {
			m, _ := newTestModel(t, ModelOptions{})
			m, _ = collect(t, m, m.Init())

			m, cmd := press(m, key)
			assert.True(t, m.Summary())

			m, _ = collect(t, m, cmd)
			assert.True(t, m.Frame().Summary)
			assert.Equal(t, "=== SYSTEM SUMMARY ===", m.Frame().Lines[0])

			m, _ = press(m, key)
			assert.False(t, m.Summary())
		})
	}
}

func TestModel_CycleTheme(t *testing.T) {
	for _, key := range []tea.KeyMsg{{Type: tea.KeyF3}, runeKey('c')} {
		t.Run(key.String(), func(t *testing.T) {
			m, _ := newTestModel(t, ModelOptions{})

			var seen []string
			for i := 0; i < len(BuiltinThemes); i++ {
				var cmd tea.Cmd
				m, cmd = press(m, key)
				assert.Nil(t, cmd)
				seen = append(seen, m.Theme().Name)
				assert.Equal(t, m.Theme().Name, m.styles.Theme.Name)
			}
			assert.Equal(t, []string{"light", "hacker", "red", "dark"}, seen)
		})
	}
}

func TestModel_Help(t *testing.T) {
	m, _ := newTestModel(t, ModelOptions{})

	m, _ = press(m, runeKey('?'))
	assert.True(t, m.showHelp)
	m, _ = press(m, runeKey('?'))
	assert.False(t, m.showHelp)

	m, _ = press(m, runeKey('?'))
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.showHelp)
}

func TestModel_Quit(t *testing.T) {
	for _, key := range []tea.KeyMsg{runeKey('q'), {Type: tea.KeyCtrlC}} {
		t.Run(key.String(), func(t *testing.T) {
			m, _ := newTestModel(t, ModelOptions{})

			m, cmd := press(m, key)
			require.NotNil(t, cmd)
			assert.True(t, m.quitting)
			assert.IsType(t, tea.QuitMsg{}, cmd())
			assert.Empty(t, m.View())
		})
	}
}

func TestModel_WindowSize(t *testing.T) {
	m, _ := newTestModel(t, ModelOptions{})

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)
	assert.True(t, m.viewportReady)
	assert.Equal(t, 120, m.viewport.Width)
	assert.Equal(t, 40-bannerHeight-graphTitle-graphHeight-2-footerHeight, m.viewport.Height)

	w, h, ok := m.size.get()
	assert.True(t, ok)
	assert.Equal(t, 120, w)
	assert.Equal(t, 40, h)

	next, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 5})
	m = next.(Model)
	assert.Equal(t, 100, m.viewport.Width)
	assert.Equal(t, 1, m.viewport.Height)
}

func TestModel_DisplaySizeComesFromWindow(t *testing.T) {
	s := samplertesting.NewFakeSampler()
	mon := newTestMonitor(t, s, Options{Sections: []string{SectionSystem}})
	m := NewModel(mon, nil, ModelOptions{})

	next, _ := m.Update(tea.WindowSizeMsg{Width: 132, Height: 43})
	m = next.(Model)
	m, _ = collect(t, m, m.collectCmd())

	assert.Contains(t, m.Frame().Lines, "Display Size: 132x43")
}

func TestModel_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m, _ := newTestModel(t, ModelOptions{Context: ctx})

	m, _ = collect(t, m, m.Init())
	assert.True(t, m.hasFrame)
}

func TestModel_RefreshKeepsScrollOffset(t *testing.T) {
	s := samplertesting.NewFakeSampler()
	mon := newTestMonitor(t, s, Options{Version: "2.0.0"})
	m := NewModel(mon, NewThemeSet(), ModelOptions{})

	m, _ = collect(t, m, m.Init())
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 20})
	m = next.(Model)
	require.Greater(t, m.viewport.TotalLineCount(), m.viewport.Height+5)

	m.viewport.SetYOffset(5)
	m, cmd := press(m, runeKey('r'))
	m, _ = collect(t, m, cmd)
	assert.Equal(t, 5, m.viewport.YOffset, "a new frame keeps the scroll position")

	m, cmd = press(m, runeKey('t'))
	assert.Equal(t, 0, m.viewport.YOffset, "switching views scrolls to the top")
	m, _ = collect(t, m, cmd)
	assert.Equal(t, 0, m.viewport.YOffset)
}
