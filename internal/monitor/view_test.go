package monitor

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestView_BeforeFirstFrame(t *testing.T) {
	m, _ := newTestModel(t, ModelOptions{})

	out := stripANSI(m.View())
	assert.Contains(t, out, "HardwareMon v2.0.0 | collecting...")
	assert.Contains(t, out, "Collecting system information...")
	assert.Contains(t, out, "collecting...")
	assert.Contains(t, out, "updated never")
}

func TestView_AfterFrame(t *testing.T) {
	m, _ := newTestModel(t, ModelOptions{})
	m, _ = collect(t, m, m.Init())

	out := stripANSI(m.View())
	assert.Contains(t, out, "HardwareMon v2.0.0")
	assert.NotContains(t, out, "| collecting...")
	assert.Contains(t, out, "=== Swap Memory ===")
	assert.Contains(t, out, "F2 view: full | F3 theme: dark")
	assert.Contains(t, out, "CPU 12.5%")
	assert.Contains(t, out, "MEM 25.0%")
	assert.Contains(t, out, "DISK 20.0%")
}

func TestView_AlertBanner(t *testing.T) {
	m, s := newTestModel(t, ModelOptions{})
	s.CPUPct = 97
	m, _ = collect(t, m, m.Init())

	assert.Contains(t, stripANSI(m.renderBanner()), "⚠️ CPU Usage High: 97.0%")
}

func TestView_FooterReflectsState(t *testing.T) {
	m, _ := newTestModel(t, ModelOptions{StartInSummary: true})
	m, _ = press(m, runeKey('c'))

	assert.Contains(t, stripANSI(m.renderFooter()), "F2 view: summary | F3 theme: light")
}

func TestView_HelpOverlay(t *testing.T) {
	m, _ := newTestModel(t, ModelOptions{})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)
	m, _ = press(m, runeKey('?'))

	out := stripANSI(m.View())
	assert.Contains(t, out, "Keyboard Shortcuts")
	for _, b := range helpBindings {
		assert.Contains(t, out, b.Desc)
	}
	assert.NotContains(t, out, "F2 view:")
}

func TestModel_GraphWidth(t *testing.T) {
	m, _ := newTestModel(t, ModelOptions{})
	assert.Equal(t, DefaultHistorySize/2, m.graphWidth())

	m.width = 300
	assert.Equal(t, DefaultHistorySize/2, m.graphWidth())

	m.width = 40
	assert.Equal(t, (40-4)/3, m.graphWidth())

	m.width = 5
	assert.Equal(t, 4, m.graphWidth())
}

func TestView_NarrowWindowUsesSparklines(t *testing.T) {
	m, _ := newTestModel(t, ModelOptions{})
	m, _ = collect(t, m, m.Init())

	m.width = 60
	assert.False(t, m.compactGraphs())
	assert.Contains(t, stripANSI(m.renderGraphs()), "CPU 12.5%")

	m.width = 24
	require.True(t, m.compactGraphs())
	out := stripANSI(m.renderGraphs())
	rows := strings.Split(out, "\n")
	require.Len(t, rows, graphCount)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(rows[0]), "CPU  ▁"), rows[0])
	assert.Contains(t, rows[0], "12.5%")
	assert.Contains(t, rows[1], "25.0%")
	assert.Contains(t, rows[2], "20.0%")
	assert.NotContains(t, out, string(brailleBase))
}
