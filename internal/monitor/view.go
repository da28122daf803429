package monitor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderDashboard renders the complete dashboard view.
func (m Model) renderDashboard() string {
	if m.showHelp && m.width > 0 {
		return m.renderHelpOverlay()
	}

	var b strings.Builder
	b.WriteString(m.renderBanner())
	b.WriteString("\n")
	b.WriteString(m.renderGraphs())
	b.WriteString("\n\n")

	if m.viewportReady {
		b.WriteString(m.viewport.View())
	} else {
		b.WriteString(m.renderLines())
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	if m.width > 0 && m.height > 0 {
		return m.styles.Base.Width(m.width).Height(m.height).Render(b.String())
	}
	return b.String()
}

// renderBanner renders the status line: alerts on a red background,
// otherwise the app name and update notice in the theme accent.
func (m Model) renderBanner() string {
	text := m.frame.Banner
	if !m.hasFrame {
		text = Banner(nil, m.monitor.version, "") + " | collecting..."
	}

	style := m.styles.Banner
	if len(m.frame.Alerts) > 0 {
		style = m.styles.Alert
	}
	if m.width > 0 {
		style = style.Width(m.width).MaxHeight(bannerHeight)
	}
	return style.Render(text)
}

// minBrailleWidth is the narrowest braille panel drawn. Narrower windows
// get one sparkline row per metric instead.
const minBrailleWidth = 8

// renderGraphs lays out the CPU, memory and disk graphs side by side.
func (m Model) renderGraphs() string {
	if m.compactGraphs() {
		return m.renderSparklines()
	}

	hist := m.monitor.History()
	width := m.graphWidth()

	panels := []string{
		RenderGraphPanel("CPU", hist.Values(MetricCPU), width, graphHeight, m.styles),
		RenderGraphPanel("MEM", hist.Values(MetricMemory), width, graphHeight, m.styles),
		RenderGraphPanel("DISK", hist.Values(MetricDisk), width, graphHeight, m.styles),
	}

	spacer := m.styles.Base.Render("  ")
	return lipgloss.JoinHorizontal(lipgloss.Top, panels[0], spacer, panels[1], spacer, panels[2])
}

// compactGraphs reports whether the window is too narrow for three
// braille panels.
func (m Model) compactGraphs() bool {
	return m.width > 0 && (m.width-2*(graphCount-1))/graphCount < minBrailleWidth
}

// renderSparklines renders "CPU ▁▃▅ 42.0%" rows, one per graphed metric.
func (m Model) renderSparklines() string {
	hist := m.monitor.History()
	width := m.width - len("DISK  100.0%")
	if width < 1 {
		width = 1
	}
	if width > hist.Size() {
		width = hist.Size()
	}

	rows := make([]string, 0, graphCount)
	for _, g := range []struct{ label, metric string }{
		{"CPU", MetricCPU},
		{"MEM", MetricMemory},
		{"DISK", MetricDisk},
	} {
		value := "--"
		if v, ok := hist.Last(g.metric); ok {
			value = FormatPercent(v)
		}
		rows = append(rows, fmt.Sprintf("%-4s %s %s", g.label, RenderMiniSparkline(hist.Values(g.metric), width), value))
	}
	return m.styles.Title.Render(strings.Join(rows, "\n"))
}

// graphWidth returns the braille width of each graph. History holds one
// point per refresh, so 30 characters (60 points) show the whole window.
func (m Model) graphWidth() int {
	maxWidth := m.monitor.History().Size() / 2
	if maxWidth < 1 {
		maxWidth = 1
	}
	if m.width == 0 {
		return maxWidth
	}

	w := (m.width - 2*(graphCount-1)) / graphCount
	if w > maxWidth {
		w = maxWidth
	}
	if w < 4 {
		w = 4
	}
	return w
}

// renderLines styles the section output: headers in the accent color.
func (m Model) renderLines() string {
	if !m.hasFrame {
		return m.styles.Label.Render("Collecting system information...")
	}

	lines := make([]string, 0, len(m.frame.Lines))
	for _, line := range m.frame.Lines {
		if strings.HasPrefix(line, "=== ") && strings.HasSuffix(line, " ===") {
			lines = append(lines, m.styles.Section.Bold(true).Render(line))
			continue
		}
		lines = append(lines, m.styles.Label.Render(line))
	}
	return strings.Join(lines, "\n")
}

// renderFooter renders key hints, the active view and theme.
func (m Model) renderFooter() string {
	view := "full"
	if m.summary {
		view = "summary"
	}

	updated := "never"
	if !m.lastUpdate.IsZero() {
		updated = m.lastUpdate.Format("15:04:05")
	}

	text := fmt.Sprintf("F2 view: %s | F3 theme: %s | r refresh | ↑↓ PgUp PgDn scroll | ? help | q quit | updated %s",
		view, m.themes.Current().Name, updated)
	style := m.styles.Footer
	if m.width > 0 {
		style = style.MaxWidth(m.width)
	}
	return style.Render(text)
}
