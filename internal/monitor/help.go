package monitor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HelpBinding represents a single keyboard shortcut entry.
type HelpBinding struct {
	Key  string
	Desc string
}

// helpBindings defines all keyboard shortcuts shown in the help overlay.
var helpBindings = []HelpBinding{
	{Key: "F2 / t", Desc: "Toggle summary / full view"},
	{Key: "F3 / c", Desc: "Cycle theme"},
	{Key: "r", Desc: "Refresh now"},
	{Key: "up / down", Desc: "Scroll one line"},
	{Key: "PgUp / PgDn", Desc: "Scroll one page"},
	{Key: "?", Desc: "Toggle this help"},
	{Key: "Esc", Desc: "Close help"},
	{Key: "q / Ctrl+C", Desc: "Quit"},
}

// renderHelpOverlay renders a centered help box with keyboard shortcuts.
func (m Model) renderHelpOverlay() string {
	t := m.styles.Theme

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Accent).
		Background(t.Background).
		Padding(1, 2)
	titleStyle := m.styles.Title.MarginBottom(1)
	keyStyle := m.styles.Base.Bold(true).Width(14)
	descStyle := m.styles.Label

	var lines []string
	lines = append(lines, titleStyle.Render("Keyboard Shortcuts"))
	lines = append(lines, "")

	for _, binding := range helpBindings {
		lines = append(lines, keyStyle.Render(binding.Key)+descStyle.Render(binding.Desc))
	}

	lines = append(lines, "")
	lines = append(lines, m.styles.Footer.Render("Press ? to close"))

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		boxStyle.Render(strings.Join(lines, "\n")),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(t.Background),
	)
}
