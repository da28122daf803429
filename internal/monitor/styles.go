package monitor

import "github.com/charmbracelet/lipgloss"

// Severity colors, shared by every theme.
const (
	ColorHealthy  = lipgloss.Color("#39FF14")
	ColorWarning  = lipgloss.Color("#FFAA00")
	ColorCritical = lipgloss.Color("#FF0055")
	ColorMuted    = lipgloss.Color("#6B6B8D")
)

// Graph color bands.
const (
	WarningThreshold  = 70.0
	CriticalThreshold = 90.0
)

// Styles are the lipgloss styles derived from a Theme.
type Styles struct {
	Theme   Theme
	Base    lipgloss.Style
	Title   lipgloss.Style
	Banner  lipgloss.Style
	Alert   lipgloss.Style
	Header  lipgloss.Style
	Label   lipgloss.Style
	Footer  lipgloss.Style
	Section lipgloss.Style
}

// NewStyles builds the styles for t.
func NewStyles(t Theme) Styles {
	base := lipgloss.NewStyle().
		Foreground(t.Foreground).
		Background(t.Background)

	return Styles{
		Theme: t,
		Base:  base,
		Title: base.
			Foreground(t.Accent).
			Bold(true),
		Banner: base.
			Foreground(t.Accent).
			Bold(true).
			Padding(0, 1),
		Alert: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(ColorCritical).
			Bold(true).
			Padding(0, 1),
		Header: base.
			Foreground(t.Accent).
			Bold(true),
		Label: base,
		Footer: base.
			Foreground(ColorMuted),
		Section: base.
			Foreground(t.Accent),
	}
}

// MetricColor returns green < 70%, amber 70-90%, red > 90%.
func MetricColor(percent float64) lipgloss.Color {
	switch {
	case percent >= CriticalThreshold:
		return ColorCritical
	case percent >= WarningThreshold:
		return ColorWarning
	default:
		return ColorHealthy
	}
}

// MetricStyle returns a style with the metric's severity color.
func MetricStyle(percent float64) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(MetricColor(percent))
}
