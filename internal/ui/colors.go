package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Semantic colors for status indication.
const (
	ColorSuccess lipgloss.Color = "#50fa7b"
	ColorError   lipgloss.Color = "#ff5555"
	ColorWarning lipgloss.Color = "#f1fa8c"
	ColorInfo    lipgloss.Color = "#8be9fd"
)

// Text colors for content hierarchy.
const (
	ColorPrimary   lipgloss.Color = "#e6e6e6"
	ColorSecondary lipgloss.Color = "#6272a4"
	ColorMuted     lipgloss.Color = "#808080"
)

// Brand accents used by the header.
const (
	ColorAccent      lipgloss.Color = "#4fc3f7"
	ColorHighlight   lipgloss.Color = "#ff79c6"
	ColorGlassBorder lipgloss.Color = "#3a3a4a"
)

// DisableColors switches lipgloss to monochrome output for the rest of the
// process. Used for --no-color and NO_COLOR.
func DisableColors() {
	lipgloss.SetColorProfile(termenv.Ascii)
}
