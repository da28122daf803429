package monitor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme is a named color scheme for the dashboard.
type Theme struct {
	Name       string
	Background lipgloss.Color
	Foreground lipgloss.Color
	Accent     lipgloss.Color
}

// BuiltinThemes in cycle order.
var BuiltinThemes = []Theme{
	{Name: "dark", Background: "#111111", Foreground: "#e6e6e6", Accent: "#4fc3f7"},
	{Name: "light", Background: "#f5f5f5", Foreground: "#111111", Accent: "#1976d2"},
	{Name: "hacker", Background: "#000000", Foreground: "#00ff00", Accent: "#00cc00"},
	{Name: "red", Background: "#2e0000", Foreground: "#ff4d4d", Accent: "#ff1a1a"},
}

// DefaultTheme is the theme the dashboard starts with.
const DefaultTheme = "dark"

// ThemeSet is an ordered list of themes with a current position.
type ThemeSet struct {
	themes  []Theme
	current int
}

// NewThemeSet creates a set starting at the first theme. With no arguments
// it uses BuiltinThemes.
func NewThemeSet(themes ...Theme) *ThemeSet {
	if len(themes) == 0 {
		themes = BuiltinThemes
	}
	return &ThemeSet{themes: append([]Theme(nil), themes...)}
}

// Current returns the active theme.
func (s *ThemeSet) Current() Theme {
	return s.themes[s.current]
}

// Index returns the position of the active theme.
func (s *ThemeSet) Index() int {
	return s.current
}

// Next advances to the following theme, wrapping after the last.
func (s *ThemeSet) Next() Theme {
	s.current = (s.current + 1) % len(s.themes)
	return s.Current()
}

// Select makes the named theme current. Names are matched case-insensitively.
func (s *ThemeSet) Select(name string) error {
	for i, t := range s.themes {
		if strings.EqualFold(t.Name, name) {
			s.current = i
			return nil
		}
	}
	return fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(s.Names(), ", "))
}

// Names lists theme names in cycle order.
func (s *ThemeSet) Names() []string {
	names := make([]string, len(s.themes))
	for i, t := range s.themes {
		names[i] = t.Name
	}
	return names
}

// Len returns the number of themes.
func (s *ThemeSet) Len() int {
	return len(s.themes)
}

// IsThemeName reports whether name is a built-in theme.
func IsThemeName(name string) bool {
	return NewThemeSet().Select(name) == nil
}
