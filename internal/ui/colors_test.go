package ui

import (
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestColorConstants(t *testing.T) {
	colors := []lipgloss.Color{
		ColorSuccess, ColorError, ColorWarning, ColorInfo,
		ColorPrimary, ColorSecondary, ColorMuted,
		ColorAccent, ColorHighlight, ColorGlassBorder,
	}

	for _, color := range colors {
		colorStr := string(color)
		assert.True(t, strings.HasPrefix(colorStr, "#"), "color should start with #: %s", colorStr)
		assert.Len(t, colorStr, 7, "color should be 7 chars (#RRGGBB): %s", colorStr)
	}
}

func TestRenderHeader(t *testing.T) {
	out := RenderHeader(HeaderInfo{Name: "hwmon", Version: "v2.0.0", Tagline: "Hardware monitor"})

	assert.Contains(t, out, "hwmon")
	assert.Contains(t, out, "v2.0.0")
	assert.Contains(t, out, "Hardware monitor")
	assert.Contains(t, out, strings.Repeat("━", HeaderWidth))
}

func TestRenderHeader_NoVersion(t *testing.T) {
	out := RenderHeader(HeaderInfo{Name: "hwmon"})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	assert.Len(t, lines, 2)
}

func TestIsTerminal_RegularFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	assert.NoError(t, err)
	defer f.Close()

	assert.False(t, IsTerminal(f))
}
