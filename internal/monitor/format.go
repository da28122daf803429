package monitor

import (
	"fmt"
	"math"
	"strings"
)

const bytesPerGB = 1024 * 1024 * 1024

// FormatGB renders a byte count in GiB with the given number of decimals,
// for example FormatGB(1073741824, 2) == "1.00 GB".
func FormatGB(bytes uint64, decimals int) string {
	return fmt.Sprintf("%.*f GB", decimals, float64(bytes)/bytesPerGB)
}

// FormatMB renders a byte count in MiB with two decimals, padded to six.
func FormatMB(bytes uint64) string {
	return fmt.Sprintf("%6.2f MB", float64(bytes)/(1024*1024))
}

// FormatPercent renders a percentage with one decimal.
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// clampPercent limits pct to 0..100. NaN counts as 0.
func clampPercent(pct float64) float64 {
	switch {
	case math.IsNaN(pct), pct < 0:
		return 0
	case pct > 100:
		return 100
	}
	return pct
}

// Bar renders an ASCII gauge of exactly width characters: int(pct/100*width)
// '#' characters followed by spaces.
func Bar(pct float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := int(clampPercent(pct) / 100 * float64(width))
	if filled > width {
		filled = width
	}
	return strings.Repeat("#", filled) + strings.Repeat(" ", width-filled)
}

// GaugeLine renders "LABEL: [bar] 50.0%".
func GaugeLine(label string, pct float64, width int) string {
	return fmt.Sprintf("%s: [%s] %s", label, Bar(pct, width), FormatPercent(pct))
}

// Header renders a section title line.
func Header(title string) string {
	return "=== " + title + " ==="
}
