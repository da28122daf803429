package monitor

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatGB(t *testing.T) {
	tests := []struct {
		bytes    uint64
		decimals int
		want     string
	}{
		{1073741824, 2, "1.00 GB"},
		{1073741824, 1, "1.0 GB"},
		{0, 2, "0.00 GB"},
		{16 << 30, 1, "16.0 GB"},
		{1610612736, 2, "1.50 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatGB(tt.bytes, tt.decimals))
		})
	}
}

func TestFormatMB(t *testing.T) {
	assert.Equal(t, "  1.00 MB", FormatMB(1024*1024))
	assert.Equal(t, "1536.00 MB", FormatMB(1536*1024*1024))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "95.0%", FormatPercent(95))
	assert.Equal(t, "12.3%", FormatPercent(12.34))
}

func TestBar(t *testing.T) {
	tests := []struct {
		name   string
		pct    float64
		width  int
		filled int
	}{
		{"empty", 0, 50, 0},
		{"full", 100, 50, 50},
		{"half", 50, 50, 25},
		{"truncates", 99.9, 10, 9},
		{"negative clamps", -5, 10, 0},
		{"over clamps", 150, 10, 10},
		{"NaN is empty", math.NaN(), 10, 0},
		{"infinity is full", math.Inf(1), 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := Bar(tt.pct, tt.width)
			assert.Len(t, bar, tt.width)
			assert.Equal(t, tt.filled, strings.Count(bar, "#"))
			assert.Equal(t, strings.Repeat("#", tt.filled), strings.TrimRight(bar, " "))
		})
	}
}

func TestBar_ZeroWidth(t *testing.T) {
	assert.Equal(t, "", Bar(50, 0))
}

func TestGaugeLine(t *testing.T) {
	assert.Equal(t, "CPU: [#####     ] 50.0%", GaugeLine("CPU", 50, 10))
	assert.Equal(t, "CPU: [          ] NaN%", GaugeLine("CPU", math.NaN(), 10))
}

func TestHeader(t *testing.T) {
	assert.Equal(t, "=== GPU Information ===", Header("GPU Information"))
}
