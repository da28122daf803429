package monitor

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	samplertesting "github.com/louisboii747/hwmon/internal/sampler/testing"
)

func TestRunTerminal_Once(t *testing.T) {
	s := samplertesting.NewFakeSampler()
	s.CPUPct = 95
	m := newTestMonitor(t, s, Options{Sections: []string{SectionCPUMemBar, SectionSwap}})

	var buf bytes.Buffer
	require.NoError(t, RunTerminal(context.Background(), m, &buf, TerminalOptions{Once: true}))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "=== ALERTS ===\n⚠️ CPU Usage High: 95.0%\n\n"))
	assert.Contains(t, out, "=== CPU and Memory Usage ===")
	assert.Contains(t, out, "=== Swap Memory ===")
	assert.NotContains(t, out, "Press Ctrl+C")
	assert.NotContains(t, out, "Exiting...")
}

func TestRunTerminal_NoAlertBlockWhenNominal(t *testing.T) {
	m := newTestMonitor(t, samplertesting.NewFakeSampler(), Options{Sections: []string{SectionSwap}})

	var buf bytes.Buffer
	require.NoError(t, RunTerminal(context.Background(), m, &buf, TerminalOptions{Once: true}))
	assert.NotContains(t, buf.String(), "ALERTS")
}

func TestRunTerminal_LoopsUntilCancelled(t *testing.T) {
	s := samplertesting.NewFakeSampler()
	m := newTestMonitor(t, s, Options{Sections: []string{SectionSwap}})

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Millisecond)
	defer cancel()

	var buf bytes.Buffer
	require.NoError(t, RunTerminal(ctx, m, &buf, TerminalOptions{Interval: 20 * time.Millisecond}))

	out := buf.String()
	assert.GreaterOrEqual(t, strings.Count(out, "=== Swap Memory ==="), 2)
	assert.Contains(t, out, "Press Ctrl+C to exit...")
	assert.True(t, strings.HasSuffix(out, "\nExiting...\n"))
	assert.GreaterOrEqual(t, s.CallCount("CPUPercent"), 2)
}

func TestRunTerminal_SummaryView(t *testing.T) {
	m := newTestMonitor(t, samplertesting.NewFakeSampler(), Options{})

	var buf bytes.Buffer
	require.NoError(t, RunTerminal(context.Background(), m, &buf, TerminalOptions{Once: true, Summary: true}))
	assert.Contains(t, buf.String(), "=== SYSTEM SUMMARY ===")
	assert.NotContains(t, buf.String(), "=== System Information ===")
}
