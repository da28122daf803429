package monitor

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/muesli/termenv"
)

// DefaultInterval is the refresh period of both presentation loops.
const DefaultInterval = time.Second

// TerminalOptions configures RunTerminal.
type TerminalOptions struct {
	Interval time.Duration
	// Once prints a single frame without clearing the screen.
	Once    bool
	Summary bool
}

// RunTerminal prints a full report every interval until ctx is cancelled.
// Cancellation (SIGINT/SIGTERM wired by the caller) prints "Exiting..." and
// returns nil.
func RunTerminal(ctx context.Context, m *Monitor, w io.Writer, opts TerminalOptions) error {
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	out := termenv.NewOutput(w)

	if opts.Once {
		writeFrame(w, m.Tick(ctx, opts.Summary))
		return nil
	}

	ticker := time.NewTicker(opts.Interval)
	defer ticker.Stop()

loop:
	for {
		frame := m.Tick(ctx, opts.Summary)
		if ctx.Err() != nil {
			break
		}
		out.ClearScreen()
		writeFrame(w, frame)
		fmt.Fprintln(w, "\nPress Ctrl+C to exit...")

		select {
		case <-ctx.Done():
			break loop
		case <-ticker.C:
		}
	}

	fmt.Fprintln(w, "\nExiting...")
	return nil
}

// writeFrame prints the alert block, if any, followed by the section lines.
func writeFrame(w io.Writer, f Frame) {
	if len(f.Alerts) > 0 {
		fmt.Fprintln(w, Header("ALERTS"))
		for _, a := range f.Alerts {
			fmt.Fprintln(w, a.Message)
		}
		fmt.Fprintln(w)
	}
	for _, line := range f.Lines {
		fmt.Fprintln(w, line)
	}
}
