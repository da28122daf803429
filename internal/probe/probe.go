// Package probe gathers hardware details that only OS command-line tools
// expose: the PCI graphics adapters and their link width, NVIDIA VRAM,
// USB input devices and wireless ESSIDs. All probes are Linux-only.
package probe

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/louisboii747/hwmon/internal/exec"
	hwerrors "github.com/louisboii747/hwmon/internal/errors"
	"github.com/louisboii747/hwmon/internal/logger"
)

var (
	// ErrUnsupportedOS is returned by every probe on platforms other than Linux.
	ErrUnsupportedOS = errors.New("not available on this OS")

	// ErrToolMissing matches any *ToolError.
	ErrToolMissing = errors.New("tool not found")
)

// ToolError names the command that is not installed.
type ToolError struct {
	Tool string
}

func (e *ToolError) Error() string {
	return e.Tool + " not found"
}

// Is lets errors.Is(err, ErrToolMissing) match.
func (e *ToolError) Is(target error) bool {
	return target == ErrToolMissing
}

// Runner executes shell commands. The default runner uses the local shell;
// tests substitute a fake.
type Runner interface {
	Run(ctx context.Context, cmd string) (stdout string, exitCode int, err error)
	Has(name string) bool
}

// LocalRunner runs commands through /bin/sh on this machine.
type LocalRunner struct{}

// Run executes cmd and returns its stdout.
func (LocalRunner) Run(ctx context.Context, cmd string) (string, int, error) {
	stdout, _, code, err := exec.ExecuteLocalCapture(ctx, cmd)
	return string(stdout), code, err
}

// Has reports whether name is on PATH.
func (LocalRunner) Has(name string) bool {
	return exec.HasCommand(name)
}

// Prober runs the shell probes.
type Prober struct {
	runner Runner
	goos   string
	log    logger.Logger
}

// Option configures a Prober.
type Option func(*Prober)

// WithGOOS overrides the detected operating system.
func WithGOOS(goos string) Option {
	return func(p *Prober) { p.goos = goos }
}

// WithLogger sets the logger used for debug output.
func WithLogger(log logger.Logger) Option {
	return func(p *Prober) { p.log = log }
}

// New creates a Prober. A nil runner selects LocalRunner.
func New(runner Runner, opts ...Option) *Prober {
	if runner == nil {
		runner = LocalRunner{}
	}
	p := &Prober{
		runner: runner,
		goos:   runtime.GOOS,
		log:    logger.Noop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// run executes a command after checking the OS and that tool is installed.
// A non-zero exit with empty output is treated as "nothing found", which is
// how grep-style filters and lspci on minimal systems behave.
func (p *Prober) run(ctx context.Context, tool, cmd string) (string, error) {
	if p.goos != "linux" {
		return "", ErrUnsupportedOS
	}
	if !p.runner.Has(tool) {
		return "", &ToolError{Tool: tool}
	}

	out, code, err := p.runner.Run(ctx, cmd)
	if err != nil {
		return "", hwerrors.Wrap(err, fmt.Sprintf("%s probe failed", tool))
	}
	if code != 0 && strings.TrimSpace(out) == "" {
		p.log.Debug("%s exited %d", cmd, code)
		if code == exec.ExitCommandNotFound {
			return "", &ToolError{Tool: tool}
		}
		return "", hwerrors.New(hwerrors.ErrExec,
			fmt.Sprintf("%s exited with status %d", tool, code),
			"Run the command manually to see its error output")
	}
	return out, nil
}

// nonEmptyLines splits output into trimmed, non-blank lines.
func nonEmptyLines(out string) []string {
	var lines []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// containsAny reports whether s contains any of subs, ignoring case.
func containsAny(s string, subs ...string) bool {
	lower := strings.ToLower(s)
	for _, sub := range subs {
		if strings.Contains(lower, strings.ToLower(sub)) {
			return true
		}
	}
	return false
}
