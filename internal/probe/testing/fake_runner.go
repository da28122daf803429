// Package testing provides test doubles for the probe package.
package testing

import (
	"context"
	"sync"
)

// Response is the canned result for one command.
type Response struct {
	Stdout   string
	ExitCode int
	Err      error
}

// FakeRunner answers commands from a lookup table. Unknown commands return
// an empty stdout with exit code 1.
type FakeRunner struct {
	mu        sync.Mutex
	responses map[string]Response
	tools     map[string]bool

	// Commands records every command passed to Run, in order.
	Commands []string
}

// NewFakeRunner creates a runner with the given tools installed.
func NewFakeRunner(tools ...string) *FakeRunner {
	r := &FakeRunner{
		responses: make(map[string]Response),
		tools:     make(map[string]bool),
	}
	for _, t := range tools {
		r.tools[t] = true
	}
	return r
}

// On sets the stdout returned for cmd.
func (r *FakeRunner) On(cmd, stdout string) *FakeRunner {
	return r.OnResponse(cmd, Response{Stdout: stdout})
}

// OnResponse sets the full response for cmd.
func (r *FakeRunner) OnResponse(cmd string, resp Response) *FakeRunner {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.responses[cmd] = resp
	return r
}

// Run returns the canned response for cmd.
func (r *FakeRunner) Run(_ context.Context, cmd string) (string, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Commands = append(r.Commands, cmd)
	resp, ok := r.responses[cmd]
	if !ok {
		return "", 1, nil
	}
	return resp.Stdout, resp.ExitCode, resp.Err
}

// Has reports whether the tool was registered as installed.
func (r *FakeRunner) Has(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tools[name]
}
