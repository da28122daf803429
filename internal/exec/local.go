// Package exec runs local shell commands on behalf of the hardware probes.
package exec

import (
	"bytes"
	"context"
	"os/exec"

	"github.com/louisboii747/hwmon/internal/errors"
)

// Shell is the interpreter used for probe commands. Probes rely on POSIX
// pipes and redirects, so the user's login shell is not used.
const Shell = "/bin/sh"

// ExitCommandNotFound is the exit status POSIX shells use when a command is missing.
const ExitCommandNotFound = 127

// ExecuteLocalCapture runs a command through the shell and captures all output.
// A non-zero exit is reported through exitCode with a nil error; err is only
// set when the shell itself could not be started.
func ExecuteLocalCapture(ctx context.Context, cmd string) (stdout, stderr []byte, exitCode int, err error) {
	var outBuf, errBuf bytes.Buffer

	command := exec.CommandContext(ctx, Shell, "-c", cmd)
	command.Env = commandEnv()
	command.Stdout = &outBuf
	command.Stderr = &errBuf

	runErr := command.Run()
	if runErr != nil {
		if exitErr, ok := runErr.(*exec.ExitError); ok {
			return outBuf.Bytes(), errBuf.Bytes(), exitErr.ExitCode(), nil
		}
		return outBuf.Bytes(), errBuf.Bytes(), -1, errors.WrapWithCode(runErr, errors.ErrExec,
			"Couldn't run the command locally",
			"Make sure "+Shell+" exists and is executable.")
	}

	return outBuf.Bytes(), errBuf.Bytes(), 0, nil
}

// HasCommand reports whether name resolves on PATH or in the sbin
// directories ExecuteLocalCapture adds.
func HasCommand(name string) bool {
	_, ok := LookupTool(name)
	return ok
}

var lookPath = exec.LookPath
