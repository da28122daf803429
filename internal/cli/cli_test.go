package cli

import (
	"bytes"
	"os"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/louisboii747/hwmon/internal/logger"
	"github.com/louisboii747/hwmon/internal/probe"
	probetesting "github.com/louisboii747/hwmon/internal/probe/testing"
	"github.com/louisboii747/hwmon/internal/sampler"
	samplertesting "github.com/louisboii747/hwmon/internal/sampler/testing"
)

// isolate points config discovery at empty directories, turns off the
// update check and resets the global flags for one test.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())
	t.Setenv(NoUpdateCheckEnv, "1")

	saved := []string{cfgFile, intervalFlag, themeFlag}
	savedBools := []bool{noUpdateCheck, noColor, watchOnce, watchSummary, versionShort}
	t.Cleanup(func() {
		cfgFile, intervalFlag, themeFlag = saved[0], saved[1], saved[2]
		noUpdateCheck, noColor, watchOnce, watchSummary, versionShort =
			savedBools[0], savedBools[1], savedBools[2], savedBools[3], savedBools[4]
	})
	cfgFile, intervalFlag, themeFlag = "", "", ""
	noUpdateCheck, noColor, watchOnce, watchSummary, versionShort = false, false, false, false, false
}

// useFakes swaps the real sampler and shell runner for fakes.
func useFakes(t *testing.T) (*samplertesting.FakeSampler, *probetesting.FakeRunner) {
	t.Helper()
	s := samplertesting.NewFakeSampler()
	r := probetesting.NewFakeRunner()

	prevSampler, prevRunner := newSampler, newRunner
	t.Cleanup(func() { newSampler, newRunner = prevSampler, prevRunner })
	newSampler = func(logger.Logger) sampler.Sampler { return s }
	newRunner = func() probe.Runner { return r }
	return s, r
}

// runCommand executes cmd with args and returns its output.
func runCommand(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	t.Cleanup(func() {
		cmd.SetOut(nil)
		cmd.SetErr(nil)
		cmd.SetArgs(nil)
	})
	err := cmd.Execute()
	return buf.String(), err
}

// requireNoErr wraps runCommand's results, failing the test on error.
func requireNoErr(t *testing.T) func(string, error) string {
	return func(out string, err error) string {
		t.Helper()
		require.NoError(t, err, out)
		return out
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
