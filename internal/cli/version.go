package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/louisboii747/hwmon/internal/config"
	"github.com/louisboii747/hwmon/internal/monitor"
	"github.com/louisboii747/hwmon/internal/ui"
)

// Version information set via ldflags at build time
var (
	version = "2.0.0"
	commit  = "none"
	date    = "unknown"
)

// versionShort controls whether to show short or full version output
var versionShort bool

// versionCheckTimeout bounds the release lookup done by 'hwmon version'.
const versionCheckTimeout = 3 * time.Second

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print the version, commit hash, and build date of hwmon.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		w := cmd.OutOrStdout()
		if versionShort {
			fmt.Fprintln(w, version)
			return
		}

		printVersion(w)

		if url, ok := versionUpdateCheck(); ok {
			ctx, cancel := context.WithTimeout(cmd.Context(), versionCheckTimeout)
			defer cancel()
			printReleaseStatus(ctx, w, monitor.NewUpdateChecker(version, url, 0))
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print only the version number")
}

// printVersion writes the header and build details.
func printVersion(w io.Writer) {
	fmt.Fprint(w, ui.RenderHeader(ui.HeaderInfo{
		Name:    "hwmon",
		Version: formatVersion(version),
		Tagline: "HardwareMon system monitor",
	}))
	fmt.Fprintf(w, "commit: %s\n", commit)
	fmt.Fprintf(w, "built: %s\n", date)
	fmt.Fprintf(w, "go: %s\n", runtime.Version())
	fmt.Fprintf(w, "os/arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
}

// printUpdateNotice writes msg with install instructions, if non-empty.
func printUpdateNotice(w io.Writer, msg string) {
	if msg == "" {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, msg)
	fmt.Fprintln(w, "Update with: go install github.com/louisboii747/hwmon/cmd/hwmon@latest")
}

// printReleaseStatus prints the update notice, or the latest published
// release when this build is current. Nothing is printed if the lookup
// failed.
func printReleaseStatus(ctx context.Context, w io.Writer, checker *monitor.UpdateChecker) {
	if msg := checker.Message(ctx); msg != "" {
		printUpdateNotice(w, msg)
		return
	}
	if latest := checker.Latest(ctx); latest != "" {
		fmt.Fprintf(w, "latest release: v%s\n", latest)
	}
}

// versionUpdateCheck returns the release URL to check and whether the
// check is enabled by flag, environment and config. A broken config file
// doesn't stop 'hwmon version'; the default endpoint is used instead.
func versionUpdateCheck() (string, bool) {
	if noUpdateCheck || os.Getenv(NoUpdateCheckEnv) == "1" {
		return "", false
	}
	cfg, _, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return "", true
	}
	return cfg.UpdateCheck.URL, cfg.UpdateCheck.Enabled
}

// formatVersion ensures version has a 'v' prefix for display
func formatVersion(v string) string {
	if v == "" || v == "dev" {
		return v
	}
	if v[0] != 'v' {
		return "v" + v
	}
	return v
}

// SetVersionInfo sets the version information (called from main).
func SetVersionInfo(v, c, d string) {
	if v != "" {
		version = v
	}
	commit = c
	date = d
}

// GetVersion returns the current version string.
func GetVersion() string {
	return version
}
