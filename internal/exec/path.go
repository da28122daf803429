package exec

import (
	"os"
	"path/filepath"
	"strings"
)

// sbinPaths hold system tools (lspci, iwconfig) that are often missing from
// an unprivileged user's PATH even though any user may run them.
var sbinPaths = []string{
	"/usr/local/sbin",
	"/usr/sbin",
	"/sbin",
}

// ExtendPATH appends the sbin directories to path, skipping any already
// present. Order of the existing entries is preserved.
func ExtendPATH(path string) string {
	seen := make(map[string]bool)
	var dirs []string
	for _, d := range filepath.SplitList(path) {
		if d == "" || seen[d] {
			continue
		}
		seen[d] = true
		dirs = append(dirs, d)
	}
	for _, d := range sbinPaths {
		if !seen[d] {
			dirs = append(dirs, d)
		}
	}
	return strings.Join(dirs, string(os.PathListSeparator))
}

// LookupTool finds name on PATH or in the sbin directories.
func LookupTool(name string) (string, bool) {
	if p, err := lookPath(name); err == nil {
		return p, true
	}
	for _, dir := range sbinPaths {
		candidate := filepath.Join(dir, name)
		if isExecutable(candidate) {
			return candidate, true
		}
	}
	return "", false
}

// commandEnv is the environment for probe commands: the caller's with
// PATH extended.
func commandEnv() []string {
	env := os.Environ()
	out := make([]string, 0, len(env)+1)
	for _, kv := range env {
		if !strings.HasPrefix(kv, "PATH=") {
			out = append(out, kv)
		}
	}
	return append(out, "PATH="+ExtendPATH(os.Getenv("PATH")))
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	return info.Mode()&0111 != 0
}
