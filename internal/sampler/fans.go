package sampler

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// DefaultHwmonRoot is where Linux exposes hardware monitoring chips.
const DefaultHwmonRoot = "/sys/class/hwmon"

// Fans reads every fan*_input file below HwmonRoot. A missing root means the
// platform has no hwmon interface and yields ErrUnavailable; a present root
// with no fan files yields an empty slice.
func (s *System) Fans(ctx context.Context) ([]Fan, error) {
	return readFans(ctx, s.HwmonRoot)
}

func readFans(ctx context.Context, root string) ([]Fan, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, ErrUnavailable
	}

	matches, err := filepath.Glob(filepath.Join(root, "*", "fan*_input"))
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)

	fans := make([]Fan, 0, len(matches))
	for _, path := range matches {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		raw, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		rpm, err := strconv.Atoi(strings.TrimSpace(string(raw)))
		if err != nil {
			continue
		}
		fans = append(fans, Fan{
			Chip:   chipName(filepath.Dir(path)),
			Sensor: filepath.Base(path),
			RPM:    rpm,
		})
	}
	return fans, nil
}

// chipName prefers the driver name in <dir>/name over the hwmonN directory.
func chipName(dir string) string {
	if raw, err := os.ReadFile(filepath.Join(dir, "name")); err == nil {
		if name := strings.TrimSpace(string(raw)); name != "" {
			return name
		}
	}
	return filepath.Base(dir)
}
