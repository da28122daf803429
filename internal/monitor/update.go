package monitor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/mod/semver"

	hwerrors "github.com/louisboii747/hwmon/internal/errors"
	"github.com/louisboii747/hwmon/internal/logger"
)

const (
	// DefaultReleasesURL is the GitHub API endpoint for the latest release.
	DefaultReleasesURL = "https://api.github.com/repos/louisboii747/HardwareMon/releases/latest"

	// DefaultUpdateCacheTTL is how long a lookup result is reused.
	DefaultUpdateCacheTTL = 600 * time.Second

	// updateCheckTimeout is the max time to wait for the GitHub API.
	updateCheckTimeout = 5 * time.Second
)

// githubRelease represents the relevant fields from GitHub's release API.
type githubRelease struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// UpdateChecker looks up the latest published release and caches the
// answer in memory. All failures are silent: they simply produce no message.
type UpdateChecker struct {
	current string
	url     string
	ttl     time.Duration
	client  *http.Client
	now     func() time.Time
	log     logger.Logger

	mu        sync.Mutex
	latest    string
	checkedAt time.Time
	checked   bool
}

// UpdateOption configures an UpdateChecker.
type UpdateOption func(*UpdateChecker)

// WithHTTPClient replaces the default 5s-timeout client.
func WithHTTPClient(c *http.Client) UpdateOption {
	return func(u *UpdateChecker) { u.client = c }
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) UpdateOption {
	return func(u *UpdateChecker) { u.now = now }
}

// WithUpdateLogger sets the logger for lookup failures.
func WithUpdateLogger(log logger.Logger) UpdateOption {
	return func(u *UpdateChecker) { u.log = log }
}

// NewUpdateChecker creates a checker for the running version. An empty url
// selects DefaultReleasesURL and a non-positive ttl DefaultUpdateCacheTTL.
func NewUpdateChecker(current, url string, ttl time.Duration, opts ...UpdateOption) *UpdateChecker {
	if url == "" {
		url = DefaultReleasesURL
	}
	if ttl <= 0 {
		ttl = DefaultUpdateCacheTTL
	}
	u := &UpdateChecker{
		current: current,
		url:     url,
		ttl:     ttl,
		client:  &http.Client{Timeout: updateCheckTimeout},
		now:     time.Now,
		log:     logger.Noop(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Message returns "Update available: vX.Y.Z" when a newer release exists,
// or "" otherwise. The lookup runs at most once per TTL; failed lookups are
// cached too so an offline machine is not retried every cycle.
func (u *UpdateChecker) Message(ctx context.Context) string {
	latest := u.cachedLatest(ctx)
	if latest == "" || !IsNewerVersion(u.current, latest) {
		return ""
	}
	return "Update available: v" + normalizeVersion(latest)
}

// Latest returns the newest published version, refreshing if the cache is
// stale.
func (u *UpdateChecker) Latest(ctx context.Context) string {
	return normalizeVersion(u.cachedLatest(ctx))
}

func (u *UpdateChecker) cachedLatest(ctx context.Context) string {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.checked && u.now().Sub(u.checkedAt) < u.ttl {
		return u.latest
	}

	latest, err := u.fetchLatestVersion(ctx)
	if err != nil {
		u.log.Debug("update check: %v", err)
		latest = ""
	}
	u.latest = latest
	u.checkedAt = u.now()
	u.checked = true
	return latest
}

// fetchLatestVersion fetches the latest tag from GitHub.
func (u *UpdateChecker) fetchLatestVersion(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.url, nil)
	if err != nil {
		return "", hwerrors.WrapWithCode(err, hwerrors.ErrUpdate, "bad release URL", "")
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", "hwmon")

	resp, err := u.client.Do(req)
	if err != nil {
		return "", hwerrors.WrapWithCode(err, hwerrors.ErrUpdate, "release lookup failed", "")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", hwerrors.New(hwerrors.ErrUpdate, fmt.Sprintf("github api returned %d", resp.StatusCode), "")
	}

	var release githubRelease
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", hwerrors.WrapWithCode(err, hwerrors.ErrUpdate, "unreadable release response", "")
	}
	return release.TagName, nil
}

// normalizeVersion removes the 'v' prefix.
func normalizeVersion(v string) string {
	return strings.TrimPrefix(strings.TrimSpace(v), "v")
}

// IsNewerVersion reports whether latest is a newer semantic version than
// current. Non-semver versions such as "dev" never compare as newer.
func IsNewerVersion(current, latest string) bool {
	c := "v" + normalizeVersion(current)
	l := "v" + normalizeVersion(latest)
	if !semver.IsValid(c) || !semver.IsValid(l) {
		return false
	}
	return semver.Compare(l, c) > 0
}
