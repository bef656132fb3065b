package watcher

import (
	"context"
	"image"
	"time"

	"github.com/fyrsmithlabs/clipd/internal/clip"
)

// Source is the clipboard the watcher observes. ChangeCount must be
// monotonically non-decreasing and increase on every external write.
type Source interface {
	ChangeCount() int64
	Text() (string, bool)
	Image() (image.Image, bool)
	URL() (string, bool)
}

// AppResolver reports the frontmost application name, best effort. A
// stale or racy value is accepted as an approximation; unknown is "".
type AppResolver interface {
	FrontmostApp() string
}

// URLEnricher extracts a page URL from a supported browser. ExtractURL
// must return promptly and never fail; unknown is "".
type URLEnricher interface {
	PermissionGranted() bool
	ExtractURL(ctx context.Context, app string) string
}

// IgnorePolicy decides whether an application is excluded from capture.
type IgnorePolicy interface {
	IsIgnored(app string) bool
}

// CaptureFunc receives every non-suppressed capture candidate. Errors are
// logged by the watcher; they never stop polling.
type CaptureFunc func(ctx context.Context, c clip.Clip) error

// Config holds watcher tuning.
type Config struct {
	// PollInterval is the tick period for change detection.
	PollInterval time.Duration

	// DedupWindow is the trailing interval during which identical
	// content is not re-captured.
	DedupWindow time.Duration

	// Browsers lists application names eligible for URL enrichment.
	Browsers []string
}

// DefaultConfig returns the standard polling and deduplication tuning.
func DefaultConfig() *Config {
	return &Config{
		PollInterval: 500 * time.Millisecond,
		DedupWindow:  5 * time.Second,
		Browsers:     []string{"Safari", "Google Chrome", "Chromium", "Firefox", "Arc"},
	}
}
