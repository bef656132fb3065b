package watcher

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/fyrsmithlabs/clipd/internal/clip"
)

// Service detects clipboard mutations and turns them into clip captures.
// All mutating operations are serialized through one mutex, so mutation
// ordering is total.
type Service struct {
	cfg      *Config
	source   Source
	resolver AppResolver
	enricher URLEnricher
	capture  CaptureFunc
	logger   *zap.Logger
	now      func() time.Time

	mu          sync.Mutex
	policy      IgnorePolicy
	running     bool
	cancel      context.CancelFunc
	done        chan struct{}
	lastChange  int64
	lastContent string
	lastCapture time.Time
}

// NewService creates a watcher around the given clipboard source. The
// resolver and enricher are optional; capture is required. The baseline
// change counter is snapshotted at construction, so content already on the
// clipboard does not trigger a capture.
func NewService(cfg *Config, source Source, resolver AppResolver, enricher URLEnricher, capture CaptureFunc, logger *zap.Logger) (*Service, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if source == nil {
		return nil, errors.New("watcher: clipboard source is required")
	}
	if capture == nil {
		return nil, errors.New("watcher: capture callback is required")
	}
	if cfg.PollInterval <= 0 {
		return nil, errors.New("watcher: poll interval must be positive")
	}
	if cfg.DedupWindow < 0 {
		return nil, errors.New("watcher: dedup window cannot be negative")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Service{
		cfg:        cfg,
		source:     source,
		resolver:   resolver,
		enricher:   enricher,
		capture:    capture,
		logger:     logger,
		now:        time.Now,
		lastChange: source.ChangeCount(),
	}, nil
}

// SetIgnorePolicy replaces the ignore policy. May be called while the
// watcher is running; nil disables ignoring.
func (s *Service) SetIgnorePolicy(p IgnorePolicy) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.policy = p
}

// Start begins polling at the configured interval. Calling Start while
// already running is a no-op.
func (s *Service) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})
	s.running = true

	go s.run(ctx, s.done)
	s.logger.Info("clipboard watch started",
		zap.Duration("poll_interval", s.cfg.PollInterval),
		zap.Duration("dedup_window", s.cfg.DedupWindow))
}

// Stop cancels future ticks and waits for an in-flight check to finish.
// Calling Stop while not running is a no-op.
func (s *Service) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	cancel, done := s.cancel, s.done
	s.mu.Unlock()

	cancel()
	<-done
	s.logger.Info("clipboard watch stopped")
}

// Running reports whether the poll loop is active.
func (s *Service) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *Service) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.CheckOnce(ctx)
		}
	}
}

// CheckOnce performs one change-detection pass: compare the change
// counter, capture on mutation, and hand the candidate to the callback.
// The callback's completion (including persistence) is awaited before the
// tick is considered finished.
func (s *Service) CheckOnce(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := s.source.ChangeCount()
	if count == s.lastChange {
		return
	}
	// The baseline advances before the ignore check so a later capture
	// from a non-ignored app is recognized as new.
	s.lastChange = count

	candidate, ok := s.buildCandidate(ctx)
	if !ok {
		return
	}

	now := s.now()
	if candidate.Content == s.lastContent && now.Sub(s.lastCapture) < s.cfg.DedupWindow {
		s.logger.Debug("duplicate content suppressed",
			zap.Duration("since_last", now.Sub(s.lastCapture)))
		return
	}
	s.lastContent = candidate.Content
	s.lastCapture = now

	if err := s.capture(ctx, candidate); err != nil {
		// Each subsequent tick is independent: log and keep polling.
		s.logger.Error("capture callback failed",
			zap.String("clip_id", candidate.ID),
			zap.Error(err))
	}
}

// buildCandidate reads the current payload and assembles a clip. Content
// selection prefers text over image; no usable payload is a silent no-op.
// Callers must hold s.mu.
func (s *Service) buildCandidate(ctx context.Context) (clip.Clip, bool) {
	app := ""
	if s.resolver != nil {
		app = s.resolver.FrontmostApp()
	}

	if s.policy != nil && s.policy.IsIgnored(app) {
		s.logger.Debug("capture skipped for ignored app", zap.String("app", app))
		return clip.Clip{}, false
	}

	if text, ok := s.source.Text(); ok && text != "" {
		return clip.NewText(text, app, s.resolveURL(ctx, app), s.now()), true
	}

	if img, ok := s.source.Image(); ok && img != nil {
		content, err := encodeImage(img)
		if err != nil {
			// Accepted degradation: keep the record with empty content
			// rather than dropping the capture.
			s.logger.Warn("image encoding failed, storing empty content", zap.Error(err))
			content = ""
		}
		bounds := img.Bounds()
		return clip.NewImage(content, bounds.Dx(), bounds.Dy(), app, s.now()), true
	}

	return clip.Clip{}, false
}

// resolveURL picks the clip's URL: a URL-typed clipboard payload wins;
// otherwise a supported browser with permission granted is asked, and any
// enrichment failure yields "".
func (s *Service) resolveURL(ctx context.Context, app string) string {
	if u, ok := s.source.URL(); ok && u != "" {
		return u
	}
	if s.enricher == nil || app == "" || !s.isBrowser(app) {
		return ""
	}
	if !s.enricher.PermissionGranted() {
		return ""
	}
	return s.enricher.ExtractURL(ctx, app)
}

func (s *Service) isBrowser(app string) bool {
	for _, b := range s.cfg.Browsers {
		if strings.EqualFold(app, b) {
			return true
		}
	}
	return false
}
