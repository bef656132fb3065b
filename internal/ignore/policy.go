// Package ignore decides which applications are excluded from clipboard
// capture.
//
// Patterns are glob expressions matched case-insensitively against the
// frontmost application identifier. They come from configuration plus an
// optional ignore file (one pattern per line, # comments), and the file
// can be reloaded while the watcher is running.
package ignore

import (
	"bufio"
	"errors"
	"os"
	"strings"
	"sync"

	"github.com/gobwas/glob"
	"go.uber.org/zap"
)

// Policy answers whether an application identifier is excluded from
// capture. It is safe for concurrent use and replaceable at runtime via
// Reload.
type Policy struct {
	path   string
	static []string
	logger *zap.Logger

	mu       sync.RWMutex
	globs    []glob.Glob
	patterns []string
}

// NewPolicy builds a policy from configured patterns plus the patterns in
// the ignore file at path, when it exists. A missing file is not an
// error; an unreadable one is.
func NewPolicy(path string, patterns []string, logger *zap.Logger) (*Policy, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	p := &Policy{path: path, static: patterns, logger: logger}
	if err := p.Reload(); err != nil {
		return nil, err
	}
	return p, nil
}

// Reload re-reads the ignore file and recompiles all patterns. Patterns
// that fail to compile are skipped with a warning rather than failing the
// whole policy.
func (p *Policy) Reload() error {
	patterns := append([]string{}, p.static...)

	if p.path != "" {
		filePatterns, err := parseFile(p.path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
		patterns = append(patterns, filePatterns...)
	}
	patterns = deduplicate(patterns)

	globs := make([]glob.Glob, 0, len(patterns))
	for _, pattern := range patterns {
		g, err := glob.Compile(strings.ToLower(pattern))
		if err != nil {
			p.logger.Warn("skipping invalid ignore pattern",
				zap.String("pattern", pattern),
				zap.Error(err))
			continue
		}
		globs = append(globs, g)
	}

	p.mu.Lock()
	p.globs = globs
	p.patterns = patterns
	p.mu.Unlock()

	p.logger.Debug("ignore patterns loaded", zap.Int("count", len(globs)))
	return nil
}

// IsIgnored reports whether the application identifier matches any ignore
// pattern. The empty identifier never matches.
func (p *Policy) IsIgnored(app string) bool {
	if app == "" {
		return false
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	lower := strings.ToLower(app)
	for _, g := range p.globs {
		if g.Match(lower) {
			return true
		}
	}
	return false
}

// Patterns returns the currently active pattern list.
func (p *Policy) Patterns() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]string{}, p.patterns...)
}

// parseFile reads one ignore file: one pattern per line, blank lines and
// # comments skipped.
func parseFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var patterns []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := parseLine(scanner.Text())
		if line != "" {
			patterns = append(patterns, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return patterns, nil
}

// parseLine strips comments and whitespace from one line. Returns "" for
// lines carrying no pattern.
func parseLine(line string) string {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return ""
	}
	return line
}

// deduplicate removes duplicate patterns while preserving order.
func deduplicate(patterns []string) []string {
	seen := make(map[string]bool, len(patterns))
	out := make([]string, 0, len(patterns))
	for _, p := range patterns {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	return out
}
