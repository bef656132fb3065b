// Package config provides configuration loading for clipd.
//
// Configuration is layered: hardcoded defaults, then an optional YAML file
// (~/.config/clipd/config.yaml), then CLIPD_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config holds the complete clipd configuration.
type Config struct {
	Storage    StorageConfig    `koanf:"storage"`
	Watcher    WatcherConfig    `koanf:"watcher"`
	Resolver   ResolverConfig   `koanf:"resolver"`
	Enrichment EnrichmentConfig `koanf:"enrichment"`
	Ignore     IgnoreConfig     `koanf:"ignore"`
	Logging    LoggingConfig    `koanf:"logging"`
}

// StorageConfig locates the persisted knowledge document.
type StorageConfig struct {
	// Dir is the storage directory, created on first load if absent.
	Dir string `koanf:"dir"`
	// File is the document file name inside Dir.
	File string `koanf:"file"`
}

// DocumentPath returns the full path of the knowledge document.
func (c StorageConfig) DocumentPath() string {
	return filepath.Join(c.Dir, c.File)
}

// WatcherConfig tunes change detection and deduplication.
type WatcherConfig struct {
	PollInterval Duration `koanf:"poll_interval"`
	DedupWindow  Duration `koanf:"dedup_window"`
	// Browsers lists application names eligible for URL enrichment.
	Browsers []string `koanf:"browsers"`
}

// ResolverConfig configures the frontmost-app lookup command.
type ResolverConfig struct {
	Command []string `koanf:"command"`
	Timeout Duration `koanf:"timeout"`
}

// EnrichmentConfig configures browser URL extraction. Disabled by default:
// it reaches outside the process and needs explicit user consent.
type EnrichmentConfig struct {
	Enabled bool     `koanf:"enabled"`
	Command []string `koanf:"command"`
	Timeout Duration `koanf:"timeout"`
}

// IgnoreConfig configures capture exclusion by application identifier.
type IgnoreConfig struct {
	// File is an optional pattern file, reloaded on change.
	File string `koanf:"file"`
	// Patterns are glob patterns applied in addition to the file.
	Patterns []string `koanf:"patterns"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Default returns the built-in configuration. Paths follow the XDG-ish
// layout used by the rest of the tooling: state under ~/.local/share/clipd,
// config under ~/.config/clipd.
func Default() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return &Config{
		Storage: StorageConfig{
			Dir:  filepath.Join(home, ".local", "share", "clipd"),
			File: "clips.json",
		},
		Watcher: WatcherConfig{
			PollInterval: Duration(500 * time.Millisecond),
			DedupWindow:  Duration(5 * time.Second),
			Browsers:     []string{"Safari", "Google Chrome", "Chromium", "Firefox", "Arc"},
		},
		Resolver: ResolverConfig{
			Command: []string{"xdotool", "getactivewindow", "getwindowclassname"},
			Timeout: Duration(time.Second),
		},
		Enrichment: EnrichmentConfig{
			Enabled: false,
			Timeout: Duration(2 * time.Second),
		},
		Ignore: IgnoreConfig{
			File: filepath.Join(home, ".config", "clipd", "ignore"),
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "clipd", "config.yaml"), nil
}

// Validate checks the configuration for values the daemon cannot run with.
func (c *Config) Validate() error {
	if c.Storage.Dir == "" {
		return errors.New("storage.dir is required")
	}
	if c.Storage.File == "" {
		return errors.New("storage.file is required")
	}
	if c.Watcher.PollInterval.Duration() <= 0 {
		return errors.New("watcher.poll_interval must be positive")
	}
	if c.Watcher.DedupWindow.Duration() < 0 {
		return errors.New("watcher.dedup_window cannot be negative")
	}
	if c.Enrichment.Enabled && len(c.Enrichment.Command) == 0 {
		return errors.New("enrichment.command is required when enrichment is enabled")
	}
	return nil
}
