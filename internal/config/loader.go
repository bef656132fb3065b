package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

const maxConfigFileSize = 1 << 20 // 1MB

// Load reads configuration from the YAML file at path, then overrides with
// environment variables.
//
// Precedence (highest to lowest):
//  1. CLIPD_* environment variables (CLIPD_WATCHER_POLL_INTERVAL, ...)
//  2. YAML config file (default ~/.config/clipd/config.yaml)
//  3. Hardcoded defaults
//
// A missing config file is fine; defaults and environment apply. Passing
// an empty path selects the default location.
//
// Environment variables map to config keys by stripping the CLIPD_ prefix,
// lowercasing, and splitting section and field on the first underscore:
//
//	CLIPD_STORAGE_DIR            -> storage.dir
//	CLIPD_WATCHER_POLL_INTERVAL  -> watcher.poll_interval
//	CLIPD_LOGGING_LEVEL          -> logging.level
func Load(path string) (*Config, error) {
	if path == "" {
		defaultPath, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = defaultPath
	}

	k := koanf.New(".")

	if info, err := os.Stat(path); err == nil {
		if info.Size() > maxConfigFileSize {
			return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxConfigFileSize)
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("CLIPD_", ".", func(s string) string {
		lower := strings.ToLower(strings.TrimPrefix(s, "CLIPD_"))
		section, field, found := strings.Cut(lower, "_")
		if !found {
			return lower
		}
		return section + "." + field
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}
