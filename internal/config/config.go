// Package config loads the tunable engine thresholds from a YAML file.
// Every value has a coded default; an absent file is not an error.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/raidscope/raidscope/internal/engine"
)

// EnvConfigPath overrides the config file location when set.
const EnvConfigPath = "RAIDSCOPE_CONFIG"

type Config struct {
	IdleGapMs        int `yaml:"idle_gap_ms"`
	PreScanIdleGapMs int `yaml:"prescan_idle_gap_ms"`
	PullDebounceMs   int `yaml:"pull_debounce_ms"`
	WipeGraceMs      int `yaml:"wipe_grace_ms"`
	MinLines         int `yaml:"min_lines"`
	MinDurationMs    int `yaml:"min_duration_ms"`
	ScanWindow       int `yaml:"scan_window"`
}

func Default() Config {
	opts := engine.DefaultOptions()
	return Config{
		IdleGapMs:        int(opts.IdleGap / time.Millisecond),
		PreScanIdleGapMs: int(opts.PreScanIdleGap / time.Millisecond),
		PullDebounceMs:   int(opts.PullDebounce / time.Millisecond),
		WipeGraceMs:      int(opts.WipeGrace / time.Millisecond),
		MinLines:         opts.MinLines,
		MinDurationMs:    int(opts.MinDuration / time.Millisecond),
		ScanWindow:       opts.ScanWindow,
	}
}

// Load resolves the config from an explicit path, the RAIDSCOPE_CONFIG
// env var, or defaults when neither names an existing file. Values the
// file omits keep their defaults.
func Load(explicit string) (Config, string, error) {
	cfg := Default()

	path := strings.TrimSpace(explicit)
	if path == "" {
		path = strings.TrimSpace(os.Getenv(EnvConfigPath))
	}
	if path == "" {
		return cfg, "", nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if explicit == "" && errors.Is(err, os.ErrNotExist) {
			return cfg, "", nil
		}
		return cfg, path, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, path, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg.withDefaults(), path, nil
}

func (c Config) withDefaults() Config {
	def := Default()
	if c.IdleGapMs <= 0 {
		c.IdleGapMs = def.IdleGapMs
	}
	if c.PreScanIdleGapMs <= 0 {
		c.PreScanIdleGapMs = def.PreScanIdleGapMs
	}
	if c.PullDebounceMs <= 0 {
		c.PullDebounceMs = def.PullDebounceMs
	}
	if c.WipeGraceMs <= 0 {
		c.WipeGraceMs = def.WipeGraceMs
	}
	if c.MinLines <= 0 {
		c.MinLines = def.MinLines
	}
	if c.MinDurationMs <= 0 {
		c.MinDurationMs = def.MinDurationMs
	}
	if c.ScanWindow <= 0 {
		c.ScanWindow = def.ScanWindow
	}
	return c
}

// EngineOptions converts the config into engine thresholds.
func (c Config) EngineOptions() engine.Options {
	c = c.withDefaults()
	return engine.Options{
		IdleGap:        time.Duration(c.IdleGapMs) * time.Millisecond,
		PreScanIdleGap: time.Duration(c.PreScanIdleGapMs) * time.Millisecond,
		PullDebounce:   time.Duration(c.PullDebounceMs) * time.Millisecond,
		WipeGrace:      time.Duration(c.WipeGraceMs) * time.Millisecond,
		MinLines:       c.MinLines,
		MinDuration:    time.Duration(c.MinDurationMs) * time.Millisecond,
		ScanWindow:     c.ScanWindow,
	}
}
