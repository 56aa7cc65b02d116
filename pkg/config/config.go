// Package config holds the run configuration of tabforge: planning options,
// URL filters, browser settings, console verbosity and artifact output.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/entrhq/tabforge/pkg/bookmarks"
	"github.com/entrhq/tabforge/pkg/planner"
	"gopkg.in/yaml.v3"
)

// Config is the full run configuration.
type Config struct {
	// Planning options
	Options planner.Options `yaml:"options" json:"options"`

	// Link URL filters applied before planning
	Filters FilterConfig `yaml:"filters" json:"filters"`

	// Browser host settings
	Browser BrowserConfig `yaml:"browser" json:"browser"`

	// Console logging
	Logging LoggingConfig `yaml:"logging" json:"logging"`

	// Run artifacts
	Artifacts ArtifactConfig `yaml:"artifacts" json:"artifacts"`
}

// FilterConfig lists glob patterns matched against link URLs.
type FilterConfig struct {
	Include []string `yaml:"include" json:"include"`
	Exclude []string `yaml:"exclude" json:"exclude"`
}

// BrowserConfig configures the playwright browser host.
type BrowserConfig struct {
	Headless bool          `yaml:"headless" json:"headless"`
	Channel  string        `yaml:"channel" json:"channel"` // e.g. "chrome"; empty uses the bundled chromium
	Timeout  time.Duration `yaml:"timeout" json:"timeout"` // per navigation
	// WaitUntil is the navigation event to wait for: load, domcontentloaded, networkidle or commit
	WaitUntil string `yaml:"wait_until" json:"wait_until"`
	Install   bool   `yaml:"install" json:"install"`     // install the playwright driver before launch
	KeepOpen  bool   `yaml:"keep_open" json:"keep_open"` // keep the browser open until interrupted
}

// LoggingConfig defines logging configuration
type LoggingConfig struct {
	// Verbosity controls logging level: quiet, normal, verbose, debug
	Verbosity string `yaml:"verbosity" json:"verbosity"`
}

// ArtifactConfig defines artifact generation configuration
type ArtifactConfig struct {
	Enabled   bool   `yaml:"enabled" json:"enabled"`
	OutputDir string `yaml:"output_dir" json:"output_dir"`

	// Individual format flags
	JSON     bool `yaml:"json" json:"json"`
	Markdown bool `yaml:"markdown" json:"markdown"`
}

var (
	validVerbosity = map[string]bool{
		"quiet":   true,
		"normal":  true,
		"verbose": true,
		"debug":   true,
	}
	validWaitUntil = map[string]bool{
		"load":             true,
		"domcontentloaded": true,
		"networkidle":      true,
		"commit":           true,
	}
)

// DefaultConfig returns a default configuration suitable for most use cases
func DefaultConfig() *Config {
	return &Config{
		Browser: BrowserConfig{
			Timeout:   30 * time.Second,
			WaitUntil: "commit",
			Install:   true,
			KeepOpen:  true,
		},
		Logging: LoggingConfig{
			Verbosity: "normal",
		},
		Artifacts: ArtifactConfig{
			Enabled:   false,
			OutputDir: ".tabforge/artifacts",
			JSON:      true,
			Markdown:  true,
		},
	}
}

// Load reads a YAML file on top of DefaultConfig. An empty path returns the
// defaults.
func Load(path string) (*Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Browser.Timeout < 0 {
		return fmt.Errorf("browser timeout cannot be negative")
	}

	if c.Browser.WaitUntil == "" {
		c.Browser.WaitUntil = "commit"
	}
	if !validWaitUntil[c.Browser.WaitUntil] {
		return fmt.Errorf("invalid wait_until: %s (must be 'load', 'domcontentloaded', 'networkidle', or 'commit')", c.Browser.WaitUntil)
	}

	// Set default verbosity if not specified
	if c.Logging.Verbosity == "" {
		c.Logging.Verbosity = "normal"
	}
	if !validVerbosity[c.Logging.Verbosity] {
		return fmt.Errorf("invalid logging verbosity: %s (must be 'quiet', 'normal', 'verbose', or 'debug')", c.Logging.Verbosity)
	}

	if c.Artifacts.Enabled && c.Artifacts.OutputDir == "" {
		return fmt.Errorf("artifacts output_dir is required when artifacts are enabled")
	}

	if _, err := c.Filter(); err != nil {
		return err
	}

	return nil
}

// Filter compiles the configured URL filters.
func (c *Config) Filter() (*bookmarks.Filter, error) {
	return bookmarks.NewFilter(c.Filters.Include, c.Filters.Exclude)
}
