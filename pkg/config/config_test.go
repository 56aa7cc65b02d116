package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tabforge.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.False(t, config.Options.OmitRoot)
	assert.False(t, config.Options.AddTitleTab)
	assert.False(t, config.Options.OmitEmptyWindows)
	assert.Equal(t, 30*time.Second, config.Browser.Timeout)
	assert.Equal(t, "commit", config.Browser.WaitUntil)
	assert.True(t, config.Browser.Install)
	assert.Equal(t, "normal", config.Logging.Verbosity)
	assert.False(t, config.Artifacts.Enabled)
	assert.Equal(t, ".tabforge/artifacts", config.Artifacts.OutputDir)
	assert.NoError(t, config.Validate())
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
options:
  omit_root: true
  add_title_tab: true
filters:
  exclude: ["*://localhost*"]
browser:
  headless: true
  timeout: 5s
  wait_until: load
logging:
  verbosity: debug
`)

	config, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, config.Validate())

	assert.True(t, config.Options.OmitRoot)
	assert.True(t, config.Options.AddTitleTab)
	assert.False(t, config.Options.OmitEmptyWindows)
	assert.Equal(t, []string{"*://localhost*"}, config.Filters.Exclude)
	assert.True(t, config.Browser.Headless)
	assert.Equal(t, 5*time.Second, config.Browser.Timeout)
	assert.Equal(t, "load", config.Browser.WaitUntil)
	assert.Equal(t, "debug", config.Logging.Verbosity)

	// untouched sections keep their defaults
	assert.True(t, config.Browser.Install)
	assert.Equal(t, ".tabforge/artifacts", config.Artifacts.OutputDir)
}

func TestLoad_EmptyPath(t *testing.T) {
	config, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")

	_, err = Load(writeConfig(t, "options: [not, a, map]"))
	assert.ErrorContains(t, err, "failed to parse config file")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"negative timeout", func(c *Config) { c.Browser.Timeout = -time.Second }, "timeout cannot be negative"},
		{"bad wait_until", func(c *Config) { c.Browser.WaitUntil = "never" }, "invalid wait_until"},
		{"bad verbosity", func(c *Config) { c.Logging.Verbosity = "loud" }, "invalid logging verbosity"},
		{"artifacts without dir", func(c *Config) { c.Artifacts.Enabled = true; c.Artifacts.OutputDir = "" }, "output_dir is required"},
		{"bad include glob", func(c *Config) { c.Filters.Include = []string{"[unterminated"} }, "invalid include pattern"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.modify(config)
			err := config.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestValidate_FillsDefaults(t *testing.T) {
	config := &Config{}
	require.NoError(t, config.Validate())
	assert.Equal(t, "normal", config.Logging.Verbosity)
	assert.Equal(t, "commit", config.Browser.WaitUntil)
}
