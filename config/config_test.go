package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/apphealth/errors"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, DefaultDebounceInterval, cfg.Aggregator.DebounceInterval)
	assert.True(t, cfg.Aggregator.KickOnWait)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, LogFormatJSON, cfg.Logging.Format)
	require.NoError(t, cfg.Validate())
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `
aggregator:
  debounce_interval: 250ms
  kick_on_wait: false
logging:
  level: debug
  format: text
demo:
  duration: 30s
  components:
    - name: database
      publishers: 2
      flap_interval: 3s
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 250*time.Millisecond, cfg.Aggregator.DebounceInterval)
	assert.False(t, cfg.Aggregator.KickOnWait)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, LogFormatText, cfg.Logging.Format)
	assert.Equal(t, 30*time.Second, cfg.Demo.Duration)
	require.Len(t, cfg.Demo.Components, 1)
	assert.Equal(t, "database", cfg.Demo.Components[0].Name)
	assert.Equal(t, 2, cfg.Demo.Components[0].Publishers)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	require.Error(t, err)
	assert.True(t, errors.IsInvalid(err))
}

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultDebounceInterval, cfg.Aggregator.DebounceInterval)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("APPHEALTH_DEBOUNCE_INTERVAL", "2s")
	t.Setenv("APPHEALTH_KICK_ON_WAIT", "false")
	t.Setenv("APPHEALTH_LOG_LEVEL", "warn")
	t.Setenv("APPHEALTH_LOG_FORMAT", "text")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 2*time.Second, cfg.Aggregator.DebounceInterval)
	assert.False(t, cfg.Aggregator.KickOnWait)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, LogFormatText, cfg.Logging.Format)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "defaults are valid",
			mutate: func(*Config) {},
		},
		{
			name:    "zero debounce interval",
			mutate:  func(c *Config) { c.Aggregator.DebounceInterval = 0 },
			wantErr: true,
		},
		{
			name:    "negative debounce interval",
			mutate:  func(c *Config) { c.Aggregator.DebounceInterval = -time.Second },
			wantErr: true,
		},
		{
			name:    "excessive debounce interval",
			mutate:  func(c *Config) { c.Aggregator.DebounceInterval = 2 * time.Hour },
			wantErr: true,
		},
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: true,
		},
		{
			name:    "unknown log format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: true,
		},
		{
			name: "demo component without name",
			mutate: func(c *Config) {
				c.Demo.Components = []DemoComponent{{Publishers: 1}}
			},
			wantErr: true,
		},
		{
			name: "demo component without publishers",
			mutate: func(c *Config) {
				c.Demo.Components = []DemoComponent{{Name: "db"}}
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, errors.ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
