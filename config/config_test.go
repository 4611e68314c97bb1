package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 15*time.Minute, cfg.Timer.Interval)
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height)
	assert.Equal(t, "Notification Timer", cfg.Window.Title)
	assert.True(t, cfg.Notifications.AskPermission)
	assert.True(t, cfg.Notifications.Sound)
	assert.Equal(t, log.InfoLevel, cfg.LogLevel())
	require.NoError(t, cfg.Validate())
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `[timer]
interval = "10s"

[notifications]
sound = false

[log]
level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 10*time.Second, cfg.Timer.Interval)
	assert.False(t, cfg.Notifications.Sound)
	assert.Equal(t, log.DebugLevel, cfg.LogLevel())
	assert.Equal(t, 800, cfg.Window.Width)
	assert.True(t, cfg.Notifications.AskPermission)
}

func TestLoadLeavesValidationToCaller(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[timer]\ninterval = \"500ms\"\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 500*time.Millisecond, cfg.Timer.Interval)
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[timer\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestCreateConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	require.NoError(t, CreateConfigFile(path))
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	assert.ErrorIs(t, CreateConfigFile(path), ErrConfigExists)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "minimum interval", mutate: func(c *Config) { c.Timer.Interval = time.Second }},
		{name: "interval too short", mutate: func(c *Config) { c.Timer.Interval = 0 }, wantErr: true},
		{name: "zero width", mutate: func(c *Config) { c.Window.Width = 0 }, wantErr: true},
		{name: "negative height", mutate: func(c *Config) { c.Window.Height = -1 }, wantErr: true},
		{name: "volume too loud", mutate: func(c *Config) { c.Notifications.Volume = 6 }, wantErr: true},
		{name: "unknown log level", mutate: func(c *Config) { c.Log.Level = "chatty" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
