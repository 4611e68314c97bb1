// Package config loads the BreakTimer TOML configuration.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

//go:embed config.example.toml
var exampleConf []byte

// MinInterval is the shortest reminder period accepted.
const MinInterval = time.Second

var (
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrConfigExists  = errors.New("config file already exists")
)

// Config is the application configuration.
type Config struct {
	Timer         TimerConfig         `toml:"timer"`
	Window        WindowConfig        `toml:"window"`
	Notifications NotificationsConfig `toml:"notifications"`
	UI            UIConfig            `toml:"ui"`
	Log           LogConfig           `toml:"log"`
}

// TimerConfig holds the reminder period.
type TimerConfig struct {
	Interval time.Duration `toml:"interval"`
}

// WindowConfig describes the host window.
type WindowConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

// NotificationsConfig controls delivery.
type NotificationsConfig struct {
	AskPermission bool    `toml:"ask_permission"`
	Sound         bool    `toml:"sound"`
	Volume        float64 `toml:"volume"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Language string `toml:"language"`
}

// LogConfig holds the log level name.
type LogConfig struct {
	Level string `toml:"level"`
}

// DefaultConfig returns the configuration embedded in the binary.
func DefaultConfig() *Config {
	var cfg Config
	if err := toml.Unmarshal(exampleConf, &cfg); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &cfg
}

// DefaultPath returns the per-user config file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(dir, "breaktimer", "config.toml")
}

// Load reads path over the defaults. A missing file yields the defaults.
// The result is not validated; callers run Validate after applying their
// overrides.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// CreateConfigFile writes the example configuration to path.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w at %s", ErrConfigExists, path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, exampleConf, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks the configuration for values the application cannot use.
func (c *Config) Validate() error {
	if c.Timer.Interval < MinInterval {
		return fmt.Errorf("%w: timer.interval must be at least %s, got %s", ErrInvalidConfig, MinInterval, c.Timer.Interval)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size must be positive, got %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if c.Notifications.Volume < -5 || c.Notifications.Volume > 5 {
		return fmt.Errorf("%w: notifications.volume must be within [-5, 5], got %v", ErrInvalidConfig, c.Notifications.Volume)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalidConfig, err)
	}
	return nil
}

// LogLevel returns the parsed log level, falling back to info.
func (c *Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
