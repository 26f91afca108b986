package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the nasaimager configuration.
type Config struct {
	API   APIConfig   `toml:"api"`
	Cache CacheConfig `toml:"cache"`
	Log   LogConfig   `toml:"log"`
	UI    UIConfig    `toml:"ui"`
}

// APIConfig configures the image API client.
type APIConfig struct {
	BaseURL           string  `toml:"base_url"`
	Timeout           string  `toml:"timeout"`             // Go duration, e.g. "10s"
	RequestsPerSecond float64 `toml:"requests_per_second"` // negative disables limiting
}

// CacheConfig configures response caching.
type CacheConfig struct {
	Path   string `toml:"path"` // SQLite file; empty disables the disk tier
	TTL    string `toml:"ttl"`
	Memory bool   `toml:"memory"`
}

// LogConfig configures the log file.
type LogConfig struct {
	Path  string `toml:"path"`
	Level string `toml:"level"` // debug, info, warn, error
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Dark bool `toml:"dark"` // initial theme mode; toggling is not saved
}

const (
	defaultConfigPath = "~/.config/nasaimager/config.toml"
	defaultLogPath    = "~/.local/share/nasaimager/nasaimager.log"
	defaultBaseURL    = "https://images-api.nasa.gov"
	defaultTimeout    = "10s"
	defaultRate       = 4.0
	defaultCacheTTL   = "24h"
	defaultLogLevel   = "info"
)

var validLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:           defaultBaseURL,
			Timeout:           defaultTimeout,
			RequestsPerSecond: defaultRate,
		},
		Cache: CacheConfig{
			TTL:    defaultCacheTTL,
			Memory: true,
		},
		Log: LogConfig{
			Path:  defaultLogPath,
			Level: defaultLogLevel,
		},
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return mustExpand(defaultConfigPath)
}

// Load reads the config at path (the default location when empty), overlays
// environment overrides, expands paths and validates the result. A missing
// file is not an error.
func Load(path string) (*Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := loadFromFile(resolved, cfg); err != nil {
		return nil, err
	}
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	cfg.API.BaseURL = strings.TrimSpace(cfg.API.BaseURL)
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = defaultBaseURL
	}
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaultLogLevel
	}
	if p := strings.TrimSpace(cfg.Log.Path); p != "" {
		cfg.Log.Path = mustExpand(p)
	}
	if p := strings.TrimSpace(cfg.Cache.Path); p != "" {
		cfg.Cache.Path = mustExpand(p)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}

// applyEnvOverrides lets NASAIMAGER_* variables win over the file.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("NASAIMAGER_API_BASE_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("NASAIMAGER_API_TIMEOUT"); v != "" {
		cfg.API.Timeout = v
	}
	if v := os.Getenv("NASAIMAGER_CACHE_PATH"); v != "" {
		cfg.Cache.Path = v
	}
	if v := os.Getenv("NASAIMAGER_CACHE_TTL"); v != "" {
		cfg.Cache.TTL = v
	}
	if v := os.Getenv("NASAIMAGER_LOG_PATH"); v != "" {
		cfg.Log.Path = v
	}
	if v := os.Getenv("NASAIMAGER_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("NASAIMAGER_UI_DARK"); v != "" {
		dark, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parse NASAIMAGER_UI_DARK: %w", err)
		}
		cfg.UI.Dark = dark
	}
	return nil
}

// Validate checks durations and the log level.
func (c *Config) Validate() error {
	timeout, err := time.ParseDuration(c.API.Timeout)
	if err != nil {
		return fmt.Errorf("api.timeout: %w", err)
	}
	if timeout <= 0 {
		return fmt.Errorf("api.timeout must be positive, got %q", c.API.Timeout)
	}
	ttl, err := time.ParseDuration(c.Cache.TTL)
	if err != nil {
		return fmt.Errorf("cache.ttl: %w", err)
	}
	if ttl <= 0 {
		return fmt.Errorf("cache.ttl must be positive, got %q", c.Cache.TTL)
	}
	if !validLevels[c.Log.Level] {
		return fmt.Errorf("invalid log.level: %q", c.Log.Level)
	}
	return nil
}

// Timeout returns the parsed API timeout. Call after Validate.
func (c *Config) Timeout() time.Duration {
	d, err := time.ParseDuration(c.API.Timeout)
	if err != nil {
		return 0
	}
	return d
}

// CacheTTL returns the parsed cache TTL. Call after Validate.
func (c *Config) CacheTTL() time.Duration {
	d, err := time.ParseDuration(c.Cache.TTL)
	if err != nil {
		return 0
	}
	return d
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
