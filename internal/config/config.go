package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Default pagination bound when the config file does not set one.
// Sized for a classic dialogue box: roughly three lines of 40 columns.
const DefaultMaxChars = 120

// DefaultCacheTTLSeconds is the default asset-cache TTL (one hour).
const DefaultCacheTTLSeconds = 3600

// Environment variable overrides applied on top of the config file.
const (
	EnvDataDir   = "GAMETEXT_DATA_DIR"
	EnvBundleDir = "GAMETEXT_BUNDLE_DIR"
	EnvLogLevel  = "GAMETEXT_LOG_LEVEL"
)

// Config validation errors.
var (
	ErrNegativeMaxChars = errors.New("paginate max_chars cannot be negative")
	ErrNegativeCacheTTL = errors.New("assets cache_ttl_seconds cannot be negative")
	ErrInvalidLogFormat = errors.New("logging format must be 'console' or 'json'")
)

// AssetsConfig configures where named assets are searched for.
type AssetsConfig struct {
	// DataDir is the app-writable data directory, searched before the bundle.
	DataDir string `yaml:"data_dir,omitempty"`

	// BundleDir is the bundled-assets directory shipped with the game.
	BundleDir string `yaml:"bundle_dir,omitempty"`

	// CacheTTLSeconds is the TTL for the resolved-text cache. 0 caches forever.
	CacheTTLSeconds int `yaml:"cache_ttl_seconds,omitempty"`
}

// PaginateConfig configures the default pagination bound.
type PaginateConfig struct {
	// MaxChars is the default page bound in characters. 0 disables pagination.
	MaxChars int `yaml:"max_chars,omitempty"`
}

// LoggingConfig configures the global logger.
type LoggingConfig struct {
	// Level is the zerolog level name (e.g. "info", "debug").
	Level string `yaml:"level,omitempty"`

	// Format is "console" or "json".
	Format string `yaml:"format,omitempty"`

	// File is an optional log file path; empty logs to stderr only.
	File string `yaml:"file,omitempty"`
}

// Config is the root configuration for the gametext CLI and library.
type Config struct {
	Assets   AssetsConfig   `yaml:"assets"`
	Paginate PaginateConfig `yaml:"paginate"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// Default returns the built-in configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Assets: AssetsConfig{
			CacheTTLSeconds: DefaultCacheTTLSeconds,
		},
		Paginate: PaginateConfig{
			MaxChars: DefaultMaxChars,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// DefaultPath returns the default config file location,
// $HOME/.gametext/config.yaml, or an empty string when the home directory
// cannot be determined.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gametext", "config.yaml")
}

// Load reads the config file at path, applies environment overrides, and
// validates the result. A missing file is not an error: defaults plus env
// overrides are returned. An empty path uses DefaultPath.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath()
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if unmarshalErr := yaml.Unmarshal(data, cfg); unmarshalErr != nil {
				return nil, fmt.Errorf("parsing config %s: %w", path, unmarshalErr)
			}
		case os.IsNotExist(err):
			// Missing config is fine — run on defaults.
		default:
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnv overlays environment variable overrides onto the config.
func (c *Config) applyEnv() {
	if dir := os.Getenv(EnvDataDir); dir != "" {
		c.Assets.DataDir = dir
	}
	if dir := os.Getenv(EnvBundleDir); dir != "" {
		c.Assets.BundleDir = dir
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.Logging.Level = level
	}
}

// Validate checks the configuration for values that cannot be honored.
func (c *Config) Validate() error {
	if c.Paginate.MaxChars < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeMaxChars, c.Paginate.MaxChars)
	}
	if c.Assets.CacheTTLSeconds < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeCacheTTL, c.Assets.CacheTTLSeconds)
	}
	if c.Logging.Format != "" && c.Logging.Format != "console" && c.Logging.Format != "json" {
		return fmt.Errorf("%w: got %q", ErrInvalidLogFormat, c.Logging.Format)
	}
	return nil
}
