package vrml

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultMaxExpansionDepth bounds the recursive prototype expansion in
// the absence of explicit configuration. It is the sole termination
// guarantee for self- or mutually-referential prototypes.
const DefaultMaxExpansionDepth = 10

// Config contains all configuration options for the parser engine.
type Config struct {
	// LogLevel controls the verbosity of diagnostics (debug, info, warn, error, off).
	LogLevel string
	// LogOutput receives diagnostic lines. Nil means discard.
	LogOutput io.Writer
	// MaxExpansionDepth is the ceiling on recursive prototype expansion passes.
	MaxExpansionDepth int
	// CacheMaxSize is the maximum number of parsed scenes to cache. 0 disables caching.
	CacheMaxSize int
	// CacheTTL is the time-to-live for cached scenes. 0 means no expiration.
	CacheTTL time.Duration
	// StrictMode promotes degradation diagnostics (unresolved bindings)
	// from warnings to errors in the log. It never turns a degraded parse
	// into a failed one.
	StrictMode bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:          "info",
		MaxExpansionDepth: DefaultMaxExpansionDepth,
		CacheMaxSize:      100,
		CacheTTL:          0,
		StrictMode:        false,
	}
}

// ConfigFromEnvironment creates a configuration from environment variables.
func ConfigFromEnvironment() *Config {
	config := DefaultConfig()

	if val := os.Getenv("WRL_LOG_LEVEL"); val != "" {
		config.LogLevel = val
	}

	if val := os.Getenv("WRL_MAX_EXPANSION_DEPTH"); val != "" {
		if depth, err := strconv.Atoi(val); err == nil {
			config.MaxExpansionDepth = depth
		}
	}

	if val := os.Getenv("WRL_CACHE_MAX_SIZE"); val != "" {
		if size, err := strconv.Atoi(val); err == nil {
			config.CacheMaxSize = size
		}
	}

	if val := os.Getenv("WRL_CACHE_TTL"); val != "" {
		if duration, err := time.ParseDuration(val); err == nil {
			config.CacheTTL = duration
		}
	}

	if val := os.Getenv("WRL_STRICT_MODE"); val != "" {
		config.StrictMode = val == "1" || val == "true" || val == "yes"
	}

	return config
}

// fileConfig mirrors Config for YAML decoding; the TTL is a duration
// string ("30s", "5m") rather than raw nanoseconds.
type fileConfig struct {
	LogLevel          string `yaml:"log_level"`
	MaxExpansionDepth int    `yaml:"max_expansion_depth"`
	CacheMaxSize      int    `yaml:"cache_max_size"`
	CacheTTL          string `yaml:"cache_ttl"`
	StrictMode        bool   `yaml:"strict_mode"`
}

// LoadConfigFile reads a YAML configuration file and applies defaults to
// unset fields. Durations use Go syntax ("30s", "5m").
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	config := &Config{
		LogLevel:          fc.LogLevel,
		MaxExpansionDepth: fc.MaxExpansionDepth,
		CacheMaxSize:      fc.CacheMaxSize,
		StrictMode:        fc.StrictMode,
	}
	if fc.CacheTTL != "" {
		ttl, err := time.ParseDuration(fc.CacheTTL)
		if err != nil {
			return nil, fmt.Errorf("invalid cache_ttl in %s: %w", path, err)
		}
		config.CacheTTL = ttl
	}
	return NewConfigWithDefaults(config), nil
}

// NewConfigWithDefaults creates a new configuration with defaults applied
// to unset fields.
func NewConfigWithDefaults(overrides *Config) *Config {
	defaults := DefaultConfig()

	if overrides == nil {
		return defaults
	}

	config := *overrides

	if config.LogLevel == "" {
		config.LogLevel = defaults.LogLevel
	}

	if config.MaxExpansionDepth == 0 {
		config.MaxExpansionDepth = defaults.MaxExpansionDepth
	}

	if config.CacheMaxSize == 0 {
		config.CacheMaxSize = defaults.CacheMaxSize
	}

	return &config
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.MaxExpansionDepth <= 0 {
		return errors.New("max expansion depth must be positive")
	}
	if c.CacheMaxSize < 0 {
		return errors.New("cache max size cannot be negative")
	}
	if c.CacheTTL < 0 {
		return errors.New("cache TTL cannot be negative")
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error", "off":
	default:
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}
	return nil
}

// logger builds the injected diagnostic sink for one parser.
func (c *Config) logger() *Logger {
	return NewLogger(c.LogOutput, ParseLogLevel(c.LogLevel))
}

// degrade logs a recovered degradation: a warning normally, an error in
// strict mode.
func degrade(log *Logger, strict bool, format string, args ...interface{}) {
	if strict {
		log.Error(format, args...)
		return
	}
	log.Warn(format, args...)
}
