package locfetch

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the startup configuration for a translation client.
type Config struct {
	// ServiceURL is the base URL of the remote translation service.
	ServiceURL string `yaml:"service_url"`

	// RequestTimeoutSeconds bounds a single remote fetch (default: 10).
	RequestTimeoutSeconds int `yaml:"request_timeout_seconds"`

	// DefaultPlatform is used when a lookup names no platform (default: "api").
	DefaultPlatform string `yaml:"default_platform"`

	// DefaultLanguage is used when a lookup names no language (default: "en").
	DefaultLanguage string `yaml:"default_language"`

	// CacheMinutes is how long a fetched record stays fresh (default: 60).
	CacheMinutes int `yaml:"cache_minutes"`

	// SuppressSeconds is how long remote fetches are skipped for a key
	// after a failure (default: 30).
	SuppressSeconds int `yaml:"suppress_seconds"`

	// Redis configures the optional persistent cache tier.
	Redis RedisConfig `yaml:"redis"`
}

// RedisConfig configures the Redis-backed persistent tier. An empty
// URL leaves the client memory-only.
type RedisConfig struct {
	URL       string `yaml:"url"`
	KeyPrefix string `yaml:"key_prefix"`
}

// LoadConfig reads a YAML config file, applies defaults and validates.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 - config path is intentionally user-provided
	if err != nil {
		return nil, &ConfigError{Message: "reading config file", Cause: err}
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &ConfigError{Message: "parsing config file", Cause: err}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the configuration for fatal omissions.
func (c *Config) Validate() error {
	if c.ServiceURL == "" {
		return &ConfigError{Message: "service_url is required"}
	}
	return nil
}

// TTL returns the cache TTL as a duration.
func (c *Config) TTL() time.Duration {
	return time.Duration(c.CacheMinutes) * time.Minute
}

// SuppressionWindow returns the failure suppression window as a duration.
func (c *Config) SuppressionWindow() time.Duration {
	return time.Duration(c.SuppressSeconds) * time.Second
}

// RequestTimeout returns the remote request timeout as a duration.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

func (c *Config) applyDefaults() {
	if c.RequestTimeoutSeconds <= 0 {
		c.RequestTimeoutSeconds = 10
	}
	if c.DefaultPlatform == "" {
		c.DefaultPlatform = DefaultPlatform
	}
	if c.DefaultLanguage == "" {
		c.DefaultLanguage = DefaultLanguage
	}
	if c.CacheMinutes <= 0 {
		c.CacheMinutes = int(DefaultTTL / time.Minute)
	}
	if c.SuppressSeconds <= 0 {
		c.SuppressSeconds = int(DefaultSuppressionWindow / time.Second)
	}
}
