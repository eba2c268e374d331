// ABOUTME: Configuration management for the page enhancer with file and environment support
// ABOUTME: Defines configuration structures for the encyclopedia API, images, HTTP, cache and logging

package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment overrides, e.g. BEARPAGE_WIKI__PAGE_ID
const EnvPrefix = "BEARPAGE_"

// Strategy names accepted by WikiConfig.Strategy
const (
	StrategyWikitext = "wikitext"
	StrategyHTML     = "html"
)

// Config holds all application configuration
type Config struct {
	// Wiki contains encyclopedia API configuration
	Wiki WikiConfig `koanf:"wiki"`

	// Images contains image resolution configuration
	Images ImagesConfig `koanf:"images"`

	// HTTP contains outgoing HTTP client configuration
	HTTP HTTPConfig `koanf:"http"`

	// Cache contains response cache configuration
	Cache CacheConfig `koanf:"cache"`

	// Log contains logger configuration
	Log LogConfig `koanf:"log"`
}

// WikiConfig holds encyclopedia API configuration
type WikiConfig struct {
	// APIBase is the MediaWiki api.php endpoint
	APIBase string `koanf:"api_base"`

	// PageID is the page loaded when callers pass an empty page
	PageID string `koanf:"page_id"`

	// Section restricts the parse request to one section; 0 means whole page
	Section int `koanf:"section"`

	// Strategy selects the extraction strategy: wikitext or html
	Strategy string `koanf:"strategy"`

	// MaxItems caps the rendered-HTML strategy
	MaxItems int `koanf:"max_items"`
}

// ImagesConfig holds image resolution configuration
type ImagesConfig struct {
	// Placeholder replaces images that cannot be resolved or reached
	Placeholder string `koanf:"placeholder"`

	// Probe verifies resolved URLs with a HEAD request
	Probe bool `koanf:"probe"`

	// Concurrency bounds parallel image lookups
	Concurrency int `koanf:"concurrency"`
}

// HTTPConfig holds outgoing HTTP configuration
type HTTPConfig struct {
	// Timeout is the http.Client timeout
	Timeout time.Duration `koanf:"timeout"`

	// RequestTimeout bounds each encyclopedia call made by the loader
	RequestTimeout time.Duration `koanf:"request_timeout"`

	// UserAgent is sent with every request
	UserAgent string `koanf:"user_agent"`

	// MaxRetries is the number of attempts per request
	MaxRetries int `koanf:"max_retries"`

	// RateLimit is the number of requests per second; 0 disables limiting
	RateLimit float64 `koanf:"rate_limit"`

	// RateBurst is the limiter bucket size
	RateBurst int `koanf:"rate_burst"`
}

// CacheConfig holds in-process response cache configuration
type CacheConfig struct {
	// Enabled turns the response cache on
	Enabled bool `koanf:"enabled"`

	// TTL is how long a live species list is reused
	TTL time.Duration `koanf:"ttl"`

	// CleanupInterval is how often expired entries are purged
	CleanupInterval time.Duration `koanf:"cleanup_interval"`
}

// LogConfig holds logger configuration
type LogConfig struct {
	// Level is one of debug, info, warn, error
	Level string `koanf:"level"`

	// Format is text or json
	Format string `koanf:"format"`

	// File enables a rotating log file when set
	File string `koanf:"file"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Wiki: WikiConfig{
			APIBase:  "https://en.wikipedia.org/w/api.php",
			PageID:   "List_of_ursids",
			Strategy: StrategyWikitext,
			MaxItems: 20,
		},
		Images: ImagesConfig{
			Placeholder: "media/placeholder-bear.svg",
			Probe:       true,
			Concurrency: 4,
		},
		HTTP: HTTPConfig{
			Timeout:        30 * time.Second,
			RequestTimeout: 10 * time.Second,
			MaxRetries:     3,
			RateLimit:      5,
			RateBurst:      5,
		},
		Cache: CacheConfig{
			Enabled:         true,
			TTL:             time.Hour,
			CleanupInterval: 10 * time.Minute,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load starts from Default, overlays the YAML file at path when it exists,
// then overlays BEARPAGE_* environment variables. A double underscore in a
// variable name separates nesting levels: BEARPAGE_WIKI__PAGE_ID -> wiki.page_id.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// LoadFromEnv loads configuration from defaults and environment variables only
func LoadFromEnv() (*Config, error) {
	return Load("")
}

// envKey maps BEARPAGE_HTTP__RATE_LIMIT to http.rate_limit
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Wiki.APIBase == "" {
		return errors.New("wiki api base cannot be empty")
	}

	u, err := url.Parse(c.Wiki.APIBase)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("wiki api base %q is not an absolute URL", c.Wiki.APIBase)
	}

	if c.Wiki.PageID == "" {
		return errors.New("wiki page id cannot be empty")
	}

	if c.Wiki.Strategy != StrategyWikitext && c.Wiki.Strategy != StrategyHTML {
		return errors.New("wiki strategy must be 'wikitext' or 'html'")
	}

	if c.Wiki.Section < 0 {
		return errors.New("wiki section cannot be negative")
	}

	if c.Wiki.MaxItems < 1 {
		return errors.New("wiki max items must be at least 1")
	}

	if c.Images.Placeholder == "" {
		return errors.New("image placeholder cannot be empty")
	}

	if c.Images.Concurrency < 1 {
		return errors.New("image concurrency must be at least 1")
	}

	if c.HTTP.RequestTimeout <= 0 {
		return errors.New("request timeout must be positive")
	}

	if c.HTTP.RateLimit < 0 {
		return errors.New("rate limit cannot be negative")
	}

	if c.Cache.Enabled && c.Cache.TTL <= 0 {
		return errors.New("cache ttl must be positive when the cache is enabled")
	}

	return nil
}
