// ABOUTME: Configuration options for the BearPage library client
// ABOUTME: Provides functional options pattern for flexible client configuration

package bearpage

import (
	"bearpage/core/interfaces"
	"bearpage/pkg/config"
	"bearpage/pkg/featureflags"
)

// Option is a functional option for configuring the client
type Option func(*Config) error

// WithCache sets a custom cache implementation
func WithCache(cache interfaces.Cache) Option {
	return func(c *Config) error {
		c.Cache = cache
		return nil
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client interfaces.HTTPClient) Option {
	return func(c *Config) error {
		c.HTTPClient = client
		return nil
	}
}

// WithLogger sets a custom logger
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithSettings replaces the application settings
func WithSettings(settings *config.Config) Option {
	return func(c *Config) error {
		if settings == nil {
			return NewError(ErrorTypeConfiguration, "settings cannot be nil")
		}
		copied := *settings
		c.Settings = &copied
		return nil
	}
}

// WithConfigFile loads settings from a YAML file plus BEARPAGE_* overrides
func WithConfigFile(path string) Option {
	return func(c *Config) error {
		settings, err := config.Load(path)
		if err != nil {
			return NewError(ErrorTypeConfiguration, "failed to load config file").
				WithCause(err).
				WithContext("path", path)
		}
		c.Settings = settings
		return nil
	}
}

// WithFlags sets the feature flag manager attached to every call
func WithFlags(manager featureflags.Manager) Option {
	return func(c *Config) error {
		c.Flags = manager
		return nil
	}
}

// WithEnvFlags reads feature flags from environment variables with prefix
func WithEnvFlags(prefix string) Option {
	return func(c *Config) error {
		c.Flags = featureflags.NewEnvManager(prefix)
		return nil
	}
}

// WithPageID sets the page loaded when callers pass an empty page
func WithPageID(pageID string) Option {
	return func(c *Config) error {
		if pageID == "" {
			return NewError(ErrorTypeConfiguration, "page id cannot be empty")
		}
		c.Settings.Wiki.PageID = pageID
		return nil
	}
}

// WithStrategy selects the extraction strategy: "wikitext" or "html"
func WithStrategy(strategy string) Option {
	return func(c *Config) error {
		if strategy != config.StrategyWikitext && strategy != config.StrategyHTML {
			return NewError(ErrorTypeConfiguration, "invalid strategy").
				WithContext("strategy", strategy)
		}
		c.Settings.Wiki.Strategy = strategy
		return nil
	}
}

// WithImageProbe enables or disables HEAD checks of resolved images
func WithImageProbe(enabled bool) Option {
	return func(c *Config) error {
		c.Settings.Images.Probe = enabled
		return nil
	}
}

// defaultConfig returns the default client configuration; dependencies left
// nil are built from Settings when the client is created
func defaultConfig() Config {
	return Config{
		Settings: config.Default(),
	}
}
