// ABOUTME: Default implementations for library dependencies
// ABOUTME: Provides factory functions for creating default service implementations

package bearpage

import (
	"bearpage/core/interfaces"
	"bearpage/infrastructure/cache/memory"
	httpInfra "bearpage/infrastructure/http/standard"
	loggerInfra "bearpage/infrastructure/logger/structured"
	"bearpage/pkg/config"
)

// DefaultHTTPClient creates a rate-limited, retrying HTTP client from settings
func DefaultHTTPClient(settings *config.Config) interfaces.HTTPClient {
	return httpInfra.NewStandardHTTPClientWithOptions(httpInfra.Options{
		Timeout:    settings.HTTP.Timeout,
		UserAgent:  settings.HTTP.UserAgent,
		MaxRetries: settings.HTTP.MaxRetries,
		RateLimit:  settings.HTTP.RateLimit,
		RateBurst:  settings.HTTP.RateBurst,
	})
}

// DefaultMemoryCache creates an in-memory cache from settings
func DefaultMemoryCache(settings *config.Config) interfaces.Cache {
	return memory.NewMemoryCacheWithExpiration(settings.Cache.TTL, settings.Cache.CleanupInterval)
}

// DefaultLogger creates a logrus-backed logger from settings
func DefaultLogger(settings *config.Config) interfaces.Logger {
	return loggerInfra.NewLoggerWithOptions(loggerInfra.Options{
		Level:  settings.Log.Level,
		Format: settings.Log.Format,
		File:   settings.Log.File,
	})
}

// QuietLogger creates a logger that discards all output
func QuietLogger() interfaces.Logger {
	return &quietLogger{}
}

// quietLogger is a logger that discards all output
type quietLogger struct{}

func (q *quietLogger) Debug(msg string, fields map[string]interface{}) {}
func (q *quietLogger) Info(msg string, fields map[string]interface{})  {}
func (q *quietLogger) Warn(msg string, fields map[string]interface{})  {}
func (q *quietLogger) Error(msg string, fields map[string]interface{}) {}

// WithDefaultDependencies fills every unset dependency from the current settings
func WithDefaultDependencies() Option {
	return func(c *Config) error {
		applyDefaults(c)
		return nil
	}
}

// WithQuietMode configures the client to suppress all log output
func WithQuietMode() Option {
	return func(c *Config) error {
		c.Logger = QuietLogger()
		return nil
	}
}

// applyDefaults builds missing dependencies. The cache stays nil when
// caching is disabled in settings.
func applyDefaults(c *Config) {
	if c.HTTPClient == nil {
		c.HTTPClient = DefaultHTTPClient(c.Settings)
	}
	if c.Cache == nil && c.Settings.Cache.Enabled {
		c.Cache = DefaultMemoryCache(c.Settings)
	}
	if c.Logger == nil {
		c.Logger = DefaultLogger(c.Settings)
	}
}
