// ABOUTME: Main client for the BearPage library providing species cards, search and comments
// ABOUTME: Offers a clean API over the core services without any page bootstrapping

package bearpage

import (
	"context"

	"bearpage/core/comments"
	"bearpage/core/highlight"
	"bearpage/core/interfaces"
	"bearpage/core/page"
	"bearpage/core/species"
	"bearpage/pkg/config"
	"bearpage/pkg/featureflags"
	"golang.org/x/net/html"
)

// Client is the main entry point for the BearPage library
type Client struct {
	// Core services
	loader      *species.Loader
	highlighter *highlight.Highlighter
	page        *page.Page

	// Dependencies
	deps interfaces.Dependencies

	// Configuration
	config Config
}

// Config holds the configuration for the client
type Config struct {
	// Cache configuration, nil disables response caching
	Cache interfaces.Cache

	// HTTP client configuration
	HTTPClient interfaces.HTTPClient

	// Logger configuration
	Logger interfaces.Logger

	// Settings holds the encyclopedia, image, HTTP, cache and log settings
	Settings *config.Config

	// Flags is attached to the context of every call when set
	Flags featureflags.Manager
}

// NewClient creates a new BearPage client with the given options
func NewClient(options ...Option) (*Client, error) {
	// Start with default config
	cfg := defaultConfig()

	// Apply options
	for _, opt := range options {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.Settings.Validate(); err != nil {
		return nil, NewError(ErrorTypeConfiguration, "invalid settings").WithCause(err)
	}

	applyDefaults(&cfg)

	// Validate dependencies
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	deps := interfaces.Dependencies{
		HTTPClient: cfg.HTTPClient,
		Cache:      cfg.Cache,
		Logger:     cfg.Logger,
	}

	loader := species.NewLoader(deps, species.NewConfig(cfg.Settings))
	highlighter := highlight.NewHighlighter(deps.Logger)

	return &Client{
		loader:      loader,
		highlighter: highlighter,
		page:        page.NewPage(loader, highlighter, deps.Logger, cfg.Settings.Images.Placeholder),
		deps:        deps,
		config:      cfg,
	}, nil
}

// validateConfig checks that required dependencies are present
func validateConfig(cfg *Config) error {
	if cfg.HTTPClient == nil {
		return ErrNoHTTPClient
	}
	if cfg.Logger == nil {
		return ErrNoLogger
	}
	return nil
}

// Settings returns a copy of the effective settings
func (c *Client) Settings() config.Config {
	return *c.config.Settings
}

// LoadSpecies returns the species for pageID, falling back to the static
// list when the encyclopedia cannot be used. An empty pageID loads the
// configured default page.
func (c *Client) LoadSpecies(ctx context.Context, pageID string) []Species {
	return convertSpecies(c.loader.Load(c.withFlags(ctx), pageID))
}

// LoadSpeciesLive loads species without the fallback list
func (c *Client) LoadSpeciesLive(ctx context.Context, pageID string) ([]Species, error) {
	records, err := c.loader.LoadLive(c.withFlags(ctx), pageID)
	if err != nil {
		return nil, wrapCoreError(err)
	}
	return convertSpecies(records), nil
}

// RenderPage fills the species container of doc with cards for pageID.
// Returns the number of cards rendered.
func (c *Client) RenderPage(ctx context.Context, doc *html.Node, pageID string) (int, error) {
	count, err := c.page.Enhance(c.withFlags(ctx), doc, pageID)
	if err != nil {
		return 0, wrapCoreError(err)
	}
	return count, nil
}

// Search highlights query inside every article of doc and returns the number of matches
func (c *Client) Search(doc *html.Node, query string) int {
	return c.page.Search(doc, query)
}

// ClearSearch removes every highlight from doc
func (c *Client) ClearSearch(doc *html.Node) {
	c.page.ClearSearch(doc)
}

// NewCommentPanel creates a hidden comment panel
func (c *Client) NewCommentPanel() *comments.Panel {
	return comments.NewPanel()
}

// SubmitComment validates a comment and appends it to list
func (c *Client) SubmitComment(list *html.Node, name, text string) (Comment, error) {
	comment, err := comments.Submit(list, name, text)
	if err != nil {
		c.deps.Logger.Debug("Comment rejected", map[string]interface{}{
			"error": err.Error(),
		})
		return Comment{}, wrapCoreError(err)
	}
	return convertComment(comment), nil
}

// withFlags attaches the configured flag manager to ctx
func (c *Client) withFlags(ctx context.Context) context.Context {
	if c.config.Flags == nil {
		return ctx
	}
	return featureflags.WithManager(ctx, c.config.Flags)
}
