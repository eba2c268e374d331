// ABOUTME: Species loader fetches the bear species list from the encyclopedia API
// ABOUTME: Extracts, deduplicates and resolves images, falling back to a static list on failure

package species

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"bearpage/core/domain"
	coreerrors "bearpage/core/errors"
	"bearpage/core/interfaces"
	"bearpage/pkg/config"
	"bearpage/pkg/featureflags"
	"github.com/google/uuid"
)

// Extraction strategies
const (
	StrategyWikitext = config.StrategyWikitext
	StrategyHTML     = config.StrategyHTML
)

// Config controls where and how species are loaded
type Config struct {
	APIBase          string
	PageID           string
	Section          int
	Strategy         string
	MaxItems         int
	Placeholder      string
	ProbeImages      bool
	ImageConcurrency int
	RequestTimeout   time.Duration
	CacheEnabled     bool
	CacheTTL         time.Duration
}

// DefaultConfig returns the loader configuration derived from config.Default
func DefaultConfig() Config {
	return NewConfig(config.Default())
}

// NewConfig maps application settings onto the loader configuration
func NewConfig(c *config.Config) Config {
	return Config{
		APIBase:          c.Wiki.APIBase,
		PageID:           c.Wiki.PageID,
		Section:          c.Wiki.Section,
		Strategy:         c.Wiki.Strategy,
		MaxItems:         c.Wiki.MaxItems,
		Placeholder:      c.Images.Placeholder,
		ProbeImages:      c.Images.Probe,
		ImageConcurrency: c.Images.Concurrency,
		RequestTimeout:   c.HTTP.RequestTimeout,
		CacheEnabled:     c.Cache.Enabled,
		CacheTTL:         c.Cache.TTL,
	}
}

// Loader implements interfaces.SpeciesLoader
type Loader struct {
	deps interfaces.Dependencies
	cfg  Config
}

// NewLoader creates a new species loader
func NewLoader(deps interfaces.Dependencies, cfg Config) *Loader {
	defaults := DefaultConfig()
	if cfg.APIBase == "" {
		cfg.APIBase = defaults.APIBase
	}
	if cfg.PageID == "" {
		cfg.PageID = defaults.PageID
	}
	if cfg.Strategy == "" {
		cfg.Strategy = defaults.Strategy
	}
	if cfg.Placeholder == "" {
		cfg.Placeholder = defaults.Placeholder
	}
	if cfg.ImageConcurrency <= 0 {
		cfg.ImageConcurrency = defaults.ImageConcurrency
	}
	if deps.Logger == nil {
		deps.Logger = nopLogger{}
	}

	return &Loader{
		deps: deps,
		cfg:  cfg,
	}
}

// Config returns the effective loader configuration
func (l *Loader) Config() Config {
	return l.cfg
}

// Load returns the species for pageID, or the fallback list when anything
// goes wrong. An empty pageID loads the configured default page.
func (l *Loader) Load(ctx context.Context, pageID string) []domain.SpeciesRecord {
	loadID := uuid.NewString()

	records, err := l.load(ctx, pageID, loadID)
	if err != nil {
		l.deps.Logger.Warn("Species load failed, using fallback list", map[string]interface{}{
			"load_id": loadID,
			"page":    l.pageOrDefault(pageID),
			"kind":    coreerrors.Kind(err),
			"error":   err.Error(),
		})
		return domain.FallbackSpecies()
	}

	return records
}

// LoadLive loads species from the encyclopedia without falling back
func (l *Loader) LoadLive(ctx context.Context, pageID string) ([]domain.SpeciesRecord, error) {
	return l.load(ctx, pageID, uuid.NewString())
}

func (l *Loader) load(ctx context.Context, pageID, loadID string) ([]domain.SpeciesRecord, error) {
	pageID = l.pageOrDefault(pageID)
	strategy := l.strategy(ctx)
	fields := map[string]interface{}{
		"load_id":  loadID,
		"page":     pageID,
		"strategy": strategy,
	}

	cacheKey := fmt.Sprintf("species:%s:%s", strategy, pageID)
	useCache := l.deps.Cache != nil && l.cfg.CacheEnabled &&
		!featureflags.IsEnabled(ctx, featureflags.ResponseCacheBypass)

	// Check cache first
	if useCache {
		if cached, ok := l.getCached(ctx, cacheKey); ok {
			l.deps.Logger.Debug("Species served from cache", fields)
			return cached, nil
		}
	}

	if l.deps.HTTPClient == nil {
		return nil, errors.New("HTTP client not configured")
	}

	var records []domain.SpeciesRecord
	switch strategy {
	case StrategyHTML:
		body, err := l.fetchParse(ctx, pageID, "text")
		if err != nil {
			return nil, err
		}
		records, err = ParseRenderedHTML(body, l.cfg.MaxItems)
		if err != nil {
			return nil, &coreerrors.MalformedResponseError{API: "parse", Reason: err.Error()}
		}
	default:
		body, err := l.fetchParse(ctx, pageID, "wikitext")
		if err != nil {
			return nil, err
		}
		records = ParseWikitext(body)
	}

	extracted := len(records)
	records = domain.Dedupe(records)
	if len(records) == 0 {
		return nil, &coreerrors.EmptyResultError{PageID: pageID}
	}

	l.deps.Logger.Debug("Species extracted", map[string]interface{}{
		"load_id":   loadID,
		"extracted": extracted,
		"unique":    len(records),
	})

	if err := l.resolveImages(ctx, records, loadID); err != nil {
		return nil, err
	}

	if useCache {
		l.cache(ctx, cacheKey, records)
	}

	l.deps.Logger.Info("Species loaded", map[string]interface{}{
		"load_id":  loadID,
		"page":     pageID,
		"strategy": strategy,
		"records":  len(records),
	})

	return records, nil
}

func (l *Loader) pageOrDefault(pageID string) string {
	if pageID == "" {
		return l.cfg.PageID
	}
	return pageID
}

// strategy picks the extraction strategy; the rendered-HTML flag overrides config
func (l *Loader) strategy(ctx context.Context) string {
	if featureflags.IsEnabled(ctx, featureflags.RenderedHTMLStrategy) {
		return StrategyHTML
	}
	if l.cfg.Strategy == StrategyHTML {
		return StrategyHTML
	}
	return StrategyWikitext
}

// parseEnvelope is the subset of the parse API response we read
type parseEnvelope struct {
	Parse *struct {
		Title    string            `json:"title"`
		Wikitext map[string]string `json:"wikitext"`
		Text     map[string]string `json:"text"`
	} `json:"parse"`
	Error *apiError `json:"error"`
}

type apiError struct {
	Code string `json:"code"`
	Info string `json:"info"`
}

// parseURL builds the parse request for prop ("wikitext" or "text")
func (l *Loader) parseURL(pageID, prop string) string {
	params := url.Values{}
	params.Set("action", "parse")
	params.Set("page", pageID)
	params.Set("prop", prop)
	params.Set("format", "json")
	params.Set("origin", "*")
	if l.cfg.Section > 0 {
		params.Set("section", strconv.Itoa(l.cfg.Section))
	}
	return l.cfg.APIBase + "?" + params.Encode()
}

// fetchParse fetches the parse API and returns the requested content
func (l *Loader) fetchParse(ctx context.Context, pageID, prop string) (string, error) {
	requestURL := l.parseURL(pageID, prop)

	var envelope parseEnvelope
	if err := l.getJSON(ctx, requestURL, "parse", &envelope); err != nil {
		return "", err
	}

	if envelope.Error != nil {
		return "", &coreerrors.MalformedResponseError{
			API:    "parse",
			Reason: fmt.Sprintf("api error %s: %s", envelope.Error.Code, envelope.Error.Info),
		}
	}

	if envelope.Parse == nil {
		return "", &coreerrors.MalformedResponseError{API: "parse", Reason: "missing parse object"}
	}

	content := envelope.Parse.Wikitext
	if prop == "text" {
		content = envelope.Parse.Text
	}
	body, ok := content["*"]
	if !ok {
		return "", &coreerrors.MalformedResponseError{API: "parse", Reason: "missing " + prop + " content"}
	}

	return body, nil
}

// getJSON performs a bounded GET and decodes a 2xx JSON body into v
func (l *Loader) getJSON(ctx context.Context, requestURL, api string, v interface{}) error {
	reqCtx, cancel := l.withTimeout(ctx)
	defer cancel()

	resp, err := l.deps.HTTPClient.Get(reqCtx, requestURL)
	if err != nil {
		return &coreerrors.NetworkError{URL: requestURL, Err: err}
	}
	defer resp.Body().Close()

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		return &coreerrors.NetworkError{URL: requestURL, StatusCode: resp.StatusCode()}
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return &coreerrors.NetworkError{URL: requestURL, Err: err}
	}

	if err := json.Unmarshal(body, v); err != nil {
		return &coreerrors.MalformedResponseError{API: api, Reason: err.Error()}
	}

	return nil
}

func (l *Loader) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if l.cfg.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, l.cfg.RequestTimeout)
}

// getCached retrieves a cached species list
func (l *Loader) getCached(ctx context.Context, key string) ([]domain.SpeciesRecord, bool) {
	data, err := l.deps.Cache.Get(ctx, key)
	if err != nil || len(data) == 0 {
		return nil, false
	}

	var records []domain.SpeciesRecord
	if err := json.Unmarshal(data, &records); err != nil || len(records) == 0 {
		return nil, false
	}

	return records, true
}

// cache stores a live species list (ignore cache errors)
func (l *Loader) cache(ctx context.Context, key string, records []domain.SpeciesRecord) {
	data, err := json.Marshal(records)
	if err != nil {
		return
	}
	if err := l.deps.Cache.Set(ctx, key, data, l.cfg.CacheTTL); err != nil {
		l.deps.Logger.Debug("Failed to cache species", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
}

// nopLogger discards everything
type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{}) {}
func (nopLogger) Info(string, map[string]interface{}) {}
func (nopLogger) Warn(string, map[string]interface{}) {}
func (nopLogger) Error(string, map[string]interface{}) {}
