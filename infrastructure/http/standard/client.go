// ABOUTME: Standard HTTP client implementation with retry logic, timeout and rate limiting
// ABOUTME: Provides HTTP functionality with exponential backoff for resilient encyclopedia API calls

package standard

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"bearpage/core/interfaces"
	"golang.org/x/time/rate"
)

const (
	defaultMaxRetries = 3
	defaultUserAgent  = "BearPage/1.0 (species card loader)"
)

// Options configures a StandardHTTPClient
type Options struct {
	// Timeout bounds a single request including retries of the transport
	Timeout time.Duration

	// UserAgent is sent with every request
	UserAgent string

	// MaxRetries is the number of attempts for transport errors and 5xx responses
	MaxRetries int

	// RateLimit is the number of requests per second; 0 disables limiting
	RateLimit float64

	// RateBurst is the limiter bucket size
	RateBurst int
}

// StandardHTTPClient implements the HTTPClient interface using standard library
type StandardHTTPClient struct {
	client     *http.Client
	userAgent  string
	maxRetries int
	limiter    *rate.Limiter
}

// NewStandardHTTPClient creates a new HTTP client with the specified timeout
func NewStandardHTTPClient(timeout time.Duration) *StandardHTTPClient {
	return NewStandardHTTPClientWithOptions(Options{Timeout: timeout})
}

// NewStandardHTTPClientWithOptions creates a new HTTP client from options
func NewStandardHTTPClientWithOptions(opts Options) *StandardHTTPClient {
	if opts.UserAgent == "" {
		opts.UserAgent = defaultUserAgent
	}
	if opts.MaxRetries <= 0 {
		opts.MaxRetries = defaultMaxRetries
	}

	c := &StandardHTTPClient{
		client: &http.Client{
			Timeout: opts.Timeout,
		},
		userAgent:  opts.UserAgent,
		maxRetries: opts.MaxRetries,
	}

	if opts.RateLimit > 0 {
		burst := opts.RateBurst
		if burst <= 0 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), burst)
	}

	return c
}

// Get performs an HTTP GET request
func (c *StandardHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	return c.do(ctx, http.MethodGet, url)
}

// Head performs an HTTP HEAD request
func (c *StandardHTTPClient) Head(ctx context.Context, url string) (interfaces.Response, error) {
	return c.do(ctx, http.MethodHead, url)
}

// do performs a body-less request with retry logic
func (c *StandardHTTPClient) do(ctx context.Context, method, url string) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", c.userAgent)

	var resp *http.Response
	var lastErr error

	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if attempt > 0 {
			// Exponential backoff: 100ms, 200ms, 400ms
			backoff := time.Duration(100*(1<<(attempt-1))) * time.Millisecond
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}

		resp, err = c.client.Do(req)
		if err != nil {
			resp = nil
			lastErr = err
			if ctx.Err() != nil {
				return nil, err
			}
			continue
		}

		// Don't retry on success or 4xx errors
		if resp.StatusCode < 500 {
			break
		}

		// Keep the last 5xx response for the caller
		if attempt == c.maxRetries-1 {
			break
		}
		lastErr = fmt.Errorf("server returned %d", resp.StatusCode)
		resp.Body.Close()
		resp = nil
	}

	if resp == nil {
		return nil, lastErr
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
		headers:    resp.Header,
	}, nil
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}
