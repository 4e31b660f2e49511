// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

package enrich

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/tomtom215/filmscout/internal/logging"
	"github.com/tomtom215/filmscout/internal/metrics"
)

// maxErrorBodySize limits how much of an error response is read.
const maxErrorBodySize = 64 * 1024

// probeTitle is looked up when probing base URLs.
const probeTitle = "The Matrix"

var (
	// ErrInvalidAPIKey is returned when OMDb rejects the API key.
	ErrInvalidAPIKey = errors.New("invalid OMDb API key")

	// ErrMovieNotFound is returned when OMDb has no match for a lookup.
	ErrMovieNotFound = errors.New("movie not found")

	// ErrNoEndpoint is returned when no base URL answered the probe.
	ErrNoEndpoint = errors.New("no OMDb endpoint reachable")
)

// APIError is an OMDb error message that is neither a missing movie nor a
// rejected key, for example "Request limit reached!".
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return "omdb: " + e.Message
}

// HTTPError is a non-200 response.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("omdb: HTTP %d: %s", e.StatusCode, e.Body)
}

// ClientConfig configures a Client.
type ClientConfig struct {
	APIKey   string
	BaseURLs []string

	// Timeout bounds a single HTTP request. Ignored when HTTPClient is set.
	Timeout time.Duration

	// RateDelay is the minimum spacing between requests. 0 disables the
	// limiter.
	RateDelay time.Duration

	// MaxRetries bounds retries after HTTP 429.
	MaxRetries int

	// RetryBaseDelay is the first backoff step after HTTP 429. Default: 1s
	RetryBaseDelay time.Duration

	HTTPClient *http.Client
}

// Client talks to the OMDb API. Lookups are serialized through a shared
// rate limiter, so one Client can be used by several workers.
type Client struct {
	httpClient     *http.Client
	apiKey         string
	baseURLs       []string
	limiter        *rate.Limiter
	maxRetries     int
	retryBaseDelay time.Duration

	mu      sync.RWMutex
	baseURL string
}

// NewClient creates an OMDb client. The base URL is chosen by Probe, or by
// the first lookup when Probe was not called.
//
//nolint:gocritic // hugeParam: cfg is passed by value and copied into the client
func NewClient(cfg ClientConfig) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrNoAPIKey
	}
	if len(cfg.BaseURLs) == 0 {
		return nil, fmt.Errorf("at least one base URL is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	limit := rate.Inf
	if cfg.RateDelay > 0 {
		limit = rate.Every(cfg.RateDelay)
	}

	retryBase := cfg.RetryBaseDelay
	if retryBase <= 0 {
		retryBase = time.Second
	}

	return &Client{
		httpClient:     httpClient,
		apiKey:         cfg.APIKey,
		baseURLs:       append([]string(nil), cfg.BaseURLs...),
		limiter:        rate.NewLimiter(limit, 1),
		maxRetries:     cfg.MaxRetries,
		retryBaseDelay: retryBase,
	}, nil
}

// BaseURL returns the endpoint selected by Probe, or "" before probing.
func (c *Client) BaseURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.baseURL
}

// Probe tries every base URL in order with a known title and keeps the first
// one that answers. A rejected key stops probing with ErrInvalidAPIKey.
func (c *Client) Probe(ctx context.Context) error {
	logger := logging.WithComponent("enrich")

	params := url.Values{}
	params.Set("t", probeTitle)
	params.Set("type", "movie")

	var lastErr error
	for _, base := range c.baseURLs {
		_, err := c.get(ctx, base, params)
		switch {
		case err == nil:
			c.mu.Lock()
			c.baseURL = base
			c.mu.Unlock()
			logger.Info().Str("base_url", base).Msg("OMDb endpoint selected")
			return nil
		case errors.Is(err, ErrInvalidAPIKey):
			return err
		case ctx.Err() != nil:
			return ctx.Err()
		}
		logger.Warn().Err(err).Str("base_url", base).Msg("OMDb endpoint unreachable")
		lastErr = err
	}
	return fmt.Errorf("%w: %w", ErrNoEndpoint, lastErr)
}

func (c *Client) endpoint(ctx context.Context) (string, error) {
	if base := c.BaseURL(); base != "" {
		return base, nil
	}
	if err := c.Probe(ctx); err != nil {
		return "", err
	}
	return c.BaseURL(), nil
}

// ByIMDbID looks a movie up by IMDb id (tt0133093).
func (c *Client) ByIMDbID(ctx context.Context, imdbID string) (*Movie, error) {
	params := url.Values{}
	params.Set("i", imdbID)
	params.Set("plot", "full")
	return c.lookup(ctx, params)
}

// ByTitle looks a movie up by exact title. year narrows the match and may
// be empty.
func (c *Client) ByTitle(ctx context.Context, title, year string) (*Movie, error) {
	params := url.Values{}
	params.Set("t", title)
	params.Set("type", "movie")
	params.Set("plot", "full")
	if year != "" {
		params.Set("y", year)
	}
	return c.lookup(ctx, params)
}

func (c *Client) lookup(ctx context.Context, params url.Values) (*Movie, error) {
	base, err := c.endpoint(ctx)
	if err != nil {
		return nil, err
	}
	return c.get(ctx, base, params)
}

// get performs one OMDb request against base and decodes the payload.
func (c *Client) get(ctx context.Context, base string, params url.Values) (*Movie, error) {
	q := url.Values{}
	for k, v := range params {
		q[k] = v
	}
	q.Set("apikey", c.apiKey)
	reqURL := base + "?" + q.Encode()

	resp, err := c.doRequestWithRateLimit(ctx, reqURL)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	// OMDb answers a rejected key with 401 and a regular JSON payload.
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusUnauthorized {
		return nil, &HTTPError{StatusCode: resp.StatusCode, Body: string(readBodyForError(resp.Body))}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return DecodeMovie(body)
}

// DecodeMovie parses a raw OMDb payload and maps "Response": "False" to the
// package errors.
func DecodeMovie(body []byte) (*Movie, error) {
	var m Movie
	if err := json.Unmarshal(body, &m); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if m.Response == "True" {
		m.raw = body
		return &m, nil
	}
	return nil, responseError(m.Error)
}

func responseError(msg string) error {
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "invalid api key"), strings.Contains(lower, "no api key"):
		return ErrInvalidAPIKey
	case strings.Contains(lower, "not found"):
		return ErrMovieNotFound
	default:
		return &APIError{Message: msg}
	}
}

// doRequestWithRateLimit waits for the limiter, then sends the request.
// HTTP 429 is retried with exponential backoff, honoring Retry-After.
func (c *Client) doRequestWithRateLimit(ctx context.Context, reqURL string) (*http.Response, error) {
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("HTTP request failed: %w", err)
		}

		if resp.StatusCode != http.StatusTooManyRequests {
			return resp, nil
		}

		_ = resp.Body.Close()
		metrics.EnrichRateLimited.Inc()

		if attempt == c.maxRetries {
			lastErr = fmt.Errorf("rate limit exceeded after %d retries (HTTP 429)", c.maxRetries)
			break
		}

		delay := c.retryBaseDelay * time.Duration(1<<uint(attempt))
		if retryAfter := resp.Header.Get("Retry-After"); retryAfter != "" {
			if seconds, err := time.ParseDuration(retryAfter + "s"); err == nil {
				delay = seconds
			}
		}

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	return nil, lastErr
}

// readBodyForError reads at most maxErrorBodySize bytes of an error body.
func readBodyForError(r io.Reader) []byte {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return []byte("(failed to read response body)")
	}
	if len(body) == maxErrorBodySize {
		return append(body, []byte("\n... (truncated)")...)
	}
	return body
}
