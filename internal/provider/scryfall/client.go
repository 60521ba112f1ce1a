// Package scryfall fills in card attributes from the Scryfall API.
//
// Cards are looked up through the collection endpoint in chunks of at most
// MaxBatch identifiers. Identifiers the collection cannot resolve fall back
// to a search query that is relaxed step by step. Requests go through a
// token bucket limiter since Scryfall asks clients to stay near 10 req/s.
package scryfall

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// DefaultBaseURL is the public Scryfall API.
const DefaultBaseURL = "https://api.scryfall.com"

// ErrCardNotFound is returned when no relaxation of a search query
// matches a card.
var ErrCardNotFound = errors.New("card not found")

// APIError is a non-2xx answer from Scryfall. Warnings are passed through
// verbatim so callers can show them to the user.
type APIError struct {
	Path     string
	Status   int
	Code     string
	Details  string
	Warnings []string
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("scryfall %s returned %d", e.Path, e.Status)
	if e.Details != "" {
		msg += ": " + e.Details
	}
	if len(e.Warnings) > 0 {
		msg += " (" + strings.Join(e.Warnings, "; ") + ")"
	}
	return msg
}

// Client is a rate-limited Scryfall HTTP client.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// NewClient creates a Scryfall client. requestsPerSecond <= 0 disables the
// limiter.
func NewClient(baseURL, userAgent string, requestsPerSecond float64, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	limit := rate.Inf
	if requestsPerSecond > 0 {
		limit = rate.Limit(requestsPerSecond)
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  userAgent,
		limiter:    rate.NewLimiter(limit, 1),
		logger:     logger,
	}
}

// do performs a rate-limited request and decodes a 2xx JSON body into out.
func (c *Client) do(ctx context.Context, method, path string, params url.Values, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http request %s: %w", path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(path, resp.StatusCode, data)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func newAPIError(path string, status int, body []byte) *APIError {
	apiErr := &APIError{Path: path, Status: status}
	var e errorObject
	if err := json.Unmarshal(body, &e); err == nil && e.Object == "error" {
		apiErr.Code = e.Code
		apiErr.Details = e.Details
		apiErr.Warnings = e.Warnings
		return apiErr
	}
	apiErr.Details = truncate(body, 200)
	return apiErr
}

// truncate returns a truncated string representation for error messages.
func truncate(b []byte, maxLen int) string {
	if len(b) <= maxLen {
		return string(b)
	}
	return string(b[:maxLen]) + "..."
}
