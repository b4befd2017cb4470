package etscore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	apperrors "github.com/kaanyildiz/etscore-mcp-server/internal/errors"
	"github.com/kaanyildiz/etscore-mcp-server/metrics"
)

// maxErrorBodyBytes caps how much of an upstream error body is carried in
// error messages and logs.
const maxErrorBodyBytes = 2048

// Client provides access to the ETS Score hotel APIs. It is stateless aside
// from its read-only configuration, so concurrent tool invocations are safe
// without locking.
type Client struct {
	config     *Config
	httpClient *http.Client
	logger     *slog.Logger
}

// ClientOption configures the client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client (useful for testing).
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = l
	}
}

// NewClient creates a new ETS Score client bound to one base URL with the
// static auth, language, and currency headers from config.
func NewClient(config *Config, opts ...ClientOption) *Client {
	c := &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// do performs an HTTP request against the vendor API and returns the raw
// response body. Non-2xx responses and transport faults are returned as
// *apperrors.UpstreamError; timeouts surface the same way.
func (c *Client) do(ctx context.Context, method, path, action string, body any) ([]byte, error) {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("etscore: marshaling request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.config.BaseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("etscore: creating request: %w", err)
	}

	if c.config.AuthToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.AuthToken)
	}
	req.Header.Set("Accept-Language", c.config.AcceptLanguage)
	req.Header.Set("X-Currency", c.config.Currency)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordUpstreamCall(action, time.Since(start).Seconds(), false, "transport")
		upErr := &apperrors.UpstreamError{Method: method, Path: path, Err: err}
		c.logger.Error("Upstream request failed",
			"method", method,
			"path", path,
			"error", err)
		return nil, upErr
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.RecordUpstreamCall(action, time.Since(start).Seconds(), false, "read")
		return nil, &apperrors.UpstreamError{Method: method, Path: path, StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.RecordUpstreamCall(action, time.Since(start).Seconds(), false, fmt.Sprintf("http_%d", resp.StatusCode))
		upErr := &apperrors.UpstreamError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       truncate(string(respBody), maxErrorBodyBytes),
		}
		c.logger.Error("Upstream returned non-success status",
			"method", method,
			"path", path,
			"status", resp.StatusCode,
			"body", upErr.Body)
		return nil, upErr
	}

	metrics.RecordUpstreamCall(action, time.Since(start).Seconds(), true, "")
	return respBody, nil
}

// SearchByLocation POSTs a composed search request and returns the upstream
// response body verbatim.
func (c *Client) SearchByLocation(ctx context.Context, req SearchRequest) ([]byte, error) {
	return c.do(ctx, http.MethodPost, searchByLocationPath, "search", req)
}

// HotelDetail fetches the vendor hotel-detail document for a hotel code in
// the configured content language.
func (c *Client) HotelDetail(ctx context.Context, hotelCode string) ([]byte, error) {
	path := fmt.Sprintf("%s/%s/%s", hotelDetailPath, c.config.ContentLanguage, url.PathEscape(hotelCode))
	return c.do(ctx, http.MethodGet, path, "hotel_detail", nil)
}

// Autocomplete queries the location autocomplete endpoint with a free-text
// query and returns the raw response body.
func (c *Client) Autocomplete(ctx context.Context, query string) ([]byte, error) {
	req := AutocompleteRequest{
		Query:    query,
		Language: autocompleteLanguage,
		Size:     autocompleteSize,
	}
	return c.do(ctx, http.MethodPost, autocompletePath, "autocomplete", req)
}

// truncate shortens s to at most n bytes for logs and error messages.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
