package modrinth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const (
	// DefaultBaseURL is the default Modrinth API base URL.
	DefaultBaseURL = "https://api.modrinth.com/v2"

	// DefaultTimeout bounds every individual request, including reading the body.
	DefaultTimeout = 5 * time.Second

	// UserAgent is the client signature sent when Config.UserAgent is empty.
	UserAgent = "steviee/mdget/dev (https://github.com/steviee/mdget)"
)

// Client is a Modrinth API client.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	userAgent   string
	rateLimiter *RateLimiter
}

// Config holds client configuration.
type Config struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

// NewClient creates a new Modrinth API client.
func NewClient(config *Config) *Client {
	if config == nil {
		config = &Config{}
	}

	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}

	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout
	}

	if config.UserAgent == "" {
		config.UserAgent = UserAgent
	}

	slog.Debug("creating Modrinth API client",
		"base_url", config.BaseURL,
		"timeout", config.Timeout)

	return &Client{
		baseURL:     config.BaseURL,
		httpClient:  &http.Client{Timeout: config.Timeout},
		userAgent:   config.UserAgent,
		rateLimiter: NewRateLimiter(300, time.Minute), // 300 req/min
	}
}

// get performs a GET against an absolute URL. Registry paths go through getJSON.
// An empty accept sends no Accept header.
func (c *Client) get(ctx context.Context, url, accept string) (*http.Response, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	if accept != "" {
		req.Header.Set("Accept", accept)
	}

	slog.Debug("modrinth request", "url", url)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}

	c.rateLimiter.UpdateFromHeaders(resp.Header)

	return resp, nil
}

// getJSON fetches path relative to the base URL and decodes the body into out.
// Every failure is reported as a *QueryFailedError naming target.
func (c *Client) getJSON(ctx context.Context, target, path string, out any) error {
	resp, err := c.get(ctx, c.baseURL+path, "application/json")
	if err != nil {
		return &QueryFailedError{Target: target, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if err := checkResponse(resp); err != nil {
		return &QueryFailedError{Target: target, Err: err}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &QueryFailedError{Target: target, Err: fmt.Errorf("%w: decode response: %v", ErrInvalidResponse, err)}
	}

	return nil
}

// FetchBytes downloads the content at url, which is usually a file host URL
// taken from a version's file list rather than an API path.
func (c *Client) FetchBytes(ctx context.Context, url string) ([]byte, error) {
	if url == "" {
		return nil, &QueryFailedError{Target: url, Err: fmt.Errorf("url cannot be empty")}
	}

	resp, err := c.get(ctx, url, "")
	if err != nil {
		return nil, &QueryFailedError{Target: url, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if err := checkResponse(resp); err != nil {
		return nil, &QueryFailedError{Target: url, Err: err}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &QueryFailedError{Target: url, Err: fmt.Errorf("read body: %w", err)}
	}

	slog.Debug("fetched bytes", "url", url, "bytes", len(data))

	return data, nil
}

// parseErrorResponse parses an error response from the API.
func parseErrorResponse(resp *http.Response) error {
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusTooManyRequests {
		return ErrRateLimitExceeded
	}

	if resp.StatusCode == http.StatusNotFound {
		return ErrProjectNotFound
	}

	var apiErr APIError
	if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil || apiErr.ErrorMsg == "" {
		return NewAPIError(resp.StatusCode, "API error", resp.Status)
	}

	apiErr.StatusCode = resp.StatusCode
	return &apiErr
}

// checkResponse checks if the response is successful.
func checkResponse(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	return parseErrorResponse(resp)
}
