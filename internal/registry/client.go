package registry

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
	// DefaultBaseURL is the production registry origin.
	DefaultBaseURL = "https://promptdex.dev"

	// DefaultTimeout bounds a single registry request end to end.
	DefaultTimeout = 30 * time.Second
)

// Client reads the remote registry. It performs exactly two operations:
// fetching the index and fetching one document by slug. Every call hits
// the network; nothing is cached or written locally.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// ClientOption configures a Client during construction.
type ClientOption func(*Client)

// WithBaseURL overrides the registry origin. Trailing slashes are ignored.
func WithBaseURL(base string) ClientOption {
	return func(c *Client) {
		for len(base) > 0 && base[len(base)-1] == '/' {
			base = base[:len(base)-1]
		}
		c.baseURL = base
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the slog logger for request-level debug output.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a registry client with the given options.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c
}

// BaseURL returns the configured registry origin.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// IndexURL returns the location of the registry index.
func (c *Client) IndexURL() string {
	return c.baseURL + "/registry/index.json"
}

// DocumentURL returns the location of one document. The slug is
// interpolated as-is; slugs containing reserved URL characters are
// undefined input (the registry does not document an escaping scheme).
func (c *Client) DocumentURL(slug string) string {
	return fmt.Sprintf("%s/registry/%s.md", c.baseURL, slug)
}

// FetchIndex retrieves and decodes the full registry index.
// A non-success status yields *UnavailableError.
func (c *Client) FetchIndex(ctx context.Context) (*IndexDocument, error) {
	body, status, err := c.get(ctx, c.IndexURL())
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, &UnavailableError{Status: status}
	}

	var index IndexDocument
	if err := json.Unmarshal(body, &index); err != nil {
		return nil, &DecodeError{Err: err}
	}

	c.logger.Debug("fetched registry index",
		"count", index.Count,
		"categories", len(index.Categories),
		"entries", len(index.Entries))

	return &index, nil
}

// FetchDocument retrieves one document's raw Markdown text.
// A non-success status yields *NotFoundError.
func (c *Client) FetchDocument(ctx context.Context, slug string) (string, error) {
	if slug == "" {
		return "", ErrEmptySlug
	}

	body, status, err := c.get(ctx, c.DocumentURL(slug))
	if err != nil {
		return "", err
	}
	if status < 200 || status >= 300 {
		return "", &NotFoundError{Slug: slug, Status: status}
	}

	c.logger.Debug("fetched registry document", "slug", slug, "bytes", len(body))

	return string(body), nil
}

func (c *Client) get(ctx context.Context, url string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build request for %s: %w", url, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("request to %s failed: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read response from %s: %w", url, err)
	}

	return body, resp.StatusCode, nil
}
