// Package obastats fetches team and roster pages from the Ontario Baseball
// stats site. The site is a single-page app whose deep links encode the
// affiliate and team ID in the URL fragment.
package obastats

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"
)

const (
	defaultHTTPTimeout = 15 * time.Second
	defaultUserAgent   = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

	// maxPageBytes caps page reads; roster pages are small and anything
	// larger is the site misbehaving.
	maxPageBytes = 4 << 20
)

// ErrPageUnavailable indicates the site answered with a non-success status.
var ErrPageUnavailable = errors.New("page unavailable")

// PageSource fetches a page body by URL. The scanner and importer depend on
// this interface so tests can serve canned pages.
type PageSource interface {
	FetchPage(ctx context.Context, pageURL string) (string, error)
}

// Client is the production PageSource backed by net/http.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// Option customizes the stats client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithUserAgent overrides the User-Agent header sent on every request.
func WithUserAgent(agent string) Option {
	return func(c *Client) {
		if strings.TrimSpace(agent) != "" {
			c.userAgent = agent
		}
	}
}

// WithTimeout overrides the request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// NewClient constructs a stats site client rooted at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	client := &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		userAgent:  defaultUserAgent,
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// BaseURL returns the configured site root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// FetchPage retrieves the page body at pageURL.
func (c *Client) FetchPage(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("obastats fetch: request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("obastats fetch: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("%w: http %d for %s", ErrPageUnavailable, resp.StatusCode, pageURL)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return "", fmt.Errorf("obastats fetch: read body: %w", err)
	}
	return string(body), nil
}

// RosterURL builds the deep link to a team's roster page.
func RosterURL(baseURL, affiliate, teamID string) string {
	return fmt.Sprintf("%s#/%s/team/%s/roster", strings.TrimRight(baseURL, "/"), affiliate, teamID)
}

// rosterLinkPattern matches team roster deep links wherever they appear in
// page bodies.
var rosterLinkPattern = regexp.MustCompile(`#/(\d+)/team/(\d+)/roster`)

// TeamIDFromRosterLink extracts the affiliate and team ID from a roster deep
// link, returning ok=false when the link has another shape.
func TeamIDFromRosterLink(link string) (affiliate, teamID string, ok bool) {
	match := rosterLinkPattern.FindStringSubmatch(link)
	if match == nil {
		return "", "", false
	}
	return match[1], match[2], true
}
