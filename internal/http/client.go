package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client wraps HTTP operations with Rekonise-specific configuration.
//
// Client provides:
//   - Configured User-Agent header
//   - Timeout handling
//   - Redirect resolution via HEAD requests
//   - Response body retrieval for the unlock API
//
// Example usage:
//
//	client := NewClient("RekoniseUnlocker", 30*time.Second)
//
//	// Follow the short link to its final destination
//	final, err := client.ResolveRedirect(ctx, "https://rkns.link/abc12")
//
//	// Fetch the unlock payload
//	body, err := client.Get(ctx, unlockURL)
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// NewClient creates a new HTTP client with the given User-Agent header
// and request timeout.
func NewClient(userAgent string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		userAgent: userAgent,
	}
}

// ResolveRedirect performs a HEAD request and returns the final URL after
// all redirects have been followed.
//
// Short links respond with a redirect chain that ends at the canonical
// rekonise.com page; the URL of the last request in that chain is what
// identifies the unlock. The response status is not inspected, only the
// URL the chain settled on.
//
// Example:
//
//	final, err := client.ResolveRedirect(ctx, "https://rkns.link/abc12")
//	// final == "https://rekonise.com/my-pack-abc12"
func (c *Client) ResolveRedirect(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	return resp.Request.URL.String(), nil
}

// Get performs a GET request and returns the response body as bytes.
//
// The request includes the configured User-Agent header.
//
// Returns an error if:
//   - The request fails
//   - The response status is not 200 OK
//   - Reading the body fails
//
// Example:
//
//	data, err := client.Get(ctx, "https://api.rekonise.com/social-unlocks/my-pack-abc12/unlock")
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	return io.ReadAll(resp.Body)
}
