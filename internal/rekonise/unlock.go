package rekonise

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/handiism/rekonise-unlocker/internal/http"
	"github.com/handiism/rekonise-unlocker/internal/rekonise/dto"
)

// unlockPathFormat is the API path that releases the download URL for a plug.
const unlockPathFormat = "/social-unlocks/%s/unlock"

// ErrMissingDownloadURL is returned when the unlock endpoint answers
// successfully but its payload carries no download URL.
var ErrMissingDownloadURL = errors.New("unlock response contains no download URL")

// PlugID derives the plug identifier from a resolved rekonise.com URL.
//
// The identifier is whatever follows the link domain prefix, e.g.
// "my-pack-abc12" for "https://rekonise.com/my-pack-abc12" with the
// default domain. A URL that does not start with the domain is
// returned unchanged.
func PlugID(resolvedURL, linkDomain string) string {
	return strings.TrimPrefix(resolvedURL, linkDomain)
}

// Unlocker calls the Rekonise unlock API to release download URLs.
//
// Rekonise gates each download behind a social unlock. The gate is not
// enforced server-side: requesting the unlock endpoint for a plug
// releases the download URL without completing any of the social
// actions the page asks for.
//
// Example usage:
//
//	unlocker := NewUnlocker(client, "https://api.rekonise.com")
//	downloadURL, err := unlocker.DownloadURL(ctx, "my-pack-abc12")
type Unlocker struct {
	client  *http.Client
	baseURL string
}

// NewUnlocker creates an Unlocker that talks to the API at baseURL.
//
// A trailing slash on baseURL is tolerated.
func NewUnlocker(client *http.Client, baseURL string) *Unlocker {
	return &Unlocker{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// DownloadURL releases and returns the download URL for the given plug.
//
// Returns an error if:
//   - The unlock request fails or returns a non-200 status
//   - The payload is not valid JSON
//   - The payload has no url field (ErrMissingDownloadURL)
func (u *Unlocker) DownloadURL(ctx context.Context, plugID string) (string, error) {
	url := u.baseURL + fmt.Sprintf(unlockPathFormat, plugID)

	body, err := u.client.Get(ctx, url)
	if err != nil {
		return "", fmt.Errorf("unlock request failed: %w", err)
	}

	var payload dto.UnlockResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("could not parse unlock response: %w", err)
	}

	if payload.URL == "" {
		return "", ErrMissingDownloadURL
	}

	return payload.URL, nil
}
