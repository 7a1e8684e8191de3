// Package http provides an HTTP client configured for Rekonise requests.
//
// The Client in this package handles:
//   - User-Agent headers
//   - Redirect resolution via HEAD requests
//   - Response body retrieval for the unlock API
//   - Timeout handling
//
// # Basic Usage
//
//	client := http.NewClient("RekoniseUnlocker", 30*time.Second)
//
//	// Follow a short link to the canonical rekonise.com URL
//	final, err := client.ResolveRedirect(ctx, "https://rkns.link/abc12")
//
//	// Fetch the unlock payload
//	body, err := client.Get(ctx, unlockURL)
package http
