package rekonise

import (
	"context"
	"fmt"

	"github.com/handiism/rekonise-unlocker/internal/http"
	"github.com/handiism/rekonise-unlocker/internal/model"
)

// Resolver turns a link record's short URL into a download URL.
//
// Resolution happens in three steps:
//  1. Follow the short link's redirect chain to the canonical
//     rekonise.com page URL
//  2. Derive the plug identifier from that URL
//  3. Ask the unlock API to release the download URL
//
// Example usage:
//
//	resolver := NewResolver(client, unlocker, "https://rekonise.com/")
//
//	record := model.NewLinkRecord("Drum Kit", "https://rkns.link/abc12")
//	if err := resolver.Resolve(ctx, record); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(record.DownloadURL)
type Resolver struct {
	client     *http.Client
	unlocker   *Unlocker
	linkDomain string
}

// NewResolver creates a Resolver.
//
// linkDomain is the rekonise.com page URL prefix that redirect chains
// settle on; it is stripped from resolved URLs to obtain plug
// identifiers.
func NewResolver(client *http.Client, unlocker *Unlocker, linkDomain string) *Resolver {
	return &Resolver{
		client:     client,
		unlocker:   unlocker,
		linkDomain: linkDomain,
	}
}

// Resolve fills in the record's DownloadURL.
//
// The record is modified in place. On failure the record stays
// unresolved and the error names the step that failed.
func (r *Resolver) Resolve(ctx context.Context, record *model.LinkRecord) error {
	resolved, err := r.client.ResolveRedirect(ctx, record.URL)
	if err != nil {
		return fmt.Errorf("could not resolve %s: %w", record.URL, err)
	}

	downloadURL, err := r.unlocker.DownloadURL(ctx, PlugID(resolved, r.linkDomain))
	if err != nil {
		return fmt.Errorf("could not unlock %q: %w", record.Name, err)
	}

	record.DownloadURL = downloadURL
	return nil
}
