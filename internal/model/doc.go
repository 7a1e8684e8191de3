// Package model defines the core data structures used throughout
// the rekonise-unlocker application.
//
// # LinkRecord
//
// LinkRecord pairs a display name with a Rekonise short link and,
// once resolved, the final download URL:
//
//	rec := model.NewLinkRecord("Map Pack", "https://rkns.link/abc123")
//	// the resolver fills rec.DownloadURL
//	fmt.Printf("%s: %s\n", rec.Name, rec.DownloadURL)
//
// Records carry no shared state; each one moves through the pipeline
// (redirect resolution, plug extraction, unlock API call) on its own,
// which is what allows the resolver pool to process them concurrently.
package model
