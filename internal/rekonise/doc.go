// Package rekonise provides functionality to resolve Rekonise short
// links and release their gated download URLs.
//
// The package handles two main use cases:
//
//  1. Expanding a short link to its canonical rekonise.com page URL
//     and deriving the plug identifier from it
//  2. Calling the unlock API to release the download URL for a plug
//
// # Resolving a Record
//
// Use the Resolver to run the whole pipeline for a link record:
//
//	resolver := rekonise.NewResolver(client, unlocker, "https://rekonise.com/")
//	record := model.NewLinkRecord("Drum Kit", "https://rkns.link/abc12")
//	if err := resolver.Resolve(ctx, record); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(record.DownloadURL)
//
// # Unlocking Directly
//
// Use the Unlocker when the plug identifier is already known:
//
//	unlocker := rekonise.NewUnlocker(client, "https://api.rekonise.com")
//	downloadURL, err := unlocker.DownloadURL(ctx, "my-pack-abc12")
//
// # Rekonise Unlock Flow
//
// A Rekonise page gates a download behind social actions, but the gate
// is enforced only in the page's frontend. The API endpoint
// /social-unlocks/{plug}/unlock answers with a JSON payload whose url
// field is the download URL, whether or not the actions happened.
package rekonise
