// Package resolve provides the orchestration logic for resolving
// batches of Rekonise links into download URLs.
//
// # Manager
//
// The Manager coordinates the entire resolution process:
//
//  1. Load link records from a file or a single URL
//  2. Resolve records concurrently through a bounded worker pool
//  3. Collect per-record results in input order
//
// # Basic Usage
//
//	manager := resolve.NewManager(settings, func(event resolve.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	if err := manager.LoadFile("links.txt"); err != nil {
//	    log.Fatal(err)
//	}
//
//	results, err := manager.ResolveAll(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, result := range results {
//	    if result.Failed() {
//	        fmt.Println(result.Record.Name, "failed:", result.Err)
//	        continue
//	    }
//	    fmt.Println(result.Record.Name, result.Record.DownloadURL)
//	}
//
// # Concurrency
//
// At most settings.MaxConcurrentResolves records resolve in parallel;
// the default is 80% of the machine's CPUs. Completion order is
// whatever the network delivers, but results always come back in
// input order.
//
// # Failure Handling
//
// One record failing does not stop the batch: the failure lands in
// that record's Result and everything else continues. Setting
// settings.FailFast flips this so the first failure cancels the
// remaining work.
//
// # Progress Tracking
//
// Progress is reported via a callback function that receives ProgressEvent:
//
//	type ProgressEvent struct {
//	    Message string
//	    Level   ProgressLevel // Info, Verbose, Warning, Error, Success
//	}
package resolve
