// Package config provides configuration management for rekonise-unlocker.
//
// This package handles:
//   - Default configuration values
//   - Loading and saving settings from JSON files
//   - Environment variable overrides (REKONISE_* variables)
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Rekonise production endpoints
//	// Worker pool sized at 80% of CPU count
//	// 30 second request timeout
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.json")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// Environment variables are applied after the file, so a deployment can
// override individual values without editing the file:
//
//	REKONISE_API_BASE_URL=https://staging.api.rekonise.com rekonise-unlock -l <url>
//
// # Configuration Options
//
// Settings includes options for:
//   - The Rekonise link domain and unlock API base URL
//   - Concurrent resolution limit
//   - Per-request HTTP timeout and User-Agent
//   - Fail-fast vs per-record failure isolation in batch mode
package config
