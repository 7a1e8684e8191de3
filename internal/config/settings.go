package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/caarlos0/env/v6"
)

// Settings holds all configuration options.
//
// Values are layered: DefaultSettings provides the baseline, a JSON
// config file overrides defaults, REKONISE_* environment variables
// override the file, and command-line flags override everything.
type Settings struct {
	// LinkDomain is the prefix stripped from a resolved URL to obtain
	// the plug identifier.
	LinkDomain string `json:"link_domain" env:"REKONISE_LINK_DOMAIN"`

	// APIBaseURL is the base URL of the Rekonise unlock API.
	APIBaseURL string `json:"api_base_url" env:"REKONISE_API_BASE_URL"`

	// MaxConcurrentResolves bounds the resolver worker pool.
	MaxConcurrentResolves int `json:"max_concurrent_resolves" env:"REKONISE_MAX_CONCURRENT_RESOLVES"`

	// RequestTimeoutSeconds is the per-request HTTP timeout.
	RequestTimeoutSeconds int `json:"request_timeout_seconds" env:"REKONISE_REQUEST_TIMEOUT_SECONDS"`

	// UserAgent is sent with every outgoing request.
	UserAgent string `json:"user_agent" env:"REKONISE_USER_AGENT"`

	// FailFast aborts the whole batch on the first failed record
	// instead of collecting per-record failures.
	FailFast bool `json:"fail_fast" env:"REKONISE_FAIL_FAST"`
}

// DefaultSettings returns settings with default values.
//
// The worker count defaults to 80% of the detected CPU count, with a
// minimum of one worker.
func DefaultSettings() *Settings {
	return &Settings{
		LinkDomain:            "https://rekonise.com/",
		APIBaseURL:            "https://api.rekonise.com",
		MaxConcurrentResolves: defaultWorkerCount(),
		RequestTimeoutSeconds: 30,
		UserAgent:             "RekoniseUnlocker",
		FailFast:              false,
	}
}

// Load reads settings from a JSON file, then applies REKONISE_*
// environment variable overrides. A missing file is not an error:
// defaults (plus environment overrides) are returned instead.
func Load(path string) (*Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Fall through to environment overrides.
	case err != nil:
		return nil, err
	default:
		if err := json.Unmarshal(data, settings); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := env.Parse(settings); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// RequestTimeout returns the per-request timeout as a time.Duration.
func (s *Settings) RequestTimeout() time.Duration {
	return time.Duration(s.RequestTimeoutSeconds) * time.Second
}

// Workers returns the effective worker pool size, never below one.
func (s *Settings) Workers() int {
	if s.MaxConcurrentResolves < 1 {
		return 1
	}
	return s.MaxConcurrentResolves
}

// defaultWorkerCount computes 80% of the CPU count, minimum 1.
func defaultWorkerCount() int {
	n := runtime.NumCPU() * 8 / 10
	if n < 1 {
		n = 1
	}
	return n
}
