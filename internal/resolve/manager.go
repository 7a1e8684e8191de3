package resolve

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/handiism/rekonise-unlocker/internal/config"
	"github.com/handiism/rekonise-unlocker/internal/http"
	"github.com/handiism/rekonise-unlocker/internal/linkfile"
	"github.com/handiism/rekonise-unlocker/internal/model"
	"github.com/handiism/rekonise-unlocker/internal/rekonise"
	"golang.org/x/sync/errgroup"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a resolution progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Result pairs a link record with the outcome of resolving it.
type Result struct {
	Record *model.LinkRecord
	Err    error
}

// Failed reports whether resolution of this record failed.
func (r Result) Failed() bool {
	return r.Err != nil
}

// Manager coordinates link resolution.
type Manager struct {
	settings *config.Settings
	resolver *rekonise.Resolver

	records []*model.LinkRecord

	completed int32
	failed    int32

	onProgress func(ProgressEvent)
}

// NewManager creates a new resolve Manager.
func NewManager(settings *config.Settings, onProgress func(ProgressEvent)) *Manager {
	client := http.NewClient(settings.UserAgent, settings.RequestTimeout())
	unlocker := rekonise.NewUnlocker(client, settings.APIBaseURL)

	return &Manager{
		settings:   settings,
		resolver:   rekonise.NewResolver(client, unlocker, settings.LinkDomain),
		onProgress: onProgress,
	}
}

// LoadFile reads link records from the file at path.
func (m *Manager) LoadFile(path string) error {
	records, err := linkfile.ParseFile(path)
	if err != nil {
		return err
	}

	m.records = append(m.records, records...)
	m.progress(ProgressEvent{Message: fmt.Sprintf("Loaded %d links from %s", len(records), path), Level: LevelInfo})
	return nil
}

// LoadLink queues a single link for resolution under a synthetic name.
func (m *Manager) LoadLink(url string) {
	m.records = append(m.records, model.NewLinkRecord(model.IndividualLinkName, url))
}

// ResolveAll resolves every loaded record through the worker pool.
//
// Records are submitted in input order and resolved concurrently, at
// most settings.MaxConcurrentResolves at a time. The returned results
// are in input order regardless of completion order, one per record.
//
// A record's failure is recorded in its Result and the remaining
// records keep going. With settings.FailFast set, the first failure
// instead cancels the outstanding work and ResolveAll returns that
// error with no results.
func (m *Manager) ResolveAll(ctx context.Context) ([]Result, error) {
	total := len(m.records)
	results := make([]Result, total)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(m.settings.Workers())

	for i, record := range m.records {
		i, record := i, record // per-iteration copies; semantics of go >= 1.22
		g.Go(func() error {
			err := m.resolver.Resolve(ctx, record)
			results[i] = Result{Record: record, Err: err}

			done := atomic.AddInt32(&m.completed, 1)
			if err != nil {
				atomic.AddInt32(&m.failed, 1)
				m.progress(ProgressEvent{Message: fmt.Sprintf("[%d/%d] Error resolving %s: %v", done, total, record.Name, err), Level: LevelError})
				if m.settings.FailFast {
					return err
				}
				return nil
			}

			m.progress(ProgressEvent{Message: fmt.Sprintf("[%d/%d] Resolved: %s", done, total, record.Name), Level: LevelSuccess})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if failed := atomic.LoadInt32(&m.failed); total > 0 {
		if failed > 0 {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Finished, %d of %d links failed", failed, total), Level: LevelWarning})
		} else {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Successfully resolved all %d links", total), Level: LevelSuccess})
		}
	}

	return results, nil
}

// GetProgress returns current resolution progress.
func (m *Manager) GetProgress() (completed, failed, total int32) {
	return atomic.LoadInt32(&m.completed), atomic.LoadInt32(&m.failed), int32(len(m.records))
}

// GetLinkNames returns the names of all loaded records.
func (m *Manager) GetLinkNames() []string {
	names := make([]string, len(m.records))
	for i, record := range m.records {
		names[i] = record.Name
	}
	return names
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
