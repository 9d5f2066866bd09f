// Package hotload owns the process-wide base configuration snapshot.
//
// The current snapshot is published through an atomic pointer, so a reader
// either sees the old model or the new one, never a partially-updated mix.
// Runs clone their working object from the snapshot at creation time, so a
// swap never mutates state underneath an in-flight run.
//
// External watchers signal changes through Reload; bursts of signals are
// debounced before a load is attempted. A failed load keeps the previous
// snapshot and is surfaced to the log only.
package hotload

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/specialistvlad/botflow/internal/config"
	"github.com/specialistvlad/botflow/internal/ctxlog"
)

// DefaultDebounce is the settle time applied to bursts of reload signals.
const DefaultDebounce = 250 * time.Millisecond

// LoadFunc produces a fresh configuration model, typically by re-reading
// the configuration source.
type LoadFunc func(ctx context.Context) (*config.Model, error)

// Loader holds the current base configuration snapshot.
type Loader struct {
	current  atomic.Pointer[config.Model]
	load     LoadFunc
	debounce time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// New creates a Loader seeded with initial. The initial model must be valid;
// failing to obtain a first valid snapshot is the one fatal configuration
// error in the system. A non-positive debounce falls back to DefaultDebounce.
func New(initial *config.Model, load LoadFunc, debounce time.Duration) (*Loader, error) {
	if err := initial.Validate(); err != nil {
		return nil, fmt.Errorf("invalid initial config snapshot: %w", err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	l := &Loader{load: load, debounce: debounce}
	l.current.Store(initial)
	return l, nil
}

// Current returns the active snapshot.
func (l *Loader) Current() *config.Model {
	return l.current.Load()
}

// Apply validates and publishes a new snapshot. Invalid snapshots are
// rejected and the previous one stays active.
func (l *Loader) Apply(m *config.Model) error {
	if err := m.Validate(); err != nil {
		return fmt.Errorf("rejecting config snapshot: %w", err)
	}
	l.current.Store(m)
	return nil
}

// Reload schedules a reload after the debounce interval. Repeated signals
// inside the interval restart it, so a burst results in a single load.
func (l *Loader) Reload(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.timer != nil {
		l.timer.Stop()
	}
	l.timer = time.AfterFunc(l.debounce, func() {
		l.reloadNow(ctx)
	})
}

// Close cancels any pending debounced reload.
func (l *Loader) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.timer != nil {
		l.timer.Stop()
		l.timer = nil
	}
}

func (l *Loader) reloadNow(ctx context.Context) {
	logger := ctxlog.FromContext(ctx)
	if l.load == nil {
		logger.Warn("Reload requested but no load function is configured.")
		return
	}
	m, err := l.load(ctx)
	if err != nil {
		logger.Error("Config reload failed; keeping previous snapshot.", "error", err)
		return
	}
	if err := l.Apply(m); err != nil {
		logger.Error("Config reload produced an invalid model; keeping previous snapshot.", "error", err)
		return
	}
	logger.Info("Config snapshot reloaded.", "modules", len(m.Modules))
}
