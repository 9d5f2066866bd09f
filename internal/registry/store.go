package registry

import (
	"log/slog"
	"strings"
	"sync"
	"time"
)

// Entry holds one stored value together with its lifecycle metadata.
type Entry struct {
	Value      any
	Since      time.Time
	LastAccess time.Time
	ExpireAt   time.Time // zero means the entry never expires
}

// Options configures a Store. The zero value disables expiry, eviction and
// touch-on-read; DefaultOptions returns the settings used in production.
type Options struct {
	// DefaultTTL is applied to every entry on Put. Zero disables expiry.
	DefaultTTL time.Duration
	// SweepInterval is the period of the background sweep goroutine.
	SweepInterval time.Duration
	// MaxEntries caps the store size; the sweep evicts the least recently
	// accessed entries above it. Zero disables LRU eviction.
	MaxEntries int
	// TouchOnRead refreshes LastAccess on every successful Get.
	TouchOnRead bool
	// KeyPrefix is used for generated keys.
	KeyPrefix string
	// Logger receives sweep diagnostics. Defaults to slog.Default().
	Logger *slog.Logger
}

// DefaultOptions returns the production store settings.
func DefaultOptions() Options {
	return Options{
		DefaultTTL:    30 * time.Minute,
		SweepInterval: time.Second,
		MaxEntries:    1024,
		TouchOnRead:   true,
		KeyPrefix:     "obj",
	}
}

// Store is a mutex-guarded key/value store with TTL expiration and LRU
// eviction. It is constructed once at process start and passed by reference
// to anything that needs it.
type Store struct {
	opts Options

	mu      sync.Mutex
	entries map[string]*Entry
	order   []string // live keys in insertion order

	stopCh  chan struct{}
	doneCh  chan struct{}
	started bool
}

// New creates a stopped Store; call Start to launch the sweep goroutine.
func New(opts Options) *Store {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.SweepInterval <= 0 {
		opts.SweepInterval = time.Second
	}
	if opts.KeyPrefix == "" {
		opts.KeyPrefix = "obj"
	}
	return &Store{
		opts:    opts,
		entries: make(map[string]*Entry),
	}
}

// Put stores value under id. An empty or whitespace-only id yields a
// generated key. An existing entry at a caller-supplied key is overwritten
// in place; last writer wins. Put never fails and returns the key used.
func (s *Store) Put(value any, id string) string {
	key := strings.TrimSpace(id)
	if key == "" {
		key = s.generateKey()
	}

	now := time.Now()
	entry := &Entry{Value: value, Since: now, LastAccess: now}
	if s.opts.DefaultTTL > 0 {
		entry.ExpireAt = now.Add(s.opts.DefaultTTL)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.entries[key]; !exists {
		s.order = append(s.order, key)
	}
	s.entries[key] = entry
	return key
}

// Get returns the value stored under id, or (nil, false) when the id is
// blank, absent, or expired. An expired entry is removed on the spot.
// When touch-on-read is enabled, a hit refreshes the entry's LastAccess.
func (s *Store) Get(id string) (any, bool) {
	key := strings.TrimSpace(id)
	if key == "" {
		return nil, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	if !entry.ExpireAt.IsZero() && !time.Now().Before(entry.ExpireAt) {
		s.removeLocked(key)
		return nil, false
	}
	if s.opts.TouchOnRead {
		entry.LastAccess = time.Now()
	}
	return entry.Value, true
}

// Delete removes the entry under id and reports whether it existed.
func (s *Store) Delete(id string) bool {
	key := strings.TrimSpace(id)
	if key == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[key]; !ok {
		return false
	}
	s.removeLocked(key)
	return true
}

// Keys returns live keys in insertion order, optionally filtered by prefix.
// Entries that are expired but not yet swept are still listed; listing is
// eventually consistent with respect to TTL.
func (s *Store) Keys(prefix string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, 0, len(s.order))
	for _, key := range s.order {
		if prefix == "" || strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	return keys
}

// Len returns the number of stored entries, including unswept expired ones.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Clear empties the store.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]*Entry)
	s.order = nil
}

// removeLocked deletes both the value and its metadata so the two can never
// go out of step. Callers must hold s.mu.
func (s *Store) removeLocked(key string) {
	delete(s.entries, key)
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}
