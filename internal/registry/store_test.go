package registry

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestStore(opts Options) *Store {
	if opts.KeyPrefix == "" {
		opts.KeyPrefix = "test"
	}
	return New(opts)
}

func TestPutGetRoundTrip(t *testing.T) {
	s := newTestStore(Options{DefaultTTL: time.Minute})

	key := s.Put("hello", "k")
	assert.Equal(t, "k", key)

	got, ok := s.Get("k")
	require.True(t, ok)
	assert.Equal(t, "hello", got)
}

func TestPutGeneratesKey(t *testing.T) {
	s := newTestStore(Options{KeyPrefix: "conn"})

	key := s.Put(42, "")
	assert.True(t, strings.HasPrefix(key, "conn:"), "generated key %q should carry the prefix", key)
	assert.Len(t, strings.SplitN(key, ":", 3), 3)

	got, ok := s.Get(key)
	require.True(t, ok)
	assert.Equal(t, 42, got)
}

func TestPutTrimsCallerKey(t *testing.T) {
	s := newTestStore(Options{})

	key := s.Put("v", "  padded  ")
	assert.Equal(t, "padded", key)

	_, ok := s.Get("padded")
	assert.True(t, ok)
}

func TestPutOverwritesExistingKey(t *testing.T) {
	s := newTestStore(Options{})

	s.Put("first", "k")
	s.Put("second", "k")

	got, ok := s.Get("k")
	require.True(t, ok)
	assert.Equal(t, "second", got)
	assert.Equal(t, []string{"k"}, s.Keys(""))
}

func TestGetBlankKeyDegradesToNotFound(t *testing.T) {
	s := newTestStore(Options{})

	_, ok := s.Get("")
	assert.False(t, ok)
	_, ok = s.Get("   ")
	assert.False(t, ok)
}

func TestGetLazyExpiry(t *testing.T) {
	s := newTestStore(Options{DefaultTTL: 50 * time.Millisecond})

	s.Put("x", "k")
	time.Sleep(60 * time.Millisecond)

	_, ok := s.Get("k")
	assert.False(t, ok, "expired entry must read as absent")
	assert.Zero(t, s.Len(), "lazy expiry must remove the entry")
}

func TestDeleteIdempotent(t *testing.T) {
	s := newTestStore(Options{})

	s.Put("v", "k")
	assert.True(t, s.Delete("k"))
	assert.False(t, s.Delete("k"))
	assert.False(t, s.Delete("never-existed"))
}

func TestKeysInsertionOrderAndPrefix(t *testing.T) {
	s := newTestStore(Options{})

	s.Put(1, "job:a")
	s.Put(2, "conn:b")
	s.Put(3, "job:c")

	assert.Equal(t, []string{"job:a", "conn:b", "job:c"}, s.Keys(""))
	assert.Equal(t, []string{"job:a", "job:c"}, s.Keys("job:"))
}

func TestKeysListsUnsweptExpiredEntries(t *testing.T) {
	s := newTestStore(Options{DefaultTTL: 10 * time.Millisecond})

	s.Put("v", "k")
	time.Sleep(20 * time.Millisecond)

	// No sweep has run and no read has touched the entry, so the key is
	// still listed. Listing is eventually consistent with respect to TTL.
	assert.Equal(t, []string{"k"}, s.Keys(""))
}

func TestClear(t *testing.T) {
	s := newTestStore(Options{})

	s.Put(1, "a")
	s.Put(2, "b")
	s.Clear()

	assert.Empty(t, s.Keys(""))
	assert.Zero(t, s.Len())
}

func TestSweepExpiresByTTL(t *testing.T) {
	s := newTestStore(Options{DefaultTTL: 10 * time.Millisecond})

	s.Put("v", "k")
	time.Sleep(20 * time.Millisecond)

	expired, evicted := s.Sweep()
	assert.Equal(t, 1, expired)
	assert.Zero(t, evicted)
	assert.Zero(t, s.Len())
}

func TestSweepEvictsLeastRecentlyUsed(t *testing.T) {
	s := newTestStore(Options{MaxEntries: 3, TouchOnRead: true})

	// Insert A..D with strictly increasing last-access times and no
	// intervening reads; A is the coldest entry.
	for _, key := range []string{"A", "B", "C", "D"} {
		s.Put(key, key)
		time.Sleep(2 * time.Millisecond)
	}

	expired, evicted := s.Sweep()
	assert.Zero(t, expired)
	assert.Equal(t, 1, evicted, "exactly size-max entries must go")

	_, ok := s.Get("A")
	assert.False(t, ok, "the least recently accessed entry must be evicted")
	for _, key := range []string{"B", "C", "D"} {
		_, ok := s.Get(key)
		assert.True(t, ok, "entry %q must survive", key)
	}
}

func TestSweepTouchOnReadProtectsFromEviction(t *testing.T) {
	s := newTestStore(Options{MaxEntries: 3, TouchOnRead: true})

	for _, key := range []string{"A", "B", "C", "D"} {
		s.Put(key, key)
		time.Sleep(2 * time.Millisecond)
	}

	// Reading A makes B the coldest entry.
	_, ok := s.Get("A")
	require.True(t, ok)
	time.Sleep(2 * time.Millisecond)

	_, evicted := s.Sweep()
	assert.Equal(t, 1, evicted)
	_, ok = s.Get("B")
	assert.False(t, ok)
	_, ok = s.Get("A")
	assert.True(t, ok)
}

func TestStartStopLifecycle(t *testing.T) {
	s := newTestStore(Options{DefaultTTL: 5 * time.Millisecond, SweepInterval: 10 * time.Millisecond})

	s.Start()
	s.Start() // second Start is a no-op

	s.Put("v", "k")
	assert.Eventually(t, func() bool { return s.Len() == 0 },
		500*time.Millisecond, 10*time.Millisecond, "background sweep must expire the entry")

	s.Stop()
	s.Stop() // second Stop is a no-op
}
