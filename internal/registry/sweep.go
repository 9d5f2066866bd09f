package registry

import (
	"sort"
	"time"
)

// Start launches the background sweep goroutine. Calling Start on a running
// store is a no-op.
func (s *Store) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return
	}
	s.started = true
	s.stopCh = make(chan struct{})
	s.doneCh = make(chan struct{})
	go s.sweepLoop(s.stopCh, s.doneCh)
	s.opts.Logger.Debug("Registry sweep started.", "interval", s.opts.SweepInterval)
}

// Stop terminates the sweep goroutine and waits for it to exit. Calling Stop
// on a stopped store is a no-op.
func (s *Store) Stop() {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return
	}
	s.started = false
	stopCh, doneCh := s.stopCh, s.doneCh
	s.mu.Unlock()

	close(stopCh)
	<-doneCh
	s.opts.Logger.Debug("Registry sweep stopped.")
}

func (s *Store) sweepLoop(stopCh <-chan struct{}, doneCh chan<- struct{}) {
	defer close(doneCh)
	ticker := time.NewTicker(s.opts.SweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			s.safeSweep()
		}
	}
}

// safeSweep shields the sweep loop from panics; a failed tick is logged and
// the next tick proceeds normally.
func (s *Store) safeSweep() {
	defer func() {
		if r := recover(); r != nil {
			s.opts.Logger.Error("Registry sweep panicked.", "panic", r)
		}
	}()
	expired, evicted := s.Sweep()
	if expired > 0 || evicted > 0 {
		s.opts.Logger.Debug("Registry sweep completed.", "expired", expired, "evicted", evicted)
	}
}

// Sweep runs one sweep pass synchronously and returns how many entries were
// removed by TTL expiration and by LRU eviction. It is exported so tests and
// callers can force a pass without waiting for the ticker.
func (s *Store) Sweep() (expired, evicted int) {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	// Pass 1: TTL expiration.
	for key, entry := range s.entries {
		if !entry.ExpireAt.IsZero() && !now.Before(entry.ExpireAt) {
			s.removeLocked(key)
			expired++
		}
	}

	// Pass 2: LRU capacity enforcement over the survivors.
	if s.opts.MaxEntries <= 0 {
		return expired, 0
	}
	excess := len(s.entries) - s.opts.MaxEntries
	if excess <= 0 {
		return expired, 0
	}

	type candidate struct {
		key        string
		lastAccess time.Time
	}
	candidates := make([]candidate, 0, len(s.entries))
	for key, entry := range s.entries {
		candidates = append(candidates, candidate{key, entry.LastAccess})
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].lastAccess.Before(candidates[j].lastAccess)
	})
	for _, c := range candidates[:excess] {
		s.removeLocked(c.key)
		evicted++
	}
	return expired, evicted
}
