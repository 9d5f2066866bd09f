// Package registry provides the process-wide object store shared by every
// flow run.
//
// Modules use the store to stash objects that must outlive a single run,
// typically long-lived client handles or intermediate results addressed by a
// caller-supplied key. Every entry carries creation and last-access
// timestamps plus an optional expiry deadline.
//
// A background sweep goroutine enforces two policies on a fixed interval:
// TTL expiration removes every entry whose deadline has passed, and LRU
// eviction trims the store back to its configured capacity by dropping the
// least recently accessed entries. Reads additionally expire stale entries
// lazily, so a TTL is honored even between sweeps.
//
// All operations are safe for concurrent use; both the value map and the
// per-entry metadata are guarded by a single mutex.
package registry
