// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ratelimit

import (
	"sync"
	"time"
)

// Default policy for the contact endpoint
const (
	DefaultLimit    = 5
	DefaultWindow   = 60 * time.Second
	UnknownLimit    = 10
	CleanupInterval = 5 * time.Minute

	// UnknownIdentifier is the shared bucket for callers whose address
	// cannot be determined. One counter for all of them is a deliberate
	// coarsening; the higher limit keeps them from starving each other.
	UnknownIdentifier = "global-unknown"
)

// Record is per-identifier window state.
type Record struct {
	Count   int
	ResetAt time.Time
}

// Store holds rate-limit records. Implementations must be safe for
// concurrent use. The default is the in-process MemoryStore; a shared
// external store can be swapped in for multi-instance deployments.
type Store interface {
	Get(key string) (Record, bool)
	Set(key string, rec Record)
	Delete(key string)
	Keys() []string
}

// MemoryStore is a mutex-guarded map Store.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]Record
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]Record)}
}

func (m *MemoryStore) Get(key string) (Record, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.records[key]
	return rec, ok
}

func (m *MemoryStore) Set(key string, rec Record) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[key] = rec
}

func (m *MemoryStore) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, key)
}

func (m *MemoryStore) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.records))
	for k := range m.records {
		keys = append(keys, k)
	}
	return keys
}

// Limiter throttles per-identifier submission frequency with fixed-window
// semantics. State is process-wide and non-persistent: a restart resets all
// counters, and multiple instances do not share state unless given a shared
// Store.
type Limiter struct {
	store Store
	now   func() time.Time

	mu          sync.Mutex // serializes check read-modify-write and sweep gating
	lastCleanup time.Time
}

// New returns a Limiter over the given store. A nil store defaults to a
// fresh MemoryStore; a nil clock defaults to time.Now.
func New(store Store, now func() time.Time) *Limiter {
	if store == nil {
		store = NewMemoryStore()
	}
	if now == nil {
		now = time.Now
	}
	return &Limiter{store: store, now: now, lastCleanup: now()}
}

// Check records one attempt for identifier and reports whether it is over
// limit. The window restarts when the current instant passes the record's
// ResetAt. A limited check does not increment the counter.
func (l *Limiter) Check(identifier string, limit int, window time.Duration) (limited bool, remaining int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.cleanupExpired()

	now := l.now()
	rec, ok := l.store.Get(identifier)

	if !ok || now.After(rec.ResetAt) {
		l.store.Set(identifier, Record{Count: 1, ResetAt: now.Add(window)})
		return false, limit - 1
	}

	if rec.Count >= limit {
		return true, 0
	}

	rec.Count++
	l.store.Set(identifier, rec)
	return false, limit - rec.Count
}

// cleanupExpired evicts records whose window has passed. Runs inline on the
// check path, throttled to once per CleanupInterval. Caller holds l.mu.
func (l *Limiter) cleanupExpired() {
	now := l.now()
	if now.Sub(l.lastCleanup) < CleanupInterval {
		return
	}
	l.lastCleanup = now

	for _, key := range l.store.Keys() {
		if rec, ok := l.store.Get(key); ok && now.After(rec.ResetAt) {
			l.store.Delete(key)
		}
	}
}
