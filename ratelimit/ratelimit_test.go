// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ratelimit

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

// manualClock is a settable clock for deterministic window tests
type manualClock struct {
	mu  sync.Mutex
	now time.Time
}

func newManualClock() *manualClock {
	return &manualClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestCheck_WindowReset(t *testing.T) {
	clock := newManualClock()
	limiter := New(nil, clock.Now)

	// 1st and 2nd calls within the window pass
	for i := 1; i <= 2; i++ {
		limited, remaining := limiter.Check("X", 2, time.Second)
		if limited {
			t.Fatalf("Call %d should not be limited", i)
		}
		if remaining != 2-i {
			t.Errorf("Call %d: remaining=%d, want %d", i, remaining, 2-i)
		}
	}

	// 3rd call within the window is limited
	limited, remaining := limiter.Check("X", 2, time.Second)
	if !limited {
		t.Fatal("3rd call should be limited")
	}
	if remaining != 0 {
		t.Errorf("Limited call: remaining=%d, want 0", remaining)
	}

	// After the window resets, the counter restarts at 1
	clock.Advance(1100 * time.Millisecond)
	limited, remaining = limiter.Check("X", 2, time.Second)
	if limited {
		t.Fatal("Call after window reset should not be limited")
	}
	if remaining != 1 {
		t.Errorf("After reset: remaining=%d, want 1", remaining)
	}
}

func TestCheck_IdentifierIsolation(t *testing.T) {
	clock := newManualClock()
	limiter := New(nil, clock.Now)

	// Exhaust X
	for i := 0; i < 3; i++ {
		limiter.Check("X", 2, time.Minute)
	}
	if limited, _ := limiter.Check("X", 2, time.Minute); !limited {
		t.Fatal("X should be limited")
	}

	// Y is untouched
	if limited, remaining := limiter.Check("Y", 2, time.Minute); limited || remaining != 1 {
		t.Errorf("Y should start fresh: limited=%v remaining=%d", limited, remaining)
	}
}

func TestCheck_LimitedCallDoesNotIncrement(t *testing.T) {
	clock := newManualClock()
	store := NewMemoryStore()
	limiter := New(store, clock.Now)

	for i := 0; i < 5; i++ {
		limiter.Check("X", 2, time.Minute)
	}

	rec, ok := store.Get("X")
	if !ok {
		t.Fatal("Expected record for X")
	}
	if rec.Count != 2 {
		t.Errorf("Count=%d, want 2 (limited checks must not increment)", rec.Count)
	}
}

func TestCheck_UnknownBucketSharesCounter(t *testing.T) {
	clock := newManualClock()
	limiter := New(nil, clock.Now)

	// All unresolved-address callers hit the same bucket
	var limitedAt int
	for i := 1; i <= UnknownLimit+1; i++ {
		limited, _ := limiter.Check(UnknownIdentifier, UnknownLimit, DefaultWindow)
		if limited {
			limitedAt = i
			break
		}
	}
	if limitedAt != UnknownLimit+1 {
		t.Errorf("Unknown bucket limited at call %d, want %d", limitedAt, UnknownLimit+1)
	}
}

func TestCleanup_EvictsExpiredRecords(t *testing.T) {
	clock := newManualClock()
	store := NewMemoryStore()
	limiter := New(store, clock.Now)

	limiter.Check("stale", 5, time.Second)
	limiter.Check("fresh", 5, time.Hour)

	// Sweep is throttled: advancing less than the interval leaves both
	clock.Advance(time.Minute)
	limiter.Check("other", 5, time.Hour)
	if _, ok := store.Get("stale"); !ok {
		t.Error("Sweep should not have run before CleanupInterval")
	}

	// Past the interval the expired record goes, the live one stays
	clock.Advance(CleanupInterval)
	limiter.Check("other", 5, time.Hour)
	if _, ok := store.Get("stale"); ok {
		t.Error("Expired record should have been evicted")
	}
	if _, ok := store.Get("fresh"); !ok {
		t.Error("Unexpired record should survive the sweep")
	}
}

func TestCheck_ConcurrentCallersDoNotCorruptStore(t *testing.T) {
	limiter := New(nil, nil)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := fmt.Sprintf("caller-%d", n%4)
			for j := 0; j < 50; j++ {
				limiter.Check(id, 10, time.Minute)
			}
		}(i)
	}
	wg.Wait()

	// One identifier, serialized checks: exactly limit survive
	limited, _ := limiter.Check("caller-0", 10, time.Minute)
	if !limited {
		t.Error("caller-0 should be limited after concurrent exhaustion")
	}
}
