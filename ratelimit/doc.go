// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ratelimit provides a per-identifier fixed-window rate limiter.

# Semantics

Each identifier gets a counter and a window-reset instant. A check either
starts a fresh window (count 1), increments the current window's counter, or
reports the caller limited once the counter reaches the limit:

	limiter := ratelimit.New(nil, nil)
	limited, remaining := limiter.Check(ip, ratelimit.DefaultLimit, ratelimit.DefaultWindow)

Default policy is 5 requests per 60 seconds per identifier. Callers whose
address cannot be determined share the UnknownIdentifier bucket at the
higher UnknownLimit.

# Cleanup

Expired records are evicted opportunistically on the check path, at most
once per CleanupInterval, to bound memory growth. There is no background
goroutine.

# Injection

Both the record store and the clock are injectable:

	store := ratelimit.NewMemoryStore()
	limiter := ratelimit.New(store, clock)

The default MemoryStore is process-local; a restart resets all counters and
separate instances do not share state. Swap in a shared Store implementation
for distributed deployments.
*/
package ratelimit
