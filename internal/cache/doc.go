// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

/*
Package cache provides a thread-safe in-memory response cache with TTL
expiration and a bounded, least-recently-used capacity.

The API layer keeps rendered search and stats payloads here. Entries are
tagged with the index generation they were computed against, and the whole
cache is cleared whenever the engine swaps in a new index, so a client never
sees results from a catalog that is no longer active.

# Usage

	c := cache.New("api", 5*time.Minute, 1024)
	key := cache.GenerateKey("search", map[string]any{"q": "matrix", "limit": 10})
	if v, ok := c.Get(key); ok {
	    return v.([]recommend.SearchResult)
	}
	c.Set(key, results)

Hits and misses are reported to the cache_hits_total and
cache_misses_total counters under the cache's name.

# Expiration

Expired entries are dropped lazily on Get and in bulk by Cleanup. Run
StartCleanup with a context to sweep periodically; it returns when the
context ends.
*/
package cache
