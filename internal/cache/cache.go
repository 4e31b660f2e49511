// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

package cache

import (
	"container/list"
	"context"
	"crypto/sha256"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/filmscout/internal/metrics"
)

// DefaultCapacity bounds a cache created with a non-positive capacity.
const DefaultCapacity = 1024

// Entry represents a cached item with expiration
type Entry struct {
	Key       string
	Data      interface{}
	ExpiresAt time.Time
}

// Cache provides a thread-safe in-memory cache with TTL support and LRU
// eviction once capacity is reached.
type Cache struct {
	name     string
	ttl      time.Duration
	capacity int

	mu      sync.Mutex
	entries map[string]*list.Element
	order   *list.List // front = most recently used
	stats   Stats
	now     func() time.Time
}

// Stats tracks cache performance metrics
type Stats struct {
	Hits        int64     `json:"hits"`
	Misses      int64     `json:"misses"`
	Evictions   int64     `json:"evictions"`
	TotalKeys   int64     `json:"total_keys"`
	LastCleanup time.Time `json:"last_cleanup"`
}

// New creates a cache. name labels the Prometheus counters, ttl is the
// default entry lifetime and capacity the maximum number of entries.
func New(name string, ttl time.Duration, capacity int) *Cache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Cache{
		name:     name,
		ttl:      ttl,
		capacity: capacity,
		entries:  make(map[string]*list.Element),
		order:    list.New(),
		now:      time.Now,
	}
}

// Name returns the metrics label of the cache.
func (c *Cache) Name() string {
	return c.name
}

// Get retrieves a value from the cache by key. An expired entry is removed
// and counted as a miss.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[key]
	if !ok {
		c.stats.Misses++
		metrics.RecordCacheLookup(c.name, false)
		return nil, false
	}

	entry := el.Value.(*Entry)
	if c.now().After(entry.ExpiresAt) {
		c.removeElement(el)
		c.stats.Evictions++
		c.stats.Misses++
		metrics.RecordCacheLookup(c.name, false)
		return nil, false
	}

	c.order.MoveToFront(el)
	c.stats.Hits++
	metrics.RecordCacheLookup(c.name, true)
	return entry.Data, true
}

// Set stores a value in the cache with the default TTL.
func (c *Cache) Set(key string, value interface{}) {
	c.SetWithTTL(key, value, c.ttl)
}

// SetWithTTL stores a value in the cache with a custom TTL
func (c *Cache) SetWithTTL(key string, value interface{}, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expires := c.now().Add(ttl)
	if el, ok := c.entries[key]; ok {
		entry := el.Value.(*Entry)
		entry.Data = value
		entry.ExpiresAt = expires
		c.order.MoveToFront(el)
		return
	}

	for c.order.Len() >= c.capacity {
		c.removeElement(c.order.Back())
		c.stats.Evictions++
	}
	c.entries[key] = c.order.PushFront(&Entry{Key: key, Data: value, ExpiresAt: expires})
	c.stats.TotalKeys = int64(len(c.entries))
}

// Delete removes a specific cache entry by key.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[key]; ok {
		c.removeElement(el)
		c.stats.Evictions++
	}
}

// Clear removes all entries. Called after every index rebuild.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stats.Evictions += int64(len(c.entries))
	c.entries = make(map[string]*list.Element)
	c.order.Init()
	c.stats.TotalKeys = 0
}

// Len returns the number of entries, expired or not.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// GetStats returns a snapshot of the cache counters.
func (c *Cache) GetStats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// HitRate returns the cache hit rate as a percentage
func (c *Cache) HitRate() float64 {
	stats := c.GetStats()
	total := stats.Hits + stats.Misses
	if total == 0 {
		return 0.0
	}
	return float64(stats.Hits) / float64(total) * 100.0
}

// Cleanup removes all expired entries and returns how many were dropped.
func (c *Cache) Cleanup() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0
	for el := c.order.Back(); el != nil; {
		prev := el.Prev()
		if now.After(el.Value.(*Entry).ExpiresAt) {
			c.removeElement(el)
			removed++
		}
		el = prev
	}
	c.stats.Evictions += int64(removed)
	c.stats.LastCleanup = now
	return removed
}

// StartCleanup runs Cleanup every interval until ctx is done.
func (c *Cache) StartCleanup(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.Cleanup()
		}
	}
}

// removeElement unlinks el. Caller holds mu.
func (c *Cache) removeElement(el *list.Element) {
	entry := c.order.Remove(el).(*Entry)
	delete(c.entries, entry.Key)
	c.stats.TotalKeys = int64(len(c.entries))
}

// GenerateKey creates a cache key from the method name and parameters
func GenerateKey(method string, params interface{}) string {
	data, err := json.Marshal(params)
	if err != nil {
		return fmt.Sprintf("%s:%v", method, params)
	}

	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%x", method, hash[:16])
}
