// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

package services

import (
	"context"
	"time"

	"github.com/tomtom215/filmscout/internal/cache"
)

// CacheCleanupService drops expired cache entries on an interval.
type CacheCleanupService struct {
	cache    *cache.Cache
	interval time.Duration
}

// NewCacheCleanupService creates a cleanup service. A non-positive interval
// selects the cache default.
func NewCacheCleanupService(c *cache.Cache, interval time.Duration) *CacheCleanupService {
	return &CacheCleanupService{cache: c, interval: interval}
}

// Serve implements suture.Service.
func (s *CacheCleanupService) Serve(ctx context.Context) error {
	s.cache.StartCleanup(ctx, s.interval)
	return ctx.Err()
}

// String implements fmt.Stringer for logging.
func (s *CacheCleanupService) String() string {
	return "cache-cleanup:" + s.cache.Name()
}
