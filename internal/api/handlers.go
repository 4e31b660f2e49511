// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

package api

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/filmscout/internal/cache"
	"github.com/tomtom215/filmscout/internal/logging"
	"github.com/tomtom215/filmscout/internal/middleware"
	"github.com/tomtom215/filmscout/internal/recommend"
)

// Handler serves the engine over HTTP.
type Handler struct {
	engine             *recommend.Engine
	cache              *cache.Cache
	perfMon            *middleware.PerformanceMonitor
	startTime          time.Time
	defaultSearchLimit int
	logger             zerolog.Logger
}

// NewHandler creates a handler for engine. Search and stats responses are
// cached for cacheTTL; a non-positive TTL selects the cache default.
func NewHandler(engine *recommend.Engine, cacheTTL time.Duration) *Handler {
	return &Handler{
		engine:             engine,
		cache:              cache.New("api", cacheTTL, cache.DefaultCapacity),
		perfMon:            middleware.NewPerformanceMonitor(1000, middleware.DefaultSlowThreshold),
		startTime:          time.Now(),
		defaultSearchLimit: engine.GetConfig().Limits.DefaultSearchLimit,
		logger:             logging.WithComponent("api"),
	}
}

// Cache returns the response cache.
func (h *Handler) Cache() *cache.Cache {
	return h.cache
}

// ClearCache drops every cached response. Call it after a catalog reload.
func (h *Handler) ClearCache() {
	n := h.cache.Len()
	h.cache.Clear()
	h.logger.Debug().Int("entries", n).Msg("Response cache cleared")
}

// cached returns the value stored under key, computing and storing it on
// a miss. Errors are not cached.
func (h *Handler) cached(key string, compute func() (interface{}, error)) (value interface{}, hit bool, err error) {
	if v, ok := h.cache.Get(key); ok {
		return v, true, nil
	}
	v, err := compute()
	if err != nil {
		return nil, false, err
	}
	h.cache.Set(key, v)
	return v, false, nil
}
