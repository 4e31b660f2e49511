// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/filmscout/internal/cache"
	"github.com/tomtom215/filmscout/internal/middleware"
	"github.com/tomtom215/filmscout/internal/recommend"
)

// LiveStatus is the payload of the liveness probe.
type LiveStatus struct {
	Alive         bool    `json:"alive"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// ReadyStatus is the payload of the readiness probe.
type ReadyStatus struct {
	Ready      bool      `json:"ready"`
	Items      int       `json:"items"`
	Vocabulary int       `json:"vocabulary"`
	Generation int64     `json:"generation"`
	BuiltAt    time.Time `json:"built_at"`
}

// PerformanceStatus reports request latencies and internal counters.
type PerformanceStatus struct {
	Endpoints     []middleware.EndpointStats `json:"endpoints"`
	Cache         cache.Stats                `json:"cache"`
	CacheHitRate  float64                    `json:"cache_hit_rate"`
	Engine        recommend.Metrics          `json:"engine"`
	UptimeSeconds float64                    `json:"uptime_seconds"`
}

// HealthLive handles liveness probe requests (Kubernetes-style).
// Returns 200 OK while the process is alive.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, success(LiveStatus{
		Alive:         true,
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	}, time.Time{}, false))
}

// HealthReady handles readiness probe requests (Kubernetes-style).
// Returns 200 OK once an index is built and 503 before.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	stats, err := h.engine.Stats()
	if err != nil {
		respondEngineError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, success(ReadyStatus{
		Ready:      true,
		Items:      stats.TotalItems,
		Vocabulary: stats.FeatureDimensions,
		Generation: stats.Generation,
		BuiltAt:    stats.BuiltAt,
	}, time.Time{}, false))
}

// HealthPerformance handles GET /api/v1/health/performance.
func (h *Handler) HealthPerformance(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, success(PerformanceStatus{
		Endpoints:     h.perfMon.GetStats(),
		Cache:         h.cache.GetStats(),
		CacheHitRate:  h.cache.HitRate(),
		Engine:        h.engine.GetMetrics(),
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	}, time.Time{}, false))
}
