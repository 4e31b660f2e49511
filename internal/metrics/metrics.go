// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Index Metrics
	IndexBuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "filmscout_index_build_duration_seconds",
			Help:    "Duration of TF-IDF index builds in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
	)

	IndexBuildsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "filmscout_index_builds_total",
			Help: "Total number of index builds",
		},
		[]string{"outcome"}, // "success", "failure"
	)

	VocabularySize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "filmscout_vocabulary_size",
			Help: "Number of terms in the active vocabulary",
		},
	)

	CatalogItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "filmscout_catalog_items",
			Help: "Number of items in the active catalog",
		},
	)

	IndexGeneration = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "filmscout_index_generation",
			Help: "Generation number of the active index",
		},
	)

	CatalogReloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "filmscout_catalog_reloads_total",
			Help: "Total number of catalog reload attempts triggered by file changes",
		},
		[]string{"outcome"},
	)

	// Recommendation Metrics
	RecommendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "filmscout_recommend_requests_total",
			Help: "Total number of recommendation requests",
		},
		[]string{"outcome"}, // "success", "error"
	)

	RecommendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "filmscout_recommend_duration_seconds",
			Help:    "Recommendation latency in seconds",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5},
		},
	)

	WatchedIDsSkipped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "filmscout_watched_ids_skipped_total",
			Help: "Total number of watched ids not found in the catalog",
		},
	)

	SearchRequests = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "filmscout_search_requests_total",
			Help: "Total number of title searches",
		},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of requests rejected by rate limiting",
		},
		[]string{"endpoint"},
	)

	// Cache Metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache"}, // "api", "omdb"
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache"},
	)

	// Enrichment Metrics
	EnrichLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "enrich_lookups_total",
			Help: "Total number of OMDb lookups",
		},
		[]string{"method", "outcome"}, // method: "imdb_id", "title"; outcome: "found", "not_found", "error", "cached"
	)

	EnrichLookupDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "enrich_lookup_duration_seconds",
			Help:    "OMDb lookup latency in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)

	EnrichRateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "enrich_rate_limited_total",
			Help: "Total number of HTTP 429 responses from OMDb",
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)
)

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the active request gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordCacheLookup records a hit or miss for the named cache.
func RecordCacheLookup(cache string, hit bool) {
	if hit {
		CacheHits.WithLabelValues(cache).Inc()
	} else {
		CacheMisses.WithLabelValues(cache).Inc()
	}
}

// RecordEnrichLookup records one OMDb lookup.
func RecordEnrichLookup(method, outcome string, duration time.Duration) {
	EnrichLookups.WithLabelValues(method, outcome).Inc()
	if outcome != "cached" {
		EnrichLookupDuration.Observe(duration.Seconds())
	}
}

// RecordCatalogReload records a reload attempt.
func RecordCatalogReload(err error) {
	CatalogReloads.WithLabelValues(outcome(err)).Inc()
}

func outcome(err error) string {
	if err != nil {
		return "failure"
	}
	return "success"
}
