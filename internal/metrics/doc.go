// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

// Package metrics defines the Prometheus collectors exported on /metrics.
//
// Collectors are registered with the default registry through promauto.
//
// # Index and Engine
//
//	filmscout_index_build_duration_seconds    histogram
//	filmscout_index_builds_total{outcome}      counter
//	filmscout_vocabulary_size                  gauge
//	filmscout_catalog_items                    gauge
//	filmscout_index_generation                 gauge
//	filmscout_catalog_reloads_total{outcome}   counter
//	filmscout_recommend_requests_total{outcome}
//	filmscout_recommend_duration_seconds
//	filmscout_watched_ids_skipped_total
//	filmscout_search_requests_total
//
// EngineObserver adapts the engine's event stream to these collectors.
//
// # HTTP API
//
//	api_requests_total{method,endpoint,status_code}
//	api_request_duration_seconds{method,endpoint}
//	api_active_requests
//	api_rate_limit_hits_total{endpoint}
//	cache_hits_total{cache}, cache_misses_total{cache}
//
// # Enrichment
//
//	enrich_lookups_total{method,outcome}
//	enrich_lookup_duration_seconds
//	enrich_rate_limited_total
//	circuit_breaker_state{name}
//	circuit_breaker_requests_total{name,result}
//	circuit_breaker_consecutive_failures{name}
//	circuit_breaker_state_transitions_total{name,from_state,to_state}
package metrics
