// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

/*
Package middleware provides the HTTP middleware used by the API router.

All components have the chi signature func(http.Handler) http.Handler:

  - RequestID: reuses X-Request-ID or generates a UUID, stores it in the
    logging context and echoes it in the response
  - PrometheusMetrics: api_requests_total, api_request_duration_seconds and
    api_active_requests, labeled by chi route pattern
  - Compression: gzip for clients that accept it, pooled writers
  - PerformanceMonitor: sliding window of request latencies with
    per-endpoint percentiles and slow request logging

The router installs them outermost first:

	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)
	r.Use(perf.Middleware)
	r.Use(middleware.Compression)
*/
package middleware
