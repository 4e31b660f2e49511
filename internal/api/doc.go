// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

/*
Package api exposes the recommendation engine over HTTP using the Chi router.

# Endpoints

	POST /api/v1/recommendations   rank films for a watched list
	GET  /api/v1/items/{id}        one film with its strongest index terms
	GET  /api/v1/search?q=&limit=  title substring search (cached)
	GET  /api/v1/stats             corpus report (cached)
	GET  /api/v1/health/live       liveness probe
	GET  /api/v1/health/ready      readiness probe, 503 until an index is built
	GET  /api/v1/health/performance request latency percentiles and counters
	GET  /metrics                  Prometheus exposition

# Response Envelope

Every JSON endpoint answers with the same envelope:

	{
	  "status": "success",
	  "data": {...},
	  "metadata": {"timestamp": "...", "query_time_ms": 3, "cached": true},
	  "error": {"code": "NOT_FOUND", "message": "...", "details": {...}}
	}

GET responses carry an FNV-1a ETag and answer a matching If-None-Match
with 304 Not Modified.

# Errors

Engine errors map onto status codes:

	recommend.ErrEmptyInput, ErrInvalidArgument, validation  400
	recommend.ErrNotFound                                     404
	recommend.ErrNotBuilt                                     503

# Middleware

The global stack is request id, real IP, panic recovery, CORS, Prometheus
metrics, the performance monitor and gzip compression. Route groups add IP
rate limiting (go-chi/httprate) and security headers.

# Caching

Search and stats responses are cached in an internal/cache TTL cache. Keys
include the engine generation, and Handler.ClearCache empties the cache
when the catalog is reloaded.
*/
package api
