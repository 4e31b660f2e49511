// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

/*
Package enrich fills catalog rows with metadata from the OMDb API.

# Pipeline

	Table ─► Enricher.Run ─► cache? ─► BreakerClient ─► Client ─► OMDb
	                │
	                └─► ProgressTracker (checkpoint every N rows)

Each row is looked up by IMDb id when an id column is configured, then by
title and year. Matches fill the omdb_* columns and set omdb_enriched to
True; misses set it to False. Rows keep their input order regardless of
the worker count.

# Client

Client probes the configured base URLs with a known title and keeps the
first endpoint that answers. Requests share a golang.org/x/time/rate
limiter (one request per RateDelay) and retry HTTP 429 with exponential
backoff, honoring Retry-After. BreakerClient adds a sony/gobreaker circuit
breaker with Prometheus state metrics.

# Persistence

Raw OMDb payloads are cached in Badger or Redis (ResponseCache) so a
re-run costs no API quota. Checkpoints (BadgerProgress) store the completed
row prefix; a run with Resume set restores it and continues.

# API keys

ResolveAPIKey checks the configured value, OMDB_API_KEY, omdb_config.json
and a .env file, in that order. The placeholder "your_api_key_here" is
ignored.
*/
package enrich
