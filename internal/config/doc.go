// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

/*
Package config provides centralized configuration management for Filmscout.

Configuration is layered with Koanf v2: struct defaults, then an optional
YAML file, then environment variables. Only mapped environment variables
are read.

# Configuration File

	catalog:
	  path: data/movies_enriched.csv
	recommend:
	  max_features: 8000
	  weights:
	    genres: 2
	    director: 2
	enrich:
	  rate_delay: 200ms
	  cache_backend: badger
	server:
	  port: 8080
	  reload_interval: 30s
	logging:
	  level: debug
	  format: console

# Environment Variables

Catalog:
  - CATALOG_PATH: catalog file (default: movies.csv)
  - CATALOG_FORMAT: auto, csv or json (default: auto)

Recommendation engine:
  - RECOMMEND_MAX_FEATURES, RECOMMEND_MIN_DF, RECOMMEND_MAX_DF, RECOMMEND_NGRAM_MAX
  - RECOMMEND_DEFAULT_K, RECOMMEND_MAX_K, RECOMMEND_MAX_WATCHED_IDS
  - RECOMMEND_WEIGHT_GENRES, RECOMMEND_WEIGHT_DIRECTOR, ... (field repetitions)
  - RECOMMEND_CACHE_TTL: API response cache lifetime (default: 5m)

OMDb enrichment:
  - OMDB_API_KEY: API key (placeholder "your_api_key_here" is ignored)
  - OMDB_BASE_URLS: comma-separated base URLs to probe
  - OMDB_RATE_DELAY: minimum delay between requests (default: 200ms)
  - ENRICH_WORKERS, ENRICH_MAX_REQUESTS, ENRICH_CHECKPOINT_EVERY
  - ENRICH_CACHE_BACKEND: badger, redis or none (default: badger)
  - REDIS_ADDR, REDIS_PASSWORD, REDIS_DB

HTTP server:
  - HTTP_HOST, HTTP_PORT (default: 127.0.0.1:8080)
  - CATALOG_RELOAD_INTERVAL: catalog mtime polling, 0 disables (default: 30s)
  - CORS_ORIGINS, RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT

Logging:
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json or console (default: console)
  - LOG_CALLER: include caller file and line
*/
package config
