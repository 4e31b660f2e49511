// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration loaded from defaults, an
// optional YAML file and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in defaults for every setting
//  2. Config File: Optional YAML file (filmscout.yaml, config.yaml or CONFIG_PATH)
//  3. Environment Variables: Override any mapped setting
//
// Example:
//
//	cfg, err := config.Load("")
//	if err != nil {
//	    return err
//	}
//	corpus, err := catalog.LoadFile(cfg.Catalog.Path, catalog.Format(cfg.Catalog.Format))
type Config struct {
	Catalog   CatalogConfig   `koanf:"catalog"`
	Recommend RecommendConfig `koanf:"recommend"`
	Enrich    EnrichConfig    `koanf:"enrich"`
	Server    ServerConfig    `koanf:"server"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// CatalogConfig locates the film catalog.
type CatalogConfig struct {
	// Path is the catalog file (CSV or JSON).
	// Default: movies.csv
	Path string `koanf:"path"`

	// Format is auto, csv or json. Auto picks by file extension.
	// Default: auto
	Format string `koanf:"format"`
}

// RecommendConfig holds recommendation engine settings. The command layer
// converts it into a recommend.Config.
type RecommendConfig struct {
	// MaxFeatures caps the vocabulary size. 0 means unlimited.
	// Default: 8000
	MaxFeatures int `koanf:"max_features"`

	// MinDF drops terms that appear in fewer documents.
	// Default: 2
	MinDF int `koanf:"min_df"`

	// MaxDF drops terms that appear in a larger fraction of documents.
	// Default: 0.8
	MaxDF float64 `koanf:"max_df"`

	// NGramMax is the longest n-gram indexed (1 to 3).
	// Default: 2
	NGramMax int `koanf:"ngram_max"`

	// StopWords is "english" or empty to keep every token.
	// Default: english
	StopWords string `koanf:"stop_words"`

	// Weights controls field repetition in synthesized documents.
	Weights WeightsConfig `koanf:"weights"`

	// MinWeight is the floor for rating-derived profile weights.
	// Default: 0.5
	MinWeight float64 `koanf:"min_weight"`

	DefaultK           int `koanf:"default_k"`
	MaxK               int `koanf:"max_k"`
	DefaultSearchLimit int `koanf:"default_search_limit"`
	MaxSearchResults   int `koanf:"max_search_results"`
	MaxWatchedIDs      int `koanf:"max_watched_ids"`
	MorePoolSize       int `koanf:"more_pool_size"`
	TopTerms           int `koanf:"top_terms"`

	// CacheTTL is how long stats and search responses are cached by the
	// HTTP API. The cache is cleared on every rebuild.
	// Default: 5m
	CacheTTL time.Duration `koanf:"cache_ttl"`
}

// WeightsConfig mirrors features.WeightTable without the bucket tables.
type WeightsConfig struct {
	Genres            int      `koanf:"genres"`
	Director          int      `koanf:"director"`
	Actors            int      `koanf:"actors"`
	Plot              int      `koanf:"plot"`
	Language          int      `koanf:"language"`
	Country           int      `koanf:"country"`
	Awards            int      `koanf:"awards"`
	MajorAwards       int      `koanf:"major_awards"`
	MajorAwardMarkers []string `koanf:"major_award_markers"`
}

// EnrichConfig holds OMDb enrichment settings.
type EnrichConfig struct {
	// APIKey is the OMDb key. When empty the key is looked up in
	// KeyFile and then EnvFile.
	APIKey string `koanf:"api_key"`

	// KeyFile is a JSON file holding {"omdb_api_key": "..."}.
	// Default: omdb_config.json
	KeyFile string `koanf:"key_file"`

	// EnvFile is a dotenv file holding OMDB_API_KEY.
	// Default: .env
	EnvFile string `koanf:"env_file"`

	// BaseURLs are probed in order; the first that answers wins.
	BaseURLs []string `koanf:"base_urls"`

	// RateDelay is the minimum spacing between OMDb requests.
	// Default: 200ms
	RateDelay time.Duration `koanf:"rate_delay"`

	// Timeout bounds a single HTTP request.
	// Default: 10s
	Timeout time.Duration `koanf:"timeout"`

	// MaxRetries bounds retries after HTTP 429.
	// Default: 3
	MaxRetries int `koanf:"max_retries"`

	// CheckpointEvery saves progress after this many rows.
	// Default: 50
	CheckpointEvery int `koanf:"checkpoint_every"`

	// MaxRequests caps lookups per run. 0 means unlimited.
	// Default: 0
	MaxRequests int `koanf:"max_requests"`

	// Workers is the number of concurrent lookups.
	// Default: 1
	Workers int `koanf:"workers"`

	// StorePath is the Badger directory for progress and the response cache.
	// Default: .filmscout/enrich
	StorePath string `koanf:"store_path"`

	// CacheBackend is badger, redis or none.
	// Default: badger
	CacheBackend string `koanf:"cache_backend"`

	// CacheTTL expires cached OMDb responses. 0 keeps them forever.
	// Default: 720h
	CacheTTL time.Duration `koanf:"cache_ttl"`

	RedisAddr     string `koanf:"redis_addr"`
	RedisPassword string `koanf:"redis_password"`
	RedisDB       int    `koanf:"redis_db"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	// ReloadInterval is how often the catalog file is checked for changes.
	// 0 disables reloading.
	// Default: 30s
	ReloadInterval time.Duration `koanf:"reload_interval"`

	// Environment is development or production.
	// Default: development
	Environment string `koanf:"environment"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is json or console.
	// Default: console
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}
