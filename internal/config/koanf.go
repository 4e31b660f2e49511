// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"filmscout.yaml",
	"filmscout.yml",
	"config.yaml",
	"config.yml",
	"/etc/filmscout/config.yaml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// DefaultOMDbBaseURLs are probed in order when no base URL is configured.
var DefaultOMDbBaseURLs = []string{
	"https://www.omdbapi.com/",
	"https://omdbapi.com/",
	"http://www.omdbapi.com/",
	"http://omdbapi.com/",
}

// defaultConfig returns a Config struct with all default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			Path:   "movies.csv",
			Format: "auto",
		},
		Recommend: RecommendConfig{
			MaxFeatures: 8000,
			MinDF:       2,
			MaxDF:       0.8,
			NGramMax:    2,
			StopWords:   "english",
			Weights: WeightsConfig{
				Genres:            2,
				Director:          2,
				Actors:            1,
				Plot:              1,
				Language:          1,
				Country:           1,
				Awards:            1,
				MajorAwards:       2,
				MajorAwardMarkers: []string{"Oscar", "Emmy", "Golden Globe"},
			},
			MinWeight:          0.5,
			DefaultK:           10,
			MaxK:               100,
			DefaultSearchLimit: 10,
			MaxSearchResults:   100,
			MaxWatchedIDs:      500,
			MorePoolSize:       100,
			TopTerms:           10,
			CacheTTL:           5 * time.Minute,
		},
		Enrich: EnrichConfig{
			KeyFile:         "omdb_config.json",
			EnvFile:         ".env",
			BaseURLs:        append([]string(nil), DefaultOMDbBaseURLs...),
			RateDelay:       200 * time.Millisecond,
			Timeout:         10 * time.Second,
			MaxRetries:      3,
			CheckpointEvery: 50,
			Workers:         1,
			StorePath:       ".filmscout/enrich",
			CacheBackend:    "badger",
			CacheTTL:        30 * 24 * time.Hour,
			RedisAddr:       "127.0.0.1:6379",
		},
		Server: ServerConfig{
			Host:            "127.0.0.1",
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			ReloadInterval:  30 * time.Second,
			Environment:     "development",
		},
		Security: SecurityConfig{
			CORSOrigins:     []string{"*"},
			RateLimitReqs:   100,
			RateLimitWindow: time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Default returns the built-in configuration.
func Default() *Config {
	return defaultConfig()
}

// Load builds the configuration from defaults, a YAML file and environment
// variables, then validates it. An empty path searches CONFIG_PATH and
// DefaultConfigPaths; a non-empty path must exist.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	configPath := path
	if configPath == "" {
		configPath = findConfigFile()
	} else if _, err := os.Stat(configPath); err != nil {
		return nil, fmt.Errorf("config file %s: %w", configPath, err)
	}
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables (highest priority)
	// CATALOG_PATH -> catalog.path, OMDB_API_KEY -> enrich.api_key
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// LoadWithKoanf loads the configuration from the default locations.
func LoadWithKoanf() (*Config, error) {
	return Load("")
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"security.cors_origins",
	"enrich.base_urls",
	"recommend.weights.major_award_markers",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// Env vars come in as strings, but the config expects slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}
		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envMappings maps lowercased environment variable names to koanf paths.
var envMappings = map[string]string{
	// Catalog
	"catalog_path":   "catalog.path",
	"catalog_format": "catalog.format",

	// Recommendation engine
	"recommend_max_features":         "recommend.max_features",
	"recommend_min_df":               "recommend.min_df",
	"recommend_max_df":               "recommend.max_df",
	"recommend_ngram_max":            "recommend.ngram_max",
	"recommend_stop_words":           "recommend.stop_words",
	"recommend_min_weight":           "recommend.min_weight",
	"recommend_default_k":            "recommend.default_k",
	"recommend_max_k":                "recommend.max_k",
	"recommend_default_search_limit": "recommend.default_search_limit",
	"recommend_max_search_results":   "recommend.max_search_results",
	"recommend_max_watched_ids":      "recommend.max_watched_ids",
	"recommend_more_pool_size":       "recommend.more_pool_size",
	"recommend_top_terms":            "recommend.top_terms",
	"recommend_cache_ttl":            "recommend.cache_ttl",
	"recommend_weight_genres":        "recommend.weights.genres",
	"recommend_weight_director":      "recommend.weights.director",
	"recommend_weight_actors":        "recommend.weights.actors",
	"recommend_weight_plot":          "recommend.weights.plot",
	"recommend_weight_language":      "recommend.weights.language",
	"recommend_weight_country":       "recommend.weights.country",
	"recommend_weight_awards":        "recommend.weights.awards",
	"recommend_weight_major_awards":  "recommend.weights.major_awards",
	"recommend_major_award_markers":  "recommend.weights.major_award_markers",

	// OMDb enrichment
	"omdb_api_key":            "enrich.api_key",
	"omdb_key_file":           "enrich.key_file",
	"omdb_env_file":           "enrich.env_file",
	"omdb_base_urls":          "enrich.base_urls",
	"omdb_rate_delay":         "enrich.rate_delay",
	"omdb_timeout":            "enrich.timeout",
	"omdb_max_retries":        "enrich.max_retries",
	"enrich_checkpoint_every": "enrich.checkpoint_every",
	"enrich_max_requests":     "enrich.max_requests",
	"enrich_workers":          "enrich.workers",
	"enrich_store_path":       "enrich.store_path",
	"enrich_cache_backend":    "enrich.cache_backend",
	"enrich_cache_ttl":        "enrich.cache_ttl",
	"redis_addr":              "enrich.redis_addr",
	"redis_password":          "enrich.redis_password",
	"redis_db":                "enrich.redis_db",

	// Server
	"http_host":               "server.host",
	"http_port":               "server.port",
	"http_read_timeout":       "server.read_timeout",
	"http_write_timeout":      "server.write_timeout",
	"http_idle_timeout":       "server.idle_timeout",
	"http_shutdown_timeout":   "server.shutdown_timeout",
	"catalog_reload_interval": "server.reload_interval",
	"environment":             "server.environment",

	// Security
	"cors_origins":        "security.cors_origins",
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc transforms environment variable names to koanf config paths.
// Unmapped variables return "" and are skipped so the process environment
// cannot pollute the configuration.
//
// Examples:
//   - CATALOG_PATH -> catalog.path
//   - OMDB_API_KEY -> enrich.api_key
//   - HTTP_PORT -> server.port
func envTransformFunc(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}
	return ""
}

// WatchConfigFile calls callback whenever the file at path changes.
// The caller is responsible for synchronizing access to configuration
// replaced by the callback.
func WatchConfigFile(path string, callback func()) (stop func() error, err error) {
	provider := file.Provider(path)
	err = provider.Watch(func(event interface{}, err error) {
		if err != nil {
			return
		}
		callback()
	})
	if err != nil {
		return nil, err
	}
	return provider.Unwatch, nil
}

// FoundConfigFile returns the config file Load("") would read, or "".
func FoundConfigFile() string {
	return findConfigFile()
}
