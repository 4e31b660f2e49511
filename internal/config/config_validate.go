// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

package config

import (
	"fmt"
	"time"
)

// Validate checks that the configuration is complete and consistent.
// Engine-level limits are validated again by recommend.Config.
func (c *Config) Validate() error {
	if err := c.validateCatalog(); err != nil {
		return err
	}

	if err := c.validateRecommend(); err != nil {
		return err
	}

	if err := c.validateEnrich(); err != nil {
		return err
	}

	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	return c.validateLogging()
}

var validCatalogFormats = map[string]bool{
	"":     true,
	"auto": true,
	"csv":  true,
	"json": true,
}

func (c *Config) validateCatalog() error {
	if c.Catalog.Path == "" {
		return fmt.Errorf("CATALOG_PATH is required")
	}
	if !validCatalogFormats[c.Catalog.Format] {
		return fmt.Errorf("CATALOG_FORMAT must be one of: auto, csv, json")
	}
	return nil
}

func (c *Config) validateRecommend() error {
	r := c.Recommend
	if r.MinDF < 1 {
		return fmt.Errorf("RECOMMEND_MIN_DF must be at least 1")
	}
	if r.MaxDF <= 0 || r.MaxDF > 1 {
		return fmt.Errorf("RECOMMEND_MAX_DF must be in (0, 1]")
	}
	if r.MinWeight < 0 || r.MinWeight > 1 {
		return fmt.Errorf("RECOMMEND_MIN_WEIGHT must be in [0, 1]")
	}
	if r.DefaultK < 1 || r.MaxK < r.DefaultK {
		return fmt.Errorf("RECOMMEND_DEFAULT_K must be at least 1 and not exceed RECOMMEND_MAX_K")
	}
	if r.CacheTTL < 0 {
		return fmt.Errorf("RECOMMEND_CACHE_TTL must not be negative")
	}
	return nil
}

var validCacheBackends = map[string]bool{
	"badger": true,
	"redis":  true,
	"none":   true,
}

func (c *Config) validateEnrich() error {
	e := c.Enrich
	if len(e.BaseURLs) == 0 {
		return fmt.Errorf("OMDB_BASE_URLS must list at least one URL")
	}
	for _, u := range e.BaseURLs {
		if err := validateHTTPURL(u, "OMDB_BASE_URLS"); err != nil {
			return err
		}
	}
	if e.RateDelay < 0 {
		return fmt.Errorf("OMDB_RATE_DELAY must not be negative")
	}
	if e.Timeout <= 0 {
		return fmt.Errorf("OMDB_TIMEOUT must be positive")
	}
	if e.MaxRetries < 0 {
		return fmt.Errorf("OMDB_MAX_RETRIES must not be negative")
	}
	if e.CheckpointEvery < 1 {
		return fmt.Errorf("ENRICH_CHECKPOINT_EVERY must be at least 1")
	}
	if e.MaxRequests < 0 {
		return fmt.Errorf("ENRICH_MAX_REQUESTS must not be negative")
	}
	if e.Workers < 1 || e.Workers > 16 {
		return fmt.Errorf("ENRICH_WORKERS must be between 1 and 16")
	}
	if !validCacheBackends[e.CacheBackend] {
		return fmt.Errorf("ENRICH_CACHE_BACKEND must be one of: badger, redis, none")
	}
	if e.CacheBackend == "redis" {
		if err := validateHostPort(e.RedisAddr, "REDIS_ADDR"); err != nil {
			return err
		}
	}
	if e.CacheBackend == "badger" && e.StorePath == "" {
		return fmt.Errorf("ENRICH_STORE_PATH is required for the badger cache backend")
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	for name, d := range map[string]time.Duration{
		"HTTP_READ_TIMEOUT":     c.Server.ReadTimeout,
		"HTTP_WRITE_TIMEOUT":    c.Server.WriteTimeout,
		"HTTP_IDLE_TIMEOUT":     c.Server.IdleTimeout,
		"HTTP_SHUTDOWN_TIMEOUT": c.Server.ShutdownTimeout,
	} {
		if d <= 0 {
			return fmt.Errorf("%s must be positive", name)
		}
	}
	if c.Server.ReloadInterval < 0 {
		return fmt.Errorf("CATALOG_RELOAD_INTERVAL must not be negative")
	}
	if c.Server.Environment != "development" && c.Server.Environment != "production" {
		return fmt.Errorf("ENVIRONMENT must be one of: development, production")
	}
	return nil
}

const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// ShouldWarnAboutCORS reports a wildcard CORS origin in production.
func (c *Config) ShouldWarnAboutCORS() bool {
	if !c.IsProduction() {
		return false
	}
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
