// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

// TestDefaultConfig verifies that defaultConfig() returns proper defaults
func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Catalog.Path != "movies.csv" || cfg.Catalog.Format != "auto" {
		t.Errorf("Catalog = %+v", cfg.Catalog)
	}
	if cfg.Recommend.MaxFeatures != 8000 || cfg.Recommend.MinDF != 2 || cfg.Recommend.MaxDF != 0.8 {
		t.Errorf("Recommend tfidf = %+v", cfg.Recommend)
	}
	if cfg.Recommend.Weights.Genres != 2 || cfg.Recommend.Weights.MajorAwards != 2 {
		t.Errorf("Recommend.Weights = %+v", cfg.Recommend.Weights)
	}
	if cfg.Enrich.RateDelay != 200*time.Millisecond {
		t.Errorf("Enrich.RateDelay = %v, want 200ms", cfg.Enrich.RateDelay)
	}
	if cfg.Enrich.CheckpointEvery != 50 {
		t.Errorf("Enrich.CheckpointEvery = %d, want 50", cfg.Enrich.CheckpointEvery)
	}
	if !reflect.DeepEqual(cfg.Enrich.BaseURLs, DefaultOMDbBaseURLs) {
		t.Errorf("Enrich.BaseURLs = %v", cfg.Enrich.BaseURLs)
	}
	if cfg.Server.Port != 8080 || cfg.Server.ReloadInterval != 30*time.Second {
		t.Errorf("Server = %+v", cfg.Server)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}

	// The defaults slice must not alias the package variable.
	cfg.Enrich.BaseURLs[0] = "http://changed/"
	if DefaultOMDbBaseURLs[0] == "http://changed/" {
		t.Error("defaultConfig aliases DefaultOMDbBaseURLs")
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{"CATALOG_PATH", "catalog.path"},
		{"OMDB_API_KEY", "enrich.api_key"},
		{"omdb_rate_delay", "enrich.rate_delay"},
		{"HTTP_PORT", "server.port"},
		{"RECOMMEND_WEIGHT_DIRECTOR", "recommend.weights.director"},
		{"CATALOG_RELOAD_INTERVAL", "server.reload_interval"},
		{"LOG_LEVEL", "logging.level"},
		{"PATH", ""},
		{"HOME", ""},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			if got := envTransformFunc(tt.env); got != tt.want {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.env, got, tt.want)
			}
		})
	}
}

func TestFindConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)
	t.Setenv(ConfigPathEnvVar, "")

	if got := findConfigFile(); got != "" {
		t.Errorf("findConfigFile() = %q, want empty", got)
	}

	if err := os.WriteFile(filepath.Join(tmpDir, "config.yaml"), []byte("logging:\n  level: warn\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if got := findConfigFile(); got != "config.yaml" {
		t.Errorf("findConfigFile() = %q, want config.yaml", got)
	}

	if err := os.WriteFile(filepath.Join(tmpDir, "filmscout.yaml"), []byte("logging:\n  level: warn\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if got := FoundConfigFile(); got != "filmscout.yaml" {
		t.Errorf("FoundConfigFile() = %q, want filmscout.yaml", got)
	}

	custom := filepath.Join(tmpDir, "custom.yaml")
	if err := os.WriteFile(custom, []byte("{}"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, custom)
	if got := findConfigFile(); got != custom {
		t.Errorf("findConfigFile() = %q, want %q", got, custom)
	}

	t.Setenv(ConfigPathEnvVar, filepath.Join(tmpDir, "missing.yaml"))
	if got := findConfigFile(); got != "filmscout.yaml" {
		t.Errorf("missing CONFIG_PATH should fall back, got %q", got)
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "filmscout.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, `
catalog:
  path: data/films.json
  format: json
recommend:
  max_features: 500
  weights:
    director: 3
    major_award_markers: [Oscar, BAFTA]
enrich:
  rate_delay: 1s
  workers: 4
server:
  port: 9090
logging:
  level: debug
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Catalog.Path != "data/films.json" || cfg.Catalog.Format != "json" {
		t.Errorf("Catalog = %+v", cfg.Catalog)
	}
	if cfg.Recommend.MaxFeatures != 500 || cfg.Recommend.Weights.Director != 3 {
		t.Errorf("Recommend = %+v", cfg.Recommend)
	}
	if !reflect.DeepEqual(cfg.Recommend.Weights.MajorAwardMarkers, []string{"Oscar", "BAFTA"}) {
		t.Errorf("MajorAwardMarkers = %v", cfg.Recommend.Weights.MajorAwardMarkers)
	}
	if cfg.Enrich.RateDelay != time.Second || cfg.Enrich.Workers != 4 {
		t.Errorf("Enrich = %+v", cfg.Enrich)
	}
	if cfg.Server.Port != 9090 || cfg.Logging.Level != "debug" {
		t.Errorf("Server/Logging = %+v / %+v", cfg.Server, cfg.Logging)
	}

	// Unset values keep their defaults.
	if cfg.Recommend.MinDF != 2 || cfg.Recommend.Weights.Genres != 2 {
		t.Errorf("defaults lost: %+v", cfg.Recommend)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
logging:
  level: debug
`)
	t.Setenv("HTTP_PORT", "9999")
	t.Setenv("OMDB_API_KEY", "abc123")
	t.Setenv("CORS_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("OMDB_RATE_DELAY", "500ms")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("Server.Port = %d, want 9999 (env override)", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug (from file)", cfg.Logging.Level)
	}
	if cfg.Enrich.APIKey != "abc123" {
		t.Errorf("Enrich.APIKey = %q", cfg.Enrich.APIKey)
	}
	if cfg.Enrich.RateDelay != 500*time.Millisecond {
		t.Errorf("Enrich.RateDelay = %v", cfg.Enrich.RateDelay)
	}
	want := []string{"https://a.example.com", "https://b.example.com"}
	if !reflect.DeepEqual(cfg.Security.CORSOrigins, want) {
		t.Errorf("CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, want)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing explicit file", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := writeConfig(t, "server: [port")
		if _, err := Load(path); err == nil {
			t.Error("expected parse error")
		}
	})

	t.Run("validation failure", func(t *testing.T) {
		path := writeConfig(t, "logging:\n  level: loud\n")
		if _, err := Load(path); err == nil {
			t.Error("expected validation error")
		}
	})
}

func TestWatchConfigFile(t *testing.T) {
	path := writeConfig(t, "logging:\n  level: info\n")

	changed := make(chan struct{}, 1)
	stop, err := WatchConfigFile(path, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	if err != nil {
		t.Fatalf("WatchConfigFile() error = %v", err)
	}
	defer func() { _ = stop() }()

	if err := os.WriteFile(path, []byte("logging:\n  level: debug\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("no change notification")
	}
}
