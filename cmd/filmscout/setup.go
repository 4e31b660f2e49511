// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

package main

import (
	"flag"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/tomtom215/filmscout/internal/catalog"
	"github.com/tomtom215/filmscout/internal/config"
	"github.com/tomtom215/filmscout/internal/logging"
	"github.com/tomtom215/filmscout/internal/metrics"
	"github.com/tomtom215/filmscout/internal/recommend"
	"github.com/tomtom215/filmscout/internal/recommend/vectorspace"
)

// baseFlags are shared by every command that reads configuration.
type baseFlags struct {
	configPath string
	catalog    string
	logLevel   string
}

func newFlagSet(name string, e *env) *flag.FlagSet {
	fs := flag.NewFlagSet("filmscout "+name, flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	return fs
}

func (b *baseFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&b.configPath, "config", "", "config file (default: CONFIG_PATH or filmscout.yaml)")
	fs.StringVar(&b.catalog, "catalog", "", "catalog file, overrides catalog.path")
	fs.StringVar(&b.logLevel, "log-level", "", "log level, overrides logging.level")
}

// load reads the configuration, applies flag overrides and initializes
// logging. Logs always go to stderr so stdout stays machine readable.
func (b *baseFlags) load() (*config.Config, error) {
	cfg, err := config.Load(b.configPath)
	if err != nil {
		return nil, err
	}
	if b.catalog != "" {
		cfg.Catalog.Path = b.catalog
	}
	if b.logLevel != "" {
		cfg.Logging.Level = b.logLevel
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Output:    os.Stderr,
	})
	return cfg, nil
}

// buildEngineConfig converts the koanf settings into an engine config.
func buildEngineConfig(rc *config.RecommendConfig) *recommend.Config {
	ec := recommend.DefaultConfig()

	ec.TFIDF = vectorspace.Config{
		MaxFeatures: rc.MaxFeatures,
		MinDF:       rc.MinDF,
		MaxDF:       rc.MaxDF,
		NGramMax:    rc.NGramMax,
		StopWords:   rc.StopWords,
	}

	w := rc.Weights
	ec.Weights.Genres = w.Genres
	ec.Weights.Director = w.Director
	ec.Weights.Actors = w.Actors
	ec.Weights.Plot = w.Plot
	ec.Weights.Language = w.Language
	ec.Weights.Country = w.Country
	ec.Weights.Awards = w.Awards
	ec.Weights.MajorAwards = w.MajorAwards
	if len(w.MajorAwardMarkers) > 0 {
		ec.Weights.MajorAwardMarkers = slices.Clone(w.MajorAwardMarkers)
	}

	ec.Profile.MinWeight = rc.MinWeight
	ec.Limits = recommend.LimitsConfig{
		DefaultK:           rc.DefaultK,
		MaxK:               rc.MaxK,
		DefaultSearchLimit: rc.DefaultSearchLimit,
		MaxSearchResults:   rc.MaxSearchResults,
		MaxWatchedIDs:      rc.MaxWatchedIDs,
		MorePoolSize:       rc.MorePoolSize,
		TopTerms:           rc.TopTerms,
	}
	return ec
}

// openEngine loads the configured catalog and builds the index. Engine
// events go to the log and to the Prometheus collectors.
func openEngine(cfg *config.Config) (*recommend.Engine, error) {
	logger := logging.WithComponent("cli")

	engine, err := recommend.NewEngine(
		buildEngineConfig(&cfg.Recommend),
		recommend.MultiObserver(recommend.LogObserver(logging.Logger()), metrics.EngineObserver()),
	)
	if err != nil {
		return nil, fmt.Errorf("engine config: %w", err)
	}

	start := time.Now()
	corpus, err := catalog.LoadFile(cfg.Catalog.Path, catalog.Format(cfg.Catalog.Format))
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	if err := engine.Build(corpus); err != nil {
		return nil, fmt.Errorf("build index: %w", err)
	}

	logger.Debug().
		Str("catalog", cfg.Catalog.Path).
		Int("items", corpus.Len()).
		Dur("duration", time.Since(start)).
		Msg("catalog indexed")
	return engine, nil
}

// parseIDList parses "1, 2,3" into ids. Empty parts are skipped.
func parseIDList(s string) ([]int, error) {
	var ids []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
