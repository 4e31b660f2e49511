// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/tomtom215/filmscout/internal/catalog"
	"github.com/tomtom215/filmscout/internal/config"
	"github.com/tomtom215/filmscout/internal/enrich"
	"github.com/tomtom215/filmscout/internal/logging"
)

func runEnrich(ctx context.Context, e *env, args []string) error {
	var base baseFlags
	fs := newFlagSet("enrich", e)
	base.register(fs)
	format := outputFlag(fs)
	in := fs.String("in", "", "catalog file to enrich (required)")
	out := fs.String("out", "", "output CSV (default: <in>_enriched.csv)")
	titleCol := fs.String("title-col", "title", "column holding the title")
	imdbCol := fs.String("imdb-col", "", "column holding IMDb ids, tried before the title")
	yearCol := fs.String("year-col", "", "column holding the release year or date")
	maxRows := fs.Int("max", -1, "enrich only the first N rows (default: enrich.max_requests)")
	workers := fs.Int("workers", 0, "concurrent lookups (default: enrich.workers)")
	resume := fs.Bool("resume", false, "continue from the last checkpoint of --in")
	apiKey := fs.String("api-key", "", "OMDb API key, overrides every other source")
	saveKey := fs.Bool("save-key", false, "store --api-key in enrich.key_file")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if err := checkFormat(*format); err != nil {
		return err
	}
	if *in == "" {
		return fmt.Errorf("%w: --in is required", errUsage)
	}
	if *saveKey && *apiKey == "" {
		return fmt.Errorf("%w: --save-key needs --api-key", errUsage)
	}

	cfg, err := base.load()
	if err != nil {
		return err
	}
	logger := logging.WithComponent("enrich")

	if *apiKey != "" {
		cfg.Enrich.APIKey = *apiKey
	}
	key, source, err := enrich.ResolveAPIKey(cfg.Enrich.APIKey, cfg.Enrich.KeyFile, cfg.Enrich.EnvFile)
	if err != nil {
		if errors.Is(err, enrich.ErrNoAPIKey) {
			return fmt.Errorf("%w: set %s, pass --api-key or write %s", err, enrich.APIKeyEnvVar, cfg.Enrich.KeyFile)
		}
		return err
	}
	logger.Info().Str("source", string(source)).Msg("OMDb API key loaded")
	if *saveKey {
		if err := enrich.SaveAPIKey(cfg.Enrich.KeyFile, key); err != nil {
			return err
		}
		logger.Info().Str("path", cfg.Enrich.KeyFile).Msg("OMDb API key saved")
	}

	table, err := catalog.ReadTableFile(*in)
	if err != nil {
		return fmt.Errorf("read catalog: %w", err)
	}

	opts := enrich.Options{
		Input:           *in,
		TitleColumn:     *titleCol,
		YearColumn:      *yearCol,
		IMDbIDColumn:    *imdbCol,
		MaxRequests:     cfg.Enrich.MaxRequests,
		Workers:         cfg.Enrich.Workers,
		CheckpointEvery: cfg.Enrich.CheckpointEvery,
		Resume:          *resume,
	}
	if *maxRows >= 0 {
		opts.MaxRequests = *maxRows
	}
	if *workers > 0 {
		opts.Workers = *workers
	}

	report, err := enrichTable(ctx, &cfg.Enrich, key, table, opts)
	if err != nil {
		return err
	}

	dest := *out
	if dest == "" {
		dest = enrichedPath(*in)
	}
	if err := catalog.WriteCSVFile(dest, table); err != nil {
		return err
	}
	logger.Info().Str("path", dest).Int("rows", len(table.Rows)).Msg("enriched catalog written")

	return render(e.stdout, *format, report, func(w io.Writer) error {
		writeEnrichReport(w, report, dest)
		return nil
	})
}

// enrichTable opens the enrichment store and response cache and runs the
// enricher over table.
//
//nolint:gocritic // hugeParam: opts is handed to Run unchanged
func enrichTable(ctx context.Context, ec *config.EnrichConfig, key string, table *catalog.Table, opts enrich.Options) (*enrich.Report, error) {
	db, err := enrich.OpenBadger(ec.StorePath)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("error closing enrichment store")
		}
	}()

	cache, err := enrich.NewResponseCache(ctx, enrich.CacheOptions{
		Backend:       ec.CacheBackend,
		TTL:           ec.CacheTTL,
		RedisAddr:     ec.RedisAddr,
		RedisPassword: ec.RedisPassword,
		RedisDB:       ec.RedisDB,
	}, db)
	if err != nil {
		return nil, fmt.Errorf("response cache: %w", err)
	}
	if cache != nil {
		defer func() { _ = cache.Close() }()
	}

	client, err := enrich.NewClient(enrich.ClientConfig{
		APIKey:     key,
		BaseURLs:   ec.BaseURLs,
		Timeout:    ec.Timeout,
		RateDelay:  ec.RateDelay,
		MaxRetries: ec.MaxRetries,
	})
	if err != nil {
		return nil, err
	}
	if err := client.Probe(ctx); err != nil {
		return nil, fmt.Errorf("OMDb unreachable (try 'filmscout doctor'): %w", err)
	}

	enricher := enrich.NewEnricher(enrich.NewBreakerClient(client), cache, enrich.NewBadgerProgress(db))
	return enricher.Run(ctx, table, opts)
}

// enrichedPath derives movies_enriched.csv from movies.csv.
func enrichedPath(in string) string {
	ext := filepath.Ext(in)
	return strings.TrimSuffix(in, ext) + "_enriched.csv"
}

func writeEnrichReport(w io.Writer, r *enrich.Report, dest string) {
	fmt.Fprintln(w, "Enrichment complete")
	fmt.Fprintf(w, "  rows:       %d\n", r.Total)
	fmt.Fprintf(w, "  enriched:   %d (%.1f%%)\n", r.Succeeded, r.SuccessRate())
	fmt.Fprintf(w, "  failed:     %d\n", r.Failed)
	if r.Resumed > 0 {
		fmt.Fprintf(w, "  resumed:    %d\n", r.Resumed)
	}
	fmt.Fprintf(w, "  lookups:    %d (%d from cache)\n", r.Lookups, r.CacheHits)
	fmt.Fprintf(w, "  duration:   %s\n", r.Duration().Round(time.Millisecond))
	fmt.Fprintf(w, "  written to: %s\n", dest)
}
