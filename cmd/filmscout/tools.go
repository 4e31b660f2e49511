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
	"slices"
	"time"

	"github.com/tomtom215/filmscout/internal/catalog"
	"github.com/tomtom215/filmscout/internal/diagnostics"
	"github.com/tomtom215/filmscout/internal/interactive"
	"github.com/tomtom215/filmscout/internal/logging"
	"github.com/tomtom215/filmscout/internal/sample"
)

// errUnhealthy is returned by doctor when no OMDb endpoint answers.
var errUnhealthy = errors.New("no working OMDb endpoint")

func runSample(_ context.Context, e *env, args []string) error {
	var base baseFlags
	fs := newFlagSet("sample", e)
	base.register(fs)
	format := outputFlag(fs)
	size := fs.Int("size", 100, fmt.Sprintf("number of films, one of %v", sample.Sizes))
	out := fs.String("out", "sample_movies.csv", "output CSV")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if err := checkFormat(*format); err != nil {
		return err
	}
	if !slices.Contains(sample.Sizes, *size) {
		return fmt.Errorf("%w: --size must be one of %v", errUsage, sample.Sizes)
	}
	if _, err := base.load(); err != nil {
		return err
	}

	table, err := sample.Generate(*size)
	if err != nil {
		return err
	}
	if err := catalog.WriteCSVFile(*out, table); err != nil {
		return err
	}
	logger := logging.WithComponent("sample")
	logger.Info().Str("path", *out).Int("films", len(table.Rows)).Msg("sample catalog written")

	summary := sample.Summarize(table)
	return render(e.stdout, *format, summary, func(w io.Writer) error {
		fmt.Fprintf(w, "Wrote %d films to %s\n", summary.Films, *out)
		fmt.Fprintf(w, "  rating: %.1f avg (%.1f to %.1f)\n", summary.MeanRating, summary.MinRating, summary.MaxRating)
		fmt.Fprintf(w, "  years:  %d to %d\n", summary.FirstYear, summary.LastYear)
		fmt.Fprintln(w, "  top genres:")
		for _, g := range summary.TopGenres {
			fmt.Fprintf(w, "    %-16s %d\n", g.Genre, g.Count)
		}
		return nil
	})
}

func runTMDB(_ context.Context, e *env, args []string) error {
	var base baseFlags
	fs := newFlagSet("tmdb", e)
	base.register(fs)
	format := outputFlag(fs)
	movies := fs.String("movies", "", "tmdb_5000_movies.csv (required)")
	credits := fs.String("credits", "", "tmdb_5000_credits.csv, adds director and cast")
	out := fs.String("out", "movies.csv", "output CSV")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if err := checkFormat(*format); err != nil {
		return err
	}
	if *movies == "" {
		return fmt.Errorf("%w: --movies is required", errUsage)
	}
	if _, err := base.load(); err != nil {
		return err
	}

	movieTable, err := catalog.ReadTableFile(*movies)
	if err != nil {
		return fmt.Errorf("read movies: %w", err)
	}
	var creditTable *catalog.Table
	if *credits != "" {
		if creditTable, err = catalog.ReadTableFile(*credits); err != nil {
			return fmt.Errorf("read credits: %w", err)
		}
	}

	table, summary, err := catalog.ConvertTMDB(movieTable, creditTable)
	if err != nil {
		return err
	}
	if err := catalog.WriteCSVFile(*out, table); err != nil {
		return err
	}

	return render(e.stdout, *format, summary, func(w io.Writer) error {
		fmt.Fprintf(w, "Converted %d films to %s\n", summary.Movies, *out)
		fmt.Fprintf(w, "  genres:       %d\n", summary.UniqueGenres)
		fmt.Fprintf(w, "  directors:    %d\n", summary.UniqueDirectors)
		fmt.Fprintf(w, "  with credits: %d\n", summary.WithCredits)
		return nil
	})
}

func runDoctor(ctx context.Context, e *env, args []string) error {
	var base baseFlags
	fs := newFlagSet("doctor", e)
	base.register(fs)
	format := outputFlag(fs)
	timeout := fs.Duration("timeout", 10*time.Second, "timeout per check")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if err := checkFormat(*format); err != nil {
		return err
	}
	cfg, err := base.load()
	if err != nil {
		return err
	}

	dcfg := diagnostics.DefaultConfig(cfg.Enrich.BaseURLs)
	dcfg.Timeout = *timeout
	report, err := diagnostics.Run(ctx, dcfg)
	if err != nil {
		return err
	}

	if err := render(e.stdout, *format, report, func(w io.Writer) error {
		writeDiagnostics(w, report)
		return nil
	}); err != nil {
		return err
	}
	if !report.Healthy() {
		return errUnhealthy
	}
	return nil
}

func writeDiagnostics(w io.Writer, r *diagnostics.Report) {
	sections := []struct {
		kind  string
		title string
	}{
		{diagnostics.KindDNS, "DNS resolution"},
		{diagnostics.KindConnectivity, "Internet connectivity"},
		{diagnostics.KindEndpoint, "OMDb endpoints"},
	}
	for _, s := range sections {
		checks := r.ByKind(s.kind)
		if len(checks) == 0 {
			continue
		}
		fmt.Fprintf(w, "%s:\n", s.title)
		for _, c := range checks {
			mark := "FAIL"
			if c.OK {
				mark = "ok"
			}
			fmt.Fprintf(w, "  %-4s %-32s %s\n", mark, c.Target, c.Latency.Round(time.Millisecond))
			if !c.OK && c.Detail != "" {
				fmt.Fprintf(w, "       %s\n", c.Detail)
			}
		}
		fmt.Fprintln(w)
	}

	if len(r.SuggestedDNS) > 0 {
		fmt.Fprintln(w, "Public DNS servers to try:")
		for _, d := range r.SuggestedDNS {
			fmt.Fprintf(w, "  %-10s %v\n", d.Name, d.Addresses)
		}
		fmt.Fprintln(w)
	}
	for _, a := range r.Advice {
		fmt.Fprintf(w, "* %s\n", a)
	}
}

func runInteractive(ctx context.Context, e *env, args []string) error {
	var base baseFlags
	fs := newFlagSet("interactive", e)
	base.register(fs)
	seeds := fs.Int("seeds", 0, "films picked before the first round (default 3)")
	perRound := fs.Int("per-round", 0, "recommendations shown per round (default 4)")
	filter := fs.String("filter", "", "filter expression applied to every round")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	cfg, err := base.load()
	if err != nil {
		return err
	}
	engine, err := openEngine(cfg)
	if err != nil {
		return err
	}

	session := interactive.NewSession(engine, e.stdin, e.stdout, interactive.Options{
		Seeds:       *seeds,
		PerRound:    *perRound,
		MorePool:    cfg.Recommend.MorePoolSize,
		SearchLimit: cfg.Recommend.DefaultSearchLimit,
		Filter:      *filter,
	})
	_, err = session.Run(ctx)
	if errors.Is(err, interactive.ErrInputClosed) {
		fmt.Fprintln(e.stdout, "\nInput closed before a profile was built.")
		return nil
	}
	return err
}
