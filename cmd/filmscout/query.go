// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/tomtom215/filmscout/internal/catalog"
	"github.com/tomtom215/filmscout/internal/logging"
	"github.com/tomtom215/filmscout/internal/recommend"
)

func runRecommend(_ context.Context, e *env, args []string) error {
	var base baseFlags
	fs := newFlagSet("recommend", e)
	base.register(fs)
	format := outputFlag(fs)
	watched := fs.String("watched", "", "comma-separated ids of watched films (required)")
	exclude := fs.String("exclude", "", "comma-separated ids to leave out of the results")
	k := fs.Int("k", 0, "number of recommendations (default: recommend.default_k)")
	filter := fs.String("filter", "", `filter expression, e.g. 'item.year >= 2000 && item.genres.contains("Drama")'`)
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if err := checkFormat(*format); err != nil {
		return err
	}

	watchedIDs, err := parseIDList(*watched)
	if err != nil {
		return fmt.Errorf("%w: --watched: %v", errUsage, err)
	}
	if len(watchedIDs) == 0 {
		return fmt.Errorf("%w: --watched is required", errUsage)
	}
	excludeIDs, err := parseIDList(*exclude)
	if err != nil {
		return fmt.Errorf("%w: --exclude: %v", errUsage, err)
	}
	if *k < 0 {
		return fmt.Errorf("%w: --k must not be negative", errUsage)
	}

	cfg, err := base.load()
	if err != nil {
		return err
	}
	engine, err := openEngine(cfg)
	if err != nil {
		return err
	}

	resp, err := engine.RecommendRequest(recommend.Request{
		WatchedIDs: watchedIDs,
		K:          *k,
		ExcludeIDs: excludeIDs,
		Filter:     *filter,
		RequestID:  logging.GenerateRequestID(),
	})
	if err != nil {
		return err
	}
	return render(e.stdout, *format, resp, func(w io.Writer) error {
		return writeRecommendations(w, engine.Corpus(), resp)
	})
}

func writeRecommendations(w io.Writer, corpus *catalog.Corpus, resp *recommend.Response) error {
	var titles []string
	for _, id := range resp.Profile.WatchedIDs {
		if it, ok := corpus.Lookup(id); ok {
			titles = append(titles, it.Title)
		}
	}
	fmt.Fprintf(w, "Because you watched %s:\n\n", strings.Join(titles, ", "))
	if len(resp.Profile.SkippedIDs) > 0 {
		fmt.Fprintf(w, "(unknown ids skipped: %s)\n\n", joinInts(resp.Profile.SkippedIDs))
	}
	if len(resp.Items) == 0 {
		fmt.Fprintln(w, "No recommendations.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tID\tTITLE\tYEAR\tSCORE\tGENRES\tDIRECTOR")
	for i, rec := range resp.Items {
		it := rec.Item
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%.3f\t%s\t%s\n",
			i+1, it.ID, it.Title, yearText(it.Year), rec.Score, it.Genres, it.Director)
	}
	return tw.Flush()
}

func runSearch(_ context.Context, e *env, args []string) error {
	var base baseFlags
	fs := newFlagSet("search", e)
	base.register(fs)
	format := outputFlag(fs)
	query := fs.String("q", "", "case-insensitive title substring (required)")
	limit := fs.Int("limit", 0, "maximum results (default: recommend.default_search_limit)")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if err := checkFormat(*format); err != nil {
		return err
	}
	if strings.TrimSpace(*query) == "" {
		return fmt.Errorf("%w: --q is required", errUsage)
	}

	cfg, err := base.load()
	if err != nil {
		return err
	}
	engine, err := openEngine(cfg)
	if err != nil {
		return err
	}

	n := *limit
	if n <= 0 {
		n = cfg.Recommend.DefaultSearchLimit
	}
	results, err := engine.Search(*query, n)
	if err != nil {
		return err
	}
	return render(e.stdout, *format, results, func(w io.Writer) error {
		if len(results) == 0 {
			fmt.Fprintf(w, "No films match %q.\n", *query)
			return nil
		}
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tTITLE\tYEAR\tRATING\tGENRES\tDIRECTOR")
		for _, r := range results {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
				r.ID, r.Title, yearText(r.Year), ratingText(r.Rating), r.Genres, r.Director)
		}
		return tw.Flush()
	})
}

func runInfo(_ context.Context, e *env, args []string) error {
	var base baseFlags
	fs := newFlagSet("info", e)
	base.register(fs)
	format := outputFlag(fs)
	id := fs.Int("id", -1, "film id (required)")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if err := checkFormat(*format); err != nil {
		return err
	}
	if *id < 0 {
		return fmt.Errorf("%w: --id is required", errUsage)
	}

	cfg, err := base.load()
	if err != nil {
		return err
	}
	engine, err := openEngine(cfg)
	if err != nil {
		return err
	}

	detail, err := engine.ItemDetail(*id)
	if err != nil {
		return err
	}
	return render(e.stdout, *format, detail, func(w io.Writer) error {
		return writeItemDetail(w, detail)
	})
}

func writeItemDetail(w io.Writer, d *recommend.ItemDetail) error {
	it := d.Item
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	field := func(name, value string) {
		if value != "" && value != "-" {
			fmt.Fprintf(tw, "%s:\t%s\n", name, value)
		}
	}
	field("ID", fmt.Sprint(it.ID))
	field("Title", it.Title)
	field("Year", yearText(it.Year))
	field("Genres", it.Genres)
	field("Director", it.Director)
	field("Actors", it.Actors)
	field("Rating", ratingText(it.Rating))
	if it.Runtime > 0 {
		field("Runtime", fmt.Sprintf("%d min", it.Runtime))
	}
	field("Language", it.Language)
	field("Country", it.Country)
	field("Awards", it.Awards)
	field("IMDb", it.IMDbID)
	field("Plot", it.Plot)
	field("Top terms", strings.Join(d.TopTerms, ", "))
	return tw.Flush()
}

func runStats(_ context.Context, e *env, args []string) error {
	var base baseFlags
	fs := newFlagSet("stats", e)
	base.register(fs)
	format := outputFlag(fs)
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
	engine, err := openEngine(cfg)
	if err != nil {
		return err
	}

	stats, err := engine.Stats()
	if err != nil {
		return err
	}
	return render(e.stdout, *format, stats, func(w io.Writer) error {
		return writeStats(w, stats)
	})
}

func writeStats(w io.Writer, s *recommend.Stats) error {
	fmt.Fprintf(w, "Films:              %s\n", humanize.Comma(int64(s.TotalItems)))
	fmt.Fprintf(w, "Directors:          %s\n", humanize.Comma(int64(s.UniqueDirectors)))
	fmt.Fprintf(w, "Feature dimensions: %s\n", humanize.Comma(int64(s.FeatureDimensions)))
	fmt.Fprintf(w, "Index built:        %s (generation %d)\n", humanize.Time(s.BuiltAt), s.Generation)

	if len(s.TopGenres) > 0 {
		fmt.Fprintln(w, "\nTop genres:")
		for _, g := range s.TopGenres {
			fmt.Fprintf(w, "  %-20s %d\n", g.Genre, g.Count)
		}
	}

	if en := s.Enrichment; en != nil {
		fmt.Fprintln(w, "\nEnrichment:")
		fmt.Fprintf(w, "  enriched: %d (%.1f%%)\n", en.EnrichedItems, en.EnrichmentRate*100)
		if en.RatedItems > 0 {
			fmt.Fprintf(w, "  rating:   %.1f avg, %.1f to %.1f over %d films\n",
				en.AvgRating, en.MinRating, en.MaxRating, en.RatedItems)
		}
		if en.YearMin > 0 {
			fmt.Fprintf(w, "  years:    %d to %d\n", en.YearMin, en.YearMax)
		}
	}
	return nil
}

func yearText(y int) string {
	if y <= 0 {
		return "-"
	}
	return fmt.Sprint(y)
}

func ratingText(r float64) string {
	if r <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f", r)
}

func joinInts(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprint(id)
	}
	return strings.Join(parts, ", ")
}
