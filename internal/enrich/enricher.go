// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

package enrich

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/filmscout/internal/catalog"
	"github.com/tomtom215/filmscout/internal/logging"
	"github.com/tomtom215/filmscout/internal/metrics"
	"github.com/tomtom215/filmscout/internal/validation"
)

// Lookup methods, also used as metric labels and cache key parts.
const (
	MethodIMDbID = "imdb_id"
	MethodTitle  = "title"
)

// notFoundPayload is cached for lookups OMDb has no match for.
var notFoundPayload = []byte(`{"Response":"False","Error":"Movie not found!"}`)

var yearPattern = regexp.MustCompile(`\d{4}`)

// Options describes one enrichment run.
type Options struct {
	// Input identifies the catalog for checkpointing, usually its path.
	Input string

	// TitleColumn holds the film title. Default: title
	TitleColumn string

	// YearColumn optionally narrows title lookups. The first four digit
	// run of the value is used.
	YearColumn string

	// IMDbIDColumn optionally enables lookups by IMDb id, which are tried
	// before the title.
	IMDbIDColumn string

	// MaxRequests limits the run to the first MaxRequests rows. 0 means all.
	MaxRequests int

	// Workers is the number of concurrent lookups. Default: 1
	Workers int

	// CheckpointEvery saves progress after this many completed rows.
	// 0 disables checkpoints.
	CheckpointEvery int

	// Resume continues from a saved checkpoint of the same input.
	Resume bool
}

// Enricher fills the OMDb columns of a catalog table.
type Enricher struct {
	lookup   Lookuper
	cache    ResponseCache
	progress ProgressTracker
	logger   zerolog.Logger
}

// NewEnricher creates an enricher. cache and progress may be nil.
func NewEnricher(lookup Lookuper, cache ResponseCache, progress ProgressTracker) *Enricher {
	return &Enricher{
		lookup:   lookup,
		cache:    cache,
		progress: progress,
		logger:   logging.WithComponent("enrich"),
	}
}

// run holds the mutable state of one Run call.
type run struct {
	opts    Options
	rows    []catalog.Record
	results []RowResult
	done    []bool

	mu        sync.Mutex
	prog      *Progress
	completed int
	report    *Report
}

// Run enriches the rows of table in place and returns the run report. Rows
// keep their input order. With MaxRequests set, rows past the cap are
// dropped from the table. An invalid API key aborts the run; other lookup
// failures mark the row as not enriched.
//
//nolint:gocritic // hugeParam: opts is copied into the run state
func (e *Enricher) Run(ctx context.Context, table *catalog.Table, opts Options) (*Report, error) {
	if table == nil {
		return nil, fmt.Errorf("enrich: nil table")
	}
	opts = withDefaults(opts)
	if !table.HasColumn(opts.TitleColumn) {
		return nil, &catalog.ConfigError{Field: opts.TitleColumn, Reason: "title column not found"}
	}

	if opts.MaxRequests > 0 && opts.MaxRequests < len(table.Rows) {
		table.Rows = table.Rows[:opts.MaxRequests]
		e.logger.Info().Int("max_requests", opts.MaxRequests).Msg("run limited to the first rows")
	}
	for _, col := range Columns {
		table.AddColumn(col)
	}

	r := &run{
		opts:    opts,
		rows:    table.Rows,
		results: make([]RowResult, len(table.Rows)),
		done:    make([]bool, len(table.Rows)),
		report:  &Report{Total: len(table.Rows), StartTime: time.Now()},
	}
	r.prog = &Progress{Input: opts.Input, Total: len(table.Rows), StartTime: r.report.StartTime}

	if err := e.restore(ctx, r); err != nil {
		return nil, err
	}

	e.logger.Info().Int("rows", len(r.rows)).Int("resumed", r.report.Resumed).Int("workers", opts.Workers).Msg("enrichment started")

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i := range r.rows {
		if r.done[i] {
			continue
		}
		g.Go(func() error {
			res, err := e.enrichRow(gctx, r, i)
			if err != nil {
				return err
			}
			return e.complete(gctx, r, i, res)
		})
	}
	runErr := g.Wait()

	for i := range r.rows {
		applyResult(r.rows[i], r.results[i], r.done[i])
	}
	r.report.EndTime = time.Now()

	if runErr != nil {
		if e.progress != nil && r.opts.CheckpointEvery > 0 {
			if err := e.checkpoint(context.WithoutCancel(ctx), r); err != nil {
				e.logger.Warn().Err(err).Msg("failed to save progress")
			}
		}
		return r.report, runErr
	}

	if e.progress != nil {
		if err := e.progress.Clear(ctx, opts.Input); err != nil {
			e.logger.Warn().Err(err).Msg("failed to clear progress")
		}
	}

	e.logger.Info().
		Int("total", r.report.Total).
		Int("succeeded", r.report.Succeeded).
		Int("failed", r.report.Failed).
		Float64("success_rate", r.report.SuccessRate()).
		Dur("duration", r.report.Duration()).
		Msg("enrichment complete")
	return r.report, nil
}

//nolint:gocritic // hugeParam: opts is a small value type
func withDefaults(opts Options) Options {
	if opts.TitleColumn == "" {
		opts.TitleColumn = catalog.ColTitle
	}
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	if opts.Input == "" {
		opts.Input = "default"
	}
	return opts
}

// restore marks the checkpointed prefix of a matching run as done.
func (e *Enricher) restore(ctx context.Context, r *run) error {
	if e.progress == nil {
		return nil
	}
	if !r.opts.Resume {
		return e.progress.Clear(ctx, r.opts.Input)
	}
	prev, err := e.progress.Load(ctx, r.opts.Input)
	if err != nil {
		return err
	}
	if prev == nil {
		return nil
	}
	if prev.Total != len(r.rows) || prev.Done > len(prev.Rows) {
		e.logger.Warn().Int("saved_total", prev.Total).Int("rows", len(r.rows)).Msg("checkpoint does not match input, starting over")
		return nil
	}
	for i := 0; i < prev.Done; i++ {
		r.results[i] = prev.Rows[i]
		r.done[i] = true
		if prev.Rows[i].Found {
			r.report.Succeeded++
		} else {
			r.report.Failed++
		}
	}
	r.completed = prev.Done
	r.report.Resumed = prev.Done
	r.prog.StartTime = prev.StartTime
	return nil
}

// enrichRow tries the IMDb id first, then title and year.
func (e *Enricher) enrichRow(ctx context.Context, r *run, i int) (RowResult, error) {
	row := r.rows[i]
	title := strings.TrimSpace(row[r.opts.TitleColumn])

	var movie *Movie
	var err error

	if r.opts.IMDbIDColumn != "" {
		if id := strings.TrimSpace(row.Get(r.opts.IMDbIDColumn)); validation.IsIMDbID(id) {
			movie, err = e.fetch(ctx, r, MethodIMDbID, id, "")
			if isFatal(err) {
				return RowResult{}, err
			}
		}
	}

	if movie == nil {
		year := ""
		if r.opts.YearColumn != "" {
			year = yearPattern.FindString(row.Get(r.opts.YearColumn))
		}
		movie, err = e.fetch(ctx, r, MethodTitle, title, year)
		if isFatal(err) {
			return RowResult{}, err
		}
	}

	if movie == nil {
		logEvt := e.logger.Warn().Int("row", i+1).Str("title", title)
		if err != nil && !errors.Is(err, ErrMovieNotFound) {
			logEvt = logEvt.Err(err)
		}
		logEvt.Msg("no OMDb match")
		return RowResult{}, nil
	}

	e.logger.Debug().Int("row", i+1).Str("title", title).Str("imdb_id", movie.IMDbID).Msg("row enriched")
	return RowResult{Found: true, Fields: movie.Fields()}, nil
}

func isFatal(err error) bool {
	return errors.Is(err, ErrInvalidAPIKey) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// fetch serves a lookup from the cache or OMDb. Found and not-found answers
// are cached; transport errors are not.
func (e *Enricher) fetch(ctx context.Context, r *run, method, value, year string) (*Movie, error) {
	key := LookupKey(method, value, year)

	if e.cache != nil {
		payload, ok, err := e.cache.Get(ctx, key)
		if err != nil {
			e.logger.Warn().Err(err).Str("key", key).Msg("response cache read failed")
		}
		metrics.RecordCacheLookup("omdb", ok)
		if ok {
			r.addCacheHit()
			metrics.RecordEnrichLookup(method, "cached", 0)
			return DecodeMovie(payload)
		}
	}

	start := time.Now()
	var movie *Movie
	var err error
	if method == MethodIMDbID {
		movie, err = e.lookup.ByIMDbID(ctx, value)
	} else {
		movie, err = e.lookup.ByTitle(ctx, value, year)
	}
	r.addLookup()

	switch {
	case err == nil:
		metrics.RecordEnrichLookup(method, "found", time.Since(start))
		e.store(ctx, key, movie.payload())
	case errors.Is(err, ErrMovieNotFound):
		metrics.RecordEnrichLookup(method, "not_found", time.Since(start))
		e.store(ctx, key, notFoundPayload)
	default:
		metrics.RecordEnrichLookup(method, "error", time.Since(start))
	}
	return movie, err
}

func (e *Enricher) store(ctx context.Context, key string, payload []byte) {
	if e.cache == nil || payload == nil {
		return
	}
	if err := e.cache.Set(ctx, key, payload); err != nil {
		e.logger.Warn().Err(err).Str("key", key).Msg("response cache write failed")
	}
}

// payload returns the raw response, or a re-encoding for movies that were
// not decoded from the wire.
func (m *Movie) payload() []byte {
	if m == nil {
		return nil
	}
	if m.raw != nil {
		return m.raw
	}
	cp := *m
	cp.Response = "True"
	data, err := json.Marshal(&cp)
	if err != nil {
		return nil
	}
	return data
}

// complete records a finished row and checkpoints when due.
func (e *Enricher) complete(ctx context.Context, r *run, i int, res RowResult) error {
	r.mu.Lock()
	r.results[i] = res
	r.done[i] = true
	r.completed++
	if res.Found {
		r.report.Succeeded++
	} else {
		r.report.Failed++
	}
	due := r.opts.CheckpointEvery > 0 && r.completed%r.opts.CheckpointEvery == 0
	r.mu.Unlock()

	if due && e.progress != nil {
		if err := e.checkpoint(ctx, r); err != nil {
			e.logger.Warn().Err(err).Msg("failed to save progress")
		} else {
			e.logger.Info().Int("completed", r.completedCount()).Int("total", len(r.rows)).Msg("progress saved")
		}
	}
	return nil
}

// checkpoint saves the completed row prefix.
func (e *Enricher) checkpoint(ctx context.Context, r *run) error {
	r.mu.Lock()
	prefix := 0
	for prefix < len(r.done) && r.done[prefix] {
		prefix++
	}
	prog := *r.prog
	prog.Done = prefix
	prog.Rows = append([]RowResult(nil), r.results[:prefix]...)
	prog.Succeeded = r.report.Succeeded
	prog.Failed = r.report.Failed
	prog.UpdatedAt = time.Now()
	r.mu.Unlock()

	return e.progress.Save(ctx, &prog)
}

func (r *run) completedCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.completed
}

func (r *run) addLookup() {
	r.mu.Lock()
	r.report.Lookups++
	r.mu.Unlock()
}

func (r *run) addCacheHit() {
	r.mu.Lock()
	r.report.CacheHits++
	r.mu.Unlock()
}

// applyResult writes the OMDb columns of one row. Rows that never ran keep
// empty columns and no enriched flag.
func applyResult(row catalog.Record, res RowResult, done bool) {
	for _, col := range Columns {
		row[col] = ""
	}
	if !done {
		return
	}
	for col, v := range res.Fields {
		row[col] = v
	}
	row[EnrichedColumn] = catalog.FormatBool(res.Found)
}
