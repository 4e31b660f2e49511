// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

package recommend

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/tomtom215/filmscout/internal/catalog"
	"github.com/tomtom215/filmscout/internal/recommend/features"
	"github.com/tomtom215/filmscout/internal/recommend/filter"
	"github.com/tomtom215/filmscout/internal/recommend/vectorspace"
)

// Engine indexes a corpus and answers recommendation, search, item and
// stats queries against it. It is safe for concurrent use.
type Engine struct {
	config   *Config
	observer Observer
	synth    *features.Synthesizer
	indexer  *vectorspace.Indexer

	// state is replaced wholesale by Rebuild and never modified in place.
	state atomic.Pointer[state]

	buildMu    sync.Mutex
	generation atomic.Int64

	builds         atomic.Int64
	requestCount   atomic.Int64
	searchCount    atomic.Int64
	errorCount     atomic.Int64
	skippedWatched atomic.Int64
}

// state is one immutable corpus/index pair.
type state struct {
	corpus     *catalog.Corpus
	snap       *vectorspace.Snapshot
	stats      *Stats
	builtAt    time.Time
	generation int64
}

// NewEngine creates an engine. A nil cfg selects DefaultConfig and a nil
// observer discards events. The engine serves nothing until Build succeeds.
func NewEngine(cfg *Config, observer Observer) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if observer == nil {
		observer = NopObserver()
	}

	cfg = cfg.Clone()
	indexer, err := vectorspace.NewIndexer(cfg.TFIDF)
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Engine{
		config:   cfg,
		observer: observer,
		synth:    features.NewSynthesizer(cfg.Weights),
		indexer:  indexer,
	}, nil
}

// Build indexes corpus and makes it the active state.
func (e *Engine) Build(corpus *catalog.Corpus) error {
	_, err := e.Rebuild(corpus)
	return err
}

// Rebuild indexes corpus into a new snapshot and swaps it in. Requests that
// already loaded the previous state finish against it. On failure the
// previous state stays active.
func (e *Engine) Rebuild(corpus *catalog.Corpus) (*vectorspace.Snapshot, error) {
	e.buildMu.Lock()
	defer e.buildMu.Unlock()

	start := time.Now()
	if corpus == nil || corpus.Len() == 0 {
		err := fmt.Errorf("build index: %w", vectorspace.ErrNoDocuments)
		e.observer.Observe(Event{Kind: EventIndexFailed, Err: err})
		return nil, err
	}

	docs := e.synth.SynthesizeAll(corpus.Items())
	snap, err := e.indexer.Build(docs)
	if err != nil {
		e.errorCount.Add(1)
		err = fmt.Errorf("build index: %w", err)
		e.observer.Observe(Event{Kind: EventIndexFailed, Items: corpus.Len(), Err: err, Duration: time.Since(start)})
		return nil, err
	}

	gen := e.generation.Add(1)
	st := &state{
		corpus:     corpus,
		snap:       snap,
		builtAt:    time.Now(),
		generation: gen,
	}
	st.stats = ComputeStats(corpus, snap.Dim())
	st.stats.BuiltAt = st.builtAt
	st.stats.Generation = gen

	e.state.Store(st)
	e.builds.Add(1)

	e.observer.Observe(Event{
		Kind:       EventIndexBuilt,
		Items:      corpus.Len(),
		Vocabulary: snap.Dim(),
		Generation: gen,
		Duration:   time.Since(start),
	})
	return snap, nil
}

func (e *Engine) current() (*state, error) {
	st := e.state.Load()
	if st == nil {
		return nil, ErrNotBuilt
	}
	return st, nil
}

// Ready reports whether an index is active.
func (e *Engine) Ready() bool {
	return e.state.Load() != nil
}

// Recommend returns up to k items most similar to the profile of watchedIDs.
// Watched items are never returned. k above Limits.MaxK is clamped to it.
func (e *Engine) Recommend(watchedIDs []int, k int) ([]Recommendation, error) {
	if k <= 0 {
		return nil, invalidArgument("k must be positive, got %d", k)
	}
	resp, err := e.RecommendRequest(Request{WatchedIDs: watchedIDs, K: k})
	if err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// RecommendRequest is the full form of Recommend. K of zero selects the
// configured default and K above the maximum is clamped.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) RecommendRequest(req Request) (*Response, error) {
	start := time.Now()
	n := e.requestCount.Add(1)

	resp, err := e.recommend(req, n, start)
	if err != nil {
		e.errorCount.Add(1)
	}
	results := 0
	if resp != nil {
		results = len(resp.Items)
		req.RequestID = resp.Metadata.RequestID
	}
	e.observer.Observe(Event{
		Kind:      EventRecommended,
		RequestID: req.RequestID,
		Results:   results,
		Duration:  time.Since(start),
		Err:       err,
	})
	return resp, err
}

//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) recommend(req Request, n int64, start time.Time) (*Response, error) {
	st, err := e.current()
	if err != nil {
		return nil, err
	}

	req, err = e.prepareRequest(req, n)
	if err != nil {
		return nil, err
	}

	profile, err := BuildProfile(st.corpus, st.snap, req.WatchedIDs, e.config.Profile.MinWeight)
	if len(profile.SkippedIDs) > 0 {
		e.skippedWatched.Add(int64(len(profile.SkippedIDs)))
		e.observer.Observe(Event{Kind: EventWatchedSkipped, RequestID: req.RequestID, SkippedIDs: profile.SkippedIDs})
	}
	if err != nil {
		return nil, err
	}

	keep, err := compilePredicate(req.Filter)
	if err != nil {
		return nil, err
	}

	exclude := buildExcludeSet(req.WatchedIDs, req.ExcludeIDs)
	ranked, err := Rank(st.corpus, st.snap, profile.Vector, exclude, req.K, keep)
	if err != nil {
		return nil, err
	}

	return &Response{
		Items:   ranked.Items,
		Profile: profile,
		Metadata: ResponseMetadata{
			RequestID:  req.RequestID,
			K:          req.K,
			Candidates: ranked.Candidates,
			Filtered:   ranked.Filtered,
			LatencyMS:  time.Since(start).Milliseconds(),
			BuiltAt:    st.builtAt,
			Generation: st.generation,
			Timestamp:  time.Now(),
		},
	}, nil
}

// prepareRequest applies defaults and limits.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) prepareRequest(req Request, n int64) (Request, error) {
	if req.RequestID == "" {
		req.RequestID = fmt.Sprintf("rec-%d", n)
	}
	if len(req.WatchedIDs) == 0 {
		return req, &EmptyInputError{Input: "watched_ids"}
	}
	if len(req.WatchedIDs) > e.config.Limits.MaxWatchedIDs {
		return req, invalidArgument("at most %d watched ids are allowed, got %d",
			e.config.Limits.MaxWatchedIDs, len(req.WatchedIDs))
	}
	switch {
	case req.K < 0:
		return req, invalidArgument("k must be positive, got %d", req.K)
	case req.K == 0:
		req.K = e.config.Limits.DefaultK
	case req.K > e.config.Limits.MaxK:
		req.K = e.config.Limits.MaxK
	}
	return req, nil
}

func compilePredicate(expr string) (Predicate, error) {
	if expr == "" {
		return nil, nil
	}
	f, err := filter.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return func(r Recommendation) (bool, error) {
		ok, err := f.Match(r.Item, r.Score)
		if err != nil {
			return false, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
		}
		return ok, nil
	}, nil
}

func buildExcludeSet(watched, extra []int) map[int]struct{} {
	exclude := make(map[int]struct{}, len(watched)+len(extra))
	for _, id := range watched {
		exclude[id] = struct{}{}
	}
	for _, id := range extra {
		exclude[id] = struct{}{}
	}
	return exclude
}

// Search finds items by title substring, see SearchTitles. A limit above the
// configured maximum is clamped.
func (e *Engine) Search(query string, limit int) ([]SearchResult, error) {
	start := time.Now()
	e.searchCount.Add(1)

	st, err := e.current()
	if err != nil {
		e.errorCount.Add(1)
		return nil, err
	}
	if limit > e.config.Limits.MaxSearchResults {
		limit = e.config.Limits.MaxSearchResults
	}

	results, err := SearchTitles(st.corpus, query, limit)
	if err != nil {
		e.errorCount.Add(1)
		return nil, err
	}
	e.observer.Observe(Event{Kind: EventSearched, Query: query, Results: len(results), Duration: time.Since(start)})
	return results, nil
}

// ItemInfo returns the item with the given id.
func (e *Engine) ItemInfo(id int) (catalog.Item, error) {
	st, err := e.current()
	if err != nil {
		return catalog.Item{}, err
	}
	it, ok := st.corpus.Lookup(id)
	if !ok {
		return catalog.Item{}, &NotFoundError{IDs: []int{id}}
	}
	return it, nil
}

// ItemDetail returns the item with its strongest index terms.
func (e *Engine) ItemDetail(id int) (*ItemDetail, error) {
	st, err := e.current()
	if err != nil {
		return nil, err
	}
	idx, ok := st.corpus.IndexOf(id)
	if !ok {
		return nil, &NotFoundError{IDs: []int{id}}
	}
	return &ItemDetail{
		Item:     st.corpus.At(idx),
		TopTerms: st.snap.TopTerms(idx, e.config.Limits.TopTerms),
	}, nil
}

// Stats returns the corpus report of the active state.
func (e *Engine) Stats() (*Stats, error) {
	st, err := e.current()
	if err != nil {
		return nil, err
	}
	out := *st.stats
	out.TopGenres = append([]GenreCount(nil), st.stats.TopGenres...)
	if st.stats.Enrichment != nil {
		enr := *st.stats.Enrichment
		out.Enrichment = &enr
	}
	return &out, nil
}

// Project maps a free-text document into the active vector space.
func (e *Engine) Project(doc string) (vectorspace.Vector, error) {
	st, err := e.current()
	if err != nil {
		return vectorspace.Vector{}, err
	}
	return st.snap.Project(doc), nil
}

// Snapshot returns the active snapshot, or nil before Build.
func (e *Engine) Snapshot() *vectorspace.Snapshot {
	if st := e.state.Load(); st != nil {
		return st.snap
	}
	return nil
}

// Corpus returns the active corpus, or nil before Build.
func (e *Engine) Corpus() *catalog.Corpus {
	if st := e.state.Load(); st != nil {
		return st.corpus
	}
	return nil
}

// Generation returns the number of successful builds so far.
func (e *Engine) Generation() int64 {
	return e.generation.Load()
}

// GetConfig returns a copy of the configuration.
func (e *Engine) GetConfig() *Config {
	return e.config.Clone()
}

// GetMetrics returns the running counters.
func (e *Engine) GetMetrics() Metrics {
	return Metrics{
		Builds:          e.builds.Load(),
		Recommendations: e.requestCount.Load(),
		Searches:        e.searchCount.Load(),
		Errors:          e.errorCount.Load(),
		SkippedWatched:  e.skippedWatched.Load(),
	}
}
