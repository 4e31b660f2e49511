// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

package recommend

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/tomtom215/filmscout/internal/catalog"
	"github.com/tomtom215/filmscout/internal/recommend/features"
	"github.com/tomtom215/filmscout/internal/recommend/vectorspace"
)

func buildSnapshot(t *testing.T, corpus *catalog.Corpus) *vectorspace.Snapshot {
	t.Helper()
	idx, err := vectorspace.NewIndexer(vectorspace.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	docs := features.NewSynthesizer(features.DefaultWeights()).SynthesizeAll(corpus.Items())
	snap, err := idx.Build(docs)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return snap
}

func TestItemWeight(t *testing.T) {
	t.Parallel()

	tests := []struct {
		rating float64
		want   float64
	}{
		{0, 1.0},
		{-1, 1.0},
		{3.0, 0.5},
		{5.0, 0.5},
		{8.7, 0.87},
		{10, 1.0},
	}
	for _, tt := range tests {
		if got := itemWeight(tt.rating, 0.5); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("itemWeight(%v) = %v, want %v", tt.rating, got, tt.want)
		}
	}
}

func TestBuildProfile(t *testing.T) {
	t.Parallel()

	corpus := mustCorpus(t, testItems())
	snap := buildSnapshot(t, corpus)

	t.Run("weights follow ratings", func(t *testing.T) {
		t.Parallel()
		p, err := BuildProfile(corpus, snap, []int{1, 4}, 0.5)
		if err != nil {
			t.Fatal(err)
		}
		want := []float64{0.87 / 1.70, 0.83 / 1.70}
		for i := range want {
			if math.Abs(p.Weights[i]-want[i]) > 1e-9 {
				t.Errorf("Weights = %v, want %v", p.Weights, want)
			}
		}
		if len(p.Vector) != snap.Dim() {
			t.Errorf("len(Vector) = %d, want %d", len(p.Vector), snap.Dim())
		}
	})

	t.Run("single item profile is its row", func(t *testing.T) {
		t.Parallel()
		p, err := BuildProfile(corpus, snap, []int{3}, 0.5)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(p.Vector, snap.Row(2).Dense(snap.Dim())) {
			t.Error("profile of one item should equal its row")
		}
	})

	t.Run("duplicates and unknown ids", func(t *testing.T) {
		t.Parallel()
		p, err := BuildProfile(corpus, snap, []int{1, 1, 999}, 0.5)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(p.WatchedIDs, []int{1}) || !reflect.DeepEqual(p.SkippedIDs, []int{999}) {
			t.Errorf("profile = %+v", p)
		}
		if p.Weights[0] != 1 {
			t.Errorf("sole weight = %v, want 1", p.Weights[0])
		}
	})

	t.Run("nothing resolves", func(t *testing.T) {
		t.Parallel()
		_, err := BuildProfile(corpus, snap, []int{999}, 0.5)
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
		_, err = BuildProfile(corpus, snap, nil, 0.5)
		if !errors.Is(err, ErrEmptyInput) {
			t.Errorf("error = %v, want ErrEmptyInput", err)
		}
	})
}

func TestCosineSimilarity(t *testing.T) {
	t.Parallel()

	row := vectorspace.Vector{Indices: []int{0, 2}, Values: []float64{0.6, 0.8}}
	tests := []struct {
		name    string
		profile []float64
		row     vectorspace.Vector
		want    float64
	}{
		{"identical", []float64{0.6, 0, 0.8}, row, 1},
		{"scaled", []float64{3, 0, 4}, row, 1},
		{"orthogonal", []float64{0, 1, 0}, row, 0},
		{"zero profile", []float64{0, 0, 0}, row, 0},
		{"zero row", []float64{1, 0, 0}, vectorspace.Vector{}, 0},
		{"partial", []float64{1, 0, 0}, row, 0.6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := CosineSimilarity(tt.profile, tt.row)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("CosineSimilarity() = %v, want %v", got, tt.want)
			}
			if got < 0 || got > 1 {
				t.Errorf("CosineSimilarity() = %v out of [0, 1]", got)
			}
		})
	}
}

func TestRank(t *testing.T) {
	t.Parallel()

	corpus := mustCorpus(t, testItems())
	snap := buildSnapshot(t, corpus)
	p, err := BuildProfile(corpus, snap, []int{4}, 0.5)
	if err != nil {
		t.Fatal(err)
	}

	t.Run("invalid k", func(t *testing.T) {
		t.Parallel()
		for _, k := range []int{0, -3} {
			if _, err := Rank(corpus, snap, p.Vector, nil, k, nil); !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("Rank(k=%d) error = %v", k, err)
			}
		}
	})

	t.Run("excludes and orders", func(t *testing.T) {
		t.Parallel()
		res, err := Rank(corpus, snap, p.Vector, map[int]struct{}{4: {}}, 100, nil)
		if err != nil {
			t.Fatal(err)
		}
		for i, r := range res.Items {
			if r.Item.ID == 4 {
				t.Error("excluded item returned")
			}
			if r.Score <= 0 {
				t.Errorf("non-positive score %v returned", r.Score)
			}
			if i > 0 && r.Score > res.Items[i-1].Score {
				t.Error("scores not sorted")
			}
		}
		if res.Candidates != len(res.Items) || res.Filtered != 0 {
			t.Errorf("counters = %d/%d, items = %d", res.Candidates, res.Filtered, len(res.Items))
		}
	})

	t.Run("predicate runs before the cut", func(t *testing.T) {
		t.Parallel()
		keep := func(r Recommendation) (bool, error) { return r.Item.Year >= 2000, nil }
		res, err := Rank(corpus, snap, p.Vector, map[int]struct{}{4: {}}, 2, keep)
		if err != nil {
			t.Fatal(err)
		}
		if len(res.Items) != 2 {
			t.Fatalf("len = %d, want 2", len(res.Items))
		}
		for _, r := range res.Items {
			if r.Item.Year < 2000 {
				t.Errorf("predicate ignored for %s", r.Item.Title)
			}
		}
	})

	t.Run("predicate error", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("boom")
		keep := func(Recommendation) (bool, error) { return false, boom }
		if _, err := Rank(corpus, snap, p.Vector, nil, 3, keep); !errors.Is(err, boom) {
			t.Errorf("error = %v, want boom", err)
		}
	})
}

func TestSearchTitles(t *testing.T) {
	t.Parallel()

	items := []catalog.Item{
		{ID: 1, Title: "Alien", Rating: 8.5},
		{ID: 2, Title: "Aliens", Rating: 8.4},
		{ID: 3, Title: "Alien 3"},
		{ID: 4, Title: "Alien Resurrection", Rating: 6.2},
		{ID: 5, Title: "Alien: Covenant", Rating: 6.2},
		{ID: 6, Title: "Prometheus", Rating: 7.0},
	}
	corpus := mustCorpus(t, items)

	tests := []struct {
		name  string
		query string
		limit int
		want  []int
	}{
		{"rating order with stable ties", "alien", 10, []int{1, 2, 4, 5, 3}},
		{"truncated", "ALIEN", 2, []int{1, 2}},
		{"untrimmed query", " 3", 10, []int{3}},
		{"no match", "predator", 10, []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res, err := SearchTitles(corpus, tt.query, tt.limit)
			if err != nil {
				t.Fatal(err)
			}
			got := make([]int, len(res))
			for i, r := range res {
				got[i] = r.ID
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ids = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestComputeStats(t *testing.T) {
	t.Parallel()

	t.Run("no enrichment block without enrichment", func(t *testing.T) {
		t.Parallel()
		corpus := mustCorpus(t, []catalog.Item{
			{ID: 1, Title: "A", Genres: "Drama", Director: "X"},
			{ID: 2, Title: "B", Genres: "Drama, Comedy", Director: "X"},
		})
		st := ComputeStats(corpus, 12)
		if st.TotalItems != 2 || st.UniqueDirectors != 1 || st.FeatureDimensions != 12 {
			t.Errorf("stats = %+v", st)
		}
		if st.Enrichment != nil {
			t.Error("unexpected enrichment block")
		}
		want := []GenreCount{{"Drama", 2}, {"Comedy", 1}}
		if !reflect.DeepEqual(st.TopGenres, want) {
			t.Errorf("TopGenres = %v, want %v", st.TopGenres, want)
		}
	})

	t.Run("enrichment aggregates", func(t *testing.T) {
		t.Parallel()
		st := ComputeStats(mustCorpus(t, testItems()), 0)
		enr := st.Enrichment
		if enr == nil {
			t.Fatal("expected enrichment block")
		}
		if enr.RatedItems != 8 || enr.MinRating != 7.2 || enr.MaxRating != 9.2 {
			t.Errorf("ratings = %+v", enr)
		}
		if math.Abs(enr.AvgRating-8.1) > 1e-9 {
			t.Errorf("AvgRating = %v, want 8.1", enr.AvgRating)
		}
		if enr.YearMin != 1972 || enr.YearMax != 2014 {
			t.Errorf("years = %d..%d", enr.YearMin, enr.YearMax)
		}
	})
}

func TestTopGenres(t *testing.T) {
	t.Parallel()

	items := []catalog.Item{
		{Genres: "Drama, Crime"},
		{Genres: "Comedy,Drama"},
		{Genres: ""},
		{Genres: "Crime"},
	}
	want := []GenreCount{{"Crime", 2}, {"Drama", 2}}
	if got := TopGenres(items, 2); !reflect.DeepEqual(got, want) {
		t.Errorf("TopGenres() = %v, want %v", got, want)
	}
	if got := TopGenres(nil, 3); len(got) != 0 {
		t.Errorf("TopGenres(nil) = %v", got)
	}
}
