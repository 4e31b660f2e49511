// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

package vectorspace

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

const eps = 1e-9

func plainConfig() Config {
	return Config{MinDF: 1, MaxDF: 1.0, NGramMax: 1}
}

func mustBuild(t *testing.T, cfg Config, docs []string) *Snapshot {
	t.Helper()
	ix, err := NewIndexer(cfg)
	if err != nil {
		t.Fatalf("NewIndexer() error = %v", err)
	}
	snap, err := ix.Build(docs)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return snap
}

func TestTokenize(t *testing.T) {
	t.Parallel()

	got := Tokenize("Sci-Fi excellent_rating A 1 Ünïcode Déjà 42nd")
	want := []string{"sci", "fi", "excellent_rating", "ünïcode", "déjà", "42nd"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize() = %q, want %q", got, want)
	}
	if got := Tokenize(""); len(got) != 0 {
		t.Errorf("Tokenize(\"\") = %q, want none", got)
	}
}

func TestAnalyzer_StopWordsBeforeBigrams(t *testing.T) {
	t.Parallel()

	an := analyzer{stopWords: true, ngramMax: 2}
	got := an.terms("The Dark Knight of Gotham")
	want := []string{"dark", "knight", "gotham", "dark knight", "knight gotham"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("terms() = %q, want %q", got, want)
	}
}

func TestBuild_IDFAndNormalization(t *testing.T) {
	t.Parallel()

	snap := mustBuild(t, plainConfig(), []string{
		"apple banana",
		"apple cherry",
		"banana cherry",
		"apple banana cherry durian",
	})

	if got := snap.Vocabulary().Terms(); !reflect.DeepEqual(got, []string{"apple", "banana", "cherry", "durian"}) {
		t.Fatalf("vocabulary = %q", got)
	}

	wantIDF := math.Log(5.0/4.0) + 1
	if got := snap.IDF("apple"); math.Abs(got-wantIDF) > eps {
		t.Errorf("IDF(apple) = %v, want %v", got, wantIDF)
	}
	wantRare := math.Log(5.0/2.0) + 1
	if got := snap.IDF("durian"); math.Abs(got-wantRare) > eps {
		t.Errorf("IDF(durian) = %v, want %v", got, wantRare)
	}
	if got := snap.IDF("missing"); got != 0 {
		t.Errorf("IDF(missing) = %v, want 0", got)
	}

	for i := 0; i < snap.Rows(); i++ {
		if n := snap.Row(i).Norm(); math.Abs(n-1) > eps {
			t.Errorf("row %d norm = %v, want 1", i, n)
		}
	}

	row0 := snap.Row(0)
	if math.Abs(row0.Get(0)-math.Sqrt(0.5)) > eps || math.Abs(row0.Get(1)-math.Sqrt(0.5)) > eps {
		t.Errorf("row 0 = %+v, want equal apple/banana weights", row0)
	}
	if row0.Get(3) != 0 {
		t.Errorf("row 0 durian = %v, want 0", row0.Get(3))
	}

	// The rare term outweighs the common ones in the same row.
	row3 := snap.Row(3)
	if row3.Get(3) <= row3.Get(0) {
		t.Errorf("durian weight %v should exceed apple weight %v", row3.Get(3), row3.Get(0))
	}
}

func TestBuild_DocumentFrequencyBounds(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.NGramMax = 1
	snap := mustBuild(t, cfg, []string{
		"common alpha",
		"common alpha beta",
		"common beta",
		"common gamma single",
		"common gamma",
	})

	want := []string{"alpha", "beta", "gamma"}
	if got := snap.Vocabulary().Terms(); !reflect.DeepEqual(got, want) {
		t.Errorf("vocabulary = %q, want %q", got, want)
	}
	st := snap.Stats()
	if st.CandidateTerms != 5 || st.DroppedByDF != 2 || st.Vocabulary != 3 {
		t.Errorf("stats = %+v", st)
	}
}

func TestBuild_BigramsAndEmptyRows(t *testing.T) {
	t.Parallel()

	snap := mustBuild(t, DefaultConfig(), []string{
		"dark knight rises",
		"dark knight returns",
		"sunny day",
	})

	want := []string{"dark", "dark knight", "knight"}
	if got := snap.Vocabulary().Terms(); !reflect.DeepEqual(got, want) {
		t.Errorf("vocabulary = %q, want %q", got, want)
	}
	if snap.Row(2).Len() != 0 || snap.Row(2).Norm() != 0 {
		t.Errorf("row 2 = %+v, want empty", snap.Row(2))
	}
	if snap.Stats().EmptyRows != 1 {
		t.Errorf("EmptyRows = %d, want 1", snap.Stats().EmptyRows)
	}
}

func TestBuild_MaxFeaturesKeepsMostFrequent(t *testing.T) {
	t.Parallel()

	cfg := plainConfig()
	cfg.MaxFeatures = 2
	snap := mustBuild(t, cfg, []string{"aa bb", "aa bb", "aa cc", "cc dd"})

	if got := snap.Vocabulary().Terms(); !reflect.DeepEqual(got, []string{"aa", "bb"}) {
		t.Errorf("vocabulary = %q, want [aa bb]", got)
	}
	if snap.Stats().DroppedByCap != 2 {
		t.Errorf("DroppedByCap = %d, want 2", snap.Stats().DroppedByCap)
	}
}

func TestBuild_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  Config
		docs []string
		want error
	}{
		{"no documents", DefaultConfig(), nil, ErrNoDocuments},
		{"only stop words", DefaultConfig(), []string{"the and", "of the", "a"}, ErrEmptyVocabulary},
		{"nothing survives pruning", Config{MinDF: 2, MaxDF: 1, NGramMax: 1}, []string{"alpha", "beta"}, ErrNoTermsRemain},
		{"inverted bounds", Config{MinDF: 2, MaxDF: 0.5, NGramMax: 1}, []string{"alpha", "alpha"}, ErrDocFreqBounds},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ix, err := NewIndexer(tt.cfg)
			if err != nil {
				t.Fatal(err)
			}
			if _, err := ix.Build(tt.docs); !errors.Is(err, tt.want) {
				t.Errorf("Build() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	bad := []Config{
		{MinDF: 0, MaxDF: 0.8, NGramMax: 2},
		{MinDF: 1, MaxDF: 0, NGramMax: 2},
		{MinDF: 1, MaxDF: 1.5, NGramMax: 2},
		{MinDF: 1, MaxDF: 0.8, NGramMax: 0},
		{MinDF: 1, MaxDF: 0.8, NGramMax: 2, MaxFeatures: -1},
		{MinDF: 1, MaxDF: 0.8, NGramMax: 2, StopWords: "klingon"},
	}
	for i, cfg := range bad {
		if _, err := NewIndexer(cfg); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("case %d: NewIndexer() error = %v, want ErrInvalidConfig", i, err)
		}
	}
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

func TestProject(t *testing.T) {
	t.Parallel()

	snap := mustBuild(t, plainConfig(), []string{"aa bb", "aa cc", "bb cc"})

	v := snap.Project("AA unknown words")
	if v.Len() != 1 || v.Indices[0] != 0 || math.Abs(v.Values[0]-1) > eps {
		t.Errorf("Project() = %+v, want unit weight on aa", v)
	}
	if got := snap.Project("nothing known"); got.Len() != 0 {
		t.Errorf("Project(unknown) = %+v, want empty", got)
	}

	// Projecting an indexed document reproduces its row.
	if got := snap.Project("aa bb"); !reflect.DeepEqual(got, snap.Row(0)) {
		t.Errorf("Project(doc 0) = %+v, want %+v", got, snap.Row(0))
	}
}

func TestBuild_IndependentSnapshots(t *testing.T) {
	t.Parallel()

	ix, err := NewIndexer(plainConfig())
	if err != nil {
		t.Fatal(err)
	}
	a, err := ix.Build([]string{"aa bb", "aa cc"})
	if err != nil {
		t.Fatal(err)
	}
	b, err := ix.Build([]string{"xx yy"})
	if err != nil {
		t.Fatal(err)
	}
	if a.Dim() != 3 || b.Dim() != 2 {
		t.Errorf("dims = %d, %d; want 3, 2", a.Dim(), b.Dim())
	}
	if a.Vocabulary().Term(0) != "aa" {
		t.Error("building a second snapshot must not change the first")
	}
}

func TestTopTerms(t *testing.T) {
	t.Parallel()

	snap := mustBuild(t, plainConfig(), []string{"aa aa bb", "bb cc"})
	if got := snap.TopTerms(0, 1); !reflect.DeepEqual(got, []string{"aa"}) {
		t.Errorf("TopTerms(0, 1) = %q, want [aa]", got)
	}
	if got := snap.TopTerms(1, 10); len(got) != 2 {
		t.Errorf("TopTerms(1, 10) = %q, want 2 terms", got)
	}
}

func TestVectorHelpers(t *testing.T) {
	t.Parallel()

	v := Vector{Indices: []int{1, 3}, Values: []float64{3, 4}}
	if v.Norm() != 5 {
		t.Errorf("Norm() = %v, want 5", v.Norm())
	}
	dense := v.Dense(4)
	if !reflect.DeepEqual(dense, []float64{0, 3, 0, 4}) {
		t.Errorf("Dense() = %v", dense)
	}
	if got := v.Dot([]float64{1, 1, 1, 1}); got != 7 {
		t.Errorf("Dot() = %v, want 7", got)
	}
	if DenseNorm(dense) != 5 {
		t.Errorf("DenseNorm() = %v, want 5", DenseNorm(dense))
	}
}
