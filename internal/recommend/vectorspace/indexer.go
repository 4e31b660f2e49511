// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

// Package vectorspace fits a TF-IDF vocabulary and document matrix over a
// corpus of synthesized documents.
//
// Building is a one-shot batch step that yields an immutable Snapshot. A
// snapshot is never modified: rebuilding a corpus means calling Build again
// and replacing the old snapshot. Snapshots are safe for concurrent reads.
//
// Weighting follows the smoothed TF-IDF scheme:
//
//	tf(t, d) = raw count of t in d
//	idf(t)   = ln((1 + N) / (1 + df(t))) + 1
//	w(t, d)  = tf(t, d) * idf(t), each row scaled to unit L2 length
package vectorspace

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// Indexer errors.
var (
	ErrNoDocuments     = errors.New("vectorspace: no documents to index")
	ErrEmptyVocabulary = errors.New("vectorspace: empty vocabulary; documents only contain stop words")
	ErrNoTermsRemain   = errors.New("vectorspace: after pruning, no terms remain; try a lower min_df or a higher max_df")
	ErrDocFreqBounds   = errors.New("vectorspace: max_df corresponds to fewer documents than min_df")
	ErrInvalidConfig   = errors.New("vectorspace: invalid configuration")
)

// Config controls vocabulary selection.
type Config struct {
	// MaxFeatures caps the vocabulary size. Terms are ranked by total
	// frequency across the corpus. Zero means no cap.
	MaxFeatures int `json:"max_features"`

	// MinDF is the minimum number of documents a term must appear in.
	MinDF int `json:"min_df"`

	// MaxDF is the maximum share of documents (0, 1] a term may appear in.
	MaxDF float64 `json:"max_df"`

	// NGramMax is the longest n-gram generated. 1 means unigrams only.
	NGramMax int `json:"ngram_max"`

	// StopWords selects the stop list: "english" or "" for none.
	StopWords string `json:"stop_words"`
}

// DefaultConfig returns the stock vocabulary settings.
func DefaultConfig() Config {
	return Config{
		MaxFeatures: 8000,
		MinDF:       2,
		MaxDF:       0.8,
		NGramMax:    2,
		StopWords:   StopWordsEnglish,
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.MaxFeatures < 0 {
		return fmt.Errorf("%w: max_features must be non-negative, got %d", ErrInvalidConfig, c.MaxFeatures)
	}
	if c.MinDF < 1 {
		return fmt.Errorf("%w: min_df must be at least 1, got %d", ErrInvalidConfig, c.MinDF)
	}
	if c.MaxDF <= 0 || c.MaxDF > 1 {
		return fmt.Errorf("%w: max_df must be in (0, 1], got %v", ErrInvalidConfig, c.MaxDF)
	}
	if c.NGramMax < 1 || c.NGramMax > 3 {
		return fmt.Errorf("%w: ngram_max must be between 1 and 3, got %d", ErrInvalidConfig, c.NGramMax)
	}
	if c.StopWords != "" && c.StopWords != StopWordsEnglish {
		return fmt.Errorf("%w: unknown stop word list %q", ErrInvalidConfig, c.StopWords)
	}
	return nil
}

func (c Config) analyzer() analyzer {
	return analyzer{stopWords: c.StopWords == StopWordsEnglish, ngramMax: c.NGramMax}
}

// Indexer fits snapshots. It carries configuration only, so one Indexer may
// build any number of independent snapshots.
type Indexer struct {
	cfg Config
}

// NewIndexer validates cfg and returns an indexer.
func NewIndexer(cfg Config) (*Indexer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Indexer{cfg: cfg}, nil
}

// BuildStats summarizes one build.
type BuildStats struct {
	Documents      int `json:"documents"`
	CandidateTerms int `json:"candidate_terms"`
	DroppedByDF    int `json:"dropped_by_df"`
	DroppedByCap   int `json:"dropped_by_cap"`
	Vocabulary     int `json:"vocabulary"`
	EmptyRows      int `json:"empty_rows"`
}

// Build fits the vocabulary and document matrix. Row i of the result
// corresponds to docs[i].
func (ix *Indexer) Build(docs []string) (*Snapshot, error) {
	n := len(docs)
	if n == 0 {
		return nil, ErrNoDocuments
	}

	an := ix.cfg.analyzer()
	counts := make([]map[string]int, n)
	df := make(map[string]int)
	tf := make(map[string]int)

	for i, doc := range docs {
		c := make(map[string]int)
		for _, term := range an.terms(doc) {
			c[term]++
		}
		for term, k := range c {
			df[term]++
			tf[term] += k
		}
		counts[i] = c
	}

	if len(df) == 0 {
		return nil, ErrEmptyVocabulary
	}

	maxDoc := ix.cfg.MaxDF * float64(n)
	if maxDoc < float64(ix.cfg.MinDF) {
		return nil, fmt.Errorf("%w (max %.1f < min %d for %d documents)", ErrDocFreqBounds, maxDoc, ix.cfg.MinDF, n)
	}

	stats := BuildStats{Documents: n, CandidateTerms: len(df)}

	kept := make([]string, 0, len(df))
	for term, d := range df {
		if d >= ix.cfg.MinDF && float64(d) <= maxDoc {
			kept = append(kept, term)
		}
	}
	stats.DroppedByDF = len(df) - len(kept)
	if len(kept) == 0 {
		return nil, ErrNoTermsRemain
	}

	if ix.cfg.MaxFeatures > 0 && len(kept) > ix.cfg.MaxFeatures {
		sort.Slice(kept, func(a, b int) bool {
			if tf[kept[a]] != tf[kept[b]] {
				return tf[kept[a]] > tf[kept[b]]
			}
			return kept[a] < kept[b]
		})
		stats.DroppedByCap = len(kept) - ix.cfg.MaxFeatures
		kept = kept[:ix.cfg.MaxFeatures]
	}

	vocab := newVocabulary(kept)

	idf := make([]float64, vocab.Len())
	for j, term := range vocab.terms {
		idf[j] = math.Log(float64(1+n)/float64(1+df[term])) + 1
	}

	rows := make([]Vector, n)
	for i, c := range counts {
		rows[i] = weigh(c, vocab, idf)
		if rows[i].Len() == 0 {
			stats.EmptyRows++
		}
	}
	stats.Vocabulary = vocab.Len()

	return &Snapshot{
		cfg:   ix.cfg,
		vocab: vocab,
		idf:   idf,
		rows:  rows,
		stats: stats,
	}, nil
}

// weigh converts term counts into a unit-length TF-IDF row over vocab.
func weigh(counts map[string]int, vocab *Vocabulary, idf []float64) Vector {
	v := Vector{}
	for term, k := range counts {
		if j, ok := vocab.index[term]; ok {
			v.Indices = append(v.Indices, j)
			v.Values = append(v.Values, float64(k))
		}
	}
	sort.Sort(byIndex(v))
	for k, j := range v.Indices {
		v.Values[k] *= idf[j]
	}
	v.normalize()
	return v
}

type byIndex Vector

func (b byIndex) Len() int           { return len(b.Indices) }
func (b byIndex) Less(i, j int) bool { return b.Indices[i] < b.Indices[j] }
func (b byIndex) Swap(i, j int) {
	b.Indices[i], b.Indices[j] = b.Indices[j], b.Indices[i]
	b.Values[i], b.Values[j] = b.Values[j], b.Values[i]
}
