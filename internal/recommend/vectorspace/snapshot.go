// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

package vectorspace

import "sort"

// Vocabulary maps terms to columns. Terms are sorted lexicographically and
// column j holds terms[j].
type Vocabulary struct {
	terms []string
	index map[string]int
}

func newVocabulary(terms []string) *Vocabulary {
	sorted := append([]string(nil), terms...)
	sort.Strings(sorted)
	v := &Vocabulary{terms: sorted, index: make(map[string]int, len(sorted))}
	for j, t := range sorted {
		v.index[t] = j
	}
	return v
}

// Len returns the number of terms.
func (v *Vocabulary) Len() int {
	return len(v.terms)
}

// Term returns the term at column j.
func (v *Vocabulary) Term(j int) string {
	return v.terms[j]
}

// Index returns the column of term.
func (v *Vocabulary) Index(term string) (int, bool) {
	j, ok := v.index[term]
	return j, ok
}

// Terms returns a copy of all terms in column order.
func (v *Vocabulary) Terms() []string {
	return append([]string(nil), v.terms...)
}

// Snapshot is a built, frozen vector space: vocabulary, idf weights and one
// row per indexed document. No method mutates it.
type Snapshot struct {
	cfg   Config
	vocab *Vocabulary
	idf   []float64
	rows  []Vector
	stats BuildStats
}

// Config returns the configuration the snapshot was built with.
func (s *Snapshot) Config() Config {
	return s.cfg
}

// Vocabulary returns the frozen vocabulary.
func (s *Snapshot) Vocabulary() *Vocabulary {
	return s.vocab
}

// Dim returns the dimensionality of every row.
func (s *Snapshot) Dim() int {
	return s.vocab.Len()
}

// Rows returns the number of document rows.
func (s *Snapshot) Rows() int {
	return len(s.rows)
}

// Row returns document row i. The returned vector shares storage with the
// snapshot and must not be modified.
func (s *Snapshot) Row(i int) Vector {
	return s.rows[i]
}

// IDF returns the idf weight of term, or 0 if the term is not in the
// vocabulary.
func (s *Snapshot) IDF(term string) float64 {
	if j, ok := s.vocab.index[term]; ok {
		return s.idf[j]
	}
	return 0
}

// Stats returns the build summary.
func (s *Snapshot) Stats() BuildStats {
	return s.stats
}

// Project maps a new document into the frozen space using the same analysis
// as Build. Terms outside the vocabulary weigh zero; the result is L2
// normalized and may be empty.
func (s *Snapshot) Project(doc string) Vector {
	counts := make(map[string]int)
	for _, term := range s.cfg.analyzer().terms(doc) {
		counts[term]++
	}
	return weigh(counts, s.vocab, s.idf)
}

// TopTerms returns up to n terms of row i by descending weight, ties in
// column order.
func (s *Snapshot) TopTerms(i, n int) []string {
	row := s.rows[i]
	order := make([]int, row.Len())
	for k := range order {
		order[k] = k
	}
	sort.SliceStable(order, func(a, b int) bool {
		return row.Values[order[a]] > row.Values[order[b]]
	})
	if n > len(order) {
		n = len(order)
	}
	out := make([]string, n)
	for k := 0; k < n; k++ {
		out[k] = s.vocab.terms[row.Indices[order[k]]]
	}
	return out
}
