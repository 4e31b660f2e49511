// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

// Package features turns catalog records into weighted text documents for the
// vector space indexer.
package features

import (
	"strings"

	"github.com/tomtom215/filmscout/internal/catalog"
)

// Synthesizer builds token documents from catalog items. It holds only its
// weight table and is safe for concurrent use.
type Synthesizer struct {
	weights WeightTable
}

// NewSynthesizer returns a synthesizer for the given weights. The table is
// copied, so later changes by the caller have no effect.
//
//nolint:gocritic // hugeParam: WeightTable copied once at construction
func NewSynthesizer(weights WeightTable) *Synthesizer {
	return &Synthesizer{weights: weights.Clone()}
}

// Weights returns a copy of the table in use.
func (s *Synthesizer) Weights() WeightTable {
	return s.weights.Clone()
}

// Synthesize returns the document for one item. Field order is fixed: genres,
// director, actors, plot, language, country, awards, then the rating,
// runtime and decade tokens. Empty fields contribute nothing.
//
//nolint:gocritic // hugeParam: Item is passed by value to keep it immutable
func (s *Synthesizer) Synthesize(it catalog.Item) string {
	w := &s.weights
	parts := make([]string, 0, 16)

	parts = repeat(parts, strings.ReplaceAll(it.Genres, ",", " "), w.Genres)
	parts = repeat(parts, it.Director, w.Director)
	parts = repeat(parts, it.Actors, w.Actors)
	parts = repeat(parts, it.Plot, w.Plot)
	parts = repeat(parts, it.Language, w.Language)
	parts = repeat(parts, it.Country, w.Country)

	if s.isMajorAward(it.Awards) {
		parts = repeat(parts, it.Awards, w.MajorAwards)
	} else {
		parts = repeat(parts, it.Awards, w.Awards)
	}

	if tok := bucket(w.Buckets.Rating, it.Rating); tok != "" {
		parts = append(parts, tok)
	}
	if tok := bucket(w.Buckets.Runtime, float64(it.Runtime)); tok != "" {
		parts = append(parts, tok)
	}
	if tok := bucket(w.Buckets.Decade, float64(it.Year)); tok != "" {
		parts = append(parts, tok)
	}

	return strings.Join(parts, " ")
}

// SynthesizeAll returns one document per item, in input order.
func (s *Synthesizer) SynthesizeAll(items []catalog.Item) []string {
	docs := make([]string, len(items))
	for i := range items {
		docs[i] = s.Synthesize(items[i])
	}
	return docs
}

func (s *Synthesizer) isMajorAward(awards string) bool {
	for _, m := range s.weights.MajorAwardMarkers {
		if strings.Contains(awards, m) {
			return true
		}
	}
	return false
}

func repeat(parts []string, value string, times int) []string {
	value = strings.TrimSpace(value)
	if value == "" {
		return parts
	}
	for i := 0; i < times; i++ {
		parts = append(parts, value)
	}
	return parts
}

// bucket returns the token of the first threshold v reaches, or "" for
// unknown (zero or negative) values.
func bucket(ts []Threshold, v float64) string {
	if v <= 0 {
		return ""
	}
	for _, t := range ts {
		if v >= t.Min {
			return t.Token
		}
	}
	return ""
}
