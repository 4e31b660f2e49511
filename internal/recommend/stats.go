// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

package recommend

import (
	"sort"

	"github.com/tomtom215/filmscout/internal/catalog"
)

// topGenreCount is the length of the genre histogram in Stats.
const topGenreCount = 5

// ComputeStats builds the corpus report. dims is the vocabulary size.
func ComputeStats(corpus *catalog.Corpus, dims int) *Stats {
	st := &Stats{
		TotalItems:        corpus.Len(),
		FeatureDimensions: dims,
		TopGenres:         []GenreCount{},
	}

	directors := make(map[string]struct{})
	genres := make(map[string]int)
	var (
		anyEnrichment bool
		enr           EnrichmentStats
		ratingSum     float64
	)

	for i := 0; i < corpus.Len(); i++ {
		it := corpus.At(i)
		if it.Director != "" {
			directors[it.Director] = struct{}{}
		}
		for _, g := range it.GenreList() {
			genres[g]++
		}

		if !it.HasEnrichment() {
			continue
		}
		anyEnrichment = true
		if it.Enriched {
			enr.EnrichedItems++
		}
		if it.Rating > 0 {
			if enr.RatedItems == 0 || it.Rating < enr.MinRating {
				enr.MinRating = it.Rating
			}
			if it.Rating > enr.MaxRating {
				enr.MaxRating = it.Rating
			}
			ratingSum += it.Rating
			enr.RatedItems++
		}
		if it.Year > 0 {
			if enr.YearMin == 0 || it.Year < enr.YearMin {
				enr.YearMin = it.Year
			}
			if it.Year > enr.YearMax {
				enr.YearMax = it.Year
			}
		}
	}

	st.UniqueDirectors = len(directors)
	st.TopGenres = topGenres(genres, topGenreCount)

	if anyEnrichment {
		if enr.RatedItems > 0 {
			enr.AvgRating = ratingSum / float64(enr.RatedItems)
		}
		if st.TotalItems > 0 {
			enr.EnrichmentRate = float64(enr.EnrichedItems) / float64(st.TotalItems)
		}
		st.Enrichment = &enr
	}
	return st
}

func topGenres(counts map[string]int, n int) []GenreCount {
	out := make([]GenreCount, 0, len(counts))
	for g, c := range counts {
		out = append(out, GenreCount{Genre: g, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Genre < out[j].Genre
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// TopGenres counts the individual genres of items and returns the n most
// frequent, count descending then name ascending.
func TopGenres(items []catalog.Item, n int) []GenreCount {
	counts := make(map[string]int)
	for i := range items {
		for _, g := range items[i].GenreList() {
			counts[g]++
		}
	}
	return topGenres(counts, n)
}
