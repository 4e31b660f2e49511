// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

package sample

import (
	"slices"

	"github.com/tomtom215/filmscout/internal/catalog"
)

// GenreCount is one genre and the number of films carrying it.
type GenreCount struct {
	Genre string `json:"genre" yaml:"genre"`
	Count int    `json:"count" yaml:"count"`
}

// Summary describes a generated dataset.
type Summary struct {
	Films      int          `json:"films" yaml:"films"`
	MeanRating float64      `json:"mean_rating" yaml:"mean_rating"`
	MinRating  float64      `json:"min_rating" yaml:"min_rating"`
	MaxRating  float64      `json:"max_rating" yaml:"max_rating"`
	FirstYear  int          `json:"first_year" yaml:"first_year"`
	LastYear   int          `json:"last_year" yaml:"last_year"`
	TopGenres  []GenreCount `json:"top_genres" yaml:"top_genres"`
}

// topGenreCount is how many genres Summarize reports.
const topGenreCount = 5

// Summarize computes rating, year and genre statistics of t. Genres with
// equal counts keep the order they first appear in.
func Summarize(t *catalog.Table) Summary {
	s := Summary{Films: len(t.Rows)}

	counts := map[string]int{}
	var order []string
	var ratingSum float64
	rated := 0

	for _, row := range t.Rows {
		if r := catalog.ParseRating(row.Get("omdb_imdb_rating")); r > 0 {
			if rated == 0 || r < s.MinRating {
				s.MinRating = r
			}
			if r > s.MaxRating {
				s.MaxRating = r
			}
			ratingSum += r
			rated++
		}
		if y := catalog.ParseYear(row.Get("omdb_year")); y > 0 {
			if s.FirstYear == 0 || y < s.FirstYear {
				s.FirstYear = y
			}
			if y > s.LastYear {
				s.LastYear = y
			}
		}
		for _, g := range catalog.SplitList(row.Get("omdb_genre")) {
			if counts[g] == 0 {
				order = append(order, g)
			}
			counts[g]++
		}
	}
	if rated > 0 {
		s.MeanRating = ratingSum / float64(rated)
	}

	top := make([]GenreCount, 0, len(order))
	for _, g := range order {
		top = append(top, GenreCount{Genre: g, Count: counts[g]})
	}
	slices.SortStableFunc(top, func(a, b GenreCount) int {
		return b.Count - a.Count
	})
	if len(top) > topGenreCount {
		top = top[:topGenreCount]
	}
	s.TopGenres = top
	return s
}
