// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

package recommend

import (
	"sort"
	"strings"

	"github.com/tomtom215/filmscout/internal/catalog"
)

// SearchTitles returns items whose title contains query, case-insensitively.
// Rated items come first by descending rating; equal ratings and unrated
// items keep corpus order. At most limit results are returned.
func SearchTitles(corpus *catalog.Corpus, query string, limit int) ([]SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, &EmptyInputError{Input: "query"}
	}
	if limit <= 0 {
		return nil, invalidArgument("limit must be positive, got %d", limit)
	}

	needle := strings.ToLower(query)
	matches := make([]catalog.Item, 0)
	for i := 0; i < corpus.Len(); i++ {
		it := corpus.At(i)
		if strings.Contains(strings.ToLower(it.Title), needle) {
			matches = append(matches, it)
		}
	}

	sort.SliceStable(matches, func(a, b int) bool {
		return matches[a].Rating > matches[b].Rating
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]SearchResult, len(matches))
	for i, it := range matches {
		out[i] = SearchResult{
			ID:       it.ID,
			Title:    it.Title,
			Genres:   it.Genres,
			Director: it.Director,
			Rating:   it.Rating,
			Year:     it.Year,
		}
	}
	return out, nil
}
