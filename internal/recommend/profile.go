// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

package recommend

import (
	"github.com/tomtom215/filmscout/internal/catalog"
	"github.com/tomtom215/filmscout/internal/recommend/vectorspace"
)

// BuildProfile aggregates the rows of the watched items into a weighted
// centroid. Ids missing from the corpus are skipped and listed in
// Profile.SkippedIDs; the call fails only when no id resolves.
//
// Each resolved item weighs max(minWeight, rating/10) when it has a rating
// and 1 otherwise. Weights are normalized to sum to 1.
func BuildProfile(corpus *catalog.Corpus, snap *vectorspace.Snapshot, watchedIDs []int, minWeight float64) (Profile, error) {
	if len(watchedIDs) == 0 {
		return Profile{}, &EmptyInputError{Input: "watched_ids"}
	}

	p := Profile{}
	rows := make([]int, 0, len(watchedIDs))
	seen := make(map[int]struct{}, len(watchedIDs))
	for _, id := range watchedIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		idx, ok := corpus.IndexOf(id)
		if !ok {
			p.SkippedIDs = append(p.SkippedIDs, id)
			continue
		}
		p.WatchedIDs = append(p.WatchedIDs, id)
		rows = append(rows, idx)
		p.Weights = append(p.Weights, itemWeight(corpus.At(idx).Rating, minWeight))
	}

	if len(rows) == 0 {
		return p, &NotFoundError{IDs: p.SkippedIDs}
	}

	var total float64
	for _, w := range p.Weights {
		total += w
	}
	for i := range p.Weights {
		p.Weights[i] /= total
	}

	p.Vector = make([]float64, snap.Dim())
	for i, idx := range rows {
		snap.Row(idx).AddScaled(p.Vector, p.Weights[i])
	}
	return p, nil
}

func itemWeight(rating, minWeight float64) float64 {
	if rating <= 0 {
		return 1.0
	}
	return max(minWeight, rating/10.0)
}
