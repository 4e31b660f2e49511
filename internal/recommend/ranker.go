// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

package recommend

import (
	"sort"

	"github.com/tomtom215/filmscout/internal/catalog"
	"github.com/tomtom215/filmscout/internal/recommend/vectorspace"
)

// CosineSimilarity returns the cosine of the angle between a dense profile
// and a sparse row. It is 0 when either vector has zero length and never
// exceeds 1.
func CosineSimilarity(profile []float64, row vectorspace.Vector) float64 {
	pn := vectorspace.DenseNorm(profile)
	rn := row.Norm()
	if pn == 0 || rn == 0 {
		return 0
	}
	s := row.Dot(profile) / (pn * rn)
	switch {
	case s > 1:
		return 1
	case s < 0:
		return 0
	}
	return s
}

// Predicate decides whether a ranked candidate may be returned.
type Predicate func(Recommendation) (bool, error)

// RankResult carries ranked items plus counters for response metadata.
type RankResult struct {
	Items      []Recommendation
	Candidates int
	Filtered   int
}

// Rank scores every row against the profile, orders by score with ties in
// corpus order, drops excluded ids and non-positive scores, applies keep if
// set, and returns at most k items.
func Rank(corpus *catalog.Corpus, snap *vectorspace.Snapshot, profile []float64,
	exclude map[int]struct{}, k int, keep Predicate,
) (RankResult, error) {
	if k <= 0 {
		return RankResult{}, invalidArgument("k must be positive, got %d", k)
	}

	n := snap.Rows()
	scores := make([]float64, n)
	order := make([]int, n)
	for i := 0; i < n; i++ {
		scores[i] = CosineSimilarity(profile, snap.Row(i))
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	res := RankResult{Items: make([]Recommendation, 0, k)}
	for _, i := range order {
		if scores[i] <= 0 {
			// Sorted descending, so nothing positive follows.
			break
		}
		it := corpus.At(i)
		if _, skip := exclude[it.ID]; skip {
			continue
		}
		res.Candidates++

		rec := Recommendation{Item: it, Score: scores[i]}
		if keep != nil {
			ok, err := keep(rec)
			if err != nil {
				return RankResult{}, err
			}
			if !ok {
				res.Filtered++
				continue
			}
		}
		res.Items = append(res.Items, rec)
		if len(res.Items) == k {
			break
		}
	}
	return res, nil
}
