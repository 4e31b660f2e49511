// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

package interactive

import (
	"fmt"
	"io"

	"github.com/tomtom215/filmscout/internal/catalog"
	"github.com/tomtom215/filmscout/internal/recommend"
)

// summaryGenres is the number of genres listed in the summary.
const summaryGenres = 3

// Pick is a film added to the profile. Round 0 marks a seed pick.
type Pick struct {
	Item  catalog.Item `json:"item"`
	Round int          `json:"round"`
}

// DirectorCount is a director with the number of their films picked.
type DirectorCount struct {
	Director string `json:"director"`
	Count    int    `json:"count"`
}

// Summary describes a finished session.
type Summary struct {
	Picks           []Pick                 `json:"picks"`
	Rounds          int                    `json:"rounds"`
	RatedPicks      int                    `json:"rated_picks"`
	AvgRating       float64                `json:"avg_rating,omitempty"`
	TopGenres       []recommend.GenreCount `json:"top_genres"`
	RepeatDirectors []DirectorCount        `json:"repeat_directors"`
}

// Summarize aggregates the picks of a session.
func Summarize(picks []Pick, rounds int) *Summary {
	sum := &Summary{
		Picks:           append([]Pick(nil), picks...),
		Rounds:          rounds,
		RepeatDirectors: []DirectorCount{},
	}

	items := make([]catalog.Item, len(picks))
	var ratingSum float64
	directors := make(map[string]int)
	var order []string
	for i, p := range picks {
		items[i] = p.Item
		if p.Item.Rating > 0 {
			ratingSum += p.Item.Rating
			sum.RatedPicks++
		}
		if d := p.Item.Director; d != "" {
			if directors[d] == 0 {
				order = append(order, d)
			}
			directors[d]++
		}
	}
	if sum.RatedPicks > 0 {
		sum.AvgRating = ratingSum / float64(sum.RatedPicks)
	}
	sum.TopGenres = recommend.TopGenres(items, summaryGenres)

	for _, d := range order {
		if directors[d] > 1 {
			sum.RepeatDirectors = append(sum.RepeatDirectors, DirectorCount{Director: d, Count: directors[d]})
		}
	}
	return sum
}

// Verdict describes the average rating of the picks, or "" when too low
// or unknown.
func (s *Summary) Verdict() string {
	switch {
	case s.RatedPicks == 0:
		return ""
	case s.AvgRating >= 8.0:
		return "Excellent taste: you favour highly rated films."
	case s.AvgRating >= 7.0:
		return "Good picks: you enjoy well made films."
	case s.AvgRating >= 6.0:
		return "Balanced choices."
	default:
		return ""
	}
}

// Render writes the human readable summary.
func (s *Summary) Render(w io.Writer) {
	p := func(format string, args ...any) { _, _ = fmt.Fprintf(w, format, args...) }

	p("Session summary\n")
	p("Films picked: %d\n", len(s.Picks))
	p("Recommendation rounds: %d\n", s.Rounds)

	if len(s.Picks) > 0 {
		p("\nYour films:\n")
		for i, pick := range s.Picks {
			phase := "seed"
			if pick.Round > 0 {
				phase = fmt.Sprintf("round %d", pick.Round)
			}
			p("  %d. %s (%s)%s\n", i+1, pick.Item.Title, phase, ratingSuffix(pick.Item.Rating))
		}
	}

	if s.RatedPicks > 0 {
		p("\nAverage IMDb rating: %.1f/10\n", s.AvgRating)
		if v := s.Verdict(); v != "" {
			p("%s\n", v)
		}
	}

	if len(s.TopGenres) > 0 {
		p("\nFavourite genres:\n")
		for _, g := range s.TopGenres {
			p("  - %s: %d films\n", g.Genre, g.Count)
		}
	}

	if len(s.RepeatDirectors) > 0 {
		p("\nDirectors you picked more than once:\n")
		for _, d := range s.RepeatDirectors {
			p("  - %s: %d films\n", d.Director, d.Count)
		}
	}

	p("\nThanks for using Filmscout!\n")
}
