// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

package features

import (
	"errors"
	"fmt"
	"unicode"
)

// Threshold maps a numeric field to a categorical token. A value v emits
// Token when v >= Min. Values of zero are unknown and never bucketed.
type Threshold struct {
	Min   float64 `json:"min"`
	Token string  `json:"token"`
}

// Buckets holds the ordered thresholds for each numeric field. Each list is
// scanned top to bottom and the first match wins, so Min must strictly
// decrease.
type Buckets struct {
	Rating  []Threshold `json:"rating"`
	Runtime []Threshold `json:"runtime"`
	Decade  []Threshold `json:"decade"`
}

// WeightTable controls how many times each field is repeated in the
// synthesized document. Repetition raises a field's term frequency and with
// it the field's share of the TF-IDF vector.
type WeightTable struct {
	// Genres is the repeat count for the genre list.
	Genres int `json:"genres"`

	// Director is the repeat count for the director.
	Director int `json:"director"`

	// Actors is the repeat count for the cast list.
	Actors int `json:"actors"`

	// Plot is the repeat count for the plot text.
	Plot int `json:"plot"`

	// Language is the repeat count for the spoken languages.
	Language int `json:"language"`

	// Country is the repeat count for the production countries.
	Country int `json:"country"`

	// Awards is the repeat count for award text without a major award.
	Awards int `json:"awards"`

	// MajorAwards is the repeat count for award text that mentions any of
	// MajorAwardMarkers.
	MajorAwards int `json:"major_awards"`

	// MajorAwardMarkers are case-sensitive substrings that mark a major award.
	MajorAwardMarkers []string `json:"major_award_markers"`

	// Buckets maps rating, runtime and release year to categorical tokens.
	Buckets Buckets `json:"buckets"`
}

// DefaultWeights returns the stock weighting.
func DefaultWeights() WeightTable {
	return WeightTable{
		Genres:            2,
		Director:          2,
		Actors:            1,
		Plot:              1,
		Language:          1,
		Country:           1,
		Awards:            1,
		MajorAwards:       2,
		MajorAwardMarkers: []string{"Oscar", "Emmy", "Golden Globe"},
		Buckets: Buckets{
			Rating: []Threshold{
				{Min: 8.0, Token: "excellent_rating"},
				{Min: 7.0, Token: "good_rating"},
				{Min: 6.0, Token: "average_rating"},
			},
			Runtime: []Threshold{
				{Min: 150, Token: "long_movie"},
				{Min: 90, Token: "standard_movie"},
				{Min: 1, Token: "short_movie"},
			},
			Decade: []Threshold{
				{Min: 2020, Token: "decade_2020s"},
				{Min: 2010, Token: "decade_2010s"},
				{Min: 2000, Token: "decade_2000s"},
				{Min: 1990, Token: "decade_1990s"},
				{Min: 1980, Token: "decade_1980s"},
				{Min: 1, Token: "classic_era"},
			},
		},
	}
}

// Validate checks repeat counts and bucket ordering.
//
//nolint:gocritic // hugeParam: value receiver keeps WeightTable immutable
func (w WeightTable) Validate() error {
	counts := []struct {
		name string
		v    int
	}{
		{"genres", w.Genres},
		{"director", w.Director},
		{"actors", w.Actors},
		{"plot", w.Plot},
		{"language", w.Language},
		{"country", w.Country},
		{"awards", w.Awards},
		{"major_awards", w.MajorAwards},
	}
	for _, c := range counts {
		if c.v < 0 {
			return fmt.Errorf("weights.%s must be non-negative, got %d", c.name, c.v)
		}
	}
	for _, m := range w.MajorAwardMarkers {
		if m == "" {
			return errors.New("weights.major_award_markers must not contain empty strings")
		}
	}

	if err := validateThresholds("rating", w.Buckets.Rating); err != nil {
		return err
	}
	if err := validateThresholds("runtime", w.Buckets.Runtime); err != nil {
		return err
	}
	return validateThresholds("decade", w.Buckets.Decade)
}

func validateThresholds(name string, ts []Threshold) error {
	for i, t := range ts {
		if t.Min <= 0 {
			return fmt.Errorf("weights.buckets.%s[%d].min must be positive, got %v", name, i, t.Min)
		}
		if !isTokenWord(t.Token) {
			return fmt.Errorf("weights.buckets.%s[%d].token %q must be a single word of letters, digits or '_' (length >= 2)",
				name, i, t.Token)
		}
		if i > 0 && t.Min >= ts[i-1].Min {
			return fmt.Errorf("weights.buckets.%s thresholds must strictly decrease (%v after %v)",
				name, t.Min, ts[i-1].Min)
		}
	}
	return nil
}

// isTokenWord reports whether s survives the indexer's tokenizer unchanged.
func isTokenWord(s string) bool {
	n := 0
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
		n++
	}
	return n >= 2
}

// Clone returns a deep copy.
//
//nolint:gocritic // hugeParam: value receiver keeps WeightTable immutable
func (w WeightTable) Clone() WeightTable {
	c := w
	c.MajorAwardMarkers = append([]string(nil), w.MajorAwardMarkers...)
	c.Buckets.Rating = append([]Threshold(nil), w.Buckets.Rating...)
	c.Buckets.Runtime = append([]Threshold(nil), w.Buckets.Runtime...)
	c.Buckets.Decade = append([]Threshold(nil), w.Buckets.Decade...)
	return c
}
