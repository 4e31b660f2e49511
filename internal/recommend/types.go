// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

package recommend

import (
	"time"

	"github.com/tomtom215/filmscout/internal/catalog"
)

// Profile is the aggregated taste vector for one request. It is built per
// request and never stored.
type Profile struct {
	// WatchedIDs are the resolved ids in request order, duplicates removed.
	WatchedIDs []int `json:"watched_ids"`

	// SkippedIDs are requested ids that are not in the corpus.
	SkippedIDs []int `json:"skipped_ids,omitempty"`

	// Weights holds one weight per WatchedIDs entry. They sum to 1.
	Weights []float64 `json:"weights"`

	// Vector is the dense weighted centroid, one entry per vocabulary term.
	Vector []float64 `json:"-"`
}

// Recommendation is one ranked catalog item.
type Recommendation struct {
	Item  catalog.Item `json:"item"`
	Score float64      `json:"score"`
}

// Request describes a recommendation call.
type Request struct {
	// WatchedIDs seed the profile. At least one is required.
	WatchedIDs []int `json:"watched_ids"`

	// K is the number of results. Zero selects the configured default.
	K int `json:"k"`

	// ExcludeIDs are dropped from the results in addition to WatchedIDs,
	// for example items already shown in an earlier round.
	ExcludeIDs []int `json:"exclude_ids,omitempty"`

	// Filter is an optional boolean expression over item fields, see the
	// filter package.
	Filter string `json:"filter,omitempty"`

	// RequestID is carried into events and the response.
	RequestID string `json:"request_id,omitempty"`
}

// Response is the result of RecommendRequest.
type Response struct {
	Items    []Recommendation `json:"items"`
	Profile  Profile          `json:"profile"`
	Metadata ResponseMetadata `json:"metadata"`
}

// ResponseMetadata describes how a response was produced.
type ResponseMetadata struct {
	RequestID  string    `json:"request_id,omitempty"`
	K          int       `json:"k"`
	Candidates int       `json:"candidates"`
	Filtered   int       `json:"filtered"`
	LatencyMS  int64     `json:"latency_ms"`
	BuiltAt    time.Time `json:"built_at"`
	Generation int64     `json:"generation"`
	Timestamp  time.Time `json:"timestamp"`
}

// SearchResult is the summary returned by Search.
type SearchResult struct {
	ID       int     `json:"id"`
	Title    string  `json:"title"`
	Genres   string  `json:"genres"`
	Director string  `json:"director"`
	Rating   float64 `json:"rating,omitempty"`
	Year     int     `json:"year,omitempty"`
}

// ItemDetail is an item together with its strongest index terms.
type ItemDetail struct {
	Item     catalog.Item `json:"item"`
	TopTerms []string     `json:"top_terms"`
}

// GenreCount is one entry of the genre histogram.
type GenreCount struct {
	Genre string `json:"genre"`
	Count int    `json:"count"`
}

// EnrichmentStats summarizes the enrichment fields of a corpus.
type EnrichmentStats struct {
	EnrichedItems  int     `json:"enriched_items"`
	EnrichmentRate float64 `json:"enrichment_rate"`
	RatedItems     int     `json:"rated_items"`
	AvgRating      float64 `json:"avg_rating,omitempty"`
	MinRating      float64 `json:"min_rating,omitempty"`
	MaxRating      float64 `json:"max_rating,omitempty"`
	YearMin        int     `json:"year_min,omitempty"`
	YearMax        int     `json:"year_max,omitempty"`
}

// Stats is the corpus report.
type Stats struct {
	TotalItems        int              `json:"total_items"`
	UniqueDirectors   int              `json:"unique_directors"`
	FeatureDimensions int              `json:"feature_dimensions"`
	TopGenres         []GenreCount     `json:"top_genres"`
	Enrichment        *EnrichmentStats `json:"enrichment,omitempty"`
	BuiltAt           time.Time        `json:"built_at"`
	Generation        int64            `json:"generation"`
}

// Metrics are the engine's running counters.
type Metrics struct {
	Builds          int64 `json:"builds"`
	Recommendations int64 `json:"recommendations"`
	Searches        int64 `json:"searches"`
	Errors          int64 `json:"errors"`
	SkippedWatched  int64 `json:"skipped_watched"`
}
