// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

package catalog

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Canonical column names of the plain layout.
const (
	ColID       = "movie_id"
	ColTitle    = "title"
	ColGenres   = "genres"
	ColDirector = "director"
	ColActors   = "actors"
	ColPlot     = "plot_summary"
)

// missingValue is what OMDb returns for an absent field.
const missingValue = "N/A"

// Field aliases, highest priority first. The first non-missing value wins
// for each row.
var (
	genreAliases     = []string{"omdb_genre", "genres", "genre"}
	directorAliases  = []string{"omdb_director", "director"}
	actorAliases     = []string{"omdb_actors", "actors", "cast"}
	plotAliases      = []string{"omdb_plot", "plot_summary", "plot", "overview"}
	languageAliases  = []string{"omdb_language", "language"}
	countryAliases   = []string{"omdb_country", "country"}
	awardsAliases    = []string{"omdb_awards", "awards"}
	ratingAliases    = []string{"omdb_imdb_rating", "imdb_rating", "rating"}
	metascoreAliases = []string{"omdb_metascore", "metascore"}
	runtimeAliases   = []string{"omdb_runtime", "runtime"}
	yearAliases      = []string{"omdb_year", "year", "release_date"}
	idAliases        = []string{ColID, "id"}
	imdbIDAliases    = []string{"omdb_imdb_id", "imdb_id"}
	enrichedAliases  = []string{"omdb_enriched"}
)

// requiredColumns lists the column groups every catalog header needs. Any
// alias in a group satisfies it.
var requiredColumns = [][]string{idAliases, {ColTitle}}

var (
	firstIntPattern  = regexp.MustCompile(`\d+`)
	firstYearPattern = regexp.MustCompile(`\d{4}`)
)

// Record is one raw catalog row keyed by column name.
type Record map[string]string

// Get returns the cleaned value of column, or "" when absent or "N/A".
func (r Record) Get(column string) string {
	return clean(r[column])
}

// First returns the first non-missing value among the given columns.
func (r Record) First(columns ...string) string {
	for _, c := range columns {
		if v := r.Get(c); v != "" {
			return v
		}
	}
	return ""
}

func clean(v string) string {
	v = strings.TrimSpace(v)
	if v == missingValue {
		return ""
	}
	return v
}

// ItemFromRecord normalizes one raw row into an Item. row is 1-based and only
// used for error reporting.
func ItemFromRecord(rec Record, row int) (Item, error) {
	rawID := rec.First(idAliases...)
	if rawID == "" {
		return Item{}, &ConfigError{Field: ColID, Row: row, Reason: "missing value"}
	}
	id, err := parseID(rawID)
	if err != nil {
		return Item{}, &ConfigError{Field: ColID, Row: row, Reason: "not an integer", Err: err}
	}

	return Item{
		ID:        id,
		Title:     rec.Get(ColTitle),
		Genres:    rec.First(genreAliases...),
		Director:  rec.First(directorAliases...),
		Actors:    rec.First(actorAliases...),
		Plot:      rec.First(plotAliases...),
		Language:  rec.First(languageAliases...),
		Country:   rec.First(countryAliases...),
		Awards:    rec.First(awardsAliases...),
		Rating:    ParseRating(rec.First(ratingAliases...)),
		Metascore: ParseInt(rec.First(metascoreAliases...)),
		Runtime:   ParseRuntime(rec.First(runtimeAliases...)),
		Year:      ParseYear(rec.First(yearAliases...)),
		IMDbID:    rec.First(imdbIDAliases...),
		Enriched:  ParseBool(rec.First(enrichedAliases...)),
	}, nil
}

// RecordFromItem renders an item in the plain column layout plus the
// enrichment columns it carries.
//
//nolint:gocritic // hugeParam: Item is passed by value to keep it immutable
func RecordFromItem(it Item) Record {
	rec := Record{
		ColID:       strconv.Itoa(it.ID),
		ColTitle:    it.Title,
		ColGenres:   it.Genres,
		ColDirector: it.Director,
		ColActors:   it.Actors,
		ColPlot:     it.Plot,
	}
	if it.Rating > 0 {
		rec["omdb_imdb_rating"] = strconv.FormatFloat(it.Rating, 'f', -1, 64)
	}
	if it.Runtime > 0 {
		rec["omdb_runtime"] = strconv.Itoa(it.Runtime) + " min"
	}
	if it.Year > 0 {
		rec["omdb_year"] = strconv.Itoa(it.Year)
	}
	if it.Metascore > 0 {
		rec["omdb_metascore"] = strconv.Itoa(it.Metascore)
	}
	rec["omdb_awards"] = it.Awards
	rec["omdb_language"] = it.Language
	rec["omdb_country"] = it.Country
	rec["omdb_imdb_id"] = it.IMDbID
	rec["omdb_enriched"] = FormatBool(it.Enriched)
	return rec
}

func parseID(s string) (int, error) {
	if id, err := strconv.Atoi(s); err == nil {
		return id, nil
	}
	// Exports sometimes write integer ids as floats ("12.0").
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if f < math.MinInt32 || f > math.MaxInt32 || f != math.Trunc(f) {
		return 0, fmt.Errorf("id %q is not an integer in range", s)
	}
	return int(f), nil
}

// ParseRating parses an IMDb style rating ("8.7", "1,234.5"). Unparseable or
// missing values yield 0.
func ParseRating(s string) float64 {
	s = strings.ReplaceAll(clean(s), ",", "")
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 {
		return 0
	}
	return f
}

// ParseInt returns the integer value of s, or 0.
func ParseInt(s string) int {
	n, err := strconv.Atoi(strings.ReplaceAll(clean(s), ",", ""))
	if err != nil {
		return 0
	}
	return n
}

// ParseRuntime extracts the first integer from strings like "142 min".
func ParseRuntime(s string) int {
	m := firstIntPattern.FindString(clean(s))
	if m == "" {
		return 0
	}
	n, _ := strconv.Atoi(m)
	return n
}

// ParseYear extracts the first four digit run, so "2019–2020" and
// "2008-07-18" both parse.
func ParseYear(s string) int {
	m := firstYearPattern.FindString(clean(s))
	if m == "" {
		return 0
	}
	n, _ := strconv.Atoi(m)
	return n
}

// ParseBool accepts the spellings written by the enrichment pipeline.
func ParseBool(s string) bool {
	switch strings.ToLower(clean(s)) {
	case "true", "1", "yes", "y":
		return true
	}
	return false
}

// FormatBool writes the canonical "True"/"False" spelling.
func FormatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
