// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

package sample

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/tomtom215/filmscout/internal/catalog"
	"github.com/tomtom215/filmscout/internal/enrich"
)

// Sizes are the dataset sizes offered by the CLI.
var Sizes = []int{25, 50, 75, 100}

// baseColumns precede the enrichment columns in generated tables.
var baseColumns = []string{catalog.ColID, catalog.ColTitle, "release_date", "original_title"}

// Available returns how many reference films exist.
func Available() int {
	return len(detailed) + len(compact)
}

// Generate returns up to n reference films as an enriched catalog table.
// Fewer rows are returned when n exceeds Available.
func Generate(n int) (*catalog.Table, error) {
	if n <= 0 {
		return nil, fmt.Errorf("sample size must be positive, got %d", n)
	}

	t := &catalog.Table{Header: append(slices.Clone(baseColumns), enrich.Columns...)}
	for i, d := range detailed {
		if len(t.Rows) >= n {
			return t, nil
		}
		t.Rows = append(t.Rows, detailedRecord(i, d))
	}
	for i, f := range compact {
		if len(t.Rows) >= n {
			break
		}
		t.Rows = append(t.Rows, f.record(len(detailed)+i+1, i))
	}
	return t, nil
}

func detailedRecord(i int, d map[string]string) catalog.Record {
	rec := catalog.Record{
		catalog.ColID:         strconv.Itoa(i + 1),
		"original_title":      d["title"],
		"omdb_title":          d["title"],
		"omdb_year":           d["release_date"],
		"omdb_type":           "movie",
		"omdb_dvd":            "N/A",
		"omdb_production":     "N/A",
		"omdb_website":        "N/A",
		enrich.EnrichedColumn: catalog.FormatBool(true),
	}
	for k, v := range d {
		rec[k] = v
	}
	return rec
}

// record derives the full OMDb row of a compact entry. i is the entry's
// position in the compact list and drives the synthetic fields.
func (f film) record(id, i int) catalog.Record {
	rating, _ := strconv.ParseFloat(f.rating, 64)
	acclaimed := rating > 8.0

	rated := "PG-13"
	awards := "1 nomination"
	if acclaimed {
		rated = "R"
		awards = fmt.Sprintf("Won %d awards", 1+i%3)
	}

	return catalog.Record{
		catalog.ColID:         strconv.Itoa(id),
		catalog.ColTitle:      f.title,
		"release_date":        f.year,
		"original_title":      f.title,
		"omdb_title":          f.title,
		"omdb_year":           f.year,
		"omdb_rated":          rated,
		"omdb_released":       "01 Jan " + f.year,
		"omdb_runtime":        fmt.Sprintf("%d min", 90+i%60),
		"omdb_genre":          f.genre,
		"omdb_director":       f.director,
		"omdb_writer":         f.director,
		"omdb_actors":         f.actors,
		"omdb_plot":           fmt.Sprintf("A compelling story from %s that showcases %s elements.", f.year, strings.ToLower(f.genre)),
		"omdb_language":       "English",
		"omdb_country":        "United States",
		"omdb_awards":         awards,
		"omdb_poster":         "N/A",
		"omdb_metascore":      strconv.Itoa(int(math.Round(rating * 10))),
		"omdb_imdb_rating":    f.rating,
		"omdb_imdb_votes":     humanize.Comma(int64(100000 + i*50000)),
		"omdb_imdb_id":        fmt.Sprintf("tt%07d", 1000000+i),
		"omdb_type":           "movie",
		"omdb_dvd":            "N/A",
		"omdb_box_office":     "$" + humanize.Comma(int64(i+1)*10000000),
		"omdb_production":     "N/A",
		"omdb_website":        "N/A",
		enrich.EnrichedColumn: catalog.FormatBool(true),
	}
}
