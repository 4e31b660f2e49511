// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

package catalog

import (
	"strings"

	"github.com/goccy/go-json"
)

// maxTMDBActors is how many billed cast members are kept per film.
const maxTMDBActors = 5

// TMDBSummary describes a finished TMDB conversion.
type TMDBSummary struct {
	Movies          int `json:"movies"`
	UniqueGenres    int `json:"unique_genres"`
	UniqueDirectors int `json:"unique_directors"`
	WithCredits     int `json:"with_credits"`
}

type tmdbNamed struct {
	Name string `json:"name"`
	Job  string `json:"job,omitempty"`
}

type tmdbCredits struct {
	cast string
	crew string
}

// ConvertTMDB turns a TMDB 5000 movies export, and optionally the matching
// credits export, into a catalog table in the plain layout. Films without
// credits keep empty director and actors.
func ConvertTMDB(movies, credits *Table) (*Table, TMDBSummary, error) {
	var summary TMDBSummary
	if !movies.HasColumn("id") || !movies.HasColumn(ColTitle) {
		return nil, summary, &ConfigError{Reason: "TMDB movies file needs id and title columns"}
	}

	byID := make(map[string]tmdbCredits)
	if credits != nil {
		if !credits.HasColumn(ColID) {
			return nil, summary, &ConfigError{Field: ColID, Reason: "TMDB credits file needs a movie_id column"}
		}
		for _, rec := range credits.Rows {
			byID[strings.TrimSpace(rec[ColID])] = tmdbCredits{cast: rec["cast"], crew: rec["crew"]}
		}
	}

	out := &Table{Header: []string{ColID, ColTitle, ColGenres, ColDirector, ColActors, ColPlot}}
	genres := make(map[string]struct{})
	directors := make(map[string]struct{})

	for i, rec := range movies.Rows {
		id := strings.TrimSpace(rec["id"])
		if _, err := parseID(id); err != nil {
			return nil, summary, &ConfigError{Field: "id", Row: i + 1, Reason: "not an integer", Err: err}
		}

		genreNames := namesFromJSON(rec["genres"])
		var director, actors string
		if c, ok := byID[id]; ok {
			director = directorFromCrew(c.crew)
			actors = strings.Join(firstN(namesFromJSON(c.cast), maxTMDBActors), ", ")
			summary.WithCredits++
		}

		out.Rows = append(out.Rows, Record{
			ColID:       id,
			ColTitle:    strings.TrimSpace(rec[ColTitle]),
			ColGenres:   strings.Join(genreNames, ", "),
			ColDirector: director,
			ColActors:   actors,
			ColPlot:     strings.TrimSpace(rec["overview"]),
		})

		for _, g := range genreNames {
			genres[g] = struct{}{}
		}
		if director != "" {
			directors[director] = struct{}{}
		}
	}

	summary.Movies = len(out.Rows)
	summary.UniqueGenres = len(genres)
	summary.UniqueDirectors = len(directors)
	return out, summary, nil
}

// namesFromJSON extracts the name fields of a JSON list such as
// [{"id": 28, "name": "Action"}]. Malformed input yields nil.
func namesFromJSON(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "[]" {
		return nil
	}
	var entries []tmdbNamed
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Name != "" {
			names = append(names, e.Name)
		}
	}
	return names
}

func directorFromCrew(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "[]" {
		return ""
	}
	var crew []tmdbNamed
	if err := json.Unmarshal([]byte(raw), &crew); err != nil {
		return ""
	}
	for _, p := range crew {
		if p.Job == "Director" {
			return p.Name
		}
	}
	return ""
}

func firstN(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
