// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

package enrich

// Movie is an OMDb title payload.
type Movie struct {
	Title      string `json:"Title"`
	Year       string `json:"Year"`
	Rated      string `json:"Rated"`
	Released   string `json:"Released"`
	Runtime    string `json:"Runtime"`
	Genre      string `json:"Genre"`
	Director   string `json:"Director"`
	Writer     string `json:"Writer"`
	Actors     string `json:"Actors"`
	Plot       string `json:"Plot"`
	Language   string `json:"Language"`
	Country    string `json:"Country"`
	Awards     string `json:"Awards"`
	Poster     string `json:"Poster"`
	Metascore  string `json:"Metascore"`
	IMDbRating string `json:"imdbRating"`
	IMDbVotes  string `json:"imdbVotes"`
	IMDbID     string `json:"imdbID"`
	Type       string `json:"Type"`
	DVD        string `json:"DVD"`
	BoxOffice  string `json:"BoxOffice"`
	Production string `json:"Production"`
	Website    string `json:"Website"`
	Response   string `json:"Response"`
	Error      string `json:"Error,omitempty"`

	// raw is the payload as received, kept for the response cache.
	raw []byte
}

// EnrichedColumn flags whether a row was matched.
const EnrichedColumn = "omdb_enriched"

// Columns lists the enrichment columns in output order.
var Columns = []string{
	"omdb_title", "omdb_year", "omdb_rated", "omdb_released", "omdb_runtime",
	"omdb_genre", "omdb_director", "omdb_writer", "omdb_actors", "omdb_plot",
	"omdb_language", "omdb_country", "omdb_awards", "omdb_poster",
	"omdb_metascore", "omdb_imdb_rating", "omdb_imdb_votes", "omdb_imdb_id",
	"omdb_type", "omdb_dvd", "omdb_box_office", "omdb_production", "omdb_website",
	EnrichedColumn,
}

// Fields maps the payload onto the enrichment columns, without the
// omdb_enriched flag.
func (m *Movie) Fields() map[string]string {
	return map[string]string{
		"omdb_title":       m.Title,
		"omdb_year":        m.Year,
		"omdb_rated":       m.Rated,
		"omdb_released":    m.Released,
		"omdb_runtime":     m.Runtime,
		"omdb_genre":       m.Genre,
		"omdb_director":    m.Director,
		"omdb_writer":      m.Writer,
		"omdb_actors":      m.Actors,
		"omdb_plot":        m.Plot,
		"omdb_language":    m.Language,
		"omdb_country":     m.Country,
		"omdb_awards":      m.Awards,
		"omdb_poster":      m.Poster,
		"omdb_metascore":   m.Metascore,
		"omdb_imdb_rating": m.IMDbRating,
		"omdb_imdb_votes":  m.IMDbVotes,
		"omdb_imdb_id":     m.IMDbID,
		"omdb_type":        m.Type,
		"omdb_dvd":         m.DVD,
		"omdb_box_office":  m.BoxOffice,
		"omdb_production":  m.Production,
		"omdb_website":     m.Website,
	}
}
