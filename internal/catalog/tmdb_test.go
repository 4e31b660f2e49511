// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

package catalog

import (
	"errors"
	"strings"
	"testing"
)

const tmdbMovies = `id,title,genres,overview,release_date
19995,Avatar,"[{""id"": 28, ""name"": ""Action""}, {""id"": 12, ""name"": ""Adventure""}]",In the 22nd century a marine is dispatched to Pandora.,2009-12-10
285,Pirates,"[{""id"": 12, ""name"": ""Adventure""}]",Captain Barbossa returns.,2007-05-19
`

const tmdbCreditsCSV = `movie_id,title,cast,crew
19995,Avatar,"[{""name"": ""Sam Worthington""}, {""name"": ""Zoe Saldana""}, {""name"": ""A""}, {""name"": ""B""}, {""name"": ""C""}, {""name"": ""D""}]","[{""job"": ""Producer"", ""name"": ""Jon Landau""}, {""job"": ""Director"", ""name"": ""James Cameron""}]"
`

func TestConvertTMDB(t *testing.T) {
	t.Parallel()

	movies, err := ReadCSV(strings.NewReader(tmdbMovies))
	if err != nil {
		t.Fatal(err)
	}
	credits, err := ReadCSV(strings.NewReader(tmdbCreditsCSV))
	if err != nil {
		t.Fatal(err)
	}

	out, summary, err := ConvertTMDB(movies, credits)
	if err != nil {
		t.Fatalf("ConvertTMDB() error = %v", err)
	}
	if summary.Movies != 2 || summary.UniqueGenres != 2 || summary.UniqueDirectors != 1 || summary.WithCredits != 1 {
		t.Errorf("summary = %+v", summary)
	}

	c, err := out.Corpus()
	if err != nil {
		t.Fatalf("Corpus() error = %v", err)
	}
	avatar, _ := c.Lookup(19995)
	if avatar.Genres != "Action, Adventure" {
		t.Errorf("genres = %q", avatar.Genres)
	}
	if avatar.Director != "James Cameron" {
		t.Errorf("director = %q", avatar.Director)
	}
	if avatar.Actors != "Sam Worthington, Zoe Saldana, A, B, C" {
		t.Errorf("actors = %q, want first five", avatar.Actors)
	}
	if !strings.HasPrefix(avatar.Plot, "In the 22nd century") {
		t.Errorf("plot = %q", avatar.Plot)
	}

	pirates, _ := c.Lookup(285)
	if pirates.Director != "" || pirates.Actors != "" {
		t.Errorf("film without credits should have no people: %+v", pirates)
	}
}

func TestConvertTMDB_WithoutCredits(t *testing.T) {
	t.Parallel()

	movies, _ := ReadCSV(strings.NewReader(tmdbMovies))
	out, summary, err := ConvertTMDB(movies, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(out.Rows) != 2 || summary.WithCredits != 0 {
		t.Errorf("rows = %d, with credits = %d", len(out.Rows), summary.WithCredits)
	}
}

func TestConvertTMDB_BadInput(t *testing.T) {
	t.Parallel()

	movies, _ := ReadCSV(strings.NewReader("title\nAvatar\n"))
	if _, _, err := ConvertTMDB(movies, nil); !errors.Is(err, ErrConfig) {
		t.Errorf("error = %v, want ErrConfig", err)
	}

	if got := namesFromJSON("not json"); got != nil {
		t.Errorf("namesFromJSON(garbage) = %v, want nil", got)
	}
}
