// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

package catalog

import (
	"fmt"
	"strings"
)

// Item is one catalog record. String fields are never absent: a missing value
// is the empty string. Numeric enrichment fields use zero for unknown.
type Item struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Genres   string `json:"genres"`
	Director string `json:"director"`
	Actors   string `json:"actors"`
	Plot     string `json:"plot"`

	// Enrichment fields. Zero values mean the source did not provide them.
	Rating    float64 `json:"rating,omitempty"`
	Runtime   int     `json:"runtime,omitempty"`
	Year      int     `json:"year,omitempty"`
	Awards    string  `json:"awards,omitempty"`
	Language  string  `json:"language,omitempty"`
	Country   string  `json:"country,omitempty"`
	Metascore int     `json:"metascore,omitempty"`
	IMDbID    string  `json:"imdb_id,omitempty"`
	Enriched  bool    `json:"enriched,omitempty"`
}

// HasEnrichment reports whether any enrichment field carries a value.
//
//nolint:gocritic // hugeParam: Item is passed by value to keep it immutable
func (it Item) HasEnrichment() bool {
	return it.Enriched || it.Rating > 0 || it.Runtime > 0 || it.Year > 0 ||
		it.Awards != "" || it.Language != "" || it.Country != ""
}

// GenreList splits the comma separated genre string into trimmed names.
//
//nolint:gocritic // hugeParam: Item is passed by value to keep it immutable
func (it Item) GenreList() []string {
	return SplitList(it.Genres)
}

// SplitList splits a comma separated list, trimming blanks and dropping empties.
func SplitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Corpus is an ordered, read-only collection of items with an id index.
type Corpus struct {
	items []Item
	index map[int]int
}

// NewCorpus copies items into a corpus. Duplicate or non-positive ids are a
// ConfigError.
func NewCorpus(items []Item) (*Corpus, error) {
	c := &Corpus{
		items: make([]Item, len(items)),
		index: make(map[int]int, len(items)),
	}
	copy(c.items, items)

	for i := range c.items {
		id := c.items[i].ID
		if id <= 0 {
			return nil, &ConfigError{Field: "movie_id", Row: i + 1, Reason: fmt.Sprintf("invalid id %d", id)}
		}
		if prev, dup := c.index[id]; dup {
			return nil, &ConfigError{
				Field:  "movie_id",
				Row:    i + 1,
				Reason: fmt.Sprintf("duplicate id %d (first seen at row %d)", id, prev+1),
			}
		}
		c.index[id] = i
	}
	return c, nil
}

// Len returns the number of items.
func (c *Corpus) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

// At returns the item at corpus position i.
func (c *Corpus) At(i int) Item {
	return c.items[i]
}

// IndexOf returns the corpus position of id.
func (c *Corpus) IndexOf(id int) (int, bool) {
	i, ok := c.index[id]
	return i, ok
}

// Lookup returns the item with the given id.
func (c *Corpus) Lookup(id int) (Item, bool) {
	i, ok := c.index[id]
	if !ok {
		return Item{}, false
	}
	return c.items[i], true
}

// Items returns a copy of the items in corpus order.
func (c *Corpus) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}
