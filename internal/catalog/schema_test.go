// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

package catalog

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseHelpers(t *testing.T) {
	t.Parallel()

	t.Run("rating", func(t *testing.T) {
		t.Parallel()
		cases := map[string]float64{"8.7": 8.7, "N/A": 0, "": 0, "abc": 0, " 7 ": 7, "-1": 0}
		for in, want := range cases {
			if got := ParseRating(in); got != want {
				t.Errorf("ParseRating(%q) = %v, want %v", in, got, want)
			}
		}
	})

	t.Run("runtime", func(t *testing.T) {
		t.Parallel()
		cases := map[string]int{"142 min": 142, "N/A": 0, "90": 90, "about 2h": 2, "": 0}
		for in, want := range cases {
			if got := ParseRuntime(in); got != want {
				t.Errorf("ParseRuntime(%q) = %d, want %d", in, got, want)
			}
		}
	})

	t.Run("year", func(t *testing.T) {
		t.Parallel()
		cases := map[string]int{"1999": 1999, "2019–2020": 2019, "2008-07-18": 2008, "N/A": 0, "95": 0}
		for in, want := range cases {
			if got := ParseYear(in); got != want {
				t.Errorf("ParseYear(%q) = %d, want %d", in, got, want)
			}
		}
	})

	t.Run("bool", func(t *testing.T) {
		t.Parallel()
		cases := map[string]bool{"True": true, "true": true, "1": true, "False": false, "": false, "N/A": false}
		for in, want := range cases {
			if got := ParseBool(in); got != want {
				t.Errorf("ParseBool(%q) = %v, want %v", in, got, want)
			}
		}
	})
}

func TestRecordFirst(t *testing.T) {
	t.Parallel()

	rec := Record{"omdb_plot": "N/A", "plot_summary": "  ", "overview": "An overview."}
	if got := rec.First(plotAliases...); got != "An overview." {
		t.Errorf("First() = %q, want overview", got)
	}
}

func TestItemFromRecord_FloatID(t *testing.T) {
	t.Parallel()

	it, err := ItemFromRecord(Record{ColID: "12.0", ColTitle: "X"}, 1)
	if err != nil {
		t.Fatalf("ItemFromRecord() error = %v", err)
	}
	if it.ID != 12 {
		t.Errorf("ID = %d, want 12", it.ID)
	}

	_, err = ItemFromRecord(Record{ColID: "12.5", ColTitle: "X"}, 3)
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) || cfgErr.Row != 3 {
		t.Errorf("error = %v, want ConfigError for row 3", err)
	}
}

func TestItemFromRecord_IDColumn(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rec  Record
		want int
	}{
		{"movie_id", Record{"movie_id": "7", ColTitle: "Heat"}, 7},
		{"id", Record{"id": "8", ColTitle: "Heat"}, 8},
		{"movie_id wins", Record{"movie_id": "7", "id": "8", ColTitle: "Heat"}, 7},
		{"empty movie_id falls back", Record{"movie_id": "", "id": "8", ColTitle: "Heat"}, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			it, err := ItemFromRecord(tt.rec, 1)
			if err != nil {
				t.Fatalf("ItemFromRecord() error = %v", err)
			}
			if it.ID != tt.want {
				t.Errorf("ID = %d, want %d", it.ID, tt.want)
			}
		})
	}
}

func TestItemFromRecord_RejectsOutOfRangeID(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"1e20", "-1e20", "NaN", "Inf", "3.0e10"} {
		_, err := ItemFromRecord(Record{ColID: raw, ColTitle: "X"}, 2)
		var cfgErr *ConfigError
		if !errors.As(err, &cfgErr) {
			t.Errorf("ItemFromRecord(%q) error = %v, want ConfigError", raw, err)
		}
	}

	it, err := ItemFromRecord(Record{ColID: "1e3", ColTitle: "X"}, 1)
	if err != nil || it.ID != 1000 {
		t.Errorf("ItemFromRecord(1e3) = %d, %v; want 1000", it.ID, err)
	}
}

func TestSplitList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"Drama", []string{"Drama"}},
		{"Action, Sci-Fi ,, Drama", []string{"Action", "Sci-Fi", "Drama"}},
	}
	for _, tt := range tests {
		if got := SplitList(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SplitList(%q) = %#v, want %#v", tt.in, got, tt.want)
		}
	}
}

func TestNewCorpusCopiesInput(t *testing.T) {
	t.Parallel()

	items := []Item{{ID: 1, Title: "A"}, {ID: 2, Title: "B"}}
	c, err := NewCorpus(items)
	if err != nil {
		t.Fatal(err)
	}
	items[0].Title = "mutated"
	if c.At(0).Title != "A" {
		t.Error("corpus must not alias the caller's slice")
	}
	if _, ok := c.Lookup(3); ok {
		t.Error("Lookup(3) should miss")
	}
}
