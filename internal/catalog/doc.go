// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

// Package catalog owns the canonical film record and every on-disk shape it
// is read from or written to.
//
// # Schema Normalization
//
// Source files come in several column conventions: the plain TMDB-derived
// layout (genres, director, plot_summary, ...) and the OMDb-enriched layout
// where the same facts live under omdb_* columns. The loader resolves each
// canonical field through an ordered alias list, per row, so that callers
// only ever see one Item shape:
//
//	omdb_genre -> genres -> genre
//	omdb_plot  -> plot_summary -> plot -> overview
//
// A value of "N/A" counts as missing. When the enriched column is missing
// or empty for a row, the legacy column is used instead.
//
// # Formats
//
//   - CSV with a header row (LoadCSV, WriteCSV)
//   - JSON array of objects using the same keys (LoadJSON)
//   - TMDB 5000 movies/credits exports (ConvertTMDB)
//
// Corpus order is the file order and never changes after load.
package catalog
