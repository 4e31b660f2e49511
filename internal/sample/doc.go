// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

// Package sample generates an enriched reference catalog without network
// access, for demos and for trying the recommender before an OMDb key is
// available.
//
// Three films carry complete OMDb payloads; the rest are compact entries
// whose remaining fields (runtime, rating class, awards, metascore, IMDb
// id, box office) are derived from their position and rating.
package sample
