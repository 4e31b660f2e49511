// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

// Package recommend implements a content-based film recommendation engine.
//
// # Architecture
//
// Every catalog item is rendered into a weighted text document by the
// features package. The vectorspace package turns those documents into an
// L2-normalized TF-IDF matrix with one row per item, in catalog order.
//
// A recommendation request resolves the watched ids against the catalog,
// averages their rows into a profile (rated items weigh max(0.5, rating/10)),
// and ranks every other item by cosine similarity to that profile.
//
//   - Unknown watched ids are skipped and reported through the Observer
//   - Watched and explicitly excluded items are never returned
//   - Ties keep catalog order, so results are deterministic
//   - An optional CEL expression (see the filter package) narrows candidates
//
// # Usage
//
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), recommend.LogObserver(logger))
//	if err != nil {
//	    return err
//	}
//	if err := engine.Build(corpus); err != nil {
//	    return err
//	}
//	recs, err := engine.Recommend([]int{1, 42}, 10)
//
// # Thread Safety
//
// The engine is safe for concurrent use. Rebuild constructs a complete new
// corpus/index pair and swaps it in atomically; requests in flight keep
// using the pair they started with.
package recommend
