// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

// Package diagnostics checks name resolution and HTTP reachability of the
// OMDb API before an enrichment run, and suggests remedies when something
// fails. It never changes system settings.
package diagnostics
