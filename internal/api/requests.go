// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

package api

// Request DTOs validated with go-playground/validator. Field names in
// validation messages come from the json tags.

// RecommendationsRequest is the body of POST /api/v1/recommendations.
// The engine enforces the watched-id limit and clamps k.
type RecommendationsRequest struct {
	WatchedIDs []int  `json:"watched_ids" validate:"required,min=1,dive,gte=0"`
	K          int    `json:"k" validate:"gte=0"`
	ExcludeIDs []int  `json:"exclude_ids" validate:"omitempty,max=1000,dive,gte=0"`
	Filter     string `json:"filter" validate:"max=500"`
}

// SearchRequest is built from the query string of GET /api/v1/search.
type SearchRequest struct {
	Query string `json:"q" validate:"required,notblank,max=200"`
	Limit int    `json:"limit" validate:"min=1,max=1000"`
}

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20
