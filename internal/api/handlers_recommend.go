// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/tomtom215/filmscout/internal/cache"
	"github.com/tomtom215/filmscout/internal/logging"
	"github.com/tomtom215/filmscout/internal/middleware"
	"github.com/tomtom215/filmscout/internal/recommend"
)

// Recommendations handles POST /api/v1/recommendations.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req RecommendationsRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, CodeInvalidJSON,
			"Request body must be a JSON object with watched_ids, k, exclude_ids and filter", nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidationError(w, r, apiErr)
		return
	}

	resp, err := h.engine.RecommendRequest(recommend.Request{
		WatchedIDs: req.WatchedIDs,
		K:          req.K,
		ExcludeIDs: req.ExcludeIDs,
		Filter:     req.Filter,
		RequestID:  middleware.GetRequestID(r.Context()),
	})
	if err != nil {
		respondEngineError(w, r, err)
		return
	}

	logging.Ctx(r.Context()).Debug().
		Int("watched", len(req.WatchedIDs)).
		Int("results", len(resp.Items)).
		Int64("generation", resp.Metadata.Generation).
		Msg("Recommendations served")

	respondJSON(w, r, http.StatusOK, success(resp, start, false))
}

// Item handles GET /api/v1/items/{id}.
func (h *Handler) Item(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	raw := chi.URLParam(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, CodeInvalidArg, "id must be an integer", nil)
		return
	}

	detail, err := h.engine.ItemDetail(id)
	if err != nil {
		respondEngineError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, success(detail, start, false))
}

// Search handles GET /api/v1/search?q=&limit=.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := SearchRequest{
		Query: strings.TrimSpace(r.URL.Query().Get("q")),
		Limit: getIntParam(r, "limit", h.defaultSearchLimit),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidationError(w, r, apiErr)
		return
	}

	key := cache.GenerateKey("search", map[string]interface{}{
		"q":          strings.ToLower(req.Query),
		"limit":      req.Limit,
		"generation": h.engine.Generation(),
	})
	results, hit, err := h.cached(key, func() (interface{}, error) {
		return h.engine.Search(req.Query, req.Limit)
	})
	if err != nil {
		respondEngineError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, success(results, start, hit))
}

// Stats handles GET /api/v1/stats.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	key := cache.GenerateKey("stats", map[string]interface{}{
		"generation": h.engine.Generation(),
	})
	stats, hit, err := h.cached(key, func() (interface{}, error) {
		return h.engine.Stats()
	})
	if err != nil {
		respondEngineError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, success(stats, start, hit))
}
