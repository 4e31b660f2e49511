// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is built once and shared. Fields are reported
// under their json names, so a bad recommendation request produces
// "watched_ids must contain at least 1 items" rather than the Go field name.
//
// # Custom validators
//
//   - notblank: string contains something other than whitespace
//   - imdbid: IMDb title id (tt followed by at least seven digits)
//
// # Usage
//
//	type RecommendRequest struct {
//	    WatchedIDs []int `json:"watched_ids" validate:"required,min=1,max=500,dive,gt=0"`
//	    K          int   `json:"k" validate:"omitempty,min=1,max=100"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	    return
//	}
//
// ToAPIError produces the VALIDATION_ERROR shape: a single failure carries
// field, tag and value details, several failures carry a fields list.
package validation
