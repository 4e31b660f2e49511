// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/filmscout/internal/recommend"
)

// Error codes used in the envelope.
const (
	CodeValidation  = "VALIDATION_ERROR"
	CodeInvalidJSON = "INVALID_JSON"
	CodeEmptyInput  = "EMPTY_INPUT"
	CodeInvalidArg  = "INVALID_ARGUMENT"
	CodeNotFound    = "NOT_FOUND"
	CodeNotReady    = "NOT_READY"
	CodeInternal    = "INTERNAL_ERROR"
)

// engineErrorStatus maps an engine error onto a status code and error code.
func engineErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, recommend.ErrEmptyInput):
		return http.StatusBadRequest, CodeEmptyInput
	case errors.Is(err, recommend.ErrInvalidArgument):
		return http.StatusBadRequest, CodeInvalidArg
	case errors.Is(err, recommend.ErrNotFound):
		return http.StatusNotFound, CodeNotFound
	case errors.Is(err, recommend.ErrNotBuilt):
		return http.StatusServiceUnavailable, CodeNotReady
	default:
		return http.StatusInternalServerError, CodeInternal
	}
}

// respondEngineError writes err in the envelope. Client errors echo the
// engine message; server errors are logged and answered generically.
func respondEngineError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := engineErrorStatus(err)
	switch status {
	case http.StatusInternalServerError:
		respondError(w, r, status, code, "Internal server error", err)
	case http.StatusServiceUnavailable:
		respondError(w, r, status, code, "The catalog index is not built yet", nil)
	default:
		respondError(w, r, status, code, err.Error(), nil)
	}
}
