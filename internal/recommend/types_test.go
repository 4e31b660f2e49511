// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

package recommend

import (
	"errors"
	"strings"
	"testing"

	"github.com/goccy/go-json"
)

func TestProfile_JSONOmitsVector(t *testing.T) {
	p := Profile{WatchedIDs: []int{1}, Weights: []float64{1}, Vector: []float64{0.1, 0.2}}
	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if strings.Contains(string(data), "0.2") {
		t.Errorf("profile vector leaked into JSON: %s", data)
	}
	if strings.Contains(string(data), "skipped_ids") {
		t.Errorf("empty skipped_ids should be omitted: %s", data)
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		target  error
		message string
	}{
		{"empty input", &EmptyInputError{Input: "query"}, ErrEmptyInput, "query must not be empty"},
		{"single not found", &NotFoundError{IDs: []int{7}}, ErrNotFound, "item 7 not found"},
		{"many not found", &NotFoundError{IDs: []int{7, 8}}, ErrNotFound, "none of the items [7 8]"},
		{"invalid argument", invalidArgument("k must be positive, got %d", -1), ErrInvalidArgument, "got -1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.target) {
				t.Errorf("errors.Is(%v, %v) = false", tt.err, tt.target)
			}
			if !strings.Contains(tt.err.Error(), tt.message) {
				t.Errorf("Error() = %q, want substring %q", tt.err.Error(), tt.message)
			}
		})
	}

	if errors.Is(&EmptyInputError{Input: "x"}, ErrNotFound) {
		t.Error("EmptyInputError must not match ErrNotFound")
	}
}
