// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

package enrich

import (
	"context"
	"errors"
	"testing"

	gobreaker "github.com/sony/gobreaker/v2"
)

func TestBreakerClient_NotFoundKeepsCircuitClosed(t *testing.T) {
	t.Parallel()

	b := NewBreakerClient(newStub())
	for range 20 {
		if _, err := b.ByTitle(context.Background(), "Nothing Like This", ""); !errors.Is(err, ErrMovieNotFound) {
			t.Fatalf("ByTitle() error = %v", err)
		}
	}
	if got := b.State(); got != "closed" {
		t.Errorf("State() = %q, want closed", got)
	}
}

func TestBreakerClient_OpensOnFailures(t *testing.T) {
	t.Parallel()

	stub := newStub()
	stub.failOn["Heat"] = &HTTPError{StatusCode: 503, Body: "unavailable"}
	b := NewBreakerClient(stub)
	ctx := context.Background()

	for range 10 {
		_, _ = b.ByTitle(ctx, "Heat", "")
	}
	if got := b.State(); got != "open" {
		t.Fatalf("State() = %q, want open", got)
	}

	calls := stub.callCount()
	_, err := b.ByIMDbID(ctx, "tt0133093")
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("error = %v, want ErrOpenState", err)
	}
	if stub.callCount() != calls {
		t.Error("open circuit must not reach the wrapped client")
	}
}

func TestBreakerClient_PassesResults(t *testing.T) {
	t.Parallel()

	b := NewBreakerClient(newStub())
	m, err := b.ByIMDbID(context.Background(), "tt0133093")
	if err != nil {
		t.Fatal(err)
	}
	if m.Title != "The Matrix" {
		t.Errorf("Title = %q", m.Title)
	}
}

func TestStateHelpers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		state gobreaker.State
		name  string
		value float64
	}{
		{gobreaker.StateClosed, "closed", 0},
		{gobreaker.StateHalfOpen, "half-open", 1},
		{gobreaker.StateOpen, "open", 2},
		{gobreaker.State(42), "unknown", -1},
	}
	for _, tt := range tests {
		if got := stateToString(tt.state); got != tt.name {
			t.Errorf("stateToString(%d) = %q, want %q", tt.state, got, tt.name)
		}
		if got := stateToFloat(tt.state); got != tt.value {
			t.Errorf("stateToFloat(%d) = %v, want %v", tt.state, got, tt.value)
		}
	}
}
