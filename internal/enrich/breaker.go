// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

package enrich

import (
	"context"
	"errors"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/filmscout/internal/logging"
	"github.com/tomtom215/filmscout/internal/metrics"
)

// breakerName labels the OMDb circuit breaker in metrics.
const breakerName = "omdb-api"

// Lookuper resolves catalog rows against OMDb.
type Lookuper interface {
	ByIMDbID(ctx context.Context, imdbID string) (*Movie, error)
	ByTitle(ctx context.Context, title, year string) (*Movie, error)
}

// BreakerClient wraps a Lookuper with a circuit breaker. A missing movie
// counts as a successful call.
//
// The breaker uses wall-clock time for its interval and timeout; tests that
// need deterministic timing should exercise the wrapped client directly.
type BreakerClient struct {
	next Lookuper
	cb   *gobreaker.CircuitBreaker[*Movie]
	name string
}

// NewBreakerClient wraps next. The circuit opens when at least 60% of 10 or
// more requests in a one minute window fail, and probes again after two
// minutes with up to three requests.
func NewBreakerClient(next Lookuper) *BreakerClient {
	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(breakerName).Set(0)

	logger := logging.WithComponent("enrich")

	cb := gobreaker.NewCircuitBreaker[*Movie](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     2 * time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= 0.6
			if shouldTrip {
				logger.Warn().Uint32("failures", counts.TotalFailures).Float64("failure_rate", failureRatio*100).Msg("opening OMDb circuit")
			}
			return shouldTrip
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr, toStr := stateToString(from), stateToString(to)
			logger.Info().Str("from", fromStr).Str("to", toStr).Msg("circuit breaker state transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrMovieNotFound) || errors.Is(err, context.Canceled)
		},
	})

	return &BreakerClient{next: next, cb: cb, name: breakerName}
}

// ByIMDbID looks up by IMDb id through the breaker.
func (b *BreakerClient) ByIMDbID(ctx context.Context, imdbID string) (*Movie, error) {
	return b.execute(func() (*Movie, error) {
		return b.next.ByIMDbID(ctx, imdbID)
	})
}

// ByTitle looks up by title and year through the breaker.
func (b *BreakerClient) ByTitle(ctx context.Context, title, year string) (*Movie, error) {
	return b.execute(func() (*Movie, error) {
		return b.next.ByTitle(ctx, title, year)
	})
}

// State returns the breaker state name.
func (b *BreakerClient) State() string {
	return stateToString(b.cb.State())
}

func (b *BreakerClient) execute(fn func() (*Movie, error)) (*Movie, error) {
	movie, err := b.cb.Execute(fn)
	if err != nil {
		switch {
		case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
			metrics.CircuitBreakerRequests.WithLabelValues(b.name, "rejected").Inc()
		case errors.Is(err, ErrMovieNotFound):
			metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()
		default:
			metrics.CircuitBreakerRequests.WithLabelValues(b.name, "failure").Inc()
			counts := b.cb.Counts()
			metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(float64(counts.ConsecutiveFailures))
		}
		return nil, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(0)
	return movie, nil
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
