// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

package recommend

import (
	"time"

	"github.com/rs/zerolog"
)

// EventKind identifies an engine event.
type EventKind int

const (
	// EventIndexBuilt fires after a successful Build or Rebuild.
	EventIndexBuilt EventKind = iota
	// EventIndexFailed fires when a build fails.
	EventIndexFailed
	// EventWatchedSkipped fires when watched ids are not in the corpus.
	EventWatchedSkipped
	// EventRecommended fires after a recommendation request completes.
	EventRecommended
	// EventSearched fires after a search completes.
	EventSearched
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventIndexBuilt:
		return "index_built"
	case EventIndexFailed:
		return "index_failed"
	case EventWatchedSkipped:
		return "watched_skipped"
	case EventRecommended:
		return "recommended"
	case EventSearched:
		return "searched"
	default:
		return "unknown"
	}
}

// Event is a structured notification from the engine. Only the fields
// relevant to Kind are set.
type Event struct {
	Kind      EventKind
	RequestID string

	// Index events.
	Items      int
	Vocabulary int
	Generation int64

	// Request events.
	SkippedIDs []int
	Results    int
	Query      string

	Duration time.Duration
	Err      error
}

// Observer receives engine events. Implementations must be safe for
// concurrent use and must not block.
type Observer interface {
	Observe(Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Event)

// Observe calls f.
//
//nolint:gocritic // hugeParam: Event is small and passed by value
func (f ObserverFunc) Observe(e Event) { f(e) }

type nopObserver struct{}

//nolint:gocritic // hugeParam: Event is small and passed by value
func (nopObserver) Observe(Event) {}

// NopObserver discards all events.
func NopObserver() Observer { return nopObserver{} }

// MultiObserver fans events out to every non-nil observer in order.
func MultiObserver(observers ...Observer) Observer {
	list := make([]Observer, 0, len(observers))
	for _, o := range observers {
		if o != nil {
			list = append(list, o)
		}
	}
	return ObserverFunc(func(e Event) {
		for _, o := range list {
			o.Observe(e)
		}
	})
}

// LogObserver writes events to a zerolog logger.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func LogObserver(logger zerolog.Logger) Observer {
	logger = logger.With().Str("component", "recommend").Logger()
	return ObserverFunc(func(e Event) {
		switch e.Kind {
		case EventIndexBuilt:
			logger.Info().
				Int("items", e.Items).
				Int("vocabulary", e.Vocabulary).
				Int64("generation", e.Generation).
				Dur("duration", e.Duration).
				Msg("index built")
		case EventIndexFailed:
			logger.Error().Err(e.Err).Int("items", e.Items).Msg("index build failed")
		case EventWatchedSkipped:
			logger.Warn().
				Str("request_id", e.RequestID).
				Ints("skipped_ids", e.SkippedIDs).
				Msg("watched items not found in catalog")
		case EventRecommended:
			ev := logger.Debug()
			if e.Err != nil {
				ev = logger.Warn().Err(e.Err)
			}
			ev.Str("request_id", e.RequestID).
				Int("results", e.Results).
				Dur("duration", e.Duration).
				Msg("recommendation complete")
		case EventSearched:
			logger.Debug().
				Str("query", e.Query).
				Int("results", e.Results).
				Dur("duration", e.Duration).
				Msg("search complete")
		}
	})
}
