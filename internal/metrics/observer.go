// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

package metrics

import (
	"github.com/tomtom215/filmscout/internal/recommend"
)

// EngineObserver returns a recommend.Observer that feeds engine events into
// the Prometheus collectors.
func EngineObserver() recommend.Observer {
	return recommend.ObserverFunc(observeEngine)
}

//nolint:gocritic // hugeParam: matches Observer signature
func observeEngine(e recommend.Event) {
	switch e.Kind {
	case recommend.EventIndexBuilt:
		IndexBuildsTotal.WithLabelValues("success").Inc()
		IndexBuildDuration.Observe(e.Duration.Seconds())
		VocabularySize.Set(float64(e.Vocabulary))
		CatalogItems.Set(float64(e.Items))
		IndexGeneration.Set(float64(e.Generation))
	case recommend.EventIndexFailed:
		IndexBuildsTotal.WithLabelValues("failure").Inc()
	case recommend.EventWatchedSkipped:
		WatchedIDsSkipped.Add(float64(len(e.SkippedIDs)))
	case recommend.EventRecommended:
		if e.Err != nil {
			RecommendRequests.WithLabelValues("error").Inc()
			return
		}
		RecommendRequests.WithLabelValues("success").Inc()
		RecommendDuration.Observe(e.Duration.Seconds())
	case recommend.EventSearched:
		SearchRequests.Inc()
	}
}
