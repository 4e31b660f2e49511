// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

package enrich

import "time"

// Report summarizes an enrichment run.
type Report struct {
	Total     int `json:"total" yaml:"total"`
	Succeeded int `json:"succeeded" yaml:"succeeded"`
	Failed    int `json:"failed" yaml:"failed"`

	// Resumed counts rows restored from a checkpoint.
	Resumed int `json:"resumed" yaml:"resumed"`

	// Lookups counts requests sent to OMDb; CacheHits counts lookups
	// answered by the response cache.
	Lookups   int `json:"lookups" yaml:"lookups"`
	CacheHits int `json:"cache_hits" yaml:"cache_hits"`

	StartTime time.Time `json:"start_time" yaml:"start_time"`
	EndTime   time.Time `json:"end_time" yaml:"end_time"`
}

// SuccessRate is the percentage of rows enriched, 0 for an empty run.
func (r *Report) SuccessRate() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Succeeded) / float64(r.Total) * 100
}

// Duration returns the run time.
func (r *Report) Duration() time.Duration {
	if r.EndTime.IsZero() {
		return time.Since(r.StartTime)
	}
	return r.EndTime.Sub(r.StartTime)
}
