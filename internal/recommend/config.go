// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

package recommend

import (
	"fmt"

	"github.com/tomtom215/filmscout/internal/recommend/features"
	"github.com/tomtom215/filmscout/internal/recommend/vectorspace"
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// TFIDF controls vocabulary selection and n-gram generation.
	TFIDF vectorspace.Config `json:"tfidf"`

	// Weights controls field repetition and categorical buckets in the
	// synthesized documents.
	Weights features.WeightTable `json:"weights"`

	// Profile contains parameters for profile construction.
	Profile ProfileConfig `json:"profile"`

	// Limits contains operational limits.
	Limits LimitsConfig `json:"limits"`
}

// ProfileConfig contains parameters for profile construction.
type ProfileConfig struct {
	// MinWeight is the floor for rating-derived item weights.
	// Rated items weigh max(MinWeight, rating/10).
	MinWeight float64 `json:"min_weight"`
}

// LimitsConfig contains operational limits.
type LimitsConfig struct {
	// DefaultK is used when a request does not specify K.
	DefaultK int `json:"default_k"`

	// MaxK caps the number of results per request.
	MaxK int `json:"max_k"`

	// DefaultSearchLimit is used when a search does not specify a limit.
	DefaultSearchLimit int `json:"default_search_limit"`

	// MaxSearchResults caps the number of search results.
	MaxSearchResults int `json:"max_search_results"`

	// MaxWatchedIDs caps the number of ids that seed one profile.
	MaxWatchedIDs int `json:"max_watched_ids"`

	// MorePoolSize is how many candidates are ranked when paging past
	// already shown results.
	MorePoolSize int `json:"more_pool_size"`

	// TopTerms is the number of index terms reported by ItemInfo.
	TopTerms int `json:"top_terms"`
}

// DefaultConfig returns the stock engine configuration.
func DefaultConfig() *Config {
	return &Config{
		TFIDF:   vectorspace.DefaultConfig(),
		Weights: features.DefaultWeights(),
		Profile: ProfileConfig{
			MinWeight: 0.5,
		},
		Limits: LimitsConfig{
			DefaultK:           10,
			MaxK:               100,
			DefaultSearchLimit: 10,
			MaxSearchResults:   100,
			MaxWatchedIDs:      500,
			MorePoolSize:       100,
			TopTerms:           10,
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if err := c.TFIDF.Validate(); err != nil {
		return fmt.Errorf("tfidf: %w", err)
	}
	if err := c.Weights.Validate(); err != nil {
		return err
	}
	if c.Profile.MinWeight < 0 || c.Profile.MinWeight > 1 {
		return fmt.Errorf("profile.min_weight must be in [0, 1], got %v", c.Profile.MinWeight)
	}
	return c.Limits.validate()
}

func (l LimitsConfig) validate() error {
	checks := []struct {
		name string
		v    int
	}{
		{"limits.default_k", l.DefaultK},
		{"limits.max_k", l.MaxK},
		{"limits.default_search_limit", l.DefaultSearchLimit},
		{"limits.max_search_results", l.MaxSearchResults},
		{"limits.max_watched_ids", l.MaxWatchedIDs},
		{"limits.more_pool_size", l.MorePoolSize},
	}
	for _, c := range checks {
		if c.v <= 0 {
			return fmt.Errorf("%s must be positive, got %d", c.name, c.v)
		}
	}
	if l.DefaultK > l.MaxK {
		return fmt.Errorf("limits.default_k (%d) cannot exceed limits.max_k (%d)", l.DefaultK, l.MaxK)
	}
	if l.DefaultSearchLimit > l.MaxSearchResults {
		return fmt.Errorf("limits.default_search_limit (%d) cannot exceed limits.max_search_results (%d)",
			l.DefaultSearchLimit, l.MaxSearchResults)
	}
	if l.TopTerms < 0 {
		return fmt.Errorf("limits.top_terms must be non-negative, got %d", l.TopTerms)
	}
	return nil
}

// Clone creates a deep copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	clone.Weights = c.Weights.Clone()
	return &clone
}
