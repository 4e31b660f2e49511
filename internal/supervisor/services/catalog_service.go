// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

package services

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/filmscout/internal/catalog"
	"github.com/tomtom215/filmscout/internal/metrics"
)

// DefaultReloadInterval is used when CatalogReloadConfig.Interval is not positive.
const DefaultReloadInterval = 30 * time.Second

// CatalogEngine is the part of recommend.Engine the reload service drives.
type CatalogEngine interface {
	Build(corpus *catalog.Corpus) error
	Generation() int64
}

// CatalogLoader reads and parses the catalog file.
type CatalogLoader func(path string, format catalog.Format) (*catalog.Corpus, error)

// CatalogReloadConfig holds configuration for the catalog reload service.
type CatalogReloadConfig struct {
	// Path is the catalog file to watch.
	Path string

	// Format is passed to the loader.
	Format catalog.Format

	// Interval is how often the file is checked.
	Interval time.Duration

	// Loader reads the catalog. Nil selects catalog.LoadFile.
	Loader CatalogLoader

	// OnReload runs after every successful rebuild with the new generation,
	// for example to clear response caches.
	OnReload func(generation int64)
}

// fileSignature identifies one version of the catalog file.
type fileSignature struct {
	modTime time.Time
	size    int64
}

// CatalogReloadService rebuilds the index when the catalog file changes.
// The engine keeps serving the previous index while a reload runs and
// after a reload fails.
type CatalogReloadService struct {
	engine CatalogEngine
	config CatalogReloadConfig
	logger zerolog.Logger
	name   string

	mu   sync.Mutex
	last fileSignature
}

// NewCatalogReloadService creates a reload service. The current state of
// the file is taken as already loaded.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCatalogReloadService(engine CatalogEngine, cfg CatalogReloadConfig, logger zerolog.Logger) *CatalogReloadService {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultReloadInterval
	}
	if cfg.Loader == nil {
		cfg.Loader = catalog.LoadFile
	}
	s := &CatalogReloadService{
		engine: engine,
		config: cfg,
		logger: logger.With().Str("service", "catalog-reload").Str("path", cfg.Path).Logger(),
		name:   "catalog-reload",
	}
	if sig, err := statSignature(cfg.Path); err == nil {
		s.last = sig
	}
	return s
}

func statSignature(path string) (fileSignature, error) {
	info, err := os.Stat(path)
	if err != nil {
		return fileSignature{}, err
	}
	return fileSignature{modTime: info.ModTime(), size: info.Size()}, nil
}

// Serve implements the suture.Service interface.
func (s *CatalogReloadService) Serve(ctx context.Context) error {
	s.logger.Info().Dur("interval", s.config.Interval).Msg("catalog reload service starting")

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("catalog reload service shutting down")
			return ctx.Err()

		case <-ticker.C:
			if _, err := s.Check(); err != nil {
				s.logger.Warn().Err(err).Msg("catalog reload failed, previous index stays active")
			}
		}
	}
}

// Check reloads the catalog if the file changed since the last check and
// reports whether a new index was built. A file that fails to load is not
// retried until it changes again.
func (s *CatalogReloadService) Check() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sig, err := statSignature(s.config.Path)
	if err != nil {
		return false, fmt.Errorf("stat catalog: %w", err)
	}
	if sig == s.last {
		return false, nil
	}
	s.last = sig

	err = s.reload()
	metrics.RecordCatalogReload(err)
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *CatalogReloadService) reload() error {
	start := time.Now()
	corpus, err := s.config.Loader(s.config.Path, s.config.Format)
	if err != nil {
		return err
	}
	if err := s.engine.Build(corpus); err != nil {
		return err
	}

	gen := s.engine.Generation()
	s.logger.Info().
		Int("items", corpus.Len()).
		Int64("generation", gen).
		Dur("duration", time.Since(start)).
		Msg("catalog reloaded")

	if s.config.OnReload != nil {
		s.config.OnReload(gen)
	}
	return nil
}

// String returns the service name for logging.
func (s *CatalogReloadService) String() string {
	return s.name
}
