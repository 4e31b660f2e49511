// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

// Package logging provides the zerolog-based structured logger shared by
// every Filmscout component.
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "console",
//	})
//
//	logging.Info().Str("catalog", path).Int("items", n).Msg("catalog loaded")
//	logging.Err(err).Msg("rebuild failed")
//
//	// Component loggers
//	logger := logging.WithComponent("enrich")
//
//	// Request-scoped logging
//	logging.Ctx(r.Context()).Info().Msg("served")
//
// Logs go to stderr so that command output on stdout stays machine-readable.
//
// # slog
//
// NewSlogLogger adapts the logger to log/slog for libraries such as
// sutureslog.
//
// Always terminate log chains with .Msg() or .Send().
package logging
