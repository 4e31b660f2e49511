// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

package catalog

import (
	"errors"
	"fmt"
)

// ErrConfig is matched by every *ConfigError via errors.Is.
var ErrConfig = errors.New("catalog configuration error")

// ConfigError reports a catalog that cannot be loaded as a corpus: a required
// column is missing, an id does not parse, or an id repeats.
type ConfigError struct {
	// Field is the canonical field or column involved.
	Field string
	// Row is the 1-based data row, or 0 when the error is about the header.
	Row int
	// Reason is a short human readable description.
	Reason string
	// Err is an optional underlying cause.
	Err error
}

func (e *ConfigError) Error() string {
	msg := "catalog: " + e.Reason
	if e.Field != "" {
		msg = fmt.Sprintf("catalog: field %q: %s", e.Field, e.Reason)
	}
	if e.Row > 0 {
		msg = fmt.Sprintf("%s (row %d)", msg, e.Row)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is makes errors.Is(err, ErrConfig) true for any ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
