// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

package recommend

import (
	"errors"
	"fmt"
)

// Sentinel errors. Typed errors below match them through errors.Is.
var (
	ErrEmptyInput      = errors.New("empty input")
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotBuilt        = errors.New("recommend: engine has no index, call Build first")
)

// EmptyInputError reports a required input that was empty.
type EmptyInputError struct {
	// Input names the empty argument, e.g. "watched_ids" or "query".
	Input string
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("recommend: %s must not be empty", e.Input)
}

// Is matches ErrEmptyInput.
func (e *EmptyInputError) Is(target error) bool {
	return target == ErrEmptyInput
}

// NotFoundError reports ids that are not in the corpus.
type NotFoundError struct {
	IDs []int
}

func (e *NotFoundError) Error() string {
	if len(e.IDs) == 1 {
		return fmt.Sprintf("recommend: item %d not found", e.IDs[0])
	}
	return fmt.Sprintf("recommend: none of the items %v were found", e.IDs)
}

// Is matches ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
