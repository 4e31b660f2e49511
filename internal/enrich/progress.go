// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

package enrich

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
)

// progressKeyPrefix is the Badger key prefix for run checkpoints.
const progressKeyPrefix = "enrich:progress:"

// Progress is a resumable checkpoint of one enrichment run.
type Progress struct {
	// Input identifies the catalog being enriched.
	Input string `json:"input"`

	// Total is the number of rows in the run.
	Total int `json:"total"`

	// Done is the length of the completed row prefix. Rows holds their
	// results in order.
	Done int         `json:"done"`
	Rows []RowResult `json:"rows"`

	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`

	StartTime time.Time `json:"start_time"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RowResult is the outcome of one row.
type RowResult struct {
	Found  bool              `json:"found"`
	Fields map[string]string `json:"fields,omitempty"`
}

// ProgressTracker persists enrichment checkpoints.
type ProgressTracker interface {
	// Save persists the checkpoint.
	Save(ctx context.Context, p *Progress) error

	// Load returns the checkpoint for input, or nil when none exists.
	Load(ctx context.Context, input string) (*Progress, error)

	// Clear removes the checkpoint for input.
	Clear(ctx context.Context, input string) error
}

// BadgerProgress implements ProgressTracker on Badger so runs resume across
// restarts.
type BadgerProgress struct {
	db *badger.DB
}

// NewBadgerProgress creates a tracker on db.
func NewBadgerProgress(db *badger.DB) *BadgerProgress {
	return &BadgerProgress{db: db}
}

func progressKey(input string) []byte {
	return []byte(progressKeyPrefix + input)
}

// Save persists p.
func (p *BadgerProgress) Save(_ context.Context, prog *Progress) error {
	data, err := json.Marshal(prog)
	if err != nil {
		return fmt.Errorf("marshal progress: %w", err)
	}
	return p.db.Update(func(txn *badger.Txn) error {
		return txn.Set(progressKey(prog.Input), data)
	})
}

// Load returns the saved checkpoint for input, or nil, nil.
func (p *BadgerProgress) Load(_ context.Context, input string) (*Progress, error) {
	var prog *Progress
	err := p.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(progressKey(input))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			prog = &Progress{}
			return json.Unmarshal(val, prog)
		})
	})
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	return prog, nil
}

// Clear removes the checkpoint for input.
func (p *BadgerProgress) Clear(_ context.Context, input string) error {
	return p.db.Update(func(txn *badger.Txn) error {
		err := txn.Delete(progressKey(input))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		return err
	})
}

// InMemoryProgress implements ProgressTracker in memory.
type InMemoryProgress struct {
	mu    sync.Mutex
	saves int
	byKey map[string]*Progress
}

// NewInMemoryProgress creates an empty in-memory tracker.
func NewInMemoryProgress() *InMemoryProgress {
	return &InMemoryProgress{byKey: make(map[string]*Progress)}
}

// Save stores a copy of prog.
func (p *InMemoryProgress) Save(_ context.Context, prog *Progress) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	cp := *prog
	cp.Rows = append([]RowResult(nil), prog.Rows...)
	p.byKey[prog.Input] = &cp
	p.saves++
	return nil
}

// Load returns a copy of the checkpoint for input.
func (p *InMemoryProgress) Load(_ context.Context, input string) (*Progress, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	prog, ok := p.byKey[input]
	if !ok {
		return nil, nil
	}
	cp := *prog
	cp.Rows = append([]RowResult(nil), prog.Rows...)
	return &cp, nil
}

// Clear removes the checkpoint for input.
func (p *InMemoryProgress) Clear(_ context.Context, input string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.byKey, input)
	return nil
}

// Saves returns how many checkpoints were written.
func (p *InMemoryProgress) Saves() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.saves
}
