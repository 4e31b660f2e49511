// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

// Package filter evaluates boolean CEL expressions against ranked items.
//
// Expressions see two variables:
//
//	item   map with id, title, genres, genre_list, director, actors, plot,
//	       language, country, awards, rating, runtime, year, metascore,
//	       imdb_id, enriched
//	score  the cosine score of the candidate (double)
//
// Examples:
//
//	item.rating >= 7.5 && item.year >= 2000
//	"Drama" in item.genre_list
//	item.director != "Michael Bay" && score > 0.1
package filter

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/tomtom215/filmscout/internal/catalog"
)

// ErrInvalidExpression wraps compile errors, evaluation errors and
// non-boolean results.
var ErrInvalidExpression = errors.New("invalid filter expression")

var (
	env     *cel.Env
	envErr  error
	envOnce sync.Once
)

func getEnv() (*cel.Env, error) {
	envOnce.Do(func() {
		env, envErr = cel.NewEnv(
			cel.Variable("item", cel.MapType(cel.StringType, cel.DynType)),
			cel.Variable("score", cel.DoubleType),
			cel.CrossTypeNumericComparisons(true),
		)
	})
	return env, envErr
}

// Filter is a compiled expression. It is safe for concurrent use.
type Filter struct {
	expr string
	prg  cel.Program
}

// Compile parses and type-checks expr. The expression must produce a bool.
func Compile(expr string) (*Filter, error) {
	e, err := getEnv()
	if err != nil {
		return nil, fmt.Errorf("create CEL environment: %w", err)
	}

	ast, iss := e.Compile(expr)
	if iss != nil && iss.Err() != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidExpression, iss.Err())
	}
	out := ast.OutputType()
	if !out.IsExactType(cel.BoolType) && !out.IsExactType(cel.DynType) {
		return nil, fmt.Errorf("%w: expression must return bool, got %s", ErrInvalidExpression, out)
	}

	prg, err := e.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidExpression, err)
	}
	return &Filter{expr: expr, prg: prg}, nil
}

// String returns the source expression.
func (f *Filter) String() string {
	return f.expr
}

// Match evaluates the expression for one candidate.
//
//nolint:gocritic // hugeParam: Item is passed by value to keep it immutable
func (f *Filter) Match(it catalog.Item, score float64) (bool, error) {
	out, _, err := f.prg.Eval(map[string]any{
		"item":  itemVars(it),
		"score": score,
	})
	if err != nil {
		return false, fmt.Errorf("%w: evaluate %q: %w", ErrInvalidExpression, f.expr, err)
	}
	b, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("%w: expression returned %T, want bool", ErrInvalidExpression, out.Value())
	}
	return b, nil
}

//nolint:gocritic // hugeParam: Item is passed by value to keep it immutable
func itemVars(it catalog.Item) map[string]any {
	genreList := it.GenreList()
	if genreList == nil {
		genreList = []string{}
	}
	return map[string]any{
		"id":         int64(it.ID),
		"title":      it.Title,
		"genres":     it.Genres,
		"genre_list": genreList,
		"director":   it.Director,
		"actors":     it.Actors,
		"plot":       it.Plot,
		"language":   it.Language,
		"country":    it.Country,
		"awards":     it.Awards,
		"rating":     it.Rating,
		"runtime":    int64(it.Runtime),
		"year":       int64(it.Year),
		"metascore":  int64(it.Metascore),
		"imdb_id":    it.IMDbID,
		"enriched":   it.Enriched,
	}
}
