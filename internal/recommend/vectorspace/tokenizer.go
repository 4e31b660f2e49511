// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

package vectorspace

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// minTokenRunes is the shortest token kept. Single characters carry no
// signal ("a", "1").
const minTokenRunes = 2

// Tokenize lowercases text and splits it into runs of Unicode letters,
// numbers and underscores. Runs shorter than two runes are dropped.
// "Sci-Fi" yields "sci", "fi"; "excellent_rating" stays whole.
func Tokenize(text string) []string {
	text = strings.ToLower(text)

	var tokens []string
	start := -1
	for i, r := range text {
		if isWordRune(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			tokens = appendToken(tokens, text[start:i])
			start = -1
		}
	}
	if start >= 0 {
		tokens = appendToken(tokens, text[start:])
	}
	return tokens
}

func appendToken(tokens []string, tok string) []string {
	if utf8.RuneCountInString(tok) >= minTokenRunes {
		tokens = append(tokens, tok)
	}
	return tokens
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// analyzer turns a document into the list of terms counted by the indexer:
// tokens, minus stop words, followed by the n-grams of the remaining tokens.
type analyzer struct {
	stopWords bool
	ngramMax  int
}

func (a analyzer) terms(doc string) []string {
	tokens := Tokenize(doc)
	if a.stopWords {
		kept := tokens[:0]
		for _, t := range tokens {
			if !IsStopWord(t) {
				kept = append(kept, t)
			}
		}
		tokens = kept
	}

	if a.ngramMax <= 1 || len(tokens) < 2 {
		return tokens
	}

	terms := make([]string, 0, len(tokens)*a.ngramMax)
	terms = append(terms, tokens...)
	for n := 2; n <= a.ngramMax; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			terms = append(terms, strings.Join(tokens[i:i+n], " "))
		}
	}
	return terms
}
