// Animerec - Content-Based Anime Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package index

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultMinTokenLength is the shortest token (in runes) kept by the tokenizer.
const DefaultMinTokenLength = 2

// Tokenizer splits genre text into vocabulary terms.
//
// Text is lowercased and split on every rune that is not a letter, digit or
// underscore, so "Sci-Fi, Slice of Life" yields sci, fi, slice, life.
type Tokenizer struct {
	stopWords map[string]struct{}
	minLength int
}

// NewTokenizer creates a tokenizer. A minLength below 1 falls back to
// DefaultMinTokenLength.
func NewTokenizer(stopWords []string, minLength int) *Tokenizer {
	if minLength < 1 {
		minLength = DefaultMinTokenLength
	}

	sw := make(map[string]struct{}, len(stopWords))
	for _, w := range stopWords {
		sw[strings.ToLower(w)] = struct{}{}
	}

	return &Tokenizer{
		stopWords: sw,
		minLength: minLength,
	}
}

// Tokenize returns the terms of text in order of appearance, duplicates kept.
func (t *Tokenizer) Tokenize(text string) []string {
	if text == "" {
		return nil
	}

	fields := strings.FieldsFunc(strings.ToLower(text), isSeparator)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if utf8.RuneCountInString(f) < t.minLength {
			continue
		}
		if _, stop := t.stopWords[f]; stop {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// IsStopWord reports whether term is excluded from the vocabulary.
func (t *Tokenizer) IsStopWord(term string) bool {
	_, ok := t.stopWords[strings.ToLower(term)]
	return ok
}

func isSeparator(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
}
