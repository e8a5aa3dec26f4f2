// Animerec - Content-Based Anime Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	t.Parallel()

	tok := NewTokenizer(EnglishStopWords, DefaultMinTokenLength)

	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", nil},
		{"comma separated", "Action, Adventure", []string{"action", "adventure"}},
		{"hyphen splits", "Sci-Fi", []string{"sci", "fi"}},
		{"stop words removed", "Slice of Life", []string{"slice", "life"}},
		{"single runes dropped", "a b Action", []string{"action"}},
		{"duplicates kept", "Action Action", []string{"action", "action"}},
		{"underscore joins", "Super_Power", []string{"super_power"}},
		{"digits kept", "Shounen 2000", []string{"shounen", "2000"}},
		{"only stop words", "the of and", []string{}},
		{"unicode letters", "Mahō Shōjo", []string{"mahō", "shōjo"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := tok.Tokenize(tt.text)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTokenizerMinLength(t *testing.T) {
	t.Parallel()

	tok := NewTokenizer(nil, 4)
	assert.Equal(t, []string{"drama", "music"}, tok.Tokenize("Drama War Music"))

	fallback := NewTokenizer(nil, 0)
	assert.Equal(t, []string{"ai", "go"}, fallback.Tokenize("ai x go"))
}

func TestIsStopWord(t *testing.T) {
	t.Parallel()

	tok := NewTokenizer([]string{"The", "of"}, DefaultMinTokenLength)
	assert.True(t, tok.IsStopWord("the"))
	assert.True(t, tok.IsStopWord("OF"))
	assert.False(t, tok.IsStopWord("action"))
}
