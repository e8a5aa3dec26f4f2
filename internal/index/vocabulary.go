// Animerec - Content-Based Anime Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package index

import (
	"math"
	"sort"
)

// Vocabulary is the term vector space shared by all items.
//
// Terms are sorted alphabetically and a term's position is its id. The idf
// uses the smoothed form ln((1+n)/(1+df)) + 1, so a term present in every
// document still carries weight 1.
type Vocabulary struct {
	terms []string
	ids   map[string]int
	df    []int
	idf   []float64
	docs  int
}

// newVocabulary builds the vocabulary from tokenized documents.
func newVocabulary(docs [][]string) *Vocabulary {
	dfByTerm := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]struct{}, len(doc))
		for _, term := range doc {
			if _, ok := seen[term]; ok {
				continue
			}
			seen[term] = struct{}{}
			dfByTerm[term]++
		}
	}

	terms := make([]string, 0, len(dfByTerm))
	for term := range dfByTerm {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	v := &Vocabulary{
		terms: terms,
		ids:   make(map[string]int, len(terms)),
		df:    make([]int, len(terms)),
		idf:   make([]float64, len(terms)),
		docs:  len(docs),
	}

	n := float64(len(docs))
	for id, term := range terms {
		v.ids[term] = id
		v.df[id] = dfByTerm[term]
		v.idf[id] = math.Log((1+n)/(1+float64(dfByTerm[term]))) + 1
	}

	return v
}

// Len returns the number of terms.
func (v *Vocabulary) Len() int {
	return len(v.terms)
}

// Terms returns a copy of the terms in id order.
func (v *Vocabulary) Terms() []string {
	out := make([]string, len(v.terms))
	copy(out, v.terms)
	return out
}

// ID returns the id of term and whether it is in the vocabulary.
func (v *Vocabulary) ID(term string) (int, bool) {
	id, ok := v.ids[term]
	return id, ok
}

// Term returns the term with the given id.
func (v *Vocabulary) Term(id int) string {
	return v.terms[id]
}

// IDF returns the inverse document frequency of the term id.
func (v *Vocabulary) IDF(id int) float64 {
	return v.idf[id]
}

// DocumentFrequency returns how many items contain the term id.
func (v *Vocabulary) DocumentFrequency(id int) int {
	return v.df[id]
}

// Vectorize converts tokens into an L2-normalized tf-idf vector.
// Tokens outside the vocabulary are ignored.
func (v *Vocabulary) Vectorize(tokens []string) Vector {
	counts := make(map[int]int, len(tokens))
	for _, tok := range tokens {
		if id, ok := v.ids[tok]; ok {
			counts[id]++
		}
	}

	vec := Vector{
		Terms:   make([]int, 0, len(counts)),
		Weights: make([]float64, 0, len(counts)),
	}
	for id := range counts {
		vec.Terms = append(vec.Terms, id)
	}
	sort.Ints(vec.Terms)
	for _, id := range vec.Terms {
		vec.Weights = append(vec.Weights, float64(counts[id])*v.idf[id])
	}

	vec.normalize()
	return vec
}
