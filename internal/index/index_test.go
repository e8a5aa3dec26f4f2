// Animerec - Content-Based Anime Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package index

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const epsilon = 1e-9

func sampleItems() []Item {
	return []Item{
		{Name: "A", Genre: "Action Adventure", Rating: 8.0},
		{Name: "B", Genre: "Action", Rating: 7.5},
		{Name: "C", Genre: "Romance", Rating: 6.0},
	}
}

func buildIndex(t *testing.T, items []Item) *Index {
	t.Helper()
	idx, err := Build(context.Background(), items, DefaultOptions())
	require.NoError(t, err)
	return idx
}

func TestBuildEmptyCatalog(t *testing.T) {
	t.Parallel()

	_, err := Build(context.Background(), nil, DefaultOptions())
	require.ErrorIs(t, err, ErrEmptyCatalog)
}

func TestBuildCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Build(ctx, sampleItems(), DefaultOptions())
	require.ErrorIs(t, err, context.Canceled)
}

func TestVocabularyIDF(t *testing.T) {
	t.Parallel()

	idx := buildIndex(t, sampleItems())
	vocab := idx.Vocabulary()

	assert.Equal(t, []string{"action", "adventure", "romance"}, vocab.Terms())

	id, ok := vocab.ID("action")
	require.True(t, ok)
	assert.Equal(t, 2, vocab.DocumentFrequency(id))
	assert.InDelta(t, math.Log(4.0/3.0)+1, vocab.IDF(id), epsilon)

	id, ok = vocab.ID("romance")
	require.True(t, ok)
	assert.Equal(t, 1, vocab.DocumentFrequency(id))
	assert.InDelta(t, math.Log(2)+1, vocab.IDF(id), epsilon)

	_, ok = vocab.ID("horror")
	assert.False(t, ok)
}

func TestVectorsAreUnitLength(t *testing.T) {
	t.Parallel()

	idx := buildIndex(t, sampleItems())
	for i := 0; i < idx.Len(); i++ {
		assert.InDelta(t, 1.0, idx.Vector(i).Norm(), epsilon, "row %d", i)
	}
}

func TestSimilarityExample(t *testing.T) {
	t.Parallel()

	idx := buildIndex(t, sampleItems())

	idfAction := math.Log(4.0/3.0) + 1
	idfAdventure := math.Log(2) + 1
	want := idfAction / math.Sqrt(idfAction*idfAction+idfAdventure*idfAdventure)

	assert.InDelta(t, want, idx.Similarity(0, 1), epsilon)
	assert.Equal(t, 0.0, idx.Similarity(0, 2))
	assert.Equal(t, 0.0, idx.Similarity(1, 2))
	assert.Greater(t, idx.Similarity(0, 1), idx.Similarity(0, 2))
}

func TestSimilaritySymmetricAndBounded(t *testing.T) {
	t.Parallel()

	items := []Item{
		{Name: "Naruto", Genre: "Action, Adventure, Comedy, Martial Arts, Shounen"},
		{Name: "Bleach", Genre: "Action, Adventure, Comedy, Shounen, Supernatural"},
		{Name: "Clannad", Genre: "Comedy, Drama, Romance, School, Slice of Life"},
		{Name: "K-On!", Genre: "Comedy, Music, School, Slice of Life"},
		{Name: "Unknown", Genre: ""},
		{Name: "Steins;Gate", Genre: "Sci-Fi, Thriller"},
	}
	idx := buildIndex(t, items)

	for i := 0; i < idx.Len(); i++ {
		row := idx.Row(i)
		require.Len(t, row, idx.Len())
		for j := 0; j < idx.Len(); j++ {
			s := idx.Similarity(i, j)
			assert.Equal(t, s, idx.Similarity(j, i), "M[%d][%d]", i, j)
			assert.Equal(t, s, row[j])
			assert.GreaterOrEqual(t, s, 0.0)
			assert.LessOrEqual(t, s, 1.0)
		}
	}
}

func TestSelfSimilarity(t *testing.T) {
	t.Parallel()

	items := append(sampleItems(), Item{Name: "D", Genre: ""}, Item{Name: "E", Genre: "the of"})
	idx := buildIndex(t, items)

	for i := 0; i < 3; i++ {
		assert.Equal(t, 1.0, idx.Similarity(i, i), "row %d", i)
		for j := 0; j < idx.Len(); j++ {
			assert.LessOrEqual(t, idx.Similarity(i, j), idx.Similarity(i, i))
		}
	}

	// Empty and stop-word-only genres produce zero vectors.
	for _, i := range []int{3, 4} {
		assert.True(t, idx.Vector(i).IsZero())
		for j := 0; j < idx.Len(); j++ {
			assert.Equal(t, 0.0, idx.Similarity(i, j), "M[%d][%d]", i, j)
		}
	}
	assert.Equal(t, 2, idx.Stats().ZeroVectors)
}

func TestLookupFirstMatch(t *testing.T) {
	t.Parallel()

	items := []Item{
		{Name: "Hunter x Hunter", Genre: "Action Adventure", Rating: 8.4},
		{Name: "Other", Genre: "Drama"},
		{Name: "Hunter x Hunter", Genre: "Action Adventure Fantasy", Rating: 9.1},
	}
	idx := buildIndex(t, items)

	i, ok := idx.Lookup("Hunter x Hunter")
	require.True(t, ok)
	assert.Equal(t, 0, i)

	_, ok = idx.Lookup("hunter x hunter")
	assert.False(t, ok, "lookup is case-sensitive")

	assert.Equal(t, 1, idx.Stats().DuplicateRows)
}

func TestItemsIsACopy(t *testing.T) {
	t.Parallel()

	src := sampleItems()
	idx := buildIndex(t, src)

	src[0].Name = "mutated"
	assert.Equal(t, "A", idx.Item(0).Name)

	items := idx.Items()
	items[1].Name = "mutated"
	assert.Equal(t, "B", idx.Item(1).Name)
}

func TestCandidatesAndQueryVector(t *testing.T) {
	t.Parallel()

	idx := buildIndex(t, sampleItems())

	q := idx.QueryVector("ACTION")
	require.False(t, q.IsZero())
	assert.Equal(t, []int{0, 1}, idx.Candidates(q))

	q = idx.QueryVector("Romance, Horror")
	assert.Equal(t, []int{2}, idx.Candidates(q))

	q = idx.QueryVector("Horror")
	assert.True(t, q.IsZero())
	assert.Nil(t, idx.Candidates(q))

	assert.Equal(t, []int{0}, idx.Postings("adventure"))
	assert.Nil(t, idx.Postings("horror"))
}

func TestBuildWorkerCountsAgree(t *testing.T) {
	t.Parallel()

	genres := []string{"Action", "Comedy", "Drama", "Romance", "Sci-Fi", "Mecha", "School"}
	items := make([]Item, 60)
	for i := range items {
		items[i] = Item{
			Name:  fmt.Sprintf("item-%d", i),
			Genre: genres[i%len(genres)] + " " + genres[(i*3)%len(genres)],
		}
	}

	serial, err := Build(context.Background(), items, Options{Workers: 1})
	require.NoError(t, err)
	parallel, err := Build(context.Background(), items, Options{Workers: 8})
	require.NoError(t, err)

	for i := 0; i < len(items); i++ {
		assert.Equal(t, serial.Row(i), parallel.Row(i), "row %d", i)
	}
}

func TestMatrixOffsets(t *testing.T) {
	t.Parallel()

	m := newMatrix(4)
	seen := make(map[int]bool)
	for i := 0; i < 4; i++ {
		for j := i; j < 4; j++ {
			off := m.offset(i, j)
			assert.False(t, seen[off], "offset %d reused at (%d,%d)", off, i, j)
			seen[off] = true
			assert.Equal(t, off, m.offset(j, i))
		}
	}
	assert.Len(t, seen, 10)

	m.set(3, 1, 0.5)
	assert.Equal(t, 0.5, m.At(1, 3))
	assert.Equal(t, 4, m.Size())
}

func TestCosine(t *testing.T) {
	t.Parallel()

	a := Vector{Terms: []int{0, 2}, Weights: []float64{3, 4}}
	b := Vector{Terms: []int{2}, Weights: []float64{2}}
	var zero Vector

	assert.InDelta(t, 0.8, Cosine(a, b), epsilon)
	assert.InDelta(t, 1.0, Cosine(a, a), epsilon)
	assert.Equal(t, 0.0, Cosine(a, zero))
	assert.Equal(t, 0.0, Cosine(zero, zero))
	assert.InDelta(t, 8.0, Dot(a, b), epsilon)
}
