// Animerec - Content-Based Anime Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package index

// Matrix is a dense symmetric n×n similarity matrix stored as a packed upper
// triangle. At(i, j) and At(j, i) read the same cell.
type Matrix struct {
	n     int
	cells []float64
}

func newMatrix(n int) *Matrix {
	return &Matrix{
		n:     n,
		cells: make([]float64, n*(n+1)/2),
	}
}

// Size returns n.
func (m *Matrix) Size() int {
	return m.n
}

// At returns M[i][j].
func (m *Matrix) At(i, j int) float64 {
	return m.cells[m.offset(i, j)]
}

// Row copies row i into dst (grown if needed) and returns it.
func (m *Matrix) Row(i int, dst []float64) []float64 {
	if cap(dst) < m.n {
		dst = make([]float64, m.n)
	}
	dst = dst[:m.n]
	for j := 0; j < m.n; j++ {
		dst[j] = m.cells[m.offset(i, j)]
	}
	return dst
}

// set writes M[i][j] (and therefore M[j][i]).
// Concurrent writers must touch disjoint (i, j) pairs.
func (m *Matrix) set(i, j int, v float64) {
	m.cells[m.offset(i, j)] = v
}

func (m *Matrix) offset(i, j int) int {
	if i > j {
		i, j = j, i
	}
	// Row i of the triangle starts after rows 0..i-1, which hold n, n-1, ... cells.
	return i*m.n - i*(i-1)/2 + (j - i)
}
