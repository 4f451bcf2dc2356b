// Copyright ©2025 qforest. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package knapsack

// Flattening order is row-major and fixed: node i of the flat vector is
// grid position (i/cols, i%cols). flatten and reshape are exact inverses
// so solution vectors round-trip onto the input shape unambiguously.

// shape returns the (rows, cols) of m. ok is false for ragged rows;
// an empty matrix (no rows, or no columns in the first row) reports
// rows == 0 or cols == 0 with ok true.
func shape(m [][]float64) (rows, cols int, ok bool) {
	rows = len(m)
	if rows == 0 {
		return 0, 0, true
	}
	cols = len(m[0])
	for _, row := range m[1:] {
		if len(row) != cols {
			return rows, cols, false
		}
	}
	return rows, cols, true
}

// flatten copies m into a length rows×cols vector in row-major order.
func flatten(m [][]float64) []float64 {
	rows, cols, _ := shape(m)
	v := make([]float64, 0, rows*cols)
	for _, row := range m {
		v = append(v, row...)
	}
	return v
}

// reshape maps a row-major vector of length rows×cols back onto a matrix.
func reshape(v []float64, rows, cols int) [][]float64 {
	m := make([][]float64, rows)
	for r := range m {
		m[r] = v[r*cols : (r+1)*cols : (r+1)*cols]
	}
	return m
}
