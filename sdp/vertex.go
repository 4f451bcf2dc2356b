// Copyright ©2025 qforest. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sdp

import (
	"slices"

	"gonum.org/v1/gonum/mat"
)

// VertexSolver solves the relaxation in closed form.
//
// Both the objective and every linear constraint of the relaxation touch
// only row 0 of the matrix variable, and for any 𝐲 ∈ [-1,1]ⁿ the arrow
// completion
//
//	𝐗 = ⎡ 1  𝐲ᵀ               ⎤
//	    ⎣ 𝐲  𝐲𝐲ᵀ + 𝚍𝚒𝚊𝚐(1-𝐲ᵢ²) ⎦
//
// is positive semidefinite with unit diagonal (it is 𝐯𝐯ᵀ plus a
// nonnegative diagonal, 𝐯 = [1 𝐲]ᵀ). The semidefinite program therefore
// collapses exactly to a linear program over 𝐩 = ½(1+𝐲) ∈ [0,1]ⁿ:
//
//	maximize ∑ 𝐰ᵢ𝐩ᵢ subject to ∑ 𝐜ᵢ𝐩ᵢ ≤ 𝑏
//
// whose optimum sits at the classic fractional-knapsack vertex: fund
// nodes by descending 𝐰ᵢ/𝐜ᵢ until the bound is exhausted, with at most
// one fractionally funded node. The vertex is then lifted back to 𝐗.
//
// The solve is exact and runs in O(n log n), which makes it the default
// primary backend; the splitting backend covers the same problems with
// general PSD machinery.
type VertexSolver struct{}

// Name identifies the backend in diagnostics.
func (*VertexSolver) Name() string { return "vertex" }

// Solve computes the optimal relaxation matrix in closed form.
func (*VertexSolver) Solve(p *Problem) (*Solution, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	n := p.Dim()

	// Nodes with nonpositive weight never improve the objective and, when
	// the bound binds, funding them is strictly suboptimal. Deterministic
	// deselection keeps the solution unique.
	order := make([]int, 0, n)
	for i, w := range p.Weights {
		if w > zero {
			order = append(order, i)
		}
	}
	// Descending wᵢ/cᵢ; cross-multiplied to avoid the division (costs are
	// validated positive). Ties break toward the lower node index.
	slices.SortStableFunc(order, func(a, b int) int {
		d := p.Weights[a]*p.Costs[b] - p.Weights[b]*p.Costs[a]
		switch {
		case d > zero:
			return -1
		case d < zero:
			return 1
		}
		return a - b
	})

	frac := make([]float64, n)
	remaining := p.Bound
	for _, i := range order {
		if c := p.Costs[i]; c <= remaining {
			frac[i] = one
			remaining -= c
		} else {
			frac[i] = remaining / c
			break
		}
	}

	y := make([]float64, n)
	for i, f := range frac {
		y[i] = two*f - one
	}

	return &Solution{
		X:         completeRow0(y),
		Objective: p.objective(y),
		Status:    Optimal,
	}, nil
}

// completeRow0 lifts a row-0 vector 𝐲 ∈ [-1,1]ⁿ to the PSD arrow
// completion with unit diagonal described on VertexSolver.
func completeRow0(y []float64) *mat.SymDense {
	n := len(y)
	x := mat.NewSymDense(n+1, nil)
	x.SetSym(0, 0, one)
	for i, yi := range y {
		x.SetSym(0, i+1, yi)
		x.SetSym(i+1, i+1, one)
		for j := i + 1; j < n; j++ {
			x.SetSym(i+1, j+1, yi*y[j])
		}
	}
	return x
}
