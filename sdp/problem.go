// Copyright ©2025 qforest. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sdp solves the semidefinite relaxation of budget-constrained
// 0/1 node selection.
//
// The boolean program over n nodes with weights 𝐰, costs 𝐜 and bound 𝑏
//
//	maximize ∑ 𝐰ᵢ𝑥ᵢ subject to ∑ 𝐜ᵢ𝑥ᵢ ≤ 𝑏, 𝑥ᵢ ∈ {0,1}
//
// is lifted to a symmetric (n+1)×(n+1) matrix variable 𝐗 with a
// distinguished reference index 0, substituting 𝑥ᵢ = ½(1 + 𝐗₀ᵢ):
//
//	maximize ∑ ½(1 + 𝐗₀ᵢ)𝐰ᵢ subject to
//	  - ∑ ½(1 + 𝐗₀ᵢ)𝐜ᵢ ≤ 𝑏
//	  - 𝐗 ⪰ 0
//	  - 𝐗ᵢᵢ = 1  (i = 0 ··· n)
//
// The PSD constraint together with the unit diagonal confines every
// off-diagonal entry to [-1,1], so the lifted variables relax {0,1} to
// the interval [0,1]. The relaxation is convex, solvable in polynomial
// time, and its optimum upper-bounds the boolean optimum.
//
// Memory is dominated by the (n+1)×(n+1) matrix, O(n²): problem sizes in
// the hundreds of nodes stay interactive, tens of thousands do not.
package sdp

import (
	"fmt"
	"math"
)

// Problem specifies one relaxation instance.
// Weights and Costs hold one entry per node in a fixed caller-defined
// order; the matrix variable is one row and column larger.
type Problem struct {
	Weights []float64 // benefit coefficient per node
	Costs   []float64 // positive cost per node
	Bound   float64   // positive total cost ceiling
}

// Dim returns the number of nodes n.
func (p *Problem) Dim() int { return len(p.Weights) }

// Validate rejects malformed instances before any backend runs.
func (p *Problem) Validate() error {
	n := len(p.Weights)
	switch {
	case n == 0:
		return fmt.Errorf("sdp: problem has no nodes")
	case len(p.Costs) != n:
		return fmt.Errorf("sdp: weights length %d does not match costs length %d", n, len(p.Costs))
	case !(p.Bound > zero) || math.IsInf(p.Bound, 1):
		return fmt.Errorf("sdp: bound must be positive and finite, got %v", p.Bound)
	}
	for i, c := range p.Costs {
		if !(c > zero) || math.IsInf(c, 1) {
			return fmt.Errorf("sdp: cost must be positive and finite at node %d, got %v", i, c)
		}
	}
	for i, w := range p.Weights {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return fmt.Errorf("sdp: weight must be finite at node %d, got %v", i, w)
		}
	}
	return nil
}

// objective evaluates ∑ ½(1 + 𝐗₀ᵢ)𝐰ᵢ for a row-0 vector x = 𝐗[0,1..n].
func (p *Problem) objective(x []float64) float64 {
	var sum float64
	for i, w := range p.Weights {
		sum += half * (one + x[i]) * w
	}
	return sum
}
