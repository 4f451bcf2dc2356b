// Copyright ©2025 qforest. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sdp

import "gonum.org/v1/gonum/mat"

// Backend solves one relaxation instance. Implementations are stateless
// across calls: each Solve allocates its own workspace, so a single
// backend value may serve concurrent solves.
type Backend interface {
	// Name identifies the backend in diagnostics.
	Name() string
	// Solve runs the backend on a validated problem. A non-nil error means
	// the backend could not run at all; an unusable numerical outcome is
	// reported through Solution.Status instead.
	Solve(p *Problem) (*Solution, error)
}

// Solution contains the solved relaxation matrix.
type Solution struct {
	// X is the (n+1)×(n+1) relaxation matrix. Row and column 0 belong to
	// the reference index; entries X[0,1..n] carry the lifted selection
	// variables in [-1,1].
	X *mat.SymDense

	// Objective is ∑ ½(1 + X[0,i])·wᵢ at the returned matrix.
	Objective float64

	// Status reports the numerical outcome of the solve.
	Status Status

	// Iterations performed by the backend; zero for closed-form solves.
	Iterations int
}

// IsOptimal reports whether the solve reached full precision.
func (s *Solution) IsOptimal() bool { return s.Status == Optimal }

// Row0 copies the lifted selection variables X[0,1..n].
func (s *Solution) Row0() []float64 {
	n := s.X.SymmetricDim() - 1
	x := make([]float64, n)
	for i := range x {
		x[i] = s.X.At(0, i+1)
	}
	return x
}
