// Copyright ©2025 qforest. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package knapsack

import (
	"fmt"
	"math"

	"github.com/qforest/optimizer/sdp"
)

// Problem bundles the inputs of one selection solve. All fields are
// treated as immutable: the solver never writes into the matrices.
type Problem struct {
	// Benefits holds the normalized benefit per node, expected in [0,1]
	// (not enforced beyond finiteness).
	Benefits [][]float64
	// Costs holds the positive cost per node, same shape as Benefits.
	Costs [][]float64
	// Budget is the total cost ceiling for the selection.
	Budget float64
}

// Validate rejects malformed inputs before any solve attempt.
// Checks run in documented order: ErrEmptyInput, ErrDimensionMismatch,
// ErrInvalidBudget.
func (p *Problem) Validate() error {
	br, bc, bok := shape(p.Benefits)
	cr, cc, cok := shape(p.Costs)
	switch {
	case br == 0 || bc == 0 || cr == 0 || cc == 0:
		return ErrEmptyInput
	case !bok || !cok:
		return fmt.Errorf("%w: ragged rows", ErrDimensionMismatch)
	case br != cr || bc != cc:
		return fmt.Errorf("%w: benefits (%d,%d) vs costs (%d,%d)",
			ErrDimensionMismatch, br, bc, cr, cc)
	case !(p.Budget > 0) || math.IsInf(p.Budget, 1):
		return fmt.Errorf("%w: got %v", ErrInvalidBudget, p.Budget)
	}
	return nil
}

// relaxation assembles the SDP instance over the row-major flattening of
// the grids. Must be called on a validated problem.
func (p *Problem) relaxation() *sdp.Problem {
	return &sdp.Problem{
		Weights: flatten(p.Benefits),
		Costs:   flatten(p.Costs),
		Bound:   p.Budget,
	}
}
