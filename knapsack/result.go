// Copyright ©2025 qforest. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package knapsack

import (
	"fmt"
	"io"
	"math"

	"github.com/qforest/optimizer/sdp"
)

// Rounding-policy constants. These are contract values, not tunables:
// the truncation never rounds up so confidence is never overstated, and
// the threshold tie-break (exactly 0.5 deselects) is fixed.
const (
	truncScale      = 1000 // 3-decimal floor truncation
	selectThreshold = 0.5  // strictly greater selects
	ambiguousLow    = 0.0001
	ambiguousHigh   = 0.99
)

// AmbiguousPosition records a grid node whose fractional selection value
// is neither confidently rejected nor confidently selected. The set is
// informational only; it never alters the binary solution.
type AmbiguousPosition struct {
	Row, Col int
	Value    float64 // truncated fractional value, in (0.0001, 0.99)
	Benefit  float64
	Cost     float64
}

// Result aggregates one solve outcome.
type Result struct {
	// Status is the backend status tag: "optimal", "optimal_inaccurate",
	// or a failure string never seen here (failures surface as errors).
	Status string
	// Objective is the relaxation optimum as reported by the backend. It
	// is computed on fractional values and may differ from TotalBenefit.
	Objective float64
	// Solution is the fractional selection matrix in [0,1], floor-truncated
	// to 3 decimals, in the shape of the input grids.
	Solution [][]float64
	// Binary is the thresholded selection matrix: 1 where Solution > 0.5.
	// It is not constrained to respect the budget (see package doc).
	Binary [][]int
	// SelectedCount is the number of 1 entries in Binary.
	SelectedCount int
	// TotalBenefit is ∑ benefit·Binary over the grid, exact.
	TotalBenefit float64
	// TotalCost is ∑ cost·Binary over the grid, exact.
	TotalCost float64
	// Budget echoes the input budget.
	Budget float64
	// BudgetUtilization is TotalCost/Budget in percent.
	BudgetUtilization float64
	// Ambiguous lists positions with fractional value in (0.0001, 0.99).
	Ambiguous []AmbiguousPosition
	// Backend names the backend that produced the solution.
	Backend string
}

// truncate floors v to 3 decimal places: 0.1239 becomes 0.123, never
// 0.124.
func truncate(v float64) float64 {
	return math.Floor(v*truncScale) / truncScale
}

// extract turns a solved relaxation into a Result, applying the mapping,
// truncation, thresholding and statistics of the rounding policy.
func extract(p *Problem, sol *sdp.Solution, backend string) (*Result, error) {
	rows, cols, _ := shape(p.Benefits)

	raw := sol.Row0()
	frac := make([]float64, len(raw))
	for i, v := range raw {
		if math.IsNaN(v) {
			return nil, fmt.Errorf("%w: backend %s produced NaN at node %d", ErrSolverFailure, backend, i)
		}
		// Map [-1,1] to [0,1]; clamp first so floating-point drift just
		// outside the interval cannot floor-truncate to -0.001 or push
		// past 1.
		v = (v + 1) / 2
		if v < 0 {
			v = 0
		} else if v > 1 {
			v = 1
		}
		frac[i] = truncate(v)
	}

	res := &Result{
		Status:    sol.Status.String(),
		Objective: sol.Objective,
		Solution:  reshape(frac, rows, cols),
		Binary:    make([][]int, rows),
		Budget:    p.Budget,
		Backend:   backend,
	}

	for r := 0; r < rows; r++ {
		res.Binary[r] = make([]int, cols)
		for c := 0; c < cols; c++ {
			v := res.Solution[r][c]
			if v > selectThreshold {
				res.Binary[r][c] = 1
			}
			if v > ambiguousLow && v < ambiguousHigh {
				res.Ambiguous = append(res.Ambiguous, AmbiguousPosition{
					Row: r, Col: c,
					Value:   v,
					Benefit: p.Benefits[r][c],
					Cost:    p.Costs[r][c],
				})
			}
		}
	}

	res.recount(p)
	return res, nil
}

// recount recomputes the binary statistics from Binary and the inputs.
func (r *Result) recount(p *Problem) {
	r.SelectedCount = 0
	r.TotalBenefit = 0
	r.TotalCost = 0
	for i, row := range r.Binary {
		for j, sel := range row {
			if sel == 1 {
				r.SelectedCount++
				r.TotalBenefit += p.Benefits[i][j]
				r.TotalCost += p.Costs[i][j]
			}
		}
	}
	r.BudgetUtilization = r.TotalCost / r.Budget * 100
}

// repair greedily deselects the selected node with the worst benefit/cost
// ratio until the binary solution respects the budget. Only Binary and
// the binary statistics change; Solution, Objective and Ambiguous keep
// describing the relaxation. Ratio ties break toward the later row-major
// position.
func (r *Result) repair(p *Problem) {
	for r.TotalCost > r.Budget && r.SelectedCount > 0 {
		wr, wc := -1, -1
		var wb, wcost float64
		for i, row := range r.Binary {
			for j, sel := range row {
				if sel != 1 {
					continue
				}
				b, c := p.Benefits[i][j], p.Costs[i][j]
				if wr < 0 || b*wcost <= wb*c {
					wr, wc, wb, wcost = i, j, b, c
				}
			}
		}
		r.Binary[wr][wc] = 0
		r.recount(p)
	}
}

// WriteSummary prints the human-readable solve summary.
func (r *Result) WriteSummary(w io.Writer) {
	nodes := 0
	for _, row := range r.Binary {
		nodes += len(row)
	}
	fmt.Fprintf(w, "status: %s (backend %s)\n", r.Status, r.Backend)
	fmt.Fprintf(w, "objective: %.4f\n", r.Objective)
	fmt.Fprintf(w, "selected: %d/%d nodes\n", r.SelectedCount, nodes)
	fmt.Fprintf(w, "total benefit: %.4f\n", r.TotalBenefit)
	fmt.Fprintf(w, "total cost: %.2f (budget %.2f, utilization %.2f%%)\n",
		r.TotalCost, r.Budget, r.BudgetUtilization)
	fmt.Fprintf(w, "ambiguous positions: %d\n", len(r.Ambiguous))
}
