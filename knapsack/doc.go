// Copyright ©2025 qforest. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package knapsack selects grid nodes under a budget by solving the
// semidefinite relaxation of the underlying 0/1 knapsack problem.
//
// Callers supply a benefit matrix (normalized to [0,1]), a cost matrix of
// identical shape, and a positive budget. The solver flattens both grids
// in row-major order, hands the relaxation to an ordered chain of sdp
// backends, and extracts:
//
//   - a fractional selection matrix in [0,1], floor-truncated to 3
//     decimal places so confidence is never overstated;
//   - a binary selection matrix thresholded at value > 0.5 (exactly 0.5
//     deselects; the tie-break is fixed, not configurable);
//   - selection statistics and the list of ambiguous positions whose
//     fractional value is strictly between 0.0001 and 0.99.
//
// The binary solution is not constrained to respect the budget: the
// threshold is applied after the relaxation, so total cost typically
// overshoots tight budgets by 5-15%. This is a documented property of the
// rounding policy, not a defect; Solver.RepairBudget enables a separate
// greedy repair mode for callers that need strict feasibility.
//
// A solve is a pure synchronous computation with no shared state, so
// independent solves (for example a budget sweep over one grid) can run
// on separate goroutines without coordination. Memory is dominated by the
// (n+1)×(n+1) relaxation matrix: grids of a few hundred nodes solve
// interactively, larger ones do not.
package knapsack
