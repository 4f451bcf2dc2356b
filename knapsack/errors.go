// Copyright ©2025 qforest. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package knapsack

import "errors"

// Sentinel errors for the input contract and the solve outcome. Callers
// match them with errors.Is; context added at boundaries is wrapped with
// fmt.Errorf("...: %w", Err) so matching still works.
//
// Validation order is fixed: empty input, then dimension mismatch, then
// budget. All three are rejected before any backend runs.
var (
	// ErrEmptyInput is returned when the benefits or costs matrix has no
	// rows or no columns.
	ErrEmptyInput = errors.New("knapsack: empty benefits or costs matrix")

	// ErrDimensionMismatch is returned when the benefits and costs shapes
	// differ, or when either matrix has ragged rows.
	ErrDimensionMismatch = errors.New("knapsack: benefits and costs dimensions mismatch")

	// ErrInvalidBudget is returned when the budget is not a positive
	// finite number.
	ErrInvalidBudget = errors.New("knapsack: budget must be positive")

	// ErrSolverFailure is returned when every configured backend failed to
	// reach a usable status, or when a backend produced a degenerate
	// matrix (NaN entries). The wrapped message carries the last backend's
	// status string for diagnostics.
	ErrSolverFailure = errors.New("knapsack: solver failure")
)
