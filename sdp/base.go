// Copyright ©2025 qforest. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sdp

const (
	zero = 0.0
	half = 0.5
	one  = 1.0
	two  = 2.0
)

// Status reports the outcome of a relaxation solve.
type Status int

const (
	// Optimal converged to the requested tolerance.
	Optimal Status = iota
	// OptimalInaccurate converged only to the reduced tolerance.
	OptimalInaccurate
	// MaxIterations iteration limit reached before any tolerance was met.
	MaxIterations
	// NumericError NaN encountered or eigendecomposition failed mid-solve.
	NumericError
	// Infeasible no matrix satisfies the constraint set.
	Infeasible
)

// String renders the status as the tag reported to callers.
func (s Status) String() string {
	switch s {
	case Optimal:
		return "optimal"
	case OptimalInaccurate:
		return "optimal_inaccurate"
	case MaxIterations:
		return "max_iterations_reached"
	case NumericError:
		return "numeric_error"
	case Infeasible:
		return "infeasible"
	}
	return "unknown"
}

// Succeeded reports whether the solve produced a usable relaxation matrix.
func (s Status) Succeeded() bool {
	return s == Optimal || s == OptimalInaccurate
}
