// Copyright ©2025 qforest. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package knapsack

import (
	"fmt"
	"io"

	"github.com/qforest/optimizer/sdp"
)

// DefaultBackends returns the standard backend preference order: the
// closed-form vertex backend first (exact for this problem class), the
// ADMM splitting backend as the general PSD fallback.
func DefaultBackends() []sdp.Backend {
	return []sdp.Backend{
		&sdp.VertexSolver{},
		&sdp.SplittingSolver{},
	}
}

// Solver runs the relaxation through an ordered backend chain. The zero
// value solves with DefaultBackends and no repair. A Solver holds no
// per-solve state, so one value may serve concurrent solves as long as
// Trace is nil or thread-safe.
type Solver struct {
	// Backends are tried in order until one reports a usable status.
	// Empty means DefaultBackends().
	Backends []sdp.Backend
	// RepairBudget enables the opt-in strict-feasibility mode: selected
	// nodes are greedily dropped by worst benefit/cost ratio until the
	// binary solution respects the budget. Off by default; the documented
	// default behavior lets the thresholded solution overshoot.
	RepairBudget bool
	// Trace receives a per-solve summary when non-nil.
	Trace io.Writer
}

// Solve validates the problem, runs the backend chain and extracts the
// selection result. Input-contract violations surface as ErrEmptyInput,
// ErrDimensionMismatch or ErrInvalidBudget before any backend runs; an
// exhausted backend chain surfaces as ErrSolverFailure wrapping the last
// backend's status string.
func (s *Solver) Solve(p *Problem) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	backends := s.Backends
	if len(backends) == 0 {
		backends = DefaultBackends()
	}

	relax := p.relaxation()

	var sol *sdp.Solution
	var name, last string
	for _, b := range backends {
		got, err := b.Solve(relax)
		switch {
		case err != nil:
			last = err.Error()
		case !got.Status.Succeeded():
			last = got.Status.String()
		default:
			sol, name = got, b.Name()
		}
		if sol != nil {
			break
		}
	}
	if sol == nil {
		return nil, fmt.Errorf("%w: %s", ErrSolverFailure, last)
	}

	res, err := extract(p, sol, name)
	if err != nil {
		return nil, err
	}
	if s.RepairBudget {
		res.repair(p)
	}
	if s.Trace != nil {
		res.WriteSummary(s.Trace)
	}
	return res, nil
}
