// Copyright ©2025 qforest. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sdp

import (
	"math"
	"strings"
	"testing"
)

func TestSplittingMatchesVertex(t *testing.T) {
	p := &Problem{
		Weights: []float64{0.8, 0.5, 0.6, 0.9},
		Costs:   []float64{50, 40, 45, 60},
		Bound:   100,
	}

	exact, err := (&VertexSolver{}).Solve(p)
	if err != nil {
		t.Fatal("TestSplittingMatchesVertex:", err)
	}
	got, err := (&SplittingSolver{}).Solve(p)
	if err != nil {
		t.Fatal("TestSplittingMatchesVertex:", err)
	}

	switch {
	case !got.Status.Succeeded():
		t.Fatal("TestSplittingMatchesVertex: bad status:", got.Status)
	case !almostEqual(got.Row0(), exact.Row0(), 5e-3):
		t.Fatal("TestSplittingMatchesVertex: row 0 mismatch:", got.Row0(), exact.Row0())
	case math.Abs(got.Objective-exact.Objective) > 5e-3:
		t.Fatal("TestSplittingMatchesVertex: objective mismatch:", got.Objective, exact.Objective)
	case got.Iterations <= 0:
		t.Fatal("TestSplittingMatchesVertex: no iterations recorded")
	}
}

func TestSplittingSlackBudget(t *testing.T) {
	// Budget covers everything: all lifted variables drift to +1.
	p := &Problem{
		Weights: []float64{1, 1},
		Costs:   []float64{1, 1},
		Bound:   10,
	}
	got, err := (&SplittingSolver{}).Solve(p)
	switch {
	case err != nil:
		t.Fatal("TestSplittingSlackBudget:", err)
	case !got.Status.Succeeded():
		t.Fatal("TestSplittingSlackBudget: bad status:", got.Status)
	case !almostEqual(got.Row0(), []float64{1, 1}, 1e-2):
		t.Fatal("TestSplittingSlackBudget: bad row 0:", got.Row0())
	}
}

func TestSplittingRespectsBudgetHalfspace(t *testing.T) {
	p := &Problem{
		Weights: []float64{0.9, 0.8, 0.7},
		Costs:   []float64{30, 40, 50},
		Bound:   60,
	}
	got, err := (&SplittingSolver{}).Solve(p)
	if err != nil {
		t.Fatal("TestSplittingRespectsBudgetHalfspace:", err)
	}
	// The returned matrix comes from the affine projection, so the lifted
	// budget constraint holds exactly (up to the final residual).
	var cost float64
	for i, c := range p.Costs {
		cost += half * (one + got.X.At(0, i+1)) * c
	}
	if cost > p.Bound+1e-6 {
		t.Fatal("TestSplittingRespectsBudgetHalfspace: lifted cost exceeds bound:", cost)
	}
}

func TestSplittingIterationLimit(t *testing.T) {
	p := &Problem{
		Weights: []float64{0.8, 0.5, 0.6, 0.9},
		Costs:   []float64{50, 40, 45, 60},
		Bound:   100,
	}
	s := &SplittingSolver{
		MaxIterations:    3,
		Tolerance:        1e-14,
		ReducedTolerance: 1e-300,
	}
	got, err := s.Solve(p)
	switch {
	case err != nil:
		t.Fatal("TestSplittingIterationLimit:", err)
	case got.Status != MaxIterations:
		t.Fatal("TestSplittingIterationLimit: want max_iterations_reached, got", got.Status)
	case got.Status.Succeeded():
		t.Fatal("TestSplittingIterationLimit: limit status must not succeed")
	case got.Iterations != 3:
		t.Fatal("TestSplittingIterationLimit: bad iteration count:", got.Iterations)
	}
}

func TestSplittingTrace(t *testing.T) {
	p := &Problem{
		Weights: []float64{1},
		Costs:   []float64{1},
		Bound:   2,
	}
	var sb strings.Builder
	s := &SplittingSolver{Log: &Logger{Level: LogLast, Msg: &sb}}
	if _, err := s.Solve(p); err != nil {
		t.Fatal("TestSplittingTrace:", err)
	}
	if !strings.Contains(sb.String(), "splitting done") {
		t.Fatal("TestSplittingTrace: missing summary line:", sb.String())
	}
}
