// Copyright ©2025 qforest. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sdp

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestVertexAllFit(t *testing.T) {
	p := &Problem{
		Weights: []float64{0.3, 0.7, 0.5},
		Costs:   []float64{10, 20, 30},
		Bound:   100,
	}
	s, err := (&VertexSolver{}).Solve(p)
	switch {
	case err != nil:
		t.Fatal("TestVertexAllFit:", err)
	case s.Status != Optimal:
		t.Fatal("TestVertexAllFit: not optimal:", s.Status)
	case !almostEqual(s.Row0(), []float64{1, 1, 1}, 1e-15):
		t.Fatal("TestVertexAllFit: bad row 0:", s.Row0())
	case math.Abs(s.Objective-1.5) > 1e-12:
		t.Fatal("TestVertexAllFit: bad objective:", s.Objective)
	}
}

func TestVertexFractional(t *testing.T) {
	// Ratios 1.5 and 0.5: first node funded fully, second gets the
	// remaining 1 of its cost 2.
	p := &Problem{
		Weights: []float64{3, 1},
		Costs:   []float64{2, 2},
		Bound:   3,
	}
	s, err := (&VertexSolver{}).Solve(p)
	switch {
	case err != nil:
		t.Fatal("TestVertexFractional:", err)
	case s.Status != Optimal:
		t.Fatal("TestVertexFractional: not optimal:", s.Status)
	case !almostEqual(s.Row0(), []float64{1, 0}, 1e-15): // p = [1, 0.5]
		t.Fatal("TestVertexFractional: bad row 0:", s.Row0())
	case math.Abs(s.Objective-3.5) > 1e-12:
		t.Fatal("TestVertexFractional: bad objective:", s.Objective)
	}
}

func TestVertexZeroWeightNeverSelected(t *testing.T) {
	p := &Problem{
		Weights: []float64{0, 1},
		Costs:   []float64{1, 1},
		Bound:   5,
	}
	s, err := (&VertexSolver{}).Solve(p)
	switch {
	case err != nil:
		t.Fatal("TestVertexZeroWeightNeverSelected:", err)
	case !almostEqual(s.Row0(), []float64{-1, 1}, 1e-15):
		t.Fatal("TestVertexZeroWeightNeverSelected: bad row 0:", s.Row0())
	}
}

func TestVertexBudgetExhaustion(t *testing.T) {
	// Greedy order by ratio: node 2 (0.05), node 0 (0.04), node 1 (0.03).
	// Budget 25 funds node 2 and node 0 fully, node 1 gets 5/10.
	p := &Problem{
		Weights: []float64{0.4, 0.3, 0.5},
		Costs:   []float64{10, 10, 10},
		Bound:   25,
	}
	s, err := (&VertexSolver{}).Solve(p)
	if err != nil {
		t.Fatal("TestVertexBudgetExhaustion:", err)
	}
	if !almostEqual(s.Row0(), []float64{1, 0, 1}, 1e-15) { // p = [1, 0.5, 1]
		t.Fatal("TestVertexBudgetExhaustion: bad row 0:", s.Row0())
	}
	want := 0.4 + 0.5 + 0.5*0.3
	if math.Abs(s.Objective-want) > 1e-12 {
		t.Fatal("TestVertexBudgetExhaustion: bad objective:", s.Objective)
	}
}

func TestVertexCompletionIsPSD(t *testing.T) {
	p := &Problem{
		Weights: []float64{3, 1},
		Costs:   []float64{2, 2},
		Bound:   3,
	}
	s, err := (&VertexSolver{}).Solve(p)
	if err != nil {
		t.Fatal("TestVertexCompletionIsPSD:", err)
	}

	m := s.X.SymmetricDim()
	for i := 0; i < m; i++ {
		if s.X.At(i, i) != 1 {
			t.Fatal("TestVertexCompletionIsPSD: diagonal not unit at", i)
		}
	}

	// The arrow completion is its own PSD projection.
	proj := mat.NewSymDense(m, nil)
	if err := projectPSD(proj, s.X); err != nil {
		t.Fatal("TestVertexCompletionIsPSD:", err)
	}
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			if math.Abs(proj.At(i, j)-s.X.At(i, j)) > 1e-10 {
				t.Fatalf("TestVertexCompletionIsPSD: projection moved entry (%d,%d)", i, j)
			}
		}
	}

	// Lower block carries the rank-one structure X[i,j] = yᵢyⱼ.
	y := s.Row0()
	for i := 1; i < m; i++ {
		for j := i + 1; j < m; j++ {
			if math.Abs(s.X.At(i, j)-y[i-1]*y[j-1]) > 1e-15 {
				t.Fatalf("TestVertexCompletionIsPSD: bad completion at (%d,%d)", i, j)
			}
		}
	}
}
