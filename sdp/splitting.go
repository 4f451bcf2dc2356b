// Copyright ©2025 qforest. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sdp

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Default splitting parameters. Zero-valued fields on SplittingSolver
// fall back to these.
const (
	// DefaultMaxIterations bounds the ADMM iteration count.
	DefaultMaxIterations = 20000
	// DefaultTolerance is the relative residual required for Optimal.
	DefaultTolerance = 1e-7
	// DefaultReducedTolerance is the relative residual accepted as
	// OptimalInaccurate once the iteration limit is reached.
	DefaultReducedTolerance = 1e-4
	// DefaultPenalty is the ADMM penalty parameter ρ.
	DefaultPenalty = 1.0
	// DefaultRelaxation is the over-relaxation factor α ∈ [1,2).
	DefaultRelaxation = 1.6
)

// SplittingSolver solves the relaxation with ADMM operator splitting.
//
// The problem is split between the affine set
//
//	𝒜 = { 𝐗 : 𝐗ᵢᵢ = 1, ∑ 𝐜ᵢ𝐗₀ᵢ ≤ 𝑟 }   (𝑟 = 2𝑏 - ∑𝐜ᵢ)
//
// and the PSD cone 𝒮₊, with the linear objective folded into the
// 𝒜-side proximal step:
//
//	𝐗ᵏ⁺¹ = Π𝒜(𝐙ᵏ - 𝐔ᵏ + 𝐆/ρ)
//	𝐙ᵏ⁺¹ = Π𝒮₊(α𝐗ᵏ⁺¹ + (1-α)𝐙ᵏ + 𝐔ᵏ)
//	𝐔ᵏ⁺¹ = 𝐔ᵏ + α𝐗ᵏ⁺¹ + (1-α)𝐙ᵏ - 𝐙ᵏ⁺¹
//
// where 𝐆 carries the objective gradient on row/column 0 and Π𝒜 is exact
// because the diagonal and the halfspace touch disjoint entries. The
// iteration stops when both the primal residual ‖𝐗-𝐙‖꜀ and the dual
// residual ρ‖𝐙ᵏ⁺¹-𝐙ᵏ‖꜀ fall below Tolerance in relative terms.
//
// Each Solve call allocates its own workspace, so one solver value may be
// shared across goroutines as long as Log.Msg is thread-safe.
type SplittingSolver struct {
	MaxIterations    int     // iteration limit, DefaultMaxIterations when 0
	Tolerance        float64 // residual for Optimal, DefaultTolerance when 0
	ReducedTolerance float64 // residual for OptimalInaccurate, DefaultReducedTolerance when 0
	Penalty          float64 // ADMM penalty ρ, DefaultPenalty when 0
	Relaxation       float64 // over-relaxation α, DefaultRelaxation when 0
	Log              *Logger // optional iteration trace
}

// Name identifies the backend in diagnostics.
func (*SplittingSolver) Name() string { return "splitting" }

// Solve runs the ADMM iteration on a validated problem.
func (s *SplittingSolver) Solve(p *Problem) (*Solution, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	maxIter := s.MaxIterations
	if maxIter <= 0 {
		maxIter = DefaultMaxIterations
	}
	tol := s.Tolerance
	if tol <= zero {
		tol = DefaultTolerance
	}
	reduced := s.ReducedTolerance
	if reduced <= zero {
		reduced = DefaultReducedTolerance
	}
	rho := s.Penalty
	if rho <= zero {
		rho = DefaultPenalty
	}
	alpha := s.Relaxation
	if alpha <= zero {
		alpha = DefaultRelaxation
	}

	n := p.Dim()
	m := n + 1

	// Halfspace data in row-0 coordinates: ∑ ½(1+𝐗₀ᵢ)𝐜ᵢ ≤ 𝑏 ⇔ ∑ 𝐜ᵢ𝐗₀ᵢ ≤ 𝑟.
	r := two * p.Bound
	cc := zero
	for _, c := range p.Costs {
		r -= c
		cc += c * c
	}

	// Objective gradient step on row 0: ⟨𝐆,𝐗⟩ = ∑ ½𝐰ᵢ𝐗₀ᵢ with the
	// symmetric entry counted twice, so 𝐆₀ᵢ = ¼𝐰ᵢ.
	grad := make([]float64, n)
	for i, w := range p.Weights {
		grad[i] = w / (4 * rho)
	}

	x := mat.NewSymDense(m, nil)
	z := mat.NewSymDense(m, nil)
	zp := mat.NewSymDense(m, nil)
	u := mat.NewSymDense(m, nil)
	w := mat.NewSymDense(m, nil) // Π𝒮₊ argument / scratch

	// Warm start at the affine-feasible identity.
	for i := 0; i < m; i++ {
		z.SetSym(i, i, one)
	}

	status := MaxIterations
	res := math.Inf(1)
	iter := 0

	every := 1
	if s.Log.enable(LogEval) {
		every = s.Log.every()
	}

	for iter = 1; iter <= maxIter; iter++ {
		// X-update: affine projection of Z - U + G/ρ.
		for i := 0; i < m; i++ {
			for j := i; j < m; j++ {
				x.SetSym(i, j, z.At(i, j)-u.At(i, j))
			}
			x.SetSym(i, i, one)
		}
		dot := zero
		for i, c := range p.Costs {
			v := x.At(0, i+1) + grad[i]
			x.SetSym(0, i+1, v)
			dot += c * v
		}
		if dot > r {
			t := (dot - r) / cc
			for i, c := range p.Costs {
				x.SetSym(0, i+1, x.At(0, i+1)-t*c)
			}
		}

		// Relaxed point α𝐗 + (1-α)𝐙, then Z-update and dual update.
		zp.CopySym(z)
		for i := 0; i < m; i++ {
			for j := i; j < m; j++ {
				h := alpha*x.At(i, j) + (one-alpha)*z.At(i, j)
				w.SetSym(i, j, h+u.At(i, j))
			}
		}
		if err := projectPSD(z, w); err != nil {
			status = NumericError
			break
		}
		for i := 0; i < m; i++ {
			for j := i; j < m; j++ {
				h := alpha*x.At(i, j) + (one-alpha)*zp.At(i, j)
				u.SetSym(i, j, u.At(i, j)+h-z.At(i, j))
			}
		}

		// Relative primal/dual residuals.
		var pri, dual, nx, nz, nu float64
		for i := 0; i < m; i++ {
			for j := i; j < m; j++ {
				c := two
				if i == j {
					c = one
				}
				dx := x.At(i, j) - z.At(i, j)
				dz := z.At(i, j) - zp.At(i, j)
				pri += c * dx * dx
				dual += c * dz * dz
				nx += c * x.At(i, j) * x.At(i, j)
				nz += c * z.At(i, j) * z.At(i, j)
				nu += c * u.At(i, j) * u.At(i, j)
			}
		}
		pri = math.Sqrt(pri) / (one + math.Sqrt(math.Max(nx, nz)))
		dual = rho * math.Sqrt(dual) / (one + rho*math.Sqrt(nu))
		res = math.Max(pri, dual)

		if s.Log.enable(LogEval) && iter%every == 0 {
			s.Log.log("splitting iter=%d pri=%.3e dual=%.3e\n", iter, pri, dual)
		}

		if math.IsNaN(res) {
			status = NumericError
			break
		}
		if res < tol {
			status = Optimal
			break
		}
	}

	if status == MaxIterations && res < reduced {
		status = OptimalInaccurate
	}
	if iter > maxIter {
		iter = maxIter
	}

	if s.Log.enable(LogLast) {
		s.Log.log("splitting done iter=%d res=%.3e status=%s\n", iter, res, status)
	}

	row := make([]float64, n)
	for i := range row {
		row[i] = x.At(0, i+1)
	}

	return &Solution{
		X:          x,
		Objective:  p.objective(row),
		Status:     status,
		Iterations: iter,
	}, nil
}
