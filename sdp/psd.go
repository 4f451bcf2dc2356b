// Copyright ©2025 qforest. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sdp

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

var errEigenFailed = errors.New("sdp: eigendecomposition did not converge")

// projectPSD overwrites dst with the Euclidean (Frobenius) projection of
// the symmetric matrix src onto the positive semidefinite cone:
//
//	Π(𝐀) = ∑ 𝚖𝚊𝚡(𝛌ᵢ,0)·𝐯ᵢ𝐯ᵢᵀ
//
// where 𝐀 = ∑ 𝛌ᵢ𝐯ᵢ𝐯ᵢᵀ is the spectral decomposition. The product is
// re-symmetrized entrywise to absorb floating-point drift.
func projectPSD(dst, src *mat.SymDense) error {
	m := src.SymmetricDim()

	var eig mat.EigenSym
	if !eig.Factorize(src, true) {
		return errEigenFailed
	}
	vals := eig.Values(nil)
	var vec mat.Dense
	eig.VectorsTo(&vec)

	// B = V·diag(max(λ,0)), column-scaled copy of the eigenvectors.
	scaled := mat.NewDense(m, m, nil)
	for j, lam := range vals {
		if lam < zero {
			lam = zero
		}
		for i := 0; i < m; i++ {
			scaled.Set(i, j, vec.At(i, j)*lam)
		}
	}

	var prod mat.Dense
	prod.Mul(scaled, vec.T())
	for i := 0; i < m; i++ {
		for j := i; j < m; j++ {
			dst.SetSym(i, j, half*(prod.At(i, j)+prod.At(j, i)))
		}
	}
	return nil
}
