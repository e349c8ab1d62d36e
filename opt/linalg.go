// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opt

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// solve solves K x = r
func solve(K [][]float64, r []float64) ([]float64, bool) {
	n := len(r)
	A := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			A.Set(i, j, K[i][j])
		}
	}
	var x mat.VecDense
	if err := x.SolveVec(A, mat.NewVecDense(n, append([]float64(nil), r...))); err != nil {
		return nil, false
	}
	res := make([]float64, n)
	for i := range res {
		res[i] = x.AtVec(i)
		if math.IsNaN(res[i]) || math.IsInf(res[i], 0) {
			return nil, false
		}
	}
	return res, true
}

// posdef tells whether the symmetric part of H is positive definite
func posdef(H [][]float64) bool {
	n := len(H)
	if n == 0 {
		return true
	}
	S := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			S.SetSym(i, j, 0.5*(H[i][j]+H[j][i]))
		}
	}
	var ch mat.Cholesky
	return ch.Factorize(S)
}

// projector returns Π = I - Aᵀ(A Aᵀ)⁻¹A and the particular solution x★ = Aᵀ(A Aᵀ)⁻¹b
func projector(A [][]float64, b []float64) (Π *mat.Dense, xp []float64, ok bool) {
	m, n := len(A), len(A[0])
	Am := mat.NewDense(m, n, nil)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			Am.Set(i, j, A[i][j])
		}
	}
	var AAt, AAtInv mat.Dense
	AAt.Mul(Am, Am.T())
	if err := AAtInv.Inverse(&AAt); err != nil {
		return nil, nil, false
	}
	var pinv mat.Dense
	pinv.Mul(Am.T(), &AAtInv)
	var P mat.Dense
	P.Mul(&pinv, Am)
	Π = mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			Π.Set(i, j, -P.At(i, j))
		}
		Π.Set(i, i, 1+Π.At(i, i))
	}
	var x mat.VecDense
	x.MulVec(&pinv, mat.NewVecDense(m, append([]float64(nil), b...)))
	xp = make([]float64, n)
	for i := range xp {
		xp[i] = x.AtVec(i)
	}
	return Π, xp, true
}

// project returns Π v
func project(Π *mat.Dense, v []float64) []float64 {
	var w mat.VecDense
	w.MulVec(Π, mat.NewVecDense(len(v), append([]float64(nil), v...)))
	res := make([]float64, len(v))
	for i := range res {
		res[i] = w.AtVec(i)
	}
	return res
}

// norm returns the Euclidean norm
func norm(v []float64) float64 {
	return floats.Norm(v, 2)
}

func dot(u, v []float64) float64 {
	return floats.Dot(u, v)
}

func clone(v []float64) []float64 {
	return append([]float64(nil), v...)
}
