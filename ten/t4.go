// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ten

import "math"

// T4 is a fourth order tensor in 3D; e.g. ∂σ/∂F or ∂P/∂F
type T4 [3][3][3][3]float64

// DyadIJKL returns c_ijkl = a_ij b_kl
func DyadIJKL(a, b T2) (c T4) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					c[i][j][k][l] = a[i][j] * b[k][l]
				}
			}
		}
	}
	return
}

// DyadIKJL returns c_ijkl = a_ik b_jl
func DyadIKJL(a, b T2) (c T4) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					c[i][j][k][l] = a[i][k] * b[j][l]
				}
			}
		}
	}
	return
}

// DyadILJK returns c_ijkl = a_il b_jk
func DyadILJK(a, b T2) (c T4) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					c[i][j][k][l] = a[i][l] * b[j][k]
				}
			}
		}
	}
	return
}

// Add returns a + b
func (a T4) Add(b T4) (c T4) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					c[i][j][k][l] = a[i][j][k][l] + b[i][j][k][l]
				}
			}
		}
	}
	return
}

// Sub returns a - b
func (a T4) Sub(b T4) (c T4) {
	return a.Add(b.Scale(-1))
}

// Scale returns s * a
func (a T4) Scale(s float64) (c T4) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					c[i][j][k][l] = s * a[i][j][k][l]
				}
			}
		}
	}
	return
}

// MajorTranspose returns c_ijkl = a_klij
func (a T4) MajorTranspose() (c T4) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					c[i][j][k][l] = a[k][l][i][j]
				}
			}
		}
	}
	return
}

// Contract returns c_ij = a_ijkl b_kl
func (a T4) Contract(b T2) (c T2) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					c[i][j] += a[i][j][k][l] * b[k][l]
				}
			}
		}
	}
	return
}

// NormInf returns the maximum absolute component
func (a T4) NormInf() (res float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					res = math.Max(res, math.Abs(a[i][j][k][l]))
				}
			}
		}
	}
	return
}

// Flat returns the 9x9 matrix with row 3i+j and column 3k+l
func (a T4) Flat() [][]float64 {
	m := make([][]float64, 9)
	for r := range m {
		m[r] = make([]float64, 9)
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					m[3*i+j][3*k+l] = a[i][j][k][l]
				}
			}
		}
	}
	return m
}
