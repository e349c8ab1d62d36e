// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ten implements fixed-size second and fourth order tensors in 3D
package ten

import "math"

// T2 is a second order tensor in 3D; e.g. F, σ, P, S
type T2 [3][3]float64

// I2 returns the second order identity
func I2() T2 {
	return T2{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// Diag returns a diagonal tensor
func Diag(a, b, c float64) T2 {
	return T2{{a, 0, 0}, {0, b, 0}, {0, 0, c}}
}

// Add returns a + b
func (a T2) Add(b T2) (c T2) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			c[i][j] = a[i][j] + b[i][j]
		}
	}
	return
}

// Sub returns a - b
func (a T2) Sub(b T2) (c T2) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			c[i][j] = a[i][j] - b[i][j]
		}
	}
	return
}

// Scale returns s * a
func (a T2) Scale(s float64) (c T2) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			c[i][j] = s * a[i][j]
		}
	}
	return
}

// Dot returns the single contraction c_ij = a_ik b_kj
func (a T2) Dot(b T2) (c T2) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				c[i][j] += a[i][k] * b[k][j]
			}
		}
	}
	return
}

// Transpose returns aᵀ
func (a T2) Transpose() (c T2) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			c[i][j] = a[j][i]
		}
	}
	return
}

// Det returns the determinant
func (a T2) Det() float64 {
	return a[0][0]*(a[1][1]*a[2][2]-a[1][2]*a[2][1]) -
		a[0][1]*(a[1][0]*a[2][2]-a[1][2]*a[2][0]) +
		a[0][2]*(a[1][0]*a[2][1]-a[1][1]*a[2][0])
}

// Inv returns the inverse computed with cofactors
//  Note: the caller must check that Det() is not zero
func (a T2) Inv() (c T2) {
	det := a.Det()
	c[0][0] = (a[1][1]*a[2][2] - a[1][2]*a[2][1]) / det
	c[0][1] = (a[0][2]*a[2][1] - a[0][1]*a[2][2]) / det
	c[0][2] = (a[0][1]*a[1][2] - a[0][2]*a[1][1]) / det
	c[1][0] = (a[1][2]*a[2][0] - a[1][0]*a[2][2]) / det
	c[1][1] = (a[0][0]*a[2][2] - a[0][2]*a[2][0]) / det
	c[1][2] = (a[0][2]*a[1][0] - a[0][0]*a[1][2]) / det
	c[2][0] = (a[1][0]*a[2][1] - a[1][1]*a[2][0]) / det
	c[2][1] = (a[0][1]*a[2][0] - a[0][0]*a[2][1]) / det
	c[2][2] = (a[0][0]*a[1][1] - a[0][1]*a[1][0]) / det
	return
}

// InvT returns a⁻ᵀ
func (a T2) InvT() T2 {
	return a.Inv().Transpose()
}

// Trace returns a_ii
func (a T2) Trace() float64 {
	return a[0][0] + a[1][1] + a[2][2]
}

// Dev returns the deviatoric part a - tr(a)/3 I
func (a T2) Dev() (c T2) {
	tr := a.Trace() / 3.0
	c = a
	for i := 0; i < 3; i++ {
		c[i][i] -= tr
	}
	return
}

// DevTrace returns the deviatoric part and the trace
func (a T2) DevTrace() (T2, float64) {
	return a.Dev(), a.Trace()
}

// Ddot returns the full contraction a_ij b_ij
func (a T2) Ddot(b T2) (res float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			res += a[i][j] * b[i][j]
		}
	}
	return
}

// SquaredTrace returns tr(a·a)
func (a T2) SquaredTrace() (res float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			res += a[i][j] * a[j][i]
		}
	}
	return
}

// SecondInvariant returns ½[tr(a)² - tr(a·a)]
func (a T2) SecondInvariant() float64 {
	tr := a.Trace()
	return 0.5 * (tr*tr - a.SquaredTrace())
}

// Norm returns the Frobenius norm
func (a T2) Norm() float64 {
	return math.Sqrt(a.Ddot(a))
}

// NormInf returns the maximum absolute component
func (a T2) NormInf() (res float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			res = math.Max(res, math.Abs(a[i][j]))
		}
	}
	return
}

// Sym returns ½(a + aᵀ)
func (a T2) Sym() T2 {
	return a.Add(a.Transpose()).Scale(0.5)
}

// Flat returns the row-major 9-vector; index = 3 i + j
func (a T2) Flat() []float64 {
	v := make([]float64, 9)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v[3*i+j] = a[i][j]
		}
	}
	return v
}

// FromFlat builds a tensor from a row-major 9-vector
func FromFlat(v []float64) (a T2) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			a[i][j] = v[3*i+j]
		}
	}
	return
}

// Slice returns a [][]float64 copy (useful with chk.Deep2)
func (a T2) Slice() [][]float64 {
	return [][]float64{
		{a[0][0], a[0][1], a[0][2]},
		{a[1][0], a[1][1], a[1][2]},
		{a[2][0], a[2][1], a[2][2]},
	}
}

// Rotation returns the rotation about axis (0, 1 or 2) by angle θ (radians)
func Rotation(axis int, θ float64) T2 {
	c, s := math.Cos(θ), math.Sin(θ)
	switch axis {
	case 0:
		return T2{{1, 0, 0}, {0, c, -s}, {0, s, c}}
	case 1:
		return T2{{c, 0, s}, {0, 1, 0}, {-s, 0, c}}
	}
	return T2{{c, -s, 0}, {s, c, 0}, {0, 0, 1}}
}
