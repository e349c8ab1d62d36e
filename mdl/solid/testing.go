// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/gofem/mech/ten"
)

// numerical derivatives (central differences) //////////////////////////////////////////////////

// NumTangent computes ∂f/∂X numerically
func NumTangent(f func(X ten.T2) (ten.T2, error), X ten.T2, h float64) (D ten.T4, err error) {
	var fp, fm ten.T2
	for k := 0; k < 3; k++ {
		for l := 0; l < 3; l++ {
			Xp, Xm := X, X
			Xp[k][l] += h
			Xm[k][l] -= h
			if fp, err = f(Xp); err != nil {
				return
			}
			if fm, err = f(Xm); err != nil {
				return
			}
			for i := 0; i < 3; i++ {
				for j := 0; j < 3; j++ {
					D[i][j][k][l] = (fp[i][j] - fm[i][j]) / (2 * h)
				}
			}
		}
	}
	return
}

// NumGradient computes ∂f/∂X numerically
func NumGradient(f func(X ten.T2) (float64, error), X ten.T2, h float64) (D ten.T2, err error) {
	var fp, fm float64
	for k := 0; k < 3; k++ {
		for l := 0; l < 3; l++ {
			Xp, Xm := X, X
			Xp[k][l] += h
			Xm[k][l] -= h
			if fp, err = f(Xp); err != nil {
				return
			}
			if fm, err = f(Xm); err != nil {
				return
			}
			D[k][l] = (fp - fm) / (2 * h)
		}
	}
	return
}

// checking //////////////////////////////////////////////////////////////////////////////////////

// CheckT4 compares two fourth order tensors component-wise
func CheckT4(tst *testing.T, msg string, tol float64, ana, num ten.T4, verbose bool) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					chk.AnaNum(tst, io.Sf("%s%d%d%d%d", msg, i+1, j+1, k+1, l+1), tol, ana[i][j][k][l], num[i][j][k][l], verbose)
				}
			}
		}
	}
}

// CheckT2 compares two second order tensors component-wise
func CheckT2(tst *testing.T, msg string, tol float64, ana, num ten.T2, verbose bool) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			chk.AnaNum(tst, io.Sf("%s%d%d", msg, i+1, j+1), tol, ana[i][j], num[i][j], verbose)
		}
	}
}

// CheckElastic checks ∂σ/∂F, ∂P/∂F and ∂S/∂F against central differences
func CheckElastic(tst *testing.T, m Elastic, F ten.T2, tol float64, verbose bool) {
	h := 1e-6
	ana, err := m.CauchyTangent(F)
	if err != nil {
		tst.Errorf("CauchyTangent failed: %v\n", err)
		return
	}
	num, err := NumTangent(m.CauchyStress, F, h)
	if err != nil {
		tst.Errorf("NumTangent failed: %v\n", err)
		return
	}
	CheckT4(tst, "T", tol, ana, num, verbose)

	// first Piola-Kirchhoff
	if ana, err = FirstPKTangent(m, F); err != nil {
		tst.Errorf("FirstPKTangent failed: %v\n", err)
		return
	}
	if num, err = NumTangent(func(X ten.T2) (ten.T2, error) { return FirstPK(m, X) }, F, h); err != nil {
		tst.Errorf("NumTangent failed: %v\n", err)
		return
	}
	CheckT4(tst, "C", tol, ana, num, verbose)

	// second Piola-Kirchhoff
	if ana, err = SecondPKTangent(m, F); err != nil {
		tst.Errorf("SecondPKTangent failed: %v\n", err)
		return
	}
	if num, err = NumTangent(func(X ten.T2) (ten.T2, error) { return SecondPK(m, X) }, F, h); err != nil {
		tst.Errorf("NumTangent failed: %v\n", err)
		return
	}
	CheckT4(tst, "G", tol, ana, num, verbose)
}

// CheckHyperelastic checks P = ∂a/∂F against central differences
func CheckHyperelastic(tst *testing.T, m Hyperelastic, F ten.T2, tol float64, verbose bool) {
	ana, err := FirstPK(m, F)
	if err != nil {
		tst.Errorf("FirstPK failed: %v\n", err)
		return
	}
	num, err := NumGradient(m.FreeEnergy, F, 1e-6)
	if err != nil {
		tst.Errorf("NumGradient failed: %v\n", err)
		return
	}
	CheckT2(tst, "P", tol, ana, num, verbose)
}

// CheckViscoelastic checks ∂σ/∂Ḟ and ∂P/∂Ḟ against central differences
func CheckViscoelastic(tst *testing.T, m Viscoelastic, F, Fdot ten.T2, tol float64, verbose bool) {
	h := 1e-6
	ana, err := m.ViscoCauchyRateTangent(F, Fdot)
	if err != nil {
		tst.Errorf("ViscoCauchyRateTangent failed: %v\n", err)
		return
	}
	num, err := NumTangent(func(X ten.T2) (ten.T2, error) { return m.ViscoCauchyStress(F, X) }, Fdot, h)
	if err != nil {
		tst.Errorf("NumTangent failed: %v\n", err)
		return
	}
	CheckT4(tst, "V", tol, ana, num, verbose)
	if ana, err = ViscoFirstPKRateTangent(m, F, Fdot); err != nil {
		tst.Errorf("ViscoFirstPKRateTangent failed: %v\n", err)
		return
	}
	if num, err = NumTangent(func(X ten.T2) (ten.T2, error) { return ViscoFirstPK(m, F, X) }, Fdot, h); err != nil {
		tst.Errorf("NumTangent failed: %v\n", err)
		return
	}
	CheckT4(tst, "U", tol, ana, num, verbose)
}

// CheckHyperviscous checks P(F, Ḟ) = ∂Φ/∂Ḟ against central differences
func CheckHyperviscous(tst *testing.T, m ElasticHyperviscous, F, Fdot ten.T2, tol float64, verbose bool) {
	ana, err := ViscoFirstPK(m, F, Fdot)
	if err != nil {
		tst.Errorf("ViscoFirstPK failed: %v\n", err)
		return
	}
	num, err := NumGradient(func(X ten.T2) (float64, error) { return DissipationPotential(m, F, X) }, Fdot, 1e-6)
	if err != nil {
		tst.Errorf("NumGradient failed: %v\n", err)
		return
	}
	CheckT2(tst, "P", tol, ana, num, verbose)
}
