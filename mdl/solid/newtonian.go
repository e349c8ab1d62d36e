// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"github.com/gofem/mech/ten"
)

// Newtonian viscosity in the current configuration
//
//   D  = sym(Ḟ F⁻¹)
//   σv = J⁻¹ [ 2η dev(D) + κ tr(D) I ]
//   φ  = η D:D + ½(κ - ⅔η) tr(D)²
//
//  such that ∂φ/∂Ḟ = J σv F⁻ᵀ

// rateOfDeformation returns D = sym(Ḟ F⁻¹)
func rateOfDeformation(F, Fdot ten.T2) ten.T2 {
	return Fdot.Dot(F.Inv()).Sym()
}

// newtonianStress returns σv
func newtonianStress(v viscosities, F, Fdot ten.T2) (ten.T2, error) {
	J, err := jacobian(F)
	if err != nil {
		return ten.T2{}, err
	}
	dev, tr := rateOfDeformation(F, Fdot).DevTrace()
	σ := dev.Scale(2 * v.Gv).Add(ten.I2().Scale(v.Kv * tr))
	return σ.Scale(1.0 / J), nil
}

// newtonianRateTangent returns ∂σv/∂Ḟ = J⁻¹ [ η (I ⊗_ik F⁻ᵀ + F⁻ᵀ ⊗_il I) + (κ - ⅔η) I ⊗ F⁻ᵀ ]
func newtonianRateTangent(v viscosities, F ten.T2) (ten.T4, error) {
	J, err := jacobian(F)
	if err != nil {
		return ten.T4{}, err
	}
	I := ten.I2()
	Fit := F.InvT()
	V := ten.DyadIKJL(I, Fit).Add(ten.DyadILJK(Fit, I)).Scale(v.Gv / J)
	return V.Add(ten.DyadIJKL(I, Fit).Scale((v.Kv - 2.0*v.Gv/3.0) / J)), nil
}

// newtonianDissipation returns φ
func newtonianDissipation(v viscosities, F, Fdot ten.T2) (float64, error) {
	if _, err := jacobian(F); err != nil {
		return 0, err
	}
	D := rateOfDeformation(F, Fdot)
	tr := D.Trace()
	return v.Gv*D.Ddot(D) + 0.5*(v.Kv-2.0*v.Gv/3.0)*tr*tr, nil
}
