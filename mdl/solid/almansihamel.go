// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/gofem/mech/ten"
)

// AlmansiHamel implements a hypoelastic-like law linear in the Euler-Almansi strain
//
//   e = ½(I - B⁻¹)     B = F Fᵀ
//   σ = J⁻¹ [ 2G dev(e) + K tr(e) I ]
//
//  Note: the law is elastic but not hyperelastic
type AlmansiHamel struct {
	moduli
}

// add model to factory
func init() {
	allocators["almansi-hamel"] = func() Model { return new(AlmansiHamel) }
}

// Init initialises model
func (o *AlmansiHamel) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		if !o.set(p) {
			return chk.Err("almansi-hamel: parameter named %q is incorrect\n", p.N)
		}
	}
	return o.check("almansi-hamel")
}

// GetPrms gets (an example) of parameters
func (o AlmansiHamel) GetPrms(example bool) dbf.Params {
	return examplePrms()
}

// CauchyStress returns σ(F)
func (o AlmansiHamel) CauchyStress(F ten.T2) (ten.T2, error) {
	return almansiStress(o.moduli, F, 0)
}

// CauchyTangent returns ∂σ/∂F
func (o AlmansiHamel) CauchyTangent(F ten.T2) (ten.T4, error) {
	return almansiTangent(o.moduli, F, 0)
}

// almansiStress computes σ with the volumetric strain shifted by εθ = 3α(T - T₀)
func almansiStress(m moduli, F ten.T2, εθ float64) (ten.T2, error) {
	J, err := jacobian(F)
	if err != nil {
		return ten.T2{}, err
	}
	Bi := F.Dot(F.Transpose()).Inv()
	e := ten.I2().Sub(Bi).Scale(0.5)
	dev, tr := e.DevTrace()
	σ := dev.Scale(2 * m.G).Add(ten.I2().Scale(m.K * (tr - εθ)))
	return σ.Scale(1.0 / J), nil
}

// almansiTangent computes ∂σ/∂F
//
//   ∂(Jσ)/∂F = G (F⁻ᵀ ⊗_il B⁻¹ + B⁻¹ ⊗_ik F⁻ᵀ) + (K - ⅔G) I ⊗ B⁻¹F⁻ᵀ
//   ∂σ/∂F    = J⁻¹ ∂(Jσ)/∂F - σ ⊗ F⁻ᵀ
func almansiTangent(m moduli, F ten.T2, εθ float64) (ten.T4, error) {
	σ, err := almansiStress(m, F, εθ)
	if err != nil {
		return ten.T4{}, err
	}
	J := F.Det()
	Fit := F.InvT()
	Bi := F.Dot(F.Transpose()).Inv()
	c := m.G / J
	T := ten.DyadILJK(Fit, Bi.Scale(c))
	T = T.Add(ten.DyadIKJL(Bi.Scale(c), Fit))
	T = T.Add(ten.DyadIJKL(ten.I2(), Bi.Dot(Fit).Scale((m.K-2.0*m.G/3.0)/J)))
	T = T.Sub(ten.DyadIJKL(σ, Fit))
	return T, nil
}
