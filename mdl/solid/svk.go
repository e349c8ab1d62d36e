// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/gofem/mech/ten"
)

// SaintVenantKirchhoff implements the Saint Venant-Kirchhoff model written in the reference
// configuration
//
//   E = ½(FᵀF - I)
//   S = 2G dev(E) + K tr(E) I
//   a = G dev(E):dev(E) + ½K tr(E)²
type SaintVenantKirchhoff struct {
	moduli
}

// add model to factory
func init() {
	allocators["svk"] = func() Model { return new(SaintVenantKirchhoff) }
}

// Init initialises model
func (o *SaintVenantKirchhoff) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		if !o.set(p) {
			return chk.Err("svk: parameter named %q is incorrect\n", p.N)
		}
	}
	return o.check("svk")
}

// GetPrms gets (an example) of parameters
func (o SaintVenantKirchhoff) GetPrms(example bool) dbf.Params {
	return examplePrms()
}

// CauchyStress returns σ(F)
func (o SaintVenantKirchhoff) CauchyStress(F ten.T2) (ten.T2, error) {
	return svkCauchy(o.moduli, F, 0)
}

// CauchyTangent returns ∂σ/∂F
func (o SaintVenantKirchhoff) CauchyTangent(F ten.T2) (ten.T4, error) {
	return svkCauchyTangent(o.moduli, F, 0)
}

// FreeEnergy returns a(F)
func (o SaintVenantKirchhoff) FreeEnergy(F ten.T2) (float64, error) {
	return svkEnergy(o.moduli, F, 0)
}

// greenLagrange returns E = ½(FᵀF - I)
func greenLagrange(F ten.T2) ten.T2 {
	return F.Transpose().Dot(F).Sub(ten.I2()).Scale(0.5)
}

// svkSecondPK returns S with the thermal term -K εθ I where εθ = 3α(T - T₀)
func svkSecondPK(m moduli, F ten.T2, εθ float64) ten.T2 {
	dev, tr := greenLagrange(F).DevTrace()
	return dev.Scale(2 * m.G).Add(ten.I2().Scale(m.K * (tr - εθ)))
}

// svkSecondPKTangent returns ∂S/∂F for moduli (k, g)
//
//   G_IJkL = g (δ_IL F_kJ + F_kI δ_JL) + (k - ⅔g) δ_IJ F_kL
func svkSecondPKTangent(k, g float64, F ten.T2) ten.T4 {
	I := ten.I2()
	Ft := F.Transpose()
	G := ten.DyadILJK(I, Ft.Scale(g))
	G = G.Add(ten.DyadIKJL(Ft.Scale(g), I))
	return G.Add(ten.DyadIJKL(I.Scale(k-2.0*g/3.0), F))
}

func svkCauchy(m moduli, F ten.T2, εθ float64) (ten.T2, error) {
	if _, err := jacobian(F); err != nil {
		return ten.T2{}, err
	}
	return CauchyFromSecondPK(F, svkSecondPK(m, F, εθ))
}

func svkCauchyTangent(m moduli, F ten.T2, εθ float64) (ten.T4, error) {
	if _, err := jacobian(F); err != nil {
		return ten.T4{}, err
	}
	return CauchyTangentFromSecondPK(F, svkSecondPK(m, F, εθ), svkSecondPKTangent(m.K, m.G, F))
}

func svkEnergy(m moduli, F ten.T2, εθ float64) (float64, error) {
	if _, err := jacobian(F); err != nil {
		return 0, err
	}
	dev, tr := greenLagrange(F).DevTrace()
	return m.G*dev.Ddot(dev) + 0.5*m.K*tr*tr - m.K*εθ*tr, nil
}
