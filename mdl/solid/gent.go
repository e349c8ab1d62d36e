// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/gofem/mech/ten"
)

// Gent implements the compressible Gent model with limiting chain extensibility
//
//   a = ½ [ -G Jm ln(1 - (tr B̄ - 3)/Jm) + K (½(J² - 1) - ln J) ]
//   σ = J⁻¹ [ G Jm dev(B̄) / D + ½K (J² - 1) I ]      D = Jm - tr B̄ + 3
//
//  A Custom error is returned when D ≤ 0 (maximum extensibility reached)
type Gent struct {
	moduli
	Jm float64 // extensibility limit
}

// add model to factory
func init() {
	allocators["gent"] = func() Model { return new(Gent) }
}

// Init initialises model
func (o *Gent) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		if o.set(p) {
			continue
		}
		switch p.N {
		case "Jm":
			o.Jm = p.V
		default:
			return chk.Err("gent: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.Jm <= 0 {
		return chk.Err("gent: extensibility limit Jm must be positive. Jm=%g\n", o.Jm)
	}
	return o.check("gent")
}

// GetPrms gets (an example) of parameters
func (o Gent) GetPrms(example bool) dbf.Params {
	return append(examplePrms(), &dbf.P{N: "Jm", V: 50})
}

// denominator returns J, tr B̄ and D = Jm - tr B̄ + 3
func (o Gent) denominator(F ten.T2) (J, trBbar, D float64, err error) {
	J, err = jacobian(F)
	if err != nil {
		return
	}
	trBbar = math.Pow(J, -2.0/3.0) * F.Dot(F.Transpose()).Trace()
	D = o.Jm - trBbar + 3
	if !(D > 0) {
		err = custom("gent", F, "maximum extensibility reached: tr(B̄) - 3 = %g ≥ Jm = %g", trBbar-3, o.Jm)
	}
	return
}

// CauchyStress returns σ(F)
func (o Gent) CauchyStress(F ten.T2) (ten.T2, error) {
	J, _, D, err := o.denominator(F)
	if err != nil {
		return ten.T2{}, err
	}
	devB := F.Dot(F.Transpose()).Dev()
	σ := devB.Scale(o.G * o.Jm / D * math.Pow(J, -5.0/3.0))
	return σ.Add(ten.I2().Scale(0.5 * o.K * (J - 1.0/J))), nil
}

// CauchyTangent returns ∂σ/∂F
func (o Gent) CauchyTangent(F ten.T2) (ten.T4, error) {
	J, trBbar, D, err := o.denominator(F)
	if err != nil {
		return ten.T4{}, err
	}
	Fit := F.InvT()
	devB := F.Dot(F.Transpose()).Dev()
	Jm53 := math.Pow(J, -5.0/3.0)
	g := o.G * o.Jm / D

	// isochoric part: g N(F) with N = J^(-5/3) dev(B) and g depending on tr B̄
	T := isoNeoHookeanTangent(F, J, g)
	T = T.Sub(ten.DyadIJKL(devB.Scale(5.0/3.0*g*Jm53), Fit))
	σiso := devB.Scale(g * Jm53)
	dtr := F.Scale(2 * math.Pow(J, -2.0/3.0)).Sub(Fit.Scale(2.0 / 3.0 * trBbar))
	T = T.Add(ten.DyadIJKL(σiso.Scale(1.0/D), dtr))

	// volumetric part
	return T.Add(ten.DyadIJKL(ten.I2().Scale(0.5*o.K*(J+1.0/J)), Fit)), nil
}

// FreeEnergy returns a(F)
func (o Gent) FreeEnergy(F ten.T2) (float64, error) {
	J, trBbar, _, err := o.denominator(F)
	if err != nil {
		return 0, err
	}
	return 0.5 * (-o.G*o.Jm*math.Log(1-(trBbar-3)/o.Jm) + o.K*(0.5*(J*J-1)-math.Log(J))), nil
}
