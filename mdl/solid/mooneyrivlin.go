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

// MooneyRivlin implements the compressible Mooney-Rivlin model
//
//   a = ½ [ (G - Gm)(tr B̄ - 3) + Gm (tr B̄⁻¹ - 3) + K (½(J² - 1) - ln J) ]
//   σ = J⁻¹ [ (G - Gm) dev(B̄) - Gm dev(B̄⁻¹) + ½K (J² - 1) I ]
//
//  Gm = 0 recovers the Neo-Hookean model
type MooneyRivlin struct {
	moduli
	Gm float64 // shear modulus of the second invariant term
}

// add model to factory
func init() {
	allocators["mooney-rivlin"] = func() Model { return new(MooneyRivlin) }
}

// Init initialises model
func (o *MooneyRivlin) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		if o.set(p) {
			continue
		}
		switch p.N {
		case "Gm":
			o.Gm = p.V
		default:
			return chk.Err("mooney-rivlin: parameter named %q is incorrect\n", p.N)
		}
	}
	return o.check("mooney-rivlin")
}

// GetPrms gets (an example) of parameters
func (o MooneyRivlin) GetPrms(example bool) dbf.Params {
	return append(examplePrms(), &dbf.P{N: "Gm", V: 1})
}

// CauchyStress returns σ(F)
func (o MooneyRivlin) CauchyStress(F ten.T2) (ten.T2, error) {
	J, err := jacobian(F)
	if err != nil {
		return ten.T2{}, err
	}
	B := F.Dot(F.Transpose())
	Jm23 := math.Pow(J, -2.0/3.0)
	Bbar := B.Scale(Jm23)
	X := B.Inv().Scale(1.0 / Jm23) // B̄⁻¹
	σ := Bbar.Dev().Scale(o.G - o.Gm)
	σ = σ.Sub(X.Dev().Scale(o.Gm))
	σ = σ.Add(ten.I2().Scale(0.5 * o.K * (J*J - 1)))
	return σ.Scale(1.0 / J), nil
}

// CauchyTangent returns ∂σ/∂F
func (o MooneyRivlin) CauchyTangent(F ten.T2) (ten.T4, error) {
	J, err := jacobian(F)
	if err != nil {
		return ten.T4{}, err
	}
	I := ten.I2()
	Fit := F.InvT()
	B := F.Dot(F.Transpose())
	devB := B.Dev()

	// first invariant term and volumetric part
	T := isoNeoHookeanTangent(F, J, o.G-o.Gm)
	vol := I.Scale(0.5 * o.K * (J + 1.0/J))
	vol = vol.Sub(devB.Scale(5.0 / 3.0 * (o.G - o.Gm) * math.Pow(J, -5.0/3.0)))
	T = T.Add(ten.DyadIJKL(vol, Fit))

	// second invariant term
	X := B.Inv().Scale(math.Pow(J, 2.0/3.0))
	T2 := ten.DyadIKJL(X, Fit).Add(ten.DyadILJK(Fit, X))
	T2 = T2.Sub(ten.DyadIJKL(I, X.Dot(Fit)).Scale(2.0 / 3.0))
	T2 = T2.Add(ten.DyadIJKL(X.Dev(), Fit).Scale(1.0 / 3.0))
	return T.Add(T2.Scale(o.Gm / J)), nil
}

// FreeEnergy returns a(F)
func (o MooneyRivlin) FreeEnergy(F ten.T2) (float64, error) {
	J, err := jacobian(F)
	if err != nil {
		return 0, err
	}
	B := F.Dot(F.Transpose())
	Jm23 := math.Pow(J, -2.0/3.0)
	I1 := Jm23 * B.Trace()
	I2 := B.Inv().Trace() / Jm23
	return 0.5 * ((o.G-o.Gm)*(I1-3) + o.Gm*(I2-3) + o.K*(0.5*(J*J-1)-math.Log(J))), nil
}
