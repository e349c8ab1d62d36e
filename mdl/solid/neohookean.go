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

// NeoHookean implements the compressible Neo-Hookean model
//
//   a = ½G (tr B̄ - 3) + ¼K (J² - 1 - 2 ln J)      B̄ = J^(-2/3) B
//   σ = G J^(-5/3) dev(B) + ½K (J - 1/J) I
type NeoHookean struct {
	moduli
}

// add model to factory
func init() {
	allocators["neo-hookean"] = func() Model { return new(NeoHookean) }
}

// Init initialises model
func (o *NeoHookean) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		if !o.set(p) {
			return chk.Err("neo-hookean: parameter named %q is incorrect\n", p.N)
		}
	}
	return o.check("neo-hookean")
}

// GetPrms gets (an example) of parameters
func (o NeoHookean) GetPrms(example bool) dbf.Params {
	return examplePrms()
}

// CauchyStress returns σ(F)
func (o NeoHookean) CauchyStress(F ten.T2) (ten.T2, error) {
	J, err := jacobian(F)
	if err != nil {
		return ten.T2{}, err
	}
	devB := F.Dot(F.Transpose()).Dev()
	σ := devB.Scale(o.G * math.Pow(J, -5.0/3.0))
	return σ.Add(ten.I2().Scale(0.5 * o.K * (J - 1.0/J))), nil
}

// CauchyTangent returns ∂σ/∂F
func (o NeoHookean) CauchyTangent(F ten.T2) (ten.T4, error) {
	J, err := jacobian(F)
	if err != nil {
		return ten.T4{}, err
	}
	devB := F.Dot(F.Transpose()).Dev()
	T := isoNeoHookeanTangent(F, J, o.G)
	vol := ten.I2().Scale(0.5 * o.K * (J + 1.0/J))
	vol = vol.Sub(devB.Scale(5.0 / 3.0 * o.G * math.Pow(J, -5.0/3.0)))
	return T.Add(ten.DyadIJKL(vol, F.InvT())), nil
}

// FreeEnergy returns a(F)
func (o NeoHookean) FreeEnergy(F ten.T2) (float64, error) {
	J, err := jacobian(F)
	if err != nil {
		return 0, err
	}
	trBbar := math.Pow(J, -2.0/3.0) * F.Dot(F.Transpose()).Trace()
	return 0.5*o.G*(trBbar-3) + 0.25*o.K*(J*J-1-2*math.Log(J)), nil
}

// isoNeoHookeanTangent returns g J^(-5/3) ∂B/∂F - ⅔ g J^(-5/3) I ⊗ F; i.e. the variation of
// g J^(-5/3) dev(B) at fixed J
func isoNeoHookeanTangent(F ten.T2, J, g float64) ten.T4 {
	I := ten.I2()
	c := g * math.Pow(J, -5.0/3.0)
	T := ten.DyadIKJL(I, F).Add(ten.DyadILJK(F, I))
	T = T.Sub(ten.DyadIJKL(I, F).Scale(2.0 / 3.0))
	return T.Scale(c)
}
