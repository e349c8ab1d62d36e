// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/gofem/mech/ten"
)

// AlmansiHamelHv implements the Almansi-Hamel law with Newtonian viscosity
//
//   σ(F, Ḟ) = σ_AH(F) + σv(F, Ḟ)
type AlmansiHamelHv struct {
	AlmansiHamel
	viscosities
}

// Hyperviscous adds Newtonian viscosity to any elastic model
//
//   σ(F, Ḟ) = σ_e(F) + σv(F, Ḟ)
//
//  The elastic part is set after Init; e.g. by the material database using the names
//  listed in 'extra'
type Hyperviscous struct {
	viscosities
	Elastic Elastic // elastic part
}

// add models to factory
func init() {
	allocators["almansi-hamel-hv"] = func() Model { return new(AlmansiHamelHv) }
	allocators["hyperviscous"] = func() Model { return new(Hyperviscous) }
}

// Init initialises model
func (o *AlmansiHamelHv) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		if o.moduli.set(p) || o.viscosities.set(p) {
			continue
		}
		return chk.Err("almansi-hamel-hv: parameter named %q is incorrect\n", p.N)
	}
	if err = o.moduli.check("almansi-hamel-hv"); err != nil {
		return
	}
	return o.viscosities.check("almansi-hamel-hv")
}

// GetPrms gets (an example) of parameters
func (o AlmansiHamelHv) GetPrms(example bool) dbf.Params {
	return append(examplePrms(),
		&dbf.P{N: "Kv", V: 0.5},
		&dbf.P{N: "Gv", V: 0.2},
	)
}

// ViscoCauchyStress returns σ(F, Ḟ)
func (o AlmansiHamelHv) ViscoCauchyStress(F, Fdot ten.T2) (ten.T2, error) {
	σe, err := o.CauchyStress(F)
	if err != nil {
		return ten.T2{}, err
	}
	σv, err := newtonianStress(o.viscosities, F, Fdot)
	if err != nil {
		return ten.T2{}, err
	}
	return σe.Add(σv), nil
}

// ViscoCauchyRateTangent returns ∂σ/∂Ḟ
func (o AlmansiHamelHv) ViscoCauchyRateTangent(F, Fdot ten.T2) (ten.T4, error) {
	return newtonianRateTangent(o.viscosities, F)
}

// ViscousDissipation returns φ(F, Ḟ)
func (o AlmansiHamelHv) ViscousDissipation(F, Fdot ten.T2) (float64, error) {
	return newtonianDissipation(o.viscosities, F, Fdot)
}

// Init initialises model
func (o *Hyperviscous) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		if !o.set(p) {
			return chk.Err("hyperviscous: parameter named %q is incorrect\n", p.N)
		}
	}
	return o.check("hyperviscous")
}

// GetPrms gets (an example) of parameters
func (o Hyperviscous) GetPrms(example bool) dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "Kv", V: 0.5},
		&dbf.P{N: "Gv", V: 0.2},
	}
}

// CauchyStress returns σ_e(F)
func (o Hyperviscous) CauchyStress(F ten.T2) (ten.T2, error) {
	if o.Elastic == nil {
		return ten.T2{}, custom("hyperviscous", F, "elastic part is not set")
	}
	return o.Elastic.CauchyStress(F)
}

// CauchyTangent returns ∂σ_e/∂F
func (o Hyperviscous) CauchyTangent(F ten.T2) (ten.T4, error) {
	if o.Elastic == nil {
		return ten.T4{}, custom("hyperviscous", F, "elastic part is not set")
	}
	return o.Elastic.CauchyTangent(F)
}

// ViscoCauchyStress returns σ(F, Ḟ)
func (o Hyperviscous) ViscoCauchyStress(F, Fdot ten.T2) (ten.T2, error) {
	σe, err := o.CauchyStress(F)
	if err != nil {
		return ten.T2{}, err
	}
	σv, err := newtonianStress(o.viscosities, F, Fdot)
	if err != nil {
		return ten.T2{}, err
	}
	return σe.Add(σv), nil
}

// ViscoCauchyRateTangent returns ∂σ/∂Ḟ
func (o Hyperviscous) ViscoCauchyRateTangent(F, Fdot ten.T2) (ten.T4, error) {
	return newtonianRateTangent(o.viscosities, F)
}

// ViscousDissipation returns φ(F, Ḟ)
func (o Hyperviscous) ViscousDissipation(F, Fdot ten.T2) (float64, error) {
	return newtonianDissipation(o.viscosities, F, Fdot)
}

// SvkHv implements the Saint Venant-Kirchhoff model with viscosity in the reference configuration
//
//   Ė  = sym(FᵀḞ)
//   Sv = 2η dev(Ė) + κ tr(Ė) I
//   φ  = η Ė:Ė + ½(κ - ⅔η) tr(Ė)²
type SvkHv struct {
	SaintVenantKirchhoff
	viscosities
}

// NeoHookeanKv implements the Neo-Hookean model with a Kelvin-Voigt type viscous stress
//
//   σv = η/(2J) (Ḟ Fᵀ + F Ḟᵀ)
//
//  The viscous stress does not derive from a dissipation function; hence ∂P/∂Ḟ is not
//  major-symmetric in general
type NeoHookeanKv struct {
	NeoHookean
	η float64 // viscosity
}

// add models to factory
func init() {
	allocators["svk-hv"] = func() Model { return new(SvkHv) }
	allocators["neo-hookean-kv"] = func() Model { return new(NeoHookeanKv) }
}

// Init initialises model
func (o *SvkHv) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		if o.moduli.set(p) || o.viscosities.set(p) {
			continue
		}
		return chk.Err("svk-hv: parameter named %q is incorrect\n", p.N)
	}
	if err = o.moduli.check("svk-hv"); err != nil {
		return
	}
	return o.viscosities.check("svk-hv")
}

// GetPrms gets (an example) of parameters
func (o SvkHv) GetPrms(example bool) dbf.Params {
	return append(examplePrms(),
		&dbf.P{N: "Kv", V: 0.5},
		&dbf.P{N: "Gv", V: 0.2},
	)
}

// viscousSecondPK returns Sv
func (o SvkHv) viscousSecondPK(F, Fdot ten.T2) ten.T2 {
	dev, tr := F.Transpose().Dot(Fdot).Sym().DevTrace()
	return dev.Scale(2 * o.Gv).Add(ten.I2().Scale(o.Kv * tr))
}

// ViscoCauchyStress returns σ(F, Ḟ)
func (o SvkHv) ViscoCauchyStress(F, Fdot ten.T2) (ten.T2, error) {
	if _, err := jacobian(F); err != nil {
		return ten.T2{}, err
	}
	S := svkSecondPK(o.moduli, F, 0).Add(o.viscousSecondPK(F, Fdot))
	return CauchyFromSecondPK(F, S)
}

// ViscoCauchyRateTangent returns ∂σ/∂Ḟ
func (o SvkHv) ViscoCauchyRateTangent(F, Fdot ten.T2) (ten.T4, error) {
	if _, err := jacobian(F); err != nil {
		return ten.T4{}, err
	}
	return CauchyRateTangentFromSecondPK(F, svkSecondPKTangent(o.Kv, o.Gv, F))
}

// ViscousDissipation returns φ(F, Ḟ)
func (o SvkHv) ViscousDissipation(F, Fdot ten.T2) (float64, error) {
	if _, err := jacobian(F); err != nil {
		return 0, err
	}
	Ed := F.Transpose().Dot(Fdot).Sym()
	tr := Ed.Trace()
	return o.Gv*Ed.Ddot(Ed) + 0.5*(o.Kv-2.0*o.Gv/3.0)*tr*tr, nil
}

// Init initialises model
func (o *NeoHookeanKv) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		if o.set(p) {
			continue
		}
		switch p.N {
		case "eta":
			o.η = p.V
		default:
			return chk.Err("neo-hookean-kv: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.η < 0 {
		return chk.Err("neo-hookean-kv: viscosity must be non-negative. eta=%g\n", o.η)
	}
	return o.check("neo-hookean-kv")
}

// GetPrms gets (an example) of parameters
func (o NeoHookeanKv) GetPrms(example bool) dbf.Params {
	return append(examplePrms(), &dbf.P{N: "eta", V: 0.3})
}

// ShearViscosity returns η
func (o NeoHookeanKv) ShearViscosity() float64 { return o.η }

// BulkViscosity returns 0; the viscous stress of this model has no bulk term
func (o NeoHookeanKv) BulkViscosity() float64 { return 0 }

// ViscoCauchyStress returns σ(F, Ḟ)
func (o NeoHookeanKv) ViscoCauchyStress(F, Fdot ten.T2) (ten.T2, error) {
	σe, err := o.CauchyStress(F)
	if err != nil {
		return ten.T2{}, err
	}
	J := F.Det()
	L := Fdot.Dot(F.Transpose())
	return σe.Add(L.Add(L.Transpose()).Scale(0.5 * o.η / J)), nil
}

// ViscoCauchyRateTangent returns ∂σ/∂Ḟ = η/(2J) (I ⊗_ik F + F ⊗_il I)
func (o NeoHookeanKv) ViscoCauchyRateTangent(F, Fdot ten.T2) (ten.T4, error) {
	J, err := jacobian(F)
	if err != nil {
		return ten.T4{}, err
	}
	I := ten.I2()
	V := ten.DyadIKJL(I, F).Add(ten.DyadILJK(F, I))
	return V.Scale(0.5 * o.η / J), nil
}
