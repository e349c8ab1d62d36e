// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package hybrid implements the additive composition of two solid models of the same capability
//
//   σ = σa + σb    ∂σ/∂F = ∂σa/∂F + ∂σb/∂F    a = aa + ab    φ = φa + φb
//
//  Hybrids have no moduli and cannot be initialised from parameters; their Init and GetPrms
//  methods panic. Hybrids may be nested.
package hybrid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/gofem/mech/mdl/solid"
	"github.com/gofem/mech/ten"
)

// noPrms implements solid.Model for composites
type noPrms struct{}

// Init panics: hybrids are built from initialised models
func (o noPrms) Init(prms dbf.Params) error {
	chk.Panic("hybrid models cannot be initialised with parameters; use New* or Compose instead")
	return nil
}

// GetPrms panics: hybrids have no parameters
func (o noPrms) GetPrms(example bool) dbf.Params {
	chk.Panic("hybrid models do not have parameters")
	return nil
}

// Elastic sums two elastic models
type Elastic struct {
	noPrms
	A, B solid.Elastic
}

// Hyperelastic sums two hyperelastic models
type Hyperelastic struct {
	noPrms
	A, B solid.Hyperelastic
}

// Viscoelastic sums two viscoelastic models
type Viscoelastic struct {
	noPrms
	A, B solid.Viscoelastic
}

// ElasticHyperviscous sums two elastic-hyperviscous models
type ElasticHyperviscous struct {
	noPrms
	A, B solid.ElasticHyperviscous
}

// Hyperviscoelastic sums two hyperviscoelastic models
type Hyperviscoelastic struct {
	noPrms
	A, B solid.Hyperviscoelastic
}

// NewElastic returns a + b
func NewElastic(a, b solid.Elastic) *Elastic { return &Elastic{A: a, B: b} }

// NewHyperelastic returns a + b
func NewHyperelastic(a, b solid.Hyperelastic) *Hyperelastic { return &Hyperelastic{A: a, B: b} }

// NewViscoelastic returns a + b
func NewViscoelastic(a, b solid.Viscoelastic) *Viscoelastic { return &Viscoelastic{A: a, B: b} }

// NewElasticHyperviscous returns a + b
func NewElasticHyperviscous(a, b solid.ElasticHyperviscous) *ElasticHyperviscous {
	return &ElasticHyperviscous{A: a, B: b}
}

// NewHyperviscoelastic returns a + b
func NewHyperviscoelastic(a, b solid.Hyperviscoelastic) *Hyperviscoelastic {
	return &Hyperviscoelastic{A: a, B: b}
}

// elastic ////////////////////////////////////////////////////////////////////////////////////////

// CauchyStress returns σa(F) + σb(F)
func (o *Elastic) CauchyStress(F ten.T2) (ten.T2, error) { return sumStress(o.A, o.B, F) }

// CauchyTangent returns Ta(F) + Tb(F)
func (o *Elastic) CauchyTangent(F ten.T2) (ten.T4, error) { return sumTangent(o.A, o.B, F) }

// CauchyStress returns σa(F) + σb(F)
func (o *Hyperelastic) CauchyStress(F ten.T2) (ten.T2, error) { return sumStress(o.A, o.B, F) }

// CauchyTangent returns Ta(F) + Tb(F)
func (o *Hyperelastic) CauchyTangent(F ten.T2) (ten.T4, error) { return sumTangent(o.A, o.B, F) }

// FreeEnergy returns aa(F) + ab(F)
func (o *Hyperelastic) FreeEnergy(F ten.T2) (float64, error) { return sumEnergy(o.A, o.B, F) }

type energetic interface {
	FreeEnergy(F ten.T2) (float64, error)
}

func sumEnergy(a, b energetic, F ten.T2) (float64, error) {
	ea, err := a.FreeEnergy(F)
	if err != nil {
		return 0, err
	}
	eb, err := b.FreeEnergy(F)
	if err != nil {
		return 0, err
	}
	return ea + eb, nil
}

func sumStress(a, b solid.Elastic, F ten.T2) (ten.T2, error) {
	σa, err := a.CauchyStress(F)
	if err != nil {
		return ten.T2{}, err
	}
	σb, err := b.CauchyStress(F)
	if err != nil {
		return ten.T2{}, err
	}
	return σa.Add(σb), nil
}

func sumTangent(a, b solid.Elastic, F ten.T2) (ten.T4, error) {
	Ta, err := a.CauchyTangent(F)
	if err != nil {
		return ten.T4{}, err
	}
	Tb, err := b.CauchyTangent(F)
	if err != nil {
		return ten.T4{}, err
	}
	return Ta.Add(Tb), nil
}

// viscoelastic ///////////////////////////////////////////////////////////////////////////////////

// ViscoCauchyStress returns σa(F, Ḟ) + σb(F, Ḟ)
func (o *Viscoelastic) ViscoCauchyStress(F, Fdot ten.T2) (ten.T2, error) {
	return sumViscoStress(o.A, o.B, F, Fdot)
}

// ViscoCauchyRateTangent returns Va(F, Ḟ) + Vb(F, Ḟ)
func (o *Viscoelastic) ViscoCauchyRateTangent(F, Fdot ten.T2) (ten.T4, error) {
	return sumRateTangent(o.A, o.B, F, Fdot)
}

// ViscoCauchyStress returns σa(F, Ḟ) + σb(F, Ḟ)
func (o *ElasticHyperviscous) ViscoCauchyStress(F, Fdot ten.T2) (ten.T2, error) {
	return sumViscoStress(o.A, o.B, F, Fdot)
}

// ViscoCauchyRateTangent returns Va(F, Ḟ) + Vb(F, Ḟ)
func (o *ElasticHyperviscous) ViscoCauchyRateTangent(F, Fdot ten.T2) (ten.T4, error) {
	return sumRateTangent(o.A, o.B, F, Fdot)
}

// ViscousDissipation returns φa(F, Ḟ) + φb(F, Ḟ)
func (o *ElasticHyperviscous) ViscousDissipation(F, Fdot ten.T2) (float64, error) {
	return sumDissipation(o.A, o.B, F, Fdot)
}

// ViscoCauchyStress returns σa(F, Ḟ) + σb(F, Ḟ)
func (o *Hyperviscoelastic) ViscoCauchyStress(F, Fdot ten.T2) (ten.T2, error) {
	return sumViscoStress(o.A, o.B, F, Fdot)
}

// ViscoCauchyRateTangent returns Va(F, Ḟ) + Vb(F, Ḟ)
func (o *Hyperviscoelastic) ViscoCauchyRateTangent(F, Fdot ten.T2) (ten.T4, error) {
	return sumRateTangent(o.A, o.B, F, Fdot)
}

// ViscousDissipation returns φa(F, Ḟ) + φb(F, Ḟ)
func (o *Hyperviscoelastic) ViscousDissipation(F, Fdot ten.T2) (float64, error) {
	return sumDissipation(o.A, o.B, F, Fdot)
}

// FreeEnergy returns aa(F) + ab(F)
func (o *Hyperviscoelastic) FreeEnergy(F ten.T2) (float64, error) { return sumEnergy(o.A, o.B, F) }

func sumDissipation(a, b solid.ElasticHyperviscous, F, Fdot ten.T2) (float64, error) {
	φa, err := a.ViscousDissipation(F, Fdot)
	if err != nil {
		return 0, err
	}
	φb, err := b.ViscousDissipation(F, Fdot)
	if err != nil {
		return 0, err
	}
	return φa + φb, nil
}

func sumViscoStress(a, b solid.Viscoelastic, F, Fdot ten.T2) (ten.T2, error) {
	σa, err := a.ViscoCauchyStress(F, Fdot)
	if err != nil {
		return ten.T2{}, err
	}
	σb, err := b.ViscoCauchyStress(F, Fdot)
	if err != nil {
		return ten.T2{}, err
	}
	return σa.Add(σb), nil
}

func sumRateTangent(a, b solid.Viscoelastic, F, Fdot ten.T2) (ten.T4, error) {
	Va, err := a.ViscoCauchyRateTangent(F, Fdot)
	if err != nil {
		return ten.T4{}, err
	}
	Vb, err := b.ViscoCauchyRateTangent(F, Fdot)
	if err != nil {
		return ten.T4{}, err
	}
	return Va.Add(Vb), nil
}
