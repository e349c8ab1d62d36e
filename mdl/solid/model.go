// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package solid implements constitutive models for solids based on continuum mechanics
/*
 *   Capability          |  Primitives                          |  Derived
 *  =====================================================================================
 *   Elastic             |  σ(F), ∂σ/∂F                         |  P, S, ∂P/∂F, ∂S/∂F
 *   Hyperelastic        |  + a(F)                              |  Minimize
 *   Viscoelastic        |  σ(F,Ḟ), ∂σ/∂Ḟ                       |  P, S, ∂P/∂Ḟ, ∂S/∂Ḟ
 *   ElasticHyperviscous |  + φ(F,Ḟ)                            |  Φ = P(F,0):Ḟ + φ
 *   Hyperviscoelastic   |  + a(F)                              |
 *   Thermoelastic       |  σ(F,T), ∂σ/∂F, α, T₀                |  P, S, tangents
 *   Thermohyperelastic  |  + a(F,T)                            |
 *  -------------------------------------------------------------------------------------
 *   Solid               |  K, G          (leaf models only; composites have no moduli)
 *   Viscous             |  κ, η          (leaf models only)
 */
package solid

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/gofem/mech/ten"
)

// Model defines the interface for solid models
type Model interface {
	Init(prms dbf.Params) error      // initialises model
	GetPrms(example bool) dbf.Params // gets (an example) of parameters
}

// Solid defines models with elastic moduli
type Solid interface {
	BulkModulus() float64  // K
	ShearModulus() float64 // G
}

// Viscous defines models with viscosities
type Viscous interface {
	BulkViscosity() float64  // κ
	ShearViscosity() float64 // η
}

// Elastic defines models where the stress depends on the deformation only
type Elastic interface {
	CauchyStress(F ten.T2) (ten.T2, error)  // σ(F)
	CauchyTangent(F ten.T2) (ten.T4, error) // T = ∂σ/∂F
}

// Hyperelastic defines elastic models derived from a Helmholtz free energy density a(F)
//  P = ∂a/∂F and ∂P/∂F has major symmetry
type Hyperelastic interface {
	Elastic
	FreeEnergy(F ten.T2) (float64, error) // a(F)
}

// Viscoelastic defines models where the stress depends on the deformation and its rate
type Viscoelastic interface {
	ViscoCauchyStress(F, Fdot ten.T2) (ten.T2, error)      // σ(F, Ḟ)
	ViscoCauchyRateTangent(F, Fdot ten.T2) (ten.T4, error) // V = ∂σ/∂Ḟ
}

// ElasticHyperviscous defines viscoelastic models whose viscous stress derives from a
// dissipation function φ(F, Ḟ)
type ElasticHyperviscous interface {
	Viscoelastic
	ViscousDissipation(F, Fdot ten.T2) (float64, error) // φ(F, Ḟ)
}

// Hyperviscoelastic defines elastic-hyperviscous models with a free energy density
type Hyperviscoelastic interface {
	ElasticHyperviscous
	FreeEnergy(F ten.T2) (float64, error) // a(F)
}

// Thermoelastic defines elastic models depending on the temperature
type Thermoelastic interface {
	Solid
	ThermoCauchyStress(F ten.T2, T float64) (ten.T2, error)  // σ(F, T)
	ThermoCauchyTangent(F ten.T2, T float64) (ten.T4, error) // ∂σ/∂F at fixed T
	ExpansionCoefficient() float64                           // α
	ReferenceTemperature() float64                           // T₀
}

// Thermohyperelastic defines thermoelastic models with a free energy density a(F, T)
type Thermohyperelastic interface {
	Thermoelastic
	ThermoFreeEnergy(F ten.T2, T float64) (float64, error) // a(F, T)
}

// New returns new solid model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'solid' database", name)
	}
	return allocator(), nil
}

// Names returns the names of all registered models
func Names() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// allocators holds all available solid models; modelname => allocator
var allocators = map[string]func() Model{}
