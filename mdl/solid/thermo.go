// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/gofem/mech/ten"
)

// thermal holds the expansion coefficient and the reference temperature
type thermal struct {
	α  float64 // linear thermal expansion coefficient
	T0 float64 // reference temperature
}

// ExpansionCoefficient returns α
func (o thermal) ExpansionCoefficient() float64 { return o.α }

// ReferenceTemperature returns T₀
func (o thermal) ReferenceTemperature() float64 { return o.T0 }

// strain returns the volumetric thermal strain 3α(T - T₀)
func (o thermal) strain(T float64) float64 { return 3 * o.α * (T - o.T0) }

func (o *thermal) set(p *dbf.P) bool {
	switch p.N {
	case "alpha":
		o.α = p.V
	case "T0":
		o.T0 = p.V
	default:
		return false
	}
	return true
}

func thermalPrms() dbf.Params {
	return append(examplePrms(),
		&dbf.P{N: "alpha", V: 1e-5},
		&dbf.P{N: "T0", V: 293.15},
	)
}

// ThermoAlmansiHamel implements the Almansi-Hamel law with thermal expansion
//
//   σ = J⁻¹ [ 2G dev(e) + K (tr(e) - 3α(T - T₀)) I ]
type ThermoAlmansiHamel struct {
	moduli
	thermal
}

// ThermoSvk implements the Saint Venant-Kirchhoff model with thermal expansion
//
//   S = 2G dev(E) + K (tr(E) - 3α(T - T₀)) I
//   a = G dev(E):dev(E) + ½K tr(E)² - 3αK (T - T₀) tr(E)
type ThermoSvk struct {
	moduli
	thermal
}

// add models to factory
func init() {
	allocators["thermo-almansi-hamel"] = func() Model { return new(ThermoAlmansiHamel) }
	allocators["thermo-svk"] = func() Model { return new(ThermoSvk) }
}

// initThermo reads the parameters of thermoelastic models
func initThermo(name string, m *moduli, t *thermal, prms dbf.Params) error {
	for _, p := range prms {
		if m.set(p) || t.set(p) {
			continue
		}
		return chk.Err("%s: parameter named %q is incorrect\n", name, p.N)
	}
	return m.check(name)
}

// Init initialises model
func (o *ThermoAlmansiHamel) Init(prms dbf.Params) (err error) {
	return initThermo("thermo-almansi-hamel", &o.moduli, &o.thermal, prms)
}

// GetPrms gets (an example) of parameters
func (o ThermoAlmansiHamel) GetPrms(example bool) dbf.Params { return thermalPrms() }

// ThermoCauchyStress returns σ(F, T)
func (o ThermoAlmansiHamel) ThermoCauchyStress(F ten.T2, T float64) (ten.T2, error) {
	return almansiStress(o.moduli, F, o.strain(T))
}

// ThermoCauchyTangent returns ∂σ/∂F at fixed T
func (o ThermoAlmansiHamel) ThermoCauchyTangent(F ten.T2, T float64) (ten.T4, error) {
	return almansiTangent(o.moduli, F, o.strain(T))
}

// Init initialises model
func (o *ThermoSvk) Init(prms dbf.Params) (err error) {
	return initThermo("thermo-svk", &o.moduli, &o.thermal, prms)
}

// GetPrms gets (an example) of parameters
func (o ThermoSvk) GetPrms(example bool) dbf.Params { return thermalPrms() }

// ThermoCauchyStress returns σ(F, T)
func (o ThermoSvk) ThermoCauchyStress(F ten.T2, T float64) (ten.T2, error) {
	return svkCauchy(o.moduli, F, o.strain(T))
}

// ThermoCauchyTangent returns ∂σ/∂F at fixed T
func (o ThermoSvk) ThermoCauchyTangent(F ten.T2, T float64) (ten.T4, error) {
	return svkCauchyTangent(o.moduli, F, o.strain(T))
}

// ThermoFreeEnergy returns a(F, T)
func (o ThermoSvk) ThermoFreeEnergy(F ten.T2, T float64) (float64, error) {
	return svkEnergy(o.moduli, F, o.strain(T))
}
