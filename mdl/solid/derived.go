// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"github.com/gofem/mech/ten"
)

// elastic //////////////////////////////////////////////////////////////////////////////////////

// FirstPK returns P(F)
func FirstPK(m Elastic, F ten.T2) (ten.T2, error) {
	σ, err := m.CauchyStress(F)
	if err != nil {
		return ten.T2{}, err
	}
	return FirstPKFromCauchy(F, σ)
}

// SecondPK returns S(F)
func SecondPK(m Elastic, F ten.T2) (ten.T2, error) {
	σ, err := m.CauchyStress(F)
	if err != nil {
		return ten.T2{}, err
	}
	return SecondPKFromCauchy(F, σ)
}

// FirstPKTangent returns ∂P/∂F
func FirstPKTangent(m Elastic, F ten.T2) (ten.T4, error) {
	σ, T, err := cauchyAndTangent(m, F)
	if err != nil {
		return ten.T4{}, err
	}
	return FirstPKTangentFromCauchy(F, σ, T)
}

// SecondPKTangent returns ∂S/∂F
func SecondPKTangent(m Elastic, F ten.T2) (ten.T4, error) {
	σ, T, err := cauchyAndTangent(m, F)
	if err != nil {
		return ten.T4{}, err
	}
	return SecondPKTangentFromCauchy(F, σ, T)
}

func cauchyAndTangent(m Elastic, F ten.T2) (σ ten.T2, T ten.T4, err error) {
	σ, err = m.CauchyStress(F)
	if err != nil {
		return
	}
	T, err = m.CauchyTangent(F)
	return
}

// viscoelastic /////////////////////////////////////////////////////////////////////////////////

// ViscoFirstPK returns P(F, Ḟ)
func ViscoFirstPK(m Viscoelastic, F, Fdot ten.T2) (ten.T2, error) {
	σ, err := m.ViscoCauchyStress(F, Fdot)
	if err != nil {
		return ten.T2{}, err
	}
	return FirstPKFromCauchy(F, σ)
}

// ViscoSecondPK returns S(F, Ḟ)
func ViscoSecondPK(m Viscoelastic, F, Fdot ten.T2) (ten.T2, error) {
	σ, err := m.ViscoCauchyStress(F, Fdot)
	if err != nil {
		return ten.T2{}, err
	}
	return SecondPKFromCauchy(F, σ)
}

// ViscoFirstPKRateTangent returns ∂P/∂Ḟ
func ViscoFirstPKRateTangent(m Viscoelastic, F, Fdot ten.T2) (ten.T4, error) {
	V, err := m.ViscoCauchyRateTangent(F, Fdot)
	if err != nil {
		return ten.T4{}, err
	}
	return FirstPKRateTangentFromCauchy(F, V)
}

// ViscoSecondPKRateTangent returns ∂S/∂Ḟ
func ViscoSecondPKRateTangent(m Viscoelastic, F, Fdot ten.T2) (ten.T4, error) {
	V, err := m.ViscoCauchyRateTangent(F, Fdot)
	if err != nil {
		return ten.T4{}, err
	}
	return SecondPKRateTangentFromCauchy(F, V)
}

// DissipationPotential returns Φ(F, Ḟ) = P(F, 0):Ḟ + φ(F, Ḟ)
//  Note: ∂Φ/∂Ḟ = P(F, Ḟ) when the viscous stress derives from φ
func DissipationPotential(m ElasticHyperviscous, F, Fdot ten.T2) (float64, error) {
	P0, err := ViscoFirstPK(m, F, ten.T2{})
	if err != nil {
		return 0, err
	}
	φ, err := m.ViscousDissipation(F, Fdot)
	if err != nil {
		return 0, err
	}
	return P0.Ddot(Fdot) + φ, nil
}

// thermoelastic ////////////////////////////////////////////////////////////////////////////////

// ThermoFirstPK returns P(F, T)
func ThermoFirstPK(m Thermoelastic, F ten.T2, T float64) (ten.T2, error) {
	return FirstPK(AtTemperature(m, T), F)
}

// ThermoSecondPK returns S(F, T)
func ThermoSecondPK(m Thermoelastic, F ten.T2, T float64) (ten.T2, error) {
	return SecondPK(AtTemperature(m, T), F)
}

// ThermoFirstPKTangent returns ∂P/∂F at fixed T
func ThermoFirstPKTangent(m Thermoelastic, F ten.T2, T float64) (ten.T4, error) {
	return FirstPKTangent(AtTemperature(m, T), F)
}

// ThermoSecondPKTangent returns ∂S/∂F at fixed T
func ThermoSecondPKTangent(m Thermoelastic, F ten.T2, T float64) (ten.T4, error) {
	return SecondPKTangent(AtTemperature(m, T), F)
}

// AtTemperature returns the elastic model obtained by fixing the temperature
//  Note: the result is also Hyperelastic if m is Thermohyperelastic
func AtTemperature(m Thermoelastic, T float64) Elastic {
	if h, ok := m.(Thermohyperelastic); ok {
		return isothermalHyper{isothermal{h, T}, h}
	}
	return isothermal{m, T}
}

// isothermal adapts a thermoelastic model at fixed temperature
type isothermal struct {
	m Thermoelastic
	T float64
}

func (o isothermal) CauchyStress(F ten.T2) (ten.T2, error) {
	return o.m.ThermoCauchyStress(F, o.T)
}

func (o isothermal) CauchyTangent(F ten.T2) (ten.T4, error) {
	return o.m.ThermoCauchyTangent(F, o.T)
}

// isothermalHyper adapts a thermohyperelastic model at fixed temperature
type isothermalHyper struct {
	isothermal
	h Thermohyperelastic
}

func (o isothermalHyper) FreeEnergy(F ten.T2) (float64, error) {
	return o.h.ThermoFreeEnergy(F, o.T)
}
