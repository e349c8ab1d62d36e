// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package multiphys implements models coupling the mechanical and thermal responses of solids
package multiphys

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/gofem/mech/mdl/solid"
	"github.com/gofem/mech/mdl/thermal"
	"github.com/gofem/mech/opt"
	"github.com/gofem/mech/ten"
)

// SolidThermal pairs a thermoelastic solid with a heat conduction model
//
//  Stresses are delegated to the solid and heat fluxes to the conduction model. The pair
//  cannot be initialised from parameters; use NewSolidThermal with initialised models.
type SolidThermal struct {
	solid.Thermoelastic                    // mechanical part
	Thermal             thermal.Conduction // thermal part
}

// NewSolidThermal returns a new pair
func NewSolidThermal(s solid.Thermoelastic, t thermal.Conduction) *SolidThermal {
	return &SolidThermal{s, t}
}

// Init panics: the parts must be initialised separately
func (o *SolidThermal) Init(prms dbf.Params) error {
	chk.Panic("solid-thermal models cannot be initialised with parameters; use NewSolidThermal instead")
	return nil
}

// GetPrms panics: the parts hold the parameters
func (o *SolidThermal) GetPrms(example bool) dbf.Params {
	chk.Panic("solid-thermal models do not have parameters")
	return nil
}

// State holds the response at a material point
type State struct {
	Cauchy  ten.T2      // Cauchy stress
	FirstPK ten.T2      // first Piola-Kirchhoff stress
	Flux    thermal.Vec // heat flux
	Energy  float64     // conduction potential plus free energy density (thermohyperelastic solids)
}

// Response computes the mechanical and thermal responses for F, T and ∇T
func (o *SolidThermal) Response(F ten.T2, T float64, gradT thermal.Vec) (s *State, err error) {
	s = new(State)
	if s.Cauchy, err = o.ThermoCauchyStress(F, T); err != nil {
		return nil, err
	}
	if s.FirstPK, err = solid.FirstPKFromCauchy(F, s.Cauchy); err != nil {
		return nil, err
	}
	s.Flux = o.Thermal.HeatFlux(T, gradT)
	s.Energy = o.Thermal.Potential(T, gradT)
	if h, ok := o.Thermoelastic.(solid.Thermohyperelastic); ok {
		a, err := h.ThermoFreeEnergy(F, T)
		if err != nil {
			return nil, err
		}
		s.Energy += a
	}
	return
}

// FreeThermalStretch returns the stretch λ such that σ(λ I, T) = 0; i.e. the free thermal
// expansion of an isotropic solid
//
//   r(λ) = σ11(λ I, T)     dr/dλ = T1111 + T1122 + T1133
func (o *SolidThermal) FreeThermalStretch(T float64, solver opt.RootFinder) (float64, error) {
	fcn := func(x []float64) ([]float64, error) {
		σ, err := o.ThermoCauchyStress(ten.Diag(x[0], x[0], x[0]), T)
		if err != nil {
			return nil, err
		}
		return []float64{σ[0][0]}, nil
	}
	jac := func(x []float64) ([][]float64, error) {
		D, err := o.ThermoCauchyTangent(ten.Diag(x[0], x[0], x[0]), T)
		if err != nil {
			return nil, err
		}
		return [][]float64{{D[0][0][0][0] + D[0][0][1][1] + D[0][0][2][2]}}, nil
	}
	x, err := solver.Root(fcn, jac, []float64{1}, opt.None())
	if err != nil {
		return 0, chk.Err("cannot compute free thermal stretch at T = %g: %v", T, err)
	}
	return x[0], nil
}
