// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package srv

import (
	"net/http"

	"github.com/gofem/mech/mdl/solid"
	"github.com/gofem/mech/opt"
	"github.com/gofem/mech/ten"
)

// StressRequest holds the input to evaluate stresses
//  Fdot is required by rate-dependent models and T by thermoelastic models
type StressRequest struct {
	ModelData
	F    ten.T2   `json:"F"`
	Fdot *ten.T2  `json:"Fdot,omitempty"`
	T    *float64 `json:"T,omitempty"`
}

// StressResponse holds the stress measures
type StressResponse struct {
	J      float64  `json:"J"`
	Cauchy ten.T2   `json:"cauchy"`
	P      ten.T2   `json:"P"`
	S      ten.T2   `json:"S"`
	Energy *float64 `json:"energy,omitempty"` // free energy density [hyperelastic]
}

func (o *Server) stress(w http.ResponseWriter, r *http.Request) {
	var req StressRequest
	if err := o.decode(r, &req); err != nil {
		o.fail(w, err)
		return
	}
	m, err := req.allocate()
	if err != nil {
		o.fail(w, err)
		return
	}
	res, err := Stress(m, req.F, req.Fdot, req.T)
	if err != nil {
		o.fail(w, err)
		return
	}
	o.respond(w, http.StatusOK, res)
}

// Stress evaluates σ, P and S according to the capability of m
//
//   thermoelastic and T given    →  σ(F, T)
//   viscoelastic and Ḟ given     →  σ(F, Ḟ)
//   elastic                      →  σ(F)
func Stress(m solid.Model, F ten.T2, Fdot *ten.T2, T *float64) (res *StressResponse, err error) {
	J, err := solid.Jacobian(F)
	if err != nil {
		return
	}
	res = &StressResponse{J: J}
	te, isThermo := m.(solid.Thermoelastic)
	ve, isVisco := m.(solid.Viscoelastic)
	e, isElastic := m.(solid.Elastic)
	var a float64
	var hasEnergy bool
	switch {
	case T != nil && isThermo:
		res.Cauchy, err = te.ThermoCauchyStress(F, *T)
		if h, ok := m.(solid.Thermohyperelastic); ok && err == nil {
			a, err = h.ThermoFreeEnergy(F, *T)
			hasEnergy = true
		}
	case T != nil:
		return nil, &httpError{http.StatusBadRequest, "model is not thermoelastic; T must not be given"}
	case isVisco && Fdot != nil:
		res.Cauchy, err = ve.ViscoCauchyStress(F, *Fdot)
	case isVisco && !isElastic:
		return nil, &httpError{http.StatusBadRequest, "model is rate-dependent; Fdot must be given"}
	case isElastic:
		res.Cauchy, err = e.CauchyStress(F)
		if h, ok := m.(solid.Hyperelastic); ok && err == nil {
			a, err = h.FreeEnergy(F)
			hasEnergy = true
		}
	default:
		return nil, &httpError{http.StatusBadRequest, "model cannot compute stresses"}
	}
	if err != nil {
		return nil, err
	}
	if hasEnergy {
		res.Energy = &a
	}
	if res.P, err = solid.FirstPKFromCauchy(F, res.Cauchy); err != nil {
		return nil, err
	}
	if res.S, err = solid.SecondPKFromCauchy(F, res.Cauchy); err != nil {
		return nil, err
	}
	return
}

// RootRequest holds the input to solve for an equilibrium state
type RootRequest struct {
	ModelData
	Kind   string  `json:"kind" validate:"required,oneof=uniaxial biaxial"` // kind of load
	F11    float64 `json:"F11" validate:"gt=0"`                             // prescribed stretch along x
	F22    float64 `json:"F22" validate:"required_if=Kind biaxial,gte=0"`   // prescribed stretch along y [biaxial]
	Solver string  `json:"solver" validate:"omitempty,oneof=newton descent"` // nonlinear solver
	Min    bool    `json:"min"`                                             // use the minimum principle
}

// RootResponse holds an equilibrium state
type RootResponse struct {
	F      ten.T2   `json:"F"`
	Cauchy ten.T2   `json:"cauchy"`
	Stat   opt.Stat `json:"stat"`
}

func (o *Server) root(w http.ResponseWriter, r *http.Request) {
	var req RootRequest
	if err := o.decode(r, &req); err != nil {
		o.fail(w, err)
		return
	}
	m, err := req.allocate()
	if err != nil {
		o.fail(w, err)
		return
	}
	load := solid.UniaxialStress(req.F11)
	if req.Kind == "biaxial" {
		load = solid.BiaxialStress(req.F11, req.F22)
	}
	name := req.Solver
	if name == "" {
		name = "newton"
	}
	solver, err := opt.New(name)
	if err != nil {
		o.fail(w, &httpError{http.StatusBadRequest, err.Error()})
		return
	}
	var res *solid.Equilibrium
	if req.Min {
		h, ok := m.(solid.Hyperelastic)
		if !ok {
			o.fail(w, &httpError{http.StatusBadRequest, "model is not hyperelastic; the minimum principle is not available"})
			return
		}
		res, err = solid.Minimize(h, load, solver)
	} else {
		e, ok := m.(solid.Elastic)
		if !ok {
			o.fail(w, &httpError{http.StatusBadRequest, "model is not elastic"})
			return
		}
		res, err = solid.Root(e, load, solver)
	}
	if err != nil {
		o.fail(w, err)
		return
	}
	o.respond(w, http.StatusOK, RootResponse{F: res.F, Cauchy: res.Cauchy, Stat: res.Stat})
}
