// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thermal

import (
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/gofem/mech/ten"
)

// Poly implements a conduction model with temperature dependent conductivity
//
//   k(T) = kval(T) kcte
//
//   kval = a0  +  a1 T  +  a2 T² +  a3 T³
type Poly struct {
	a0, a1, a2, a3 float64
	Kcte           ten.T2
}

// add model to factory
func init() {
	allocators["poly"] = func() Conduction { return new(Poly) }
}

// Init initialises model
func (o *Poly) Init(prms dbf.Params) (err error) {
	o.a0 = 1
	o.Kcte, err = readConductivity("poly", prms, func(p *dbf.P) bool {
		switch p.N {
		case "a0":
			o.a0 = p.V
		case "a1":
			o.a1 = p.V
		case "a2":
			o.a2 = p.V
		case "a3":
			o.a3 = p.V
		default:
			return false
		}
		return true
	})
	return
}

// GetPrms gets (an example) of parameters
func (o Poly) GetPrms(example bool) dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "a0", V: 1.0},
		&dbf.P{N: "a1", V: -1e-3},
		&dbf.P{N: "a2", V: 1e-6},
		&dbf.P{N: "a3", V: 0},
		&dbf.P{N: "k", V: 45},
	}
}

// Kval computes kval(T)
func (o Poly) Kval(T float64) float64 {
	return o.a0 + o.a1*T + o.a2*T*T + o.a3*T*T*T
}

// DkDT computes dkval/dT
func (o Poly) DkDT(T float64) float64 {
	return o.a1 + 2.0*o.a2*T + 3.0*o.a3*T*T
}

// Conductivity returns k(T)
func (o Poly) Conductivity(T float64) ten.T2 { return o.Kcte.Scale(o.Kval(T)) }

// Potential returns ½ ∇T⋅k(T)∇T
func (o Poly) Potential(T float64, gradT Vec) float64 {
	return potential(o.Conductivity(T), gradT)
}

// HeatFlux returns -k(T) ∇T
func (o Poly) HeatFlux(T float64, gradT Vec) Vec { return flux(o.Conductivity(T), gradT) }

// HeatFluxTangent returns ∂q/∂∇T = -k(T)
func (o Poly) HeatFluxTangent(T float64, gradT Vec) ten.T2 { return o.Conductivity(T).Scale(-1) }
