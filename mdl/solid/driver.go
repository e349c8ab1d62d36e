// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/gofem/mech/opt"
)

// Driver runs sequences of load problems with elastic models
type Driver struct {

	// input
	Mdl    Elastic         // elastic model
	Solver opt.RootFinder // solver of each load problem

	// settings
	Silent bool    // do not show error messages
	TolT   float64 // tolerance to check ∂σ/∂F
	VerD   bool    // verbose check of tangents

	// check tangents
	TstD *testing.T // if != nil, do check tangents at each converged state

	// results
	Res []*Equilibrium // results
}

// Init initialises driver; Newton-Raphson is used if solver is nil
func (o *Driver) Init(mdl Elastic, solver opt.RootFinder) (err error) {
	if mdl == nil {
		return chk.Err("driver: model must not be nil")
	}
	if solver == nil {
		solver = opt.NewNewtonRaphson()
	}
	o.Mdl = mdl
	o.Solver = solver
	o.TolT = 1e-6
	o.VerD = chk.Verbose
	return
}

// Run solves all load problems in sequence
func (o *Driver) Run(loads []Load) (err error) {
	o.Res = make([]*Equilibrium, len(loads))
	for i, load := range loads {
		o.Res[i], err = Root(o.Mdl, load, o.Solver)
		if err != nil {
			if !o.Silent {
				io.PfRed("driver: %v failed: %v\n", load, err)
			}
			return
		}
		if o.TstD != nil {
			CheckElastic(o.TstD, o.Mdl, o.Res[i].F, o.TolT, o.VerD)
		}
	}
	return
}

// StretchPath returns n loads with F11 from a to b (and fixed F22 if biaxial)
func StretchPath(kind LoadKind, a, b, F22 float64, n int) (loads []Load) {
	for _, F11 := range utl.LinSpace(a, b, n) {
		if kind == Biaxial {
			loads = append(loads, BiaxialStress(F11, F22))
			continue
		}
		loads = append(loads, UniaxialStress(F11))
	}
	return
}
