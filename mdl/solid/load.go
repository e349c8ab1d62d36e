// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"math"

	"github.com/cpmech/gosl/io"
	"github.com/gofem/mech/opt"
	"github.com/gofem/mech/ten"
)

// LoadKind defines the type of applied load
type LoadKind int

const (
	Uniaxial LoadKind = iota // F = diag(F11, x, x); σ22 = σ33 = 0
	Biaxial                  // F = diag(F11, F22, x); σ33 = 0
)

// Load holds prescribed stretches with the remaining normal stresses free
type Load struct {
	Kind LoadKind
	F11  float64 // prescribed stretch along x1
	F22  float64 // prescribed stretch along x2 [Biaxial]
}

// UniaxialStress returns a uniaxial load with prescribed stretch F11
func UniaxialStress(F11 float64) Load {
	return Load{Kind: Uniaxial, F11: F11}
}

// BiaxialStress returns a biaxial load with prescribed stretches F11 and F22
func BiaxialStress(F11, F22 float64) Load {
	return Load{Kind: Biaxial, F11: F11, F22: F22}
}

// String returns a short description of the load
func (o Load) String() string {
	if o.Kind == Biaxial {
		return io.Sf("biaxial(%g, %g)", o.F11, o.F22)
	}
	return io.Sf("uniaxial(%g)", o.F11)
}

// Deformation returns F for the free stretch x
func (o Load) Deformation(x float64) ten.T2 {
	if o.Kind == Biaxial {
		return ten.Diag(o.F11, o.F22, x)
	}
	return ten.Diag(o.F11, x, x)
}

// guess returns the initial free stretch (isochoric)
func (o Load) guess() float64 {
	if o.Kind == Biaxial {
		return 1.0 / (o.F11 * o.F22)
	}
	return 1.0 / math.Sqrt(o.F11)
}

// check returns InvalidJacobian for non-positive prescribed stretches
func (o Load) check() error {
	if o.F11 > 0 && (o.Kind == Uniaxial || o.F22 > 0) {
		return nil
	}
	F := o.Deformation(1)
	return &Error{Kind: InvalidJacobian, J: F.Det(), F: F, Msg: o.String()}
}

// Equilibrium holds the solution of a load problem
type Equilibrium struct {
	F      ten.T2   // deformation gradient
	Cauchy ten.T2   // Cauchy stress
	Stat   opt.Stat // solver statistics (if available)
}

// Root solves the load problem by finding the free stretch with zero normal stress
//
//   uniaxial: σ33(diag(F11, x, x)) = 0     dσ33/dx = T3322 + T3333
//   biaxial:  σ33(diag(F11, F22, x)) = 0   dσ33/dx = T3333
func Root(m Elastic, load Load, solver opt.RootFinder) (*Equilibrium, error) {
	if err := load.check(); err != nil {
		return nil, err
	}
	fcn := func(x []float64) ([]float64, error) {
		σ, err := m.CauchyStress(load.Deformation(x[0]))
		if err != nil {
			return nil, err
		}
		return []float64{σ[2][2]}, nil
	}
	jac := func(x []float64) ([][]float64, error) {
		T, err := m.CauchyTangent(load.Deformation(x[0]))
		if err != nil {
			return nil, err
		}
		d := T[2][2][2][2]
		if load.Kind == Uniaxial {
			d += T[2][2][1][1]
		}
		return [][]float64{{d}}, nil
	}
	x, err := solver.Root(fcn, jac, []float64{load.guess()}, opt.None())
	if err != nil {
		return nil, upstream(err, "cannot solve %v", load)
	}
	return equilibrium(m, load, x[0], solver)
}

// Minimize solves the load problem by minimising the free energy over the free stretch
//
//   uniaxial: da/dx = P22 + P33    d²a/dx² = C2222 + C2233 + C3322 + C3333
//   biaxial:  da/dx = P33          d²a/dx² = C3333
func Minimize(m Hyperelastic, load Load, solver opt.Minimizer) (*Equilibrium, error) {
	if err := load.check(); err != nil {
		return nil, err
	}
	f := func(x []float64) (float64, error) {
		return m.FreeEnergy(load.Deformation(x[0]))
	}
	grad := func(x []float64) ([]float64, error) {
		P, err := FirstPK(m, load.Deformation(x[0]))
		if err != nil {
			return nil, err
		}
		g := P[2][2]
		if load.Kind == Uniaxial {
			g += P[1][1]
		}
		return []float64{g}, nil
	}
	hess := func(x []float64) ([][]float64, error) {
		C, err := FirstPKTangent(m, load.Deformation(x[0]))
		if err != nil {
			return nil, err
		}
		h := C[2][2][2][2]
		if load.Kind == Uniaxial {
			h += C[1][1][1][1] + C[1][1][2][2] + C[2][2][1][1]
		}
		return [][]float64{{h}}, nil
	}
	x, err := solver.Minimize(f, grad, hess, []float64{load.guess()}, opt.None())
	if err != nil {
		return nil, upstream(err, "cannot minimise %v", load)
	}
	return equilibrium(m, load, x[0], solver)
}

// equilibrium assembles the results at the converged stretch
func equilibrium(m Elastic, load Load, x float64, solver interface{}) (*Equilibrium, error) {
	res := &Equilibrium{F: load.Deformation(x)}
	σ, err := m.CauchyStress(res.F)
	if err != nil {
		return nil, err
	}
	res.Cauchy = σ
	if s, ok := solver.(interface{ Stats() opt.Stat }); ok {
		res.Stat = s.Stats()
	}
	return res, nil
}
