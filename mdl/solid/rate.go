// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/gofem/mech/ode"
	"github.com/gofem/mech/opt"
	"github.com/gofem/mech/ten"
)

// RateFunc returns a prescribed rate at time t
type RateFunc func(t float64) float64

// RateLoad holds prescribed stretch rates; the remaining normal stresses are free
//
//  The unknown is the row-major vector of Ḟ. The constraints read
//
//   uniaxial:  Ḟ11 = r11(t),  Ḟ12 = Ḟ13 = Ḟ23 = 0
//   biaxial:   as uniaxial and Ḟ22 = r22(t)
type RateLoad struct {
	Kind   LoadKind
	Rate11 RateFunc  // Ḟ11(t)
	Rate22 RateFunc  // Ḟ22(t) [Biaxial]
	Times  []float64 // output times; the first one is the initial time
}

// UniaxialRate returns a uniaxial rate load
func UniaxialRate(r11 RateFunc, times []float64) RateLoad {
	return RateLoad{Kind: Uniaxial, Rate11: r11, Times: times}
}

// BiaxialRate returns a biaxial rate load
func BiaxialRate(r11, r22 RateFunc, times []float64) RateLoad {
	return RateLoad{Kind: Biaxial, Rate11: r11, Rate22: r22, Times: times}
}

// String returns a short description of the load
func (o RateLoad) String() string {
	if o.Kind == Biaxial {
		return "biaxial rate"
	}
	return "uniaxial rate"
}

// constrained holds the indices of Ḟ fixed by uniaxial and biaxial rate loads
var constrained = map[LoadKind][]int{
	Uniaxial: {0, 1, 2, 5},
	Biaxial:  {0, 1, 2, 5, 4},
}

// Constraint returns A Ḟ = b at time t
func (o RateLoad) Constraint(t float64) opt.Constraint {
	idx := constrained[o.Kind]
	A := make([][]float64, len(idx))
	b := make([]float64, len(idx))
	for a, i := range idx {
		A[a] = make([]float64, 9)
		A[a][i] = 1
	}
	b[0] = o.Rate11(t)
	if o.Kind == Biaxial {
		b[4] = o.Rate22(t)
	}
	return opt.Linear(A, b)
}

// check checks the rate functions
func (o RateLoad) check() error {
	if o.Rate11 == nil || (o.Kind == Biaxial && o.Rate22 == nil) {
		return chk.Err("%s: rate functions are not set", o)
	}
	return nil
}

// History holds the results of a rate-dependent run at the output times
type History struct {
	Times []float64 // times
	F     []ten.T2  // deformation gradients
	Fdot  []ten.T2  // rates of the deformation gradient
	Stat  ode.Stat  // integrator statistics
}

// RateRoot integrates dF/dt = Ḟ from F = I where, at each instant, Ḟ solves
//
//   P(F, Ḟ) - Aᵀλ = 0     A Ḟ = b(t)
//
//  Each solve starts from the previous rate
func RateRoot(m Viscoelastic, load RateLoad, integ ode.Integrator, solver opt.RootFinder) (*History, error) {
	if err := load.check(); err != nil {
		return nil, err
	}
	last := make([]float64, 9)
	rhs := func(t float64, y []float64) ([]float64, error) {
		F := ten.FromFlat(y)
		fcn := func(x []float64) ([]float64, error) {
			P, err := ViscoFirstPK(m, F, ten.FromFlat(x))
			if err != nil {
				return nil, err
			}
			return P.Flat(), nil
		}
		jac := func(x []float64) ([][]float64, error) {
			U, err := ViscoFirstPKRateTangent(m, F, ten.FromFlat(x))
			if err != nil {
				return nil, err
			}
			return U.Flat(), nil
		}
		x, err := solver.Root(fcn, jac, last, load.Constraint(t))
		if err != nil {
			return nil, err
		}
		copy(last, x)
		return x, nil
	}
	return integrate(load, integ, rhs)
}

// RateMinimize integrates dF/dt = Ḟ from F = I where, at each instant, Ḟ minimises the
// dissipation potential
//
//   Φ(F, Ḟ) = P(F, 0):Ḟ + φ(F, Ḟ)     subject to   A Ḟ = b(t)
//
//  Each solve starts from the previous rate
func RateMinimize(m ElasticHyperviscous, load RateLoad, integ ode.Integrator, solver opt.Minimizer) (*History, error) {
	if err := load.check(); err != nil {
		return nil, err
	}
	last := make([]float64, 9)
	rhs := func(t float64, y []float64) ([]float64, error) {
		F := ten.FromFlat(y)
		f := func(x []float64) (float64, error) {
			return DissipationPotential(m, F, ten.FromFlat(x))
		}
		grad := func(x []float64) ([]float64, error) {
			P, err := ViscoFirstPK(m, F, ten.FromFlat(x))
			if err != nil {
				return nil, err
			}
			return P.Flat(), nil
		}
		hess := func(x []float64) ([][]float64, error) {
			U, err := ViscoFirstPKRateTangent(m, F, ten.FromFlat(x))
			if err != nil {
				return nil, err
			}
			return U.Flat(), nil
		}
		x, err := solver.Minimize(f, grad, hess, last, load.Constraint(t))
		if err != nil {
			return nil, err
		}
		copy(last, x)
		return x, nil
	}
	return integrate(load, integ, rhs)
}

// integrate runs the integrator and collects the history
func integrate(load RateLoad, integ ode.Integrator, rhs ode.Func) (*History, error) {
	sol, err := integ.Integrate(rhs, load.Times, ten.I2().Flat())
	if err != nil {
		return nil, upstream(err, "%s", load)
	}
	n := len(sol.T)
	res := &History{
		Times: sol.T,
		F:     make([]ten.T2, n),
		Fdot:  make([]ten.T2, n),
		Stat:  sol.Stat,
	}
	for i := 0; i < n; i++ {
		res.F[i] = ten.FromFlat(sol.Y[i])
		res.Fdot[i] = ten.FromFlat(sol.Dydt[i])
	}
	if chk.Verbose {
		io.Pforan("%s: %v\n", load, sol.Stat)
	}
	return res, nil
}
