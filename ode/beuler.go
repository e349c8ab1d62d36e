// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ode

import (
	"math"

	"github.com/gofem/mech/opt"
)

// JacFunc computes df/dy
type JacFunc func(t float64, y []float64) ([][]float64, error)

// BackwardEuler implements the implicit backward Euler method
//
//  For each interval [t_n, t_(n+1)] of the requested times it solves
//
//    r(y) = y - y_n - Δt f(t_(n+1), y) = 0     with     dr/dy = I - Δt df/dy
//
//  Nsub substeps of equal size are taken within each interval.
type BackwardEuler struct {
	Solver opt.RootFinder // solver of the implicit equation
	Jac    JacFunc        // df/dy; finite differences are used if nil
	Nsub   int            // number of substeps per interval
}

// NewBackwardEuler returns a new integrator; Newton-Raphson is used when solver is nil
func NewBackwardEuler(solver opt.RootFinder) *BackwardEuler {
	if solver == nil {
		solver = opt.NewNewtonRaphson()
	}
	return &BackwardEuler{Solver: solver, Nsub: 1}
}

// Integrate integrates dy/dt = f(t, y) stepping exactly at the requested times
func (o *BackwardEuler) Integrate(fcn Func, times []float64, y0 []float64) (*Solution, error) {

	// check
	if err := checkTimes(times); err != nil {
		err.(*Error).Method = "ode1be"
		return nil, err
	}
	nsub := o.Nsub
	if nsub < 1 {
		nsub = 1
	}

	// counting functions
	sol := new(Solution)
	f := func(t float64, y []float64) ([]float64, error) {
		sol.Stat.Nfeval++
		return fcn(t, y)
	}
	jac := o.Jac
	if jac == nil {
		jac = func(t float64, y []float64) ([][]float64, error) {
			return JacobianFD(f, t, y)
		}
	}

	// initial state
	k0, err := f(times[0], y0)
	if err != nil {
		return nil, &Error{Kind: Upstream, Method: "ode1be", Msg: "initial rate", Err: err}
	}
	y := clone(y0)
	sol.T, sol.Y, sol.Dydt = []float64{times[0]}, [][]float64{y}, [][]float64{k0}

	// intervals
	for i := 1; i < len(times); i++ {
		if times[i] == times[i-1] {
			sol.T, sol.Y, sol.Dydt = append(sol.T, times[i]), append(sol.Y, y), append(sol.Dydt, sol.Dydt[len(sol.Dydt)-1])
			continue
		}
		Δt := (times[i] - times[i-1]) / float64(nsub)
		for k := 1; k <= nsub; k++ {
			t := times[i-1] + float64(k)*Δt
			if k == nsub {
				t = times[i]
			}
			yn := y
			sol.Stat.Nsteps++
			y, err = o.Solver.Root(func(x []float64) ([]float64, error) {
				fx, err := f(t, x)
				if err != nil {
					return nil, err
				}
				r := make([]float64, len(x))
				for m := range x {
					r[m] = x[m] - yn[m] - Δt*fx[m]
				}
				return r, nil
			}, func(x []float64) ([][]float64, error) {
				J, err := jac(t, x)
				if err != nil {
					return nil, err
				}
				K := make([][]float64, len(x))
				for m := range x {
					K[m] = make([]float64, len(x))
					for n := range x {
						K[m][n] = -Δt * J[m][n]
					}
					K[m][m] += 1
				}
				return K, nil
			}, clone(yn), opt.None())
			if err != nil {
				return nil, &Error{Kind: Upstream, Method: "ode1be", Msg: "implicit solve failed", Err: err}
			}
			sol.Stat.Naccepted++
		}
		k1, err := f(times[i], y)
		if err != nil {
			return nil, &Error{Kind: Upstream, Method: "ode1be", Err: err}
		}
		sol.T, sol.Y, sol.Dydt = append(sol.T, times[i]), append(sol.Y, y), append(sol.Dydt, k1)
	}
	return sol, nil
}

// JacobianFD computes df/dy with central differences
func JacobianFD(f Func, t float64, y []float64) ([][]float64, error) {
	n := len(y)
	J := make([][]float64, n)
	for i := range J {
		J[i] = make([]float64, n)
	}
	x := clone(y)
	for j := 0; j < n; j++ {
		h := 1e-6 * math.Max(1, math.Abs(y[j]))
		x[j] = y[j] + h
		fp, err := f(t, x)
		if err != nil {
			return nil, err
		}
		x[j] = y[j] - h
		fm, err := f(t, x)
		if err != nil {
			return nil, err
		}
		x[j] = y[j]
		for i := 0; i < n; i++ {
			J[i][j] = (fp[i] - fm[i]) / (2 * h)
		}
	}
	return J, nil
}
