// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package opt implements nonlinear root finding and minimisation with simple constraints
package opt

import (
	"github.com/cpmech/gosl/chk"
)

// Fcn computes a vector function r(x); e.g. residual or gradient
type Fcn func(x []float64) ([]float64, error)

// Jac computes the Jacobian J = dr/dx (or the Hessian when r is a gradient)
type Jac func(x []float64) ([][]float64, error)

// Obj computes an objective function f(x)
type Obj func(x []float64) (float64, error)

// RootFinder finds x such that r(x) = 0 subject to a constraint
//  Note: methods that do not use derivatives ignore jac
type RootFinder interface {
	Root(fcn Fcn, jac Jac, x0 []float64, c Constraint) ([]float64, error)
}

// Minimizer finds a stationary point of f subject to a constraint
type Minimizer interface {
	Minimize(f Obj, grad Fcn, hess Jac, x0 []float64, c Constraint) ([]float64, error)
}

// Solver is both a RootFinder and a Minimizer
type Solver interface {
	RootFinder
	Minimizer
	Stats() Stat
}

// Stat holds statistics of the last run
type Stat struct {
	Nit    int // number of iterations
	Nfeval int // number of function (residual/gradient) evaluations
	Njeval int // number of Jacobian/Hessian evaluations
}

// New returns a new solver with default settings
func New(name string) (Solver, error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("solver %q is not available in 'opt' database", name)
	}
	return allocator(), nil
}

// allocators holds all available solvers; name => allocator
var allocators = map[string]func() Solver{
	"newton":  func() Solver { return NewNewtonRaphson() },
	"descent": func() Solver { return NewGradientDescent() },
}
