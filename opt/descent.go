// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opt

import (
	"math"
	"sync"

	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"
)

// GradientDescent implements gradient descent with Barzilai-Borwein steps
//
//   x ← x - α g    with   α = |Δx⋅Δg| / (Δg⋅Δg)
//
// The first step uses Step0. Fixed components have zero gradient. Linear constraints are
// handled by projecting the initial point onto {A x = b} and the gradient onto the null
// space of A. Root uses the residual as the gradient and ignores the Jacobian.
type GradientDescent struct {
	Atol       float64 // absolute tolerance on the norm of the projected gradient
	NmaxIt     int     // maximum number of iterations
	Step0      float64 // initial step size
	LineSearch *Armijo // optional backtracking (Minimize only)
	Verbose    bool    // show iterations

	mu   sync.Mutex
	stat Stat
}

// NewGradientDescent returns a solver with default settings
func NewGradientDescent() *GradientDescent {
	return &GradientDescent{Atol: 1e-10, NmaxIt: 500, Step0: 1e-2}
}

// Stats returns the statistics of the last completed run
//  Note: runs may share the solver across goroutines; settings must not change during a run
func (o *GradientDescent) Stats() Stat {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.stat
}

// publish records the statistics of a completed run
func (o *GradientDescent) publish(st *Stat) {
	o.mu.Lock()
	o.stat = *st
	o.mu.Unlock()
}

// Root finds r(x) = 0 treating r as a gradient
func (o *GradientDescent) Root(fcn Fcn, jac Jac, x0 []float64, c Constraint) ([]float64, error) {
	return o.run(nil, fcn, x0, c)
}

// Minimize finds ∇f(x) = 0
func (o *GradientDescent) Minimize(f Obj, grad Fcn, hess Jac, x0 []float64, c Constraint) ([]float64, error) {
	return o.run(f, grad, x0, c)
}

// run performs the iterations
func (o *GradientDescent) run(f Obj, grad Fcn, x0 []float64, c Constraint) ([]float64, error) {

	// check
	var st Stat
	defer o.publish(&st)
	n := len(x0)
	if err := c.check(n); err != nil {
		return nil, &Error{Kind: Generic, Solver: "descent", Err: err}
	}

	// initial point
	x := clone(x0)
	var Π *mat.Dense
	if c.Kind == LinearEquality && len(c.B) > 0 {
		var xp []float64
		var ok bool
		Π, xp, ok = projector(c.A, c.B)
		if !ok {
			return nil, newErr("descent", SingularMatrix, "constraint matrix does not have full row rank")
		}
		x = project(Π, x0)
		for i := range x {
			x[i] += xp[i]
		}
	}
	fixed := make([]bool, n)
	if c.Kind == FixedIndices {
		for _, i := range c.Indices {
			fixed[i] = true
		}
	}

	// iterations
	var xOld, gOld []float64
	α := o.Step0
	for st.Nit = 0; st.Nit < o.NmaxIt; st.Nit++ {

		// gradient
		g, err := grad(x)
		st.Nfeval++
		if err != nil {
			return nil, upstream("descent", err)
		}
		g = clone(g)
		for i := range g {
			if fixed[i] {
				g[i] = 0
			}
		}
		if Π != nil {
			g = project(Π, g)
		}
		ng := norm(g)
		if o.Verbose {
			io.Pf("%5d%23.15e%23.15e\n", st.Nit, ng, α)
		}
		if math.IsNaN(ng) {
			return nil, newErr("descent", Generic, "gradient is NaN")
		}

		// converged?
		if ng < o.Atol {
			return x, nil
		}

		// step size
		if xOld != nil {
			var num, den float64
			for i := range x {
				Δx, Δg := x[i]-xOld[i], g[i]-gOld[i]
				num += Δx * Δg
				den += Δg * Δg
			}
			if den > 0 && num != 0 {
				α = math.Abs(num) / den
			}
		}
		β := 1.0
		if o.LineSearch != nil && f != nil {
			d := make([]float64, n)
			for i := range d {
				d[i] = -α * g[i]
			}
			β, err = o.LineSearch.Step(f, x, g, d)
			if err != nil {
				return nil, &Error{Kind: LineSearch, Solver: "descent", Err: err}
			}
		}

		// update
		xOld, gOld = clone(x), g
		for i := range x {
			x[i] -= β * α * g[i]
		}
	}
	return nil, newErr("descent", MaximumStepsReached, "did not converge after %d iterations", o.NmaxIt)
}
