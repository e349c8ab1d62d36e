// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opt

import (
	"math"
	"sync"

	"github.com/cpmech/gosl/io"
)

// NewtonRaphson implements Newton's method
//
//   unconstrained:  x ← x - J⁻¹ r
//   fixed indices:  the reduced system over the free components
//   linear A x = b: z = {x, λ} ← z - K⁻¹ R with
//
//        ┌          ┐        ┌         ┐
//        │ J    -Aᵀ │        │ r - Aᵀλ │
//    K = │          │    R = │         │
//        │ -A    0  │        │ b - A x │
//        └          ┘        └         ┘
//
type NewtonRaphson struct {
	Atol       float64 // absolute tolerance on the norm of the (augmented) residual
	NmaxIt     int     // maximum number of iterations
	LineSearch *Armijo // optional backtracking (Minimize only; not with linear constraints)
	Verbose    bool    // show iterations

	mu   sync.Mutex
	stat Stat
}

// NewNewtonRaphson returns a solver with default settings
func NewNewtonRaphson() *NewtonRaphson {
	return &NewtonRaphson{Atol: 1e-12, NmaxIt: 25}
}

// Stats returns the statistics of the last completed run
//  Note: runs may share the solver across goroutines; settings must not change during a run
func (o *NewtonRaphson) Stats() Stat {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.stat
}

// publish records the statistics of a completed run
func (o *NewtonRaphson) publish(st *Stat) {
	o.mu.Lock()
	o.stat = *st
	o.mu.Unlock()
}

// Root finds r(x) = 0
func (o *NewtonRaphson) Root(fcn Fcn, jac Jac, x0 []float64, c Constraint) ([]float64, error) {
	return o.run(nil, fcn, jac, x0, c)
}

// Minimize finds ∇f(x) = 0 and checks the Hessian at the solution
func (o *NewtonRaphson) Minimize(f Obj, grad Fcn, hess Jac, x0 []float64, c Constraint) ([]float64, error) {
	x, err := o.run(f, grad, hess, x0, c)
	if err != nil {
		return nil, err
	}
	if c.Kind == LinearEquality {
		return x, nil
	}
	H, err := hess(x)
	o.mu.Lock()
	o.stat.Njeval++
	o.mu.Unlock()
	if err != nil {
		return nil, upstream("newton", err)
	}
	free := c.free(len(x))
	if !posdef(reduce(H, free)) {
		return nil, newErr("newton", NotMinimum, "Hessian is not positive definite at the stationary point")
	}
	return x, nil
}

// run performs the iterations
func (o *NewtonRaphson) run(f Obj, fcn Fcn, jac Jac, x0 []float64, c Constraint) ([]float64, error) {

	// check
	var st Stat
	defer o.publish(&st)
	n := len(x0)
	if err := c.check(n); err != nil {
		return nil, &Error{Kind: Generic, Solver: "newton", Err: err}
	}

	// auxiliary
	x := clone(x0)
	free := c.free(n)
	var λ []float64
	if c.Kind == LinearEquality {
		λ = make([]float64, len(c.B))
	}

	// iterations
	for st.Nit = 0; st.Nit < o.NmaxIt; st.Nit++ {

		// residual
		r, err := fcn(x)
		st.Nfeval++
		if err != nil {
			return nil, upstream("newton", err)
		}
		R := o.residual(r, x, λ, free, c)
		nR := norm(R)
		if o.Verbose {
			io.Pf("%5d%23.15e\n", st.Nit, nR)
		}
		if math.IsNaN(nR) {
			return nil, newErr("newton", Generic, "residual is NaN")
		}

		// converged?
		if nR < o.Atol {
			return x, nil
		}

		// tangent
		J, err := jac(x)
		st.Njeval++
		if err != nil {
			return nil, upstream("newton", err)
		}
		K := o.tangent(J, free, c)
		δ, ok := solve(K, R)
		if !ok {
			return nil, newErr("newton", SingularMatrix, "cannot solve linear system at iteration %d", st.Nit)
		}

		// step size
		α := 1.0
		if o.LineSearch != nil && f != nil && c.Kind != LinearEquality {
			d := make([]float64, n)
			for k, i := range free {
				d[i] = -δ[k]
			}
			α, err = o.LineSearch.Step(f, x, r, d)
			if err != nil {
				return nil, &Error{Kind: LineSearch, Solver: "newton", Err: err}
			}
		}

		// update
		switch c.Kind {
		case LinearEquality:
			for i := 0; i < n; i++ {
				x[i] -= δ[i]
			}
			for i := range λ {
				λ[i] -= δ[n+i]
			}
		default:
			for k, i := range free {
				x[i] -= α * δ[k]
			}
		}
	}
	return nil, newErr("newton", MaximumStepsReached, "did not converge after %d iterations", o.NmaxIt)
}

// residual assembles the (reduced or augmented) residual
func (o *NewtonRaphson) residual(r, x, λ []float64, free []int, c Constraint) []float64 {
	switch c.Kind {
	case LinearEquality:
		n, m := len(x), len(c.B)
		R := make([]float64, n+m)
		copy(R, r)
		for a := 0; a < m; a++ {
			for i := 0; i < n; i++ {
				R[i] -= c.A[a][i] * λ[a]
			}
			R[n+a] = c.B[a] - dot(c.A[a], x)
		}
		return R
	}
	R := make([]float64, len(free))
	for k, i := range free {
		R[k] = r[i]
	}
	return R
}

// tangent assembles the (reduced or augmented) tangent
func (o *NewtonRaphson) tangent(J [][]float64, free []int, c Constraint) [][]float64 {
	if c.Kind != LinearEquality {
		return reduce(J, free)
	}
	n, m := len(J), len(c.B)
	K := make([][]float64, n+m)
	for i := range K {
		K[i] = make([]float64, n+m)
	}
	for i := 0; i < n; i++ {
		copy(K[i], J[i])
	}
	for a := 0; a < m; a++ {
		for i := 0; i < n; i++ {
			K[i][n+a] = -c.A[a][i]
			K[n+a][i] = -c.A[a][i]
		}
	}
	return K
}

// reduce extracts the rows and columns in idx
func reduce(M [][]float64, idx []int) [][]float64 {
	res := make([][]float64, len(idx))
	for a, i := range idx {
		res[a] = make([]float64, len(idx))
		for b, j := range idx {
			res[a][b] = M[i][j]
		}
	}
	return res
}
