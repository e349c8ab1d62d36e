// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ode

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/io"
)

// Explicit implements adaptive explicit Runge-Kutta methods with embedded error estimates
//
//  A step of size Δt is accepted when e ≤ tol = Atol + Rtol ‖y_(n+1)‖∞. The next step is
//
//    Δt ← m Δt   with   m = min(Mmax, max(Mmin, Mfac (tol/e)^(1/p)))
//
//  Failures of f shrink the step by Mmin; the integration fails when Δt < DtMin.
type Explicit struct {

	// settings
	Atol    float64 // absolute tolerance
	Rtol    float64 // relative tolerance
	Mfac    float64 // safety factor of the step multiplier
	Mmin    float64 // minimum step multiplier
	Mmax    float64 // maximum step multiplier
	DtMin   float64 // minimum step size
	NmaxSS  int     // maximum number of substeps
	Verbose bool    // show messages

	// internal
	name string   // "ode23", "ode45", ...
	tab  *tableau // coefficients
}

// NewBogackiShampine returns the 3(2) explicit integrator (ode23)
func NewBogackiShampine() *Explicit { return newExplicit("ode23", &bogackiShampine) }

// NewDormandPrince returns the 5(4) explicit integrator (ode45)
func NewDormandPrince() *Explicit { return newExplicit("ode45", &dormandPrince) }

// NewVerner8 returns the 8(7) explicit integrator (ode78)
func NewVerner8() *Explicit { return newExplicit("ode78", &verner8) }

// NewVerner9 returns the 9(8) explicit integrator (ode89)
func NewVerner9() *Explicit { return newExplicit("ode89", &verner9) }

func newExplicit(name string, tab *tableau) *Explicit {
	return &Explicit{
		Atol:   1e-10,
		Rtol:   1e-10,
		Mfac:   0.9,
		Mmin:   0.2,
		Mmax:   5.0,
		DtMin:  1e-12,
		NmaxSS: 100000,
		name:   name,
		tab:    tab,
	}
}

// Name returns the name of the method
func (o *Explicit) Name() string { return o.name }

// Order returns the order of the propagated solution
func (o *Explicit) Order() float64 { return o.tab.p }

// Integrate integrates dy/dt = f(t, y) from times[0] to times[len(times)-1]
func (o *Explicit) Integrate(fcn Func, times []float64, y0 []float64) (sol *Solution, err error) {

	// check
	if err = checkTimes(times); err != nil {
		err.(*Error).Method = o.name
		return
	}

	// counting function
	sol = new(Solution)
	f := func(t float64, y []float64) ([]float64, error) {
		sol.Stat.Nfeval++
		return fcn(t, y)
	}

	// initial state
	t0, tf := times[0], times[len(times)-1]
	k0, err := f(t0, y0)
	if err != nil {
		return nil, &Error{Kind: Upstream, Method: o.name, Msg: "initial rate", Err: err}
	}
	t, y := t0, clone(y0)
	tp, yp, fp := []float64{t}, [][]float64{y}, [][]float64{k0}

	// substeps
	Δt := tf - t0
	for t < tf {
		if sol.Stat.Nsteps >= o.NmaxSS {
			return nil, &Error{Kind: MaximumSubsteps, Method: o.name, Msg: io.Sf("NmaxSS = %d, t = %g", o.NmaxSS, t)}
		}
		sol.Stat.Nsteps++
		last := false
		if t+Δt >= tf {
			Δt, last = tf-t, true
		}

		// trial step
		ynew, klast, e, err := o.step(f, t, y, k0, Δt)
		if err == nil && math.IsNaN(e) {
			err = &Error{Kind: Generic, Method: o.name, Msg: "error estimate is NaN"}
		}
		if err != nil {
			sol.Stat.Nrejected++
			Δt *= o.Mmin
			if Δt < o.DtMin {
				return nil, &Error{Kind: MinimumStepSize, Method: o.name, Msg: io.Sf("DtMin = %g, t = %g", o.DtMin, t), Err: err}
			}
			continue
		}

		// accept or reject
		tol := o.Atol + o.Rtol*normInf(ynew)
		if e <= tol {
			tnew := t + Δt
			if last {
				tnew = tf
			}
			if klast == nil {
				klast, err = f(tnew, ynew)
				if err != nil {
					return nil, &Error{Kind: Upstream, Method: o.name, Msg: io.Sf("rate at t = %g", tnew), Err: err}
				}
			}
			t, y, k0 = tnew, ynew, klast
			tp, yp, fp = append(tp, t), append(yp, y), append(fp, k0)
			sol.Stat.Naccepted++
			if o.Verbose {
				io.Pf("%s: t = %13.6e  Δt = %13.6e  e = %13.6e\n", o.name, t, Δt, e)
			}
		} else {
			sol.Stat.Nrejected++
		}

		// next step size
		m := o.Mmax
		if e > 0 {
			m = math.Min(o.Mmax, math.Max(o.Mmin, o.Mfac*math.Pow(tol/e, 1.0/o.tab.p)))
		}
		Δt *= m
		if Δt < o.DtMin && t < tf {
			return nil, &Error{Kind: MinimumStepSize, Method: o.name, Msg: io.Sf("DtMin = %g, t = %g", o.DtMin, t)}
		}
	}

	// all accepted steps
	if len(times) == 2 {
		sol.T, sol.Y, sol.Dydt = tp, yp, fp
		return
	}

	// requested times
	sol.T = clone(times)
	sol.Y = make([][]float64, len(times))
	sol.Dydt = make([][]float64, len(times))
	for i, tk := range times {
		j := sort.SearchFloat64s(tp, tk)
		if j < len(tp) && tp[j] == tk {
			sol.Y[i], sol.Dydt[i] = yp[j], fp[j]
			continue
		}
		j--
		sol.Y[i], _, _, err = o.step(f, tp[j], yp[j], fp[j], tk-tp[j])
		if err != nil {
			return nil, &Error{Kind: Upstream, Method: o.name, Msg: io.Sf("output at t = %g", tk), Err: err}
		}
		sol.Dydt[i], err = f(tk, sol.Y[i])
		if err != nil {
			return nil, &Error{Kind: Upstream, Method: o.name, Msg: io.Sf("output rate at t = %g", tk), Err: err}
		}
	}
	return
}

// step performs one trial step from (t, y) with k0 = f(t, y)
//  Output: ynew, f(t+Δt, ynew) if the method is FSAL (nil otherwise), and the error estimate
func (o *Explicit) step(f Func, t float64, y, k0 []float64, Δt float64) (ynew, klast []float64, e float64, err error) {
	tab := o.tab
	ns, n := len(tab.c), len(y)
	k := make([][]float64, ns)
	k[0] = k0
	for s := 1; s < ns; s++ {
		yt := make([]float64, n)
		for i := 0; i < n; i++ {
			var sum float64
			for j := 0; j < s; j++ {
				sum += tab.a[s][j] * k[j][i]
			}
			yt[i] = y[i] + Δt*sum
		}
		k[s], err = f(t+tab.c[s]*Δt, yt)
		if err != nil {
			return
		}
	}
	ynew = make([]float64, n)
	for i := 0; i < n; i++ {
		var sum, est float64
		for s := 0; s < ns; s++ {
			sum += tab.b[s] * k[s][i]
			est += tab.e[s] * k[s][i]
		}
		ynew[i] = y[i] + Δt*sum
		if math.IsNaN(est) || math.IsNaN(sum) {
			e = math.NaN()
			continue
		}
		e = math.Max(e, math.Abs(Δt*est))
	}
	if tab.fsal {
		klast = k[ns-1]
	}
	return
}

func normInf(v []float64) (res float64) {
	for _, x := range v {
		res = math.Max(res, math.Abs(x))
	}
	return
}

func clone(v []float64) []float64 {
	return append([]float64(nil), v...)
}
