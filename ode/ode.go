// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ode implements integrators for systems of ordinary differential equations
//   dy/dt = f(t, y)
package ode

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Func computes dy/dt = f(t, y)
type Func func(t float64, y []float64) ([]float64, error)

// Integrator integrates from times[0] to times[len(times)-1]
//  Output: when more than two times are given, the solution is returned at the given times;
//  otherwise at all accepted steps
type Integrator interface {
	Integrate(fcn Func, times []float64, y0 []float64) (*Solution, error)
}

// Solution holds the results
type Solution struct {
	T    []float64   // times
	Y    [][]float64 // y at T
	Dydt [][]float64 // f(t, y) at T
	Stat Stat        // statistics
}

// Stat holds statistics
type Stat struct {
	Nfeval    int // number of calls to f
	Nsteps    int // number of attempted steps
	Naccepted int // number of accepted steps
	Nrejected int // number of rejected steps
}

// String returns a summary of the statistics
func (o Stat) String() string {
	return io.Sf("nfeval = %d  nsteps = %d  naccepted = %d  nrejected = %d", o.Nfeval, o.Nsteps, o.Naccepted, o.Nrejected)
}

// New returns a new integrator with default settings
//  kinds: "ode23", "ode45", "ode78", "ode89", "ode1be"
func New(kind string) (Integrator, error) {
	allocator, ok := allocators[kind]
	if !ok {
		return nil, chk.Err("integrator %q is not available in 'ode' database", kind)
	}
	return allocator(), nil
}

// Kinds returns the names of all available integrators
func Kinds() []string {
	return []string{"ode23", "ode45", "ode78", "ode89", "ode1be"}
}

// allocators holds all integrators; kind => allocator
var allocators = map[string]func() Integrator{
	"ode23":  func() Integrator { return NewBogackiShampine() },
	"ode45":  func() Integrator { return NewDormandPrince() },
	"ode78":  func() Integrator { return NewVerner8() },
	"ode89":  func() Integrator { return NewVerner9() },
	"ode1be": func() Integrator { return NewBackwardEuler(nil) },
}

// checkTimes validates the requested times
func checkTimes(times []float64) error {
	if len(times) < 2 {
		return &Error{Kind: LengthTimeLessThanTwo}
	}
	if times[0] >= times[len(times)-1] {
		return &Error{Kind: InitialTimeNotLessThanFinalTime}
	}
	for i := 1; i < len(times); i++ {
		if times[i] < times[i-1] {
			return &Error{Kind: Generic, Msg: io.Sf("times must be non-decreasing; t[%d]=%g < t[%d]=%g", i, times[i], i-1, times[i-1])}
		}
	}
	return nil
}
