// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ode

import (
	"github.com/cpmech/gosl/io"
)

// ErrorKind classifies integration failures
type ErrorKind int

const (
	LengthTimeLessThanTwo ErrorKind = iota
	InitialTimeNotLessThanFinalTime
	MinimumStepSize
	MaximumSubsteps
	Upstream
	Generic
)

// Error holds an integration failure
type Error struct {
	Kind   ErrorKind // kind of failure
	Method string    // name of the integrator
	Msg    string    // details
	Err    error     // error coming from f or from the implicit solver
}

// Error implements the error interface
func (o *Error) Error() string {
	var l string
	switch o.Kind {
	case LengthTimeLessThanTwo:
		l = "the time array must have at least two entries"
	case InitialTimeNotLessThanFinalTime:
		l = "the initial time must precede the final time"
	case MinimumStepSize:
		l = "minimum time step reached"
	case MaximumSubsteps:
		l = "maximum number of substeps reached"
	case Upstream:
		l = "upstream failure"
	default:
		l = "integration failed"
	}
	if o.Method != "" {
		l = o.Method + ": " + l
	}
	if o.Msg != "" {
		l += ": " + o.Msg
	}
	if o.Err != nil {
		l += io.Sf(": %v", o.Err)
	}
	return l
}

// Unwrap returns the upstream error
func (o *Error) Unwrap() error { return o.Err }
